package api

import (
	jsonpatch "github.com/evanphx/json-patch"
	"github.com/stretchr/testify/require"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"text2phenotype.com/reader/lexicon"
	"text2phenotype.com/reader/pipeline"
	"text2phenotype.com/reader/types"
	"strings"
	"testing"
)

func newTestServer(t *testing.T) *httptest.Server {
	ppln, err := pipeline.QuestionAnswering(pipeline.GetQuestionAnsweringParams(types.DefaultConfiguration(), lexicon.MustDefault()))
	require.NoError(t, err)
	server := httptest.NewServer(NewHandler(ppln))
	t.Cleanup(server.Close)
	return server
}

func TestProcessData(t *testing.T) {
	server := newTestServer(t)

	body := `{"sentence": "The water is blue.", "questions": ["What color is the water?"]}`
	resp, err := http.Post(server.URL, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	buf, err := ioutil.ReadAll(resp.Body)
	require.NoError(t, err)

	expected := `{
		"sentence": "The water is blue.",
		"answers": [{"question": "What color is the water?", "answer_type": "WHAT_COLOR", "answer": "blue"}]
	}`
	// tid depends on the request body
	patch, err := jsonpatch.CreateMergePatch([]byte(expected), buf)
	require.NoError(t, err)
	require.Regexp(t, `^\{"tid":"api_[0-9a-f]+"\}$`, string(patch))
}

func TestProcessDataErrors(t *testing.T) {
	server := newTestServer(t)

	cases := []struct {
		name     string
		method   string
		body     string
		expected int
	}{
		{"wrong method", http.MethodGet, "", http.StatusMethodNotAllowed},
		{"invalid json", http.MethodPost, "Ada brought a note", http.StatusBadRequest},
		{"missing sentence", http.MethodPost, `{"questions": ["Who?"]}`, http.StatusBadRequest},
		{"blank sentence", http.MethodPost, `{"sentence": "  "}`, http.StatusBadRequest},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			req, err := http.NewRequest(c.method, server.URL, strings.NewReader(c.body))
			require.NoError(t, err)
			resp, err := http.DefaultClient.Do(req)
			require.NoError(t, err)
			_ = resp.Body.Close()
			require.Equal(t, c.expected, resp.StatusCode)
		})
	}
}

func TestProcessDataWithoutResponse(t *testing.T) {
	closed := func(pipeline.Request) <-chan string {
		ch := make(chan string)
		close(ch)
		return ch
	}
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"sentence": "It will snow soon."}`))
	NewHandler(closed).ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
}
