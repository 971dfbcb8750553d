package s3client

import (
	"bytes"
	"errors"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"os"
	"testing"
)

func TestS3Logger(t *testing.T) {
	var buf bytes.Buffer
	sdkLog := zerolog.New(&buf).Level(zerolog.DebugLevel)

	getLogger(sdkLog).Log("DEBUG: Request", "s3/GetObject")
	require.JSONEq(t, `{"level":"debug","message":"DEBUG: Requests3/GetObject"}`, buf.String())
}

func TestReadEnvironment(t *testing.T) {
	errLogger := zerolog.Nop()

	t.Setenv("MDL_COMN_STORAGE_CONTAINER_NAME", "reader-bucket")
	t.Setenv("T2P_ENV", "dev")
	t.Setenv("MDL_COMN_AWS_REGION_NAME", "us-east-1")
	t.Setenv("MDL_COMN_AWS_ENDPOINT_URL", "http://localstack:4566")
	t.Setenv("READER_S3_KEY_PREFIX", "reader/")

	env, err := readEnvironment(&errLogger)
	require.NoError(t, err)
	require.Equal(t, EnvironmentConfig{
		BucketName:  "reader-bucket",
		T2PEnv:      "dev",
		Region:      "us-east-1",
		AwsEndpoint: "http://localstack:4566",
		KeyPrefix:   "reader/",
	}, env)

	require.NoError(t, os.Unsetenv("MDL_COMN_AWS_REGION_NAME"))
	_, err = readEnvironment(&errLogger)
	require.Error(t, err)
}

func TestKeys(t *testing.T) {
	cases := []struct {
		name     string
		prefix   string
		key      string
		expected string
	}{
		{"no prefix", "", "tasks/input.json", "tasks/input.json"},
		{"leading slash", "", "/tasks/input.json", "tasks/input.json"},
		{"prefixed", "reader/", "tasks/input.json", "reader/tasks/input.json"},
		{"already prefixed", "/reader", "reader/tasks/input.json", "reader/tasks/input.json"},
		{"prefix is only a name start", "reader", "readers/input.json", "reader/readers/input.json"},
		{"cleaned", "reader", "tasks//./input.json", "reader/tasks/input.json"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			key, err := Keys{Prefix: tc.prefix}.Object(tc.key)
			require.NoError(t, err)
			require.Equal(t, tc.expected, key)
		})
	}

	for _, blank := range []string{"", " ", "/", "."} {
		_, err := Keys{Prefix: "reader"}.Object(blank)
		require.True(t, errors.Is(err, ErrEmptyKey), blank)
	}
}

func TestObjectKeys(t *testing.T) {
	require.Equal(t, "processed/questions/job-7/question-1.reader_results.json", ResultsKey("job-7", "question-1"))
	require.Equal(t, "lexicons/default.json", LexiconKey("default"))
	require.Equal(t, "lexicons/default.json", LexiconKey("default.json"))
}

func TestClassify(t *testing.T) {
	require.NoError(t, classify(nil))

	missing := classify(awserr.New(s3.ErrCodeNoSuchKey, "The specified key does not exist.", nil))
	require.True(t, errors.Is(missing, ErrNotFound))
	err := wrapObjectError("download", "reader/tasks/input.json", missing)
	require.True(t, errors.Is(err, ErrNotFound))
	var objErr *ObjectError
	require.True(t, errors.As(err, &objErr))
	require.Equal(t, "reader/tasks/input.json", objErr.Key)
	require.Contains(t, err.Error(), "s3 download reader/tasks/input.json: object not found")

	denied := awserr.New("AccessDenied", "Access Denied", nil)
	require.Equal(t, denied, classify(denied))
	require.False(t, errors.Is(classify(denied), ErrNotFound))

	plain := errors.New("connection reset")
	require.Equal(t, plain, classify(plain))
}

func TestSessionHolder(t *testing.T) {
	first, second := &session.Session{}, &session.Session{}
	issued := []*session.Session{first, second}
	calls := 0
	holder := newSessionHolder(func() (*session.Session, error) {
		sess := issued[calls]
		calls++
		return sess, nil
	})

	sess, err := holder.get()
	require.NoError(t, err)
	require.Same(t, first, sess)
	sess, err = holder.get()
	require.NoError(t, err)
	require.Same(t, first, sess)
	require.Equal(t, 1, calls)

	sess, err = holder.refresh(first)
	require.NoError(t, err)
	require.Same(t, second, sess)
	// a transfer that failed on the old session gets the new one
	sess, err = holder.refresh(first)
	require.NoError(t, err)
	require.Same(t, second, sess)
	require.Equal(t, 2, calls)
}

func TestSessionHolderFailure(t *testing.T) {
	holder := newSessionHolder(func() (*session.Session, error) {
		return nil, errors.New("expired token")
	})
	_, err := holder.get()
	require.True(t, errors.Is(err, ErrNoSession))
	require.Contains(t, err.Error(), "expired token")

	holder.drop()
	_, err = holder.refresh(nil)
	require.True(t, errors.Is(err, ErrNoSession))
}
