package worker

import (
	"github.com/streadway/amqp"
	"github.com/stretchr/testify/require"
	"text2phenotype.com/reader/logger"
	"text2phenotype.com/reader/tasks"
	"reflect"
	"strings"
	"testing"
)

type mockedClientsConfig struct {
	rmqMockConfig
	redisMockConfig
	s3MockConfig
	pipelineMockConfig
}

type mockedClients struct {
	redis    *redisMock
	rmq      *rmqMock
	s3       *s3Mock
	pipeline *pipelineMock
}

type methodsCalls struct {
	redis    redisMockCalls
	rmq      rmqMockCalls
	s3       s3MockCalls
	pipeline pipelineCall
}

const testMessage = `{"work_type": "reader", "redis_key": "question-1", "sender": "sequencer", "version": "1"}`

func configureWorker(config mockedClientsConfig) (*Worker, *mockedClients) {
	redis := &redisMock{config: config.redisMockConfig}
	s3 := &s3Mock{config: config.s3MockConfig}
	rmq := &rmqMock{config: config.rmqMockConfig}
	pplnMock := getPipelineMock(config.pipelineMockConfig)

	readerLogger := logger.NewLogger("Test Worker")

	return &Worker{
			config:       Config{3},
			redis:        redis,
			s3:           s3,
			rmq:          rmq,
			readerLogger: &readerLogger,
			ppln:         pplnMock.ppln,
		}, &mockedClients{
			redis:    redis,
			rmq:      rmq,
			s3:       s3,
			pipeline: pplnMock,
		}
}

func runMessage(config mockedClientsConfig) (methodsCalls, *mockedClients) {
	worker, mocks := configureWorker(config)
	worker.processMessage(&amqp.Delivery{Body: []byte(testMessage)})
	return methodsCalls{
		redis:    mocks.redis.calls,
		rmq:      mocks.rmq.calls,
		s3:       mocks.s3.calls,
		pipeline: mocks.pipeline.calls,
	}, mocks
}

func questionTaskWith(status tasks.TaskStatus, attempts int) withValue {
	return withValue{returnedValue: tasks.QuestionTask{
		JobID: "job",
		TaskStatuses: tasks.QuestionTaskStatuses{
			Reader: tasks.QuestionTaskInfo{Status: status, Attempts: attempts},
		},
	}}
}

var (
	fullRun = methodsCalls{
		redis:    redisMockCalls{getQuestionTask: true, getJobTask: true, onTaskStarted: true, onTaskComplete: true},
		rmq:      rmqMockCalls{pingSequencer: true, acknowledgeDelivery: true},
		s3:       s3MockCalls{getInputData: true, saveResultsFile: true},
		pipeline: pipelineCall{true},
	}
	skipped = methodsCalls{
		redis: redisMockCalls{getQuestionTask: true},
		rmq:   rmqMockCalls{pingSequencer: true, acknowledgeDelivery: true},
	}
)

func TestWorker(t *testing.T) {
	cases := []struct {
		name     string
		config   mockedClientsConfig
		expected methodsCalls
	}{
		{
			name:     "Successful",
			expected: fullRun,
		},
		{
			name: "Failed to get Question task",
			config: mockedClientsConfig{redisMockConfig: redisMockConfig{
				getQuestionTask: withValue{fail: true},
			}},
			expected: methodsCalls{
				redis: redisMockCalls{getQuestionTask: true},
				rmq:   rmqMockCalls{rejectDelivery: true},
			},
		},
		{
			name: "Failed to get Job task",
			config: mockedClientsConfig{redisMockConfig: redisMockConfig{
				getJobTask: withValue{fail: true},
			}},
			expected: methodsCalls{
				redis: redisMockCalls{getQuestionTask: true, getJobTask: true},
				rmq:   rmqMockCalls{rejectDelivery: true},
			},
		},
		{
			name: "Already complete with success",
			config: mockedClientsConfig{redisMockConfig: redisMockConfig{
				getQuestionTask: questionTaskWith(tasks.TaskStatusCompletedSuccess, 1),
			}},
			expected: skipped,
		},
		{
			name: "Already complete with failure",
			config: mockedClientsConfig{redisMockConfig: redisMockConfig{
				getQuestionTask: questionTaskWith(tasks.TaskStatusCompletedFailure, 3),
			}},
			expected: skipped,
		},
		{
			name: "User cancelled",
			config: mockedClientsConfig{redisMockConfig: redisMockConfig{
				getJobTask: withValue{returnedValue: tasks.JobTask{UserCanceled: true}},
			}},
			expected: methodsCalls{
				redis: redisMockCalls{getQuestionTask: true, getJobTask: true, onTaskCancelled: true},
				rmq:   rmqMockCalls{pingSequencer: true, acknowledgeDelivery: true},
			},
		},
		{
			name: "Failed to update task in onTaskCancelled",
			config: mockedClientsConfig{redisMockConfig: redisMockConfig{
				getJobTask:      withValue{returnedValue: tasks.JobTask{UserCanceled: true}},
				onTaskCancelled: failingMethod{true},
			}},
			expected: methodsCalls{
				redis: redisMockCalls{getQuestionTask: true, getJobTask: true, onTaskCancelled: true},
				rmq:   rmqMockCalls{rejectDelivery: true},
			},
		},
		{
			name: "Exceeded attempts",
			config: mockedClientsConfig{redisMockConfig: redisMockConfig{
				getQuestionTask: questionTaskWith(tasks.TaskStatusFailed, 3),
			}},
			expected: methodsCalls{
				redis: redisMockCalls{getQuestionTask: true, getJobTask: true, onTaskExceededRetries: true},
				rmq:   rmqMockCalls{pingSequencer: true, acknowledgeDelivery: true},
			},
		},
		{
			name: "Retried after failure",
			config: mockedClientsConfig{redisMockConfig: redisMockConfig{
				getQuestionTask: questionTaskWith(tasks.TaskStatusFailed, 2),
			}},
			expected: fullRun,
		},
		{
			name: "Failed to update task in onTaskStarted",
			config: mockedClientsConfig{redisMockConfig: redisMockConfig{
				onTaskStarted: failingMethod{true},
			}},
			expected: methodsCalls{
				redis: redisMockCalls{getQuestionTask: true, getJobTask: true, onTaskStarted: true},
				rmq:   rmqMockCalls{rejectDelivery: true},
			},
		},
		{
			name: "Failed to load data from S3",
			config: mockedClientsConfig{s3MockConfig: s3MockConfig{
				getInputData: withValue{fail: true},
			}},
			expected: methodsCalls{
				redis: redisMockCalls{
					getQuestionTask: true, getJobTask: true, onTaskStarted: true, onTaskFailedWithError: true,
				},
				rmq: rmqMockCalls{pingSequencer: true, acknowledgeDelivery: true},
				s3:  s3MockCalls{getInputData: true},
			},
		},
		{
			name: "Invalid input file",
			config: mockedClientsConfig{s3MockConfig: s3MockConfig{
				getInputData: withValue{returnedValue: []byte("Ada walked to school.")},
			}},
			expected: methodsCalls{
				redis: redisMockCalls{
					getQuestionTask: true, getJobTask: true, onTaskStarted: true, onTaskFailedWithError: true,
				},
				rmq: rmqMockCalls{pingSequencer: true, acknowledgeDelivery: true},
				s3:  s3MockCalls{getInputData: true},
			},
		},
		{
			name: "Input file without sentence",
			config: mockedClientsConfig{s3MockConfig: s3MockConfig{
				getInputData: withValue{returnedValue: []byte(`{"questions": ["Who?"]}`)},
			}},
			expected: methodsCalls{
				redis: redisMockCalls{
					getQuestionTask: true, getJobTask: true, onTaskStarted: true, onTaskFailedWithError: true,
				},
				rmq: rmqMockCalls{pingSequencer: true, acknowledgeDelivery: true},
				s3:  s3MockCalls{getInputData: true},
			},
		},
		{
			name:   "Failed due to pipeline error",
			config: mockedClientsConfig{pipelineMockConfig: pipelineMockConfig{fail: true}},
			expected: methodsCalls{
				redis: redisMockCalls{
					getQuestionTask: true, getJobTask: true, onTaskStarted: true, onTaskFailedWithError: true,
				},
				rmq:      rmqMockCalls{pingSequencer: true, acknowledgeDelivery: true},
				s3:       s3MockCalls{getInputData: true},
				pipeline: pipelineCall{true},
			},
		},
		{
			name:   "Recovered from pipeline panic",
			config: mockedClientsConfig{pipelineMockConfig: pipelineMockConfig{panics: true}},
			expected: methodsCalls{
				redis: redisMockCalls{
					getQuestionTask: true, getJobTask: true, onTaskStarted: true, onTaskFailedWithError: true,
				},
				rmq:      rmqMockCalls{pingSequencer: true, acknowledgeDelivery: true},
				s3:       s3MockCalls{getInputData: true},
				pipeline: pipelineCall{true},
			},
		},
		{
			name: "Failed to update task in onTaskFailedWithError",
			config: mockedClientsConfig{
				pipelineMockConfig: pipelineMockConfig{fail: true},
				redisMockConfig:    redisMockConfig{onTaskFailedWithError: failingMethod{true}},
			},
			expected: methodsCalls{
				redis: redisMockCalls{
					getQuestionTask: true, getJobTask: true, onTaskStarted: true, onTaskFailedWithError: true,
				},
				rmq:      rmqMockCalls{rejectDelivery: true},
				s3:       s3MockCalls{getInputData: true},
				pipeline: pipelineCall{true},
			},
		},
		{
			name: "Failed to update task in onTaskComplete",
			config: mockedClientsConfig{redisMockConfig: redisMockConfig{
				onTaskComplete: failingMethod{true},
			}},
			expected: methodsCalls{
				redis:    fullRun.redis,
				rmq:      rmqMockCalls{rejectDelivery: true},
				s3:       fullRun.s3,
				pipeline: pipelineCall{true},
			},
		},
		{
			name: "Failed to save result to S3",
			config: mockedClientsConfig{s3MockConfig: s3MockConfig{
				saveResultsFile: failingMethod{true},
			}},
			expected: methodsCalls{
				redis: redisMockCalls{
					getQuestionTask: true, getJobTask: true, onTaskStarted: true, onTaskFailedWithError: true,
				},
				rmq:      rmqMockCalls{pingSequencer: true, acknowledgeDelivery: true},
				s3:       fullRun.s3,
				pipeline: pipelineCall{true},
			},
		},
		{
			name: "Failed to acknowledge delivery",
			config: mockedClientsConfig{rmqMockConfig: rmqMockConfig{
				acknowledgeDelivery: failingMethod{true},
			}},
			expected: fullRun,
		},
		{
			name: "Failed to ping sequencer",
			config: mockedClientsConfig{rmqMockConfig: rmqMockConfig{
				pingSequencer: failingMethod{true},
			}},
			expected: methodsCalls{
				redis:    fullRun.redis,
				rmq:      rmqMockCalls{pingSequencer: true, rejectDelivery: true},
				s3:       fullRun.s3,
				pipeline: pipelineCall{true},
			},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			calls, _ := runMessage(c.config)
			if !reflect.DeepEqual(calls, c.expected) {
				t.Errorf("Got unexpected called methods set.\nExpected:\n%+v\nGot:\n%+v", c.expected, calls)
			}
		})
	}
}

func TestWorkerPassesInputToPipeline(t *testing.T) {
	_, mocks := runMessage(mockedClientsConfig{
		pipelineMockConfig: pipelineMockConfig{result: `{"tid":"question-1"}`},
	})
	request := mocks.pipeline.request
	require.Equal(t, "question-1", request.Tid)
	require.Equal(t, "Ada walked to school.", request.Sentence)
	require.Equal(t, []string{"Who walked?"}, request.Questions)

	key := "processed/questions/job/question-1.reader_results.json"
	require.Equal(t, map[string]string{key: `{"tid":"question-1"}`}, mocks.s3.saved)

	require.NotNil(t, mocks.rmq.sent)
	require.Equal(t, "reader", mocks.rmq.sent.Sender)
	require.Equal(t, "question-1", mocks.rmq.sent.RedisKey)
}

func TestWorkerRecordsFailureReason(t *testing.T) {
	_, mocks := runMessage(mockedClientsConfig{
		s3MockConfig: s3MockConfig{getInputData: withValue{returnedValue: []byte(`{"sentence": " "}`)}},
	})
	require.Len(t, mocks.redis.errors, 1)
	require.True(t, strings.Contains(mocks.redis.errors[0], "no sentence"))
	require.False(t, mocks.pipeline.calls.pipeline)
}

func TestDecodeInput(t *testing.T) {
	input, err := decodeInput([]byte(`{"sentence": "The sun rose.", "questions": ["When?", "What rose?"]}`))
	require.NoError(t, err)
	require.Equal(t, Input{Sentence: "The sun rose.", Questions: []string{"When?", "What rose?"}}, input)

	_, err = decodeInput([]byte(`["The sun rose."]`))
	require.Error(t, err)
}
