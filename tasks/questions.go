package tasks

import (
	"text2phenotype.com/reader/redis"
)

const QuestionsDB redis.DB = 2

type TaskStatus string

const (
	TaskStatusProcessing       TaskStatus = "processing"
	TaskStatusSubmitted        TaskStatus = "submitted"
	TaskStatusStarted          TaskStatus = "started"
	TaskStatusFailed           TaskStatus = "failed"
	TaskStatusCompletedSuccess TaskStatus = "completed - success"
	TaskStatusCompletedFailure TaskStatus = "completed - failure"
	TaskStatusCanceled         TaskStatus = "canceled"
)

func (s TaskStatus) Complete() bool {
	return s == TaskStatusCompletedSuccess || s == TaskStatusCompletedFailure || s == TaskStatusCanceled
}

func (s TaskStatus) Submitted() bool {
	return s == TaskStatusSubmitted || s == TaskStatusStarted || s == TaskStatusProcessing
}

// QuestionTask is a batch of questions about one sentence. The input file
// holds {"sentence": ..., "questions": [...]}.
type QuestionTask struct {
	JobID        string               `json:"job_id"`
	InputFileKey string               `json:"input_file_key"`
	TaskStatuses QuestionTaskStatuses `json:"task_statuses"`
}

type QuestionTaskStatuses struct {
	Reader QuestionTaskInfo `json:"reader"`
}

type QuestionTaskInfo struct {
	ResultsFileKey string     `json:"results_file_key"`
	StartedAt      *string    `json:"started_at"`
	CompletedAt    *string    `json:"completed_at"`
	Attempts       int        `json:"attempts"`
	Status         TaskStatus `json:"status"`
	ErrorMessages  []string   `json:"error_messages"`
}

type QuestionTasks struct {
	client redis.Client
}

func (tasks QuestionTasks) Get(redisKey string) (*QuestionTask, error) {
	var task QuestionTask
	err := tasks.client.GetDocument(redisKey, &task)
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (tasks QuestionTasks) Update(redisKey string, updateFunc func(task *QuestionTask)) error {
	var task QuestionTask
	return tasks.client.UpdateDocument(redisKey, &task, func() {
		updateFunc(&task)
	})
}
