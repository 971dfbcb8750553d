package worker

import (
	"text2phenotype.com/reader/s3client"
	"time"
)

func getResultsFileKey(task *Task) string {
	return s3client.ResultsKey(task.questionTask.JobID, task.redisKey)
}

const RFC3339Micro = "2006-01-02T15:04:05.000000-07:00"

func getFormattedNow() *string {
	now := time.Now().UTC().Format(RFC3339Micro)
	return &now
}
