package tasks

import (
	"fmt"
	"text2phenotype.com/reader/redis"
)

type Client struct {
	Questions QuestionTasks
	Jobs      JobTasks
}

// NewClient is a preferred way for working with task documents
func NewClient() (Client, error) {
	jobsRedisClient, err := redis.NewClient(JobsDB)
	if err != nil {
		return Client{}, err
	}
	questionsRedisClient, err := redis.NewClient(QuestionsDB)
	if err != nil {
		_ = jobsRedisClient.Close()
		return Client{}, err
	}
	return Client{
		Jobs:      JobTasks{client: jobsRedisClient},
		Questions: QuestionTasks{client: questionsRedisClient},
	}, nil
}

func (client *Client) Close() {
	_ = client.Questions.client.Close()
	_ = client.Jobs.client.Close()
}

func cachedPropertiesKey(redisKey string) string {
	return fmt.Sprintf("%s-cached-properties", redisKey)
}
