package worker

import (
	"encoding/json"
	"errors"
	"fmt"
	"github.com/rs/zerolog"
	"github.com/streadway/amqp"
	"text2phenotype.com/reader/pipeline"
	"text2phenotype.com/reader/tasks"
	"text2phenotype.com/reader/utils"
	"strings"
)

type Message struct {
	WorkType string `json:"work_type"`
	RedisKey string `json:"redis_key"`
	Sender   string `json:"sender"`
	Version  string `json:"version"`
}

type Task struct {
	delivery     *amqp.Delivery
	questionTask *tasks.QuestionTask
	message      *Message
	redisKey     string
	readerLogger *zerolog.Logger
}

// Input is the content of the task input file.
type Input struct {
	Sentence  string   `json:"sentence"`
	Questions []string `json:"questions"`
}

func (worker *Worker) processMessage(delivery *amqp.Delivery) {
	task, err := worker.createTask(delivery)
	rejectLogger := worker.readerLogger.With().Str("message_id", delivery.MessageId).Logger()
	if err != nil {
		worker.readerLogger.Err(err).
			Str("message_id", delivery.MessageId).
			Str("tid", string(delivery.Body)).
			Msg("Failed to create task for delivery")
		worker.rmq.rejectDelivery(delivery, err, &rejectLogger)
		return
	}
	if err = worker.processTask(task); err != nil {
		worker.rmq.rejectDelivery(delivery, err, &rejectLogger)
		return
	}
	if err = worker.rmq.pingSequencer(task, *task.message); err != nil {
		task.readerLogger.Err(err).Msg("Got error while sending message to sequencer queue")
		worker.rmq.rejectDelivery(delivery, err, &rejectLogger)
		return
	}
	if err = worker.rmq.acknowledgeDelivery(delivery); err != nil {
		task.readerLogger.Err(err).Msg("Failed to acknowledge delivery")
	}
	task.readerLogger.Info().Msg("Finished processing RMQ message")
}

func (worker *Worker) createTask(delivery *amqp.Delivery) (*Task, error) {
	var message Message
	if err := json.Unmarshal(delivery.Body, &message); err != nil {
		return nil, fmt.Errorf("%w: failed to unmarshal message, got error %v", errMalformedMessage, err)
	}
	if message.RedisKey == "" {
		return nil, fmt.Errorf("%w: message has no redis key", errMalformedMessage)
	}
	questionTask, err := worker.redis.getQuestionTask(message.RedisKey)
	if err != nil {
		return nil, fmt.Errorf("failed to query question task for message, got error %w", err)
	}
	taskLogger := worker.readerLogger.With().Str("tid", message.RedisKey).Logger()
	return &Task{
		delivery:     delivery,
		questionTask: questionTask,
		redisKey:     message.RedisKey,
		message:      &message,
		readerLogger: &taskLogger,
	}, nil
}

func (worker *Worker) processTask(task *Task) error {
	shouldPerform, err := worker.shouldPerformTask(task)
	if err != nil {
		task.readerLogger.Err(err).Msg("Got error while trying to decide whether to run task")
		return err
	}
	if !shouldPerform {
		return nil
	}
	if err = worker.redis.onTaskStarted(task); err != nil {
		task.readerLogger.Err(err).Msg("Failed to update task info")
		return fmt.Errorf("failed to update TaskInfo: %w", err)
	}
	if err = worker.runPipeline(task); err != nil {
		task.readerLogger.Err(err).Msg("Got error while running pipeline")
		return worker.redis.onTaskFailedWithError(task, err)
	}
	task.readerLogger.Info().Msg("Saved results, marking task as complete")
	if err = worker.redis.onTaskComplete(task); err != nil {
		task.readerLogger.Err(err).Msg("Got error while trying to mark task as complete")
		return err
	}
	return nil
}

func (worker *Worker) runPipeline(task *Task) (err error) {
	defer utils.RecoverWithError(&err)
	task.readerLogger.Info().
		Msgf("Processing message from RMQ, attempt # %d", task.questionTask.TaskStatuses.Reader.Attempts)
	data, err := worker.s3.getInputData(task)
	if err != nil {
		task.readerLogger.Err(err).Caller().Msg("Could not fetch input from s3")
		return fmt.Errorf("failed fetch data from s3: %w", err)
	}
	input, err := decodeInput(data)
	if err != nil {
		task.readerLogger.Err(err).Caller().Msg("Task input is not valid")
		return err
	}
	request := pipeline.Request{
		Tid:       task.redisKey,
		Sentence:  input.Sentence,
		Questions: input.Questions,
	}
	result, ok := <-worker.ppln(request)
	if !ok {
		task.readerLogger.Error().Msg("Pipeline channel was closed before returning anything")
		return errors.New("pipeline channel was closed before returning anything")
	}
	task.readerLogger.Info().Int("questions", len(input.Questions)).Msg("Finished pipeline, saving results to s3")
	if err = worker.s3.saveResultsFile(task, result); err != nil {
		task.readerLogger.Err(err).Msg("Got error while trying to save results")
		return err
	}
	return nil
}

func decodeInput(data []byte) (Input, error) {
	var input Input
	if err := json.Unmarshal(data, &input); err != nil {
		return input, fmt.Errorf("failed to decode task input: %w", err)
	}
	if strings.TrimSpace(input.Sentence) == "" {
		return input, errors.New("task input has no sentence")
	}
	return input, nil
}

func (worker *Worker) shouldPerformTask(task *Task) (bool, error) {
	taskInfo := task.questionTask.TaskStatuses.Reader
	taskLogger := task.readerLogger

	if taskInfo.Status.Complete() {
		taskLogger.Info().Msg("Task is already done. (might indicate issue acking message with RMQ). Sending back to Sequencer.")
		return false, nil
	}
	taskJob, err := worker.redis.getJobTask(task)
	if err != nil {
		taskLogger.Err(err).Msg("Failed to query job task for question task")
		return false, err
	}
	if taskJob.UserCanceled {
		taskLogger.Info().Msg("Job was canceled, no need to perform this task. Sending back to Sequencer.")
		return false, worker.redis.onTaskCancelled(task)
	}
	if taskInfo.Attempts >= worker.config.TaskMaxRetries {
		taskLogger.Info().Msg("Reader task has exceeded retries. Sending back to Sequencer.")
		return false, worker.redis.onTaskExceededRetries(task, worker.config.TaskMaxRetries)
	}
	return true, nil
}
