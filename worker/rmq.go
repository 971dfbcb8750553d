package worker

import (
	"encoding/json"
	"errors"
	"github.com/rs/zerolog"
	"github.com/streadway/amqp"
	"text2phenotype.com/reader/rmq"
	"time"
)

const (
	readerSender       = "reader"
	defaultContentType = "application/json"
)

// errMalformedMessage marks deliveries that can never be processed, so
// they are dropped instead of requeued.
var errMalformedMessage = errors.New("malformed message")

type rmqTransactions interface {
	pingSequencer(task *Task, message Message) error
	acknowledgeDelivery(delivery *amqp.Delivery) error
	rejectDelivery(delivery *amqp.Delivery, cause error, readerLogger *zerolog.Logger)
	getDeliveriesCh() <-chan amqp.Delivery
	getReqChanErrorsCh() <-chan *amqp.Error
	getRespChanErrorsCh() <-chan *amqp.Error
	close()
}

type rejection struct {
	requeue bool
	reason  string
}

// rejectionFor gives a failed delivery one more attempt through the queue.
// Redis keeps its own attempt counter, this only covers failures before the
// task state could be updated.
func rejectionFor(delivery *amqp.Delivery, cause error) rejection {
	switch {
	case errors.Is(cause, errMalformedMessage):
		return rejection{false, "Dropping delivery as its message cannot be decoded"}
	case delivery.Redelivered:
		return rejection{false, "Rejecting delivery as it already has been redelivered"}
	default:
		return rejection{true, "Requeuing delivery as it has not been redelivered yet"}
	}
}

// sequencerPublishing tells the sequencer that the reader is done with a
// question task.
func sequencerPublishing(delivery *amqp.Delivery, message Message) (amqp.Publishing, error) {
	message.Sender = readerSender
	body, err := json.Marshal(message)
	if err != nil {
		return amqp.Publishing{}, err
	}
	contentType := defaultContentType
	if delivery != nil && delivery.ContentType != "" {
		contentType = delivery.ContentType
	}
	publishing := amqp.Publishing{
		ContentType: contentType,
		AppId:       readerSender,
		Timestamp:   time.Now().UTC(),
		Body:        body,
	}
	if delivery != nil {
		publishing.CorrelationId = delivery.MessageId
	}
	return publishing, nil
}

type rmqClientWrapper struct {
	rmqClient *rmq.Client
}

func (wrapper *rmqClientWrapper) close() {
	wrapper.rmqClient.Close()
}

func (wrapper *rmqClientWrapper) getDeliveriesCh() <-chan amqp.Delivery {
	return wrapper.rmqClient.Deliveries
}

func (wrapper *rmqClientWrapper) getReqChanErrorsCh() <-chan *amqp.Error {
	return wrapper.rmqClient.ReqChanErrors
}

func (wrapper *rmqClientWrapper) getRespChanErrorsCh() <-chan *amqp.Error {
	return wrapper.rmqClient.RespChanErrors
}

func (wrapper *rmqClientWrapper) pingSequencer(task *Task, message Message) error {
	publishing, err := sequencerPublishing(task.delivery, message)
	if err != nil {
		return err
	}
	return wrapper.rmqClient.SendMessageToSequencer(publishing)
}

func (wrapper *rmqClientWrapper) acknowledgeDelivery(delivery *amqp.Delivery) error {
	return delivery.Ack(false)
}

func (wrapper *rmqClientWrapper) rejectDelivery(delivery *amqp.Delivery, cause error, readerLogger *zerolog.Logger) {
	decision := rejectionFor(delivery, cause)
	readerLogger.Info().AnErr("cause", cause).Bool("requeue", decision.requeue).Msg(decision.reason)
	if err := delivery.Reject(decision.requeue); err != nil {
		readerLogger.Err(err).Bool("requeue", decision.requeue).Msg("Failed to reject delivery")
	}
}
