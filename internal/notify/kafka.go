package notify

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
)

// KafkaSink publishes the notification payload as JSON to a topic chosen by
// the notification kind. Kinds without a topic are skipped.
type KafkaSink struct {
	writer *kafka.Writer
	topics map[Kind]string
	logger logrus.FieldLogger
}

func NewKafkaSink(brokers []string, topics map[Kind]string, logger logrus.FieldLogger) *KafkaSink {
	writer := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Balancer:               &kafka.LeastBytes{},
		BatchTimeout:           50 * time.Millisecond,
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
	}

	return &KafkaSink{
		writer: writer,
		topics: topics,
		logger: logger,
	}
}

func (k *KafkaSink) Name() string {
	return "kafka"
}

func (k *KafkaSink) Deliver(ctx context.Context, n Notification) Result {
	topic, ok := k.topics[n.Kind]
	if !ok || topic == "" {
		return Failed("no topic for " + string(n.Kind))
	}

	payload := n.Payload
	if payload == nil {
		payload = map[string]string{"subject": n.Subject, "body": n.Body}
	}

	data, err := json.Marshal(payload)
	if err != nil {
		k.logger.WithError(err).Error("failed to encode event")
		return Failed("encode event: " + err.Error())
	}

	if err := k.writer.WriteMessages(ctx, kafka.Message{
		Topic: topic,
		Key:   []byte(n.Key),
		Value: data,
	}); err != nil {
		k.logger.WithError(err).WithField("topic", topic).Error("failed to publish event")
		return Failed("publish event: " + err.Error())
	}

	k.logger.WithField("topic", topic).Debug("event published")
	return Sent()
}

func (k *KafkaSink) Close() error {
	return k.writer.Close()
}
