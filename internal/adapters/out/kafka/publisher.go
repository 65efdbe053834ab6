// Package kafka publishes notification events to a Kafka topic.
package kafka

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"fulfillment/internal/core/ports"

	"github.com/segmentio/kafka-go"
)

const eventTypeHeader = "event-type"

// NotificationEventType is the event-type header carried by every message.
const NotificationEventType = "order.notification"

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// NotificationPublisher writes one message per event, keyed by customer id so a
// customer's events stay on one partition in order.
type NotificationPublisher struct {
	writer messageWriter
}

// ParseBrokers splits a comma separated broker list and drops blanks.
func ParseBrokers(csv string) []string {
	brokers := []string{}
	for _, b := range strings.Split(csv, ",") {
		b = strings.TrimSpace(b)
		if b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

func NewNotificationPublisher(brokers []string, topic string) *NotificationPublisher {
	return &NotificationPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
			BatchTimeout: 10 * time.Millisecond,
		},
	}
}

func (p *NotificationPublisher) Publish(ctx context.Context, event ports.NotificationEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.FormatInt(event.CustomerID, 10)),
		Value: data,
		Time:  event.OccurredAt,
		Headers: []kafka.Header{
			{Key: eventTypeHeader, Value: []byte(NotificationEventType)},
		},
	})
}

func (p *NotificationPublisher) Close() error {
	return p.writer.Close()
}

var _ ports.NotificationPublisher = (*NotificationPublisher)(nil)
