package kafka

import "github.com/segmentio/kafka-go"

type MessageWriter = messageWriter

func NewNotificationPublisherWithWriter(w MessageWriter) *NotificationPublisher {
	return &NotificationPublisher{writer: w}
}

var _ MessageWriter = (*kafka.Writer)(nil)
