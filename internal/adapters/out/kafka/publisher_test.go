package kafka_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	fkafka "fulfillment/internal/adapters/out/kafka"
	"fulfillment/internal/core/ports"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingWriter struct {
	messages []kafka.Message
	err      error
	closed   bool
}

func (w *recordingWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *recordingWriter) Close() error {
	w.closed = true
	return nil
}

func TestNotificationPublisher_Publish(t *testing.T) {
	writer := &recordingWriter{}
	publisher := fkafka.NewNotificationPublisherWithWriter(writer)
	occurred := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)

	err := publisher.Publish(context.Background(), ports.NotificationEvent{
		EventID:        "a9d7c7f4-5a43-4a7e-9b1e-0f0c3f2d1a11",
		NotificationID: 77,
		CustomerID:     10,
		LocationID:     1,
		OrderID:        42,
		Status:         "confirmed",
		Type:           "order_status_updated",
		Title:          "Order Confirmed",
		Message:        "Your order #42 has been confirmed by the store.",
		OccurredAt:     occurred,
	})
	require.NoError(t, err)

	require.Len(t, writer.messages, 1)
	msg := writer.messages[0]
	assert.Equal(t, "10", string(msg.Key))
	assert.True(t, msg.Time.Equal(occurred))
	require.Len(t, msg.Headers, 1)
	assert.Equal(t, fkafka.NotificationEventType, string(msg.Headers[0].Value))

	var body map[string]any
	require.NoError(t, json.Unmarshal(msg.Value, &body))
	assert.Equal(t, "a9d7c7f4-5a43-4a7e-9b1e-0f0c3f2d1a11", body["eventId"])
	assert.InDelta(t, 42, body["orderId"], 0)
	assert.Equal(t, "confirmed", body["status"])
}

func TestNotificationPublisher_WriterError(t *testing.T) {
	writer := &recordingWriter{err: errors.New("leader not available")}
	publisher := fkafka.NewNotificationPublisherWithWriter(writer)

	err := publisher.Publish(context.Background(), ports.NotificationEvent{CustomerID: 10})

	require.EqualError(t, err, "leader not available")
	require.NoError(t, publisher.Close())
	assert.True(t, writer.closed)
}

func TestParseBrokers(t *testing.T) {
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, fkafka.ParseBrokers(" kafka-1:9092, ,kafka-2:9092 "))
	assert.Empty(t, fkafka.ParseBrokers(""))
}
