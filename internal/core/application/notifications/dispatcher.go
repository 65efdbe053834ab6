// Package notifications delivers customer notices after the triggering
// transaction has committed: one inbox row, then an optional broker event.
package notifications

import (
	"context"
	"log/slog"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/notification"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/logging"

	"github.com/google/uuid"
)

// Failure stages reported to the Recorder.
const (
	StageBuild   = "build"
	StageStore   = "store"
	StagePublish = "publish"
)

// DefaultPublishTimeout bounds one broker publish.
const DefaultPublishTimeout = 5 * time.Second

// Recorder counts delivery outcomes.
type Recorder interface {
	NotificationDelivered()
	NotificationFailed(stage string)
}

// Dispatcher implements commands.Notifier. It never fails the caller: every
// problem is logged and counted, and nothing is retried.
type Dispatcher struct {
	repository ports.NotificationRepository
	publisher  ports.NotificationPublisher
	clock      kernel.Clock
	logger     *slog.Logger
	recorder   Recorder

	publishTimeout time.Duration
}

// NewDispatcher wires a dispatcher. repository must not be bound to a caller's
// transaction. A nil publisher stores notifications only; a nil recorder
// disables counting.
func NewDispatcher(
	repository ports.NotificationRepository,
	publisher ports.NotificationPublisher,
	clock kernel.Clock,
	logger *slog.Logger,
	recorder Recorder,
) *Dispatcher {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &Dispatcher{
		repository: repository,
		publisher:  publisher,
		clock:      clock,
		logger:     logger.With("component", "notification_dispatcher"),
		recorder:   recorder,

		publishTimeout: DefaultPublishTimeout,
	}
}

// WithPublishTimeout sets the publish bound; non-positive values keep the default.
func (d *Dispatcher) WithPublishTimeout(timeout time.Duration) *Dispatcher {
	if timeout > 0 {
		d.publishTimeout = timeout
	}
	return d
}

func (d *Dispatcher) Dispatch(ctx context.Context, notice notification.Notice) {
	ctx = context.WithoutCancel(ctx)
	logger := d.logger
	if scoped := logging.FromCtx(ctx); scoped != slog.Default() {
		logger = scoped.With("component", "notification_dispatcher")
	}
	logger = logger.With(
		"customer_id", notice.CustomerID,
		"order_id", notice.OrderID,
		"type", string(notice.Type),
	)

	n, err := notification.NewNotification(notice, d.clock.Now())
	if err != nil {
		d.fail(ctx, logger, StageBuild, err)
		return
	}

	stored, err := d.repository.Add(ctx, n)
	if err != nil {
		d.fail(ctx, logger, StageStore, err)
		return
	}
	d.recorder.NotificationDelivered()

	if d.publisher == nil {
		return
	}

	event := ports.NotificationEvent{
		EventID:        uuid.NewString(),
		NotificationID: stored.ID(),
		CustomerID:     stored.CustomerID(),
		LocationID:     stored.LocationID(),
		OrderID:        notice.OrderID,
		Status:         string(notice.Status),
		Type:           string(stored.Type()),
		Title:          stored.Title(),
		Message:        stored.Message(),
		OccurredAt:     stored.CreatedAt(),
	}
	publishCtx, cancel := context.WithTimeout(ctx, d.publishTimeout)
	defer cancel()
	if err = d.publisher.Publish(publishCtx, event); err != nil {
		d.fail(ctx, logger.With("event_id", event.EventID), StagePublish, err)
	}
}

func (d *Dispatcher) fail(ctx context.Context, logger *slog.Logger, stage string, err error) {
	d.recorder.NotificationFailed(stage)
	logger.ErrorContext(ctx, "Notification delivery failed", "stage", stage, "error", err)
}

type nopRecorder struct{}

func (nopRecorder) NotificationDelivered()    {}
func (nopRecorder) NotificationFailed(string) {}
