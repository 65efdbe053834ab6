package http

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"

	"fulfillment/internal/logging"

	"github.com/labstack/echo/v4"
)

// HeaderIdempotencyKey names the request header that makes a POST replayable.
const HeaderIdempotencyKey = "Idempotency-Key"

// HeaderIdempotentReplay is set on responses served from the store.
const HeaderIdempotentReplay = "Idempotent-Replayed"

// IdempotencyStore is satisfied by the Redis adapter.
type IdempotencyStore interface {
	TryLock(ctx context.Context, scope, key string) (bool, error)
	Release(ctx context.Context, scope, key string) error
	Remember(ctx context.Context, scope, key string, value []byte) error
	Recall(ctx context.Context, scope, key string) ([]byte, bool, error)
}

type storedResponse struct {
	Status      int    `json:"status"`
	ContentType string `json:"contentType"`
	Body        []byte `json:"body"`
}

// Idempotent replays the first successful response for a repeated
// Idempotency-Key from the same principal on the same route. A request that
// arrives while the first is still running gets 409. Store failures are logged
// and the request runs as if no key was sent.
func Idempotent(store IdempotencyStore, onReplay func()) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := c.Request().Header.Get(HeaderIdempotencyKey)
			if store == nil || key == "" {
				return next(c)
			}

			ctx := c.Request().Context()
			logger := logging.FromCtx(ctx)
			scope := actorOf(c).String() + ":" + c.Path()

			raw, found, err := store.Recall(ctx, scope, key)
			if err != nil {
				logger.WarnContext(ctx, "Idempotency recall failed", "error", err)
				return next(c)
			}
			if found {
				var stored storedResponse
				if err = json.Unmarshal(raw, &stored); err == nil {
					if onReplay != nil {
						onReplay()
					}
					c.Response().Header().Set(HeaderIdempotentReplay, "true")
					return c.Blob(stored.Status, stored.ContentType, stored.Body)
				}
				logger.WarnContext(ctx, "Stored idempotent response is unreadable", "error", err)
			}

			locked, err := store.TryLock(ctx, scope, key)
			if err != nil {
				logger.WarnContext(ctx, "Idempotency lock failed", "error", err)
				return next(c)
			}
			if !locked {
				return fail(c, http.StatusConflict, "A request with this Idempotency-Key is already in progress", "")
			}

			recorder := &bodyRecorder{ResponseWriter: c.Response().Writer}
			c.Response().Writer = recorder

			err = next(c)
			status := c.Response().Status
			if err != nil || status < 200 || status >= 300 {
				if releaseErr := store.Release(ctx, scope, key); releaseErr != nil {
					logger.WarnContext(ctx, "Idempotency release failed", "error", releaseErr)
				}
				return err
			}

			value, err := json.Marshal(storedResponse{
				Status:      status,
				ContentType: c.Response().Header().Get(echo.HeaderContentType),
				Body:        recorder.body.Bytes(),
			})
			if err == nil {
				err = store.Remember(ctx, scope, key, value)
			}
			if err != nil {
				logger.WarnContext(ctx, "Idempotent response not stored", "error", err)
			}
			return nil
		}
	}
}

type bodyRecorder struct {
	http.ResponseWriter
	body bytes.Buffer
}

func (r *bodyRecorder) Write(b []byte) (int, error) {
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}

func (r *bodyRecorder) Flush() {
	if f, ok := r.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func (r *bodyRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	if h, ok := r.ResponseWriter.(http.Hijacker); ok {
		return h.Hijack()
	}
	return nil, nil, errors.New("response writer does not support hijacking")
}
