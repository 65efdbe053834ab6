package http

import (
	"log/slog"
	"net/http"

	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// RouterConfig carries the collaborators of the HTTP edge. Metrics, Docs and
// Idempotency are optional.
type RouterConfig struct {
	Auth        *Authenticator
	Logger      *slog.Logger
	Metrics     RouterMetrics
	Idempotency IdempotencyStore
	// OpenAPI returns the OpenAPI 3 document served at /openapi.json.
	OpenAPI  func() ([]byte, error)
	LogLevel log.Lvl
}

// RouterMetrics is satisfied by *metrics.Metrics.
type RouterMetrics interface {
	HTTPRecorder
	Handler() http.Handler
	IdempotentReplay()
}

// NewRouter builds the echo instance with middleware and every route.
func NewRouter(s *Server, cfg RouterConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Logger.SetLevel(cfg.LogLevel)
	e.HTTPErrorHandler = s.HTTPErrorHandler

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(RequestLogger(logger))
	var onReplay func()
	if cfg.Metrics != nil {
		e.Use(Metrics(cfg.Metrics))
		onReplay = cfg.Metrics.IdempotentReplay
	}
	e.Use(middleware.Recover())

	e.GET("/health", s.Health)
	if cfg.Metrics != nil {
		e.GET("/metrics", echo.WrapHandler(cfg.Metrics.Handler()))
	}
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	if cfg.OpenAPI != nil {
		e.GET("/openapi.json", func(c echo.Context) error {
			doc, err := cfg.OpenAPI()
			if err != nil {
				return s.writeError(c, err)
			}
			return c.JSONBlob(http.StatusOK, doc)
		})
	}

	customer := cfg.Auth.Require(kernel.RoleCustomer)
	operator := cfg.Auth.Require(kernel.RoleOperator)
	anyone := cfg.Auth.Require(kernel.RoleCustomer, kernel.RoleOperator)
	idempotent := Idempotent(cfg.Idempotency, onReplay)

	booking := e.Group("/booking")
	booking.POST("/book", s.BookOrder, customer, idempotent)
	booking.GET("/time-slots", s.GetTimeSlots, anyone)
	booking.GET("/orders/:orderId", s.GetBookingOrder, customer)

	orders := e.Group("/orders")
	orders.GET("", s.GetCustomerOrders, customer)
	orders.POST("/:orderId/cancel", s.CancelOrder, customer)
	orders.PUT("/:orderId/reschedule", s.RescheduleOrder, customer)
	orders.PUT("/:orderId/status", s.UpdateOrderStatus, anyone)

	stores := e.Group("/stores", operator)
	stores.GET("/orders", s.GetStoreOrders)
	stores.GET("/transactions", s.GetStoreTransactions)
	stores.POST("/orders", s.CreateWalkInOrder, idempotent)
	stores.PUT("/orders/:orderId/items", s.UpdateOrderItems)

	settings := e.Group("/settings", operator)
	settings.GET("/nearby-radius", s.GetNearbyRadius)
	settings.PUT("/nearby-radius", s.UpdateNearbyRadius)

	notifications := e.Group("/notifications", customer)
	notifications.GET("", s.GetNotifications)
	notifications.PUT("/:id/read", s.MarkNotificationRead)

	return e
}
