// Package http is the REST adapter: echo handlers that translate requests into
// commands and queries and render results in the {success, message, data} envelope.
package http

import (
	"context"
	"net/http"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/notification"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Use case ports. The command and query handlers of the application layer
// satisfy them.
type (
	CreateOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) (commands.CreateOrderResult, error)
	}
	CreateWalkInOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateWalkInOrderCommand) (commands.CreateOrderResult, error)
	}
	CancelOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CancelOrderCommand) (*order.Order, error)
	}
	RescheduleOrderHandler interface {
		Handle(ctx context.Context, cmd commands.RescheduleOrderCommand) (*order.Order, error)
	}
	UpdateOrderStatusHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateOrderStatusCommand) (commands.OrderChangeResult, error)
	}
	UpdateOrderItemsHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateOrderItemsCommand) (commands.UpdateOrderItemsResult, error)
	}
	UpdateNearbyRadiusHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateNearbyRadiusCommand) (bool, error)
	}
	MarkNotificationReadHandler interface {
		Handle(ctx context.Context, cmd commands.MarkNotificationReadCommand) (*notification.Notification, error)
	}

	CustomerOrdersHandler interface {
		Handle(ctx context.Context, query queries.GetCustomerOrdersQuery) ([]queries.OrderView, error)
	}
	OrderDetailsHandler interface {
		Handle(ctx context.Context, query queries.GetOrderDetailsQuery) (queries.OrderView, error)
	}
	StoreOrdersHandler interface {
		Handle(ctx context.Context, query queries.GetStoreOrdersQuery) ([]queries.OrderView, error)
	}
	StoreTransactionsHandler interface {
		Handle(ctx context.Context, query queries.GetStoreTransactionsQuery) (queries.TransactionsView, error)
	}
	TimeSlotsHandler interface {
		Handle(ctx context.Context, query queries.GetTimeSlotsQuery) ([]queries.TimeSlot, error)
	}
	NearbyRadiusHandler interface {
		Handle(ctx context.Context, query queries.GetNearbyRadiusQuery) (queries.NearbyRadiusView, error)
	}
	CustomerNotificationsHandler interface {
		Handle(ctx context.Context, query queries.GetCustomerNotificationsQuery) (queries.InboxView, error)
	}
)

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	CreateOrder          CreateOrderHandler
	CreateWalkInOrder    CreateWalkInOrderHandler
	CancelOrder          CancelOrderHandler
	RescheduleOrder      RescheduleOrderHandler
	UpdateOrderStatus    UpdateOrderStatusHandler
	UpdateOrderItems     UpdateOrderItemsHandler
	UpdateNearbyRadius   UpdateNearbyRadiusHandler
	MarkNotificationRead MarkNotificationReadHandler

	CustomerOrders        CustomerOrdersHandler
	OrderDetails          OrderDetailsHandler
	StoreOrders           StoreOrdersHandler
	StoreTransactions     StoreTransactionsHandler
	TimeSlots             TimeSlotsHandler
	NearbyRadius          NearbyRadiusHandler
	CustomerNotifications CustomerNotificationsHandler
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	h            Handlers
	zone         *time.Location
	exposeErrors bool
}

// NewServer creates the server. zone is the display zone for pickup slots
// (UTC when nil); exposeErrors adds internal error text to 500 responses.
func NewServer(h Handlers, zone *time.Location, exposeErrors bool) *Server {
	if zone == nil {
		zone = time.UTC
	}
	return &Server{h: h, zone: zone, exposeErrors: exposeErrors}
}

// BookOrder handles POST /booking/book.
//
//	@Summary	Book a pickup
//	@Tags		booking
//	@Accept		json
//	@Produce	json
//	@Param		Idempotency-Key	header	string	false	"Replay key"
//	@Success	201	{object}	Response
//	@Failure	400	{object}	Response
//	@Failure	404	{object}	Response
//	@Router		/booking/book [post]
func (s *Server) BookOrder(c echo.Context) error {
	var req bookOrderRequest
	if err := bindBody(c, &req); err != nil {
		return s.writeError(c, err)
	}

	selections, err := parseServices(req.Services)
	if err != nil {
		return s.writeError(c, err)
	}

	window, err := kernel.NewPickupWindow(req.SlotStart, req.SlotEnd)
	if err != nil {
		return s.writeError(c, err)
	}

	cmd, err := commands.NewCreateOrderCommand(actorOf(c), req.AddressID, selections, window, req.Notes, req.IsExpress)
	if err != nil {
		return s.writeError(c, err)
	}

	result, err := s.h.CreateOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.writeError(c, err)
	}

	return respond(c, http.StatusCreated, "Booking created successfully", bookingJSON{
		Order:            orderFromDomain(result.Order, result.Services, s.zone),
		AssignedLocation: locationFromDomain(result.Location, result.DistanceKm),
		PickupSlot:       slotJSON(result.Order.Window(), s.zone),
	})
}

// GetTimeSlots handles GET /booking/time-slots.
//
//	@Summary	Pickup slots for a date
//	@Tags		booking
//	@Produce	json
//	@Param		date	query	string	true	"YYYY-MM-DD"
//	@Success	200	{object}	Response
//	@Failure	400	{object}	Response
//	@Router		/booking/time-slots [get]
func (s *Server) GetTimeSlots(c echo.Context) error {
	date, err := queryString(c, "date", true)
	if err != nil {
		return s.writeError(c, err)
	}

	query, err := queries.NewGetTimeSlotsQuery(date)
	if err != nil {
		return s.writeError(c, err)
	}

	slots, err := s.h.TimeSlots.Handle(c.Request().Context(), query)
	if err != nil {
		return s.writeError(c, err)
	}

	out := make([]timeSlotJSON, 0, len(slots))
	for _, slot := range slots {
		out = append(out, timeSlotJSON(slot))
	}
	return respond(c, http.StatusOK, "", out)
}

// GetBookingOrder handles GET /booking/orders/{orderId}.
//
//	@Summary	Order details
//	@Tags		booking
//	@Produce	json
//	@Param		orderId	path	int	true	"Order id"
//	@Success	200	{object}	Response
//	@Failure	404	{object}	Response
//	@Router		/booking/orders/{orderId} [get]
func (s *Server) GetBookingOrder(c echo.Context) error {
	orderID, err := pathID(c, "orderId")
	if err != nil {
		return s.writeError(c, err)
	}

	query, err := queries.NewGetOrderDetailsQuery(actorOf(c), orderID)
	if err != nil {
		return s.writeError(c, err)
	}

	view, err := s.h.OrderDetails.Handle(c.Request().Context(), query)
	if err != nil {
		return s.writeError(c, err)
	}
	return respond(c, http.StatusOK, "", orderFromView(view, s.zone))
}

// GetCustomerOrders handles GET /orders.
//
//	@Summary	Orders of the customer
//	@Tags		orders
//	@Produce	json
//	@Success	200	{object}	Response
//	@Router		/orders [get]
func (s *Server) GetCustomerOrders(c echo.Context) error {
	query, err := queries.NewGetCustomerOrdersQuery(actorOf(c).ID())
	if err != nil {
		return s.writeError(c, err)
	}

	views, err := s.h.CustomerOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return s.writeError(c, err)
	}
	return respond(c, http.StatusOK, "", ordersFromViews(views, s.zone))
}

// CancelOrder handles POST /orders/{orderId}/cancel.
//
//	@Summary	Cancel an order
//	@Tags		orders
//	@Produce	json
//	@Param		orderId	path	int	true	"Order id"
//	@Success	200	{object}	Response
//	@Failure	400	{object}	Response
//	@Failure	404	{object}	Response
//	@Router		/orders/{orderId}/cancel [post]
func (s *Server) CancelOrder(c echo.Context) error {
	orderID, err := pathID(c, "orderId")
	if err != nil {
		return s.writeError(c, err)
	}

	cmd, err := commands.NewCancelOrderCommand(actorOf(c), orderID)
	if err != nil {
		return s.writeError(c, err)
	}

	o, err := s.h.CancelOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.writeError(c, err)
	}
	return respond(c, http.StatusOK, "Order cancelled successfully", orderFromDomain(o, nil, s.zone))
}

// RescheduleOrder handles PUT /orders/{orderId}/reschedule.
//
//	@Summary	Move the pickup window
//	@Tags		orders
//	@Accept		json
//	@Produce	json
//	@Param		orderId	path	int	true	"Order id"
//	@Success	200	{object}	Response
//	@Failure	400	{object}	Response
//	@Failure	404	{object}	Response
//	@Router		/orders/{orderId}/reschedule [put]
func (s *Server) RescheduleOrder(c echo.Context) error {
	orderID, err := pathID(c, "orderId")
	if err != nil {
		return s.writeError(c, err)
	}

	var req rescheduleRequest
	if err = bindBody(c, &req); err != nil {
		return s.writeError(c, err)
	}

	window, err := kernel.NewPickupWindow(req.PickupSlotStart, req.PickupSlotEnd)
	if err != nil {
		return s.writeError(c, err)
	}

	cmd, err := commands.NewRescheduleOrderCommand(actorOf(c), orderID, window)
	if err != nil {
		return s.writeError(c, err)
	}

	o, err := s.h.RescheduleOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.writeError(c, err)
	}
	return respond(c, http.StatusOK, "Order rescheduled successfully", orderFromDomain(o, nil, s.zone))
}

// UpdateOrderStatus handles PUT /orders/{orderId}/status.
//
//	@Summary	Advance the order lifecycle
//	@Tags		orders
//	@Accept		json
//	@Produce	json
//	@Param		orderId	path	int	true	"Order id"
//	@Success	200	{object}	Response
//	@Failure	400	{object}	Response
//	@Failure	403	{object}	Response
//	@Failure	404	{object}	Response
//	@Router		/orders/{orderId}/status [put]
func (s *Server) UpdateOrderStatus(c echo.Context) error {
	orderID, err := pathID(c, "orderId")
	if err != nil {
		return s.writeError(c, err)
	}

	var req updateStatusRequest
	if err = bindBody(c, &req); err != nil {
		return s.writeError(c, err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(actorOf(c), orderID, req.Status, req.Notes)
	if err != nil {
		return s.writeError(c, err)
	}

	result, err := s.h.UpdateOrderStatus.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.writeError(c, err)
	}

	message := "Order status updated successfully"
	if !result.Changed {
		message = "Order status unchanged"
	}
	return respond(c, http.StatusOK, message, orderFromDomain(result.Order, nil, s.zone))
}

// GetStoreOrders handles GET /stores/orders.
//
//	@Summary	Orders of the operator's stores
//	@Tags		stores
//	@Produce	json
//	@Param		status	query	string	false	"Status filter or all"
//	@Success	200	{object}	Response
//	@Failure	400	{object}	Response
//	@Router		/stores/orders [get]
func (s *Server) GetStoreOrders(c echo.Context) error {
	status, err := queryString(c, "status", false)
	if err != nil {
		return s.writeError(c, err)
	}

	query, err := queries.NewGetStoreOrdersQuery(actorOf(c), status)
	if err != nil {
		return s.writeError(c, err)
	}

	views, err := s.h.StoreOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return s.writeError(c, err)
	}
	return respond(c, http.StatusOK, "", ordersFromViews(views, s.zone))
}

// GetStoreTransactions handles GET /stores/transactions.
//
//	@Summary	Revenue from delivered orders
//	@Tags		stores
//	@Produce	json
//	@Param		period		query	string	false	"30, 90 or 365 days"
//	@Param		startDate	query	string	false	"YYYY-MM-DD, with endDate"
//	@Param		endDate		query	string	false	"YYYY-MM-DD, inclusive"
//	@Success	200	{object}	Response
//	@Failure	400	{object}	Response
//	@Router		/stores/transactions [get]
func (s *Server) GetStoreTransactions(c echo.Context) error {
	period, err := queryString(c, "period", false)
	if err != nil {
		return s.writeError(c, err)
	}
	startDate, err := queryString(c, "startDate", false)
	if err != nil {
		return s.writeError(c, err)
	}
	endDate, err := queryString(c, "endDate", false)
	if err != nil {
		return s.writeError(c, err)
	}

	query, err := queries.NewGetStoreTransactionsQuery(actorOf(c), period, startDate, endDate)
	if err != nil {
		return s.writeError(c, err)
	}

	view, err := s.h.StoreTransactions.Handle(c.Request().Context(), query)
	if err != nil {
		return s.writeError(c, err)
	}
	return respond(c, http.StatusOK, "", transactionsFromView(view))
}

// CreateWalkInOrder handles POST /stores/orders.
//
//	@Summary	Create a walk-in order at the counter
//	@Tags		stores
//	@Accept		json
//	@Produce	json
//	@Param		Idempotency-Key	header	string	false	"Replay key"
//	@Success	201	{object}	Response
//	@Failure	400	{object}	Response
//	@Failure	403	{object}	Response
//	@Failure	404	{object}	Response
//	@Router		/stores/orders [post]
func (s *Server) CreateWalkInOrder(c echo.Context) error {
	var req walkInOrderRequest
	if err := bindBody(c, &req); err != nil {
		return s.writeError(c, err)
	}

	selections, err := parseServices(req.Services)
	if err != nil {
		return s.writeError(c, err)
	}

	cmd, err := commands.NewCreateWalkInOrderCommand(
		actorOf(c), req.LocationID, req.CustomerID, req.AddressID, selections, req.Notes, req.IsExpress)
	if err != nil {
		return s.writeError(c, err)
	}

	result, err := s.h.CreateWalkInOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.writeError(c, err)
	}
	return respond(c, http.StatusCreated, "Order created successfully",
		orderFromDomain(result.Order, result.Services, s.zone))
}

// UpdateOrderItems handles PUT /stores/orders/{orderId}/items.
//
//	@Summary	Edit order items
//	@Tags		stores
//	@Accept		json
//	@Produce	json
//	@Param		orderId	path	int	true	"Order id"
//	@Success	200	{object}	Response
//	@Failure	400	{object}	Response
//	@Failure	404	{object}	Response
//	@Router		/stores/orders/{orderId}/items [put]
func (s *Server) UpdateOrderItems(c echo.Context) error {
	orderID, err := pathID(c, "orderId")
	if err != nil {
		return s.writeError(c, err)
	}

	var req updateItemsRequest
	if err = bindBody(c, &req); err != nil {
		return s.writeError(c, err)
	}

	edits, err := req.edits()
	if err != nil {
		return s.writeError(c, err)
	}

	cmd, err := commands.NewUpdateOrderItemsCommand(actorOf(c), orderID, edits)
	if err != nil {
		return s.writeError(c, err)
	}

	result, err := s.h.UpdateOrderItems.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.writeError(c, err)
	}
	return respond(c, http.StatusOK, "Order items updated successfully",
		orderFromDomain(result.Order, result.Services, s.zone))
}

// GetNearbyRadius handles GET /settings/nearby-radius.
//
//	@Summary	Read the store search radius
//	@Tags		settings
//	@Produce	json
//	@Success	200	{object}	Response
//	@Failure	404	{object}	Response
//	@Router		/settings/nearby-radius [get]
func (s *Server) GetNearbyRadius(c echo.Context) error {
	view, err := s.h.NearbyRadius.Handle(c.Request().Context(), queries.NewGetNearbyRadiusQuery())
	if err != nil {
		return s.writeError(c, err)
	}
	return respond(c, http.StatusOK, "", nearbyRadiusJSON(view))
}

// UpdateNearbyRadius handles PUT /settings/nearby-radius.
//
//	@Summary	Set the store search radius
//	@Tags		settings
//	@Accept		json
//	@Produce	json
//	@Success	200	{object}	Response
//	@Success	201	{object}	Response
//	@Failure	400	{object}	Response
//	@Router		/settings/nearby-radius [put]
func (s *Server) UpdateNearbyRadius(c echo.Context) error {
	var req nearbyRadiusRequest
	if err := bindBody(c, &req); err != nil {
		return s.writeError(c, err)
	}
	if req.Value == nil {
		return s.writeError(c, errs.NewValueIsRequiredError("value"))
	}

	cmd, err := commands.NewUpdateNearbyRadiusCommand(actorOf(c), *req.Value)
	if err != nil {
		return s.writeError(c, err)
	}

	created, err := s.h.UpdateNearbyRadius.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.writeError(c, err)
	}

	status, message := http.StatusOK, "Nearby radius updated successfully"
	if created {
		status, message = http.StatusCreated, "Nearby radius created successfully"
	}
	radius, _ := cmd.RadiusKm().Float64()
	return respond(c, status, message, nearbyRadiusJSON{
		Key:      ports.NearbyRadiusKey,
		Value:    cmd.RadiusKm().String(),
		RadiusKm: radius,
	})
}

// GetNotifications handles GET /notifications.
//
//	@Summary	Customer inbox
//	@Tags		notifications
//	@Produce	json
//	@Param		unread	query	bool	false	"Only unread"
//	@Success	200	{object}	Response
//	@Router		/notifications [get]
func (s *Server) GetNotifications(c echo.Context) error {
	unreadOnly, err := queryBool(c, "unread")
	if err != nil {
		return s.writeError(c, err)
	}

	query, err := queries.NewGetCustomerNotificationsQuery(actorOf(c).ID(), unreadOnly)
	if err != nil {
		return s.writeError(c, err)
	}

	inbox, err := s.h.CustomerNotifications.Handle(c.Request().Context(), query)
	if err != nil {
		return s.writeError(c, err)
	}
	return respond(c, http.StatusOK, "", inboxFromView(inbox))
}

// MarkNotificationRead handles PUT /notifications/{id}/read.
//
//	@Summary	Mark a notification as read
//	@Tags		notifications
//	@Produce	json
//	@Param		id	path	int	true	"Notification id"
//	@Success	200	{object}	Response
//	@Failure	404	{object}	Response
//	@Router		/notifications/{id}/read [put]
func (s *Server) MarkNotificationRead(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return s.writeError(c, err)
	}

	cmd, err := commands.NewMarkNotificationReadCommand(actorOf(c), id)
	if err != nil {
		return s.writeError(c, err)
	}

	n, err := s.h.MarkNotificationRead.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.writeError(c, err)
	}
	return respond(c, http.StatusOK, "Notification marked as read", notificationFromDomain(n))
}

// Health handles GET /health.
func (s *Server) Health(c echo.Context) error {
	return c.String(http.StatusOK, "Healthy")
}
