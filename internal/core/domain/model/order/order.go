package order

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// PaymentModeCash is the only supported payment mode.
const PaymentModeCash = "cash"

const reasonItemsLocked = "Order items cannot be edited once the order is delivered or cancelled"

var (
	// ErrOrderIsNotConstructed is returned when an Order was not created through
	// NewOrder, NewWalkInOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	ErrDeliveryAddressIsNotConstructed = errs.NewValueIsRequiredError(
		"delivery address must be created via NewDeliveryAddress constructor")
)

// DeliveryAddress is the copy of the customer address taken when the order is booked.
// Later edits of the address book never reach an existing order.
type DeliveryAddress struct { //nolint:recvcheck //using for validation
	addressID int64
	line      string
	point     kernel.GeoPoint
	guard     guard.ConstructorGuard
}

func NewDeliveryAddress(addressID int64, line string, point kernel.GeoPoint) (DeliveryAddress, error) {
	a := DeliveryAddress{
		addressID: addressID,
		line:      strings.TrimSpace(line),
		point:     point,
		guard:     guard.NewConstructorGuard(),
	}

	var idErr error
	if addressID <= 0 {
		idErr = errs.NewValueIsInvalidErrorWithCause("addressId", fmt.Errorf("%d is not greater than 0", addressID))
	}
	if err := errors.Join(idErr, point.Validate()); err != nil {
		return DeliveryAddress{}, err
	}

	return a, nil
}

func (a DeliveryAddress) Validate() error {
	return a.guard.Validate(ErrDeliveryAddressIsNotConstructed)
}

func (a DeliveryAddress) AddressID() int64 {
	return a.addressID
}

func (a DeliveryAddress) Line() string {
	return a.line
}

func (a DeliveryAddress) Point() kernel.GeoPoint {
	return a.point
}

// Booking carries everything needed to open a new order.
type Booking struct {
	CustomerID int64
	LocationID int64
	// Address is required for customer bookings and optional for walk-ins.
	Address   *DeliveryAddress
	Window    kernel.PickupWindow
	Items     []*Item
	IsExpress bool
	Notes     string
}

// Snapshot is the full state of an order, used to persist and restore it.
type Snapshot struct {
	ID          int64
	CustomerID  int64
	LocationID  int64
	Address     *DeliveryAddress
	Window      kernel.PickupWindow
	Status      Status
	IsExpress   bool
	IsWalkIn    bool
	PaymentMode string
	Notes       string
	Milestones  Milestones
	Items       []*Item
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Order is the aggregate root for one customer booking.
//
// Order follows these invariants:
//   - It is assigned to exactly one location and the assignment never changes
//   - It owns at least one item when created; service ids are unique among its items
//   - Each milestone is stamped at most once
//   - Status changes only along the lifecycle graph (see ApplyTransition)
type Order struct {
	id          int64
	customerID  int64
	locationID  int64
	address     *DeliveryAddress
	window      kernel.PickupWindow
	status      Status
	isExpress   bool
	isWalkIn    bool
	paymentMode string
	notes       string
	milestones  Milestones
	items       []*Item
	createdAt   time.Time
	updatedAt   time.Time

	isConstructed bool
}

// NewOrder opens a customer booking in the pending status.
//
// Example:
//
//	item, _ := order.NewItem(3, 2, nil)
//	o, err := order.NewOrder(order.Booking{
//	    CustomerID: 10,
//	    LocationID: 4,
//	    Address:    &address,
//	    Window:     window,
//	    Items:      []*order.Item{item},
//	}, now)
func NewOrder(b Booking, now time.Time) (*Order, error) {
	var addrErr error
	if b.Address == nil {
		addrErr = errs.NewValueIsRequiredError("address")
	}

	o, err := newOrder(b, Pending, now)
	if err = errors.Join(addrErr, err); err != nil {
		return nil, err
	}

	return o, nil
}

// NewWalkInOrder opens an order handed over at the store counter. It starts in
// picked_up with the pickup window and the picked_up stamp both set to now.
func NewWalkInOrder(b Booking, now time.Time) (*Order, error) {
	window, err := kernel.NewPickupWindow(now, now)
	if err != nil {
		return nil, err
	}
	b.Window = window

	o, err := newOrder(b, PickedUp, now)
	if err != nil {
		return nil, err
	}

	o.isWalkIn = true
	o.milestones.stamp(PickedUp, now)
	return o, nil
}

func newOrder(b Booking, status Status, now time.Time) (*Order, error) {
	o := &Order{
		status:        status,
		isExpress:     b.IsExpress,
		paymentMode:   PaymentModeCash,
		notes:         strings.TrimSpace(b.Notes),
		createdAt:     now.UTC(),
		updatedAt:     now.UTC(),
		isConstructed: true,
	}

	var itemsErr error
	if len(b.Items) == 0 {
		itemsErr = errs.NewValueIsRequiredError("services")
	}

	if err := errors.Join(
		itemsErr,
		o.setCustomerID(b.CustomerID),
		o.setLocationID(b.LocationID),
		o.setAddress(b.Address),
		o.setWindow(b.Window),
		o.setItems(b.Items),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds a persisted order. Unlike NewOrder it accepts an empty item
// list, because an operator may have removed every item.
func RestoreOrder(s Snapshot) (*Order, error) {
	o := &Order{
		status:        s.Status,
		isExpress:     s.IsExpress,
		isWalkIn:      s.IsWalkIn,
		paymentMode:   s.PaymentMode,
		notes:         s.Notes,
		milestones:    s.Milestones,
		createdAt:     s.CreatedAt.UTC(),
		updatedAt:     s.UpdatedAt.UTC(),
		isConstructed: true,
	}

	var idErr, modeErr error
	if s.ID <= 0 {
		idErr = errs.NewValueIsInvalidErrorWithCause("order id", fmt.Errorf("%d is not greater than 0", s.ID))
	}
	if s.PaymentMode != PaymentModeCash {
		modeErr = errs.NewValueIsInvalidErrorWithCause("paymentMode", fmt.Errorf("%q is not supported", s.PaymentMode))
	}

	items := slices.Clone(s.Items)
	slices.SortStableFunc(items, func(a, b *Item) int {
		return compareInt64(a.id, b.id)
	})

	if err := errors.Join(
		idErr,
		modeErr,
		s.Status.Validate(),
		o.setCustomerID(s.CustomerID),
		o.setLocationID(s.LocationID),
		o.setAddress(s.Address),
		o.setWindow(s.Window),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	o.id = s.ID
	return o, nil
}

func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// Snapshot exports the full state of the order.
func (o *Order) Snapshot() Snapshot {
	return Snapshot{
		ID:          o.id,
		CustomerID:  o.customerID,
		LocationID:  o.locationID,
		Address:     o.address,
		Window:      o.window,
		Status:      o.status,
		IsExpress:   o.isExpress,
		IsWalkIn:    o.isWalkIn,
		PaymentMode: o.paymentMode,
		Notes:       o.notes,
		Milestones:  o.milestones,
		Items:       o.Items(),
		CreatedAt:   o.createdAt,
		UpdatedAt:   o.updatedAt,
	}
}

// ID is zero until the order is persisted.
func (o *Order) ID() int64 {
	return o.id
}

func (o *Order) CustomerID() int64 {
	return o.customerID
}

func (o *Order) LocationID() int64 {
	return o.locationID
}

// Address returns the delivery address snapshot, or nil for walk-ins without one.
func (o *Order) Address() *DeliveryAddress {
	return o.address
}

func (o *Order) Window() kernel.PickupWindow {
	return o.window
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) IsExpress() bool {
	return o.isExpress
}

func (o *Order) IsWalkIn() bool {
	return o.isWalkIn
}

func (o *Order) PaymentMode() string {
	return o.paymentMode
}

func (o *Order) Notes() string {
	return o.notes
}

func (o *Order) Milestones() Milestones {
	return o.milestones
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// Items returns the items ordered by persistence id, new items last.
func (o *Order) Items() []*Item {
	return slices.Clone(o.items)
}

// ItemFor returns the item booked for serviceID, or nil.
func (o *Order) ItemFor(serviceID int64) *Item {
	for _, item := range o.items {
		if item.serviceID == serviceID {
			return item
		}
	}
	return nil
}

// ServiceIDs returns the distinct service ids of the items.
func (o *Order) ServiceIDs() []int64 {
	ids := make([]int64, 0, len(o.items))
	for _, item := range o.items {
		ids = append(ids, item.serviceID)
	}
	return ids
}

// PrimaryServiceID is the service of the first item. It stands in for the single
// service reference older clients expect; zero when the order has no items.
func (o *Order) PrimaryServiceID() int64 {
	if len(o.items) == 0 {
		return 0
	}
	return o.items[0].serviceID
}

// IsOwnedBy reports whether customerID booked the order.
func (o *Order) IsOwnedBy(customerID int64) bool {
	return o.customerID == customerID
}

// EnsureCustomerModifiable fails unless the order is pending or confirmed.
func (o *Order) EnsureCustomerModifiable() error {
	if !o.status.IsCustomerModifiable() {
		return errs.NewInvalidTransitionError(string(o.status), "", ReasonNotModifiable)
	}
	return nil
}

// Reschedule replaces the pickup window. Only pending and confirmed orders can be rescheduled.
func (o *Order) Reschedule(window kernel.PickupWindow, at time.Time) error {
	if err := o.EnsureCustomerModifiable(); err != nil {
		return err
	}
	if err := window.Validate(); err != nil {
		return err
	}

	o.window = window
	o.touch(at)
	return nil
}

// AppendNotes adds operator notes on a new line. Blank notes are ignored.
func (o *Order) AppendNotes(notes string, at time.Time) {
	notes = strings.TrimSpace(notes)
	if notes == "" {
		return
	}

	if o.notes == "" {
		o.notes = notes
	} else {
		o.notes = o.notes + "\n" + notes
	}
	o.touch(at)
}

// UpsertItem sets the quantity and stored total of the item for serviceID,
// creating the item when the order does not have it yet.
func (o *Order) UpsertItem(serviceID int64, quantity int, total *decimal.Decimal, at time.Time) error {
	if err := o.ensureItemsEditable(); err != nil {
		return err
	}

	if existing := o.ItemFor(serviceID); existing != nil {
		updated := existing.clone()
		if err := errors.Join(updated.setQuantity(quantity), updated.setTotalAmount(total)); err != nil {
			return err
		}
		*existing = *updated
		o.touch(at)
		return nil
	}

	item, err := NewItem(serviceID, quantity, total)
	if err != nil {
		return err
	}
	o.items = append(o.items, item)
	o.touch(at)
	return nil
}

// RemoveItem deletes the item for serviceID. It reports whether an item was removed.
func (o *Order) RemoveItem(serviceID int64, at time.Time) (bool, error) {
	if err := o.ensureItemsEditable(); err != nil {
		return false, err
	}

	idx := slices.IndexFunc(o.items, func(i *Item) bool { return i.serviceID == serviceID })
	if idx < 0 {
		return false, nil
	}

	o.items = slices.Delete(o.items, idx, idx+1)
	o.touch(at)
	return true, nil
}

func (o *Order) ensureItemsEditable() error {
	if o.status.IsTerminal() {
		return errs.NewInvalidTransitionError(string(o.status), "", reasonItemsLocked)
	}
	return nil
}

func (o *Order) touch(at time.Time) {
	if !at.IsZero() {
		o.updatedAt = at.UTC()
	}
}

func (o *Order) clone() *Order {
	c := *o
	c.items = make([]*Item, len(o.items))
	for i, item := range o.items {
		c.items[i] = item.clone()
	}
	if o.address != nil {
		addr := *o.address
		c.address = &addr
	}
	return &c
}

func (o *Order) setCustomerID(customerID int64) error {
	if customerID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("customerId", fmt.Errorf("%d is not greater than 0", customerID))
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setLocationID(locationID int64) error {
	if locationID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("locationId", fmt.Errorf("%d is not greater than 0", locationID))
	}
	o.locationID = locationID
	return nil
}

func (o *Order) setAddress(address *DeliveryAddress) error {
	if address == nil {
		o.address = nil
		return nil
	}
	if err := address.Validate(); err != nil {
		return err
	}
	a := *address
	o.address = &a
	return nil
}

func (o *Order) setWindow(window kernel.PickupWindow) error {
	if err := window.Validate(); err != nil {
		return err
	}
	o.window = window
	return nil
}

func (o *Order) setItems(items []*Item) error {
	seen := make(map[int64]struct{}, len(items))
	cloned := make([]*Item, 0, len(items))
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		if _, dup := seen[item.serviceID]; dup {
			return errs.NewValueIsInvalidErrorWithCause("services",
				fmt.Errorf("service %d is listed more than once", item.serviceID))
		}
		seen[item.serviceID] = struct{}{}
		cloned = append(cloned, item.clone())
	}
	o.items = cloned
	return nil
}

func compareInt64(a, b int64) int {
	switch {
	case a == b:
		return 0
	case a == 0:
		return 1
	case b == 0:
		return -1
	case a < b:
		return -1
	default:
		return 1
	}
}
