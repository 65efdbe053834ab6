package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type bookOrderRequest struct {
	Services  json.RawMessage `json:"services"`
	SlotStart time.Time       `json:"slotStart"`
	SlotEnd   time.Time       `json:"slotEnd"`
	AddressID int64           `json:"addressId"`
	Notes     string          `json:"notes"`
	IsExpress bool            `json:"isExpress"`
}

type walkInOrderRequest struct {
	LocationID int64           `json:"locationId"`
	CustomerID int64           `json:"customerId"`
	AddressID  *int64          `json:"addressId"`
	Services   json.RawMessage `json:"services"`
	Notes      string          `json:"notes"`
	IsExpress  bool            `json:"isExpress"`
}

type rescheduleRequest struct {
	PickupSlotStart time.Time `json:"pickupSlotStart"`
	PickupSlotEnd   time.Time `json:"pickupSlotEnd"`
}

type updateStatusRequest struct {
	Status string `json:"status"`
	Notes  string `json:"notes"`
}

type itemEditRequest struct {
	ServiceID   int64            `json:"serviceId"`
	Quantity    int              `json:"quantity"`
	TotalAmount *decimal.Decimal `json:"totalAmount"`
}

type updateItemsRequest struct {
	Items []itemEditRequest `json:"items"`
}

type nearbyRadiusRequest struct {
	Value *decimal.Decimal `json:"value"`
}

// serviceEntry is the only accepted shape of a services element.
type serviceEntry struct {
	ServiceID *int64       `json:"serviceId"`
	Quantity  *json.Number `json:"quantity"`
}

// parseServices reads the services payload: a non-empty array of
// {"serviceId": <positive integer>, "quantity": <number>} objects. Any other
// element shape is rejected. A missing, fractional or non-positive quantity
// becomes 1.
func parseServices(raw json.RawMessage) ([]commands.ServiceSelection, error) {
	if len(bytes.TrimSpace(raw)) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return nil, errs.NewValueIsRequiredError("services")
	}

	var elements []json.RawMessage
	if err := json.Unmarshal(raw, &elements); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("services",
			errors.New("must be an array of {serviceId, quantity} objects"))
	}
	if len(elements) == 0 {
		return nil, errs.NewValueIsRequiredError("services")
	}

	selections := make([]commands.ServiceSelection, 0, len(elements))
	for i, element := range elements {
		dec := json.NewDecoder(bytes.NewReader(element))
		dec.DisallowUnknownFields()
		dec.UseNumber()

		var entry serviceEntry
		if err := dec.Decode(&entry); err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("services[%d]", i), err)
		}
		if entry.ServiceID == nil || *entry.ServiceID <= 0 {
			return nil, errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("services[%d].serviceId", i),
				errors.New("each service must include a valid serviceId"))
		}

		selections = append(selections, commands.ServiceSelection{
			ServiceID: *entry.ServiceID,
			Quantity:  quantityOf(entry.Quantity),
		})
	}

	return selections, nil
}

func quantityOf(raw *json.Number) int {
	if raw == nil {
		return 1
	}
	q, err := raw.Int64()
	if err != nil || q < 1 {
		return 1
	}
	return int(q)
}

func (r updateItemsRequest) edits() ([]services.ItemEdit, error) {
	if len(r.Items) == 0 {
		return nil, errs.NewValueIsRequiredErrorWithCause("items", errors.New("items array is required"))
	}
	edits := make([]services.ItemEdit, 0, len(r.Items))
	for _, item := range r.Items {
		edits = append(edits, services.ItemEdit{
			ServiceID:   item.ServiceID,
			Quantity:    item.Quantity,
			TotalAmount: item.TotalAmount,
		})
	}
	return edits, nil
}

// bindBody decodes the JSON body into dest, reporting malformed input as invalid.
func bindBody(c echo.Context, dest any) error {
	if err := (&echo.DefaultBinder{}).BindBody(c, dest); err != nil {
		var he *echo.HTTPError
		if errors.As(err, &he) {
			return errs.NewValueIsInvalidErrorWithCause("body", fmt.Errorf("%v", he.Message))
		}
		return errs.NewValueIsInvalidErrorWithCause("body", err)
	}
	return nil
}
