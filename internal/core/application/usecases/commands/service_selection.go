package commands

import (
	"fmt"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
)

// ServiceSelection is one requested service and its quantity.
type ServiceSelection struct {
	ServiceID int64
	Quantity  int
}

// normalizeSelections enforces positive ids, raises quantities below 1 to 1 and
// merges repeated services by summing their quantities, keeping first-seen order.
func normalizeSelections(selections []ServiceSelection) ([]ServiceSelection, error) {
	if len(selections) == 0 {
		return nil, errs.NewValueIsRequiredError("services")
	}

	merged := make([]ServiceSelection, 0, len(selections))
	index := make(map[int64]int, len(selections))
	for _, s := range selections {
		if s.ServiceID <= 0 {
			return nil, errs.NewValueIsInvalidErrorWithCause("serviceId",
				fmt.Errorf("%d is not greater than 0", s.ServiceID))
		}
		if s.Quantity < 1 {
			s.Quantity = 1
		}

		if i, ok := index[s.ServiceID]; ok {
			merged[i].Quantity += s.Quantity
			continue
		}
		index[s.ServiceID] = len(merged)
		merged = append(merged, s)
	}

	return merged, nil
}

func serviceIDs(selections []ServiceSelection) []int64 {
	ids := make([]int64, 0, len(selections))
	for _, s := range selections {
		ids = append(ids, s.ServiceID)
	}
	return ids
}

func newItems(selections []ServiceSelection) ([]*order.Item, error) {
	items := make([]*order.Item, 0, len(selections))
	for _, s := range selections {
		item, err := order.NewItem(s.ServiceID, s.Quantity, nil)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
