package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand_MergesSelections(t *testing.T) {
	cmd, err := commands.NewCreateOrderCommand(customer(t, 10), 7, []commands.ServiceSelection{
		{ServiceID: 3, Quantity: 2},
		{ServiceID: 5, Quantity: 0},
		{ServiceID: 3, Quantity: -4},
	}, window(t), "  ring the bell ", true)

	require.NoError(t, err)
	assert.Equal(t, []commands.ServiceSelection{{ServiceID: 3, Quantity: 3}, {ServiceID: 5, Quantity: 1}}, cmd.Selections())
	assert.Equal(t, "ring the bell", cmd.Notes())
	assert.True(t, cmd.IsExpress())
	assert.Equal(t, int64(7), cmd.AddressID())
}

func TestNewCreateOrderCommand_InvalidInput(t *testing.T) {
	tests := []struct {
		name       string
		actor      kernel.Actor
		addressID  int64
		selections []commands.ServiceSelection
		window     kernel.PickupWindow
		want       error
	}{
		{
			name:       "operator cannot book",
			actor:      operator(t, 1),
			addressID:  7,
			selections: []commands.ServiceSelection{{ServiceID: 3}},
			window:     window(t),
			want:       errs.ErrAccessDenied,
		},
		{
			name:       "missing address",
			actor:      customer(t, 10),
			selections: []commands.ServiceSelection{{ServiceID: 3}},
			window:     window(t),
			want:       errs.ErrValueIsRequired,
		},
		{
			name:      "no services",
			actor:     customer(t, 10),
			addressID: 7,
			window:    window(t),
			want:      errs.ErrValueIsRequired,
		},
		{
			name:       "non positive service id",
			actor:      customer(t, 10),
			addressID:  7,
			selections: []commands.ServiceSelection{{ServiceID: 0, Quantity: 1}},
			window:     window(t),
			want:       errs.ErrValueIsInvalid,
		},
		{
			name:       "missing window",
			actor:      customer(t, 10),
			addressID:  7,
			selections: []commands.ServiceSelection{{ServiceID: 3}},
			want:       kernel.ErrPickupWindowIsNotConstructed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := commands.NewCreateOrderCommand(tt.actor, tt.addressID, tt.selections, tt.window, "", false)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestCreateOrderCommand_ZeroValueIsRejected(t *testing.T) {
	require.ErrorIs(t, commands.CreateOrderCommand{}.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
}
