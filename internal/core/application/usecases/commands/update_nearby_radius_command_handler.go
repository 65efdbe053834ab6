package commands

import (
	"context"

	"fulfillment/internal/core/ports"
)

type UpdateNearbyRadiusCommandHandler struct {
	uowFactory SettingUoWFactory
}

func NewUpdateNearbyRadiusCommandHandler(uowFactory SettingUoWFactory) UpdateNearbyRadiusCommandHandler {
	return UpdateNearbyRadiusCommandHandler{uowFactory: uowFactory}
}

// Handle stores the radius and reports whether the setting was created rather than updated.
func (h *UpdateNearbyRadiusCommandHandler) Handle(ctx context.Context, cmd UpdateNearbyRadiusCommand) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	created, err := uow.SettingRepository().Upsert(ctx, ports.NearbyRadiusKey, cmd.RadiusKm().String())
	if err != nil {
		return false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}

	return created, nil
}
