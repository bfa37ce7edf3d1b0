package commands

import (
	"context"

	"github.com/AbnerVital/7KDelivery/internal/core/domain/model/settings"
)

// UpdateSettingsCommandHandler handles store settings edits.
type UpdateSettingsCommandHandler struct {
	uowFactory SettingsUoWFactory
}

// NewUpdateSettingsCommandHandler creates a handler for settings updates.
func NewUpdateSettingsCommandHandler(uowFactory SettingsUoWFactory) UpdateSettingsCommandHandler {
	return UpdateSettingsCommandHandler{uowFactory: uowFactory}
}

// Handle loads the settings record (creating defaults if absent), applies
// the edit, and persists it.
func (h *UpdateSettingsCommandHandler) Handle(ctx context.Context, cmd UpdateSettingsCommand) (*settings.StoreSettings, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	settingsRepo := uow.SettingsRepository()
	aggregate, err := settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	if err = aggregate.Update(
		cmd.MinimumOrder(), cmd.DeliveryFeePerKm(), cmd.MinimumDeliveryFee(),
		cmd.StoreLocation(),
		cmd.StoreAddress(), cmd.Phone(), cmd.Whatsapp(), cmd.Email(),
	); err != nil {
		return nil, err
	}

	if err = settingsRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
