package usecase

import (
	"context"
	"log/slog"
	"math"

	cr "github.com/cockroachdb/errors"

	domainErrors "github.com/polkiloo/photokiosk/internal/domain/errors"
	"github.com/polkiloo/photokiosk/internal/domain/model"
	"github.com/polkiloo/photokiosk/internal/domain/repository"
	"github.com/polkiloo/photokiosk/internal/pkg/clock"
)

// PricingUseCase reads store settings and freezes them for orders.
type PricingUseCase struct {
	settings repository.SettingsRepository
	clock    clock.Clock
	logger   *slog.Logger
}

// NewPricingUseCase constructs PricingUseCase.
func NewPricingUseCase(settings repository.SettingsRepository, clk clock.Clock, logger *slog.Logger) *PricingUseCase {
	return &PricingUseCase{settings: settings, clock: clk, logger: logger}
}

// Read returns current settings without the admin PIN.
func (u *PricingUseCase) Read(ctx context.Context) (*model.PricingView, error) {
	s, err := u.load(ctx)
	if err != nil {
		return nil, err
	}
	view := s.View()
	return &view, nil
}

// Snapshot freezes the current price and store identity.
func (u *PricingUseCase) Snapshot(ctx context.Context) (model.PricingSnapshot, error) {
	s, err := u.load(ctx)
	if err != nil {
		return model.PricingSnapshot{}, err
	}
	return s.Snapshot(), nil
}

// VerifyPIN compares candidate with the stored PIN verbatim.
func (u *PricingUseCase) VerifyPIN(ctx context.Context, candidate string) (bool, error) {
	s, err := u.load(ctx)
	if err != nil {
		return false, err
	}
	return *s.AdminPIN == candidate, nil
}

// Update merges the non-nil fields of patch into the settings record.
func (u *PricingUseCase) Update(ctx context.Context, patch model.SettingsPatch) (*model.PricingView, error) {
	if err := validatePatch(patch); err != nil {
		return nil, err
	}
	current, err := u.load(ctx)
	if err != nil {
		return nil, err
	}
	if patch.Empty() {
		view := current.View()
		return &view, nil
	}

	updated, err := u.settings.Update(ctx, patch, u.clock.Now())
	if err != nil {
		return nil, err
	}
	u.logger.Info("settings updated", slog.String("store_name", updated.StoreName), slog.Float64("price_per_photo", updated.PricePerPhoto))
	view := updated.View()
	return &view, nil
}

func validatePatch(p model.SettingsPatch) error {
	if p.PricePerPhoto != nil {
		price := *p.PricePerPhoto
		if price < 0 || math.IsNaN(price) || math.IsInf(price, 0) {
			return cr.WithMessage(domainErrors.ErrInvalidSettings, "price_per_photo must be a non-negative number")
		}
	}
	if p.AdminPIN != nil && *p.AdminPIN == "" {
		return cr.WithMessage(domainErrors.ErrInvalidSettings, "admin_pin must not be empty")
	}
	return nil
}

// load returns the settings record with a PIN, creating defaults on first
// access and backfilling the default PIN on records that lack one.
func (u *PricingUseCase) load(ctx context.Context) (*model.Settings, error) {
	s, err := u.settings.Get(ctx)
	if cr.Is(err, domainErrors.ErrSettingsNotFound) {
		if err := u.settings.InsertDefault(ctx, model.DefaultSettings(u.clock.Now())); err != nil {
			return nil, cr.Wrap(err, "insert default settings")
		}
		s, err = u.settings.Get(ctx)
	}
	if err != nil {
		return nil, err
	}
	if s.AdminPIN != nil {
		return s, nil
	}

	if err := u.settings.BackfillPIN(ctx, model.DefaultAdminPIN, u.clock.Now()); err != nil {
		u.logger.Warn("admin pin backfill failed", slog.Any("error", err))
	} else if fresh, err := u.settings.Get(ctx); err == nil && fresh.AdminPIN != nil {
		u.logger.Info("admin pin backfilled")
		return fresh, nil
	}

	pin := model.DefaultAdminPIN
	s.AdminPIN = &pin
	return s, nil
}
