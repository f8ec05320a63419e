package repository

import (
	"context"
	"time"

	"github.com/polkiloo/photokiosk/internal/domain/model"
)

// SettingsRepository provides access to the singleton settings record.
type SettingsRepository interface {
	Get(ctx context.Context) (*model.Settings, error)
	// InsertDefault writes settings unless a record already exists.
	InsertDefault(ctx context.Context, settings model.Settings) error
	// BackfillPIN sets the PIN only on a record that has none.
	BackfillPIN(ctx context.Context, pin string, at time.Time) error
	Update(ctx context.Context, patch model.SettingsPatch, at time.Time) (*model.Settings, error)
}
