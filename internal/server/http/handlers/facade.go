package handlers

import (
	"context"

	"github.com/polkiloo/photokiosk/internal/domain/model"
	"github.com/polkiloo/photokiosk/internal/storage/blob"
)

// SettingsFacade exposes store settings and the admin PIN check.
type SettingsFacade interface {
	Settings(ctx context.Context) (*model.PricingView, error)
	UpdateSettings(ctx context.Context, patch model.SettingsPatch) (*model.PricingView, error)
	VerifyPIN(ctx context.Context, pin string) (bool, error)
}

// SessionFacade covers sessions and their photos.
type SessionFacade interface {
	CreateSession(ctx context.Context) (*model.SessionTicket, error)
	Session(ctx context.Context, id string) (*model.SessionDetails, error)
	Photos(ctx context.Context, sessionID string) ([]model.Photo, error)
	UploadPhotos(ctx context.Context, sessionID string, files []model.UploadFile) ([]model.Photo, error)
}

// OrderFacade encapsulates order operations exposed via HTTP.
type OrderFacade interface {
	CreateOrder(ctx context.Context, sessionID string, selected []string) (*model.OrderDetails, error)
	Order(ctx context.Context, number string) (*model.OrderDetails, error)
	MarkPrinted(ctx context.Context, number string) (*model.OrderDetails, error)
}

// BlobFacade serves stored photo bytes.
type BlobFacade interface {
	OpenBlob(ctx context.Context, key string) (*blob.Blob, error)
}

// HealthFacade reports backing store health.
type HealthFacade interface {
	HealthCheck(ctx context.Context) error
}

// KioskFacade aggregates the full set of operations used across handlers.
type KioskFacade interface {
	SettingsFacade
	SessionFacade
	OrderFacade
	BlobFacade
	HealthFacade
}
