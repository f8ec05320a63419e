package app

import (
	"context"

	"github.com/polkiloo/photokiosk/internal/domain/model"
	"github.com/polkiloo/photokiosk/internal/storage/blob"
	"github.com/polkiloo/photokiosk/internal/usecase"
)

// HealthChecker reports whether the metadata store is reachable.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// KioskFacade is the single entry point the HTTP layer talks to.
type KioskFacade struct {
	sessions *usecase.SessionUseCase
	photos   *usecase.PhotoUseCase
	pricing  *usecase.PricingUseCase
	orders   *usecase.OrderUseCase
	blobs    blob.Store
	health   HealthChecker
}

func NewKioskFacade(
	sessions *usecase.SessionUseCase,
	photos *usecase.PhotoUseCase,
	pricing *usecase.PricingUseCase,
	orders *usecase.OrderUseCase,
	blobs blob.Store,
	health HealthChecker,
) *KioskFacade {
	return &KioskFacade{
		sessions: sessions,
		photos:   photos,
		pricing:  pricing,
		orders:   orders,
		blobs:    blobs,
		health:   health,
	}
}

func (f *KioskFacade) Settings(ctx context.Context) (*model.PricingView, error) {
	return f.pricing.Read(ctx)
}

func (f *KioskFacade) UpdateSettings(ctx context.Context, patch model.SettingsPatch) (*model.PricingView, error) {
	return f.pricing.Update(ctx, patch)
}

func (f *KioskFacade) VerifyPIN(ctx context.Context, pin string) (bool, error) {
	return f.pricing.VerifyPIN(ctx, pin)
}

func (f *KioskFacade) CreateSession(ctx context.Context) (*model.SessionTicket, error) {
	return f.sessions.Create(ctx)
}

func (f *KioskFacade) Session(ctx context.Context, id string) (*model.SessionDetails, error) {
	return f.sessions.Details(ctx, id)
}

func (f *KioskFacade) Photos(ctx context.Context, sessionID string) ([]model.Photo, error) {
	return f.photos.List(ctx, sessionID)
}

func (f *KioskFacade) UploadPhotos(ctx context.Context, sessionID string, files []model.UploadFile) ([]model.Photo, error) {
	return f.photos.Upload(ctx, sessionID, files)
}

func (f *KioskFacade) CreateOrder(ctx context.Context, sessionID string, selected []string) (*model.OrderDetails, error) {
	return f.orders.Create(ctx, sessionID, selected)
}

func (f *KioskFacade) Order(ctx context.Context, number string) (*model.OrderDetails, error) {
	return f.orders.Get(ctx, number)
}

func (f *KioskFacade) MarkPrinted(ctx context.Context, number string) (*model.OrderDetails, error) {
	return f.orders.MarkPrinted(ctx, number)
}

func (f *KioskFacade) OpenBlob(ctx context.Context, key string) (*blob.Blob, error) {
	return f.blobs.Open(ctx, key)
}

func (f *KioskFacade) HealthCheck(ctx context.Context) error {
	return f.health.HealthCheck(ctx)
}
