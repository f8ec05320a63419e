package test

import (
	"context"
	"time"

	domainErrors "github.com/polkiloo/photokiosk/internal/domain/errors"
	"github.com/polkiloo/photokiosk/internal/domain/model"
	"github.com/polkiloo/photokiosk/internal/storage/blob"
)

// FacadeTime is the timestamp stamped on records returned by the facade stub.
var FacadeTime = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

// KioskFacadeStub provides controllable behaviour for every kiosk endpoint.
// Nil functions fall back to canned responses.
type KioskFacadeStub struct {
	SettingsFn       func(context.Context) (*model.PricingView, error)
	UpdateSettingsFn func(context.Context, model.SettingsPatch) (*model.PricingView, error)
	VerifyPINFn      func(context.Context, string) (bool, error)
	CreateSessionFn  func(context.Context) (*model.SessionTicket, error)
	SessionFn        func(context.Context, string) (*model.SessionDetails, error)
	PhotosFn         func(context.Context, string) ([]model.Photo, error)
	UploadPhotosFn   func(context.Context, string, []model.UploadFile) ([]model.Photo, error)
	CreateOrderFn    func(context.Context, string, []string) (*model.OrderDetails, error)
	OrderFn          func(context.Context, string) (*model.OrderDetails, error)
	MarkPrintedFn    func(context.Context, string) (*model.OrderDetails, error)
	OpenBlobFn       func(context.Context, string) (*blob.Blob, error)
	HealthCheckFn    func(context.Context) error
}

func (s KioskFacadeStub) Settings(ctx context.Context) (*model.PricingView, error) {
	if s.SettingsFn != nil {
		return s.SettingsFn(ctx)
	}
	view := model.DefaultSettings(FacadeTime).View()
	return &view, nil
}

func (s KioskFacadeStub) UpdateSettings(ctx context.Context, patch model.SettingsPatch) (*model.PricingView, error) {
	if s.UpdateSettingsFn != nil {
		return s.UpdateSettingsFn(ctx, patch)
	}
	return s.Settings(ctx)
}

func (s KioskFacadeStub) VerifyPIN(ctx context.Context, pin string) (bool, error) {
	if s.VerifyPINFn != nil {
		return s.VerifyPINFn(ctx, pin)
	}
	return pin == model.DefaultAdminPIN, nil
}

func (s KioskFacadeStub) CreateSession(ctx context.Context) (*model.SessionTicket, error) {
	if s.CreateSessionFn != nil {
		return s.CreateSessionFn(ctx)
	}
	ticket := model.NewSessionTicket(model.NewSession("sess", FacadeTime, 2*time.Hour))
	return &ticket, nil
}

func (s KioskFacadeStub) Session(ctx context.Context, id string) (*model.SessionDetails, error) {
	if s.SessionFn != nil {
		return s.SessionFn(ctx, id)
	}
	return &model.SessionDetails{Session: model.NewSession(id, FacadeTime, 2*time.Hour)}, nil
}

func (s KioskFacadeStub) Photos(ctx context.Context, sessionID string) ([]model.Photo, error) {
	if s.PhotosFn != nil {
		return s.PhotosFn(ctx, sessionID)
	}
	return []model.Photo{}, nil
}

func (s KioskFacadeStub) UploadPhotos(ctx context.Context, sessionID string, files []model.UploadFile) ([]model.Photo, error) {
	if s.UploadPhotosFn != nil {
		return s.UploadPhotosFn(ctx, sessionID, files)
	}
	if len(files) == 0 {
		return nil, domainErrors.ErrEmptyUpload
	}
	photos := make([]model.Photo, 0, len(files))
	for _, f := range files {
		photos = append(photos, model.Photo{
			ID:           "photo-" + f.Name,
			SessionID:    sessionID,
			StorageKey:   "key-" + f.Name,
			OriginalName: f.Name,
			MimeType:     f.ContentType,
			CreatedAt:    FacadeTime,
		})
	}
	return photos, nil
}

func (s KioskFacadeStub) CreateOrder(ctx context.Context, sessionID string, selected []string) (*model.OrderDetails, error) {
	if s.CreateOrderFn != nil {
		return s.CreateOrderFn(ctx, sessionID, selected)
	}
	return stubOrder("KSK-20240501100000-ABC123", sessionID), nil
}

func (s KioskFacadeStub) Order(ctx context.Context, number string) (*model.OrderDetails, error) {
	if s.OrderFn != nil {
		return s.OrderFn(ctx, number)
	}
	return stubOrder(number, "sess"), nil
}

func (s KioskFacadeStub) MarkPrinted(ctx context.Context, number string) (*model.OrderDetails, error) {
	if s.MarkPrintedFn != nil {
		return s.MarkPrintedFn(ctx, number)
	}
	details := stubOrder(number, "sess")
	printed := FacadeTime.Add(time.Minute)
	details.Status = model.OrderStatusPrinted
	details.PrintedAt = &printed
	return details, nil
}

func (s KioskFacadeStub) OpenBlob(ctx context.Context, key string) (*blob.Blob, error) {
	if s.OpenBlobFn != nil {
		return s.OpenBlobFn(ctx, key)
	}
	return nil, domainErrors.ErrBlobNotFound
}

func (s KioskFacadeStub) HealthCheck(ctx context.Context) error {
	if s.HealthCheckFn != nil {
		return s.HealthCheckFn(ctx)
	}
	return nil
}

func stubOrder(number, sessionID string) *model.OrderDetails {
	photo := model.Photo{ID: "p1", SessionID: sessionID, StorageKey: "p1.jpg", OriginalName: "a.jpg", MimeType: "image/jpeg", SizeBytes: 3, CreatedAt: FacadeTime}
	pricing := model.DefaultSettings(FacadeTime).Snapshot()
	return &model.OrderDetails{
		Order:  model.NewOrder(number, sessionID, []string{photo.ID}, pricing, FacadeTime),
		Photos: []model.Photo{photo},
	}
}
