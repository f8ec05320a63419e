package usecase

import (
	"time"

	"github.com/polkiloo/photokiosk/internal/pkg/clock"
	"github.com/polkiloo/photokiosk/internal/pkg/mediatype"
	"github.com/polkiloo/photokiosk/internal/test"
)

var baseTime = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

type fixture struct {
	clock    *clock.MockClock
	sessions *test.SessionRepositoryStub
	photos   *test.PhotoRepositoryStub
	orders   *test.OrderRepositoryStub
	settings *test.SettingsRepositoryStub
	blobs    *test.BlobStoreStub

	sessionUC *SessionUseCase
	photoUC   *PhotoUseCase
	pricingUC *PricingUseCase
	orderUC   *OrderUseCase
}

func newFixture() *fixture {
	f := &fixture{
		clock:    clock.NewMockClock(baseTime),
		sessions: test.NewSessionRepositoryStub(),
		photos:   test.NewPhotoRepositoryStub(),
		orders:   test.NewOrderRepositoryStub(),
		settings: &test.SettingsRepositoryStub{},
		blobs:    test.NewBlobStoreStub(),
	}
	logger := test.DiscardLogger()
	f.sessionUC = NewSessionUseCase(f.sessions, f.photos, f.clock, SessionOptions{TTL: 2 * time.Hour}, logger)
	f.photoUC = NewPhotoUseCase(f.sessionUC, f.photos, f.blobs, mediatype.NewTable(mediatype.DefaultExtensions()), f.clock, logger)
	f.pricingUC = NewPricingUseCase(f.settings, f.clock, logger)
	f.orderUC = NewOrderUseCase(f.sessionUC, f.photos, f.orders, f.pricingUC, f.clock, OrderOptions{Prefix: "KSK"}, logger)
	return f
}
