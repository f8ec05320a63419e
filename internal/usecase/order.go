package usecase

import (
	"context"
	"log/slog"

	cr "github.com/cockroachdb/errors"

	domainErrors "github.com/polkiloo/photokiosk/internal/domain/errors"
	"github.com/polkiloo/photokiosk/internal/domain/model"
	"github.com/polkiloo/photokiosk/internal/domain/repository"
	"github.com/polkiloo/photokiosk/internal/pkg/clock"
)

// orderNumberAttempts bounds regeneration on order number collisions.
const orderNumberAttempts = 3

// OrderOptions tunes order numbering.
type OrderOptions struct {
	// Prefix tags order numbers when the store name yields no initials.
	Prefix string
}

// OrderUseCase encapsulates order lifecycle logic.
type OrderUseCase struct {
	sessions *SessionUseCase
	photos   repository.PhotoRepository
	orders   repository.OrderRepository
	pricing  *PricingUseCase
	clock    clock.Clock
	prefix   string
	logger   *slog.Logger
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(
	sessions *SessionUseCase,
	photos repository.PhotoRepository,
	orders repository.OrderRepository,
	pricing *PricingUseCase,
	clk clock.Clock,
	opts OrderOptions,
	logger *slog.Logger,
) *OrderUseCase {
	return &OrderUseCase{
		sessions: sessions,
		photos:   photos,
		orders:   orders,
		pricing:  pricing,
		clock:    clk,
		prefix:   opts.Prefix,
		logger:   logger,
	}
}

// Create snapshots the selected photos and current pricing into a pending
// order. An empty selection means every photo of the session; unknown or
// foreign ids are dropped.
func (u *OrderUseCase) Create(ctx context.Context, sessionID string, selected []string) (*model.OrderDetails, error) {
	if _, err := u.sessions.GetLive(ctx, sessionID); err != nil {
		return nil, err
	}

	all, err := u.photos.ListBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	chosen := selectPhotos(all, selected)
	if len(chosen) == 0 {
		return nil, domainErrors.ErrNoPhotosSelected
	}

	pricing, err := u.pricing.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(chosen))
	for i, p := range chosen {
		ids[i] = p.ID
	}
	tag := StoreTag(pricing.StoreName, u.prefix)

	for attempt := 1; attempt <= orderNumberAttempts; attempt++ {
		now := u.clock.Now()
		number, err := NewOrderNumber(tag, now)
		if err != nil {
			return nil, err
		}
		order := model.NewOrder(number, sessionID, ids, pricing, now)
		err = u.orders.Create(ctx, order)
		if err == nil {
			u.logger.Info("order created",
				slog.String("order_number", number),
				slog.String("session_id", sessionID),
				slog.Int("photo_count", order.PhotoCount()),
				slog.Float64("total_amount", order.TotalAmount))
			return &model.OrderDetails{Order: order, Photos: chosen}, nil
		}
		if !cr.Is(err, domainErrors.ErrAlreadyExists) {
			return nil, err
		}
		u.logger.Warn("order number collision", slog.String("order_number", number), slog.Int("attempt", attempt))
	}
	return nil, cr.Newf("no free order number after %d attempts", orderNumberAttempts)
}

// Get returns an order with its photos in snapshot order. Photos that no
// longer resolve are skipped.
func (u *OrderUseCase) Get(ctx context.Context, number string) (*model.OrderDetails, error) {
	order, err := u.orders.GetByNumber(ctx, number)
	if err != nil {
		return nil, err
	}
	return u.withPhotos(ctx, order)
}

// MarkPrinted flags the order printed. Repeated calls overwrite printed_at.
func (u *OrderUseCase) MarkPrinted(ctx context.Context, number string) (*model.OrderDetails, error) {
	order, err := u.orders.MarkPrinted(ctx, number, u.clock.Now())
	if err != nil {
		return nil, err
	}
	u.logger.Info("order printed", slog.String("order_number", number), slog.Time("printed_at", *order.PrintedAt))
	return u.withPhotos(ctx, order)
}

func (u *OrderUseCase) withPhotos(ctx context.Context, order *model.Order) (*model.OrderDetails, error) {
	found, err := u.photos.ListByIDs(ctx, order.PhotoIDs)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]model.Photo, len(found))
	for _, p := range found {
		byID[p.ID] = p
	}
	photos := make([]model.Photo, 0, len(order.PhotoIDs))
	for _, id := range order.PhotoIDs {
		if p, ok := byID[id]; ok {
			photos = append(photos, p)
		}
	}
	return &model.OrderDetails{Order: *order, Photos: photos}, nil
}

func selectPhotos(all []model.Photo, selected []string) []model.Photo {
	if len(selected) == 0 {
		return all
	}
	wanted := make(map[string]struct{}, len(selected))
	for _, id := range selected {
		wanted[id] = struct{}{}
	}
	chosen := make([]model.Photo, 0, len(selected))
	for _, p := range all {
		if _, ok := wanted[p.ID]; ok {
			chosen = append(chosen, p)
		}
	}
	return chosen
}
