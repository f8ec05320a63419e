package test

import (
	"context"
	"sort"
	"sync"
	"time"

	domainErrors "github.com/polkiloo/photokiosk/internal/domain/errors"
	"github.com/polkiloo/photokiosk/internal/domain/model"
)

// SessionRepositoryStub stores sessions in-memory for tests.
type SessionRepositoryStub struct {
	mu       sync.Mutex
	Sessions map[string]model.Session
	Err      error
}

// NewSessionRepositoryStub constructs stub repository with initialized map.
func NewSessionRepositoryStub() *SessionRepositoryStub {
	return &SessionRepositoryStub{Sessions: make(map[string]model.Session)}
}

// Create stores session unless stub has explicit error.
func (s *SessionRepositoryStub) Create(ctx context.Context, session model.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	if s.Sessions == nil {
		s.Sessions = make(map[string]model.Session)
	}
	if _, exists := s.Sessions[session.ID]; exists {
		return domainErrors.ErrAlreadyExists
	}
	s.Sessions[session.ID] = session
	return nil
}

// GetByID fetches session or returns session not found.
func (s *SessionRepositoryStub) GetByID(ctx context.Context, id string) (*model.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	if session, ok := s.Sessions[id]; ok {
		return &session, nil
	}
	return nil, domainErrors.ErrSessionNotFound
}

// PhotoRepositoryStub keeps photos in insertion order.
type PhotoRepositoryStub struct {
	mu       sync.Mutex
	Photos   []model.Photo
	CreateFn func(context.Context, model.Photo) error
	Err      error
}

// NewPhotoRepositoryStub constructs empty stub repository.
func NewPhotoRepositoryStub() *PhotoRepositoryStub {
	return &PhotoRepositoryStub{}
}

// Create appends photo or returns configured error.
func (s *PhotoRepositoryStub) Create(ctx context.Context, photo model.Photo) error {
	if s.CreateFn != nil {
		if err := s.CreateFn(ctx, photo); err != nil {
			return err
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	s.Photos = append(s.Photos, photo)
	return nil
}

// ListBySession returns photos of session ordered by creation time, stable
// on insertion order.
func (s *PhotoRepositoryStub) ListBySession(ctx context.Context, sessionID string) ([]model.Photo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	var result []model.Photo
	for _, p := range s.Photos {
		if p.SessionID == sessionID {
			result = append(result, p)
		}
	}
	sort.SliceStable(result, func(i, j int) bool { return result[i].CreatedAt.Before(result[j].CreatedAt) })
	return result, nil
}

// ListByIDs returns stored photos among ids in reverse insertion order so
// callers cannot depend on repository ordering.
func (s *PhotoRepositoryStub) ListByIDs(ctx context.Context, ids []string) ([]model.Photo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	wanted := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}
	var result []model.Photo
	for i := len(s.Photos) - 1; i >= 0; i-- {
		if _, ok := wanted[s.Photos[i].ID]; ok {
			result = append(result, s.Photos[i])
		}
	}
	return result, nil
}

// Delete removes photo by id to simulate records vanishing under an order.
func (s *PhotoRepositoryStub) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.Photos[:0]
	for _, p := range s.Photos {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	s.Photos = kept
}

// OrderRepositoryStub allows tests to customize behaviour.
type OrderRepositoryStub struct {
	mu       sync.Mutex
	Orders   map[string]model.Order
	CreateFn func(context.Context, model.Order) error
	Created  []string
	Err      error
}

// NewOrderRepositoryStub constructs stub repository with initialized map.
func NewOrderRepositoryStub() *OrderRepositoryStub {
	return &OrderRepositoryStub{Orders: make(map[string]model.Order)}
}

// Create tracks invocations and stores order unless number is taken.
func (s *OrderRepositoryStub) Create(ctx context.Context, order model.Order) error {
	s.mu.Lock()
	s.Created = append(s.Created, order.Number)
	s.mu.Unlock()
	if s.CreateFn != nil {
		if err := s.CreateFn(ctx, order); err != nil {
			return err
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	if s.Orders == nil {
		s.Orders = make(map[string]model.Order)
	}
	if _, exists := s.Orders[order.Number]; exists {
		return domainErrors.ErrAlreadyExists
	}
	s.Orders[order.Number] = order
	return nil
}

// GetByNumber returns stored order or order not found.
func (s *OrderRepositoryStub) GetByNumber(ctx context.Context, number string) (*model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	if order, ok := s.Orders[number]; ok {
		return &order, nil
	}
	return nil, domainErrors.ErrOrderNotFound
}

// MarkPrinted sets printed status, overwriting printed_at.
func (s *OrderRepositoryStub) MarkPrinted(ctx context.Context, number string, at time.Time) (*model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	order, ok := s.Orders[number]
	if !ok {
		return nil, domainErrors.ErrOrderNotFound
	}
	printed := at
	order.Status = model.OrderStatusPrinted
	order.PrintedAt = &printed
	s.Orders[number] = order
	return &order, nil
}

// SettingsRepositoryStub holds the singleton settings record.
type SettingsRepositoryStub struct {
	mu          sync.Mutex
	Record      *model.Settings
	Inserts     int
	Backfills   int
	GetErr      error
	BackfillErr error
	UpdateErr   error
}

// Get returns a copy of the record or settings not found.
func (s *SettingsRepositoryStub) Get(ctx context.Context) (*model.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.GetErr != nil {
		return nil, s.GetErr
	}
	if s.Record == nil {
		return nil, domainErrors.ErrSettingsNotFound
	}
	copied := *s.Record
	if s.Record.AdminPIN != nil {
		pin := *s.Record.AdminPIN
		copied.AdminPIN = &pin
	}
	return &copied, nil
}

// InsertDefault stores settings only when no record exists.
func (s *SettingsRepositoryStub) InsertDefault(ctx context.Context, settings model.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Record != nil {
		return nil
	}
	s.Inserts++
	s.Record = &settings
	return nil
}

// BackfillPIN sets the PIN only when the record has none.
func (s *SettingsRepositoryStub) BackfillPIN(ctx context.Context, pin string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.BackfillErr != nil {
		return s.BackfillErr
	}
	if s.Record == nil || s.Record.AdminPIN != nil {
		return nil
	}
	s.Backfills++
	s.Record.AdminPIN = &pin
	s.Record.UpdatedAt = at
	return nil
}

// Update merges non-nil patch fields.
func (s *SettingsRepositoryStub) Update(ctx context.Context, patch model.SettingsPatch, at time.Time) (*model.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.UpdateErr != nil {
		return nil, s.UpdateErr
	}
	if s.Record == nil {
		return nil, domainErrors.ErrSettingsNotFound
	}
	if patch.StoreName != nil {
		s.Record.StoreName = *patch.StoreName
	}
	if patch.Currency != nil {
		s.Record.Currency = *patch.Currency
	}
	if patch.PricePerPhoto != nil {
		s.Record.PricePerPhoto = *patch.PricePerPhoto
	}
	if patch.ReceiptFooter != nil {
		s.Record.ReceiptFooter = *patch.ReceiptFooter
	}
	if patch.AdminPIN != nil {
		pin := *patch.AdminPIN
		s.Record.AdminPIN = &pin
	}
	s.Record.UpdatedAt = at
	copied := *s.Record
	return &copied, nil
}
