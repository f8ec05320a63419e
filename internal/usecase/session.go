package usecase

import (
	"context"
	"log/slog"
	"time"

	domainErrors "github.com/polkiloo/photokiosk/internal/domain/errors"
	"github.com/polkiloo/photokiosk/internal/domain/model"
	"github.com/polkiloo/photokiosk/internal/domain/repository"
	"github.com/polkiloo/photokiosk/internal/pkg/clock"
	"github.com/polkiloo/photokiosk/internal/pkg/token"
)

// SessionOptions tunes session lifetime.
type SessionOptions struct {
	TTL time.Duration
}

// SessionUseCase opens sessions and guards access to them.
type SessionUseCase struct {
	sessions repository.SessionRepository
	photos   repository.PhotoRepository
	clock    clock.Clock
	ttl      time.Duration
	logger   *slog.Logger
}

// NewSessionUseCase constructs SessionUseCase.
func NewSessionUseCase(
	sessions repository.SessionRepository,
	photos repository.PhotoRepository,
	clk clock.Clock,
	opts SessionOptions,
	logger *slog.Logger,
) *SessionUseCase {
	return &SessionUseCase{sessions: sessions, photos: photos, clock: clk, ttl: opts.TTL, logger: logger}
}

// Create persists a new session that lives for the configured TTL.
func (u *SessionUseCase) Create(ctx context.Context) (*model.SessionTicket, error) {
	session := model.NewSession(token.New(), u.clock.Now(), u.ttl)
	if err := u.sessions.Create(ctx, session); err != nil {
		return nil, err
	}
	u.logger.Info("session created", slog.String("session_id", session.ID), slog.Time("expires_at", session.ExpiresAt))
	ticket := model.NewSessionTicket(session)
	return &ticket, nil
}

// GetLive returns the session unless it is missing or past its expiry.
func (u *SessionUseCase) GetLive(ctx context.Context, id string) (*model.Session, error) {
	session, err := u.sessions.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.ExpiredAt(u.clock.Now()) {
		return nil, domainErrors.ErrSessionExpired
	}
	return session, nil
}

// Details returns a live session with its photos in upload order.
func (u *SessionUseCase) Details(ctx context.Context, id string) (*model.SessionDetails, error) {
	session, err := u.GetLive(ctx, id)
	if err != nil {
		return nil, err
	}
	photos, err := u.photos.ListBySession(ctx, id)
	if err != nil {
		return nil, err
	}
	return &model.SessionDetails{Session: *session, Photos: photos}, nil
}
