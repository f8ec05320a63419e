package repository

import (
	"context"

	"github.com/polkiloo/photokiosk/internal/domain/model"
)

// SessionRepository describes persistence operations for sessions.
type SessionRepository interface {
	Create(ctx context.Context, session model.Session) error
	GetByID(ctx context.Context, id string) (*model.Session, error)
}
