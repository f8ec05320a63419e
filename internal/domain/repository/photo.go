package repository

import (
	"context"

	"github.com/polkiloo/photokiosk/internal/domain/model"
)

// PhotoRepository stores photo metadata. Listings are ordered by creation
// time, ties broken by insertion order.
type PhotoRepository interface {
	Create(ctx context.Context, photo model.Photo) error
	ListBySession(ctx context.Context, sessionID string) ([]model.Photo, error)
	// ListByIDs returns the photos that exist among ids, in no particular order.
	ListByIDs(ctx context.Context, ids []string) ([]model.Photo, error)
}
