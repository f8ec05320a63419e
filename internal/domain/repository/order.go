package repository

import (
	"context"
	"time"

	"github.com/polkiloo/photokiosk/internal/domain/model"
)

// OrderRepository describes persistence operations with orders.
type OrderRepository interface {
	// Create returns ErrAlreadyExists when the order number is taken.
	Create(ctx context.Context, order model.Order) error
	GetByNumber(ctx context.Context, number string) (*model.Order, error)
	// MarkPrinted sets status printed and overwrites printed_at.
	MarkPrinted(ctx context.Context, number string, at time.Time) (*model.Order, error)
}
