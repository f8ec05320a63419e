package model

import (
	"math"
	"time"
)

// OrderStatus describes print lifecycle. The only transition is
// pending_print -> printed.
type OrderStatus string

const (
	OrderStatusPendingPrint OrderStatus = "pending_print"
	OrderStatusPrinted      OrderStatus = "printed"
)

// PricingSnapshot is the copy of store identity and price captured when an
// order is created. Orders hold it by value.
type PricingSnapshot struct {
	StoreName     string
	Currency      string
	PricePerPhoto float64
	ReceiptFooter string
}

// Total returns price times count rounded to cents.
func (p PricingSnapshot) Total(count int) float64 {
	return RoundMoney(p.PricePerPhoto * float64(count))
}

// RoundMoney rounds half away from zero to two decimal places.
func RoundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}

// Order is an immutable selection and pricing snapshot of one session.
type Order struct {
	Number      string
	SessionID   string
	PhotoIDs    []string
	Pricing     PricingSnapshot
	TotalAmount float64
	Status      OrderStatus
	CreatedAt   time.Time
	PrintedAt   *time.Time
}

// NewOrder builds a pending order. photoIDs is copied.
func NewOrder(number, sessionID string, photoIDs []string, pricing PricingSnapshot, now time.Time) Order {
	ids := make([]string, len(photoIDs))
	copy(ids, photoIDs)
	return Order{
		Number:      number,
		SessionID:   sessionID,
		PhotoIDs:    ids,
		Pricing:     pricing,
		TotalAmount: pricing.Total(len(ids)),
		Status:      OrderStatusPendingPrint,
		CreatedAt:   now,
	}
}

// PhotoCount is the number of photos in the snapshot.
func (o Order) PhotoCount() int {
	return len(o.PhotoIDs)
}

// OrderDetails is an order with its photo ids resolved to records.
type OrderDetails struct {
	Order
	Photos []Photo
}
