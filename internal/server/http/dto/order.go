package dto

import "time"

// OrderCreateRequest selects photos for a new order. Omitted or empty means all.
type OrderCreateRequest struct {
	SelectedPhotoIDs []string `json:"selected_photo_ids"`
}

// OrderResponse is an order with its resolved photos.
type OrderResponse struct {
	OrderNumber   string          `json:"order_number"`
	SessionID     string          `json:"session_id"`
	PhotoCount    int             `json:"photo_count"`
	Currency      string          `json:"currency"`
	PricePerPhoto float64         `json:"price_per_photo"`
	TotalAmount   float64         `json:"total_amount"`
	StoreName     string          `json:"store_name"`
	ReceiptFooter string          `json:"receipt_footer"`
	Status        string          `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
	PrintedAt     *time.Time      `json:"printed_at"`
	Photos        []PhotoResponse `json:"photos"`
}
