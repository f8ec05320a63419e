package dto

import "time"

// SettingsResponse is the public settings view. The admin PIN is never part of it.
type SettingsResponse struct {
	StoreName     string    `json:"store_name"`
	Currency      string    `json:"currency"`
	PricePerPhoto float64   `json:"price_per_photo"`
	ReceiptFooter string    `json:"receipt_footer"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// SettingsUpdateRequest carries a partial settings update.
type SettingsUpdateRequest struct {
	StoreName     *string  `json:"store_name"`
	Currency      *string  `json:"currency"`
	PricePerPhoto *float64 `json:"price_per_photo"`
	ReceiptFooter *string  `json:"receipt_footer"`
	AdminPIN      *string  `json:"admin_pin"`
}

// VerifyPINRequest is the body of the PIN check.
type VerifyPINRequest struct {
	PIN string `json:"pin" binding:"required"`
}

// VerifyPINResponse reports whether the PIN matched.
type VerifyPINResponse struct {
	OK bool `json:"ok"`
}
