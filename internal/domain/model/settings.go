package model

import "time"

// Defaults used when the settings record does not exist yet.
const (
	DefaultStoreName     = "Amor por Fotos"
	DefaultCurrency      = "BRL"
	DefaultPricePerPhoto = 2.50
	DefaultReceiptFooter = "Leve este comprovante ao caixa para pagamento."
	DefaultAdminPIN      = "1234"
)

// Settings is the global store configuration record. AdminPIN is nil for
// records written before the PIN was introduced.
type Settings struct {
	StoreName     string
	Currency      string
	PricePerPhoto float64
	ReceiptFooter string
	AdminPIN      *string
	UpdatedAt     time.Time
}

// DefaultSettings returns the record created on first access.
func DefaultSettings(now time.Time) Settings {
	pin := DefaultAdminPIN
	return Settings{
		StoreName:     DefaultStoreName,
		Currency:      DefaultCurrency,
		PricePerPhoto: DefaultPricePerPhoto,
		ReceiptFooter: DefaultReceiptFooter,
		AdminPIN:      &pin,
		UpdatedAt:     now,
	}
}

// Snapshot freezes the pricing and identity fields.
func (s Settings) Snapshot() PricingSnapshot {
	return PricingSnapshot{
		StoreName:     s.StoreName,
		Currency:      s.Currency,
		PricePerPhoto: s.PricePerPhoto,
		ReceiptFooter: s.ReceiptFooter,
	}
}

// View returns the settings without the admin PIN.
func (s Settings) View() PricingView {
	return PricingView{PricingSnapshot: s.Snapshot(), UpdatedAt: s.UpdatedAt}
}

// PricingView is the public face of the settings record.
type PricingView struct {
	PricingSnapshot
	UpdatedAt time.Time
}

// SettingsPatch carries a partial settings update; nil fields are kept.
type SettingsPatch struct {
	StoreName     *string
	Currency      *string
	PricePerPhoto *float64
	ReceiptFooter *string
	AdminPIN      *string
}

// Empty reports whether the patch changes nothing.
func (p SettingsPatch) Empty() bool {
	return p.StoreName == nil && p.Currency == nil && p.PricePerPhoto == nil &&
		p.ReceiptFooter == nil && p.AdminPIN == nil
}
