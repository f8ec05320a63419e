package usecase

import (
	"strings"
	"time"

	"github.com/polkiloo/photokiosk/internal/pkg/token"
)

const (
	maxTagLength      = 4
	orderCodeLength   = 6
	orderNumberLayout = "20060102150405"
)

// StoreTag derives an order number tag from the initials of storeName,
// keeping ASCII letters and digits only. fallback is used when none remain.
func StoreTag(storeName, fallback string) string {
	var b strings.Builder
	for _, word := range strings.Fields(storeName) {
		c := word[0]
		switch {
		case c >= 'a' && c <= 'z':
			b.WriteByte(c - 'a' + 'A')
		case c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
			b.WriteByte(c)
		default:
			continue
		}
		if b.Len() == maxTagLength {
			break
		}
	}
	if b.Len() == 0 {
		return strings.ToUpper(strings.TrimSpace(fallback))
	}
	return b.String()
}

// NewOrderNumber formats TAG-yyyymmddHHMMSS-CODE with the timestamp in UTC.
func NewOrderNumber(tag string, at time.Time) (string, error) {
	code, err := token.Code(orderCodeLength)
	if err != nil {
		return "", err
	}
	return tag + "-" + at.UTC().Format(orderNumberLayout) + "-" + code, nil
}
