package usecase

import (
	"go.uber.org/fx"

	"github.com/polkiloo/photokiosk/internal/config"
)

// Module provides core business use cases to the fx container.
var Module = fx.Provide(
	newSessionOptions,
	newOrderOptions,
	NewSessionUseCase,
	NewPhotoUseCase,
	NewPricingUseCase,
	NewOrderUseCase,
)

func newSessionOptions(cfg *config.Config) SessionOptions {
	return SessionOptions{TTL: cfg.SessionTTL}
}

func newOrderOptions(cfg *config.Config) OrderOptions {
	return OrderOptions{Prefix: cfg.OrderPrefix}
}
