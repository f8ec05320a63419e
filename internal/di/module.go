package di

import (
	"go.uber.org/fx"

	"github.com/polkiloo/photokiosk/internal/app"
	"github.com/polkiloo/photokiosk/internal/config"
	"github.com/polkiloo/photokiosk/internal/logger"
	"github.com/polkiloo/photokiosk/internal/pkg/clock"
	"github.com/polkiloo/photokiosk/internal/server/http/handlers"
	"github.com/polkiloo/photokiosk/internal/server/http/router"
	"github.com/polkiloo/photokiosk/internal/storage/blob"
	"github.com/polkiloo/photokiosk/internal/storage/postgres"
	"github.com/polkiloo/photokiosk/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		fx.Provide(clock.NewRealClock),
		postgres.Module,
		blob.Module,
		fx.Provide(
			func(s blob.Store) usecase.BlobStore { return s },
			func(s *postgres.Storage) app.HealthChecker { return s },
		),
		usecase.Module,
		fx.Provide(func(f *app.KioskFacade) handlers.KioskFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
