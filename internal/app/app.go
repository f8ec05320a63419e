package app

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	cr "github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/polkiloo/photokiosk/internal/config"
)

const readHeaderTimeout = 10 * time.Second

// Module wires application services, runtime components, and lifecycle hooks.
var Module = fx.Options(
	fx.Provide(
		NewKioskFacade,
		newHTTPServer,
	),
	fx.Invoke(registerLifecycle),
)

// listen is swapped in tests.
var listen = net.Listen

type serverParams struct {
	fx.In

	Config *config.Config
	Router *gin.Engine
}

func newHTTPServer(p serverParams) *http.Server {
	return &http.Server{
		Addr:              p.Config.RunAddress,
		Handler:           p.Router,
		ReadHeaderTimeout: readHeaderTimeout,
	}
}

type lifecycleParams struct {
	fx.In

	Lifecycle  fx.Lifecycle
	Shutdowner fx.Shutdowner
	Logger     *slog.Logger
	Server     *http.Server
	Config     *config.Config
}

// registerLifecycle binds the listener during start so a bad address fails
// the app immediately. A serve error after that shuts the app down.
func registerLifecycle(p lifecycleParams) {
	p.Lifecycle.Append(fx.Hook{
		OnStart: func(context.Context) error {
			ln, err := listen("tcp", p.Server.Addr)
			if err != nil {
				return cr.Wrapf(err, "listen on %s", p.Server.Addr)
			}
			p.Logger.Info("photo kiosk listening", slog.String("addr", ln.Addr().String()))
			go serve(p, ln)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return stop(ctx, p)
		},
	})
}

func serve(p lifecycleParams, ln net.Listener) {
	err := p.Server.Serve(ln)
	if err == nil || errors.Is(err, http.ErrServerClosed) {
		return
	}
	p.Logger.Error("http server terminated", slog.String("error", err.Error()))
	_ = p.Shutdowner.Shutdown(fx.ExitCode(1))
}

func stop(ctx context.Context, p lifecycleParams) error {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.Config.ShutdownTimeout)
		defer cancel()
	}

	if err := p.Server.Shutdown(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return cr.Wrap(err, "shutdown http server")
	}
	p.Logger.Info("photo kiosk stopped")
	return nil
}
