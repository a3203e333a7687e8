package app

import (
	"context"
	"errors"
	stdhttp "net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/linechat/linechat-server/internal/config"
	"github.com/linechat/linechat-server/internal/hub"
	transporthttp "github.com/linechat/linechat-server/internal/transport/http"
	"github.com/linechat/linechat-server/internal/transport/tcp"
)

// App wires the hub and both transports together.
type App struct {
	httpServer      *stdhttp.Server
	tcpServer       *tcp.Server
	shutdownTimeout time.Duration
	log             *zerolog.Logger
}

// New constructs the application with provided configuration.
func New(cfg config.Config, logger *zerolog.Logger) *App {
	h := hub.New(logger, cfg.EventBuffer)
	return &App{
		httpServer:      transporthttp.NewServer(h, cfg, logger),
		tcpServer:       tcp.NewServer(cfg.TCPAddr, h, logger),
		shutdownTimeout: cfg.ShutdownTimeout,
		log:             logger,
	}
}

// Run starts both servers and blocks until context cancellation or fatal error.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	serverErr := make(chan error, 2)

	go func() {
		serverErr <- a.tcpServer.Run(ctx)
	}()

	go func() {
		a.log.Info().Str("addr", a.httpServer.Addr).Msg("http server listening")
		if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
			serverErr <- err
			return
		}
		serverErr <- nil
	}()

	select {
	case err := <-serverErr:
		cancel()
		a.httpServer.Close()
		<-serverErr
		return err
	case <-ctx.Done():
		shutdownCtx, stop := context.WithTimeout(context.Background(), a.shutdownTimeout)
		defer stop()

		a.log.Info().Msg("shutting down")
		err := a.httpServer.Shutdown(shutdownCtx)
		<-serverErr
		<-serverErr
		return err
	}
}
