package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/linechat/linechat-server/internal/app"
	"github.com/linechat/linechat-server/internal/config"
	"github.com/linechat/linechat-server/internal/log"
)

func main() {
	var (
		configPath string
		overrides  config.Config
	)
	flag.StringVar(&configPath, "config", "", "path to config file")
	flag.StringVar(&overrides.TCPAddr, "tcp-addr", "", "TCP listen address")
	flag.StringVar(&overrides.HTTPAddr, "http-addr", "", "HTTP listen address")
	flag.StringVar(&overrides.LogLevel, "log-level", "", "log level (debug, info, warn, error)")
	flag.DurationVar(&overrides.ReadHeaderTimeout, "read-header-timeout", 0, "HTTP read header timeout")
	flag.DurationVar(&overrides.ShutdownTimeout, "shutdown-timeout", 0, "graceful shutdown timeout")
	flag.Parse()

	bootLog := log.New("info")
	cfg, path, err := config.Load(bootLog, configPath)
	if err != nil {
		bootLog.Fatal().Err(err).Str("path", path).Msg("load config")
	}
	cfg.UpdateFrom(overrides)

	logger := log.New(cfg.LogLevel)
	logger.Info().Str("config", path).Msg("starting linechat server")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.New(cfg, logger).Run(ctx); err != nil {
		logger.Fatal().Err(err).Msg("server exited with error")
	}
	logger.Info().Msg("server stopped")
}
