// Package main is the entry point for the cubeman viewer.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/cubeman/internal/config"
	"github.com/Faultbox/cubeman/internal/game"
	"github.com/Faultbox/cubeman/internal/logger"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	l := cfg.Logging
	fileCfg := logger.FileConfig{
		Path:       l.LogFile,
		MaxSizeMB:  l.MaxSizeMB,
		MaxBackups: l.MaxBackups,
		MaxAgeDays: l.MaxAgeDays,
		Compress:   l.Compress,
	}
	if err := logger.InitWithFileConfig(l.Level, fileCfg, true); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== cubeman ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	g, err := game.New(cfg)
	if err != nil {
		logger.Error("failed to create game", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}

	if err := g.Run(); err != nil {
		g.Close()
		logger.Error("game error", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
	g.Close()

	logger.Info("game closed normally")
}
