package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mironco/blockbuilder/internal/config"
	"github.com/mironco/blockbuilder/internal/game"
	"github.com/mironco/blockbuilder/internal/input"
	"github.com/mironco/blockbuilder/internal/logger"

	"go.uber.org/zap"
)

func main() {
	// Change working directory to executable location for deployed builds.
	// Skip this for "go run" which puts the binary in a temp directory.
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		if !strings.Contains(execDir, "go-build") {
			os.Chdir(execDir)
		}
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "blockbuilder: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, found, err := config.LoadOptional(config.FileName)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logger.New(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	if found {
		log.Info("config loaded", zap.String("path", config.FileName))
	} else {
		log.Debug("no config file, using defaults", zap.String("path", config.FileName))
	}

	g, err := game.New(cfg, log, input.RaylibSource{})
	if err != nil {
		return err
	}
	g.Run()
	return nil
}
