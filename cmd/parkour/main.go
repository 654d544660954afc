package main

import (
	"flag"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"

	"parkour/internal/config"
	"parkour/internal/game"

	"go.uber.org/zap"
)

var (
	isDebug    = flag.Bool("debug", false, "Enable debug log output")
	configPath = flag.String("config", "config.toml", "Path to the config file")
)

func main() {
	flag.Parse()

	// Change working directory to executable location for deployed builds.
	// Skip this for "go run" which puts the binary in a temp directory.
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		if !strings.Contains(execDir, "go-build") {
			os.Chdir(execDir)
		}
	}

	var logger *zap.Logger
	if *isDebug {
		logger = unwrap(zap.NewDevelopment())
	} else {
		logger = unwrap(zap.NewProduction())
	}

	code := run(logger)
	_ = logger.Sync()
	os.Exit(code)
}

func run(logger *zap.Logger) int {
	logger.Info("Parkour start")
	printBuildInfo(logger)
	defer logger.Info("Parkour exit")

	cfg, created, err := config.Load(*configPath)
	if err != nil {
		logger.Error("Read config fail", zap.String("path", *configPath), zap.Error(err))
		return 1
	}
	if created {
		logger.Info("Wrote default config", zap.String("path", *configPath))
	}

	g := game.New(cfg, logger.Named("game"))
	if err := g.Run(); err != nil {
		logger.Error("Game exited with error", zap.Error(err))
		return 1
	}
	return 0
}

func printBuildInfo(logger *zap.Logger) {
	binaryInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	settings := make(map[string]string)
	for _, v := range binaryInfo.Settings {
		settings[v.Key] = v.Value
	}
	logger.Debug("Build info", zap.String("go", binaryInfo.GoVersion), zap.Any("settings", settings))
}

func unwrap[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
