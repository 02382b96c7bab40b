package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/rs/zerolog"

	"hypr-desktops/internal/app"
	"hypr-desktops/internal/ipc"
	"hypr-desktops/pkg/config"
	"hypr-desktops/pkg/global"
	"hypr-desktops/pkg/logger"
)

var (
	// Version is set via ldflags when building.
	Version = "dev"
)

func main() {
	os.Exit(run())
}

// run returns the process exit code so deferred cleanup, including the log
// file, runs before the process exits.
func run() int {
	configPath := flag.String("config", "", "path to config file (.json or .toml)")
	debug := flag.Bool("debug", false, "enable debug logging")
	switchTo := flag.Int("switch", 0, "switch the running bar to desktop `N` (1-based)")
	status := flag.Bool("status", false, "print the running bar's desktop state as JSON")
	flag.Parse()

	logLevel := zerolog.InfoLevel
	if *debug {
		logLevel = zerolog.DebugLevel
	}

	log, err := logger.NewLogger(
		logger.WithConsole(),
		logger.WithLevel(logLevel),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		return 1
	}
	defer log.Close()

	log.Debug("Starting hypr-desktops",
		"version", Version,
		"pid", os.Getpid(),
		"os", runtime.GOOS,
		"arch", runtime.GOARCH,
		"debug", *debug)

	cfg, err := config.FindConfig(*configPath, log)
	if err != nil {
		log.Error("Failed to load configuration", err, "provided_path", *configPath)
		return 1
	}
	log.Debug("Configuration loaded successfully",
		"update_interval", cfg.Desktops.UpdateInterval().String(),
		"hide_empty_workspaces", cfg.Desktops.HideEmptyWorkspaces,
		"socket_path", cfg.GetSocketPath())

	global.InitGlobals(log)

	if *switchTo != 0 {
		if _, err := ipc.SendCommand(cfg.GetSocketPath(), ipc.Request{Command: ipc.CommandSwitch, Desktop: *switchTo}); err != nil {
			log.Error("Failed to switch desktop", err, "desktop", *switchTo)
			return 1
		}
		return 0
	}

	if *status {
		resp, err := ipc.SendCommand(cfg.GetSocketPath(), ipc.Request{Command: ipc.CommandStatus})
		if err != nil {
			log.Error("Failed to query desktop state", err)
			return 1
		}
		data, err := json.MarshalIndent(resp.State, "", "  ")
		if err != nil {
			log.Error("Failed to encode desktop state", err)
			return 1
		}
		fmt.Println(string(data))
		return 0
	}

	if unused := cfg.UnusedOptions(); len(unused) > 0 {
		log.Warn("Options are accepted but not applied to labels yet", "options", unused)
	}

	log.Info("Starting hypr-desktops", "version", Version)
	bar, err := app.NewBar(cfg, log)
	if err != nil {
		log.Error("Failed to create desktop bar", err)
		return 1
	}

	if err := bar.Run(); err != nil {
		log.Error("Application error", err)
		return 1
	}
	return 0
}
