package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"

	"hypr-desktops/internal/desktops"
	"hypr-desktops/internal/ipc"
	"hypr-desktops/internal/wm"
	"hypr-desktops/pkg/config"
	"hypr-desktops/pkg/logger"
)

const AppID = "io.github.hypr-desktops"

// Bar is the window hosting the desktop list.
type Bar struct {
	config   *config.Config
	log      *logger.Logger
	manager  *wm.Manager
	desktops *desktops.Widget
	server   *ipc.Server
	window   fyne.Window

	mu      sync.Mutex
	cleaned bool
}

func NewBar(cfg *config.Config, log *logger.Logger) (*Bar, error) {
	log.Debug("Initializing desktop bar")

	manager, err := wm.NewManager(log)
	if err != nil {
		return nil, fmt.Errorf("no supported window manager found: %w", err)
	}
	return newBar(cfg, log, manager), nil
}

func newBar(cfg *config.Config, log *logger.Logger, manager *wm.Manager) *Bar {
	list := desktops.New(manager, cfg.Desktops, log)
	return &Bar{
		config:   cfg,
		log:      log,
		manager:  manager,
		desktops: list,
		server:   ipc.NewServer(cfg.GetSocketPath(), list),
	}
}

// Run shows the bar and blocks until the window is closed or the process
// receives SIGINT/SIGTERM.
func (b *Bar) Run() error {
	b.log.Info("Starting desktop bar", "wm", b.manager.Name())

	a := fyneapp.NewWithID(AppID)
	b.setup(a)
	defer b.Cleanup()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	done := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			b.log.Info("Received shutdown signal")
			a.Quit()
		case <-done:
		}
	}()

	b.window.ShowAndRun()
	close(done)
	return nil
}

// setup creates the window and starts polling and the control socket.
func (b *Bar) setup(a fyne.App) {
	b.window = a.NewWindow(b.config.Window.Title)
	b.window.SetContent(b.desktops.Container())
	if b.config.Window.Width > 0 && b.config.Window.Height > 0 {
		b.window.Resize(fyne.NewSize(b.config.Window.Width, b.config.Window.Height))
	}

	if err := b.server.Start(); err != nil {
		b.log.Error("Control socket disabled", err, "path", b.config.GetSocketPath())
	}

	b.desktops.Start()
}

// Cleanup performs cleanup operations before shutting down
func (b *Bar) Cleanup() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.cleaned {
		return
	}
	b.cleaned = true
	b.log.Info("Cleaning up desktop bar")

	b.desktops.Stop()
	if err := b.server.Close(); err != nil {
		b.log.Error("Failed to close socket server", err)
	}
	b.manager.Close()
}
