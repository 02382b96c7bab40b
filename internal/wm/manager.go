package wm

import (
	"cmp"
	"fmt"
	"os"
	"slices"

	"hypr-desktops/pkg/logger"
)

// Manager handles desktop operations based on the session type
type Manager struct {
	dm  DesktopManager
	log *logger.Logger
}

// NewManager creates a new desktop manager based on the session type
func NewManager(log *logger.Logger) (*Manager, error) {
	sessionType := os.Getenv("XDG_SESSION_TYPE")
	log.Info("Session type detected", "session", sessionType)

	var dm DesktopManager
	var err error

	switch sessionType {
	case "wayland":
		if sig := os.Getenv("HYPRLAND_INSTANCE_SIGNATURE"); sig != "" {
			log.Debug("Initializing compositor support", "type", "Hyprland")
			dm, err = NewHyprland(log)
			if err != nil {
				return nil, fmt.Errorf("failed to initialize Hyprland support: %w", err)
			}
		} else {
			return nil, fmt.Errorf("unsupported Wayland compositor: only Hyprland is supported")
		}
	case "x11":
		log.Debug("Initializing compositor support", "type", "X11")
		dm, err = NewX11(os.Getenv("DISPLAY"), log)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize X11 support: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported session type: %q", sessionType)
	}

	log.Info("Desktop manager initialized", "name", dm.Name())
	return NewManagerWith(dm, log), nil
}

// NewManagerWith wraps an existing desktop manager.
func NewManagerWith(dm DesktopManager, log *logger.Logger) *Manager {
	return &Manager{dm: dm, log: log}
}

func (m *Manager) Count() (int, error) {
	return m.dm.Count()
}

func (m *Manager) Current() (int, error) {
	return m.dm.Current()
}

func (m *Manager) Activate(number int) error {
	return m.dm.Activate(number)
}

// Name returns the name of the current window manager
func (m *Manager) Name() string {
	return m.dm.Name()
}

// Desktops lists the desktops with names when the backend knows them,
// otherwise numbered 1..Count.
func (m *Manager) Desktops() ([]Desktop, error) {
	if lister, ok := m.dm.(interface{ Desktops() ([]Desktop, error) }); ok {
		return lister.Desktops()
	}

	count, err := m.dm.Count()
	if err != nil {
		return nil, err
	}
	desktops := make([]Desktop, count)
	for i := range desktops {
		desktops[i].Number = i + 1
	}
	return desktops, nil
}

// Close releases backend connections.
func (m *Manager) Close() {
	if closer, ok := m.dm.(interface{ Close() }); ok {
		closer.Close()
		m.log.Debug("Desktop manager closed", "name", m.dm.Name())
	}
}

func sortDesktops(desktops []Desktop) {
	slices.SortFunc(desktops, func(a, b Desktop) int {
		return cmp.Compare(a.Number, b.Number)
	})
}
