package config

import (
	"os"
	"path/filepath"
	"time"
)

// Config holds the application configuration.
type Config struct {
	Desktops   DesktopsConfig `json:"desktops" toml:"desktops"`
	Window     WindowConfig   `json:"window" toml:"window"`
	SocketPath string         `json:"socket_path" toml:"socket_path"`
}

// DesktopsConfig holds the options of the desktop list widget.
//
// The label options are part of the schema but labels are always the
// 1-based desktop number; see UnusedOptions.
type DesktopsConfig struct {
	LabelWorkspaceBtn   string `json:"label_workspace_btn" toml:"label_workspace_btn"`
	LabelDefaultName    string `json:"label_default_name" toml:"label_default_name"`
	LabelZeroIndex      bool   `json:"label_zero_index" toml:"label_zero_index"`
	HideEmptyWorkspaces bool   `json:"hide_empty_workspaces" toml:"hide_empty_workspaces"`
	UpdateIntervalMs    int    `json:"update_interval_ms" toml:"update_interval_ms"`
}

// WindowConfig holds the bar window options.
type WindowConfig struct {
	Title  string  `json:"title" toml:"title"`
	Width  float32 `json:"width" toml:"width"`
	Height float32 `json:"height" toml:"height"`
}

// UpdateInterval returns the polling interval of the desktop list.
func (d DesktopsConfig) UpdateInterval() time.Duration {
	return time.Duration(d.UpdateIntervalMs) * time.Millisecond
}

// GetSocketPath returns the control socket path, falling back to the
// runtime directory when none is configured.
func (c *Config) GetSocketPath() string {
	if c.SocketPath != "" {
		return c.SocketPath
	}
	if dir := os.Getenv("XDG_RUNTIME_DIR"); dir != "" {
		return filepath.Join(dir, DefaultSocketName)
	}
	return filepath.Join(os.TempDir(), DefaultSocketName)
}

// UnusedOptions returns the names of options that are set to a non-default
// value but not consumed by the desktop list.
func (c *Config) UnusedOptions() []string {
	var unused []string
	if c.Desktops.LabelWorkspaceBtn != DefaultLabelWorkspaceBtn {
		unused = append(unused, "label_workspace_btn")
	}
	if c.Desktops.LabelDefaultName != DefaultLabelDefaultName {
		unused = append(unused, "label_default_name")
	}
	if c.Desktops.LabelZeroIndex != DefaultLabelZeroIndex {
		unused = append(unused, "label_zero_index")
	}
	return unused
}
