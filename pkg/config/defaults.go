package config

const (
	DefaultLabelWorkspaceBtn   = "{index}"
	DefaultLabelDefaultName    = ""
	DefaultLabelZeroIndex      = false
	DefaultHideEmptyWorkspaces = false
	DefaultUpdateIntervalMs    = 100

	MinUpdateIntervalMs = 10
	MaxUpdateIntervalMs = 60000

	DefaultWindowTitle  = "Desktops"
	DefaultWindowWidth  = 240
	DefaultWindowHeight = 32

	DefaultSocketName = "hypr-desktops.sock"
)

// DefaultConfig creates a default configuration.
func DefaultConfig() *Config {
	return &Config{
		Desktops: DesktopsConfig{
			LabelWorkspaceBtn:   DefaultLabelWorkspaceBtn,
			LabelDefaultName:    DefaultLabelDefaultName,
			LabelZeroIndex:      DefaultLabelZeroIndex,
			HideEmptyWorkspaces: DefaultHideEmptyWorkspaces,
			UpdateIntervalMs:    DefaultUpdateIntervalMs,
		},
		Window: WindowConfig{
			Title:  DefaultWindowTitle,
			Width:  DefaultWindowWidth,
			Height: DefaultWindowHeight,
		},
	}
}
