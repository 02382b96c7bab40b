package wm

type DesktopManager interface {
	// Count returns the number of virtual desktops
	Count() (int, error)
	// Current returns the 1-based number of the focused desktop
	Current() (int, error)
	// Activate switches to the desktop with the given 1-based number
	Activate(number int) error
	// Name returns the WM name for logging/display
	Name() string
}

// Desktop is a virtual desktop as reported by the window manager.
type Desktop struct {
	Number int
	Name   string
}
