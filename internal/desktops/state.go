package desktops

import "hypr-desktops/internal/wm"

// State is a point-in-time copy of the desktop list.
type State struct {
	Count    int           `json:"count"`
	Current  int           `json:"current"`
	Previous int           `json:"previous"`
	Buttons  []ButtonState `json:"buttons"`
}

type ButtonState struct {
	Index int    `json:"index"`
	Label string `json:"label"`
	// Name is the window manager's name for the desktop, if it has one
	Name    string `json:"name,omitempty"`
	Class   string `json:"class"`
	Visible bool   `json:"visible"`
}

// Focused reports whether the button carries the focused style.
func (s ButtonState) Focused() bool {
	return s.Class == ClassButtonFocused
}

// Lister is implemented by window managers that can enumerate desktops
// with their names.
type Lister interface {
	Desktops() ([]wm.Desktop, error)
}

// Snapshot returns the current state. Current and Previous are 0-based
// indices, NoDesktop when unknown.
func (w *Widget) Snapshot() State {
	names := w.desktopNames()

	w.mu.Lock()
	defer w.mu.Unlock()

	state := State{
		Count:    w.count,
		Current:  w.curr,
		Previous: w.prev,
		Buttons:  make([]ButtonState, len(w.buttons)),
	}
	for i, button := range w.buttons {
		state.Buttons[i] = ButtonState{
			Index:   button.index,
			Label:   button.Label(),
			Name:    names[button.index+1],
			Class:   button.class,
			Visible: button.Visible(),
		}
	}
	return state
}

// desktopNames maps 1-based desktop numbers to names. It returns nil when the
// window manager does not know names or the lookup fails.
func (w *Widget) desktopNames() map[int]string {
	lister, ok := w.desktops.(Lister)
	if !ok {
		return nil
	}

	desktops, err := lister.Desktops()
	if err != nil {
		w.log.Debug("Desktop names unavailable", "error", err.Error())
		return nil
	}

	names := make(map[int]string, len(desktops))
	for _, d := range desktops {
		if d.Name != "" {
			names[d.Number] = d.Name
		}
	}
	return names
}
