package desktops

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"

	"hypr-desktops/internal/wm"
	"hypr-desktops/pkg/config"
	"hypr-desktops/pkg/logger"
)

// NoDesktop marks a desktop index that has not been observed yet.
const NoDesktop = -1

// errorLogInterval bounds how often an unchanged tick error is logged.
const errorLogInterval = time.Minute

// Widget owns one Button per discovered desktop and keeps them in sync with
// the window manager.
type Widget struct {
	desktops  wm.DesktopManager
	log       *logger.Logger
	hideEmpty bool
	interval  time.Duration

	mu        sync.Mutex
	count     int
	curr      int
	prev      int
	buttons   []*Button
	container *fyne.Container

	stopChan chan struct{}
	running  bool

	lastError     error
	lastErrorTime time.Time
}

// New creates the desktop list. It does not query the window manager until
// the first Update.
func New(desktops wm.DesktopManager, cfg config.DesktopsConfig, log *logger.Logger) *Widget {
	interval := cfg.UpdateInterval()
	if interval <= 0 {
		interval = config.DefaultUpdateIntervalMs * time.Millisecond
	}

	return &Widget{
		desktops:  desktops,
		log:       log,
		hideEmpty: cfg.HideEmptyWorkspaces,
		interval:  interval,
		curr:      NoDesktop,
		prev:      NoDesktop,
		container: container.NewHBox(),
	}
}

// Container returns the row holding the buttons.
func (w *Widget) Container() *fyne.Container {
	return w.container
}

// Update re-queries the window manager and reconciles the buttons. A query
// error leaves the widget untouched.
func (w *Widget) Update() error {
	count, err := w.desktops.Count()
	if err != nil {
		return fmt.Errorf("failed to get desktop count: %w", err)
	}
	number, err := w.desktops.Current()
	if err != nil {
		return fmt.Errorf("failed to get current desktop: %w", err)
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	w.count = count
	if index := number - 1; index != w.curr {
		w.log.Debug("Current desktop changed", "from", w.curr, "to", index)
		w.prev = w.curr
		w.curr = index
	}

	w.addOrUpdateButtons()
	return nil
}

func (w *Widget) addOrUpdateButtons() {
	added := false
	for index := 0; index < w.count; index++ {
		var button *Button
		if index < len(w.buttons) {
			button = w.buttons[index]
		} else {
			button = w.tryAddButton(index)
			if button == nil {
				continue
			}
			added = true
		}
		w.updateButton(button)
	}

	for index := w.count; index < len(w.buttons); index++ {
		w.tryRemoveButton(index)
	}

	if added {
		slices.SortStableFunc(w.buttons, func(a, b *Button) int {
			return cmp.Compare(a.index, b.index)
		})
		w.syncContainer()
	}
}

// syncContainer replaces the container children when their order differs
// from the sorted buttons.
func (w *Widget) syncContainer() {
	desired := make([]fyne.CanvasObject, len(w.buttons))
	for i, button := range w.buttons {
		desired[i] = button.CanvasObject()
	}
	if slices.Equal(w.container.Objects, desired) {
		return
	}

	w.container.Objects = desired
	w.container.Refresh()
	w.log.Debug("Desktop buttons re-rendered", "count", len(desired))
}

func (w *Widget) updateButton(button *Button) {
	if w.hideEmpty {
		button.hide()
		return
	}

	button.show()
	button.setFocused(button.index == w.curr)
}

func (w *Widget) label(index int) string {
	return strconv.Itoa(index + 1)
}

// tryAddButton returns nil when a button for index already exists.
func (w *Widget) tryAddButton(index int) *Button {
	for _, button := range w.buttons {
		if button.index == index {
			return nil
		}
	}

	button := NewButton(index, w.label(index), w.desktops, w.log)
	w.updateButton(button)
	w.buttons = append(w.buttons, button)
	w.log.Debug("Added workspace button", "index", index, "label", button.Label())
	return button
}

// tryRemoveButton hides the button at position index. Buttons are never
// removed from the collection.
func (w *Widget) tryRemoveButton(index int) {
	if index < 0 || index >= len(w.buttons) {
		return
	}
	button := w.buttons[index]
	if !button.Visible() {
		return
	}
	button.hide()
	w.log.Debug("Hid workspace button", "index", index)
}

// Activate switches to the desktop at the 0-based index.
func (w *Widget) Activate(index int) error {
	if index < 0 {
		return fmt.Errorf("invalid desktop index %d", index)
	}
	return w.desktops.Activate(index + 1)
}

// Buttons returns the buttons in container order.
func (w *Widget) Buttons() []*Button {
	w.mu.Lock()
	defer w.mu.Unlock()
	return slices.Clone(w.buttons)
}

// Start begins polling the window manager. The first update runs immediately.
func (w *Widget) Start() {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		w.log.Debug("Desktop list already running")
		return
	}
	w.stopChan = make(chan struct{})
	w.running = true
	stop := w.stopChan
	w.mu.Unlock()

	go func() {
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		w.tick()
		for {
			select {
			case <-stop:
				w.log.Info("Desktop list stopped")
				return
			case <-ticker.C:
				w.tick()
			}
		}
	}()

	w.log.Info("Desktop list started", "interval", w.interval.String())
}

// Stop ends the polling loop.
func (w *Widget) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.running {
		return
	}
	close(w.stopChan)
	w.running = false
}

func (w *Widget) tick() {
	err := w.Update()

	w.mu.Lock()
	defer w.mu.Unlock()

	if err == nil {
		if w.lastError != nil {
			w.log.Info("Desktop updates recovered")
			w.lastError = nil
		}
		return
	}

	if w.lastError == nil || err.Error() != w.lastError.Error() ||
		time.Since(w.lastErrorTime) > errorLogInterval {
		w.log.Error("Failed to update desktops", err)
		w.lastErrorTime = time.Now()
	}
	w.lastError = err
}
