package desktops

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"

	"hypr-desktops/pkg/logger"
)

// Style classes of a desktop button.
const (
	ClassButton        = "ws-btn"
	ClassButtonFocused = "ws-btn-focused"
)

// Activator switches to a desktop by its 1-based number.
type Activator interface {
	Activate(number int) error
}

// Button is a clickable control bound to one desktop index.
type Button struct {
	index     int
	class     string
	btn       *widget.Button
	activator Activator
	log       *logger.Logger
}

// NewButton creates a hidden button for the desktop at index. An empty label
// defaults to the 1-based desktop number.
func NewButton(index int, label string, activator Activator, log *logger.Logger) *Button {
	if label == "" {
		label = strconv.Itoa(index + 1)
	}

	b := &Button{
		index:     index,
		class:     ClassButton,
		activator: activator,
		log:       log,
	}
	b.btn = widget.NewButton(label, b.Activate)
	b.btn.Importance = widget.MediumImportance
	b.btn.Hide()
	return b
}

// Index returns the 0-based desktop index.
func (b *Button) Index() int {
	return b.index
}

func (b *Button) Label() string {
	return b.btn.Text
}

func (b *Button) Visible() bool {
	return b.btn.Visible()
}

// CanvasObject returns the fyne object placed in the container.
func (b *Button) CanvasObject() fyne.CanvasObject {
	return b.btn
}

// Activate asks the window manager to focus this desktop. Failures are
// logged and the button stays usable.
func (b *Button) Activate() {
	if err := b.activator.Activate(b.index + 1); err != nil {
		b.log.Error("Failed to focus workspace", err, "index", b.index)
	}
}

func (b *Button) show() {
	if !b.btn.Visible() {
		b.btn.Show()
	}
}

func (b *Button) hide() {
	if b.btn.Visible() {
		b.btn.Hide()
	}
}

func (b *Button) setFocused(focused bool) {
	class, importance := ClassButton, widget.MediumImportance
	if focused {
		class, importance = ClassButtonFocused, widget.HighImportance
	}
	if b.class == class {
		return
	}
	b.class = class
	b.btn.Importance = importance
	b.btn.Refresh()
}
