package desktops

import (
	"bytes"
	"errors"
	"testing"

	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hypr-desktops/pkg/logger"
)

func TestNewButton(t *testing.T) {
	b := NewButton(2, "", &fakeDesktops{}, logger.Nop())

	assert.Equal(t, 2, b.Index())
	assert.Equal(t, "3", b.Label())
	assert.Equal(t, ClassButton, b.class)
	assert.False(t, b.Visible())
	assert.Equal(t, widget.MediumImportance, b.btn.Importance)
}

func TestNewButtonWithLabel(t *testing.T) {
	b := NewButton(0, "web", &fakeDesktops{}, logger.Nop())
	assert.Equal(t, "web", b.Label())
}

func TestButtonTapActivatesDesktop(t *testing.T) {
	fake := &fakeDesktops{}
	b := NewButton(1, "", fake, logger.Nop())

	b.btn.OnTapped()

	assert.Equal(t, []int{2}, fake.activated)
}

func TestButtonActivateFailureIsLogged(t *testing.T) {
	var buf bytes.Buffer
	log, err := logger.NewLogger(logger.WithoutFile(), logger.WithWriter(&buf))
	require.NoError(t, err)

	fake := &fakeDesktops{activateErr: errors.New("no such desktop")}
	b := NewButton(4, "", fake, log)
	b.show()

	b.Activate()
	b.Activate()

	assert.Equal(t, []int{5, 5}, fake.activated)
	assert.True(t, b.Visible())
	assert.Contains(t, buf.String(), "Failed to focus workspace")
	assert.Contains(t, buf.String(), `"index":4`)
	assert.Contains(t, buf.String(), "no such desktop")
}

func TestButtonFocusStyle(t *testing.T) {
	b := NewButton(0, "", &fakeDesktops{}, logger.Nop())

	b.setFocused(true)
	assert.Equal(t, ClassButtonFocused, b.class)
	assert.Equal(t, widget.HighImportance, b.btn.Importance)

	b.setFocused(false)
	assert.Equal(t, ClassButton, b.class)
	assert.Equal(t, widget.MediumImportance, b.btn.Importance)
}
