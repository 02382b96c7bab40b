package wm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hypr-desktops/pkg/logger"
)

type countingManager struct {
	count  int
	closed bool
}

func (c *countingManager) Count() (int, error)   { return c.count, nil }
func (c *countingManager) Current() (int, error) { return 1, nil }
func (c *countingManager) Activate(int) error    { return nil }
func (c *countingManager) Name() string          { return "counting" }
func (c *countingManager) Close()                { c.closed = true }

func TestNewManagerUnsupportedSession(t *testing.T) {
	t.Setenv("XDG_SESSION_TYPE", "tty")

	_, err := NewManager(logger.Nop())
	assert.ErrorContains(t, err, "unsupported session type")
}

func TestNewManagerUnsupportedCompositor(t *testing.T) {
	t.Setenv("XDG_SESSION_TYPE", "wayland")
	t.Setenv("HYPRLAND_INSTANCE_SIGNATURE", "")

	_, err := NewManager(logger.Nop())
	assert.ErrorContains(t, err, "only Hyprland is supported")
}

func TestManagerDesktopsFallback(t *testing.T) {
	dm := &countingManager{count: 3}
	m := NewManagerWith(dm, logger.Nop())

	desktops, err := m.Desktops()
	require.NoError(t, err)
	assert.Equal(t, []Desktop{{Number: 1}, {Number: 2}, {Number: 3}}, desktops)
	assert.Equal(t, "counting", m.Name())

	m.Close()
	assert.True(t, dm.closed)
}

func TestManagerDesktopsFromBackend(t *testing.T) {
	h := newTestHyprland(&fakeHyprctl{replies: map[string]string{
		"workspaces -j": workspacesJSON,
	}})
	m := NewManagerWith(h, logger.Nop())

	desktops, err := m.Desktops()
	require.NoError(t, err)
	assert.Len(t, desktops, 2)
	assert.Equal(t, "web", desktops[0].Name)
}
