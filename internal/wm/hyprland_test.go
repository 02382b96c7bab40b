package wm

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hypr-desktops/pkg/logger"
)

const workspacesJSON = `[
	{"id": 3, "name": "3", "monitor": "DP-1", "windows": 1},
	{"id": 1, "name": "web", "monitor": "DP-1", "windows": 4},
	{"id": -98, "name": "special:scratch", "monitor": "DP-1", "windows": 1}
]`

type fakeHyprctl struct {
	replies map[string]string
	errs    map[string]error
	calls   []string
}

func (f *fakeHyprctl) run(args ...string) ([]byte, error) {
	key := strings.Join(args, " ")
	f.calls = append(f.calls, key)
	if err := f.errs[key]; err != nil {
		return []byte("failure"), err
	}
	return []byte(f.replies[key]), nil
}

func newTestHyprland(f *fakeHyprctl) *Hyprland {
	return &Hyprland{log: logger.Nop(), run: f.run}
}

func TestHyprlandDesktops(t *testing.T) {
	h := newTestHyprland(&fakeHyprctl{replies: map[string]string{
		"workspaces -j": workspacesJSON,
	}})

	desktops, err := h.Desktops()
	require.NoError(t, err)
	assert.Equal(t, []Desktop{{Number: 1, Name: "web"}, {Number: 3, Name: "3"}}, desktops)

	count, err := h.Count()
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestHyprlandCountEmpty(t *testing.T) {
	h := newTestHyprland(&fakeHyprctl{replies: map[string]string{
		"workspaces -j": `[]`,
	}})

	count, err := h.Count()
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestHyprlandCurrent(t *testing.T) {
	h := newTestHyprland(&fakeHyprctl{replies: map[string]string{
		"activeworkspace -j": `{"id": 2, "name": "2", "monitor": "DP-1", "windows": 0}`,
	}})

	number, err := h.Current()
	require.NoError(t, err)
	assert.Equal(t, 2, number)
}

func TestHyprlandCurrentSpecialWorkspace(t *testing.T) {
	h := newTestHyprland(&fakeHyprctl{replies: map[string]string{
		"activeworkspace -j": `{"id": -98, "name": "special:scratch"}`,
	}})

	_, err := h.Current()
	assert.Error(t, err)
}

func TestHyprlandQueryErrors(t *testing.T) {
	h := newTestHyprland(&fakeHyprctl{
		replies: map[string]string{"activeworkspace -j": `not json`},
		errs:    map[string]error{"workspaces -j": errors.New("exit status 1")},
	})

	_, err := h.Count()
	assert.ErrorContains(t, err, "hyprctl workspaces error")

	_, err = h.Current()
	assert.ErrorContains(t, err, "failed to parse hyprctl activeworkspace output")
}

func TestHyprlandActivate(t *testing.T) {
	f := &fakeHyprctl{replies: map[string]string{
		"dispatch workspace 4": "ok\n",
		"dispatch workspace 5": "Invalid dispatcher",
	}}
	h := newTestHyprland(f)

	require.NoError(t, h.Activate(4))
	assert.ErrorContains(t, h.Activate(5), "Invalid dispatcher")
	assert.Error(t, h.Activate(0))
	assert.Equal(t, []string{"dispatch workspace 4", "dispatch workspace 5"}, f.calls)
}

func TestHyprlandCountNotesSparseWorkspaces(t *testing.T) {
	var buf bytes.Buffer
	log, err := logger.NewLogger(logger.WithoutFile(), logger.WithWriter(&buf), logger.WithLevel(zerolog.DebugLevel))
	require.NoError(t, err)

	h := &Hyprland{log: log, run: (&fakeHyprctl{replies: map[string]string{
		"workspaces -j": workspacesJSON,
	}}).run}
	count, err := h.Count()
	require.NoError(t, err)
	assert.Equal(t, 3, count)
	assert.NotContains(t, buf.String(), "far exceeds")

	h.run = (&fakeHyprctl{replies: map[string]string{
		"workspaces -j": `[{"id": 1, "name": "1"}, {"id": 99, "name": "99"}]`,
	}}).run
	count, err = h.Count()
	require.NoError(t, err)
	assert.Equal(t, 99, count)
	assert.Contains(t, buf.String(), "far exceeds")
	assert.Contains(t, buf.String(), `"highest":99`)
}
