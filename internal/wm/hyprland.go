package wm

import (
	"encoding/json"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"hypr-desktops/pkg/logger"
)

// sparseGap is how far the highest workspace id may exceed the number of
// existing workspaces before Count notes it.
const sparseGap = 10

// runner executes hyprctl with the given arguments.
type runner func(args ...string) ([]byte, error)

func runHyprctl(args ...string) ([]byte, error) {
	return exec.Command("hyprctl", args...).CombinedOutput()
}

type Hyprland struct {
	log *logger.Logger
	run runner
}

type hyprWorkspace struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Monitor string `json:"monitor"`
	Windows int    `json:"windows"`
}

func NewHyprland(log *logger.Logger) (*Hyprland, error) {
	path, err := exec.LookPath("hyprctl")
	if err != nil {
		log.Error("hyprctl not found in PATH", err)
		return nil, fmt.Errorf("hyprctl not found in PATH: %w", err)
	}
	log.Debug("Found hyprctl", "path", path)

	return &Hyprland{log: log, run: runHyprctl}, nil
}

func (h *Hyprland) Name() string {
	return "Hyprland"
}

func (h *Hyprland) query(target string, v interface{}) error {
	output, err := h.run(target, "-j")
	if err != nil {
		h.log.Error("Failed to execute hyprctl", err, "target", target, "output", string(output))
		return fmt.Errorf("hyprctl %s error: %w", target, err)
	}

	if err := json.Unmarshal(output, v); err != nil {
		h.log.Error("Failed to parse hyprctl output", err, "target", target, "output", string(output))
		return fmt.Errorf("failed to parse hyprctl %s output: %w", target, err)
	}
	return nil
}

// Desktops returns the regular workspaces sorted by id. Special
// workspaces have negative ids and are skipped.
func (h *Hyprland) Desktops() ([]Desktop, error) {
	var workspaces []hyprWorkspace
	if err := h.query("workspaces", &workspaces); err != nil {
		return nil, err
	}

	desktops := make([]Desktop, 0, len(workspaces))
	for _, ws := range workspaces {
		if ws.ID <= 0 {
			continue
		}
		desktops = append(desktops, Desktop{Number: ws.ID, Name: ws.Name})
	}
	sortDesktops(desktops)
	return desktops, nil
}

// Count returns the highest workspace id, so that workspace N always maps
// to button N even when lower workspaces do not exist yet.
func (h *Hyprland) Count() (int, error) {
	desktops, err := h.Desktops()
	if err != nil {
		return 0, err
	}
	if len(desktops) == 0 {
		return 0, nil
	}

	highest := desktops[len(desktops)-1].Number
	if highest-len(desktops) > sparseGap {
		h.log.Debug("Highest workspace id far exceeds existing workspaces",
			"highest", highest,
			"existing", len(desktops))
	}
	return highest, nil
}

func (h *Hyprland) Current() (int, error) {
	var ws hyprWorkspace
	if err := h.query("activeworkspace", &ws); err != nil {
		return 0, err
	}
	if ws.ID <= 0 {
		return 0, fmt.Errorf("active workspace %q has no desktop number", ws.Name)
	}
	return ws.ID, nil
}

func (h *Hyprland) Activate(number int) error {
	if number < 1 {
		return fmt.Errorf("invalid desktop number %d", number)
	}
	h.log.Debug("Switching workspace", "number", number)

	output, err := h.run("dispatch", "workspace", strconv.Itoa(number))
	if err != nil {
		h.log.Error("Failed to switch workspace", err, "output", string(output))
		return fmt.Errorf("failed to switch workspace: %w", err)
	}
	if reply := strings.TrimSpace(string(output)); reply != "ok" {
		return fmt.Errorf("hyprctl dispatch workspace %d: %s", number, reply)
	}
	return nil
}
