package desktops

import (
	"os"
	"sync"
	"testing"

	"fyne.io/fyne/v2/test"

	"hypr-desktops/internal/wm"
)

func TestMain(m *testing.M) {
	a := test.NewApp()
	code := m.Run()
	a.Quit()
	os.Exit(code)
}

// fakeDesktops is an in-memory window manager.
type fakeDesktops struct {
	mu          sync.Mutex
	count       int
	current     int
	countErr    error
	currentErr  error
	activateErr error
	activated   []int
	countCalls  int
}

func (f *fakeDesktops) set(count, current int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.count = count
	f.current = current
}

func (f *fakeDesktops) Count() (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.countCalls++
	return f.count, f.countErr
}

func (f *fakeDesktops) Current() (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.current, f.currentErr
}

func (f *fakeDesktops) Activate(number int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.activated = append(f.activated, number)
	return f.activateErr
}

func (f *fakeDesktops) Name() string {
	return "fake"
}

func (f *fakeDesktops) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.countCalls
}

// namedDesktops also lists desktop names.
type namedDesktops struct {
	*fakeDesktops
	desktops []wm.Desktop
	err      error
}

func (n *namedDesktops) Desktops() ([]wm.Desktop, error) {
	return n.desktops, n.err
}
