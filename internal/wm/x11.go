package wm

import (
	"fmt"

	"github.com/jezek/xgb"
	"github.com/jezek/xgbutil"
	"github.com/jezek/xgbutil/ewmh"

	"hypr-desktops/pkg/logger"
)

// rootProperties reads and requests the EWMH desktop properties of the root
// window. Desktop numbers at this level are 0-based.
type rootProperties interface {
	NumberOfDesktops() (uint, error)
	CurrentDesktop() (uint, error)
	DesktopNames() ([]string, error)
	RequestDesktop(desktop int) error
	Close()
}

type xgbRoot struct {
	xu   *xgbutil.XUtil
	conn *xgb.Conn
}

func (r xgbRoot) NumberOfDesktops() (uint, error) { return ewmh.NumberOfDesktopsGet(r.xu) }
func (r xgbRoot) CurrentDesktop() (uint, error)   { return ewmh.CurrentDesktopGet(r.xu) }
func (r xgbRoot) DesktopNames() ([]string, error) { return ewmh.DesktopNamesGet(r.xu) }
func (r xgbRoot) RequestDesktop(desktop int) error {
	return ewmh.CurrentDesktopReq(r.xu, desktop)
}
func (r xgbRoot) Close() { r.conn.Close() }

// X11 reads and switches desktops through the EWMH root window properties.
// EWMH desktops are 0-based; numbers at this boundary are 1-based.
type X11 struct {
	root rootProperties
	log  *logger.Logger
}

func NewX11(display string, log *logger.Logger) (*X11, error) {
	xu, err := xgbutil.NewConnDisplay(display)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to X server %q: %w", display, err)
	}

	root := xgbRoot{xu: xu, conn: xu.Conn()}
	if _, err := root.NumberOfDesktops(); err != nil {
		root.Close()
		return nil, fmt.Errorf("window manager does not support _NET_NUMBER_OF_DESKTOPS: %w", err)
	}
	log.Debug("Connected to X server", "display", display)

	return &X11{root: root, log: log}, nil
}

func (x *X11) Name() string {
	return "X11"
}

func (x *X11) Count() (int, error) {
	n, err := x.root.NumberOfDesktops()
	if err != nil {
		return 0, fmt.Errorf("failed to read _NET_NUMBER_OF_DESKTOPS: %w", err)
	}
	return int(n), nil
}

func (x *X11) Current() (int, error) {
	d, err := x.root.CurrentDesktop()
	if err != nil {
		return 0, fmt.Errorf("failed to read _NET_CURRENT_DESKTOP: %w", err)
	}
	return int(d) + 1, nil
}

// Desktops returns all desktops with their _NET_DESKTOP_NAMES entry, if any.
func (x *X11) Desktops() ([]Desktop, error) {
	count, err := x.Count()
	if err != nil {
		return nil, err
	}

	names, err := x.root.DesktopNames()
	if err != nil {
		x.log.Debug("No desktop names available", "error", err.Error())
	}

	desktops := make([]Desktop, count)
	for i := range desktops {
		desktops[i].Number = i + 1
		if i < len(names) {
			desktops[i].Name = names[i]
		}
	}
	return desktops, nil
}

func (x *X11) Activate(number int) error {
	if number < 1 {
		return fmt.Errorf("invalid desktop number %d", number)
	}
	x.log.Debug("Switching desktop", "number", number)

	if err := x.root.RequestDesktop(number - 1); err != nil {
		return fmt.Errorf("failed to switch to desktop %d: %w", number, err)
	}
	return nil
}

func (x *X11) Close() {
	x.root.Close()
}
