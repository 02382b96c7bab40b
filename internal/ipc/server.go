package ipc

import (
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"sync"
	"time"

	"hypr-desktops/internal/desktops"
	"hypr-desktops/pkg/global"
	"hypr-desktops/pkg/logger"
)

const (
	CommandStatus = "status"
	CommandSwitch = "switch"

	StatusSuccess = "success"
	StatusError   = "error"

	connDeadline = 5 * time.Second
)

type Request struct {
	Command string `json:"command"`
	// Desktop is the 1-based desktop number for CommandSwitch
	Desktop int `json:"desktop,omitempty"`
}

type Response struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	State   *desktops.State `json:"state,omitempty"`
}

// Controller is the desktop list driven by the socket.
type Controller interface {
	Snapshot() desktops.State
	Activate(index int) error
}

type Server struct {
	path     string
	ctrl     Controller
	log      *logger.Logger
	listener net.Listener
	wg       sync.WaitGroup
}

func NewServer(path string, ctrl Controller) *Server {
	return &Server{
		path: path,
		ctrl: ctrl,
		log:  global.GetLogger(),
	}
}

// Start listens on the unix socket and serves connections in the background.
func (s *Server) Start() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		s.log.Error("Failed to remove existing socket file", err)
		return fmt.Errorf("failed to remove stale socket %s: %w", s.path, err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create socket directory: %w", err)
	}

	listener, err := net.Listen("unix", s.path)
	if err != nil {
		return fmt.Errorf("failed to start socket server: %w", err)
	}
	s.listener = listener
	s.log.Info("Socket server started", "path", s.path)

	s.wg.Add(1)
	go s.serve()
	return nil
}

func (s *Server) serve() {
	defer s.wg.Done()

	for {
		conn, err := s.listener.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return
			}
			s.log.Error("Failed to accept connection", err)
			continue
		}

		s.log.Debug("New connection accepted")
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			s.handleConnection(conn)
		}()
	}
}

// Close stops accepting connections and removes the socket file.
func (s *Server) Close() error {
	if s.listener == nil {
		return nil
	}
	err := s.listener.Close()
	s.wg.Wait()
	s.log.Info("Socket server stopped", "path", s.path)
	return err
}

func (s *Server) handleConnection(conn net.Conn) {
	defer conn.Close()
	_ = conn.SetDeadline(time.Now().Add(connDeadline))

	var req Request
	decoder := json.NewDecoder(conn)
	if err := decoder.Decode(&req); err != nil {
		s.log.Error("Failed to decode request", err)
		return
	}

	s.log.Debug("Received request", "command", req.Command, "desktop", req.Desktop)
	resp := s.handle(req)

	encoder := json.NewEncoder(conn)
	if err := encoder.Encode(resp); err != nil {
		s.log.Error("Failed to encode response", err)
	} else {
		s.log.Debug("Response sent successfully", "status", resp.Status)
	}
}

func (s *Server) handle(req Request) Response {
	switch req.Command {
	case CommandStatus:
		state := s.ctrl.Snapshot()
		return Response{Status: StatusSuccess, Message: "ok", State: &state}

	case CommandSwitch:
		if req.Desktop < 1 {
			return Response{Status: StatusError, Message: fmt.Sprintf("invalid desktop number %d", req.Desktop)}
		}
		if err := s.ctrl.Activate(req.Desktop - 1); err != nil {
			s.log.Error("Switch command failed", err, "desktop", req.Desktop)
			return Response{Status: StatusError, Message: err.Error()}
		}
		s.log.Info("Switched desktop", "desktop", req.Desktop)
		return Response{Status: StatusSuccess, Message: fmt.Sprintf("switched to desktop %d", req.Desktop)}

	default:
		s.log.Error("Unknown command received", fmt.Errorf("command: %s", req.Command))
		return Response{Status: StatusError, Message: "Unknown command"}
	}
}
