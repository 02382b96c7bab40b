package ipc

import (
	"encoding/json"
	"fmt"
	"net"
	"time"

	"hypr-desktops/pkg/global"
)

const dialTimeout = 2 * time.Second

// SendCommand sends one request to a running bar and waits for the response.
func SendCommand(path string, req Request) (Response, error) {
	log := global.GetLogger()

	log.Debug("Attempting to connect to socket server", "path", path)

	conn, err := net.DialTimeout("unix", path, dialTimeout)
	if err != nil {
		log.Error("Failed to connect to socket server", err)
		return Response{}, fmt.Errorf("is hypr-desktops running? %w", err)
	}
	defer conn.Close()

	if err := json.NewEncoder(conn).Encode(req); err != nil {
		log.Error("Failed to encode request", err)
		return Response{}, err
	}

	log.Debug("Request sent successfully", "command", req.Command)

	var resp Response
	if err := json.NewDecoder(conn).Decode(&resp); err != nil {
		log.Error("Failed to decode response", err)
		return Response{}, err
	}

	log.Debug("Response received", "status", resp.Status, "message", resp.Message)
	if resp.Status != StatusSuccess {
		return resp, fmt.Errorf("%s command failed: %s", req.Command, resp.Message)
	}
	return resp, nil
}
