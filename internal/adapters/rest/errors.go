package rest

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/example/monitoreo/internal/ports/secondary"
)

// remoteError extracts the backend's human-readable message from a non-2xx
// response. The backend answers either {"message": "..."} or {"error": "..."};
// anything else falls back to the status code.
func remoteError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	msg := ""
	if json.Unmarshal(body, &payload) == nil {
		msg = payload.Message
		if msg == "" {
			msg = payload.Error
		}
	}
	return &secondary.RemoteError{Status: resp.StatusCode, Message: msg}
}
