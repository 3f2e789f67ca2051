package response

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/godamri/helix-db/pkg/contextx"
	"github.com/google/uuid"
)

type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Meta    Meta        `json:"meta"`
}

type Meta struct {
	TraceID string `json:"trace_id"`
}

// Body is the error payload written for a StatusError.
type Body struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
}

func JSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	env := Envelope{
		Success: true,
		Data:    data,
		Meta:    Meta{TraceID: getTraceID(r)},
	}
	write(w, status, env)
}

// Status writes a {statusCode, message} body with the matching status line.
func Status(w http.ResponseWriter, status int, message string) {
	write(w, status, Body{StatusCode: status, Message: message})
}

func write(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// Nothing useful can be done once the header is out.
	_ = json.NewEncoder(w).Encode(payload)
}

func getTraceID(r *http.Request) string {
	if tid := contextx.GetTraceID(r.Context()); tid != contextx.Untriaged {
		return tid
	}
	tid := r.Header.Get("X-Trace-Id")
	if tid == "" {
		tid = strings.ReplaceAll(uuid.New().String(), "-", "")
	}
	return tid
}
