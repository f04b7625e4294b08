package shared

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"
)

// timestampLayout is the wire format for all timestamps in responses.
const timestampLayout = "2006-01-02 15:04:05"

// Timestamp is a time.Time that serializes as "yyyy-MM-dd HH:mm:ss".
type Timestamp time.Time

// MarshalJSON implements json.Marshaler.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(t).Format(timestampLayout))
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := time.Parse(timestampLayout, s)
	if err != nil {
		return err
	}
	*t = Timestamp(parsed)
	return nil
}

// ErrorResponse is the single error envelope shared by every failure
// path of the API.
type ErrorResponse struct {
	Status       int                 `json:"status"`
	Error        string              `json:"error"`
	Message      string              `json:"message"`
	Path         string              `json:"path"`
	Timestamp    Timestamp           `json:"timestamp"`
	FieldErrors  map[string][]string `json:"fieldErrors,omitempty"`
	GlobalErrors []string            `json:"globalErrors,omitempty"`
}

// SuccessResponse is the envelope for operations that return no entity,
// such as registration.
type SuccessResponse struct {
	Message   string    `json:"message"`
	Timestamp Timestamp `json:"timestamp"`
	Status    bool      `json:"status"`
}

// RespondWithJSON writes a JSON response with the given status code and data.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// RespondWithError writes the standard error envelope with the given
// status code, error title and message.
func RespondWithError(w http.ResponseWriter, r *http.Request, status int, title, message string) {
	RespondWithFieldErrors(w, r, status, title, message, nil)
}

// RespondWithFieldErrors writes the standard error envelope including a
// per-field error map, as produced by request validation.
func RespondWithFieldErrors(
	w http.ResponseWriter,
	r *http.Request,
	status int,
	title, message string,
	fieldErrors map[string][]string,
) {
	resp := ErrorResponse{
		Status:      status,
		Error:       title,
		Message:     message,
		Path:        r.URL.Path,
		Timestamp:   Timestamp(time.Now()),
		FieldErrors: fieldErrors,
	}

	slog.Debug("sending error response",
		"status_code", status,
		"error", title,
		"message", message,
		"trace_id", GetTraceID(r.Context()),
		"path", r.URL.Path,
		"method", r.Method)

	RespondWithJSON(w, r, status, resp)
}
