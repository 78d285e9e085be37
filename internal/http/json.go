package httpx

import (
	"encoding/json"
	"net/http"
)

// apiError is the envelope every endpoint returns on failure: a stable
// machine-readable code plus the underlying error's message.
type apiError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// maxRequestBody caps the bodies readJSON will decode. Content payloads are
// small; anything near this size is abuse.
const maxRequestBody = 1 << 20

// readJSON decodes the request body into dst, rejecting unknown fields and
// oversized bodies. On failure it writes a 400 invalid_json response and
// returns false so handlers can bail with a bare return.
func readJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid_json", err)
		return false
	}
	return true
}

// writeJSON marshals v before touching the ResponseWriter so an encoding
// failure can still become a clean 500 instead of a half-written body.
func writeJSON(w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// Write errors mean the client went away; nothing useful to do.
	_, _ = w.Write(body)
}

// writeErr writes the error envelope with the given status and code.
func writeErr(w http.ResponseWriter, status int, code string, err error) {
	writeJSON(w, status, apiError{Error: code, Message: err.Error()})
}
