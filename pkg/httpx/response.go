package httpx

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"strconv"
)

// WriteJSON writes a JSON response with the given status code and disables
// caching.
func WriteJSON(w http.ResponseWriter, code int, v any) {
	NoCache(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// NoCache sets the Cache-Control and Pragma headers to prevent caching.
func NoCache(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Pragma", "no-cache")
}

// DecodeJSON reads a JSON body of at most maxBytes into v. Unknown fields
// are rejected so typos in client payloads surface as validation errors.
func DecodeJSON(w http.ResponseWriter, r *http.Request, v any, maxBytes int64) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			return fmt.Errorf("request body exceeds %d bytes", tooBig.Limit)
		}
		return fmt.Errorf("invalid JSON body: %w", err)
	}
	return nil
}

// Attachment writes headers for a file download.
func Attachment(w http.ResponseWriter, filename, contentType string, size int64) {
	fileHeaders(w, "attachment", filename, contentType, size)
}

// Inline writes headers for a file the browser should display.
func Inline(w http.ResponseWriter, filename, contentType string, size int64) {
	fileHeaders(w, "inline", filename, contentType, size)
}

func fileHeaders(w http.ResponseWriter, disposition, filename, contentType string, size int64) {
	NoCache(w)
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("X-Content-Type-Options", "nosniff")
	// FormatMediaType switches to RFC 2231 encoding for non-ASCII names.
	if cd := mime.FormatMediaType(disposition, map[string]string{"filename": filename}); cd != "" {
		w.Header().Set("Content-Disposition", cd)
	} else {
		w.Header().Set("Content-Disposition", disposition)
	}
	if size > 0 {
		w.Header().Set("Content-Length", strconv.FormatInt(size, 10))
	}
}
