package pkg

import (
	"encoding/json"
	"net/http"

	log "github.com/sirupsen/logrus"
)

// ContentType holds the content type values used across handlers.
var ContentType = struct {
	JSON string
	Text string
}{
	JSON: "application/json",
	Text: "text/plain",
}

// ErrorKind values used in API error responses.
var ErrorKind = struct {
	Validation string
	NotFound   string
	Duplicate  string
	Internal   string
}{
	Validation: "validation",
	NotFound:   "not_found",
	Duplicate:  "duplicate",
	Internal:   "internal",
}

type APIError struct {
	Kind    string `json:"kind"`
	Message string `json:"error"`
}

func WriteResponse(w http.ResponseWriter, contentType, message string, statusCode int) {
	WriteResponseBytes(w, contentType, []byte(message), statusCode)
}

func WriteResponseBytes(w http.ResponseWriter, contentType string, message []byte, statusCode int) {
	if contentType != "" {
		w.Header().Add("Content-Type", contentType)
	}

	w.WriteHeader(statusCode)

	if _, err := w.Write(message); err != nil {
		log.Errorf("failed to write response [%s]: %s", message, err)
	}
}

func WriteResponseBytesOK(w http.ResponseWriter, contentType string, message []byte) {
	WriteResponseBytes(w, contentType, message, http.StatusOK)
}

func WriteTextResponseOK(w http.ResponseWriter, message string) {
	WriteResponseBytes(w, ContentType.Text, []byte(message), http.StatusOK)
}

func WriteJSONResponseOK(w http.ResponseWriter, message string) {
	WriteResponseBytes(w, ContentType.JSON, []byte(message), http.StatusOK)
}

// WriteAPIError writes a structured error payload, so that clients always
// get a machine-readable kind next to the human-readable message.
func WriteAPIError(w http.ResponseWriter, kind, message string, statusCode int) {
	apiErrJson, err := json.Marshal(APIError{
		Kind:    kind,
		Message: message,
	})
	if err != nil {
		log.Errorf("failed to marshal api error [%s: %s]: %s", kind, message, err)
		http.Error(w, message, statusCode)
		return
	}
	WriteResponseBytes(w, ContentType.JSON, apiErrJson, statusCode)
}
