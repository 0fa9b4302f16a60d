package pkg

import (
	"encoding/json"
	"net/http"

	log "github.com/sirupsen/logrus"
)

var ContentType = struct {
	JSON string
	Text string
}{
	JSON: "application/json",
	Text: "text/plain; charset=utf-8",
}

// ErrorResponse is the body of every non-2xx JSON response.
type ErrorResponse struct {
	Error string `json:"error"`
}

func WriteText(w http.ResponseWriter, message string, statusCode int) {
	writeBody(w, ContentType.Text, []byte(message), statusCode)
}

func WriteJSON(w http.ResponseWriter, v any, statusCode int) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Errorf("marshal %T response: %s", v, err)
		writeBody(w, ContentType.JSON, []byte(`{"error":"internal error"}`), http.StatusInternalServerError)
		return
	}
	writeBody(w, ContentType.JSON, body, statusCode)
}

func WriteJSONError(w http.ResponseWriter, message string, statusCode int) {
	WriteJSON(w, ErrorResponse{Error: message}, statusCode)
}

func writeBody(w http.ResponseWriter, contentType string, body []byte, statusCode int) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(statusCode)
	if _, err := w.Write(body); err != nil {
		log.Errorf("write %d response: %s", statusCode, err)
	}
}
