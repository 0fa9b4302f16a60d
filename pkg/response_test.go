package pkg

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriteText(t *testing.T) {
	rr := httptest.NewRecorder()
	WriteText(rr, "v1.0.0", http.StatusOK)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, ContentType.Text, rr.Header().Get("Content-Type"))
	assert.Equal(t, "v1.0.0", rr.Body.String())
}

func TestWriteJSON(t *testing.T) {
	testCases := []struct {
		name         string
		write        func(w http.ResponseWriter)
		expectedCode int
		expectedBody string
	}{
		{
			name:         "value",
			write:        func(w http.ResponseWriter) { WriteJSON(w, map[string]int{"diamonds": 40}, http.StatusCreated) },
			expectedCode: http.StatusCreated,
			expectedBody: `{"diamonds":40}`,
		},
		{
			name:         "error",
			write:        func(w http.ResponseWriter) { WriteJSONError(w, "no active session", http.StatusConflict) },
			expectedCode: http.StatusConflict,
			expectedBody: `{"error":"no active session"}`,
		},
		{
			name:         "unmarshalable",
			write:        func(w http.ResponseWriter) { WriteJSON(w, map[string]any{"tick": make(chan int)}, http.StatusOK) },
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"error":"internal error"}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			tc.write(rr)
			assert.Equal(t, tc.expectedCode, rr.Code)
			assert.Equal(t, ContentType.JSON, rr.Header().Get("Content-Type"))
			assert.JSONEq(t, tc.expectedBody, rr.Body.String())
		})
	}
}
