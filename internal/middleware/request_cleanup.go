package middleware

import (
	"io"
	"net/http"
)

// bodies larger than this are closed without draining
const maxDrainBytes = 256 << 10

// DrainAndCloseRequest consumes what the handler left of the request body
// and closes it, letting the keep-alive connection be reused.
func DrainAndCloseRequest() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r)
			if r.Body == nil || r.Body == http.NoBody {
				return
			}
			_, _ = io.CopyN(io.Discard, r.Body, maxDrainBytes)
			_ = r.Body.Close()
		})
	}
}
