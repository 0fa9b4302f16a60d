package middleware

import (
	"errors"
	"net/http"
	"runtime/debug"

	"github.com/2beens/gymquest/internal/telemetry/metrics"
	"github.com/2beens/gymquest/pkg"

	log "github.com/sirupsen/logrus"
)

// PanicRecovery turns a handler panic into a 500 response.
func PanicRecovery(metricsManager *metrics.Manager) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(rec)
				}

				log.WithFields(log.Fields{
					"method": r.Method,
					"path":   r.URL.Path,
					"stack":  string(debug.Stack()),
				}).Errorf("handler panic: %v", rec)
				if metricsManager != nil {
					metricsManager.CounterHandleRequestPanic.Inc()
				}
				pkg.WriteJSONError(w, "internal error", http.StatusInternalServerError)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
