package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/godamri/helix-db/http/response"
)

// PanicRecovery handles panics in HTTP handlers.
// A panic carrying an error is handed to h, so database errors raised with
// panic(err) get the same mapping as returned ones. Anything else is logged
// with its stack and answered with a 500.
// CRITICAL: This does NOT call os.Exit(1). The server must stay alive.
func PanicRecovery(h response.ErrorHandler) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				if err, ok := rec.(error); ok && h != nil {
					h.HandleError(w, r, err)
					return
				}

				slog.ErrorContext(r.Context(), "HTTP PANIC RECOVERED",
					"error", fmt.Sprintf("%v", rec),
					"method", r.Method,
					"path", r.URL.Path,
					"stack", string(debug.Stack()),
				)

				// Do not leak the stack trace to the client.
				response.Status(w, http.StatusInternalServerError, "Internal server error")
			}()
			next.ServeHTTP(w, r)
		})
	}
}
