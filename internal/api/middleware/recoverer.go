package middleware

import (
	"net/http"

	"github.com/cloo-solutions/krishisahay/internal/api"
	"go.uber.org/zap"
)

// Recoverer turns a panic in a later handler into the standard
// 500 {"error":"Server error"} response and logs the stack.
func Recoverer(logger *zap.Logger) func(http.Handler) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rvr := recover()
				if rvr == nil {
					return
				}
				if rvr == http.ErrAbortHandler {
					panic(rvr)
				}

				logger.Error("panic recovered",
					zap.Any("panic", rvr),
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.String("request_id", GetRequestID(r.Context())),
					zap.Stack("stack"),
				)
				api.Error(w, http.StatusInternalServerError, api.ServerErrorMessage)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
