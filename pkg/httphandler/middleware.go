package httphandler

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	// Packages
	httpresponse "github.com/mutablelogic/go-server/pkg/httpresponse"
	httprouter "github.com/mutablelogic/go-server/pkg/httprouter"
	zerolog "github.com/rs/zerolog"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type responseWriter struct {
	http.ResponseWriter
	status int
	size   int
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Middleware returns router middleware which recovers from panics and logs
// each request with its status, size and duration
func Middleware(logger zerolog.Logger) httprouter.HTTPMiddlewareFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return wrap(logger, next)
	}
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func wrap(logger zerolog.Logger, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &responseWriter{ResponseWriter: w, status: http.StatusOK}

		defer func() {
			if rec := recover(); rec != nil {
				logger.Error().
					Interface("panic", rec).
					Str("stack", string(debug.Stack())).
					Str("path", r.URL.Path).
					Msg("panic recovered")
				_ = httpresponse.Error(rw, httpresponse.ErrInternalError.With(fmt.Sprint(rec)))
			}
			logger.Info().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", rw.status).
				Int("size", rw.size).
				Dur("duration", time.Since(start)).
				Str("remote_addr", r.RemoteAddr).
				Msg("request")
		}()

		next(rw, r)
	}
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.status = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	n, err := rw.ResponseWriter.Write(b)
	rw.size += n
	return n, err
}
