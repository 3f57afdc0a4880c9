package server

import (
	"context"
	"errors"
	"math"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/textlab/textapi/config"
	"github.com/textlab/textapi/pkg/models"
	"github.com/textlab/textapi/pkg/server/handlertools"
)

const (
	versionHeader   = "X-Textapi-Version"
	requestIDHeader = "X-Request-ID"

	maxRequestIDLength = 64
)

var ErrRateLimited = errors.New("rate limit exceeded")

// SendVersion is a middleware that adds the current version to the response
func SendVersion(next http.Handler) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		if w.Header().Get(versionHeader) == "" {
			w.Header().Add(
				versionHeader,
				config.VersionString,
			)
		}
		next.ServeHTTP(w, r)
	}
	return http.HandlerFunc(fn)
}

// RequestID reuses the caller's X-Request-ID or generates a UUID, echoes it in
// the response and stores it where middleware.GetReqID finds it. Caller ids
// longer than 64 bytes or holding anything but printable ASCII are replaced.
func RequestID(next http.Handler) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(requestIDHeader)
		if !validRequestID(requestID) {
			requestID = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, requestID)
		ctx := context.WithValue(r.Context(), middleware.RequestIDKey, requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	}
	return http.HandlerFunc(fn)
}

func validRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLength {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] < '!' || id[i] > '~' {
			return false
		}
	}
	return true
}

// Recoverer turns a handler panic into a 500 error envelope so that every
// failure is answered with JSON.
func Recoverer(next http.Handler) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rvr := recover(); rvr != nil {
				if rvr == http.ErrAbortHandler {
					panic(rvr)
				}
				log.WithField("request_id", middleware.GetReqID(r.Context())).
					Errorf("panic: %v\n%s", rvr, debug.Stack())
				handlertools.RenderJSON(
					w,
					models.ErrorResponse{
						Success: false,
						Error:   http.StatusText(http.StatusInternalServerError),
					},
					http.StatusInternalServerError,
				)
			}
		}()
		next.ServeHTTP(w, r)
	}
	return http.HandlerFunc(fn)
}

// MaxBodySize caps request bodies at limit bytes.
func MaxBodySize(limit int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, limit)
			next.ServeHTTP(w, r)
		})
	}
}

// RateLimit rejects requests above cfg.RequestsPerSecond with a 429 envelope.
// The limiter is shared by all clients. A burst below 1 is raised to the
// per-second rate.
func RateLimit(cfg config.RateLimitConfig) func(http.Handler) http.Handler {
	burst := cfg.Burst
	if burst < 1 {
		burst = int(math.Max(1, math.Ceil(cfg.RequestsPerSecond)))
	}
	limiter := rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), burst)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				handlertools.RenderError(w, ErrRateLimited, http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// Timeout cancels the request context after timeout. When the deadline passes
// and the handler has written nothing, a 504 envelope is rendered. Unlike
// chi's middleware.Timeout it never writes a status after the handler did.
func Timeout(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			defer func() {
				cancel()
				if errors.Is(ctx.Err(), context.DeadlineExceeded) && ww.Status() == 0 {
					handlertools.RenderInternalError(ww, ctx.Err(), handlertools.TimeoutMessage)
				}
			}()

			next.ServeHTTP(ww, r.WithContext(ctx))
		}
		return http.HandlerFunc(fn)
	}
}
