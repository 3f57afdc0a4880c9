package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/textlab/textapi/config"
	"github.com/textlab/textapi/pkg/models"
	"github.com/textlab/textapi/pkg/server/handlertools"
)

func TestRequestID(t *testing.T) {
	var seen string
	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = middleware.GetReqID(r.Context())
	}))

	t.Run("generated", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

		id := rr.Header().Get(requestIDHeader)
		_, err := uuid.Parse(id)
		require.NoError(t, err)
		assert.Equal(t, id, seen)
	})

	t.Run("echoed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(requestIDHeader, "abc-123")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, "abc-123", rr.Header().Get(requestIDHeader))
		assert.Equal(t, "abc-123", seen)
	})

	for name, id := range map[string]string{
		"too long":      strings.Repeat("a", maxRequestIDLength+1),
		"control chars": "abc\x00def",
		"spaces":        "abc def",
		"non-ascii":     "abc-é",
	} {
		t.Run("replaced when "+name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header[requestIDHeader] = []string{id}
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			got := rr.Header().Get(requestIDHeader)
			assert.NotEqual(t, id, got)
			_, err := uuid.Parse(got)
			assert.NoError(t, err)
			assert.Equal(t, got, seen)
		})
	}

	t.Run("max length kept", func(t *testing.T) {
		id := strings.Repeat("b", maxRequestIDLength)
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(requestIDHeader, id)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, id, rr.Header().Get(requestIDHeader))
	})
}

func TestRecoverer(t *testing.T) {
	handler := Recoverer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("kaboom")
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/stem", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, `{"success":false,"error":"Internal Server Error"}`, rr.Body.String())
}

func TestRecovererAbortHandler(t *testing.T) {
	handler := Recoverer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic(http.ErrAbortHandler)
	}))

	assert.Panics(t, func() {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	})
}

// headerCountingRecorder counts WriteHeader calls, including superfluous ones.
type headerCountingRecorder struct {
	*httptest.ResponseRecorder
	writeHeaderCalls int
}

func (r *headerCountingRecorder) WriteHeader(code int) {
	r.writeHeaderCalls++
	r.ResponseRecorder.WriteHeader(code)
}

func TestTimeout(t *testing.T) {
	t.Run("handler renders its own timeout", func(t *testing.T) {
		handler := Timeout(20 * time.Millisecond)(http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				<-r.Context().Done()
				handlertools.RenderInternalError(w, r.Context().Err(), "unused")
			},
		))

		rr := &headerCountingRecorder{ResponseRecorder: httptest.NewRecorder()}
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/stem", nil))

		assert.Equal(t, http.StatusGatewayTimeout, rr.Code)
		assert.Equal(t, 1, rr.writeHeaderCalls)

		var body models.ErrorResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Equal(t, handlertools.TimeoutMessage, body.Error)
	})

	t.Run("silent handler gets a 504 envelope", func(t *testing.T) {
		handler := Timeout(20 * time.Millisecond)(http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				<-r.Context().Done()
			},
		))

		rr := &headerCountingRecorder{ResponseRecorder: httptest.NewRecorder()}
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/stem", nil))

		assert.Equal(t, http.StatusGatewayTimeout, rr.Code)
		assert.Equal(t, 1, rr.writeHeaderCalls)
		assert.JSONEq(
			t,
			`{"success":false,"error":"`+handlertools.TimeoutMessage+`"}`,
			rr.Body.String(),
		)
	})

	t.Run("fast handler untouched", func(t *testing.T) {
		handler := Timeout(time.Second)(http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNoContent)
			},
		))

		rr := &headerCountingRecorder{ResponseRecorder: httptest.NewRecorder()}
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusNoContent, rr.Code)
		assert.Equal(t, 1, rr.writeHeaderCalls)
	})
}

func TestRateLimitRejectsWithEnvelope(t *testing.T) {
	handler := RateLimit(config.RateLimitConfig{RequestsPerSecond: 0.01, Burst: 1})(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}),
	)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
	assert.JSONEq(
		t,
		`{"success":false,"error":"`+ErrRateLimited.Error()+`"}`,
		rr.Body.String(),
	)
}
