package handlertools

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/textlab/textapi/pkg/models"
)

func TestDecodeText(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    string
		wantMsg string
	}{
		{name: "valid", body: `{"text":"hello world"}`, want: "hello world"},
		{name: "extra fields ignored", body: `{"text":"hi","lang":"en"}`, want: "hi"},
		{name: "empty body", body: ``, wantMsg: MissingTextMessage},
		{name: "empty object", body: `{}`, wantMsg: MissingTextMessage},
		{name: "null text", body: `{"text":null}`, wantMsg: MissingTextMessage},
		{name: "empty text", body: `{"text":""}`, wantMsg: MissingTextMessage},
		{name: "number text", body: `{"text":42}`, wantMsg: MissingTextMessage},
		{name: "array text", body: `{"text":["a"]}`, wantMsg: MissingTextMessage},
		{name: "body not an object", body: `"hello"`, wantMsg: MissingTextMessage},
		{name: "malformed", body: `{"text":`, wantMsg: InvalidBodyMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))

			got, err := DecodeText(req)
			if tt.wantMsg != "" {
				assert.ErrorIs(t, err, models.ErrBadRequest)
				assert.EqualError(t, err, tt.wantMsg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeTextTooLarge(t *testing.T) {
	body := fmt.Sprintf(`{"text":%q}`, strings.Repeat("a", 2048))
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	rr := httptest.NewRecorder()
	req.Body = http.MaxBytesReader(rr, req.Body, 1024)

	_, err := DecodeText(req)
	require.Error(t, err)

	RenderError(rr, err, http.StatusBadRequest)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rr.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Error, "request body too large")
}

func TestRenderError(t *testing.T) {
	t.Run("bad request overrides status", func(t *testing.T) {
		rr := httptest.NewRecorder()
		RenderError(rr, models.NewBadRequestError("nope"), http.StatusInternalServerError)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "application/json; charset=utf-8", rr.Header().Get("Content-Type"))
		assert.JSONEq(t, `{"success":false,"error":"nope"}`, rr.Body.String())
	})

	t.Run("other errors keep status", func(t *testing.T) {
		rr := httptest.NewRecorder()
		RenderError(rr, fmt.Errorf("rate limit exceeded"), http.StatusTooManyRequests)

		assert.Equal(t, http.StatusTooManyRequests, rr.Code)
		assert.JSONEq(t, `{"success":false,"error":"rate limit exceeded"}`, rr.Body.String())
	})
}

func TestRenderInternalError(t *testing.T) {
	t.Run("generic message", func(t *testing.T) {
		rr := httptest.NewRecorder()
		RenderInternalError(rr, assert.AnError, "Error processing tokenize.")

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.JSONEq(t, `{"success":false,"error":"Error processing tokenize."}`, rr.Body.String())
	})

	t.Run("deadline", func(t *testing.T) {
		rr := httptest.NewRecorder()
		RenderInternalError(rr, fmt.Errorf("lemma: %w", context.DeadlineExceeded), "ignored")

		assert.Equal(t, http.StatusGatewayTimeout, rr.Code)
		assert.JSONEq(t, `{"success":false,"error":"request timed out"}`, rr.Body.String())
	})
}
