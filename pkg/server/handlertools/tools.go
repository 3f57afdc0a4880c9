package handlertools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/dustin/go-humanize"
	"github.com/go-playground/validator/v10"

	"github.com/textlab/textapi/internal"
	"github.com/textlab/textapi/pkg/models"
)

var log = internal.GetLogger()

var Validate = validator.New()

const (
	MissingTextMessage = `Missing required parameter "text"`
	InvalidBodyMessage = "invalid request body"
	TimeoutMessage     = "request timed out"
)

// textBody accepts any JSON type for text so that non-string values are
// treated as missing rather than as a malformed body.
type textBody struct {
	Text any `json:"text"`
}

// DecodeText decodes a {"text": string} request body and validates that text
// is a non-empty string. An empty body counts as {}.
func DecodeText(r *http.Request) (string, error) {
	var body textBody
	if err := DecodeJSON(r, &body); err != nil {
		var maxBytesErr *http.MaxBytesError
		var typeErr *json.UnmarshalTypeError
		switch {
		case errors.Is(err, io.EOF):
		case errors.As(err, &maxBytesErr):
			return "", err
		case errors.As(err, &typeErr):
			// not a JSON object, so there is no text field
		default:
			return "", models.NewBadRequestError(InvalidBodyMessage)
		}
	}

	text, _ := body.Text.(string)
	if err := Validate.Struct(models.TextRequest{Text: text}); err != nil {
		return "", models.NewBadRequestError(MissingTextMessage)
	}
	return text, nil
}

// EncodeJSON encodes data into JSON and writes it to the response writer.
func EncodeJSON(w http.ResponseWriter, data interface{}) error {
	return json.NewEncoder(w).Encode(data)
}

// DecodeJSON decodes a JSON request body into the provided data struct.
func DecodeJSON(r *http.Request, data interface{}) error {
	return json.NewDecoder(r.Body).Decode(data)
}

// RenderJSON writes data as a JSON response with the given status.
func RenderJSON(w http.ResponseWriter, data interface{}, status int) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := EncodeJSON(w, data); err != nil {
		log.Errorf("error encoding response: %v", err)
	}
}

// RenderError renders an error envelope. Bad request errors are always 400
// and oversized bodies 413, whatever status is passed.
func RenderError(w http.ResponseWriter, err error, status int) {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		status = http.StatusRequestEntityTooLarge
		err = fmt.Errorf(
			"request body too large (limit %s)",
			humanize.Bytes(uint64(maxBytesErr.Limit)),
		)
	}

	if errors.Is(err, models.ErrBadRequest) {
		status = http.StatusBadRequest
	}

	if status >= http.StatusInternalServerError {
		log.Error(err)
	} else {
		log.Debug(err)
	}

	RenderJSON(w, models.ErrorResponse{Success: false, Error: err.Error()}, status)
}

// RenderInternalError logs err and renders message as a 500 envelope, or a
// 504 when err is a deadline expiry.
func RenderInternalError(w http.ResponseWriter, err error, message string) {
	if errors.Is(err, context.DeadlineExceeded) {
		log.Warn(err)
		RenderJSON(
			w,
			models.ErrorResponse{Success: false, Error: TimeoutMessage},
			http.StatusGatewayTimeout,
		)
		return
	}

	log.Errorf("%s: %v", message, err)
	RenderJSON(
		w,
		models.ErrorResponse{Success: false, Error: message},
		http.StatusInternalServerError,
	)
}
