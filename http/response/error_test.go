package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultErrorHandler_StatusError(t *testing.T) {
	h := NewDefaultErrorHandler(slog.New(slog.NewTextHandler(io.Discard, nil)))
	w := httptest.NewRecorder()

	err := fmt.Errorf("wrapped: %w", NewStatusError(http.StatusConflict, "[P2002]: taken", nil))
	h.HandleError(w, httptest.NewRequest(http.MethodPost, "/users", nil), err)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.JSONEq(t, `{"statusCode":409,"message":"[P2002]: taken"}`, w.Body.String())
}

func TestDefaultErrorHandler_OpaqueError(t *testing.T) {
	h := NewDefaultErrorHandler(slog.New(slog.NewTextHandler(io.Discard, nil)))
	w := httptest.NewRecorder()

	h.HandleError(w, httptest.NewRequest(http.MethodGet, "/", nil), errors.New("secret internals"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "secret")

	var body Body
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, http.StatusInternalServerError, body.StatusCode)
}

func TestStatusError(t *testing.T) {
	cause := errors.New("cause")
	err := NewStatusError(http.StatusNotFound, "missing", cause)

	assert.Equal(t, "missing", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, Body{StatusCode: 404, Message: "missing"}, err.Body())
}

func TestErrorHandlerFunc(t *testing.T) {
	var got error
	var h ErrorHandler = ErrorHandlerFunc(func(w http.ResponseWriter, r *http.Request, err error) {
		got = err
	})

	want := errors.New("x")
	h.HandleError(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil), want)

	assert.Same(t, want, got)
}

func TestCodeForStatus(t *testing.T) {
	tests := map[int]string{
		http.StatusBadRequest:          ErrBadRequest,
		http.StatusNotFound:            ErrNotFound,
		http.StatusConflict:            ErrConflict,
		http.StatusTeapot:              ErrBadRequest,
		http.StatusInternalServerError: ErrSystem,
		http.StatusBadGateway:          ErrSystem,
		http.StatusServiceUnavailable:  ErrServiceUnavail,
	}

	for status, want := range tests {
		assert.Equal(t, want, CodeForStatus(status), status)
	}
}

func TestJSON(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("X-Trace-Id", "abc")

	JSON(w, r, http.StatusCreated, map[string]string{"id": "1"})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"success":true,"data":{"id":"1"},"meta":{"trace_id":"abc"}}`, w.Body.String())
}
