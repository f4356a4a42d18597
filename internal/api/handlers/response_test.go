package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondJSON(rec, http.StatusCreated, map[string]string{"id": "42"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"id":"42"}`, rec.Body.String())
}

func TestRespondJSON_NilBody(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondJSON(rec, http.StatusOK, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestRespondErrors(t *testing.T) {
	tests := []struct {
		name    string
		respond func(w http.ResponseWriter)
		status  int
	}{
		{"bad request", func(w http.ResponseWriter) { RespondBadRequest(w, "x") }, http.StatusBadRequest},
		{"unauthorized", func(w http.ResponseWriter) { RespondUnauthorized(w, "x") }, http.StatusUnauthorized},
		{"forbidden", func(w http.ResponseWriter) { RespondForbidden(w, "x") }, http.StatusForbidden},
		{"not found", func(w http.ResponseWriter) { RespondNotFound(w, "x") }, http.StatusNotFound},
		{"conflict", func(w http.ResponseWriter) { RespondConflict(w, "x") }, http.StatusConflict},
		{"too many", func(w http.ResponseWriter) { RespondTooManyRequests(w, "x") }, http.StatusTooManyRequests},
		{"internal", func(w http.ResponseWriter) { RespondInternalError(w) }, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tt.respond(rec)

			var body ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.status, body.Code)
			assert.NotEmpty(t, body.Message)
		})
	}
}

func TestDecodeJSON(t *testing.T) {
	type payload struct {
		Name string `json:"name"`
	}

	var ok payload
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"pizza"}`))
	require.NoError(t, DecodeJSON(req, &ok))
	assert.Equal(t, "pizza", ok.Name)

	var unknown payload
	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"pizza","extra":1}`))
	assert.Error(t, DecodeJSON(req, &unknown))

	var broken payload
	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{`))
	assert.Error(t, DecodeJSON(req, &broken))
}
