package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealth(t *testing.T) {
	rec := httptest.NewRecorder()
	Health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestRespondErrors(t *testing.T) {
	tests := []struct {
		name       string
		respond    func(w http.ResponseWriter)
		wantStatus int
		wantBody   string
	}{
		{
			name:       "bad request",
			respond:    func(w http.ResponseWriter) { RespondBadRequest(w, "Invalid input payload") },
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Invalid input payload"}`,
		},
		{
			name:       "method not allowed",
			respond:    RespondMethodNotAllowed,
			wantStatus: http.StatusMethodNotAllowed,
			wantBody:   `{"error":"Method Not Allowed"}`,
		},
		{
			name:       "request entity too large",
			respond:    RespondRequestEntityTooLarge,
			wantStatus: http.StatusRequestEntityTooLarge,
			wantBody:   `{"error":"Request body too large"}`,
		},
		{
			name:       "bad gateway",
			respond:    RespondBadGateway,
			wantStatus: http.StatusBadGateway,
			wantBody:   `{"error":"` + msgBadGateway + `"}`,
		},
		{
			name:       "internal",
			respond:    RespondInternalError,
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"` + msgInternalError + `"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tt.respond(rec)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestDecodeJSON(t *testing.T) {
	var v struct {
		Mode string `json:"mode"`
	}

	req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(`{"mode":"day_level_limit"}`))
	require.NoError(t, DecodeJSON(req, &v))
	assert.Equal(t, "day_level_limit", v.Mode)

	req = httptest.NewRequest(http.MethodPut, "/", nil)
	assert.ErrorIs(t, DecodeJSON(req, &v), ErrEmptyBody)
}

func TestReadBody_SizeLimit(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(strings.Repeat("a", maxBodySize)))
	body, err := ReadBody(req)
	require.NoError(t, err)
	assert.Len(t, body, maxBodySize)

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(strings.Repeat("a", maxBodySize+1)))
	_, err = ReadBody(req)
	assert.ErrorIs(t, err, ErrBodyTooLarge)

	var v map[string]interface{}
	req = httptest.NewRequest(http.MethodPut, "/", strings.NewReader(`{"mode":"`+strings.Repeat("a", maxBodySize)+`"}`))
	assert.ErrorIs(t, DecodeJSON(req, &v), ErrBodyTooLarge)
}
