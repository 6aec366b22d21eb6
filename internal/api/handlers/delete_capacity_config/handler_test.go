package delete_capacity_config

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-AvailabilityService/internal/service/capacity"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeService struct {
	called  bool
	offerID *int64
	err     error
}

func (f *fakeService) Delete(_ context.Context, offerID *int64) error {
	f.called = true
	f.offerID = offerID
	return f.err
}

func TestHandle(t *testing.T) {
	tests := []struct {
		name       string
		vars       map[string]string
		err        error
		wantStatus int
	}{
		{name: "offer config", vars: map[string]string{"offerId": "4"}, wantStatus: http.StatusNoContent},
		{name: "global config", wantStatus: http.StatusNoContent},
		{name: "bad offer id", vars: map[string]string{"offerId": "four"}, wantStatus: http.StatusBadRequest},
		{name: "not found", vars: map[string]string{"offerId": "4"}, err: capacity.ErrConfigNotFound, wantStatus: http.StatusNotFound},
		{name: "internal", err: capacity.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeService{err: tt.err}
			req := httptest.NewRequest(http.MethodDelete, "/api/v1/capacity-config", nil)
			if tt.vars != nil {
				req = mux.SetURLVars(req, tt.vars)
			}
			rec := httptest.NewRecorder()

			NewHandler(svc, nopLogger{}).Handle(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandle_PassesOfferID(t *testing.T) {
	svc := &fakeService{}
	req := mux.SetURLVars(httptest.NewRequest(http.MethodDelete, "/api/v1/offers/12/capacity-config", nil),
		map[string]string{"offerId": "12"})

	NewHandler(svc, nopLogger{}).Handle(httptest.NewRecorder(), req)

	if assert.NotNil(t, svc.offerID) {
		assert.Equal(t, int64(12), *svc.offerID)
	}
}
