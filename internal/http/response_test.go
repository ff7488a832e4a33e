package http

import (
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriteJSON(t *testing.T) {
	tests := map[string]struct {
		v          any
		wantStatus int
		wantBody   string
	}{
		"encodable": {
			v:          map[string]float64{"total": 12.5},
			wantStatus: http.StatusOK,
			wantBody:   `{"total":12.5}`,
		},
		"non-finite number": {
			v:          map[string]float64{"total": math.NaN()},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"failed to encode response"}`,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			w := httptest.NewRecorder()
			writeJSON(w, http.StatusOK, tc.v)

			assert.Equal(t, tc.wantStatus, w.Code)
			assert.JSONEq(t, tc.wantBody, w.Body.String())
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
		})
	}
}
