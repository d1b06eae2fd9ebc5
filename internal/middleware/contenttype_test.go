package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestContentType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		method      string
		contentType string
		wantStatus  int
	}{
		{name: "GET without content type", method: "GET", wantStatus: http.StatusOK},
		{name: "POST with json", method: "POST", contentType: "application/json", wantStatus: http.StatusOK},
		{name: "POST with json charset", method: "POST", contentType: "application/json; charset=utf-8", wantStatus: http.StatusOK},
		{name: "POST without content type", method: "POST", wantStatus: http.StatusBadRequest},
		{name: "POST with wrong type", method: "POST", contentType: "text/plain", wantStatus: http.StatusUnsupportedMediaType},
		{name: "PUT with wrong type", method: "PUT", contentType: "application/xml", wantStatus: http.StatusUnsupportedMediaType},
		{name: "DELETE without content type", method: "DELETE", wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(tt.method, "/test", strings.NewReader("{}"))
			if tt.contentType != "" {
				req.Header.Set("Content-Type", tt.contentType)
			}
			w := httptest.NewRecorder()

			ContentType(handler).ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
		})
	}
}
