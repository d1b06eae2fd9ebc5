package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/benvon/smart-trip/internal/request"
)

func TestRequestID_Generated(t *testing.T) {
	t.Parallel()

	var seenID string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenID = request.RequestIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest("GET", "/test", nil)
	w := httptest.NewRecorder()

	RequestID(handler).ServeHTTP(w, req)

	if seenID == "" {
		t.Fatal("expected a request ID in the handler context")
	}
	if got := w.Header().Get(RequestIDHeader); got != seenID {
		t.Errorf("response header ID = %q, context ID = %q", got, seenID)
	}
}

func TestRequestID_ClientSupplied(t *testing.T) {
	t.Parallel()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := request.RequestIDFromContext(r.Context()); got != "client-id-123" {
			t.Errorf("context ID = %q, want client-id-123", got)
		}
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest("GET", "/test", nil)
	req.Header.Set(RequestIDHeader, "client-id-123")
	w := httptest.NewRecorder()

	RequestID(handler).ServeHTTP(w, req)

	if got := w.Header().Get(RequestIDHeader); got != "client-id-123" {
		t.Errorf("response header ID = %q, want client-id-123", got)
	}
}
