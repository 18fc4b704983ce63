package credentials

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newRegistryServer serves /registration/{id} with the given status and body.
func newRegistryServer(t *testing.T, status int, body string) (*httptest.Server, *string) {
	t.Helper()
	var gotID string

	r := chi.NewRouter()
	r.Get("/registration/{id}", func(w http.ResponseWriter, req *http.Request) {
		gotID = chi.URLParam(req, "id")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv, &gotID
}

func TestRegistryClient_LookupEndpoint_Success(t *testing.T) {
	srv, gotID := newRegistryServer(t, http.StatusOK, `{"url":"https://node.example"}`)
	rc := NewRegistryClient(srv.URL + "/registration/")

	endpoint, err := rc.LookupEndpoint(context.Background(), "abc123")
	require.NoError(t, err)
	assert.Equal(t, "https://node.example", endpoint)
	assert.Equal(t, "abc123", *gotID)
}

func TestRegistryClient_LookupEndpoint_Malformed(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{name: "missing url 200", status: http.StatusOK, body: `{"notUrl":"x"}`},
		{name: "missing url 404", status: http.StatusNotFound, body: `{"notUrl":"x"}`},
		{name: "missing url 500", status: http.StatusInternalServerError, body: `{"notUrl":"x"}`},
		{name: "empty url", status: http.StatusOK, body: `{"url":""}`},
		{name: "url not a string", status: http.StatusOK, body: `{"url":42}`},
		{name: "not json", status: http.StatusOK, body: `<html>bad gateway</html>`},
		{name: "empty body", status: http.StatusNoContent, body: ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _ := newRegistryServer(t, tt.status, tt.body)
			rc := NewRegistryClient(srv.URL + "/registration/")

			endpoint, err := rc.LookupEndpoint(context.Background(), "abc123")
			assert.ErrorIs(t, err, ErrMalformedRegistration)
			assert.Empty(t, endpoint)
		})
	}
}

func TestRegistryClient_LookupEndpoint_Unavailable(t *testing.T) {
	srv, _ := newRegistryServer(t, http.StatusOK, `{"url":"https://node.example"}`)
	base := srv.URL + "/registration/"
	srv.Close()

	_, err := NewRegistryClient(base).LookupEndpoint(context.Background(), "abc123")
	assert.ErrorIs(t, err, ErrRegistryUnavailable)
}

func TestRegistryClient_LookupEndpoint_CanceledContext(t *testing.T) {
	srv, _ := newRegistryServer(t, http.StatusOK, `{"url":"https://node.example"}`)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewRegistryClient(srv.URL+"/registration/").LookupEndpoint(ctx, "abc123")
	assert.ErrorIs(t, err, ErrRegistryUnavailable)
	assert.ErrorIs(t, err, context.Canceled)
}
