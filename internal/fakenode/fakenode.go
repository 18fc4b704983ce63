// Package fakenode runs an in-process Dragonchain node for tests, in the
// manner of net/http/httptest. Every request is checked with
// signer.Verifier before it reaches a route, and requests with a bad
// signature are answered with 401. The package does not import testing;
// [New] accepts anything with Helper and Cleanup, such as *testing.T.
package fakenode

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"

	"github.com/MKhiriev/dragonchain-go/internal/signer"
	"github.com/go-chi/chi/v5"
)

// TB is the part of testing.TB the node needs: the server is closed by a
// registered cleanup.
type TB interface {
	Helper()
	Cleanup(func())
}

// RecordedRequest is a request as the node received it.
type RecordedRequest struct {
	Method    string
	URI       string
	Header    http.Header
	Body      []byte
	VerifyErr error
}

// Node is a fake Dragonchain node.
type Node struct {
	*httptest.Server

	// Router receives requests that passed signature verification.
	Router chi.Router

	verifier *signer.Verifier

	mu       sync.Mutex
	requests []RecordedRequest
}

// Option configures a Node.
type Option func(*config)

type config struct {
	tls bool
}

// WithTLS serves HTTPS with a self-signed certificate.
func WithTLS() Option {
	return func(c *config) { c.tls = true }
}

// New starts a node for chainID accepting the given authKeyID to authKey
// pairs. It is closed when the test ends.
func New(t TB, chainID string, keys map[string]string, opts ...Option) *Node {
	t.Helper()

	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	n := &Node{
		verifier: signer.NewVerifier(chainID, func(id string) (string, bool) {
			key, ok := keys[id]
			return key, ok
		}),
	}

	r := chi.NewRouter()
	r.Use(n.verify)
	n.Router = r

	if cfg.tls {
		n.Server = httptest.NewTLSServer(r)
	} else {
		n.Server = httptest.NewServer(r)
	}
	t.Cleanup(n.Close)

	return n
}

// Requests returns every request received so far.
func (n *Node) Requests() []RecordedRequest {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]RecordedRequest(nil), n.requests...)
}

// LastRequest returns the most recent request. It panics when none arrived.
func (n *Node) LastRequest() RecordedRequest {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.requests[len(n.requests)-1]
}

func (n *Node) verify(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		r.Body = io.NopCloser(bytes.NewReader(body))

		err := n.verifier.Verify(r.Header.Get(signer.HeaderChainID), signer.Request{
			Method:      r.Method,
			Path:        r.URL.RequestURI(),
			Body:        body,
			ContentType: r.Header.Get(signer.HeaderContentType),
			Timestamp:   r.Header.Get(signer.HeaderTimestamp),
		}, r.Header.Get(signer.HeaderAuthorization))

		n.mu.Lock()
		n.requests = append(n.requests, RecordedRequest{
			Method:    r.Method,
			URI:       r.URL.RequestURI(),
			Header:    r.Header.Clone(),
			Body:      body,
			VerifyErr: err,
		})
		n.mu.Unlock()

		if err != nil {
			JSON(http.StatusUnauthorized, map[string]string{"error": err.Error()})(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// JSON returns a handler answering status with v encoded as JSON.
func JSON(status int, v any) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(v)
	}
}

// Text returns a handler answering status with a plain text body.
func Text(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}
}
