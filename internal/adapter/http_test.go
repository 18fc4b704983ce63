// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"net/http"
	"net/url"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/dragonchain-go/internal/fakenode"
	"github.com/MKhiriev/dragonchain-go/internal/signer"
	"github.com/MKhiriev/dragonchain-go/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testChainID   = "testId"
	testAuthKey   = "key"
	testAuthKeyID = "keyId"
)

var testKeys = map[string]string{testAuthKeyID: testAuthKey}

func newTestSigner(t *testing.T) *signer.Signer {
	t.Helper()
	cc, err := signer.NewCredentialContext(testChainID,
		models.Credentials{AuthKey: testAuthKey, AuthKeyID: testAuthKeyID}, signer.SHA256)
	require.NoError(t, err)
	return signer.New(cc)
}

// newTestDispatcher создаёт httpDispatcher, направленный на тестовый узел
func newTestDispatcher(t *testing.T, endpoint string, opts Options) *httpDispatcher {
	t.Helper()
	opts.Endpoint = endpoint

	d, err := NewHTTPDispatcher(newTestSigner(t), opts)
	require.NoError(t, err)
	return d.(*httpDispatcher)
}

// steppingClock returns a clock that advances one second per call.
func steppingClock(start time.Time) func() time.Time {
	var n atomic.Int64
	return func() time.Time {
		return start.Add(time.Duration(n.Add(1)-1) * time.Second)
	}
}

// ── Signing and headers ─────────────────────────────────────────────────────

func TestDispatch_GetIsSigned(t *testing.T) {
	node := fakenode.New(t, testChainID, testKeys)
	node.Router.Get("/v1/status", fakenode.JSON(http.StatusOK, map[string]string{"level": "1"}))

	d := newTestDispatcher(t, node.URL, Options{})
	resp, err := d.Dispatch(context.Background(), models.DispatchRequest{Method: "get", Path: "/v1/status"})
	require.NoError(t, err)

	assert.True(t, resp.OK)
	assert.Equal(t, http.StatusOK, resp.Status)
	assert.JSONEq(t, `{"level":"1"}`, string(resp.Body))

	got := node.LastRequest()
	require.NoError(t, got.VerifyErr)
	assert.Equal(t, http.MethodGet, got.Method)
	assert.Equal(t, testChainID, got.Header.Get("dragonchain"))
	assert.NotEmpty(t, got.Header.Get("timestamp"))
	assert.Empty(t, got.Header.Get("Content-Type"), "no body means no content type")
	assert.Empty(t, got.Header.Get("X-Callback-URL"))
	assert.Empty(t, got.Body)
}

func TestDispatch_ExactAuthorizationHeader(t *testing.T) {
	node := fakenode.New(t, testChainID, testKeys)
	node.Router.Get("/path", fakenode.JSON(http.StatusOK, nil))

	now := time.Date(2026, 10, 18, 9, 15, 2, 123_000_000, time.UTC)
	ts := signer.NewTimestampGeneratorWithClock(func() time.Time { return now }, func() int { return 456 })
	d := newTestDispatcher(t, node.URL, Options{Timestamps: ts})

	_, err := d.Dispatch(context.Background(), models.DispatchRequest{Method: http.MethodGet, Path: "/path"})
	require.NoError(t, err)

	got := node.LastRequest()
	assert.Equal(t, "2026-10-18T09:15:02.123456Z", got.Header.Get("timestamp"))

	want := newTestSigner(t).AuthorizationHeader(signer.Request{
		Method:    http.MethodGet,
		Path:      "/path",
		Timestamp: "2026-10-18T09:15:02.123456Z",
	})
	assert.Equal(t, want, got.Header.Get("Authorization"))
}

func TestDispatch_PostWithBodyAndCallback(t *testing.T) {
	node := fakenode.New(t, testChainID, testKeys)
	node.Router.Post("/v1/transaction", fakenode.JSON(http.StatusCreated, map[string]string{"transaction_id": "abc"}))

	d := newTestDispatcher(t, node.URL, Options{})
	resp, err := d.Dispatch(context.Background(), models.DispatchRequest{
		Method:      http.MethodPost,
		Path:        "/v1/transaction",
		Body:        []byte(`{"version":"1","txn_type":"t","payload":""}`),
		CallbackURL: "https://callback.example/hook",
	})
	require.NoError(t, err)
	assert.True(t, resp.OK)
	assert.Equal(t, http.StatusCreated, resp.Status)

	got := node.LastRequest()
	require.NoError(t, got.VerifyErr)
	assert.Equal(t, "application/json", got.Header.Get("Content-Type"))
	assert.Equal(t, "https://callback.example/hook", got.Header.Get("X-Callback-URL"))
	assert.JSONEq(t, `{"version":"1","txn_type":"t","payload":""}`, string(got.Body))
}

func TestDispatch_QueryIsSentAndSigned(t *testing.T) {
	node := fakenode.New(t, testChainID, testKeys)
	node.Router.Get("/v1/transaction", fakenode.JSON(http.StatusOK, map[string]any{"results": []string{}}))

	d := newTestDispatcher(t, node.URL, Options{})
	_, err := d.Dispatch(context.Background(), models.DispatchRequest{
		Method: http.MethodGet,
		Path:   "/v1/transaction",
		Query:  url.Values{"transaction_type": {"banana"}, "q": {"@tag:{x y}"}, "limit": {"10"}},
	})
	require.NoError(t, err)

	got := node.LastRequest()
	require.NoError(t, got.VerifyErr)
	assert.Equal(t, "/v1/transaction?limit=10&q=%40tag%3A%7Bx+y%7D&transaction_type=banana", got.URI)
}

func TestDispatch_FreshTimestampPerRequest(t *testing.T) {
	node := fakenode.New(t, testChainID, testKeys)
	node.Router.Get("/v1/status", fakenode.JSON(http.StatusOK, nil))

	ts := signer.NewTimestampGeneratorWithClock(steppingClock(time.Now()), func() int { return 100 })
	d := newTestDispatcher(t, node.URL, Options{Timestamps: ts})

	for i := 0; i < 3; i++ {
		_, err := d.Dispatch(context.Background(), models.DispatchRequest{Method: http.MethodGet, Path: "/v1/status"})
		require.NoError(t, err)
	}

	seen := map[string]bool{}
	for _, r := range node.Requests() {
		require.NoError(t, r.VerifyErr)
		seen[r.Header.Get("timestamp")] = true
	}
	assert.Len(t, seen, 3)
}

// ── Response normalisation ──────────────────────────────────────────────────

func TestDispatch_ErrorStatusIsData(t *testing.T) {
	tests := []struct {
		name   string
		status int
	}{
		{name: "bad request", status: http.StatusBadRequest},
		{name: "not found", status: http.StatusNotFound},
		{name: "internal", status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node := fakenode.New(t, testChainID, testKeys)
			node.Router.Get("/v1/block/1", fakenode.JSON(tt.status, map[string]string{"error": "nope"}))

			d := newTestDispatcher(t, node.URL, Options{})
			resp, err := d.Dispatch(context.Background(), models.DispatchRequest{Method: http.MethodGet, Path: "/v1/block/1"})

			require.NoError(t, err)
			assert.False(t, resp.OK)
			assert.Equal(t, tt.status, resp.Status)
			assert.JSONEq(t, `{"error":"nope"}`, string(resp.Body))
		})
	}
}

func TestDispatch_UnsignedRequestRejectedByNode(t *testing.T) {
	node := fakenode.New(t, "otherChain", testKeys)
	node.Router.Get("/v1/status", fakenode.JSON(http.StatusOK, nil))

	d := newTestDispatcher(t, node.URL, Options{})
	resp, err := d.Dispatch(context.Background(), models.DispatchRequest{Method: http.MethodGet, Path: "/v1/status"})

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.Status)
	assert.ErrorIs(t, node.LastRequest().VerifyErr, signer.ErrChainIDMismatch)
}

func TestDispatch_BodyNormalisation(t *testing.T) {
	node := fakenode.New(t, testChainID, testKeys)
	node.Router.Get("/empty", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
	node.Router.Get("/html", fakenode.Text(http.StatusBadGateway, "<html>bad gateway</html>"))
	node.Router.Get("/v1/get/sc/key", fakenode.Text(http.StatusOK, `{"not":"parsed"}`))

	d := newTestDispatcher(t, node.URL, Options{})
	ctx := context.Background()

	resp, err := d.Dispatch(ctx, models.DispatchRequest{Method: http.MethodGet, Path: "/empty"})
	require.NoError(t, err)
	assert.Equal(t, "null", string(resp.Body))

	resp, err = d.Dispatch(ctx, models.DispatchRequest{Method: http.MethodGet, Path: "/html"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadGateway, resp.Status)
	assert.Equal(t, "<html>bad gateway</html>", resp.Text())

	resp, err = d.Dispatch(ctx, models.DispatchRequest{Method: http.MethodGet, Path: "/v1/get/sc/key", RawText: true})
	require.NoError(t, err)
	assert.Equal(t, `{"not":"parsed"}`, resp.Text())
	assert.Equal(t, `"{\"not\":\"parsed\"}"`, string(resp.Body))
}

// ── Errors ──────────────────────────────────────────────────────────────────

func TestNewHTTPDispatcher_InvalidEndpoint(t *testing.T) {
	_, err := NewHTTPDispatcher(newTestSigner(t), Options{Endpoint: ""})
	assert.ErrorIs(t, err, ErrInvalidEndpoint)

	_, err = NewHTTPDispatcher(nil, Options{Endpoint: "http://localhost"})
	assert.ErrorIs(t, err, ErrInvalidRequest)
}

func TestDispatch_InvalidRequest(t *testing.T) {
	d := newTestDispatcher(t, "http://127.0.0.1:1", Options{})

	tests := map[string]models.DispatchRequest{
		"empty method":  {Path: "/v1/status"},
		"relative path": {Method: http.MethodGet, Path: "v1/status"},
		"query in path": {Method: http.MethodGet, Path: "/v1/status?x=1"},
	}

	for name, req := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := d.Dispatch(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidRequest)
		})
	}
}

func TestDispatch_TransportFailure(t *testing.T) {
	node := fakenode.New(t, testChainID, testKeys)
	endpoint := node.URL
	node.Close()

	d := newTestDispatcher(t, endpoint, Options{})
	_, err := d.Dispatch(context.Background(), models.DispatchRequest{Method: http.MethodGet, Path: "/v1/status"})
	assert.ErrorIs(t, err, ErrTransport)
}

// ── TLS ─────────────────────────────────────────────────────────────────────

// TestDispatch_TLSVerifyIsPerDispatcher runs strict and insecure dispatchers
// against the same self-signed node at the same time.
func TestDispatch_TLSVerifyIsPerDispatcher(t *testing.T) {
	node := fakenode.New(t, testChainID, testKeys, fakenode.WithTLS())
	node.Router.Get("/v1/status", fakenode.JSON(http.StatusOK, nil))

	strict := newTestDispatcher(t, node.URL, Options{Verify: true})
	insecure := newTestDispatcher(t, node.URL, Options{Verify: false})
	req := models.DispatchRequest{Method: http.MethodGet, Path: "/v1/status"}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, err := strict.Dispatch(context.Background(), req)
			assert.ErrorIs(t, err, ErrTransport)
		}()
		go func() {
			defer wg.Done()
			resp, err := insecure.Dispatch(context.Background(), req)
			if assert.NoError(t, err) {
				assert.True(t, resp.OK)
			}
		}()
	}
	wg.Wait()
}

// ── normalizeBaseURL ────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"valid https", "https://abc.api.dragonchain.com", "https://abc.api.dragonchain.com", false},
		{"no scheme", "localhost:8080", "http://localhost:8080", false},
		{"trailing slash", "http://localhost:8080/", "http://localhost:8080", false},
		{"empty", "", "", true},
		{"no host", "http://", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.input)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestDispatcher_Endpoint(t *testing.T) {
	d := newTestDispatcher(t, "node.example/", Options{})
	assert.Equal(t, "http://node.example", d.Endpoint())
}
