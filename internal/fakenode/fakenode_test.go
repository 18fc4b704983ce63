package fakenode

import (
	"bytes"
	"net/http"
	"testing"

	"github.com/MKhiriev/dragonchain-go/internal/signer"
	"github.com/MKhiriev/dragonchain-go/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cleanups is a TB that is not a *testing.T.
type cleanups struct {
	fns []func()
}

func (c *cleanups) Helper() {}

func (c *cleanups) Cleanup(fn func()) {
	c.fns = append(c.fns, fn)
}

func (c *cleanups) run() {
	for i := len(c.fns) - 1; i >= 0; i-- {
		c.fns[i]()
	}
}

func signedRequest(t *testing.T, url, chainID string, creds models.Credentials, body []byte) *http.Request {
	t.Helper()

	cc, err := signer.NewCredentialContext(chainID, creds, signer.DefaultAlgorithm)
	require.NoError(t, err)

	sr := signer.Request{
		Method:    http.MethodPost,
		Path:      "/v1/transaction",
		Body:      body,
		Timestamp: signer.NewTimestampGenerator().Next(),
	}
	if len(body) > 0 {
		sr.ContentType = "application/json"
	}

	req, err := http.NewRequest(sr.Method, url+sr.Path, bytes.NewReader(body))
	require.NoError(t, err)
	req.Header.Set(signer.HeaderChainID, chainID)
	req.Header.Set(signer.HeaderTimestamp, sr.Timestamp)
	req.Header.Set(signer.HeaderAuthorization, signer.New(cc).AuthorizationHeader(sr))
	if sr.ContentType != "" {
		req.Header.Set(signer.HeaderContentType, sr.ContentType)
	}
	return req
}

func TestNew_AcceptsAnyTB(t *testing.T) {
	tb := &cleanups{}
	node := New(tb, "chain", map[string]string{"id": "key"})
	node.Router.Post("/v1/transaction", JSON(http.StatusCreated, map[string]string{"transaction_id": "t"}))

	body := []byte(`{"txn_type":"a"}`)
	resp, err := http.DefaultClient.Do(signedRequest(t, node.URL, "chain",
		models.Credentials{AuthKey: "key", AuthKeyID: "id"}, body))
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	got := node.LastRequest()
	require.NoError(t, got.VerifyErr)
	assert.Equal(t, body, got.Body)

	require.Len(t, tb.fns, 1)
	tb.run()

	_, err = http.DefaultClient.Do(signedRequest(t, node.URL, "chain",
		models.Credentials{AuthKey: "key", AuthKeyID: "id"}, nil))
	assert.Error(t, err, "cleanup must close the server")
}

func TestNode_RejectsBadSignature(t *testing.T) {
	node := New(t, "chain", map[string]string{"id": "key"})
	node.Router.Post("/v1/transaction", JSON(http.StatusCreated, nil))

	resp, err := http.DefaultClient.Do(signedRequest(t, node.URL, "chain",
		models.Credentials{AuthKey: "wrong", AuthKeyID: "id"}, nil))
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.ErrorIs(t, node.LastRequest().VerifyErr, signer.ErrSignatureMismatch)
	assert.Len(t, node.Requests(), 1)
}
