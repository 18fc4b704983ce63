package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/dragonchain-go/internal/logger"
	"github.com/MKhiriev/dragonchain-go/internal/signer"
	"github.com/MKhiriev/dragonchain-go/internal/utils"
	"github.com/MKhiriev/dragonchain-go/models"
)

// ContentTypeJSON is the only body type a node accepts.
const ContentTypeJSON = "application/json"

// Options configures the HTTP dispatcher.
type Options struct {
	// Endpoint is the base URL of the node. A missing scheme defaults to
	// http.
	Endpoint string

	// Verify enables TLS certificate verification for this dispatcher only.
	Verify bool

	// Timeout bounds each request. Zero relies on the request context.
	Timeout time.Duration

	// Timestamps generates the timestamp header. Defaults to the wall clock.
	Timestamps *signer.TimestampGenerator

	Logger *logger.Logger
}

type httpDispatcher struct {
	client     *utils.HTTPClient
	endpoint   string
	signer     *signer.Signer
	timestamps *signer.TimestampGenerator

	logger *logger.Logger
}

// NewHTTPDispatcher constructs a resty implementation of [Dispatcher] that
// signs every request with s. The client is private to the dispatcher, so
// its TLS settings never leak into other dispatchers.
//
// Returns an error if opts.Endpoint is empty or cannot be parsed as a URL.
func NewHTTPDispatcher(s *signer.Signer, opts Options) (Dispatcher, error) {
	if s == nil {
		return nil, fmt.Errorf("%w: nil signer", ErrInvalidRequest)
	}

	baseURL, err := normalizeBaseURL(opts.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidEndpoint, err)
	}

	client := utils.NewHTTPClient(utils.HTTPClientOptions{Verify: opts.Verify, Timeout: opts.Timeout})
	client.SetBaseURL(baseURL)

	timestamps := opts.Timestamps
	if timestamps == nil {
		timestamps = signer.NewTimestampGenerator()
	}

	return &httpDispatcher{
		client:     client,
		endpoint:   baseURL,
		signer:     s,
		timestamps: timestamps,
		logger:     logger.OrNop(opts.Logger).Component("dispatcher"),
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Endpoint implements [Dispatcher].
func (h *httpDispatcher) Endpoint() string {
	return h.endpoint
}

// Dispatch implements [Dispatcher]. Headers sent:
//
//	dragonchain:     chain id
//	timestamp:       generated now
//	Authorization:   DC1-HMAC-<alg> <keyId>:<signature>
//	Content-Type:    application/json, only with a body
//	X-Callback-URL:  only when req.CallbackURL is set
func (h *httpDispatcher) Dispatch(ctx context.Context, req models.DispatchRequest) (models.Response, error) {
	method := strings.ToUpper(strings.TrimSpace(req.Method))
	if method == "" {
		return models.Response{}, fmt.Errorf("%w: empty method", ErrInvalidRequest)
	}
	if !strings.HasPrefix(req.Path, "/") || strings.Contains(req.Path, "?") {
		return models.Response{}, fmt.Errorf("%w: path %q must start with '/' and carry no query", ErrInvalidRequest, req.Path)
	}

	path := req.Path
	if query := req.Query.Encode(); query != "" {
		path += "?" + query
	}

	contentType := ""
	if len(req.Body) > 0 {
		contentType = ContentTypeJSON
	}

	signed := signer.Request{
		Method:      method,
		Path:        path,
		Body:        req.Body,
		ContentType: contentType,
		Timestamp:   h.timestamps.Next(),
	}

	r := h.client.R().
		SetContext(ctx).
		SetHeader(signer.HeaderChainID, h.signer.Context().ChainID()).
		SetHeader(signer.HeaderTimestamp, signed.Timestamp).
		SetHeader(signer.HeaderAuthorization, h.signer.AuthorizationHeader(signed))
	if contentType != "" {
		r.SetHeader(signer.HeaderContentType, contentType).SetBody(req.Body)
	}
	if req.CallbackURL != "" {
		r.SetHeader(signer.HeaderCallbackURL, req.CallbackURL)
	}

	h.logger.Debug().Str("method", method).Str("url", h.endpoint+path).Msg("dispatching request")

	resp, err := r.Execute(method, path)
	if err != nil {
		return models.Response{}, fmt.Errorf("%w: %s %s: %w", ErrTransport, method, path, err)
	}

	h.logger.Debug().
		Str("method", method).
		Str("url", h.endpoint+path).
		Int("status", resp.StatusCode()).
		Msg("response received")

	return mapResponse(resp, req.RawText), nil
}
