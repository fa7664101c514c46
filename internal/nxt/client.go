// Package nxt implements the HTTP/JSON API of an Nxt node.
package nxt

import (
	"bytes"
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

const (
	apiPath = "/nxt"

	defaultConnectTimeout = 5 * time.Second
	defaultCallTimeout    = 30 * time.Second
	defaultFetchTimeout   = 10 * time.Second

	// waitGrace is added to the server-side wait timeout to form the HTTP deadline.
	waitGrace = 5 * time.Second

	maxResponseSize = 16 << 20
)

// ClientConfig describes how to reach a node.
type ClientConfig struct {
	Host                 string
	Port                 int
	UseSSL               bool
	AdminPassword        string
	AcceptAnyCertificate bool
	AllowNameMismatch    bool
	ConnectTimeout       time.Duration
	CallTimeout          time.Duration
	FetchTimeout         time.Duration
	// FetchRPS bounds follow-up fetches by id per second. Zero means unlimited.
	FetchRPS int
}

// Client issues API requests to a single node.
type Client struct {
	httpClient    *http.Client
	endpoint      string
	adminPassword string
	callTimeout   time.Duration
	fetchTimeout  time.Duration
	limiter       ratelimit.Limiter
	metrics       Metrics
	logger        *zap.Logger
}

// NewClient builds a Client for cfg.
func NewClient(cfg ClientConfig, metrics Metrics, logger *zap.Logger) (*Client, error) {
	if cfg.Host == "" {
		return nil, errors.New("node host is required")
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid node port %d", cfg.Port)
	}
	if metrics == nil {
		return nil, errors.New("api client metrics is required")
	}
	if cfg.ConnectTimeout <= 0 {
		cfg.ConnectTimeout = defaultConnectTimeout
	}
	if cfg.CallTimeout <= 0 {
		cfg.CallTimeout = defaultCallTimeout
	}
	if cfg.FetchTimeout <= 0 {
		cfg.FetchTimeout = defaultFetchTimeout
	}

	scheme := "http"
	if cfg.UseSSL && !isLoopback(cfg.Host) {
		scheme = "https"
	}
	endpoint := (&url.URL{
		Scheme: scheme,
		Host:   net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		Path:   apiPath,
	}).String()

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.DialContext = (&net.Dialer{Timeout: cfg.ConnectTimeout, KeepAlive: 30 * time.Second}).DialContext
	transport.TLSHandshakeTimeout = cfg.ConnectTimeout
	transport.TLSClientConfig = tlsConfig(cfg)

	limiter := ratelimit.NewUnlimited()
	if cfg.FetchRPS > 0 {
		limiter = ratelimit.New(cfg.FetchRPS)
	}

	return &Client{
		httpClient:    &http.Client{Transport: transport},
		endpoint:      endpoint,
		adminPassword: cfg.AdminPassword,
		callTimeout:   cfg.CallTimeout,
		fetchTimeout:  cfg.FetchTimeout,
		limiter:       limiter,
		metrics:       metrics,
		logger:        logger.With(zap.String("endpoint", endpoint)),
	}, nil
}

// Endpoint returns the request URL used by the client.
func (c *Client) Endpoint() string {
	return c.endpoint
}

func tlsConfig(cfg ClientConfig) *tls.Config {
	conf := &tls.Config{MinVersion: tls.VersionTLS12}
	switch {
	case cfg.AcceptAnyCertificate:
		conf.InsecureSkipVerify = true //nolint:gosec // operator opt-in for self-signed nodes
	case cfg.AllowNameMismatch:
		// Verify the chain but not the host name.
		conf.InsecureSkipVerify = true //nolint:gosec // chain verified in VerifyConnection
		conf.VerifyConnection = func(cs tls.ConnectionState) error {
			if len(cs.PeerCertificates) == 0 {
				return errors.New("no peer certificate")
			}
			opts := x509.VerifyOptions{Intermediates: x509.NewCertPool()}
			for _, cert := range cs.PeerCertificates[1:] {
				opts.Intermediates.AddCert(cert)
			}
			_, err := cs.PeerCertificates[0].Verify(opts)
			return err
		}
	}
	return conf
}

func isLoopback(host string) bool {
	if strings.EqualFold(host, "localhost") {
		return true
	}
	ip := net.ParseIP(host)
	return ip != nil && ip.IsLoopback()
}

type errorEnvelope struct {
	ErrorCode        *int   `json:"errorCode"`
	ErrorDescription string `json:"errorDescription"`
}

// Call issues requestType with params and returns the raw JSON response object.
// A non-positive timeout selects the default call timeout.
func (c *Client) Call(ctx context.Context, requestType string, params url.Values, timeout time.Duration) (raw jsoniter.RawMessage, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe(requestType, err, started)
	}()

	if timeout <= 0 {
		timeout = c.callTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	form := url.Values{}
	for k, v := range params {
		form[k] = v
	}
	form.Set("requestType", requestType)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, &TransportError{Op: requestType, Err: err}
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded; charset=UTF-8")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Op: requestType, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, &TransportError{Op: requestType, Err: fmt.Errorf("read response: %w", err)}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &TransportError{
			Op:         requestType,
			HTTPStatus: resp.StatusCode,
			Message:    strings.TrimSpace(string(truncate(body, 256))),
		}
	}

	var envelope errorEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, &ParseError{Op: requestType, Err: err}
	}
	if envelope.ErrorCode != nil {
		code := *envelope.ErrorCode
		if code == 0 {
			code = -1
		}
		return nil, &TransportError{Op: requestType, RemoteCode: code, Message: envelope.ErrorDescription}
	}

	return bytes.TrimSpace(body), nil
}

func (c *Client) call(ctx context.Context, requestType string, params url.Values, timeout time.Duration, out any) error {
	raw, err := c.Call(ctx, requestType, params, timeout)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &ParseError{Op: requestType, Err: err}
	}
	return nil
}

// fetch is a rate limited call with the short fetch timeout, used for lookups by id.
func (c *Client) fetch(ctx context.Context, requestType string, params url.Values, out any) error {
	c.limiter.Take()
	return c.call(ctx, requestType, params, c.fetchTimeout, out)
}

func truncate(b []byte, n int) []byte {
	if len(b) > n {
		return b[:n]
	}
	return b
}
