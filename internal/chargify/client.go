package chargify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
	"github.com/sethgrid/pester"
)

const defaultRetries = 5

// Config holds the connection settings for a Chargify site.
type Config struct {
	Subdomain     string
	APIKey        string
	SiteKey       string
	DefaultFamily string
	// Host overrides the https://<subdomain>.chargify.com base URL,
	// mainly for tests.
	Host   string
	Extra  map[string]string
	Logger zerolog.Logger
}

// Doer is the minimal HTTP surface the client needs, satisfied by
// *pester.Client and easy to fake in tests.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client talks to the Chargify REST API. All request methods take a
// context and return the decoded JSON body.
type Client struct {
	cfg  Config
	http Doer
	log  zerolog.Logger
}

// New returns a Client with a retrying HTTP transport.
func New(cfg Config) *Client {
	if cfg.Extra == nil {
		cfg.Extra = make(map[string]string)
	}
	p := pester.New()
	p.Backoff = pester.ExponentialBackoff
	p.MaxRetries = defaultRetries
	return &Client{cfg: cfg, http: p, log: cfg.Logger}
}

// NewWithDoer returns a Client using the given transport.
func NewWithDoer(cfg Config, d Doer) *Client {
	if cfg.Extra == nil {
		cfg.Extra = make(map[string]string)
	}
	return &Client{cfg: cfg, http: d, log: cfg.Logger}
}

// SetOption mutates a configuration property on the live client. Keys are
// camel-cased; unrecognized keys land in the extra option set.
func (c *Client) SetOption(key, value string) {
	switch key {
	case "subdomain":
		c.cfg.Subdomain = value
	case "apiKey":
		c.cfg.APIKey = value
	case "siteKey":
		c.cfg.SiteKey = value
	case "defaultFamily":
		c.cfg.DefaultFamily = value
	case "host":
		c.cfg.Host = value
	default:
		c.cfg.Extra[key] = value
	}
}

// Option returns a configuration property by camel-cased key.
func (c *Client) Option(key string) string {
	switch key {
	case "subdomain":
		return c.cfg.Subdomain
	case "apiKey":
		return c.cfg.APIKey
	case "siteKey":
		return c.cfg.SiteKey
	case "defaultFamily":
		return c.cfg.DefaultFamily
	case "host":
		return c.cfg.Host
	default:
		return c.cfg.Extra[key]
	}
}

func (c *Client) baseURL() string {
	if c.cfg.Host != "" {
		return strings.TrimSuffix(c.cfg.Host, "/")
	}
	return fmt.Sprintf("https://%s.chargify.com", c.cfg.Subdomain)
}

// Request performs an HTTP call against the API and decodes the JSON
// response. A string body is sent verbatim; any other body is marshaled
// as JSON.
func (c *Client) Request(ctx context.Context, method, path string, body any) (any, error) {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	var payload io.Reader
	if body != nil {
		switch b := body.(type) {
		case string:
			payload = strings.NewReader(b)
		default:
			data, err := json.Marshal(b)
			if err != nil {
				return nil, fmt.Errorf("failed to encode request body: %w", err)
			}
			payload = bytes.NewReader(data)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL()+path, payload)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.SetBasicAuth(c.cfg.APIKey, "x")
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Msg("api request")

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("%s %s: %s: %s",
			method, path, resp.Status, strings.TrimSpace(string(data)))
	}

	if len(data) == 0 {
		return nil, nil
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		// Not every endpoint answers with JSON; hand back the raw text.
		return string(data), nil
	}
	return v, nil
}

// Get issues a GET against the given resource path.
func (c *Client) Get(ctx context.Context, path string) (any, error) {
	return c.Request(ctx, http.MethodGet, path, nil)
}

// Post issues a POST with the given body.
func (c *Client) Post(ctx context.Context, path string, body any) (any, error) {
	return c.Request(ctx, http.MethodPost, path, body)
}

// Put issues a PUT with the given body.
func (c *Client) Put(ctx context.Context, path string, body any) (any, error) {
	return c.Request(ctx, http.MethodPut, path, body)
}

// Delete issues a DELETE against the given resource path.
func (c *Client) Delete(ctx context.Context, path string) (any, error) {
	return c.Request(ctx, http.MethodDelete, path, nil)
}
