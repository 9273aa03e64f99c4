// Package gateway is the typed client for the Jessster REST backend.
//
// A Client issues one HTTP request per operation against a single origin,
// decodes the JSON reply into models types and reports failures as *Error
// values whose Kind is one of the package's sentinel errors. Authenticated
// operations read the token from a tokenstore.Store; login, registration and
// OAuth exchanges write it back.
package gateway

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"jessster/config"
	"jessster/httpclient"
	"jessster/tokenstore"
)

type Config struct {
	BaseURL    string
	CDNBaseURL string
	Timeout    time.Duration

	// StrictRegistration turns a non-201 registration reply into ErrUnexpectedStatus.
	StrictRegistration bool
}

// ConfigFrom maps the application config onto a gateway Config.
func ConfigFrom(c config.GatewayConfig) Config {
	return Config{
		BaseURL:            c.BaseURL,
		CDNBaseURL:         c.CDNBaseURL,
		Timeout:            c.Timeout,
		StrictRegistration: c.StrictRegistration,
	}
}

type Option func(*Client)

// WithHTTPClient sends requests through hc. Its transport is wrapped so calls
// are still logged and carry the trace headers.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = httpclient.Wrap(hc) }
}

// WithTokenStore sets where the session is read from and written to.
// The default is an in-memory store.
func WithTokenStore(s tokenstore.Store) Option {
	return func(c *Client) { c.store = s }
}

// Client is safe for concurrent use.
type Client struct {
	base               *httpclient.BaseClient
	httpClient         *http.Client
	store              tokenstore.Store
	validate           *validator.Validate
	cdnBaseURL         string
	strictRegistration bool
}

func New(cfg Config, opts ...Option) *Client {
	c := &Client{
		validate:           validator.New(validator.WithRequiredStructEnabled()),
		cdnBaseURL:         cfg.CDNBaseURL,
		strictRegistration: cfg.StrictRegistration,
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.httpClient == nil {
		c.httpClient = httpclient.New(httpclient.Config{Timeout: cfg.Timeout})
	}
	if c.store == nil {
		c.store = tokenstore.NewMemory()
	}
	if c.cdnBaseURL == "" {
		c.cdnBaseURL = config.DefaultCDNBaseURL
	}

	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL == "" {
		baseURL = config.DefaultBaseURL
	}
	c.base = httpclient.NewBaseClient(c.httpClient, baseURL)
	return c
}

// CDNBaseURL is the prefix for relative media paths such as Post.FeaturedImage.
func (c *Client) CDNBaseURL() string { return c.cdnBaseURL }
