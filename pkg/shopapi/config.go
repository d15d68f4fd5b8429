package shopapi

import (
	"fmt"
	"strings"
	"time"
)

// Config holds everything needed to construct a Session and a client.
type Config struct {
	// Store is the shop host, either a bare handle ("acme") or a full
	// hostname ("acme.myshopplatform.com").
	Store string

	// APIVersion selects the dated API version path segment. Defaults to
	// DefaultAPIVersion when empty.
	APIVersion string

	// Scheme is "https" unless overridden. Plain "http" is only useful
	// against local test servers.
	Scheme string

	// Port optionally overrides the default port for the scheme.
	Port int

	// APIKey and Password authenticate a private app via HTTP basic auth.
	APIKey   string
	Password string

	// AccessToken authenticates via an OAuth access token. Takes
	// precedence over APIKey/Password when both are set.
	AccessToken string

	// UserAgent overrides the default User-Agent header.
	UserAgent string

	// Logger receives debug/request logging when set.
	Logger Logger

	// Debug enables request/response logging through Logger.
	Debug bool

	// Timeout bounds each HTTP call. Zero means the default timeout.
	Timeout time.Duration

	// RetryMax enables client-side retries when > 0. The pipeline itself
	// never retries; this is explicit caller policy.
	RetryMax     int
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration
}

// Session is an immutable bundle of host, version, scheme, and credentials.
// It is constructed once, never mutated, and safe to share across
// concurrent requests.
type Session struct {
	store       string
	apiVersion  string
	scheme      string
	port        int
	apiKey      string
	password    string
	accessToken string
}

// NewSession validates config and builds a Session.
func NewSession(config *Config) (*Session, error) {
	if config == nil {
		return nil, ErrConfigRequired
	}

	store := strings.TrimSuffix(strings.TrimSpace(config.Store), "/")
	store = strings.TrimPrefix(strings.TrimPrefix(store, "https://"), "http://")

	if store == "" {
		return nil, ErrStoreRequired
	}

	if config.AccessToken == "" && (config.APIKey == "" || config.Password == "") {
		return nil, ErrCredentialsRequired
	}

	scheme := config.Scheme
	if scheme == "" {
		scheme = "https"
	}

	apiVersion := config.APIVersion
	if apiVersion == "" {
		apiVersion = DefaultAPIVersion
	}

	return &Session{
		store:       store,
		apiVersion:  apiVersion,
		scheme:      scheme,
		port:        config.Port,
		apiKey:      config.APIKey,
		password:    config.Password,
		accessToken: config.AccessToken,
	}, nil
}

// BaseURL composes scheme, host, optional port, and the versioned API
// prefix. Pure function of the session.
func (s *Session) BaseURL() string {
	host := s.store
	if s.port != 0 {
		host = fmt.Sprintf("%s:%d", host, s.port)
	}

	return fmt.Sprintf("%s://%s/admin/api/%s", s.scheme, host, s.apiVersion)
}

// Store returns the shop host the session targets.
func (s *Session) Store() string {
	return s.store
}

// APIVersion returns the dated API version in use.
func (s *Session) APIVersion() string {
	return s.apiVersion
}

// AccessToken returns the OAuth access token, if any.
func (s *Session) AccessToken() string {
	return s.accessToken
}

// BasicAuth returns the api-key credential pair and whether basic auth
// should be used for this session.
func (s *Session) BasicAuth() (key, password string, ok bool) {
	if s.accessToken != "" {
		return "", "", false
	}

	return s.apiKey, s.password, s.apiKey != ""
}

// DefaultAPIVersion is used when Config.APIVersion is empty.
const DefaultAPIVersion = "2024-01"
