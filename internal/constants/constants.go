package constants

import "time"

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// ShortHTTPTimeout is used for quick operations.
	ShortHTTPTimeout = 10 * time.Second
)

// Retry limits. Retries are opt-in caller policy; the pipeline itself
// performs exactly one network call per invocation.
const (
	// DefaultRetryWaitMin is the minimum wait between opt-in retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait between opt-in retries.
	DefaultRetryWaitMax = 30 * time.Second
)

// Header names the platform uses.
const (
	// HeaderCallLimit carries the rate-limit budget as "used/total".
	HeaderCallLimit = "X-Shop-Api-Call-Limit"

	// HeaderLink carries pagination URLs per the standard Link syntax.
	HeaderLink = "Link"

	// HeaderRetryAfter carries the 429 backoff budget in seconds.
	HeaderRetryAfter = "Retry-After"

	// HeaderRequestID tags each outgoing request for server-side tracing.
	HeaderRequestID = "X-Request-Id"
)

// Pagination limits.
const (
	// DefaultPageSize is the default number of items per page.
	DefaultPageSize = 50

	// MaxPageSize is the largest page the platform serves.
	MaxPageSize = 250
)

// DefaultUserAgent identifies the client when Config.UserAgent is empty.
const DefaultUserAgent = "shopapi-client/1.0 (+https://github.com/merchkit-io/shopapi-client)"

// File and directory permissions for CLI configuration.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)
