package constants

import "errors"

// CLI configuration errors.
var (
	ErrNoStoreConfigured = errors.New("no store configured, pass --store or run 'shopapi login'")
	ErrNoCredentials     = errors.New("no credentials configured, run 'shopapi login' or set an access token")
	ErrUnknownOutput     = errors.New("unknown output format")
)

// Relay errors.
var (
	ErrNATSURLRequired = errors.New("a NATS server URL is required")
)
