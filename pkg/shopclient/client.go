// Package shopclient provides the main entry point for creating shop API clients
package shopclient

import (
	"fmt"

	"github.com/merchkit-io/shopapi-client/internal/client"
	"github.com/merchkit-io/shopapi-client/pkg/shopapi"
)

// New creates a new shop API client from config.
func New(config *shopapi.Config) (shopapi.Client, error) {
	if config == nil {
		return nil, shopapi.ErrConfigRequired
	}

	// Use the internal client implementation
	client, err := client.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return client, nil
}

// NewWithToken creates a new client for a store using an OAuth access token.
func NewWithToken(store, token string) (shopapi.Client, error) {
	return New(&shopapi.Config{
		Store:       store,
		AccessToken: token,
	})
}

// NewWithPassword creates a new client for a store using private-app
// api-key/password basic auth.
func NewWithPassword(store, apiKey, password string) (shopapi.Client, error) {
	return New(&shopapi.Config{
		Store:    store,
		APIKey:   apiKey,
		Password: password,
	})
}
