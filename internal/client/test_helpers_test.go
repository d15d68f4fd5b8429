package client_test

import (
	nethttp "net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/merchkit-io/shopapi-client/internal/auth"
	"github.com/merchkit-io/shopapi-client/internal/client"
	shophttp "github.com/merchkit-io/shopapi-client/internal/http"
	"github.com/merchkit-io/shopapi-client/pkg/shopapi"
)

// newTestClient starts a test server around handler and builds a client
// pointed at it. The server is closed via t.Cleanup.
func newTestClient(t *testing.T, handler nethttp.HandlerFunc) *client.Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	parsed, err := url.Parse(server.URL)
	require.NoError(t, err)

	session, err := shopapi.NewSession(&shopapi.Config{
		Store:       parsed.Host,
		Scheme:      "http",
		AccessToken: "test-token",
	})
	require.NoError(t, err)

	httpClient := shophttp.NewClient(session, auth.NewStaticTokenManager("test-token"))

	return client.NewWithTransport(session, httpClient)
}
