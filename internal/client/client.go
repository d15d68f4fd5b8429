// Package client implements the shopapi.Client interface: one generic
// request/response pipeline plus thin per-resource call sites over it.
package client

import (
	"context"
	"net/url"

	"github.com/merchkit-io/shopapi-client/internal/auth"
	"github.com/merchkit-io/shopapi-client/internal/http"
	"github.com/merchkit-io/shopapi-client/pkg/shopapi"
)

// Client implements the shopapi.Client interface.
type Client struct {
	exec    *executor
	session *shopapi.Session

	// Resource clients
	customers  shopapi.CustomersClient
	orders     shopapi.OrdersClient
	articles   shopapi.ArticlesClient
	priceRules shopapi.PriceRulesClient
	assets     shopapi.AssetsClient
	events     shopapi.EventsClient
}

// New creates a client from config. The session is validated here; all
// later calls reuse it read-only.
func New(config *shopapi.Config) (*Client, error) {
	session, err := shopapi.NewSession(config)
	if err != nil {
		return nil, err
	}

	var tokenManager auth.TokenManager
	if config.AccessToken != "" {
		tokenManager = auth.NewStaticTokenManager(config.AccessToken)
	}

	httpClient := http.NewClient(session, tokenManager, httpOptions(config)...)

	return NewWithTransport(session, httpClient), nil
}

// NewWithTransport creates a client around an existing transport. Used by
// tests and by callers that need custom transport wiring.
func NewWithTransport(session *shopapi.Session, httpClient *http.Client) *Client {
	client := &Client{
		exec:    &executor{http: httpClient},
		session: session,
	}

	client.initializeResourceClients()

	return client
}

// httpOptions builds transport options from config.
func httpOptions(config *shopapi.Config) []http.Option {
	var opts []http.Option

	if config.Logger != nil {
		opts = append(opts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		opts = append(opts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		opts = append(opts, http.WithUserAgent(config.UserAgent))
	}

	if config.Timeout > 0 {
		opts = append(opts, http.WithTimeout(config.Timeout))
	}

	if config.RetryMax > 0 {
		opts = append(opts, http.WithRetryConfig(config.RetryMax, config.RetryWaitMin, config.RetryWaitMax))
	}

	return opts
}

// Session returns the immutable session this client was built with.
func (c *Client) Session() *shopapi.Session {
	return c.session
}

// GetShop implements shopapi.Client.GetShop.
func (c *Client) GetShop(ctx context.Context) (*shopapi.Shop, error) {
	return fetchOne[shopapi.Shop](ctx, c.exec, "GET", "/shop.json", nil, nil, "shop", shopShape)
}

// Execute implements shopapi.Client.Execute, exposing the raw pipeline to
// callers with endpoints the typed surface does not cover.
func (c *Client) Execute(ctx context.Context, method, path string, query url.Values, body any, envelopeKey string, shape *shopapi.Shape) (*shopapi.Result, error) {
	return c.exec.execute(ctx, method, path, query, body, envelopeKey, shape)
}

// Customers implements shopapi.Client.Customers.
func (c *Client) Customers() shopapi.CustomersClient {
	return c.customers
}

// Orders implements shopapi.Client.Orders.
func (c *Client) Orders() shopapi.OrdersClient {
	return c.orders
}

// Articles implements shopapi.Client.Articles.
func (c *Client) Articles() shopapi.ArticlesClient {
	return c.articles
}

// PriceRules implements shopapi.Client.PriceRules.
func (c *Client) PriceRules() shopapi.PriceRulesClient {
	return c.priceRules
}

// Assets implements shopapi.Client.Assets.
func (c *Client) Assets() shopapi.AssetsClient {
	return c.assets
}

// Events implements shopapi.Client.Events.
func (c *Client) Events() shopapi.EventsClient {
	return c.events
}

// initializeResourceClients initializes all resource-specific clients.
func (c *Client) initializeResourceClients() {
	c.customers = NewCustomersClient(c.exec)
	c.orders = NewOrdersClient(c.exec)
	c.articles = NewArticlesClient(c.exec)
	c.priceRules = NewPriceRulesClient(c.exec)
	c.assets = NewAssetsClient(c.exec)
	c.events = NewEventsClient(c.exec)
}

// shopShape describes the shop payload.
var shopShape = shopapi.Object(map[string]*shopapi.Shape{
	"id":         shopapi.Leaf(),
	"name":       shopapi.Leaf(),
	"domain":     shopapi.Leaf(),
	"email":      shopapi.Leaf(),
	"currency":   shopapi.Leaf(),
	"plan_name":  shopapi.Leaf(),
	"created_at": shopapi.Leaf(),
})
