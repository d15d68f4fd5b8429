package shopapi

import (
	"context"
	"net/url"
)

// Client is the top-level interface for the shop platform API. A concrete
// implementation is constructed by the shopclient package.
type Client interface {
	// GetShop fetches the shop the session is bound to.
	GetShop(ctx context.Context) (*Shop, error)

	// Execute is the generic pipeline entry point every resource client
	// is built on: one HTTP call, envelope extraction, shape coercion,
	// metadata, and error classification. Resource methods are thin
	// path/envelope/shape call sites over it.
	Execute(ctx context.Context, method, path string, query url.Values, body any, envelopeKey string, shape *Shape) (*Result, error)

	// Session returns the immutable session the client was built with.
	Session() *Session

	Customers() CustomersClient
	Orders() OrdersClient
	Articles() ArticlesClient
	PriceRules() PriceRulesClient
	Assets() AssetsClient
	Events() EventsClient
}

// CustomersClient provides customer operations.
type CustomersClient interface {
	List(ctx context.Context, params *QueryParams) ([]Customer, Meta, error)
	Get(ctx context.Context, id int64) (*Customer, error)
	Create(ctx context.Context, customer *Customer) (*Customer, error)
	Update(ctx context.Context, id int64, customer *Customer) (*Customer, error)
	Delete(ctx context.Context, id int64) (Meta, error)
	Count(ctx context.Context, params *QueryParams) (int64, error)
	Search(ctx context.Context, query string, params *QueryParams) ([]Customer, Meta, error)
}

// OrdersClient provides order operations.
type OrdersClient interface {
	List(ctx context.Context, params *QueryParams) ([]Order, Meta, error)
	Get(ctx context.Context, id int64) (*Order, error)
	Count(ctx context.Context, params *QueryParams) (int64, error)
	Close(ctx context.Context, id int64) (*Order, error)
	Open(ctx context.Context, id int64) (*Order, error)
	Cancel(ctx context.Context, id int64) (*Order, error)
}

// ArticlesClient provides blog article operations, including the bare
// string-list endpoints for tags and authors.
type ArticlesClient interface {
	List(ctx context.Context, blogID int64, params *QueryParams) ([]Article, Meta, error)
	Get(ctx context.Context, blogID, id int64) (*Article, error)
	Create(ctx context.Context, blogID int64, article *Article) (*Article, error)
	Delete(ctx context.Context, blogID, id int64) (Meta, error)
	Tags(ctx context.Context) ([]string, error)
	Authors(ctx context.Context) ([]string, error)
}

// PriceRulesClient provides discount price rule operations.
type PriceRulesClient interface {
	List(ctx context.Context, params *QueryParams) ([]PriceRule, Meta, error)
	Get(ctx context.Context, id int64) (*PriceRule, error)
	Create(ctx context.Context, rule *PriceRule) (*PriceRule, error)
	Update(ctx context.Context, id int64, rule *PriceRule) (*PriceRule, error)
	Delete(ctx context.Context, id int64) (Meta, error)
}

// AssetsClient provides theme asset operations. Assets are addressed by
// key within a theme rather than by numeric id.
type AssetsClient interface {
	List(ctx context.Context, themeID int64) ([]Asset, Meta, error)
	Get(ctx context.Context, themeID int64, key string) (*Asset, error)
	Update(ctx context.Context, themeID int64, asset *Asset) (*Asset, error)
	Delete(ctx context.Context, themeID int64, key string) (Meta, error)
}

// EventsClient provides read access to platform events.
type EventsClient interface {
	List(ctx context.Context, params *QueryParams) ([]Event, Meta, error)
	Get(ctx context.Context, id int64) (*Event, error)
	Count(ctx context.Context, params *QueryParams) (int64, error)
}
