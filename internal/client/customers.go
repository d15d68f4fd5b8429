package client

import (
	"context"
	"fmt"

	"github.com/merchkit-io/shopapi-client/pkg/shopapi"
)

// CustomersClient implements shopapi.CustomersClient.
type CustomersClient struct {
	exec *executor
}

// NewCustomersClient creates a new customers client.
func NewCustomersClient(exec *executor) *CustomersClient {
	return &CustomersClient{exec: exec}
}

// customerShape describes the customer payload.
var customerShape = shopapi.Object(map[string]*shopapi.Shape{
	"id":           shopapi.Leaf(),
	"email":        shopapi.Leaf(),
	"first_name":   shopapi.Leaf(),
	"last_name":    shopapi.Leaf(),
	"tags":         shopapi.Leaf(),
	"orders_count": shopapi.Leaf(),
	"total_spent":  shopapi.Leaf(),
	"created_at":   shopapi.Leaf(),
	"updated_at":   shopapi.Leaf(),
})

// List implements shopapi.CustomersClient.List.
func (c *CustomersClient) List(ctx context.Context, params *shopapi.QueryParams) ([]shopapi.Customer, shopapi.Meta, error) {
	return fetchList[shopapi.Customer](ctx, c.exec, "/customers.json", values(params), "customers", shopapi.List(customerShape))
}

// Get implements shopapi.CustomersClient.Get.
func (c *CustomersClient) Get(ctx context.Context, id int64) (*shopapi.Customer, error) {
	path := fmt.Sprintf("/customers/%d.json", id)

	return fetchOne[shopapi.Customer](ctx, c.exec, "GET", path, nil, nil, "customer", customerShape)
}

// Create implements shopapi.CustomersClient.Create.
func (c *CustomersClient) Create(ctx context.Context, customer *shopapi.Customer) (*shopapi.Customer, error) {
	body := wrap("customer", customer)

	return fetchOne[shopapi.Customer](ctx, c.exec, "POST", "/customers.json", nil, body, "customer", customerShape)
}

// Update implements shopapi.CustomersClient.Update.
func (c *CustomersClient) Update(ctx context.Context, id int64, customer *shopapi.Customer) (*shopapi.Customer, error) {
	path := fmt.Sprintf("/customers/%d.json", id)
	body := wrap("customer", customer)

	return fetchOne[shopapi.Customer](ctx, c.exec, "PUT", path, nil, body, "customer", customerShape)
}

// Delete implements shopapi.CustomersClient.Delete.
func (c *CustomersClient) Delete(ctx context.Context, id int64) (shopapi.Meta, error) {
	path := fmt.Sprintf("/customers/%d.json", id)

	return fetchMetaOnly(ctx, c.exec, "DELETE", path, nil)
}

// Count implements shopapi.CustomersClient.Count.
func (c *CustomersClient) Count(ctx context.Context, params *shopapi.QueryParams) (int64, error) {
	return fetchCount(ctx, c.exec, "/customers/count.json", values(params))
}

// Search implements shopapi.CustomersClient.Search.
func (c *CustomersClient) Search(ctx context.Context, query string, params *shopapi.QueryParams) ([]shopapi.Customer, shopapi.Meta, error) {
	queryValues := values(params)
	queryValues.Set("query", query)

	return fetchList[shopapi.Customer](ctx, c.exec, "/customers/search.json", queryValues, "customers", shopapi.List(customerShape))
}
