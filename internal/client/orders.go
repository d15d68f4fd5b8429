package client

import (
	"context"
	"fmt"

	"github.com/merchkit-io/shopapi-client/pkg/shopapi"
)

// OrdersClient implements shopapi.OrdersClient.
type OrdersClient struct {
	exec *executor
}

// NewOrdersClient creates a new orders client.
func NewOrdersClient(exec *executor) *OrdersClient {
	return &OrdersClient{exec: exec}
}

// orderShape describes the order payload, including nested line items.
var orderShape = shopapi.Object(map[string]*shopapi.Shape{
	"id":                 shopapi.Leaf(),
	"name":               shopapi.Leaf(),
	"email":              shopapi.Leaf(),
	"currency":           shopapi.Leaf(),
	"total_price":        shopapi.Leaf(),
	"financial_status":   shopapi.Leaf(),
	"fulfillment_status": shopapi.Leaf(),
	"created_at":         shopapi.Leaf(),
	"cancelled_at":       shopapi.Leaf(),
	"line_items": shopapi.List(shopapi.Object(map[string]*shopapi.Shape{
		"id":       shopapi.Leaf(),
		"title":    shopapi.Leaf(),
		"quantity": shopapi.Leaf(),
		"price":    shopapi.Leaf(),
		"sku":      shopapi.Leaf(),
	})),
})

// List implements shopapi.OrdersClient.List.
func (c *OrdersClient) List(ctx context.Context, params *shopapi.QueryParams) ([]shopapi.Order, shopapi.Meta, error) {
	return fetchList[shopapi.Order](ctx, c.exec, "/orders.json", values(params), "orders", shopapi.List(orderShape))
}

// Get implements shopapi.OrdersClient.Get.
func (c *OrdersClient) Get(ctx context.Context, id int64) (*shopapi.Order, error) {
	path := fmt.Sprintf("/orders/%d.json", id)

	return fetchOne[shopapi.Order](ctx, c.exec, "GET", path, nil, nil, "order", orderShape)
}

// Count implements shopapi.OrdersClient.Count.
func (c *OrdersClient) Count(ctx context.Context, params *shopapi.QueryParams) (int64, error) {
	return fetchCount(ctx, c.exec, "/orders/count.json", values(params))
}

// Close implements shopapi.OrdersClient.Close.
func (c *OrdersClient) Close(ctx context.Context, id int64) (*shopapi.Order, error) {
	path := fmt.Sprintf("/orders/%d/close.json", id)

	return fetchOne[shopapi.Order](ctx, c.exec, "POST", path, nil, nil, "order", orderShape)
}

// Open implements shopapi.OrdersClient.Open.
func (c *OrdersClient) Open(ctx context.Context, id int64) (*shopapi.Order, error) {
	path := fmt.Sprintf("/orders/%d/open.json", id)

	return fetchOne[shopapi.Order](ctx, c.exec, "POST", path, nil, nil, "order", orderShape)
}

// Cancel implements shopapi.OrdersClient.Cancel.
func (c *OrdersClient) Cancel(ctx context.Context, id int64) (*shopapi.Order, error) {
	path := fmt.Sprintf("/orders/%d/cancel.json", id)

	return fetchOne[shopapi.Order](ctx, c.exec, "POST", path, nil, nil, "order", orderShape)
}
