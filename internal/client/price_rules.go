package client

import (
	"context"
	"fmt"

	"github.com/merchkit-io/shopapi-client/pkg/shopapi"
)

// PriceRulesClient implements shopapi.PriceRulesClient.
type PriceRulesClient struct {
	exec *executor
}

// NewPriceRulesClient creates a new price rules client.
func NewPriceRulesClient(exec *executor) *PriceRulesClient {
	return &PriceRulesClient{exec: exec}
}

// priceRuleShape describes the price rule payload.
var priceRuleShape = shopapi.Object(map[string]*shopapi.Shape{
	"id":          shopapi.Leaf(),
	"title":       shopapi.Leaf(),
	"value_type":  shopapi.Leaf(),
	"value":       shopapi.Leaf(),
	"target_type": shopapi.Leaf(),
	"starts_at":   shopapi.Leaf(),
	"ends_at":     shopapi.Leaf(),
})

// List implements shopapi.PriceRulesClient.List.
func (c *PriceRulesClient) List(ctx context.Context, params *shopapi.QueryParams) ([]shopapi.PriceRule, shopapi.Meta, error) {
	return fetchList[shopapi.PriceRule](ctx, c.exec, "/price_rules.json", values(params), "price_rules", shopapi.List(priceRuleShape))
}

// Get implements shopapi.PriceRulesClient.Get.
func (c *PriceRulesClient) Get(ctx context.Context, id int64) (*shopapi.PriceRule, error) {
	path := fmt.Sprintf("/price_rules/%d.json", id)

	return fetchOne[shopapi.PriceRule](ctx, c.exec, "GET", path, nil, nil, "price_rule", priceRuleShape)
}

// Create implements shopapi.PriceRulesClient.Create.
func (c *PriceRulesClient) Create(ctx context.Context, rule *shopapi.PriceRule) (*shopapi.PriceRule, error) {
	body := wrap("price_rule", rule)

	return fetchOne[shopapi.PriceRule](ctx, c.exec, "POST", "/price_rules.json", nil, body, "price_rule", priceRuleShape)
}

// Update implements shopapi.PriceRulesClient.Update.
func (c *PriceRulesClient) Update(ctx context.Context, id int64, rule *shopapi.PriceRule) (*shopapi.PriceRule, error) {
	path := fmt.Sprintf("/price_rules/%d.json", id)
	body := wrap("price_rule", rule)

	return fetchOne[shopapi.PriceRule](ctx, c.exec, "PUT", path, nil, body, "price_rule", priceRuleShape)
}

// Delete implements shopapi.PriceRulesClient.Delete.
func (c *PriceRulesClient) Delete(ctx context.Context, id int64) (shopapi.Meta, error) {
	path := fmt.Sprintf("/price_rules/%d.json", id)

	return fetchMetaOnly(ctx, c.exec, "DELETE", path, nil)
}
