package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/merchkit-io/shopapi-client/pkg/shopapi"
)

// AssetsClient implements shopapi.AssetsClient. Assets are addressed by
// key within a theme, passed as a query parameter rather than a path id.
type AssetsClient struct {
	exec *executor
}

// NewAssetsClient creates a new assets client.
func NewAssetsClient(exec *executor) *AssetsClient {
	return &AssetsClient{exec: exec}
}

// assetShape describes the theme asset payload.
var assetShape = shopapi.Object(map[string]*shopapi.Shape{
	"key":          shopapi.Leaf(),
	"theme_id":     shopapi.Leaf(),
	"content_type": shopapi.Leaf(),
	"value":        shopapi.Leaf(),
	"public_url":   shopapi.Leaf(),
	"updated_at":   shopapi.Leaf(),
})

// List implements shopapi.AssetsClient.List.
func (c *AssetsClient) List(ctx context.Context, themeID int64) ([]shopapi.Asset, shopapi.Meta, error) {
	path := fmt.Sprintf("/themes/%d/assets.json", themeID)

	return fetchList[shopapi.Asset](ctx, c.exec, path, nil, "assets", shopapi.List(assetShape))
}

// Get implements shopapi.AssetsClient.Get.
func (c *AssetsClient) Get(ctx context.Context, themeID int64, key string) (*shopapi.Asset, error) {
	path := fmt.Sprintf("/themes/%d/assets.json", themeID)
	query := url.Values{"asset[key]": []string{key}}

	return fetchOne[shopapi.Asset](ctx, c.exec, "GET", path, query, nil, "asset", assetShape)
}

// Update implements shopapi.AssetsClient.Update.
func (c *AssetsClient) Update(ctx context.Context, themeID int64, asset *shopapi.Asset) (*shopapi.Asset, error) {
	path := fmt.Sprintf("/themes/%d/assets.json", themeID)
	body := wrap("asset", asset)

	return fetchOne[shopapi.Asset](ctx, c.exec, "PUT", path, nil, body, "asset", assetShape)
}

// Delete implements shopapi.AssetsClient.Delete.
func (c *AssetsClient) Delete(ctx context.Context, themeID int64, key string) (shopapi.Meta, error) {
	path := fmt.Sprintf("/themes/%d/assets.json", themeID)
	query := url.Values{"asset[key]": []string{key}}

	return fetchMetaOnly(ctx, c.exec, "DELETE", path, query)
}
