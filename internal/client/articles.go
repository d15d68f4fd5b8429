package client

import (
	"context"
	"fmt"

	"github.com/merchkit-io/shopapi-client/pkg/shopapi"
)

// ArticlesClient implements shopapi.ArticlesClient.
type ArticlesClient struct {
	exec *executor
}

// NewArticlesClient creates a new articles client.
func NewArticlesClient(exec *executor) *ArticlesClient {
	return &ArticlesClient{exec: exec}
}

// articleShape describes the blog article payload.
var articleShape = shopapi.Object(map[string]*shopapi.Shape{
	"id":         shopapi.Leaf(),
	"blog_id":    shopapi.Leaf(),
	"title":      shopapi.Leaf(),
	"author":     shopapi.Leaf(),
	"tags":       shopapi.Leaf(),
	"body_html":  shopapi.Leaf(),
	"created_at": shopapi.Leaf(),
})

// List implements shopapi.ArticlesClient.List.
func (c *ArticlesClient) List(ctx context.Context, blogID int64, params *shopapi.QueryParams) ([]shopapi.Article, shopapi.Meta, error) {
	path := fmt.Sprintf("/blogs/%d/articles.json", blogID)

	return fetchList[shopapi.Article](ctx, c.exec, path, values(params), "articles", shopapi.List(articleShape))
}

// Get implements shopapi.ArticlesClient.Get.
func (c *ArticlesClient) Get(ctx context.Context, blogID, id int64) (*shopapi.Article, error) {
	path := fmt.Sprintf("/blogs/%d/articles/%d.json", blogID, id)

	return fetchOne[shopapi.Article](ctx, c.exec, "GET", path, nil, nil, "article", articleShape)
}

// Create implements shopapi.ArticlesClient.Create.
func (c *ArticlesClient) Create(ctx context.Context, blogID int64, article *shopapi.Article) (*shopapi.Article, error) {
	path := fmt.Sprintf("/blogs/%d/articles.json", blogID)
	body := wrap("article", article)

	return fetchOne[shopapi.Article](ctx, c.exec, "POST", path, nil, body, "article", articleShape)
}

// Delete implements shopapi.ArticlesClient.Delete.
func (c *ArticlesClient) Delete(ctx context.Context, blogID, id int64) (shopapi.Meta, error) {
	path := fmt.Sprintf("/blogs/%d/articles/%d.json", blogID, id)

	return fetchMetaOnly(ctx, c.exec, "DELETE", path, nil)
}

// Tags implements shopapi.ArticlesClient.Tags. The endpoint answers a
// bare list of strings, decoded through a leaf shape.
func (c *ArticlesClient) Tags(ctx context.Context) ([]string, error) {
	return fetchStrings(ctx, c.exec, "/articles/tags.json", nil, "tags")
}

// Authors implements shopapi.ArticlesClient.Authors.
func (c *ArticlesClient) Authors(ctx context.Context) ([]string, error) {
	return fetchStrings(ctx, c.exec, "/articles/authors.json", nil, "authors")
}
