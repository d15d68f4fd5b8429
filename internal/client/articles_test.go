package client_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArticlesClient_List(t *testing.T) {
	t.Parallel()

	cli := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/admin/api/2024-01/blogs/7/articles.json", request.URL.Path)
		_, _ = writer.Write([]byte(`{
			"articles": [
				{"id": 1, "blog_id": 7, "title": "First post", "author": "Ada"},
				{"id": 2, "blog_id": 7, "title": "Second post", "author": "Grace"}
			]
		}`))
	})

	articles, _, err := cli.Articles().List(context.Background(), 7, nil)
	require.NoError(t, err)
	require.Len(t, articles, 2)
	assert.Equal(t, "First post", articles[0].Title)
	assert.Equal(t, "Second post", articles[1].Title)
	assert.Equal(t, int64(7), articles[1].BlogID)
}

func TestArticlesClient_Tags(t *testing.T) {
	t.Parallel()

	cli := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/admin/api/2024-01/articles/tags.json", request.URL.Path)
		_, _ = writer.Write([]byte(`{"tags": ["announcement", "release", "howto"]}`))
	})

	tags, err := cli.Articles().Tags(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"announcement", "release", "howto"}, tags)
}

func TestArticlesClient_Authors(t *testing.T) {
	t.Parallel()

	cli := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/admin/api/2024-01/articles/authors.json", request.URL.Path)
		_, _ = writer.Write([]byte(`{"authors": ["Ada", "Grace"]}`))
	})

	authors, err := cli.Articles().Authors(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Ada", "Grace"}, authors)
}

func TestArticlesClient_Delete(t *testing.T) {
	t.Parallel()

	cli := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "DELETE", request.Method)
		assert.Equal(t, "/admin/api/2024-01/blogs/7/articles/2.json", request.URL.Path)
		_, _ = writer.Write([]byte(`{}`))
	})

	_, err := cli.Articles().Delete(context.Background(), 7, 2)
	require.NoError(t, err)
}
