package client_test

import (
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/merchkit-io/shopapi-client/pkg/shopapi"
)

func TestCustomersClient_List(t *testing.T) {
	t.Parallel()

	cli := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/admin/api/2024-01/customers.json", request.URL.Path)
		assert.Equal(t, "2", request.URL.Query().Get("limit"))

		writer.Header().Set("X-Shop-Api-Call-Limit", "3/40")
		writer.Header().Set("Link", `<https://example.myshopify.com/admin/api/2024-01/customers.json?page_info=nextcursor&limit=2>; rel="next"`)
		_, _ = writer.Write([]byte(`{
			"customers": [
				{"id": 101, "email": "ada@example.com", "first_name": "Ada", "orders_count": 3},
				{"id": 102, "email": "grace@example.com", "first_name": "Grace", "orders_count": 1}
			]
		}`))
	})

	params := shopapi.NewQueryParams().WithLimit(2)

	customers, meta, err := cli.Customers().List(context.Background(), params)
	require.NoError(t, err)
	require.Len(t, customers, 2)
	assert.Equal(t, int64(101), customers[0].ID)
	assert.Equal(t, "ada@example.com", customers[0].Email)
	assert.Equal(t, int64(102), customers[1].ID)

	require.NotNil(t, meta.RateLimit)
	assert.Equal(t, 3, meta.RateLimit.Used)
	require.NotNil(t, meta.Page)
	assert.Contains(t, meta.Page.Next, "page_info=nextcursor")
	assert.Empty(t, meta.Page.Previous)
}

func TestCustomersClient_Get(t *testing.T) {
	t.Parallel()

	cli := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/admin/api/2024-01/customers/101.json", request.URL.Path)
		_, _ = writer.Write([]byte(`{"customer": {"id": 101, "email": "ada@example.com", "tags": "vip, loyal"}}`))
	})

	customer, err := cli.Customers().Get(context.Background(), 101)
	require.NoError(t, err)
	assert.Equal(t, int64(101), customer.ID)
	assert.Equal(t, "vip, loyal", customer.Tags)
}

func TestCustomersClient_Create(t *testing.T) {
	t.Parallel()

	cli := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "POST", request.Method)

		body, err := io.ReadAll(request.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{"customer": {"email": "new@example.com"}}`, string(body))

		writer.WriteHeader(http.StatusCreated)
		_, _ = writer.Write([]byte(`{"customer": {"id": 103, "email": "new@example.com"}}`))
	})

	created, err := cli.Customers().Create(context.Background(), &shopapi.Customer{Email: "new@example.com"})
	require.NoError(t, err)
	assert.Equal(t, int64(103), created.ID)
}

func TestCustomersClient_Delete(t *testing.T) {
	t.Parallel()

	cli := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "DELETE", request.Method)
		assert.Equal(t, "/admin/api/2024-01/customers/101.json", request.URL.Path)

		writer.Header().Set("X-Shop-Api-Call-Limit", "4/40")
		_, _ = writer.Write([]byte(`{}`))
	})

	meta, err := cli.Customers().Delete(context.Background(), 101)
	require.NoError(t, err)
	require.NotNil(t, meta.RateLimit)
	assert.Equal(t, 4, meta.RateLimit.Used)
}

func TestCustomersClient_Search(t *testing.T) {
	t.Parallel()

	cli := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/admin/api/2024-01/customers/search.json", request.URL.Path)
		assert.Equal(t, "email:ada@example.com", request.URL.Query().Get("query"))

		_, _ = writer.Write([]byte(`{"customers": [{"id": 101, "email": "ada@example.com"}]}`))
	})

	customers, _, err := cli.Customers().Search(context.Background(), "email:ada@example.com", nil)
	require.NoError(t, err)
	require.Len(t, customers, 1)
	assert.Equal(t, int64(101), customers[0].ID)
}

func TestCustomersClient_Count(t *testing.T) {
	t.Parallel()

	cli := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/admin/api/2024-01/customers/count.json", request.URL.Path)
		_, _ = writer.Write([]byte(`{"count": 205}`))
	})

	count, err := cli.Customers().Count(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, int64(205), count)
}
