package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/merchkit-io/shopapi-client/pkg/shopapi"
)

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestExecute(t *testing.T) {
	t.Parallel()
	t.Run("count endpoint with leaf shape", func(t *testing.T) {
		t.Parallel()

		cli := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
			writer.Header().Set("X-Shop-Api-Call-Limit", "1/40")
			_, _ = writer.Write([]byte(`{"count": 42}`))
		})

		result, err := cli.Execute(context.Background(), "GET", "/orders/count.json", nil, nil, "count", shopapi.Leaf())
		require.NoError(t, err)
		assert.Equal(t, json.Number("42"), result.Value)
		require.NotNil(t, result.Meta.RateLimit)
		assert.Equal(t, 1, result.Meta.RateLimit.Used)
		assert.Equal(t, 40, result.Meta.RateLimit.Total)
	})

	t.Run("empty envelope key yields meta-only success", func(t *testing.T) {
		t.Parallel()

		cli := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
			writer.Header().Set("X-Shop-Api-Call-Limit", "2/40")
			_, _ = writer.Write([]byte(`{}`))
		})

		result, err := cli.Execute(context.Background(), "DELETE", "/customers/1.json", nil, nil, "", nil)
		require.NoError(t, err)
		assert.Nil(t, result.Value)
		require.NotNil(t, result.Meta.RateLimit)
		assert.Equal(t, 2, result.Meta.RateLimit.Used)
	})

	t.Run("2xx with undecodable body is surfaced", func(t *testing.T) {
		t.Parallel()

		cli := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
			_, _ = writer.Write([]byte(`{"orders": {"not": "a list"}}`))
		})

		_, err := cli.Execute(context.Background(), "GET", "/orders.json", nil, nil, "orders", shopapi.List(shopapi.Leaf()))
		require.Error(t, err)
		assert.True(t, shopapi.IsDecodeError(err))
	})

	t.Run("404 classifies as not found regardless of body", func(t *testing.T) {
		t.Parallel()

		cli := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusNotFound)
		})

		_, err := cli.Execute(context.Background(), "GET", "/customers/999.json", nil, nil, "customer", nil)
		require.Error(t, err)
		assert.True(t, shopapi.IsNotFound(err))
	})

	t.Run("429 carries the retry-after budget", func(t *testing.T) {
		t.Parallel()

		cli := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
			writer.Header().Set("Retry-After", "2")
			writer.WriteHeader(http.StatusTooManyRequests)
		})

		_, err := cli.Execute(context.Background(), "GET", "/orders.json", nil, nil, "orders", nil)
		require.Error(t, err)
		assert.True(t, shopapi.IsRateLimited(err))

		apiErr := &shopapi.APIError{}
		require.ErrorAs(t, err, &apiErr)
		assert.InDelta(t, 2.0, apiErr.RetryAfter, 0.001)
	})

	t.Run("422 preserves field errors verbatim", func(t *testing.T) {
		t.Parallel()

		cli := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusUnprocessableEntity)
			_, _ = writer.Write([]byte(`{"errors": {"email": ["is invalid", "is already taken"]}}`))
		})

		_, err := cli.Execute(context.Background(), "POST", "/customers.json", nil, map[string]any{}, "customer", nil)
		require.Error(t, err)
		assert.True(t, shopapi.IsUnprocessable(err))

		apiErr := &shopapi.APIError{}
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, []string{"is invalid", "is already taken"}, apiErr.FieldErrors["email"])
	})

	t.Run("402 classifies as payment required", func(t *testing.T) {
		t.Parallel()

		cli := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusPaymentRequired)
			_, _ = writer.Write([]byte(`{"errors":"This shop is frozen"}`))
		})

		_, err := cli.Execute(context.Background(), "GET", "/orders.json", nil, nil, "orders", nil)
		require.Error(t, err)

		apiErr := &shopapi.APIError{}
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, shopapi.KindPaymentRequired, apiErr.Kind)
		assert.Equal(t, "This shop is frozen", apiErr.Detail)
	})

	t.Run("5xx classifies as server error", func(t *testing.T) {
		t.Parallel()

		cli := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusBadGateway)
		})

		_, err := cli.Execute(context.Background(), "GET", "/orders.json", nil, nil, "orders", nil)
		require.Error(t, err)

		apiErr := &shopapi.APIError{}
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, shopapi.KindServerError, apiErr.Kind)
		assert.Equal(t, http.StatusBadGateway, apiErr.Status)
	})
}
