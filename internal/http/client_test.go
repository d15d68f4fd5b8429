package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/merchkit-io/shopapi-client/internal/auth"
	shophttp "github.com/merchkit-io/shopapi-client/internal/http"
	"github.com/merchkit-io/shopapi-client/pkg/shopapi"
)

// MockLogger for testing.
type MockLogger struct {
	logs []map[string]interface{}
}

func (l *MockLogger) Debug(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "debug", "msg": msg, "fields": fields})
}

func (l *MockLogger) Info(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "info", "msg": msg, "fields": fields})
}

func (l *MockLogger) Warn(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "warn", "msg": msg, "fields": fields})
}

func (l *MockLogger) Error(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "error", "msg": msg, "fields": fields})
}

// testSession builds a session pointed at a local test server.
func testSession(t *testing.T, serverURL string, config *shopapi.Config) *shopapi.Session {
	t.Helper()

	parsed, err := url.Parse(serverURL)
	require.NoError(t, err)

	if config == nil {
		config = &shopapi.Config{AccessToken: "test-token"}
	}

	config.Store = parsed.Host
	config.Scheme = "http"

	session, err := shopapi.NewSession(config)
	require.NoError(t, err)

	return session
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_Do(t *testing.T) {
	t.Parallel()
	t.Run("successful request", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.True(t, strings.HasSuffix(request.URL.Path, "/customers.json"))
			assert.Equal(t, "GET", request.Method)
			assert.Equal(t, "Bearer test-token", request.Header.Get("Authorization"))
			assert.Equal(t, "application/json", request.Header.Get("Accept"))
			assert.NotEmpty(t, request.Header.Get("X-Request-Id"))

			response := map[string]string{"status": "ok"}
			_ = json.NewEncoder(writer).Encode(response)
		}))
		defer server.Close()

		session := testSession(t, server.URL, nil)
		client := shophttp.NewClient(session, auth.NewStaticTokenManager("test-token"))

		resp, err := client.Do(context.Background(), &shophttp.Request{
			Method: "GET",
			Path:   "/customers.json",
		})
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var result map[string]string

		err = json.Unmarshal(resp.Body, &result)
		require.NoError(t, err)
		assert.Equal(t, "ok", result["status"])
	})

	t.Run("basic auth credentials", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			user, password, ok := request.BasicAuth()
			assert.True(t, ok)
			assert.Equal(t, "api-key", user)
			assert.Equal(t, "api-password", password)
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		session := testSession(t, server.URL, &shopapi.Config{APIKey: "api-key", Password: "api-password"})
		client := shophttp.NewClient(session, nil)

		resp, err := client.Get(context.Background(), "/shop.json", nil)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("request with query parameters", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "limit=2", request.URL.RawQuery)
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		session := testSession(t, server.URL, nil)
		client := shophttp.NewClient(session, auth.NewStaticTokenManager("test-token"))

		resp, err := client.Do(context.Background(), &shophttp.Request{
			Method: "GET",
			Path:   "/orders.json",
			Query:  url.Values{"limit": []string{"2"}},
		})
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("request with body", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "POST", request.Method)
			assert.Equal(t, "application/json", request.Header.Get("Content-Type"))

			var body map[string]map[string]string

			_ = json.NewDecoder(request.Body).Decode(&body)
			assert.Equal(t, "fred@example.com", body["customer"]["email"])

			writer.WriteHeader(http.StatusCreated)
		}))
		defer server.Close()

		session := testSession(t, server.URL, nil)
		client := shophttp.NewClient(session, auth.NewStaticTokenManager("test-token"))

		resp, err := client.Post(context.Background(), "/customers.json", map[string]map[string]string{
			"customer": {"email": "fred@example.com"},
		})
		require.NoError(t, err)
		assert.Equal(t, 201, resp.StatusCode)
	})

	t.Run("non-2xx status is returned not errored", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusNotFound)
			_, _ = writer.Write([]byte(`{"errors":"Not Found"}`))
		}))
		defer server.Close()

		session := testSession(t, server.URL, nil)
		client := shophttp.NewClient(session, auth.NewStaticTokenManager("test-token"))

		resp, err := client.Get(context.Background(), "/customers/999.json", nil)
		require.NoError(t, err)
		assert.Equal(t, 404, resp.StatusCode)
		assert.JSONEq(t, `{"errors":"Not Found"}`, string(resp.Body))
	})

	t.Run("custom headers", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "custom-value", request.Header.Get("X-Custom-Header"))
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		session := testSession(t, server.URL, nil)
		client := shophttp.NewClient(session, auth.NewStaticTokenManager("test-token"))

		resp, err := client.Do(context.Background(), &shophttp.Request{
			Method: "GET",
			Path:   "/shop.json",
			Headers: map[string]string{
				"X-Custom-Header": "custom-value",
			},
		})
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("connection failure yields NetworkError", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {}))
		session := testSession(t, server.URL, nil)
		server.Close()

		client := shophttp.NewClient(session, auth.NewStaticTokenManager("test-token"))

		_, err := client.Get(context.Background(), "/shop.json", nil)
		require.Error(t, err)
		assert.True(t, shopapi.IsNetworkError(err))
	})

	t.Run("with debug logging", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusOK)
			_ = json.NewEncoder(writer).Encode(map[string]string{"result": "ok"})
		}))
		defer server.Close()

		logger := &MockLogger{}
		session := testSession(t, server.URL, nil)
		client := shophttp.NewClient(session, auth.NewStaticTokenManager("test-token"),
			shophttp.WithLogger(logger), shophttp.WithDebug(true))

		_, err := client.Get(context.Background(), "/shop.json", nil)
		require.NoError(t, err)

		// Should have logged request and response
		assert.Len(t, logger.logs, 2)
		assert.Equal(t, "HTTP Request", logger.logs[0]["msg"])
		assert.Equal(t, "HTTP Response", logger.logs[1]["msg"])
	})
}

func TestClient_Methods(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		method string
		fn     func(*shophttp.Client, context.Context) (*shophttp.Response, error)
	}{
		{
			name:   "GET",
			method: "GET",
			fn: func(c *shophttp.Client, ctx context.Context) (*shophttp.Response, error) {
				return c.Get(ctx, "/test.json", nil)
			},
		},
		{
			name:   "POST",
			method: "POST",
			fn: func(c *shophttp.Client, ctx context.Context) (*shophttp.Response, error) {
				return c.Post(ctx, "/test.json", map[string]string{"key": "value"})
			},
		},
		{
			name:   "PUT",
			method: "PUT",
			fn: func(c *shophttp.Client, ctx context.Context) (*shophttp.Response, error) {
				return c.Put(ctx, "/test.json", map[string]string{"key": "value"})
			},
		},
		{
			name:   "DELETE",
			method: "DELETE",
			fn: func(c *shophttp.Client, ctx context.Context) (*shophttp.Response, error) {
				return c.Delete(ctx, "/test.json", nil)
			},
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				assert.Equal(t, testCase.method, request.Method)
				assert.True(t, strings.HasSuffix(request.URL.Path, "/test.json"))
				writer.WriteHeader(http.StatusOK)
			}))
			defer server.Close()

			session := testSession(t, server.URL, nil)
			client := shophttp.NewClient(session, auth.NewStaticTokenManager("test-token"))

			resp, err := testCase.fn(client, context.Background())
			require.NoError(t, err)
			assert.Equal(t, 200, resp.StatusCode)
		})
	}
}

func TestClient_RetryLogic(t *testing.T) {
	t.Parallel()
	t.Run("no retries by default", func(t *testing.T) {
		t.Parallel()

		attempts := 0

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			attempts++

			writer.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		session := testSession(t, server.URL, nil)
		client := shophttp.NewClient(session, auth.NewStaticTokenManager("test-token"))

		resp, err := client.Get(context.Background(), "/test.json", nil)
		require.NoError(t, err)
		assert.Equal(t, 500, resp.StatusCode)
		assert.Equal(t, 1, attempts)
	})

	t.Run("opt-in retries on 5xx errors", func(t *testing.T) {
		t.Parallel()

		attempts := 0

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			attempts++
			if attempts < 3 {
				writer.WriteHeader(http.StatusInternalServerError)
			} else {
				writer.WriteHeader(http.StatusOK)
			}
		}))
		defer server.Close()

		session := testSession(t, server.URL, nil)
		client := shophttp.NewClient(session, auth.NewStaticTokenManager("test-token"),
			shophttp.WithRetryConfig(3, 10*time.Millisecond, 100*time.Millisecond))

		resp, err := client.Get(context.Background(), "/test.json", nil)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
		assert.Equal(t, 3, attempts)
	})

	t.Run("opt-in retries on rate limiting", func(t *testing.T) {
		t.Parallel()

		attempts := 0

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			attempts++
			if attempts < 2 {
				writer.WriteHeader(http.StatusTooManyRequests)
			} else {
				writer.WriteHeader(http.StatusOK)
			}
		}))
		defer server.Close()

		session := testSession(t, server.URL, nil)
		client := shophttp.NewClient(session, auth.NewStaticTokenManager("test-token"),
			shophttp.WithRetryConfig(3, 10*time.Millisecond, 100*time.Millisecond))

		resp, err := client.Get(context.Background(), "/test.json", nil)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
		assert.Equal(t, 2, attempts)
	})
}
