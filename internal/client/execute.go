package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/merchkit-io/shopapi-client/internal/codec"
	"github.com/merchkit-io/shopapi-client/internal/http"
	"github.com/merchkit-io/shopapi-client/pkg/shopapi"
)

// executor is the pipeline orchestrator: transport, then either
// decode+meta on success or classification on failure. It holds no
// mutable state and is safe for concurrent use.
type executor struct {
	http *http.Client
}

// execute runs one request through the pipeline.
//
// Transport failures return *shopapi.NetworkError without any decoding. A
// 2xx answer is decoded against envelopeKey/shape; a 2xx body that fails
// to decode is surfaced as *shopapi.DecodeError, never swallowed. Any
// other status is classified into *shopapi.APIError.
func (e *executor) execute(ctx context.Context, method, path string, query url.Values, body any, envelopeKey string, shape *shopapi.Shape) (*shopapi.Result, error) {
	resp, err := e.http.Do(ctx, &http.Request{
		Method: method,
		Path:   path,
		Query:  query,
		Body:   body,
	})
	if err != nil {
		return nil, err
	}

	if resp.StatusCode >= 200 && resp.StatusCode <= 299 {
		value, err := codec.Decode(resp.Body, envelopeKey, shape)
		if err != nil {
			return nil, err
		}

		return &shopapi.Result{
			Value: value,
			Meta:  codec.ExtractMeta(resp.Headers),
		}, nil
	}

	return nil, shopapi.Classify(resp.StatusCode, resp.Headers, resp.Body)
}

// values renders query params, tolerating nil.
func values(params *shopapi.QueryParams) url.Values {
	if params == nil {
		return url.Values{}
	}

	return params.ToValues()
}

// wrap nests outgoing params under a singular envelope key, the
// `{"<singular>": params}` contract for POST/PUT bodies.
func wrap(key string, value any) map[string]any {
	return map[string]any{key: value}
}

// fetchOne runs the pipeline and binds the decoded value to a single
// typed resource.
func fetchOne[T any](ctx context.Context, e *executor, method, path string, query url.Values, body any, envelopeKey string, shape *shopapi.Shape) (*T, error) {
	result, err := e.execute(ctx, method, path, query, body, envelopeKey, shape)
	if err != nil {
		return nil, err
	}

	resource, err := codec.Bind[T](result.Value)
	if err != nil {
		return nil, fmt.Errorf("binding %s response: %w", envelopeKey, err)
	}

	return &resource, nil
}

// fetchList runs the pipeline and binds the decoded value to a typed
// slice, returning response metadata alongside it.
func fetchList[T any](ctx context.Context, e *executor, path string, query url.Values, envelopeKey string, shape *shopapi.Shape) ([]T, shopapi.Meta, error) {
	result, err := e.execute(ctx, "GET", path, query, nil, envelopeKey, shape)
	if err != nil {
		return nil, shopapi.Meta{}, err
	}

	resources, err := codec.Bind[[]T](result.Value)
	if err != nil {
		return nil, shopapi.Meta{}, fmt.Errorf("binding %s response: %w", envelopeKey, err)
	}

	if resources == nil {
		resources = []T{}
	}

	return resources, result.Meta, nil
}

// fetchCount runs the pipeline against a count endpoint (leaf shape under
// the "count" envelope key).
func fetchCount(ctx context.Context, e *executor, path string, query url.Values) (int64, error) {
	result, err := e.execute(ctx, "GET", path, query, nil, "count", shopapi.Leaf())
	if err != nil {
		return 0, err
	}

	count, err := codec.Bind[int64](result.Value)
	if err != nil {
		return 0, fmt.Errorf("binding count response: %w", err)
	}

	return count, nil
}

// fetchMetaOnly runs a delete-style call expecting an empty or ignorable
// body, returning metadata alone.
func fetchMetaOnly(ctx context.Context, e *executor, method, path string, query url.Values) (shopapi.Meta, error) {
	result, err := e.execute(ctx, method, path, query, nil, "", nil)
	if err != nil {
		return shopapi.Meta{}, err
	}

	return result.Meta, nil
}

// fetchStrings runs the pipeline against an endpoint answering a bare
// list of strings (tag lists, author lists).
func fetchStrings(ctx context.Context, e *executor, path string, query url.Values, envelopeKey string) ([]string, error) {
	result, err := e.execute(ctx, "GET", path, query, nil, envelopeKey, shopapi.Leaf())
	if err != nil {
		return nil, err
	}

	values, err := codec.Bind[[]string](result.Value)
	if err != nil {
		return nil, fmt.Errorf("binding %s response: %w", envelopeKey, err)
	}

	return values, nil
}
