package shopapi

import (
	"context"
	"fmt"
	"net/url"
)

// ListPageFunc fetches one page of a cursor-paginated listing. Resource
// clients' List methods satisfy this signature directly.
type ListPageFunc[T any] func(ctx context.Context, params *QueryParams) ([]T, Meta, error)

// PageIterator walks a cursor-paginated listing item by item, fetching
// pages lazily. It is not safe for concurrent use.
type PageIterator[T any] struct {
	ctx     context.Context
	list    ListPageFunc[T]
	params  *QueryParams
	buffer  []T
	index   int
	cursor  string
	started bool
	done    bool
	err     error
}

// NewPageIterator creates an iterator over a cursor-paginated listing.
func NewPageIterator[T any](ctx context.Context, list ListPageFunc[T], params *QueryParams) *PageIterator[T] {
	if params == nil {
		params = NewQueryParams()
	}

	return &PageIterator[T]{
		ctx:    ctx,
		list:   list,
		params: params,
	}
}

// HasNext reports whether another item is available, fetching the next
// page if the current one is exhausted.
func (it *PageIterator[T]) HasNext() bool {
	if err := it.ensure(); err != nil {
		// Surface the error on the following Next call.
		return true
	}

	return it.index < len(it.buffer)
}

// Next returns the next item, or ErrNoMoreItems when the listing is
// exhausted.
func (it *PageIterator[T]) Next() (T, error) {
	var zero T

	if err := it.ensure(); err != nil {
		return zero, err
	}

	if it.index >= len(it.buffer) {
		return zero, ErrNoMoreItems
	}

	item := it.buffer[it.index]
	it.index++

	return item, nil
}

// All drains the iterator, collecting every remaining item.
func (it *PageIterator[T]) All() ([]T, error) {
	var items []T

	for {
		if err := it.ensure(); err != nil {
			return items, err
		}

		if it.index >= len(it.buffer) {
			return items, nil
		}

		items = append(items, it.buffer[it.index:]...)
		it.index = len(it.buffer)
	}
}

// ForEach applies fn to every remaining item, stopping at the first error.
func (it *PageIterator[T]) ForEach(fn func(T) error) error {
	for {
		if err := it.ensure(); err != nil {
			return err
		}

		if it.index >= len(it.buffer) {
			return nil
		}

		for ; it.index < len(it.buffer); it.index++ {
			if err := fn(it.buffer[it.index]); err != nil {
				return err
			}
		}
	}
}

// ensure fetches the next page when the buffer is consumed. A fetch error
// is sticky: every later call reports it.
func (it *PageIterator[T]) ensure() error {
	if it.err != nil {
		return it.err
	}

	if it.index < len(it.buffer) || it.done {
		return nil
	}

	if it.started && it.cursor == "" {
		it.done = true

		return nil
	}

	params := *it.params
	if it.started {
		params.PageInfo = it.cursor
	}

	items, meta, err := it.list(it.ctx, &params)
	if err != nil {
		it.done = true
		it.err = fmt.Errorf("fetching page: %w", err)

		return it.err
	}

	it.started = true
	it.buffer = items
	it.index = 0

	it.cursor = ""
	if meta.Page != nil {
		it.cursor = PageInfoFromURL(meta.Page.Next)
	}

	if len(items) == 0 && it.cursor == "" {
		it.done = true
	}

	return nil
}

// FetchAllPages collects every item of a cursor-paginated listing.
func FetchAllPages[T any](ctx context.Context, list ListPageFunc[T], params *QueryParams) ([]T, error) {
	return NewPageIterator(ctx, list, params).All()
}

// PageInfoFromURL extracts the page_info cursor from a Link header URL.
// Returns "" when the URL is empty, malformed, or carries no cursor.
func PageInfoFromURL(raw string) string {
	if raw == "" {
		return ""
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return ""
	}

	return parsed.Query().Get("page_info")
}
