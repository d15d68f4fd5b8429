package shopapi

import (
	"net/url"
	"strconv"
	"strings"
	"time"
)

// QueryParams expresses the common list options the platform accepts.
// Order of entries is irrelevant; ToValues renders them deterministically.
type QueryParams struct {
	Limit        int
	PageInfo     string
	SinceID      int64
	Fields       []string
	Status       string
	CreatedAtMin time.Time
	CreatedAtMax time.Time
	Extra        map[string]string
}

// NewQueryParams creates an empty QueryParams.
func NewQueryParams() *QueryParams {
	return &QueryParams{
		Extra: make(map[string]string),
	}
}

// ToValues converts the params to url.Values for a query string.
func (q *QueryParams) ToValues() url.Values {
	values := url.Values{}

	if q.Limit > 0 {
		values.Set("limit", strconv.Itoa(q.Limit))
	}

	if q.PageInfo != "" {
		values.Set("page_info", q.PageInfo)
	}

	if q.SinceID > 0 {
		values.Set("since_id", strconv.FormatInt(q.SinceID, 10))
	}

	if len(q.Fields) > 0 {
		values.Set("fields", strings.Join(q.Fields, ","))
	}

	if q.Status != "" {
		values.Set("status", q.Status)
	}

	if !q.CreatedAtMin.IsZero() {
		values.Set("created_at_min", q.CreatedAtMin.Format(time.RFC3339))
	}

	if !q.CreatedAtMax.IsZero() {
		values.Set("created_at_max", q.CreatedAtMax.Format(time.RFC3339))
	}

	for key, value := range q.Extra {
		values.Set(key, value)
	}

	return values
}

// WithLimit sets the page size.
func (q *QueryParams) WithLimit(limit int) *QueryParams {
	q.Limit = limit

	return q
}

// WithPageInfo sets the pagination cursor from a Link header URL.
func (q *QueryParams) WithPageInfo(pageInfo string) *QueryParams {
	q.PageInfo = pageInfo

	return q
}

// WithSinceID restricts results to ids greater than the given one.
func (q *QueryParams) WithSinceID(id int64) *QueryParams {
	q.SinceID = id

	return q
}

// WithFields appends response field selections.
func (q *QueryParams) WithFields(fields ...string) *QueryParams {
	q.Fields = append(q.Fields, fields...)

	return q
}

// WithStatus filters by resource status.
func (q *QueryParams) WithStatus(status string) *QueryParams {
	q.Status = status

	return q
}

// WithCreatedAtMin filters to resources created at or after t.
func (q *QueryParams) WithCreatedAtMin(t time.Time) *QueryParams {
	q.CreatedAtMin = t

	return q
}

// WithCreatedAtMax filters to resources created at or before t.
func (q *QueryParams) WithCreatedAtMax(t time.Time) *QueryParams {
	q.CreatedAtMax = t

	return q
}

// With sets an arbitrary query parameter, replacing any previous value.
func (q *QueryParams) With(key, value string) *QueryParams {
	if q.Extra == nil {
		q.Extra = make(map[string]string)
	}

	q.Extra[key] = value

	return q
}
