package filter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/merchkit-io/shopapi-client/internal/filter"
	"github.com/merchkit-io/shopapi-client/pkg/shopapi"
)

func TestCompile(t *testing.T) {
	t.Parallel()

	t.Run("valid expression", func(t *testing.T) {
		t.Parallel()

		compiled, err := filter.Compile(`orders_count > 5`)
		require.NoError(t, err)
		assert.Equal(t, `orders_count > 5`, compiled.String())
	})

	t.Run("empty expression", func(t *testing.T) {
		t.Parallel()

		_, err := filter.Compile("   ")
		require.ErrorIs(t, err, filter.ErrEmptyExpression)
	})

	t.Run("syntax error", func(t *testing.T) {
		t.Parallel()

		_, err := filter.Compile(`orders_count >`)
		require.Error(t, err)
	})
}

func TestFilter_Match(t *testing.T) {
	t.Parallel()

	customer := shopapi.Customer{
		ID:          101,
		Email:       "ada@example.com",
		FirstName:   "Ada",
		Tags:        "vip, loyal",
		OrdersCount: 7,
	}

	tests := []struct {
		name       string
		expression string
		want       bool
	}{
		{name: "numeric comparison", expression: `orders_count > 5`, want: true},
		{name: "numeric comparison misses", expression: `orders_count > 10`, want: false},
		{name: "field equality", expression: `first_name == "Ada"`, want: true},
		{name: "contains helper", expression: `contains(email, "@EXAMPLE.com")`, want: true},
		{name: "tag substring", expression: `contains(tags, "vip")`, want: true},
		{name: "combined clauses", expression: `orders_count > 5 && endsWith(email, ".com")`, want: true},
		{name: "undefined field is falsy", expression: `plan_name == "enterprise"`, want: false},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			compiled, err := filter.Compile(testCase.expression)
			require.NoError(t, err)

			matched, err := compiled.Match(customer)
			require.NoError(t, err)
			assert.Equal(t, testCase.want, matched)
		})
	}
}

func TestFilter_Match_NonBooleanResult(t *testing.T) {
	t.Parallel()

	compiled, err := filter.Compile(`orders_count + 1`)
	require.NoError(t, err)

	_, err = compiled.Match(shopapi.Customer{OrdersCount: 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "did not evaluate to a boolean")
}

func TestApply(t *testing.T) {
	t.Parallel()

	customers := []shopapi.Customer{
		{ID: 1, Email: "ada@example.com", OrdersCount: 7},
		{ID: 2, Email: "grace@other.net", OrdersCount: 2},
		{ID: 3, Email: "alan@example.com", OrdersCount: 9},
	}

	compiled, err := filter.Compile(`orders_count > 5 && endsWith(email, "example.com")`)
	require.NoError(t, err)

	kept, err := filter.Apply(compiled, customers)
	require.NoError(t, err)
	require.Len(t, kept, 2)
	assert.Equal(t, int64(1), kept[0].ID)
	assert.Equal(t, int64(3), kept[1].ID)
}
