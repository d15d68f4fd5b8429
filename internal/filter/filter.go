// Package filter compiles boolean expressions for narrowing listed
// resources on the command line. Expressions see the resource's JSON
// fields as variables plus a small set of string and date helpers.
package filter

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	json "github.com/goccy/go-json"
)

// ErrEmptyExpression is returned when the expression is blank.
var ErrEmptyExpression = errors.New("empty filter expression")

// Filter is a compiled boolean expression over a resource's fields.
type Filter struct {
	program *vm.Program
	expr    string
}

// Compile compiles a filter expression. Field names follow the
// resource's JSON keys, e.g. `orders_count > 5 && contains(email, "@example.com")`.
func Compile(expression string) (*Filter, error) {
	if strings.TrimSpace(expression) == "" {
		return nil, ErrEmptyExpression
	}

	program, err := expr.Compile(expression,
		expr.Env(helperEnv()),
		expr.AllowUndefinedVariables(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to compile filter expression: %w", err)
	}

	return &Filter{
		program: program,
		expr:    expression,
	}, nil
}

// Match evaluates the filter against one resource. The resource is
// flattened to its JSON representation so expressions address the same
// field names the API answers with.
func (f *Filter) Match(item any) (bool, error) {
	env := helperEnv()

	fields, err := itemFields(item)
	if err != nil {
		return false, err
	}

	for key, value := range fields {
		env[key] = value
	}

	result, err := expr.Run(f.program, env)
	if err != nil {
		return false, fmt.Errorf("evaluating filter expression: %w", err)
	}

	matched, ok := result.(bool)
	if !ok {
		return false, fmt.Errorf("filter expression %q did not evaluate to a boolean", f.expr)
	}

	return matched, nil
}

// String returns the original expression.
func (f *Filter) String() string {
	return f.expr
}

// Apply keeps the items the filter matches, preserving order.
func Apply[T any](f *Filter, items []T) ([]T, error) {
	kept := make([]T, 0, len(items))

	for _, item := range items {
		matched, err := f.Match(item)
		if err != nil {
			return nil, err
		}

		if matched {
			kept = append(kept, item)
		}
	}

	return kept, nil
}

// itemFields flattens a resource to its JSON field map.
func itemFields(item any) (map[string]any, error) {
	raw, err := json.Marshal(item)
	if err != nil {
		return nil, fmt.Errorf("flattening item for filter: %w", err)
	}

	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("flattening item for filter: %w", err)
	}

	return fields, nil
}

// helperEnv defines the helper functions available to every expression.
func helperEnv() map[string]any {
	return map[string]any{
		// String helpers, all case-insensitive
		"contains": func(str, substr string) bool {
			return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
		},
		"startsWith": func(str, prefix string) bool {
			return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
		},
		"endsWith": func(str, suffix string) bool {
			return strings.HasSuffix(strings.ToLower(str), strings.ToLower(suffix))
		},
		"lower": strings.ToLower,
		"upper": strings.ToUpper,
		// Date helpers
		"daysAgo": func(days int) time.Time {
			return time.Now().AddDate(0, 0, -days)
		},
		"monthsAgo": func(months int) time.Time {
			return time.Now().AddDate(0, -months, 0)
		},
		"parseDate": func(dateStr string) time.Time {
			t, _ := time.Parse("2006-01-02", dateStr)

			return t
		},
		"now": time.Now,
	}
}
