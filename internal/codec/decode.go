// Package codec implements the response envelope decoder: it parses a raw
// JSON body, extracts the named top-level envelope key, and recursively
// coerces the extracted value against a shape descriptor. It also derives
// rate-limit and pagination metadata from response headers.
package codec

import (
	"bytes"
	"fmt"

	json "github.com/goccy/go-json"

	"github.com/merchkit-io/shopapi-client/pkg/shopapi"
)

// Decode extracts envelopeKey from a JSON body and coerces the value
// against shape.
//
// An empty envelopeKey marks a delete-style call: the body must be empty
// or valid JSON, and the returned value is nil. Numbers are preserved as
// json.Number throughout.
func Decode(body []byte, envelopeKey string, shape *shopapi.Shape) (any, error) {
	if envelopeKey == "" {
		if len(bytes.TrimSpace(body)) == 0 {
			return nil, nil
		}

		var probe any
		if err := unmarshal(body, &probe); err != nil {
			return nil, &shopapi.DecodeError{Reason: shopapi.DecodeInvalidJSON, Err: err}
		}

		return nil, nil
	}

	var parsed any
	if err := unmarshal(body, &parsed); err != nil {
		return nil, &shopapi.DecodeError{Reason: shopapi.DecodeInvalidJSON, Err: err}
	}

	envelope, ok := parsed.(map[string]any)
	if !ok {
		return nil, &shopapi.DecodeError{Reason: shopapi.DecodeMissingEnvelopeKey, Key: envelopeKey}
	}

	value, ok := envelope[envelopeKey]
	if !ok {
		return nil, &shopapi.DecodeError{Reason: shopapi.DecodeMissingEnvelopeKey, Key: envelopeKey}
	}

	return coerce(value, shape, envelopeKey)
}

// coerce applies a shape descriptor to a decoded JSON value. Partial
// payloads (missing fields) and extra JSON keys never fail; structural
// mismatches do.
func coerce(value any, shape *shopapi.Shape, path string) (any, error) {
	if value == nil {
		return nil, nil
	}

	switch {
	case shape.IsLeaf():
		return value, nil

	case shape.IsList():
		array, ok := value.([]any)
		if !ok {
			return nil, &shopapi.DecodeError{Reason: shopapi.DecodeTypeMismatch, Key: path}
		}

		// Empty arrays map to an empty sequence, never nil.
		items := make([]any, 0, len(array))

		for i, element := range array {
			coerced, err := coerce(element, shape.Elem, fmt.Sprintf("%s[%d]", path, i))
			if err != nil {
				return nil, err
			}

			items = append(items, coerced)
		}

		return items, nil

	default:
		object, ok := value.(map[string]any)
		if !ok {
			return nil, &shopapi.DecodeError{Reason: shopapi.DecodeTypeMismatch, Key: path}
		}

		fields := make(map[string]any, len(shape.Fields))

		for name, sub := range shape.Fields {
			raw, present := object[name]
			if !present {
				continue
			}

			if raw == nil {
				// JSON null is explicit absence regardless of descriptor.
				fields[name] = nil

				continue
			}

			coerced, err := coerce(raw, sub, path+"."+name)
			if err != nil {
				return nil, err
			}

			fields[name] = coerced
		}

		return fields, nil
	}
}

// Bind re-marshals a decoded generic value into a typed target. A nil
// value yields the zero target.
func Bind[T any](value any) (T, error) {
	var target T

	if value == nil {
		return target, nil
	}

	encoded, err := json.Marshal(value)
	if err != nil {
		return target, fmt.Errorf("encoding decoded value: %w", err)
	}

	if err := json.Unmarshal(encoded, &target); err != nil {
		return target, fmt.Errorf("binding decoded value: %w", err)
	}

	return target, nil
}

// unmarshal decodes JSON preserving numbers as json.Number.
func unmarshal(body []byte, target any) error {
	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.UseNumber()

	return decoder.Decode(target)
}
