package shopapi

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
)

// Kind is the closed set of API failure classifications.
type Kind string

// Failure kinds, keyed off the HTTP status the platform answered with.
const (
	KindUnauthorized        Kind = "unauthorized"
	KindPaymentRequired     Kind = "payment_required"
	KindForbidden           Kind = "forbidden"
	KindNotFound            Kind = "not_found"
	KindNotAcceptable       Kind = "not_acceptable"
	KindUnprocessableEntity Kind = "unprocessable_entity"
	KindLocked              Kind = "locked"
	KindTooManyRequests     Kind = "too_many_requests"
	KindServerError         Kind = "server_error"
	KindClientError         Kind = "client_error"
)

// APIError represents a non-2xx answer from the platform, classified by
// status. The raw body is preserved so callers can inspect payloads the
// classifier did not understand.
type APIError struct {
	Status      int                 `json:"status"                 yaml:"status"`
	Kind        Kind                `json:"kind"                   yaml:"kind"`
	Detail      string              `json:"detail,omitempty"       yaml:"detail,omitempty"`
	FieldErrors map[string][]string `json:"field_errors,omitempty" yaml:"field_errors,omitempty"`
	RetryAfter  float64             `json:"retry_after,omitempty"  yaml:"retry_after,omitempty"`
	RawBody     []byte              `json:"-"                      yaml:"-"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s (status: %d)", e.Kind, e.Detail, e.Status)
	}

	return fmt.Sprintf("%s (status: %d)", e.Kind, e.Status)
}

// DecodeReason narrows why a 2xx body failed to decode.
type DecodeReason string

// Decode failure reasons.
const (
	DecodeInvalidJSON        DecodeReason = "invalid_json"
	DecodeMissingEnvelopeKey DecodeReason = "missing_envelope_key"
	DecodeTypeMismatch       DecodeReason = "type_mismatch"
)

// DecodeError reports a contract mismatch between the client's expected
// response shape and what the server actually sent. It is surfaced on 2xx
// responses only; a successful status that fails to decode is never
// silently swallowed.
type DecodeError struct {
	Reason DecodeReason
	Key    string // envelope key or field path the failure occurred at
	Err    error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	msg := fmt.Sprintf("decoding response: %s", e.Reason)
	if e.Key != "" {
		msg += fmt.Sprintf(" at %q", e.Key)
	}

	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	return msg
}

// Unwrap exposes the underlying parse error, if any.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// NetworkError wraps a transport-level failure (connection refused,
// timeout, malformed URL). These are distinct from API-level errors and
// carry no status.
type NetworkError struct {
	URL string
	Err error
}

// Error implements the error interface.
func (e *NetworkError) Error() string {
	return fmt.Sprintf("request to %s failed: %v", e.URL, e.Err)
}

// Unwrap exposes the underlying transport error.
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// Static errors that can be wrapped with context.
var (
	ErrConfigRequired      = errors.New("config is required")
	ErrStoreRequired       = errors.New("store host is required")
	ErrCredentialsRequired = errors.New("either api key/password or access token is required")
	ErrNoMoreItems         = errors.New("no more items")
)

// statusKinds is the classification table from status to failure kind.
var statusKinds = map[int]Kind{
	http.StatusUnauthorized:        KindUnauthorized,
	http.StatusPaymentRequired:     KindPaymentRequired,
	http.StatusForbidden:           KindForbidden,
	http.StatusNotFound:            KindNotFound,
	http.StatusNotAcceptable:       KindNotAcceptable,
	http.StatusUnprocessableEntity: KindUnprocessableEntity,
	http.StatusLocked:              KindLocked,
	http.StatusTooManyRequests:     KindTooManyRequests,
}

// Classify maps a non-2xx response to an APIError. Status decides the kind;
// the body is only inspected for detail, and for the field-error map on
// 422. A 422 body that fails to parse degrades to KindClientError with the
// raw body preserved.
func Classify(status int, header http.Header, body []byte) *APIError {
	apiErr := &APIError{
		Status:  status,
		RawBody: body,
	}

	switch {
	case status >= 500:
		apiErr.Kind = KindServerError
	default:
		kind, ok := statusKinds[status]
		if !ok {
			kind = KindClientError
		}

		apiErr.Kind = kind
	}

	if apiErr.Kind == KindTooManyRequests {
		if seconds, err := strconv.ParseFloat(header.Get("Retry-After"), 64); err == nil {
			apiErr.RetryAfter = seconds
		}
	}

	if apiErr.Kind == KindUnprocessableEntity {
		fieldErrors, err := parseFieldErrors(body)
		if err != nil {
			apiErr.Kind = KindClientError
			apiErr.Detail = strings.TrimSpace(string(body))

			return apiErr
		}

		apiErr.FieldErrors = fieldErrors
	}

	apiErr.Detail = extractDetail(body)

	return apiErr
}

// parseFieldErrors reads a 422 body of the form
// {"errors": {"field": ["message", ...]}} preserving messages verbatim.
func parseFieldErrors(body []byte) (map[string][]string, error) {
	var envelope struct {
		Errors map[string]json.RawMessage `json:"errors"`
	}

	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("parsing errors body: %w", err)
	}

	fieldErrors := make(map[string][]string, len(envelope.Errors))

	for field, raw := range envelope.Errors {
		var messages []string
		if err := json.Unmarshal(raw, &messages); err == nil {
			fieldErrors[field] = messages

			continue
		}

		var single string
		if err := json.Unmarshal(raw, &single); err == nil {
			fieldErrors[field] = []string{single}

			continue
		}

		fieldErrors[field] = []string{string(raw)}
	}

	return fieldErrors, nil
}

// extractDetail pulls a human-readable message out of common error body
// forms. Unparseable bodies produce the trimmed raw text.
func extractDetail(body []byte) string {
	if len(body) == 0 {
		return ""
	}

	var envelope struct {
		Errors json.RawMessage `json:"errors"`
		Error  string          `json:"error"`
	}

	if err := json.Unmarshal(body, &envelope); err != nil {
		return strings.TrimSpace(string(body))
	}

	if envelope.Error != "" {
		return envelope.Error
	}

	if len(envelope.Errors) == 0 {
		return ""
	}

	var message string
	if err := json.Unmarshal(envelope.Errors, &message); err == nil {
		return message
	}

	return strings.TrimSpace(string(envelope.Errors))
}

// IsNotFound checks whether the error is a 404 classification.
func IsNotFound(err error) bool {
	return hasKind(err, KindNotFound)
}

// IsUnauthorized checks whether the error is a 401 classification.
func IsUnauthorized(err error) bool {
	return hasKind(err, KindUnauthorized)
}

// IsForbidden checks whether the error is a 403 classification.
func IsForbidden(err error) bool {
	return hasKind(err, KindForbidden)
}

// IsRateLimited checks whether the error is a 429 classification. The
// Retry-After budget, when present, is available on the APIError itself.
func IsRateLimited(err error) bool {
	return hasKind(err, KindTooManyRequests)
}

// IsUnprocessable checks whether the error is a 422 classification with
// field errors attached.
func IsUnprocessable(err error) bool {
	return hasKind(err, KindUnprocessableEntity)
}

// IsNetworkError checks whether the error originated in the transport
// rather than the API.
func IsNetworkError(err error) bool {
	netErr := &NetworkError{}

	return errors.As(err, &netErr)
}

// IsDecodeError checks whether the error is a response-shape mismatch.
func IsDecodeError(err error) bool {
	decodeErr := &DecodeError{}

	return errors.As(err, &decodeErr)
}

func hasKind(err error, kind Kind) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.Kind == kind
	}

	return false
}
