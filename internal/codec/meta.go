package codec

import (
	nethttp "net/http"
	"strconv"
	"strings"

	"github.com/merchkit-io/shopapi-client/internal/constants"
	"github.com/merchkit-io/shopapi-client/pkg/shopapi"
)

// ExtractMeta derives rate-limit and pagination metadata from response
// headers. Pure over the header map; malformed or absent headers yield
// absent fields, never an error.
func ExtractMeta(headers nethttp.Header) shopapi.Meta {
	return shopapi.Meta{
		RateLimit: parseCallLimit(headers.Get(constants.HeaderCallLimit)),
		Page:      parseLinkHeader(headers.Get(constants.HeaderLink)),
	}
}

// parseCallLimit reads the documented "used/total" form.
func parseCallLimit(value string) *shopapi.RateLimit {
	used, total, found := strings.Cut(strings.TrimSpace(value), "/")
	if !found {
		return nil
	}

	usedN, err := strconv.Atoi(strings.TrimSpace(used))
	if err != nil {
		return nil
	}

	totalN, err := strconv.Atoi(strings.TrimSpace(total))
	if err != nil {
		return nil
	}

	return &shopapi.RateLimit{Used: usedN, Total: totalN}
}

// parseLinkHeader reads comma-separated `<url>; rel="x"` segments per the
// standard Link-header syntax, keeping the next/previous relations.
func parseLinkHeader(value string) *shopapi.Page {
	if value == "" {
		return nil
	}

	page := &shopapi.Page{}

	for _, segment := range strings.Split(value, ",") {
		url, rel, ok := parseLinkSegment(segment)
		if !ok {
			continue
		}

		switch rel {
		case "next":
			page.Next = url
		case "previous", "prev":
			page.Previous = url
		}
	}

	if page.Next == "" && page.Previous == "" {
		return nil
	}

	return page
}

// parseLinkSegment splits one `<url>; rel="x"` segment.
func parseLinkSegment(segment string) (url, rel string, ok bool) {
	parts := strings.Split(segment, ";")
	if len(parts) < 2 {
		return "", "", false
	}

	url = strings.TrimSpace(parts[0])
	if !strings.HasPrefix(url, "<") || !strings.HasSuffix(url, ">") {
		return "", "", false
	}

	url = strings.TrimSuffix(strings.TrimPrefix(url, "<"), ">")

	for _, param := range parts[1:] {
		name, value, found := strings.Cut(strings.TrimSpace(param), "=")
		if !found || strings.TrimSpace(name) != "rel" {
			continue
		}

		return url, strings.Trim(strings.TrimSpace(value), `"`), true
	}

	return "", "", false
}
