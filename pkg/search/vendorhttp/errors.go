// Package vendorhttp provides shared error mapping for search adapters
// that call JSON-over-HTTP vendor APIs.
package vendorhttp

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"websearch-mcp/pkg/api"
)

// MapHTTPError converts a non-2xx vendor response into a classified
// provider failure. It attempts to extract a descriptive message from the
// response body.
func MapHTTPError(resp *http.Response) error {
	kind := api.ClassifyHTTPStatus(resp.StatusCode)

	message := ExtractErrorMessage(resp.Body)
	if message == "" {
		message = fmt.Sprintf("vendor returned status %d", resp.StatusCode)
	} else {
		message = fmt.Sprintf("vendor returned status %d: %s", resp.StatusCode, message)
	}

	return api.NewProviderFailure(kind, fmt.Errorf("%s", message))
}

// ExtractErrorMessage probes common JSON error response shapes and returns
// the first human-readable message found, or "" if none. It reads at most
// 4 KiB of the body.
func ExtractErrorMessage(body io.Reader) string {
	if body == nil {
		return ""
	}

	data, err := io.ReadAll(io.LimitReader(body, 4096))
	if err != nil || len(data) == 0 {
		return ""
	}

	var obj map[string]any
	if json.Unmarshal(data, &obj) != nil {
		return ""
	}

	for _, key := range []string{"error", "message", "detail"} {
		v, ok := obj[key]
		if !ok {
			continue
		}
		switch val := v.(type) {
		case string:
			return val
		case map[string]any:
			if msg, ok := val["message"].(string); ok {
				return msg
			}
		}
	}

	return ""
}
