package llm

import (
	"errors"
	"net/http"
	"strings"

	"google.golang.org/genai"
)

// IsRateLimited reports whether an error carries the provider's quota
// exhaustion signature. Structured status fields are checked first; the
// case-insensitive substring match over the rendered error is kept as a
// documented fallback for errors that lost their type along the way.
func IsRateLimited(err error) bool {
	if err == nil {
		return false
	}

	var provErr *ProviderError
	if errors.As(err, &provErr) && provErr.Status == http.StatusTooManyRequests {
		return true
	}

	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		if apiErr.Code == http.StatusTooManyRequests || strings.EqualFold(apiErr.Status, "RESOURCE_EXHAUSTED") {
			return true
		}
	}

	rendered := strings.ToLower(err.Error())
	return strings.Contains(rendered, "resource_exhausted") || strings.Contains(rendered, "429")
}

// wrapError normalizes a provider SDK failure into a ProviderError so
// callers upstream never depend on the SDK's error types.
func wrapError(err error) error {
	if err == nil {
		return nil
	}
	var provErr *ProviderError
	if errors.As(err, &provErr) {
		return err
	}
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return &ProviderError{Status: apiErr.Code, Message: apiErr.Message}
	}
	return &ProviderError{Status: http.StatusBadGateway, Message: err.Error()}
}
