package translation

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNoAPIKey is returned when the client was built without a token
	ErrNoAPIKey = errors.New("translation API key not configured")

	// ErrNoTranslation is returned when a successful response holds no
	// translations
	ErrNoTranslation = errors.New("no translation returned")
)

// HTTPError reports a non-success status from the translation endpoint
type HTTPError struct {
	StatusCode int
	// Message is the provider's error message when the body carried one
	Message string
	Body    string
}

func (e *HTTPError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("translation request failed with status code %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("translation request failed with status code %d", e.StatusCode)
}

// ErrorDetail is one entry of the provider's error list
type ErrorDetail struct {
	Message string `json:"message"`
	Domain  string `json:"domain"`
	Reason  string `json:"reason"`
}

// APIError is an error object reported by the provider inside a response
// that otherwise succeeded at the HTTP level
type APIError struct {
	Code    int           `json:"code"`
	Message string        `json:"message"`
	Status  string        `json:"status"`
	Details []ErrorDetail `json:"errors"`
}

func (e *APIError) Error() string {
	var b strings.Builder
	b.WriteString("translation API error")
	if e.Code != 0 {
		fmt.Fprintf(&b, " %d", e.Code)
	}
	if e.Status != "" {
		fmt.Fprintf(&b, " (%s)", e.Status)
	}
	if e.Message != "" {
		fmt.Fprintf(&b, ": %s", e.Message)
	}
	return b.String()
}
