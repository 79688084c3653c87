package client

import (
	"fmt"
	"strings"
)

// GraphQLError is one entry of the response-level errors array.
type GraphQLError struct {
	Message    string         `json:"message"`
	Path       []any          `json:"path,omitempty"`
	Extensions map[string]any `json:"extensions,omitempty"`
}

func graphQLErrorsToError(errs []GraphQLError) error {
	if len(errs) == 0 {
		return nil
	}
	msgs := make([]string, 0, len(errs))
	for _, e := range errs {
		msgs = append(msgs, e.Message)
	}
	return fmt.Errorf("commerce api: %s", strings.Join(msgs, "; "))
}

type httpStatusError struct {
	statusCode int
	status     string
	body       string
}

func (e *httpStatusError) Error() string {
	if strings.TrimSpace(e.body) == "" {
		return fmt.Sprintf("commerce api request failed: %s", e.status)
	}
	return fmt.Sprintf("commerce api request failed: %s: %s", e.status, e.body)
}

func newHTTPStatusError(statusCode int, status string, body []byte) error {
	return &httpStatusError{
		statusCode: statusCode,
		status:     status,
		body:       strings.TrimSpace(string(body)),
	}
}
