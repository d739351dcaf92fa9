package adjnews

import "fmt"

// ConfigError reports an unusable client configuration discovered at
// construction time. It is not retryable; the caller must supply a
// credential and build a new client.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string { return "adjnews: " + e.Reason }

// TransportError reports a failed API round-trip. Connection errors,
// non-2xx statuses, and undecodable response bodies all surface as this
// one kind; the client never retries on its own.
type TransportError struct {
	// URL is the full request URL that failed.
	URL string
	// StatusCode is the HTTP status of the response, or 0 when the
	// failure happened before any response arrived.
	StatusCode int
	// Err is the underlying cause.
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("adjnews: GET %s: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }
