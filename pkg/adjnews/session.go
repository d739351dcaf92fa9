package adjnews

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/adjacent-hq/adjnews-go/pkg/httpclient"
	"go.uber.org/zap"
)

// session holds the immutable default headers and performs authenticated
// GET requests against the configured base URL.
type session struct {
	http    httpclient.Client
	baseURL string
	headers map[string]string
	log     *zap.SugaredLogger
}

func newSession(apiKey, baseURL string, client httpclient.Client, log *zap.SugaredLogger) *session {
	return &session{
		http:    client,
		baseURL: baseURL,
		headers: map[string]string{
			"Authorization": "Bearer " + apiKey,
			"Accept":        "application/json",
		},
		log: log,
	}
}

// joinURL joins base and path with exactly one separating slash.
func joinURL(base, path string) string {
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(path, "/")
}

// get performs one GET round-trip and decodes the JSON body. Any failure
// (connection, non-2xx status, undecodable body) returns a *TransportError
// carrying the request URL; no partial payload is ever returned.
func (s *session) get(ctx context.Context, path string, query url.Values) (any, error) {
	u := joinURL(s.baseURL, path)
	s.log.Debugw("api request", "url", u, "query", query.Encode())

	resp, err := s.http.Get(ctx, u, query, s.headers)
	if err != nil {
		return nil, &TransportError{URL: u, Err: err}
	}

	status := resp.StatusCode()
	body := resp.Body()
	if status < 200 || status > 299 {
		return nil, &TransportError{
			URL:        u,
			StatusCode: status,
			Err:        fmt.Errorf("unexpected status %d body: %s", status, responseSnippet(body)),
		}
	}

	var payload any
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, &TransportError{
			URL:        u,
			StatusCode: status,
			Err:        fmt.Errorf("decode response: %w", err),
		}
	}
	return payload, nil
}

func responseSnippet(body []byte) string {
	const maxLen = 512
	s := strings.TrimSpace(string(body))
	if len(s) > maxLen {
		return s[:maxLen] + "..."
	}
	if s == "" {
		return "<empty>"
	}
	return s
}
