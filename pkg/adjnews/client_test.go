package adjnews

import (
	"context"
	"errors"
	"net/url"
	"testing"

	"github.com/adjacent-hq/adjnews-go/pkg/httpclient"
)

// mockTransport records the last request and replies with a canned response.
type mockTransport struct {
	gotURL     string
	gotQuery   url.Values
	gotHeaders map[string]string
	status     int
	body       string
	err        error
}

type mockResponse struct {
	body       []byte
	statusCode int
}

func (r mockResponse) Body() []byte    { return r.body }
func (r mockResponse) StatusCode() int { return r.statusCode }

func (m *mockTransport) Get(ctx context.Context, u string, query url.Values, headers map[string]string) (httpclient.Response, error) {
	m.gotURL = u
	m.gotQuery = query
	m.gotHeaders = headers
	if m.err != nil {
		return nil, m.err
	}
	status := m.status
	if status == 0 {
		status = 200
	}
	body := m.body
	if body == "" {
		body = "{}"
	}
	return mockResponse{body: []byte(body), statusCode: status}, nil
}

func newTestClient(t *testing.T, transport *mockTransport) *Client {
	t.Helper()
	client, err := New(WithAPIKey("secret-key"), WithHTTPClient(transport))
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	return client
}

func TestNewWithExplicitKey(t *testing.T) {
	transport := &mockTransport{}
	client := newTestClient(t, transport)

	if _, err := client.ListMarkets(context.Background(), nil); err != nil {
		t.Fatalf("ListMarkets returned error: %v", err)
	}
	if got := transport.gotHeaders["Authorization"]; got != "Bearer secret-key" {
		t.Errorf("expected Authorization header Bearer secret-key, got %q", got)
	}
	if got := transport.gotHeaders["Accept"]; got != "application/json" {
		t.Errorf("expected Accept header application/json, got %q", got)
	}
}

func TestNewFallsBackToEnv(t *testing.T) {
	t.Setenv(EnvAPIKey, "env-key")

	transport := &mockTransport{}
	client, err := New(WithHTTPClient(transport))
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if _, err := client.ListMarkets(context.Background(), nil); err != nil {
		t.Fatalf("ListMarkets returned error: %v", err)
	}
	if got := transport.gotHeaders["Authorization"]; got != "Bearer env-key" {
		t.Errorf("expected Authorization header Bearer env-key, got %q", got)
	}
}

func TestNewExplicitKeyWinsOverEnv(t *testing.T) {
	t.Setenv(EnvAPIKey, "env-key")

	transport := &mockTransport{}
	client, err := New(WithAPIKey("explicit-key"), WithHTTPClient(transport))
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if _, err := client.SemanticSearch(context.Background(), "anything", nil); err != nil {
		t.Fatalf("SemanticSearch returned error: %v", err)
	}
	if got := transport.gotHeaders["Authorization"]; got != "Bearer explicit-key" {
		t.Errorf("expected explicit key to win, got %q", got)
	}
}

func TestNewWithoutCredentialFails(t *testing.T) {
	t.Setenv(EnvAPIKey, "")

	_, err := New()
	if err == nil {
		t.Fatal("expected error when no credential is available")
	}
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected *ConfigError, got %T: %v", err, err)
	}
}

func TestNewWhitespaceCredentialFails(t *testing.T) {
	t.Setenv(EnvAPIKey, "   ")

	_, err := New(WithAPIKey("  "))
	if err == nil {
		t.Fatal("expected error for whitespace-only credentials")
	}
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected *ConfigError, got %T: %v", err, err)
	}
}
