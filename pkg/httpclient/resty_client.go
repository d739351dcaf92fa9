package httpclient

import (
	"context"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
)

// DefaultTimeout bounds each request when callers do not pick their own.
const DefaultTimeout = 15 * time.Second

// RestyClient adapts resty.Client to the httpclient.Client interface.
type RestyClient struct {
	client *resty.Client
}

// NewRestyClient creates a new RestyClient with the specified timeout.
// A non-positive timeout falls back to DefaultTimeout.
func NewRestyClient(timeout time.Duration) *RestyClient {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	c := resty.New()
	c.SetTimeout(timeout)
	return &RestyClient{client: c}
}

// Get performs an HTTP GET request with the specified context, URL, query, and headers.
func (r *RestyClient) Get(ctx context.Context, url string, query url.Values, headers map[string]string) (Response, error) {
	req := r.client.R().SetContext(ctx)
	if len(query) > 0 {
		req.SetQueryParamsFromValues(query)
	}
	if len(headers) > 0 {
		req.SetHeaders(headers)
	}
	resp, err := req.Get(url)
	if err != nil {
		return nil, err
	}
	return &restyResponseAdapter{resp: resp}, nil
}

// restyResponseAdapter adapts resty.Response to the httpclient.Response interface.
type restyResponseAdapter struct {
	resp *resty.Response
}

func (r *restyResponseAdapter) Body() []byte    { return r.resp.Body() }
func (r *restyResponseAdapter) StatusCode() int { return r.resp.StatusCode() }
