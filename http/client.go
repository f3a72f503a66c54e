package http

import (
	"context"
	"net/http"

	"github.com/fwojciec/searchdrop"
	"github.com/google/uuid"
)

// RequestIDHeader carries a per-request ID so operators can match client
// logs with backend logs.
const RequestIDHeader = "X-Request-Id"

// get issues a GET for url accepting the given media type. Transport
// failures and non-2xx responses return EUNAVAILABLE. On success the caller
// must close the response body.
func get(ctx context.Context, client *http.Client, url, accept string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, searchdrop.Errorf(searchdrop.EINVALID, "invalid URL %q: %v", url, err)
	}
	req.Header.Set("Accept", accept)
	req.Header.Set(RequestIDHeader, uuid.NewString())

	resp, err := client.Do(req)
	if err != nil {
		return nil, searchdrop.Errorf(searchdrop.EUNAVAILABLE, "request to %s failed: %v", url, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		resp.Body.Close()
		return nil, searchdrop.Errorf(searchdrop.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, url)
	}
	return resp, nil
}
