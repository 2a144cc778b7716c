// Package restsource implements the retrieval source fetching the DHCP
// server configuration over the REST API of a management gateway. The
// gateway serves the configuration of the DHCP servers it manages. The
// requests are authorized with an API key.
package restsource

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	pkgerrors "github.com/pkg/errors"
)

// REST API version. This is the number being a part of the URL path,
// e.g. http://localhost:8080/api/v1, where 1 is the API version specified
// here.
const apiVersion int = 1

// Name of the header carrying the API key.
const apiKeyHeader = "X-API-Key"

// Default timeout of a single request.
const DefaultRequestTimeout = 30 * time.Second

// Sets base path for the client, e.g. /api/v1.
func setClientBasePath(baseURL string) string {
	return strings.TrimRight(baseURL, "/") + fmt.Sprintf("/api/v%d", apiVersion)
}

// A wrapper for the REST client. It is safe for concurrent use.
type client struct {
	innerClient *resty.Client
	baseURL     string
	apiKey      string
}

// Instantiates REST client sending the requests to the gateway with a
// given URL. The URL must exclude the "/api/v{n}" part.
func newClient(baseURL, apiKey string) *client {
	return &client{
		innerClient: resty.New().SetTimeout(DefaultRequestTimeout),
		baseURL:     setClientBasePath(baseURL),
		apiKey:      apiKey,
	}
}

// Appends the path segments to the base URL ensuring correct slashes. The
// segments are escaped.
func (c *client) makeURL(segments ...string) string {
	escaped := make([]string, 0, len(segments))
	for _, segment := range segments {
		segment = strings.Trim(segment, "/")
		if segment == "" {
			continue
		}
		escaped = append(escaped, url.PathEscape(segment))
	}
	if len(escaped) == 0 {
		return c.baseURL
	}
	return c.baseURL + "/" + strings.Join(escaped, "/")
}

// Makes an HTTP GET request and expects JSON payload in return. The returned
// value is unmarshalled and stored in the result. The non-success status
// code is returned as an error.
func (c *client) getJSON(ctx context.Context, result any, segments ...string) error {
	requestURL := c.makeURL(segments...)
	request := c.innerClient.R().
		SetContext(ctx).
		SetHeader(apiKeyHeader, c.apiKey).
		SetHeader("Accept", "application/json")
	if result != nil {
		request = request.SetResult(result)
	}
	response, err := request.Get(requestURL)
	if err != nil {
		return pkgerrors.WithStack(err)
	}
	if response.IsError() {
		return pkgerrors.Errorf("GET %s returned status %d: %s",
			requestURL, response.StatusCode(), strings.TrimSpace(string(response.Body())))
	}
	return nil
}
