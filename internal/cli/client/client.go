package client

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/cloudwego/hertz/pkg/app/client"
	"github.com/cloudwego/hertz/pkg/network/standard"
	"github.com/cloudwego/hertz/pkg/protocol"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"github.com/tiw/gaap-web-service/internal/cli/types"
)

// APIClient wraps a Hertz client for HTTP communication with the taxonomy
// API server.
type APIClient struct {
	client *client.Client
	server string
}

// NewAPIClient creates a new API client
func NewAPIClient(server string) (*APIClient, error) {
	normalizedServer, err := normalizeServerURL(server)
	if err != nil {
		return nil, fmt.Errorf("invalid server URL: %w", err)
	}

	c, err := client.NewClient(
		client.WithDialTimeout(10*time.Second),
		client.WithMaxIdleConnDuration(60*time.Second),
		client.WithDialer(standard.NewDialer()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP client: %w", err)
	}

	return &APIClient{
		client: c,
		server: normalizedServer,
	}, nil
}

// normalizeServerURL ensures the server address has a scheme and no
// trailing path.
func normalizeServerURL(server string) (string, error) {
	if !strings.Contains(server, "://") {
		server = "http://" + server
	}

	u, err := url.Parse(server)
	if err != nil || u.Host == "" {
		return "", fmt.Errorf("invalid server URL")
	}

	return fmt.Sprintf("%s://%s", u.Scheme, u.Host), nil
}

// ListElements fetches one page of element names
func (c *APIClient) ListElements(ctx context.Context, skip, limit int) (*types.ElementList, error) {
	uri := fmt.Sprintf("%s%s?skip=%d&limit=%d", c.server, endpointElements, skip, limit)

	var list types.ElementList
	if err := c.getJSON(ctx, uri, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// GetElement fetches the full resolution of one element
func (c *APIClient) GetElement(ctx context.Context, name string) (*types.ElementInfo, error) {
	uri := c.server + fmt.Sprintf(endpointElementByName, url.PathEscape(name))

	var info types.ElementInfo
	if err := c.getJSON(ctx, uri, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// SearchElements fetches one page of keyword matches
func (c *APIClient) SearchElements(ctx context.Context, keyword string, skip, limit int) (*types.SearchResult, error) {
	uri := fmt.Sprintf("%s%s?keyword=%s&skip=%d&limit=%d",
		c.server, endpointSearch, url.QueryEscape(keyword), skip, limit)

	var result types.SearchResult
	if err := c.getJSON(ctx, uri, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// getJSON performs a GET request and unmarshals the response body,
// converting error bodies into Go errors.
func (c *APIClient) getJSON(ctx context.Context, uri string, out interface{}) error {
	req := protocol.AcquireRequest()
	resp := protocol.AcquireResponse()
	defer func() {
		protocol.ReleaseRequest(req)
		protocol.ReleaseResponse(resp)
	}()

	req.SetMethod(consts.MethodGet)
	req.SetRequestURI(uri)

	if err := c.client.Do(ctx, req, resp); err != nil {
		return fmt.Errorf("request failed: %w", err)
	}

	if resp.StatusCode() != consts.StatusOK {
		var apiErr types.APIError
		if err := sonic.Unmarshal(resp.Body(), &apiErr); err == nil && apiErr.Message != "" {
			return fmt.Errorf("%s (HTTP %d)", apiErr.Message, resp.StatusCode())
		}
		return fmt.Errorf("request failed with HTTP status %d", resp.StatusCode())
	}

	if err := sonic.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}
	return nil
}
