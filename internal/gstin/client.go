package gstin

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/vyapardesk/billing-api/internal/models"
)

// Client proxies GSTIN lookups to the configured third-party service.
type Client struct {
	cfg    models.GSTConfig
	client *http.Client
}

func NewClient(cfg models.GSTConfig) *Client {
	return &Client{
		cfg:    cfg,
		client: &http.Client{Timeout: 15 * time.Second},
	}
}

// Lookup fetches the registration details for a GSTIN and returns the raw
// JSON document from the upstream service.
func (c *Client) Lookup(ctx context.Context, gstinNo string) (map[string]interface{}, error) {
	if c.cfg.BaseURL == "" {
		return nil, fmt.Errorf("gst lookup service is not configured")
	}

	endpoint := fmt.Sprintf("%s/%s", c.cfg.BaseURL, url.PathEscape(gstinNo))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	if c.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gst lookup failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("gst lookup returned status %d", resp.StatusCode)
	}

	var doc map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode gst response failed: %w", err)
	}
	return doc, nil
}
