package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/vyapardesk/billing-api/internal/models"
)

// SMSClient posts messages to the configured SMS gateway. It is only ever
// called after a voucher has committed: send failures are logged by the
// caller and never affect the voucher.
type SMSClient struct {
	cfg    models.SMSConfig
	client *http.Client
}

func NewSMSClient(cfg models.SMSConfig) *SMSClient {
	return &SMSClient{
		cfg:    cfg,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

// Enabled reports whether a gateway is configured at all.
func (c *SMSClient) Enabled() bool {
	return c.cfg.Endpoint != ""
}

// Send delivers one message to one mobile number.
func (c *SMSClient) Send(ctx context.Context, mobile, message string) error {
	if !c.Enabled() {
		return nil
	}

	payload, err := json.Marshal(map[string]string{
		"to":      mobile,
		"from":    c.cfg.Sender,
		"message": message,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("sms gateway returned status %d", resp.StatusCode)
	}
	return nil
}
