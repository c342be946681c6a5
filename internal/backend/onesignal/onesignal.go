package onesignal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"evently/internal/status"
	"evently/models"
	"evently/monitoring"
)

type Config struct {
	BaseURL string
	AppID   string
	APIKey  string
}

// Client fires push notifications through the OneSignal REST API. Callers
// treat the send as a side effect off the critical path: failures are
// logged, never retried, never shown.
type Client struct {
	baseURL string
	appID   string
	apiKey  string
	hc      *http.Client
}

func New(cfg *Config, timeout time.Duration) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		appID:   cfg.AppID,
		apiKey:  cfg.APIKey,
		hc:      &http.Client{Timeout: timeout},
	}
}

type notifyReq struct {
	AppID            string            `json:"app_id"`
	IncludedSegments []string          `json:"included_segments,omitempty"`
	ExternalUserIDs  []string          `json:"include_external_user_ids,omitempty"`
	Headings         map[string]string `json:"headings"`
	Contents         map[string]string `json:"contents"`
	BigPicture       string            `json:"big_picture,omitempty"`
}

// Notify performs the single POST. Delivery is not awaited beyond the HTTP
// response; a non-2xx body is folded into the returned error.
func (c *Client) Notify(ctx context.Context, n *models.Notification) (err error) {
	start := time.Now()
	defer func() { monitoring.ObserveRequest("push", "notify", start, err) }()

	b, err := json.Marshal(&notifyReq{
		AppID:            c.appID,
		IncludedSegments: n.Segments,
		ExternalUserIDs:  n.ExternalUserIDs,
		Headings:         map[string]string{"en": n.Title},
		Contents:         map[string]string{"en": n.Body},
		BigPicture:       n.BigPicture,
	})
	if err != nil {
		return &status.NotifyError{Err: fmt.Errorf("notify: json.Marshal: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/v1/notifications", bytes.NewBuffer(b))
	if err != nil {
		return &status.NotifyError{Err: fmt.Errorf("notify: http.NewRequestWithContext: %w", err)}
	}
	req.Header.Set("Authorization", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		return &status.NotifyError{Err: fmt.Errorf("notify: hc.Do: %w", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		rbody, _ := io.ReadAll(resp.Body)
		return &status.NotifyError{Err: fmt.Errorf("notify: resp.StatusCode: %d, resp.Body: %s", resp.StatusCode, rbody)}
	}
	return nil
}
