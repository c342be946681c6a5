package pb

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"sync"
	"time"
)

// Client talks to a hosted PocketBase instance over its records REST API.
// One client serves both the identity calls and the two document
// collections; the session token from sign-in/sign-up is held on the client
// and attached to every later request.
type Client struct {
	baseURL string
	hc      *http.Client

	mu    sync.Mutex
	token string
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		hc:      &http.Client{Timeout: timeout},
	}
}

// setToken sets the session token on the client.
func (c *Client) setToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

// getToken gets the session token from the client.
func (c *Client) getToken() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.token
}

// do performs one JSON round trip. A nil out discards the response body.
func (c *Client) do(ctx context.Context, method, path string, payload any, out any) error {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("do: json.Marshal: %w", err)
		}
		body = bytes.NewBuffer(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("do: http.NewRequestWithContext: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.getToken(); token != "" {
		req.Header.Set("Authorization", token)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("do: hc.Do: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return decodeAPIError(resp)
	}

	if out == nil {
		return nil
	}
	dec := json.NewDecoder(resp.Body)
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("do: json.Decode: %w", err)
	}
	return nil
}

// decodeAPIError flattens the provider's error body into a plain error
// whose message is shown to the user verbatim.
func decodeAPIError(resp *http.Response) error {
	var reply struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Data    map[string]struct {
			Message string `json:"message"`
		} `json:"data"`
	}

	rbody, _ := io.ReadAll(resp.Body)
	if err := json.Unmarshal(rbody, &reply); err != nil || reply.Message == "" {
		return fmt.Errorf("resp.StatusCode: %d, resp.Body: %s", resp.StatusCode, rbody)
	}

	// Field-level messages are more specific than the top-level one, e.g.
	// "The email is invalid or already in use" on sign-up. Fields are
	// sorted so the surfaced message is stable when several fail.
	fields := make([]string, 0, len(reply.Data))
	for field, detail := range reply.Data {
		if detail.Message != "" {
			fields = append(fields, field)
		}
	}
	if len(fields) > 0 {
		sort.Strings(fields)
		return fmt.Errorf("%s: %s", fields[0], reply.Data[fields[0]].Message)
	}
	return fmt.Errorf("%s", reply.Message)
}
