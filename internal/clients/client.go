package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// envelope is the {data, message, success} wrapper every backend
// resource responds with, except the payment endpoints.
type envelope struct {
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Success *bool           `json:"success"`
}

// APIError is an application-level rejection: a non-2xx status or a
// structurally valid body carrying success:false.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend rejected request (status %d): %s", e.StatusCode, e.Message)
}

// StoreClient bundles every backend resource the storefront talks to.
type StoreClient interface {
	CatalogClient
	ShopperClient
	OrderClient
	PaymentClient
	AdminClient
}

type storeHTTPClient struct {
	baseURL string
	client  *http.Client
	log     *logrus.Logger
}

func NewStoreHTTPClient(baseURL string, timeout time.Duration, logger *logrus.Logger) StoreClient {
	return &storeHTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout: timeout,
		},
		log: logger,
	}
}

// call issues a request against an enveloped endpoint and unmarshals the
// envelope's data into out when out is non-nil. Transport failures and
// undecodable bodies come back wrapped; application rejections come back
// as *APIError. State-changing callers rely on getting exactly one of
// these, never a partial result.
func (c *storeHTTPClient) call(ctx context.Context, method, path string, body interface{}, out interface{}) error {
	url := c.baseURL + path

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.log.Debugf("StoreClient: %s %s", method, url)
	resp, err := c.client.Do(req)
	if err != nil {
		c.log.Errorf("StoreClient: %s %s failed: %v", method, url, err)
		return fmt.Errorf("failed to reach backend: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		c.log.Errorf("StoreClient: %s %s: reading body failed: %v", method, url, err)
		return fmt.Errorf("failed to read backend response: %w", err)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		c.log.Errorf("StoreClient: %s %s: undecodable body (status %d): %v", method, url, resp.StatusCode, err)
		return fmt.Errorf("failed to decode backend response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices || (env.Success != nil && !*env.Success) {
		msg := env.Message
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		c.log.Warnf("StoreClient: %s %s rejected (status %d): %s", method, url, resp.StatusCode, msg)
		return &APIError{StatusCode: resp.StatusCode, Message: msg}
	}

	if out != nil && len(env.Data) > 0 && string(env.Data) != "null" {
		if err := json.Unmarshal(env.Data, out); err != nil {
			c.log.Errorf("StoreClient: %s %s: undecodable data field: %v", method, url, err)
			return fmt.Errorf("failed to decode backend response data: %w", err)
		}
	}
	return nil
}

// callRaw is for the payment endpoints, which exchange bare JSON with no
// envelope.
func (c *storeHTTPClient) callRaw(ctx context.Context, method, path string, body interface{}, out interface{}) error {
	url := c.baseURL + path

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.log.Debugf("StoreClient: %s %s (raw)", method, url)
	resp, err := c.client.Do(req)
	if err != nil {
		c.log.Errorf("StoreClient: %s %s failed: %v", method, url, err)
		return fmt.Errorf("failed to reach backend: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read backend response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		msg := strings.TrimSpace(string(raw))
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		c.log.Warnf("StoreClient: %s %s rejected (status %d): %s", method, url, resp.StatusCode, msg)
		return &APIError{StatusCode: resp.StatusCode, Message: msg}
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("failed to decode backend response: %w", err)
		}
	}
	return nil
}
