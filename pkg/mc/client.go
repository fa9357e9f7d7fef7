package mc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/x1thexxx/mcsync/pkg/config"
	"github.com/x1thexxx/mcsync/pkg/inventory"
	"github.com/x1thexxx/mcsync/pkg/logging"
)

// Client talks to the Maintenance Connection v8 REST API. Credentials
// are fixed at construction and reused for every call; the client keeps
// no other state, so concurrent use needs no coordination.
type Client struct {
	cfg        config.MCConfig
	baseURL    string
	httpClient *http.Client
	log        *logging.Logger
}

// NewClient builds a v8 client from configuration.
func NewClient(cfg config.MCConfig, log *logging.Logger) *Client {
	return &Client{
		cfg:        cfg,
		baseURL:    fmt.Sprintf("http://%s/v8/", strings.TrimSpace(cfg.Server)),
		httpClient: &http.Client{},
		log:        log,
	}
}

// Fetch runs the query and normalizes every result onto the fixed
// record schema.
func (c *Client) Fetch(ctx context.Context, q Query) ([]inventory.Record, error) {
	results, err := c.get(ctx, q)
	if err != nil {
		return nil, err
	}
	return inventory.NormalizeAll(results), nil
}

// FetchRaw runs the query and returns the Results array unmodified.
func (c *Client) FetchRaw(ctx context.Context, q Query) ([]map[string]any, error) {
	return c.get(ctx, q)
}

func (c *Client) get(ctx context.Context, q Query) ([]map[string]any, error) {
	if c.cfg.Server == "" {
		return nil, fmt.Errorf("mc server not configured")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+q.Module+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.SetBasicAuth(c.cfg.User, c.cfg.Password)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 300 {
		c.log.Infof("connection successful, status %d", resp.StatusCode)
	} else {
		c.log.Warnf("connection not successful, status %d", resp.StatusCode)
	}
	// A failed response is still parsed: the endpoint reports some
	// errors with a JSON body, and callers inspect the error text for
	// the status when Results is missing.
	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode response (status %d): %w", resp.StatusCode, err)
	}
	raw, ok := body["Results"]
	if !ok {
		return nil, fmt.Errorf("results missing from response (status %d)", resp.StatusCode)
	}
	items, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("results not a collection (status %d)", resp.StatusCode)
	}
	results := make([]map[string]any, 0, len(items))
	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("result entry is not an object")
		}
		results = append(results, obj)
	}
	return results, nil
}

// Create POSTs a batch of new records to the module. The remote API
// validates required fields (ID, Name, ParentRef, ClassificationRef)
// itself; its response body is returned verbatim.
func (c *Client) Create(ctx context.Context, module string, records []inventory.Record) (json.RawMessage, error) {
	return c.send(ctx, http.MethodPost, module, records, "added")
}

// Update PUTs a batch of existing records to the module. Each record
// must carry the PK obtained from a prior fetch; the client does not
// pre-validate, the remote response reports per-record failures.
func (c *Client) Update(ctx context.Context, module string, records []inventory.Record) (json.RawMessage, error) {
	return c.send(ctx, http.MethodPut, module, records, "updated")
}

func (c *Client) send(ctx context.Context, method, module string, records []inventory.Record, verb string) (json.RawMessage, error) {
	if c.cfg.Server == "" {
		return nil, fmt.Errorf("mc server not configured")
	}
	body, err := json.Marshal(records)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+module, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.SetBasicAuth(c.cfg.User, c.cfg.Password)
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 300 {
		c.log.Infof("connection successful, status %d: the %s has been %s", resp.StatusCode, singular(module), verb)
	} else {
		c.log.Warnf("connection not successful, status %d", resp.StatusCode)
	}
	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response (status %d): %w", resp.StatusCode, err)
	}
	return json.RawMessage(payload), nil
}

func singular(module string) string {
	return strings.TrimSuffix(module, "s")
}
