package airtable

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/portfolio-iw/api/internal/core/domain"
)

const defaultBaseURL = "https://api.airtable.com/v0"

// Config holds the credentials and endpoint for one Airtable base.
type Config struct {
	APIKey string
	BaseID string
	// BaseURL overrides the Airtable endpoint, used by tests.
	BaseURL string
	// Timeout bounds every outbound call. Requests past it fail as store
	// errors; nothing is retried.
	Timeout time.Duration
}

// Client is a thin wrapper over the Airtable REST API. It owns no business
// rules, only record plumbing.
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

func NewClient(cfg Config) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		apiKey:  cfg.APIKey,
		baseURL: strings.TrimRight(baseURL, "/") + "/" + cfg.BaseID,
		http:    &http.Client{Timeout: timeout},
	}
}

// Record is a raw store record: opaque id plus untyped fields.
type Record struct {
	ID     string         `json:"id"`
	Fields map[string]any `json:"fields"`
}

type recordPage struct {
	Records []*Record `json:"records"`
	Offset  string    `json:"offset"`
}

// ListRecords fetches every record matching the formula (all records when the
// formula is empty), following offset pagination to the end.
func (c *Client) ListRecords(ctx context.Context, table, formula string) ([]*Record, error) {
	var records []*Record
	offset := ""

	for {
		query := url.Values{}
		if formula != "" {
			query.Set("filterByFormula", formula)
		}
		if offset != "" {
			query.Set("offset", offset)
		}

		endpoint := c.baseURL + "/" + url.PathEscape(table)
		if len(query) > 0 {
			endpoint += "?" + query.Encode()
		}

		var page recordPage
		if err := c.do(ctx, http.MethodGet, endpoint, nil, &page); err != nil {
			return nil, err
		}

		records = append(records, page.Records...)
		if page.Offset == "" {
			return records, nil
		}
		offset = page.Offset
	}
}

// GetRecord fetches one record by id, returning (nil, nil) when the store
// reports it missing.
func (c *Client) GetRecord(ctx context.Context, table, id string) (*Record, error) {
	endpoint := c.baseURL + "/" + url.PathEscape(table) + "/" + url.PathEscape(id)

	var record Record
	err := c.do(ctx, http.MethodGet, endpoint, nil, &record)
	if err != nil {
		var status *statusError
		if errors.As(err, &status) && status.code == http.StatusNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

func (c *Client) CreateRecord(ctx context.Context, table string, fields map[string]any) (*Record, error) {
	endpoint := c.baseURL + "/" + url.PathEscape(table)

	var record Record
	if err := c.do(ctx, http.MethodPost, endpoint, map[string]any{"fields": fields}, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

// UpdateRecord patches only the given fields; everything else keeps its value.
func (c *Client) UpdateRecord(ctx context.Context, table, id string, fields map[string]any) (*Record, error) {
	endpoint := c.baseURL + "/" + url.PathEscape(table) + "/" + url.PathEscape(id)

	var record Record
	if err := c.do(ctx, http.MethodPatch, endpoint, map[string]any{"fields": fields}, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

func (c *Client) DeleteRecord(ctx context.Context, table, id string) error {
	endpoint := c.baseURL + "/" + url.PathEscape(table) + "/" + url.PathEscape(id)
	return c.do(ctx, http.MethodDelete, endpoint, nil, nil)
}

func (c *Client) do(ctx context.Context, method, endpoint string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &statusError{
			code:   resp.StatusCode,
			detail: strings.TrimSpace(string(detail)),
		}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// statusError is a non-2xx store reply. It unwraps to ErrStoreUnavailable so
// callers can treat any store failure uniformly.
type statusError struct {
	code   int
	detail string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("record store returned status %d: %s", e.code, e.detail)
}

func (e *statusError) Unwrap() error { return domain.ErrStoreUnavailable }

// escapeFormulaValue makes a string safe to embed in a filterByFormula string
// literal.
func escapeFormulaValue(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `"`, `\"`)
}
