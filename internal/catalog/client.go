// Package catalog fetches set metadata from a Rebrickable-compatible REST
// API and uses it to fill gaps in collection records.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultBaseURL is the public Rebrickable API.
const DefaultBaseURL = "https://rebrickable.com/api/v3"

// ErrNotFound is returned when the catalog has no such set.
var ErrNotFound = errors.New("set not found in catalog")

// Client talks to the catalog API.
type Client struct {
	HTTP    *http.Client
	APIKey  string
	BaseURL string
}

// NewClient returns a client with a sane timeout. An empty baseURL uses
// DefaultBaseURL.
func NewClient(baseURL, apiKey string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		HTTP:    &http.Client{Timeout: 15 * time.Second},
		APIKey:  apiKey,
		BaseURL: strings.TrimRight(baseURL, "/"),
	}
}

// SetInfo is the catalog record of a set.
type SetInfo struct {
	Number   string `json:"set_num"`
	Name     string `json:"name"`
	Year     int    `json:"year"`
	ThemeID  int    `json:"theme_id"`
	NumParts int    `json:"num_parts"`
	ImageURL string `json:"set_img_url"`
}

// ThemeInfo is the catalog record of a theme.
type ThemeInfo struct {
	ID       int    `json:"id"`
	ParentID *int   `json:"parent_id"`
	Name     string `json:"name"`
}

// NormalizeNumber appends the "-1" variant suffix the catalog expects when
// the number has none.
func NormalizeNumber(number string) string {
	number = strings.TrimSpace(number)
	if number == "" || strings.Contains(number, "-") {
		return number
	}
	return number + "-1"
}

// GetSet fetches one set by number.
func (c *Client) GetSet(ctx context.Context, number string) (*SetInfo, error) {
	var info SetInfo
	path := "/lego/sets/" + url.PathEscape(NormalizeNumber(number)) + "/"
	if err := c.get(ctx, path, &info); err != nil {
		return nil, fmt.Errorf("fetching set %s: %w", number, err)
	}
	return &info, nil
}

// GetTheme fetches one theme by id.
func (c *Client) GetTheme(ctx context.Context, id int) (*ThemeInfo, error) {
	var info ThemeInfo
	if err := c.get(ctx, fmt.Sprintf("/lego/themes/%d/", id), &info); err != nil {
		return nil, fmt.Errorf("fetching theme %d: %w", id, err)
	}
	return &info, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if c.APIKey != "" {
		req.Header.Set("Authorization", "key "+c.APIKey)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}
	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode >= 400:
		return fmt.Errorf("API error (status %d): %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}
