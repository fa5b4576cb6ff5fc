package external

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// RandomOrgClient draws decimal fractions from random.org (no API key).
type RandomOrgClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewRandomOrgClient(baseURL string, httpClient *http.Client) *RandomOrgClient {
	if baseURL == "" {
		baseURL = "https://www.random.org"
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 3 * time.Second}
	}
	return &RandomOrgClient{
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

// Float64 fetches a single uniform number in [0, 1). The plain-text endpoint
// returns one fraction per line.
func (c *RandomOrgClient) Float64(ctx context.Context) (float64, error) {
	url := fmt.Sprintf("%s/decimal-fractions/?num=1&dec=8&col=1&format=plain&rnd=new", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return 0, fmt.Errorf("random.org non-200: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 64))
	if err != nil {
		return 0, err
	}

	value, err := strconv.ParseFloat(strings.TrimSpace(string(body)), 64)
	if err != nil {
		return 0, fmt.Errorf("random.org payload %q: %w", strings.TrimSpace(string(body)), err)
	}
	if value < 0 || value >= 1 {
		return 0, fmt.Errorf("random.org value out of range: %f", value)
	}
	return value, nil
}
