//go:build integration
// +build integration

package integration

import (
	"io"
	"net/http"
	"os"
	"strings"
	"testing"
)

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func baseURL() string {
	return envOrDefault("INTEGRATION_BASE_URL", "http://localhost:8080")
}

func do(t *testing.T, method, path, body string) (int, string) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, baseURL()+path, reader)
	if err != nil {
		t.Fatalf("build request %s %s: %v", method, path, err)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request %s %s failed: %v", method, path, err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read response %s %s: %v", method, path, err)
	}
	return resp.StatusCode, string(payload)
}

func mustSucceed(t *testing.T, method, path, body string) string {
	t.Helper()
	_, payload := do(t, method, path, body)
	if !strings.Contains(payload, `"status":"success"`) {
		t.Fatalf("%s %s missing success marker: %s", method, path, payload)
	}
	return payload
}
