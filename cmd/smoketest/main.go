// Command smoketest drives the API through its full surface and aborts on the
// first response that does not carry the success marker. It is intentionally
// primitive: sequential requests, substring matching, exit status 1 on the
// first mismatch, no retries and no cleanup.
package main

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const successMarker = `"status":"success"`

type step struct {
	name   string
	method string
	path   string
	body   string
}

func main() {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	baseURL := os.Getenv("SMOKETEST_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}
	baseURL = strings.TrimSuffix(baseURL, "/")

	steps := []step{
		{"health check", http.MethodGet, "/health", ""},
		{"database check", http.MethodGet, "/db-check", ""},
		{"reset boxers", http.MethodPost, "/clear-boxers", ""},
		{"add boxer Ali", http.MethodPost, "/add-boxer",
			`{"name":"Muhammad Ali","weight":210,"height":75,"reach":78.0,"age":30}`},
		{"add boxer Tyson", http.MethodPost, "/add-boxer",
			`{"name":"Mike Tyson","weight":220,"height":70,"reach":71.0,"age":28}`},
		{"add boxer Robinson", http.MethodPost, "/add-boxer",
			`{"name":"Sugar Ray Robinson","weight":160,"height":72,"reach":73.5,"age":25}`},
		{"get boxer by id", http.MethodGet, "/get-boxer-by-id/1", ""},
		{"get boxer by name", http.MethodGet, "/get-boxer-by-name/Mike Tyson", ""},
		{"delete boxer", http.MethodDelete, "/delete-boxer/3", ""},
		{"enter ring Ali", http.MethodPost, "/enter-ring", `{"name":"Muhammad Ali"}`},
		{"enter ring Tyson", http.MethodPost, "/enter-ring", `{"name":"Mike Tyson"}`},
		{"list ring", http.MethodGet, "/get-boxers", ""},
		{"fight", http.MethodGet, "/fight", ""},
		{"leaderboard by wins", http.MethodGet, "/leaderboard?sort=wins", ""},
		{"leaderboard by win pct", http.MethodGet, "/leaderboard?sort=win_pct", ""},
		{"final reset", http.MethodPost, "/clear-boxers", ""},
	}

	client := http.DefaultClient

	for _, s := range steps {
		runStep(client, baseURL, s)
	}

	log.Info().Int("steps", len(steps)).Msg("smoke test passed")
}

func runStep(client *http.Client, baseURL string, s step) {
	var body io.Reader
	if s.body != "" {
		body = strings.NewReader(s.body)
	}

	req, err := http.NewRequest(s.method, baseURL+s.path, body)
	if err != nil {
		fail(s, fmt.Sprintf("build request: %v", err))
	}
	if s.body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := client.Do(req)
	if err != nil {
		fail(s, fmt.Sprintf("request failed: %v", err))
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		fail(s, fmt.Sprintf("read response: %v", err))
	}

	if !bytes.Contains(payload, []byte(successMarker)) {
		fail(s, fmt.Sprintf("status %d, body: %s", resp.StatusCode, payload))
	}

	log.Info().Str("step", s.name).Msg("ok")
}

func fail(s step, detail string) {
	log.Error().Str("step", s.name).Str("path", s.path).Msg(detail)
	os.Exit(1)
}
