// Command test runs smoke checks against a running planner.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// smoke holds what every check needs to reach the server.
type smoke struct {
	baseURL string
	client  *http.Client
	profile map[string]any
	verbose bool
}

type check struct {
	name string
	run  func(ctx context.Context) error
}

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "Base URL of the agent")
	only := flag.String("test", "all", "Comma-separated checks to run: health, agent-card, api, a2a, or all")
	profilePath := flag.String("profile", "", "Student profile JSON file (default: built-in sample)")
	verbose := flag.Bool("v", false, "Print the A2A report summary")
	flag.Parse()

	profile, err := loadProfile(*profilePath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	s := &smoke{
		baseURL: strings.TrimRight(*baseURL, "/"),
		// Report generation is a single long model call.
		client:  &http.Client{Timeout: 3 * time.Minute},
		profile: profile,
		verbose: *verbose,
	}

	checks, err := s.selectChecks(*only)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	fmt.Printf("smoke checks against %s\n", s.baseURL)
	failed := 0
	for _, c := range checks {
		start := time.Now()
		if err := c.run(context.Background()); err != nil {
			failed++
			fmt.Printf("FAIL  %-10s %v\n", c.name, err)
			continue
		}
		fmt.Printf("ok    %-10s %s\n", c.name, time.Since(start).Round(time.Millisecond))
	}
	fmt.Printf("%d passed, %d failed\n", len(checks)-failed, failed)
	if failed > 0 {
		os.Exit(1)
	}
}

func (s *smoke) checks() []check {
	return []check{
		{"health", s.checkHealth},
		{"agent-card", s.checkAgentCard},
		{"api", s.checkAPIReport},
		{"a2a", s.checkA2AReport},
	}
}

func (s *smoke) selectChecks(only string) ([]check, error) {
	all := s.checks()
	if only == "" || only == "all" {
		return all, nil
	}

	var out []check
	for _, name := range strings.Split(only, ",") {
		name = strings.TrimSpace(name)
		found := false
		for _, c := range all {
			if c.name == name {
				out = append(out, c)
				found = true
			}
		}
		if !found {
			return nil, fmt.Errorf("unknown check %q (available: health, agent-card, api, a2a)", name)
		}
	}
	return out, nil
}

func loadProfile(path string) (map[string]any, error) {
	if path == "" {
		return sampleProfile(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile: %w", err)
	}
	var profile map[string]any
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("invalid profile JSON: %w", err)
	}
	return profile, nil
}

func sampleProfile() map[string]any {
	return map[string]any{
		"name":             "李明",
		"phone":            "13800000000",
		"school":           "上海财经大学",
		"major":            "金融学",
		"grade":            "大二",
		"skills":           []string{"Python", "Excel"},
		"mbti":             "INTJ",
		"parentOccupation": "非财经相关-企业职员",
		"expectedCity":     "上海",
		"academicGoal":     "直接就业",
		"employmentGoals":  []string{"券商 (投行/行研)", "公募基金"},
	}
}

// call sends body as JSON when non-nil and returns the response body of a 200.
func (s *smoke) call(ctx context.Context, method, path string, body any) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, s.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s %s: status %d: %s", method, path, resp.StatusCode, snippet(data))
	}
	return data, nil
}

func (s *smoke) callJSON(ctx context.Context, method, path string, body, out any) error {
	data, err := s.call(ctx, method, path, body)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%s %s: invalid JSON: %w", method, path, err)
	}
	return nil
}

func (s *smoke) checkHealth(ctx context.Context) error {
	data, err := s.call(ctx, http.MethodGet, "/health", nil)
	if err != nil {
		return err
	}
	if got := string(data); got != "OK" {
		return fmt.Errorf("unexpected health body %q", got)
	}
	return nil
}

func (s *smoke) checkAgentCard(ctx context.Context) error {
	var card struct {
		Name      string            `json:"name"`
		URL       string            `json:"url"`
		Skills    []json.RawMessage `json:"skills"`
		Endpoints map[string]string `json:"endpoints"`
	}
	if err := s.callJSON(ctx, http.MethodGet, "/.well-known/agent.json", nil, &card); err != nil {
		return err
	}
	switch {
	case card.Name == "":
		return fmt.Errorf("agent card has no name")
	case len(card.Skills) == 0:
		return fmt.Errorf("agent card lists no skills")
	case card.Endpoints["a2a"] != card.URL:
		return fmt.Errorf("a2a endpoint %q does not match card url %q", card.Endpoints["a2a"], card.URL)
	}
	return nil
}

func (s *smoke) checkAPIReport(ctx context.Context) error {
	var report map[string]any
	if err := s.callJSON(ctx, http.MethodPost, "/api/reports", s.profile, &report); err != nil {
		return err
	}
	return missingReportKey(report)
}

func (s *smoke) checkA2AReport(ctx context.Context) error {
	request := map[string]any{
		"jsonrpc": "2.0",
		"id":      fmt.Sprintf("smoke-%d", time.Now().Unix()),
		"method":  "message/send",
		"params": map[string]any{
			"message": map[string]any{
				"kind":  "message",
				"role":  "user",
				"parts": []map[string]any{{"kind": "data", "data": s.profile}},
			},
			"configuration": map[string]any{
				"blocking":            true,
				"acceptedOutputModes": []string{"text", "data"},
			},
		},
	}

	var response struct {
		Result *struct {
			Status struct {
				State   string `json:"state"`
				Message *struct {
					Parts []struct {
						Text string `json:"text"`
					} `json:"parts"`
				} `json:"message"`
			} `json:"status"`
			Artifacts []json.RawMessage `json:"artifacts"`
		} `json:"result"`
		Error *struct {
			Code    int    `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := s.callJSON(ctx, http.MethodPost, "/a2a/planner", request, &response); err != nil {
		return err
	}

	if response.Error != nil {
		return fmt.Errorf("rpc error %d: %s", response.Error.Code, response.Error.Message)
	}
	if response.Result == nil {
		return fmt.Errorf("response has neither result nor error")
	}
	if state := response.Result.Status.State; state != "completed" {
		return fmt.Errorf("task state %q, want completed", state)
	}
	if len(response.Result.Artifacts) == 0 {
		return fmt.Errorf("completed task has no report artifact")
	}

	if s.verbose && response.Result.Status.Message != nil {
		for _, part := range response.Result.Status.Message.Parts {
			if part.Text != "" {
				fmt.Println(part.Text)
			}
		}
	}
	return nil
}

func missingReportKey(report map[string]any) error {
	keys := []string{
		"studentName", "generatedAt", "profileSummary", "competencyRadar",
		"recommendations", "industryAnalysis", "skillGap", "roadmap", "insiderAdvice",
	}
	for _, key := range keys {
		if _, ok := report[key]; !ok {
			return fmt.Errorf("report is missing %q", key)
		}
	}
	return nil
}

func snippet(data []byte) string {
	const limit = 200
	s := strings.TrimSpace(string(data))
	if len(s) > limit {
		return s[:limit] + "..."
	}
	return s
}
