package smoketest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/veda-labs/jyotish/pkg/logger"
)

// Run executes every scenario in order and returns an error when any failed.
func Run(ctx context.Context, config *Config) error {
	log := logger.Get()
	stats := &Stats{StartTime: time.Now()}

	log.Info(ctx, "starting smoke run",
		logger.String("baseURL", config.BaseURL),
		logger.String("timeout", config.Timeout.String()))

	if err := checkHealth(ctx, config); err != nil {
		return fmt.Errorf("service health check failed: %w", err)
	}

	client := &http.Client{Timeout: config.Timeout}
	for _, sc := range Scenarios() {
		stats.ScenariosRun++
		if err := runScenario(ctx, client, config, sc); err != nil {
			stats.Failed++
			log.Error(ctx, "scenario failed", logger.String("scenario", sc.Name), logger.Error(err))
			continue
		}
		stats.Passed++
		log.Info(ctx, "scenario passed", logger.String("scenario", sc.Name))
	}

	stats.Duration = time.Since(stats.StartTime)
	log.Info(ctx, "smoke run finished",
		logger.Int("run", stats.ScenariosRun),
		logger.Int("passed", stats.Passed),
		logger.Int("failed", stats.Failed),
		logger.String("duration", stats.Duration.String()))

	if stats.Failed > 0 {
		return fmt.Errorf("%d of %d scenarios failed", stats.Failed, stats.ScenariosRun)
	}
	return nil
}

func checkHealth(ctx context.Context, config *Config) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, config.BaseURL+"/healthz", nil)
	if err != nil {
		return err
	}
	resp, err := (&http.Client{Timeout: config.Timeout}).Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("healthz returned %d", resp.StatusCode)
	}
	return nil
}

func runScenario(ctx context.Context, client *http.Client, config *Config, sc Scenario) error {
	body, err := json.Marshal(sc.Request)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, config.BaseURL+"/v1/readings", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("post: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if config.Verbose {
		logger.Get().Info(ctx, "response",
			logger.String("scenario", sc.Name),
			logger.Int("status", resp.StatusCode),
			logger.String("body", truncate(string(respBody), 400)))
	}

	if resp.StatusCode != sc.WantStatus {
		return fmt.Errorf("got status %d, want %d (body: %s)", resp.StatusCode, sc.WantStatus, truncate(string(respBody), 200))
	}

	if sc.WantText {
		var out struct {
			Text string `json:"text"`
		}
		if err := json.Unmarshal(respBody, &out); err != nil {
			return fmt.Errorf("decode 200 body: %w", err)
		}
		if strings.TrimSpace(out.Text) == "" {
			return fmt.Errorf("200 with empty text")
		}
	}
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
