// Package gemini implements the generation port against a Gemini-style
// generateContent API with web-grounded search enabled.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/veda-labs/jyotish/internal/domain/prompt"
	reading "github.com/veda-labs/jyotish/internal/domain/reading"
	"github.com/veda-labs/jyotish/pkg/logger"
	"github.com/veda-labs/jyotish/pkg/metrics"
)

// Client makes exactly one synchronous POST per Generate call. No retries;
// the timeout comes from the injected http.Client.
type Client struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
	model      string
	log        logger.Logger
}

// NewClient builds a Client. The credential is passed explicitly; there is no
// ambient lookup.
func NewClient(httpClient *http.Client, apiKey, baseURL, model string, log logger.Logger) *Client {
	return &Client{
		httpClient: httpClient,
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		model:      model,
		log:        log,
	}
}

// Generate sends the prompt pair to the generation API and relays the first
// candidate's text plus any grounding attributions.
func (c *Client) Generate(ctx context.Context, p prompt.Prompt) (reading.Reading, error) {
	reqBody := generateRequest{
		Contents: []content{
			{Role: "user", Parts: []part{{Text: p.User}}},
		},
		Tools:             []tool{{GoogleSearch: &struct{}{}}},
		SystemInstruction: &content{Parts: []part{{Text: p.System}}},
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return reading.Reading{}, fmt.Errorf("marshal request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s",
		c.baseURL, c.model, url.QueryEscape(c.apiKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return reading.Reading{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	metrics.RecordUpstreamDuration(float64(time.Since(start).Milliseconds()))
	if err != nil {
		metrics.RecordUpstreamRequest("transport_error")
		return reading.Reading{}, fmt.Errorf("call generation API: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return reading.Reading{}, fmt.Errorf("read response: %w", err)
	}
	metrics.RecordUpstreamRequest(strconv.Itoa(resp.StatusCode))

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		c.log.Error(ctx, "generation API request failed",
			logger.Int("status", resp.StatusCode),
			logger.String("body", string(respBody)))
		return reading.Reading{}, &UpstreamError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	var genResp generateResponse
	if err := json.Unmarshal(respBody, &genResp); err != nil {
		return reading.Reading{}, fmt.Errorf("decode response: %w", err)
	}

	return c.extract(ctx, genResp)
}

// extract pulls the first candidate's text and attributions, distinguishing
// a safety block from a plain empty result.
func (c *Client) extract(ctx context.Context, genResp generateResponse) (reading.Reading, error) {
	if genResp.PromptFeedback != nil && genResp.PromptFeedback.BlockReason != "" {
		metrics.RecordEmptyResult("safety_blocked")
		c.log.Warn(ctx, "prompt blocked by safety settings",
			logger.String("block_reason", genResp.PromptFeedback.BlockReason))
		return reading.Reading{}, fmt.Errorf("%w: %s", ErrSafetyBlocked, genResp.PromptFeedback.BlockReason)
	}

	if len(genResp.Candidates) == 0 {
		metrics.RecordEmptyResult("no_content")
		return reading.Reading{}, ErrNoContent
	}

	cand := genResp.Candidates[0]
	if len(cand.Content.Parts) == 0 || strings.TrimSpace(cand.Content.Parts[0].Text) == "" {
		if cand.FinishReason == "SAFETY" {
			metrics.RecordEmptyResult("safety_blocked")
			return reading.Reading{}, fmt.Errorf("%w: finish reason SAFETY", ErrSafetyBlocked)
		}
		metrics.RecordEmptyResult("no_content")
		return reading.Reading{}, ErrNoContent
	}

	out := reading.Reading{
		Text:    cand.Content.Parts[0].Text,
		Sources: []reading.Attribution{},
	}
	if cand.GroundingMetadata != nil {
		for _, attr := range cand.GroundingMetadata.GroundingAttributions {
			if attr.Web == nil || attr.Web.URI == "" {
				continue
			}
			out.Sources = append(out.Sources, reading.Attribution{
				URI:   attr.Web.URI,
				Title: attr.Web.Title,
			})
		}
	}
	return out, nil
}
