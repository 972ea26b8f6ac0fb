package azure

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/BTCElectrician/ohmni-oracle-refined/internal/common"
	"github.com/BTCElectrician/ohmni-oracle-refined/internal/layout"
)

// analyzeResponse mirrors the slice of the Document Intelligence operation
// result this pipeline consumes.
type analyzeResponse struct {
	Status        string `json:"status"`
	AnalyzeResult struct {
		Tables []layout.RecognizedTable `json:"tables"`
	} `json:"analyzeResult"`
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// Analyze implements layout.Analyzer against the prebuilt-layout model: submit
// the document, then poll the returned operation until it settles.
func (c *Client) Analyze(ctx context.Context, document []byte) (layout.AnalyzeResult, error) {
	rid := uuid.New().String()
	start := time.Now()

	c.log.Info("layout.analyze.start",
		"req_id", rid,
		"model", c.cfg.ModelID,
		"bytes", len(document),
	)

	opURL, err := c.submit(ctx, document)
	if err != nil {
		c.log.Error("layout.analyze.submit_error",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return layout.AnalyzeResult{}, fmt.Errorf("%w: submit analyze: %v", common.ErrServiceUnavailable, err)
	}

	for poll := 0; poll < c.cfg.MaxPolls; poll++ {
		select {
		case <-ctx.Done():
			return layout.AnalyzeResult{}, fmt.Errorf("%w: %v", common.ErrServiceUnavailable, ctx.Err())
		case <-time.After(c.cfg.PollInterval):
		}

		op, err := c.fetch(ctx, opURL)
		if err != nil {
			c.log.Error("layout.analyze.poll_error",
				"req_id", rid, "poll", poll, "error", err,
				"elapsed_ms", time.Since(start).Milliseconds(),
			)
			return layout.AnalyzeResult{}, fmt.Errorf("%w: poll analyze: %v", common.ErrServiceUnavailable, err)
		}

		switch strings.ToLower(op.Status) {
		case "succeeded":
			c.log.Info("layout.analyze.ok",
				"req_id", rid,
				"tables", len(op.AnalyzeResult.Tables),
				"polls", poll+1,
				"elapsed_ms", time.Since(start).Milliseconds(),
			)
			return layout.AnalyzeResult{Tables: op.AnalyzeResult.Tables}, nil
		case "failed":
			c.log.Error("layout.analyze.operation_failed",
				"req_id", rid, "code", op.Error.Code, "message", op.Error.Message,
				"elapsed_ms", time.Since(start).Milliseconds(),
			)
			return layout.AnalyzeResult{}, fmt.Errorf("%w: analyze operation failed: %s: %s",
				common.ErrServiceUnavailable, op.Error.Code, op.Error.Message)
		default:
			// notStarted / running: keep polling
		}
	}

	c.log.Error("layout.analyze.timeout",
		"req_id", rid, "polls", c.cfg.MaxPolls,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return layout.AnalyzeResult{}, fmt.Errorf("%w: analyze operation did not settle after %d polls",
		common.ErrServiceUnavailable, c.cfg.MaxPolls)
}

// submit POSTs the document and returns the operation URL from the
// Operation-Location header.
func (c *Client) submit(ctx context.Context, document []byte) (string, error) {
	url := fmt.Sprintf("%s/documentintelligence/documentModels/%s:analyze?api-version=%s",
		strings.TrimRight(c.cfg.Endpoint, "/"), c.cfg.ModelID, c.cfg.APIVersion)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(document))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/pdf")
	req.Header.Set("Ocp-Apim-Subscription-Key", c.cfg.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer func(body io.ReadCloser) {
		if cerr := body.Close(); cerr != nil {
			c.log.Warn("layout.analyze.body_close_error", "error", cerr)
		}
	}(resp.Body)

	if resp.StatusCode != http.StatusAccepted {
		raw, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(raw))
	}
	opURL := resp.Header.Get("Operation-Location")
	if opURL == "" {
		return "", fmt.Errorf("missing Operation-Location header")
	}
	return opURL, nil
}

func (c *Client) fetch(ctx context.Context, opURL string) (analyzeResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, opURL, nil)
	if err != nil {
		return analyzeResponse{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Ocp-Apim-Subscription-Key", c.cfg.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return analyzeResponse{}, err
	}
	defer func(body io.ReadCloser) {
		if cerr := body.Close(); cerr != nil {
			c.log.Warn("layout.analyze.body_close_error", "error", cerr)
		}
	}(resp.Body)

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return analyzeResponse{}, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode/100 != 2 {
		return analyzeResponse{}, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(raw))
	}

	var op analyzeResponse
	if err := json.Unmarshal(raw, &op); err != nil {
		return analyzeResponse{}, fmt.Errorf("decode response: %w", err)
	}
	return op, nil
}
