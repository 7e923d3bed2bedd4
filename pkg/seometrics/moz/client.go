// Package moz provides a seometrics.Client backed by the Moz Links API.
package moz

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"directorybolt/internal/config"
	"directorybolt/pkg/seometrics"
	"directorybolt/pkg/serrors"
)

// Options configure the Client.
type Options struct {
	BaseURL   string
	AccessID  string
	SecretKey string
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		BaseURL:   cfg.SEO.BaseURL,
		AccessID:  cfg.SEO.AccessID,
		SecretKey: cfg.SEO.SecretKey,
	}
}

// Client talks to the Moz URL metrics endpoint. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	options    Options
}

// ParseRateLimit extracts the rate-limit headers. The reset header holds unix
// seconds; a response without it yields a zero ResetAt.
func ParseRateLimit(h http.Header) (seometrics.RateLimitStatus, error) {
	atoi := func(s string) int {
		if n, err := strconv.Atoi(s); err == nil {
			return n
		}

		return 0
	}

	rl := seometrics.RateLimitStatus{
		Limit:     atoi(h.Get("X-RateLimit-Limit")),
		Remaining: atoi(h.Get("X-RateLimit-Remaining")),
	}

	resetStr := h.Get("X-RateLimit-Reset")
	if resetStr == "" {
		return rl, nil
	}
	secs, err := strconv.ParseInt(resetStr, 10, 64)
	if err != nil {
		return seometrics.RateLimitStatus{}, fmt.Errorf("could not parse reset at: %w", err)
	}
	rl.ResetAt = time.Unix(secs, 0).UTC()

	return rl, nil
}

// URLMetrics fetches the authority metrics of target.
func (c *Client) URLMetrics(ctx context.Context,
	target string,
) (*seometrics.URLMetrics, seometrics.RateLimitStatus, error) {
	// https://moz.com/api/docs/links/url-metrics
	bodyBytes, err := json.Marshal(struct {
		Targets []string `json:"targets"`
	}{Targets: []string{target}})
	if err != nil {
		return nil, seometrics.RateLimitStatus{}, fmt.Errorf("could not marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx,
		http.MethodPost,
		strings.TrimSuffix(c.options.BaseURL, "/")+"/v2/url_metrics",
		bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, seometrics.RateLimitStatus{}, fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.options.AccessID, c.options.SecretKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, seometrics.RateLimitStatus{}, fmt.Errorf("could not send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	rl, err := ParseRateLimit(resp.Header)
	if err != nil {
		return nil, rl, fmt.Errorf("could not parse rate limit: %w", err)
	}
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, rl, fmt.Errorf("could not read response body: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, rl, serrors.With(serrors.ErrRateLimited, "rate limited: %s", strings.TrimSpace(string(b)))
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, rl, serrors.With(serrors.ErrUnauthorized, "credentials rejected: %s", strings.TrimSpace(string(b)))
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return nil, rl, fmt.Errorf("url metrics failed: %s", strings.TrimSpace(string(b)))
	}

	var rs struct {
		Results []struct {
			Page            string  `json:"page"`
			DomainAuthority float64 `json:"domain_authority"`
			PageAuthority   float64 `json:"page_authority"`
			SpamScore       float64 `json:"spam_score"`
		} `json:"results"`
	}
	if err := json.Unmarshal(b, &rs); err != nil {
		return nil, rl, fmt.Errorf("could not decode response: %w", err)
	}
	if len(rs.Results) == 0 {
		return nil, rl, serrors.With(serrors.ErrNotFound, "no metrics for %s", target)
	}

	res := rs.Results[0]

	return &seometrics.URLMetrics{
		Target:          target,
		DomainAuthority: clampScore(res.DomainAuthority),
		PageAuthority:   clampScore(res.PageAuthority),
		SpamScore:       int(math.Round(res.SpamScore)),
	}, rl, nil
}

func clampScore(v float64) int {
	return min(max(int(math.Round(v)), 0), 100)
}

// Ensure Client conforms to the seometrics.Client interface at compile time.
var _ seometrics.Client = (*Client)(nil)

// New constructs a Client using the provided http.Client and credentials.
func New(httpClient *http.Client, options Options) *Client {
	return &Client{
		httpClient: httpClient,
		options:    options,
	}
}
