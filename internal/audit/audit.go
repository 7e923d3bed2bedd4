// Package audit checks whether directory websites and their submission pages
// are reachable and summarizes the outcome in a report.
package audit

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"directorybolt/internal/config"
	"directorybolt/pkg/domain"
	"directorybolt/pkg/logger"
	"directorybolt/pkg/metrics"

	"github.com/gocolly/colly/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Error classes reported for failed checks.
const (
	ErrorTimeout    = "Timeout"
	ErrorSSL        = "SSL Error"
	ErrorConnection = "Connection Error"
)

const (
	maxErrorLength = 100
	// bodies are never inspected
	maxBodySize = 512 * 1024
)

// Options configure the Auditor.
type Options struct {
	Concurrency       int
	Timeout           time.Duration
	SubmissionTimeout time.Duration
	UserAgent         string
	// Transport overrides the HTTP transport, mostly for tests.
	Transport http.RoundTripper
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Concurrency:       cfg.Audit.Concurrency,
		Timeout:           cfg.Audit.Timeout,
		SubmissionTimeout: cfg.Audit.SubmissionTimeout,
		UserAgent:         cfg.Audit.UserAgent,
	}
}

// Check is the outcome of one GET request.
type Check struct {
	StatusCode     int    `json:"statusCode,omitempty"`
	ResponseTimeMs int64  `json:"responseTimeMs"`
	Accessible     bool   `json:"accessible"`
	Error          string `json:"error,omitempty"`
	// RedirectURL is the final URL when redirects led somewhere else.
	RedirectURL string `json:"redirectUrl,omitempty"`
}

// Result is the audit outcome of a single directory.
type Result struct {
	DirectoryID     string `json:"id"`
	Name            string `json:"name"`
	URL             string `json:"url"`
	SubmissionURL   string `json:"submissionUrl,omitempty"`
	Category        string `json:"category"`
	DomainAuthority int    `json:"domainAuthority"`

	Check

	// Submission is only checked when the main URL is accessible.
	Submission *Check    `json:"submission,omitempty"`
	CheckedAt  time.Time `json:"checkedAt"`
}

// SubmissionAccessible reports whether the submission page answered with a
// non-error status.
func (r Result) SubmissionAccessible() bool {
	return r.Submission != nil && r.Submission.Accessible
}

// Auditor runs URL checks.
type Auditor struct {
	options   Options
	transport http.RoundTripper
	now       func() time.Time
}

// New creates an Auditor.
func New(options Options) *Auditor {
	if options.Concurrency <= 0 {
		options.Concurrency = 20
	}
	if options.Timeout <= 0 {
		options.Timeout = 10 * time.Second
	}
	if options.SubmissionTimeout <= 0 {
		options.SubmissionTimeout = 5 * time.Second
	}

	transport := options.Transport
	if transport == nil {
		transport = newHTTPTransport()
	}

	return &Auditor{options: options, transport: transport, now: time.Now}
}

// Run checks all directories, at most Concurrency at a time, and returns the
// results in input order. It only fails when ctx is done.
func (a *Auditor) Run(ctx context.Context, directories []domain.Directory) ([]Result, error) {
	ctx = logger.Named(ctx, "audit")
	results := make([]Result, len(directories))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.options.Concurrency)
	for i, d := range directories {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			results[i] = a.Directory(gctx, d)
			logger.Debug(gctx, "directory checked",
				zap.String("directory", d.ID),
				zap.Bool("accessible", results[i].Accessible),
				zap.Int("status", results[i].StatusCode),
				zap.String("error", results[i].Error),
			)

			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return results, nil
}

// Directory checks the directory URL and, when that is accessible, its
// submission URL.
func (a *Auditor) Directory(ctx context.Context, d domain.Directory) Result {
	res := Result{
		DirectoryID:     d.ID,
		Name:            d.Name,
		URL:             d.URL,
		SubmissionURL:   d.SubmissionURL,
		Category:        d.Category,
		DomainAuthority: d.DomainAuthority,
		Check:           a.Check(ctx, d.URL, a.options.Timeout),
		CheckedAt:       a.now(),
	}

	if res.Accessible && d.SubmissionURL != "" {
		sub := a.Check(ctx, d.SubmissionURL, a.options.SubmissionTimeout)
		res.Submission = &sub
	}

	return res
}

// Check GETs rawURL following redirects. Responses below 400 are accessible.
func (a *Auditor) Check(ctx context.Context, rawURL string, timeout time.Duration) Check {
	var res Check

	c := colly.NewCollector(
		colly.UserAgent(a.options.UserAgent),
		colly.AllowURLRevisit(),
		colly.IgnoreRobotsTxt(),
		colly.ParseHTTPErrorResponse(),
		colly.MaxBodySize(maxBodySize),
		colly.StdlibContext(ctx),
	)
	c.WithTransport(a.transport)
	c.SetRequestTimeout(timeout)

	c.OnResponse(func(r *colly.Response) {
		res.StatusCode = r.StatusCode
		if final := r.Request.URL; !sameURL(final, rawURL) {
			res.RedirectURL = final.String()
		}
	})

	start := time.Now()
	err := c.Visit(rawURL)
	elapsed := time.Since(start)
	res.ResponseTimeMs = elapsed.Milliseconds()

	if err != nil {
		res.StatusCode = 0
		res.RedirectURL = ""
		res.Error = ClassifyError(err)
	} else {
		res.Accessible = res.StatusCode > 0 && res.StatusCode < http.StatusBadRequest
	}
	metrics.ObserveAuditCheck(res.Accessible, elapsed)

	return res
}

// ClassifyError maps a request error to a short error class.
func ClassifyError(err error) string {
	var (
		netErr      net.Error
		opErr       *net.OpError
		dnsErr      *net.DNSError
		unknownCA   x509.UnknownAuthorityError
		hostnameErr x509.HostnameError
		certErr     x509.CertificateInvalidError
		verifyErr   *tls.CertificateVerificationError
		recordErr   tls.RecordHeaderError
	)

	switch {
	case errors.Is(err, context.DeadlineExceeded),
		errors.As(err, &netErr) && netErr.Timeout():
		return ErrorTimeout
	case errors.As(err, &verifyErr), errors.As(err, &unknownCA), errors.As(err, &hostnameErr),
		errors.As(err, &certErr), errors.As(err, &recordErr):
		return ErrorSSL
	case errors.As(err, &dnsErr), errors.As(err, &opErr):
		return ErrorConnection
	}

	// truncate on characters, not bytes
	msg := err.Error()
	if runes := []rune(msg); len(runes) > maxErrorLength {
		msg = string(runes[:maxErrorLength])
	}

	return strings.TrimSpace(msg)
}

// sameURL ignores the differences URL normalization introduces: host case
// and a trailing slash.
func sameURL(u *url.URL, raw string) bool {
	v, err := url.Parse(raw)
	if err != nil {
		return false
	}

	return u.Scheme == v.Scheme &&
		strings.EqualFold(u.Host, v.Host) &&
		strings.TrimSuffix(u.Path, "/") == strings.TrimSuffix(v.Path, "/") &&
		u.RawQuery == v.RawQuery
}

func newHTTPTransport() *http.Transport {
	return &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   10 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
	}
}
