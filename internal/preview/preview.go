// Package preview fetches a candidate's resume reference and reduces it to
// readable text for the detail panel. The resume URL is opaque to the rest
// of the system; only this package dereferences it.
package preview

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// DefaultTimeout is the default HTTP request timeout for resume fetches.
const DefaultTimeout = 15 * time.Second

// DefaultUserAgent identifies the dashboard to resume hosts.
const DefaultUserAgent = "Mozilla/5.0 (compatible; ReviewDash/1.0)"

// maxPreviewBytes caps how much of a resume document is read.
const maxPreviewBytes = 2 << 20

// Error represents a failed resume fetch.
type Error struct {
	URL     string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("resume preview for %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("resume preview for %s: %s", e.URL, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Options configures resume fetching.
type Options struct {
	Timeout   time.Duration
	UserAgent string
}

// DefaultOptions returns sensible defaults for resume fetching.
func DefaultOptions() *Options {
	return &Options{
		Timeout:   DefaultTimeout,
		UserAgent: DefaultUserAgent,
	}
}

// Fetch retrieves the resume at urlStr and returns its readable text. HTML
// documents are reduced to their main content; anything else is returned as
// cleaned plain text.
func Fetch(ctx context.Context, urlStr string, opts *Options) (string, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	parsed, err := url.Parse(urlStr)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return "", &Error{URL: urlStr, Message: "invalid resume URL", Cause: err}
	}

	client := &http.Client{Timeout: opts.Timeout}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		return "", &Error{URL: urlStr, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("User-Agent", opts.UserAgent)

	resp, err := client.Do(req)
	if err != nil {
		return "", &Error{URL: urlStr, Message: "request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", &Error{URL: urlStr, Message: fmt.Sprintf("HTTP status %d", resp.StatusCode)}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPreviewBytes))
	if err != nil {
		return "", &Error{URL: urlStr, Message: "failed to read response body", Cause: err}
	}

	if strings.Contains(resp.Header.Get("Content-Type"), "text/html") {
		text, err := ExtractText(string(body))
		if err != nil {
			return "", &Error{URL: urlStr, Message: "failed to parse document", Cause: err}
		}
		return text, nil
	}
	return cleanWhitespace(string(body)), nil
}

// resumeSelectors are tried in order to locate the resume body in an HTML
// document before falling back to the whole page body.
var resumeSelectors = []string{
	".resume-content",
	"#resume",
	"main",
	"article",
	".content",
	"#content",
}

// ExtractText parses an HTML resume and returns its readable text.
func ExtractText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find("nav, footer, header, script, style, noscript").Remove()

	var content *goquery.Selection
	for _, selector := range resumeSelectors {
		if sel := doc.Find(selector); sel.Length() > 0 {
			content = sel.First()
			break
		}
	}
	if content == nil {
		content = doc.Find("body")
	}

	return cleanWhitespace(content.Text()), nil
}

// cleanWhitespace trims each line and drops blank ones.
func cleanWhitespace(text string) string {
	lines := strings.Split(text, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			cleaned = append(cleaned, line)
		}
	}
	return strings.Join(cleaned, "\n")
}
