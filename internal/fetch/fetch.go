// Package fetch retrieves job postings from the web and reduces them to
// the plain description text the extraction pipeline works on.
package fetch

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

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 30 * time.Second

// DefaultUserAgent is the user agent string for HTTP requests.
const DefaultUserAgent = "Mozilla/5.0 (compatible; ResumeScreener/1.0)"

// Result holds the raw and processed content from a URL fetch.
type Result struct {
	URL         string
	HTML        string
	Text        string
	ContentType string
	StatusCode  int
}

// Error represents an error during URL fetching.
type Error struct {
	URL     string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("fetch error for %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("fetch error for %s: %s", e.URL, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Options configures the fetch behavior.
type Options struct {
	Timeout   time.Duration
	UserAgent string
	Headers   map[string]string
}

// DefaultOptions returns sensible defaults for fetching.
func DefaultOptions() *Options {
	return &Options{
		Timeout:   DefaultTimeout,
		UserAgent: DefaultUserAgent,
	}
}

// URL retrieves HTML content from a URL.
func URL(ctx context.Context, urlStr string, opts *Options) (*Result, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	parsedURL, err := url.Parse(urlStr)
	if err != nil || parsedURL.Scheme == "" || parsedURL.Host == "" {
		return nil, &Error{
			URL:     urlStr,
			Message: "invalid URL",
			Cause:   err,
		}
	}

	client := &http.Client{
		Timeout: opts.Timeout,
	}

	req, err := http.NewRequestWithContext(ctx, "GET", urlStr, nil)
	if err != nil {
		return nil, &Error{
			URL:     urlStr,
			Message: "failed to create request",
			Cause:   err,
		}
	}

	req.Header.Set("User-Agent", opts.UserAgent)
	for key, value := range opts.Headers {
		req.Header.Set(key, value)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, &Error{
			URL:     urlStr,
			Message: "HTTP request failed",
			Cause:   err,
		}
	}
	defer func() { _ = resp.Body.Close() }()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{
			URL:     urlStr,
			Message: "failed to read response body",
			Cause:   err,
		}
	}

	result := &Result{
		URL:         urlStr,
		HTML:        string(bodyBytes),
		ContentType: resp.Header.Get("Content-Type"),
		StatusCode:  resp.StatusCode,
	}

	// Non-success responses still carry the partial result for diagnostics.
	if resp.StatusCode != http.StatusOK {
		return result, &Error{
			URL:     urlStr,
			Message: fmt.Sprintf("HTTP status %d", resp.StatusCode),
		}
	}

	return result, nil
}

// JobPosting fetches a job posting URL and returns its description text.
// Known job board platforms get platform-specific content selectors;
// everything else falls back to generic job posting selectors.
func JobPosting(ctx context.Context, urlStr string, opts *Options) (string, error) {
	result, err := URL(ctx, urlStr, opts)
	if err != nil {
		return "", err
	}

	platform := DetectPlatform(urlStr)
	text, err := ExtractDescription(result.HTML, platform)
	if err != nil {
		return "", &Error{URL: urlStr, Message: "failed to extract description", Cause: err}
	}
	if strings.TrimSpace(text) == "" {
		return "", &Error{URL: urlStr, Message: "page contains no readable description"}
	}
	return text, nil
}

// ExtractDescription parses job posting HTML and returns the description
// text. Noise elements (application forms, EEO sections, cookie banners)
// are removed before content selection; if no content selector matches,
// the body element is used.
func ExtractDescription(html string, platform Platform) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find("nav, footer, header, script, style, noscript, .ad, .advertisement, .sidebar, .cookie-banner, .popup").Remove()

	if noise := platform.noiseSelectors(); len(noise) > 0 {
		doc.Find(strings.Join(noise, ", ")).Remove()
	}

	var content *goquery.Selection
	for _, selector := range platform.contentSelectors() {
		if selection := doc.Find(selector); selection.Length() > 0 {
			content = selection.First()
			break
		}
	}
	if content == nil {
		content = doc.Find("body")
	}

	return cleanWhitespace(content.Text()), nil
}

// cleanWhitespace trims each line and drops empty ones.
func cleanWhitespace(text string) string {
	lines := strings.Split(text, "\n")
	var cleaned []string
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			cleaned = append(cleaned, line)
		}
	}
	return strings.Join(cleaned, "\n")
}
