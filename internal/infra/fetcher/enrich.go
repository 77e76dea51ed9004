package fetcher

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"

	"briefing-feed/internal/domain/entity"
)

// PageMetadata is the information extracted from an article page that RSS
// entries usually lack: the byline, a dateline location and the full text.
type PageMetadata struct {
	Author   string
	Location string
	Content  string
}

// PageEnricher fetches an article page and extracts metadata and clean body
// text. Author and location come from standard meta tags via goquery; the
// body text comes from the Readability algorithm. Safe for concurrent use.
type PageEnricher struct {
	client *http.Client
	config Config
}

// NewPageEnricher creates a new PageEnricher with the given configuration.
func NewPageEnricher(config Config) *PageEnricher {
	return &PageEnricher{
		client: newHTTPClient(config),
		config: config,
	}
}

// Enrich fetches the page at pageURL and extracts author, location and body
// text. Missing metadata yields empty fields, not an error; only transport
// and parse failures are reported.
func (e *PageEnricher) Enrich(ctx context.Context, pageURL string) (*PageMetadata, error) {
	if e.config.DenyPrivateIPs {
		if err := entity.ValidateURL(pageURL); err != nil {
			return nil, fmt.Errorf("page URL rejected: %w", err)
		}
	}

	body, err := e.fetch(ctx, pageURL)
	if err != nil {
		return nil, err
	}

	meta := &PageMetadata{}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse HTML: %w", err)
	}
	meta.Author = metaContent(doc, `meta[name="author"]`, `meta[property="article:author"]`)
	meta.Location = metaContent(doc, `meta[name="geo.placename"]`, `meta[property="og:locality"]`)

	parsedURL, err := url.Parse(pageURL)
	if err != nil {
		return nil, fmt.Errorf("parse page URL: %w", err)
	}
	article, err := readability.FromReader(bytes.NewReader(body), parsedURL)
	if err != nil {
		// Metadata alone is still useful when extraction fails.
		return meta, nil
	}
	meta.Content = strings.TrimSpace(article.TextContent)
	if meta.Author == "" {
		meta.Author = strings.TrimSpace(article.Byline)
	}

	return meta, nil
}

func (e *PageEnricher) fetch(ctx context.Context, pageURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", e.config.UserAgent)

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch page: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch page: unexpected status %d", resp.StatusCode)
	}

	limited := io.LimitReader(resp.Body, e.config.MaxBodySize+1)
	body, err := io.ReadAll(limited)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if int64(len(body)) > e.config.MaxBodySize {
		return nil, fmt.Errorf("response exceeds %d bytes", e.config.MaxBodySize)
	}
	return body, nil
}

// metaContent returns the content attribute of the first matching selector
// with a non-empty value.
func metaContent(doc *goquery.Document, selectors ...string) string {
	for _, sel := range selectors {
		if content, ok := doc.Find(sel).First().Attr("content"); ok {
			if trimmed := strings.TrimSpace(content); trimmed != "" {
				return trimmed
			}
		}
	}
	return ""
}
