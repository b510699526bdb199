// Package fetch implements the article-fetch plugin. The payload going
// in is a URL; coming out it is the article text. Two modes are
// supported: "reader" proxies through a markdown reader endpoint
// (r.jina.ai style), "html" fetches the page directly and extracts
// plain-text paragraphs from the markup.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"golang.org/x/net/html"

	"github.com/articledry/dryer/errors"
	"github.com/articledry/dryer/observability"
	"github.com/articledry/dryer/plugin"
)

// Name is the registered plugin name.
const Name = "article-fetch"

const (
	// ModeReader fetches baseURL/<url> and expects markdown back.
	ModeReader = "reader"
	// ModeHTML fetches the URL directly and extracts text from markup.
	ModeHTML = "html"

	defaultBaseURL = "https://r.jina.ai"
	defaultTimeout = 30 * time.Second

	// Reader endpoints prefix the article with metadata lines (title,
	// source URL, published time, a content header).
	defaultSkipParagraphs = 4

	maxBodySize = 10 << 20
)

var (
	markdownImageRe = regexp.MustCompile(`!\[.*?\]\(.*?\)`)
	htmlImageRe     = regexp.MustCompile(`<img[^>]*>`)
)

// Plugin fetches article content over HTTP.
type Plugin struct {
	mode           string
	baseURL        string
	skipImages     bool
	skipParagraphs int
	client         *http.Client
}

// New creates an article-fetch plugin in reader mode with defaults.
func New() *Plugin {
	return &Plugin{
		mode:           ModeReader,
		baseURL:        defaultBaseURL,
		skipImages:     true,
		skipParagraphs: defaultSkipParagraphs,
		client:         &http.Client{Timeout: defaultTimeout},
	}
}

// Name returns the plugin name.
func (p *Plugin) Name() string { return Name }

// Configure applies plugin options: mode ("reader" or "html"), baseURL
// (reader endpoint), skipImages, and skipParagraphs (leading metadata
// paragraphs dropped in reader mode).
func (p *Plugin) Configure(options map[string]any) error {
	mode := plugin.StringOption(options, "mode", p.mode)
	if mode != ModeReader && mode != ModeHTML {
		return errors.PluginConfiguration(Name, fmt.Sprintf("unknown mode %q", mode))
	}
	p.mode = mode
	p.baseURL = strings.TrimRight(plugin.StringOption(options, "baseURL", p.baseURL), "/")
	p.skipImages = plugin.BoolOption(options, "skipImages", p.skipImages)
	p.skipParagraphs = plugin.IntOption(options, "skipParagraphs", p.skipParagraphs)
	return nil
}

// Process fetches the URL in the payload and replaces the payload with
// the article text. source_url and content_type metadata are set.
func (p *Plugin) Process(ctx context.Context, item plugin.ContentItem, sink plugin.Sink) (plugin.ContentItem, error) {
	url := strings.TrimSpace(item.Payload)
	if url == "" {
		return item, errors.InvalidInput("article-fetch: payload is not a URL")
	}

	ctx, span := observability.StartSpan(ctx, observability.SpanArticleFetch)
	defer span.End()

	target := url
	contentType := "text"
	if p.mode == ModeReader {
		target = p.baseURL + "/" + url
		contentType = "markdown"
	}

	body, err := p.get(ctx, target)
	if err != nil {
		observability.SetSpanError(ctx, err)
		return item, err
	}

	content := body
	if p.mode == ModeHTML {
		content = extractText(body)
	} else if p.skipParagraphs > 0 {
		content = dropLeadingParagraphs(content, p.skipParagraphs)
	}
	if p.skipImages {
		content = markdownImageRe.ReplaceAllString(content, "")
		content = htmlImageRe.ReplaceAllString(content, "")
	}

	plugin.Emit(sink, plugin.TextEvent(fmt.Sprintf("Fetched %s (%d bytes)\n", url, len(content))))

	out := item.WithMeta(map[string]any{
		"source_url":   url,
		"content_type": contentType,
	})
	out.Payload = strings.TrimSpace(content)
	return out, nil
}

func (p *Plugin) get(ctx context.Context, target string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, http.NoBody)
	if err != nil {
		return "", fmt.Errorf("article-fetch: create request: %w", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("article-fetch: get %s: %w", target, err)
	}
	defer resp.Body.Close() //nolint:errcheck // read side, close error is safe to ignore

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("article-fetch: unexpected status %d fetching %s", resp.StatusCode, target)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return "", fmt.Errorf("article-fetch: read body: %w", err)
	}
	return string(body), nil
}

// dropLeadingParagraphs removes the first n blank-line separated
// paragraphs.
func dropLeadingParagraphs(content string, n int) string {
	parts := strings.SplitN(content, "\n\n", n+1)
	if len(parts) <= n {
		return content
	}
	return parts[n]
}

// extractText walks the parsed markup and collects the text of block
// elements into blank-line separated paragraphs. Script and style
// subtrees are skipped.
func extractText(markup string) string {
	doc, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		return markup
	}

	var paragraphs []string
	var collect func(n *html.Node)
	collect = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "nav", "noscript":
				return
			case "p", "h1", "h2", "h3", "h4", "h5", "h6", "li", "blockquote", "pre":
				if text := nodeText(n); text != "" {
					paragraphs = append(paragraphs, text)
				}
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			collect(c)
		}
	}
	collect(doc)

	return strings.Join(paragraphs, "\n\n")
}

// nodeText concatenates the text nodes under n, whitespace-collapsed.
func nodeText(n *html.Node) string {
	var b strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(strings.Fields(b.String()), " ")
}
