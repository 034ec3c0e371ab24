package retrieval

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/dtnitsch/sentence-robot/pkg/fetcher"
	"github.com/go-shiori/go-readability"
)

// HTMLArticle scrapes a rendered article page. go-readability isolates the
// main content, then goquery renders it in the same marked-up text format
// the API sources return.
type HTMLArticle struct {
	fetcher *fetcher.Fetcher
	baseURL string
}

// NewHTMLArticle reads pages below https://{language}.wikipedia.org/wiki/
// unless baseURL is set.
func NewHTMLArticle(f *fetcher.Fetcher, language, baseURL string) *HTMLArticle {
	if baseURL == "" {
		baseURL = fmt.Sprintf("https://%s.wikipedia.org/wiki/", language)
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	return &HTMLArticle{fetcher: f, baseURL: baseURL}
}

func (h *HTMLArticle) FetchArticle(ctx context.Context, term string) (string, error) {
	term, err := checkTerm(term)
	if err != nil {
		return "", err
	}

	pageURL := h.baseURL + url.PathEscape(strings.ReplaceAll(term, " ", "_"))
	raw, err := h.fetcher.GetBytes(ctx, pageURL)
	if err != nil {
		return "", asAPIError("html", err)
	}

	return ExtractArticleText(raw, pageURL)
}

// ExtractArticleText converts an HTML page into marked-up article text.
func ExtractArticleText(raw []byte, pageURL string) (string, error) {
	parsedURL, err := url.Parse(pageURL)
	if err != nil {
		return "", err
	}

	parser := readability.NewParser()
	article, err := parser.Parse(bytes.NewReader(raw), parsedURL)
	if err != nil {
		return "", fmt.Errorf("failed to extract article: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(article.Content))
	if err != nil {
		return "", fmt.Errorf("failed to parse article HTML: %w", err)
	}

	// Readability drops class names, so footnote markers and infobox
	// tables are removed by element.
	doc.Find("sup, table").Remove()

	var blocks []string
	doc.Find("h1,h2,h3,h4,p,li").Each(func(i int, s *goquery.Selection) {
		text := normalizeText(s.Text())
		if text == "" {
			return
		}
		switch goquery.NodeName(s) {
		case "h1", "h2", "h3", "h4":
			blocks = append(blocks, "="+text+"=")
		default:
			blocks = append(blocks, text)
		}
	})

	if len(blocks) == 0 {
		return "", ErrArticleNotFound
	}
	return strings.Join(blocks, "\n\n"), nil
}

// normalizeText collapses the lines of input into one space-separated line.
func normalizeText(input string) string {
	var b strings.Builder
	b.Grow(len(input))
	scanner := bufio.NewScanner(strings.NewReader(input))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			b.WriteString(line)
			b.WriteString(" ")
		}
	}
	return strings.TrimSpace(b.String())
}
