// Package htmltext extracts plain text from HTML input so that the analyzer
// can run over web pages the same way it runs over text files. Readability
// distills the main content first; goquery then walks the distilled markup
// and joins the text-bearing blocks.
package htmltext

import (
	"bufio"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-shiori/go-readability"
)

// FromHTML returns the readable plain text of an HTML document. name is used
// only to fabricate a document URL for the readability parser (local files
// have no real one). The title, if any, is prepended as the first line.
func FromHTML(name, html string) (string, error) {
	docURL, err := url.Parse("file:///" + strings.TrimPrefix(name, "/"))
	if err != nil {
		return "", fmt.Errorf("failed to build document URL: %w", err)
	}

	parser := readability.NewParser()
	article, err := parser.Parse(strings.NewReader(html), docURL)
	if err != nil {
		return "", fmt.Errorf("failed to distill HTML: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(article.Content))
	if err != nil {
		return "", fmt.Errorf("failed to parse distilled content: %w", err)
	}

	var blocks []string
	if title := normalizeText(article.Title); title != "" {
		blocks = append(blocks, title)
	}

	doc.Find("h1,h2,h3,h4,p,li,pre").Each(func(i int, s *goquery.Selection) {
		if text := normalizeText(s.Text()); text != "" {
			blocks = append(blocks, text)
		}
	})

	// Fallback for fragments too small for block extraction.
	if len(blocks) == 0 {
		if text := normalizeText(doc.Text()); text != "" {
			blocks = append(blocks, text)
		}
	}

	return strings.Join(blocks, "\n"), nil
}

// normalizeText trims each line and collapses a block onto one line.
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
