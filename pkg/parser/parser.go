// Package parser reduces HTML documents (for example statements saved from a
// central bank website) to the plain text the tokenizer expects.
package parser

import (
	"bufio"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-shiori/go-readability"
)

// blockSelector lists the content-bearing tags whose text is kept.
const blockSelector = "h1,h2,h3,h4,h5,h6,p,li,blockquote,td,th,pre"

type Parser struct{}

// ToPlainText uses go-readability to find the main article of the page and
// then collects the text of its content blocks with goquery, one block per
// line. When readability cannot find an article, the whole document is used.
func (p *Parser) ToPlainText(rawURL, html string) (string, error) {
	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("invalid document URL %q: %w", rawURL, err)
	}

	content := html
	title := ""
	readabilityParser := readability.NewParser()
	article, err := readabilityParser.Parse(strings.NewReader(html), parsedURL)
	if err == nil && strings.TrimSpace(article.Content) != "" {
		content = article.Content
		title = normalizeText(article.Title)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}
	doc.Find("script,style,noscript").Remove()

	var sb strings.Builder
	if title != "" {
		sb.WriteString(title)
		sb.WriteString("\n")
	}

	blocks := 0
	doc.Find(blockSelector).Each(func(i int, s *goquery.Selection) {
		// Outer blocks are skipped so nested text is written once.
		if s.Find(blockSelector).Length() > 0 {
			return
		}
		text := normalizeText(s.Text())
		if text == "" {
			return
		}
		sb.WriteString(text)
		sb.WriteString("\n")
		blocks++
	})

	if blocks == 0 {
		text := normalizeText(doc.Find("body").Text())
		if text == "" {
			text = normalizeText(doc.Text())
		}
		sb.WriteString(text)
	}

	return sb.String(), nil
}

// normalizeText cleans up a string by trimming space and removing excess newlines.
func normalizeText(input string) string {
	var b strings.Builder
	b.Grow(len(input))
	scanner := bufio.NewScanner(strings.NewReader(input))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			b.WriteString(line)
			b.WriteString(" ")
		}
	}
	return strings.TrimSpace(b.String())
}
