// Package analytics turns raw document text into normalized tokens and word counts.
package analytics

import (
	"strings"
	"unicode"

	"github.com/dtnitsch/wordshift/models"
)

// DefaultMinWordLength keeps tokens longer than three letters.
const DefaultMinWordLength = 4

// Options configures an Analytics instance.
type Options struct {
	// MinWordLength is the shortest token kept. Zero means DefaultMinWordLength.
	MinWordLength int
	// DomainStopwords also removes the central-bank terms from DomainStopwords.
	DomainStopwords bool
	// ExtraStopwords are removed in addition to the base set. Matching is case-insensitive.
	ExtraStopwords []string
}

type Analytics struct {
	minLength int
	extra     map[string]struct{}
}

// New builds an Analytics with the base stopword set plus the configured additions.
func New(opts Options) *Analytics {
	a := &Analytics{
		minLength: opts.MinWordLength,
		extra:     make(map[string]struct{}),
	}
	if a.minLength <= 0 {
		a.minLength = DefaultMinWordLength
	}

	if opts.DomainStopwords {
		for _, w := range domainStopwords {
			a.extra[w] = struct{}{}
		}
	}
	for _, w := range opts.ExtraStopwords {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" {
			a.extra[w] = struct{}{}
		}
	}

	return a
}

// IsStopword checks if a word is removed before counting.
func (a *Analytics) IsStopword(word string) bool {
	word = strings.ToLower(word)
	if _, exists := baseStopwords[word]; exists {
		return true
	}
	_, exists := a.extra[word]
	return exists
}

// Normalize lowercases text and turns every rune that is not a-z or whitespace
// into a single space. U+0130 lowers to "i" plus a combining dot above, and
// the dot separates words like any other non-letter.
func Normalize(text string) string {
	var sb strings.Builder
	sb.Grow(len(text))

	for _, r := range text {
		if r == '\u0130' {
			sb.WriteString("i ")
			continue
		}
		r = unicode.ToLower(r)
		if ('a' <= r && r <= 'z') || unicode.IsSpace(r) {
			sb.WriteRune(r)
			continue
		}
		sb.WriteByte(' ')
	}

	return sb.String()
}

// Tokenize returns the tokens of text that survive the filters, in document order.
func (a *Analytics) Tokenize(text string) []string {
	words := strings.Fields(Normalize(text))
	tokens := make([]string, 0, len(words))

	for _, word := range words {
		if a.IsStopword(word) || len(word) < a.minLength {
			continue
		}
		tokens = append(tokens, word)
	}

	return tokens
}

// Count builds a frequency table from a token sequence.
func Count(tokens []string) models.FrequencyTable {
	frequencies := make(models.FrequencyTable, len(tokens))
	for _, token := range tokens {
		frequencies[token]++
	}
	return frequencies
}

// WordFrequency tokenizes text and counts the tokens.
func (a *Analytics) WordFrequency(text string) models.FrequencyTable {
	return Count(a.Tokenize(text))
}
