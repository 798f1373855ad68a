// Package detector guesses the natural language of a document so that
// non-English inputs can be flagged before English stopwords are applied.
package detector

import (
	"strings"
	"unicode/utf8"

	"github.com/pemistahl/lingua-go"
)

// sampleRunes bounds how much text is handed to the language model.
const sampleRunes = 4000

// languages are the candidates considered. Restricting the set keeps model
// loading fast and avoids spurious matches on short texts.
var languages = []lingua.Language{
	lingua.English,
	lingua.French,
	lingua.German,
	lingua.Spanish,
	lingua.Italian,
	lingua.Portuguese,
	lingua.Dutch,
	lingua.Japanese,
	lingua.Korean,
	lingua.Chinese,
}

// Result is the outcome of a detection.
type Result struct {
	Detected bool
	// Language is the ISO 639-1 code, e.g. "en". Empty when nothing was detected.
	Language string
	// EnglishConfidence is between 0 and 1.
	EnglishConfidence float64
}

// IsEnglish reports whether the document was detected as English.
func (r Result) IsEnglish() bool {
	return r.Detected && r.Language == "en"
}

type Detector struct {
	model lingua.LanguageDetector
}

// New builds a detector over the supported languages.
func New() *Detector {
	return &Detector{
		model: lingua.NewLanguageDetectorBuilder().
			FromLanguages(languages...).
			Build(),
	}
}

// Detect returns the most likely language of text.
func (d *Detector) Detect(text string) Result {
	sample := Sample(text, sampleRunes)
	if strings.TrimSpace(sample) == "" {
		return Result{}
	}

	res := Result{
		EnglishConfidence: d.model.ComputeLanguageConfidence(sample, lingua.English),
	}
	if language, exists := d.model.DetectLanguageOf(sample); exists {
		res.Detected = true
		res.Language = strings.ToLower(language.IsoCode639_1().String())
	}
	return res
}

// Sample returns at most n runes of text, cut back to the last whitespace so
// no word is split.
func Sample(text string, n int) string {
	if utf8.RuneCountInString(text) <= n {
		return text
	}

	count := 0
	for i := range text {
		if count == n {
			cut := text[:i]
			if idx := strings.LastIndexAny(cut, " \t\r\n"); idx > 0 {
				cut = cut[:idx]
			}
			return cut
		}
		count++
	}
	return text
}
