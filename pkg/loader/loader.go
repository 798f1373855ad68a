// Package loader reads source documents from disk and returns their text.
package loader

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/dtnitsch/wordshift/internal/common"
	"github.com/dtnitsch/wordshift/pkg/detector"
	"github.com/dtnitsch/wordshift/pkg/parser"
	"github.com/dtnitsch/wordshift/pkg/storage"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ErrMissing is returned when a document does not exist.
// Callers treat it as an empty document rather than a failure.
var ErrMissing = errors.New("document not found")

// Document is the loaded text of one source file.
type Document struct {
	Path      string
	Text      string
	SHA256    string
	SizeBytes int64
	ModTime   time.Time
	// Detection is the zero Result when detection is disabled.
	Detection detector.Result
}

// NonEnglish reports whether language detection ran and found another language.
func (d *Document) NonEnglish() bool {
	return d.Detection.Detected && !d.Detection.IsEnglish()
}

type Loader struct {
	storage  *storage.Storage
	parser   *parser.Parser
	detector *detector.Detector
}

// New creates a Loader. A nil detector disables language detection.
func New(s *storage.Storage, d *detector.Detector) *Loader {
	if s == nil {
		s = &storage.Storage{}
	}
	return &Loader{
		storage:  s,
		parser:   &parser.Parser{},
		detector: d,
	}
}

// IsHTML reports whether a path is treated as an HTML document.
func IsHTML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm", ".xhtml":
		return true
	}
	return false
}

// Load reads path as UTF-8 text. A leading byte-order mark is dropped and
// HTML files are reduced to their readable text. A missing file yields an
// error wrapping ErrMissing; any other failure is returned as is.
func (l *Loader) Load(path string) (*Document, error) {
	stats, err := l.storage.GetFileStats(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrMissing, path)
		}
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}

	raw, err := l.storage.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrMissing, path)
		}
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}

	decoded, _, err := transform.Bytes(unicode.BOMOverride(unicode.UTF8.NewDecoder()), raw)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s as UTF-8: %w", path, err)
	}

	doc := &Document{
		Path:      path,
		Text:      string(decoded),
		SHA256:    common.ContentHash(raw),
		SizeBytes: stats.SizeBytes,
		ModTime:   stats.ModTime,
	}

	if IsHTML(path) {
		text, err := l.parser.ToPlainText(common.FileURL(path), doc.Text)
		if err != nil {
			return nil, fmt.Errorf("failed to extract text from %s: %w", path, err)
		}
		doc.Text = text
	}

	if l.detector != nil {
		doc.Detection = l.detector.Detect(doc.Text)
	}

	return doc, nil
}
