package loader

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dtnitsch/wordshift/pkg/detector"
)

func writeFile(t *testing.T, dir, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestLoad_PlainText(t *testing.T) {
	path := writeFile(t, t.TempDir(), "current_minutes.txt", []byte("rate rate rate cuts cuts"))

	doc, err := New(nil, nil).Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if doc.Text != "rate rate rate cuts cuts" {
		t.Errorf("Text = %q", doc.Text)
	}
	if doc.Path != path {
		t.Errorf("Path = %q, want %q", doc.Path, path)
	}
	if len(doc.SHA256) != 64 {
		t.Errorf("SHA256 = %q", doc.SHA256)
	}
	if doc.Detection.Detected || doc.NonEnglish() {
		t.Errorf("Detection = %+v, want none without detector", doc.Detection)
	}
	if doc.SizeBytes != int64(len("rate rate rate cuts cuts")) {
		t.Errorf("SizeBytes = %d", doc.SizeBytes)
	}
	if doc.ModTime.IsZero() {
		t.Error("ModTime is zero")
	}
}

func TestLoad_StripsByteOrderMark(t *testing.T) {
	content := append([]byte{0xEF, 0xBB, 0xBF}, []byte("inflation outlook")...)
	path := writeFile(t, t.TempDir(), "bom.txt", content)

	doc, err := New(nil, nil).Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if doc.Text != "inflation outlook" {
		t.Errorf("Text = %q, want BOM removed", doc.Text)
	}
}

func TestLoad_Missing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "previous_minutes.txt")

	_, err := New(nil, nil).Load(path)
	if !errors.Is(err, ErrMissing) {
		t.Fatalf("Load() error = %v, want ErrMissing", err)
	}
	if !strings.Contains(err.Error(), path) {
		t.Errorf("error %q does not name the path", err)
	}
}

func TestLoad_DirectoryIsNotMissing(t *testing.T) {
	_, err := New(nil, nil).Load(t.TempDir())
	if err == nil {
		t.Fatal("expected error when loading a directory")
	}
	if errors.Is(err, ErrMissing) {
		t.Errorf("directory reported as missing: %v", err)
	}
}

func TestLoad_HTML(t *testing.T) {
	html := `<html><head><title>Statement</title></head><body>
<div><p>The Committee decided to maintain the target range for the federal funds rate.</p>
<p>Uncertainty about the economic outlook has increased further.</p></div>
</body></html>`
	path := writeFile(t, t.TempDir(), "statement.html", []byte(html))

	doc, err := New(nil, nil).Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if strings.Contains(doc.Text, "<p>") {
		t.Errorf("HTML tags left in text: %q", doc.Text)
	}
	if !strings.Contains(doc.Text, "economic outlook") {
		t.Errorf("Text = %q, missing body content", doc.Text)
	}
}

func TestLoad_DetectsLanguage(t *testing.T) {
	text := "Recent indicators suggest that economic activity has continued to expand at a solid pace. The unemployment rate has stabilized at a low level in recent months."
	path := writeFile(t, t.TempDir(), "current.txt", []byte(text))

	doc, err := New(nil, detector.New()).Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if doc.Detection.Language != "en" {
		t.Errorf("Language = %q, want en", doc.Detection.Language)
	}
	if doc.NonEnglish() {
		t.Error("English document flagged as non-English")
	}
}

func TestLoad_FlagsNonEnglish(t *testing.T) {
	text := "Die jüngsten Indikatoren deuten darauf hin, dass sich das Wachstum der Wirtschaftstätigkeit abgeschwächt hat. Die Inflation ist gestiegen und bleibt etwas erhöht."
	path := writeFile(t, t.TempDir(), "aktuell.txt", []byte(text))

	doc, err := New(nil, detector.New()).Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !doc.NonEnglish() {
		t.Errorf("Detection = %+v, want non-English", doc.Detection)
	}
}

func TestIsHTML(t *testing.T) {
	tests := map[string]bool{
		"a.html":  true,
		"a.HTM":   true,
		"a.txt":   false,
		"minutes": false,
	}
	for path, want := range tests {
		if got := IsHTML(path); got != want {
			t.Errorf("IsHTML(%q) = %v, want %v", path, got, want)
		}
	}
}
