package common

import (
	"reflect"
	"strings"
	"testing"
)

func TestContentHash(t *testing.T) {
	got := ContentHash([]byte("rate"))
	if len(got) != 64 {
		t.Fatalf("hash length = %d, want 64", len(got))
	}
	if got != ContentHash([]byte("rate")) {
		t.Error("hash is not deterministic")
	}
	if got == ContentHash([]byte("cuts")) {
		t.Error("different content produced the same hash")
	}
}

func TestSplitList(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{in: "", want: nil},
		{in: "a.txt", want: []string{"a.txt"}},
		{in: " a.txt, ,b.txt ,", want: []string{"a.txt", "b.txt"}},
	}
	for _, tt := range tests {
		if got := SplitList(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("SplitList(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestFileURL(t *testing.T) {
	got := FileURL("statement.html")
	if !strings.HasPrefix(got, "file://") || !strings.HasSuffix(got, "/statement.html") {
		t.Errorf("FileURL() = %q", got)
	}
}
