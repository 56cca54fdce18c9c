package contract

import (
	"strings"
	"testing"
	"unicode/utf8"
)

// FuzzWordCount fuzzes the word counter with arbitrary text.
func FuzzWordCount(f *testing.F) {
	seeds := []string{
		"",
		"attention is all you need",
		"  leading and trailing  ",
		"tabs\tand\nnewlines",
		"深層学習 による 画像認識",
	}
	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, text string) {
		n := WordCount(text)
		if n < 0 {
			t.Fatalf("word count cannot be negative, got %d", n)
		}
		if n == 0 && strings.TrimSpace(text) != "" {
			t.Fatalf("non-blank text %q counted as zero words", text)
		}
	})
}

// FuzzTruncateTitle fuzzes title truncation with arbitrary titles and widths.
func FuzzTruncateTitle(f *testing.F) {
	seeds := []struct {
		title string
		width int
	}{
		{"", 10},
		{"MapReduce", 3},
		{"Attention Is All You Need", 12},
		{"深層学習による画像認識の研究動向", 10},
	}
	for _, seed := range seeds {
		f.Add(seed.title, seed.width)
	}

	f.Fuzz(func(t *testing.T, title string, width int) {
		out := TruncateTitle(title, width)
		if !utf8.ValidString(out) && utf8.ValidString(title) {
			t.Fatalf("truncation broke UTF-8 encoding of %q", title)
		}
		if width > 3 {
			if got := len([]rune(out)); got > max(width, len([]rune(title))) {
				t.Fatalf("truncated title %q longer than width %d", out, width)
			}
		}
	})
}
