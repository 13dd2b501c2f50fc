package contract

import (
	"testing"
	"unicode/utf8"
)

// FuzzTruncateText fuzzes TruncateText with random text and widths.
func FuzzTruncateText(f *testing.F) {
	f.Add("Acme Industrial Supply", 10)
	f.Add("", 0)
	f.Add("Düşük", 4)
	f.Add("x", -5)

	f.Fuzz(func(t *testing.T, text string, width int) {
		out := TruncateText(text, width)
		if width > 3 && utf8.RuneCountInString(out) > width {
			t.Fatalf("TruncateText(%q, %d) = %q is wider than %d", text, width, out, width)
		}
	})
}

// FuzzParseID fuzzes ParseID; accepted ids are always positive.
func FuzzParseID(f *testing.F) {
	f.Add("1")
	f.Add("-1")
	f.Add("9223372036854775808")
	f.Fuzz(func(t *testing.T, s string) {
		id, err := ParseID("alternative", s)
		if err == nil && id <= 0 {
			t.Fatalf("ParseID(%q) = %d without error", s, id)
		}
	})
}
