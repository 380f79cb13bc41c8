package csvdoc

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"
)

func FuzzSplitFieldsRoundTrip(f *testing.F) {
	seeds := []string{
		"",
		"a,b,c",
		"a,\"b,b\",c",
		"\"unterminated",
		"a\"b,c",
		"\"x\"\"y\",z",
		",,",
	}
	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, line string) {
		if len(line) > 1<<12 || !utf8.ValidString(line) || strings.ContainsAny(line, "\r\n") {
			t.Skip()
		}

		fields := SplitFields(line, ',', '"')
		if len(fields) == 0 {
			t.Fatalf("SplitFields(%q) returned no fields", truncateForMessage(line))
		}

		// Quoting every field must reproduce the same fields.
		var b strings.Builder
		w := NewWriter(&b)
		w.AlwaysQuote = true
		if err := w.Write(fields); err != nil {
			t.Fatalf("Write() error = %v", err)
		}
		if err := w.Flush(); err != nil {
			t.Fatalf("Flush() error = %v", err)
		}

		again := SplitFields(b.String(), ',', '"')
		if !fieldsEqual(fields, again) {
			t.Fatalf("round trip mismatch:\nfirst=%q\nagain=%q\ninput=%q", fields, again, truncateForMessage(line))
		}
	})
}

func FuzzStrictAgreesWithLenient(f *testing.F) {
	for _, seed := range []string{"a,b", "\"a,b\",c", "a\"b", "\"x", "\"x\"y"} {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, line string) {
		if len(line) > 1<<12 || strings.ContainsAny(line, "\r\n") {
			t.Skip()
		}

		r := NewReader([]string{line})
		r.Strict = true
		strict, err := r.Read()
		if err != nil {
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("strict Read() returned %T, want *ParseError", err)
			}
			if !errors.Is(err, ErrBareQuote) && !errors.Is(err, ErrUnterminatedQuote) {
				t.Fatalf("unexpected strict error %v", err)
			}
			return
		}

		lenient := SplitFields(line, ',', '"')
		if !fieldsEqual(strict, lenient) {
			t.Fatalf("strict and lenient disagree:\nstrict=%q\nlenient=%q\ninput=%q", strict, lenient, truncateForMessage(line))
		}
	})
}

func fieldsEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func truncateForMessage(s string) string {
	const max = 256
	if len(s) <= max {
		return s
	}
	return s[:max] + "...(truncated)"
}
