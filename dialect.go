package csvdoc

import (
	"strings"
	"unicode/utf8"
)

// DefaultDelimiter is used when no delimiter is supplied or hinted.
const DefaultDelimiter = ','

const (
	quoteChar  = '"'
	hintMarker = "sep="
	hintEnd    = ')'

	newlineLF   = "\n"
	newlineCRLF = "\r\n"
)

// Dialect is the pair of delimiter and newline sequence governing tokenization.
type Dialect struct {
	Delimiter rune
	Newline   string
}

// DetectNewline returns "\r\n" if the text contains a CR LF pair anywhere and "\n" otherwise.
// Mixed documents are treated as uniformly CRLF.
func DetectNewline(text string) string {
	if strings.Contains(text, newlineCRLF) {
		return newlineCRLF
	}
	return newlineLF
}

// DetectDialect inspects text and reports its dialect. hinted is true when the first
// line is a dialect-hint line, which the caller must skip before reading the header.
func DetectDialect(text string) (d Dialect, hinted bool) {
	d.Newline = DetectNewline(text)
	d.Delimiter = DefaultDelimiter

	first, _, _ := strings.Cut(text, d.Newline)
	delim, ok := parseHint(first)
	if !ok {
		return d, false
	}
	if delim != 0 {
		d.Delimiter = delim
	}
	return d, true
}

// parseHint looks for the sep= marker anywhere in line. The capture after the marker
// is one arbitrary rune followed by everything up to the next ')' or the end of the
// line; the delimiter is the capture's first rune. delim is 0 when the capture is
// empty or unusable as a delimiter.
func parseHint(line string) (delim rune, ok bool) {
	_, after, found := strings.Cut(line, hintMarker)
	if !found {
		return 0, false
	}
	capture := hintCapture(after)
	if capture == "" {
		return 0, true
	}
	r, _ := utf8.DecodeRuneInString(capture)
	if !validDelimiter(r) {
		return 0, true
	}
	return r, true
}

func hintCapture(after string) string {
	if after == "" {
		return ""
	}
	_, size := utf8.DecodeRuneInString(after)
	if i := strings.IndexRune(after[size:], hintEnd); i >= 0 {
		return after[:size+i]
	}
	return after
}

// splitLines splits text by newline. A single empty trailing element left by a
// terminating newline is dropped.
func splitLines(text, newline string) []string {
	lines := strings.Split(text, newline)
	if n := len(lines); n > 1 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines
}
