package csvdoc

import (
	"io"
	"strings"
	"unicode/utf8"
)

// Reader tokenizes a document that has already been split into lines. Each call to
// Read returns the fields of one line; quoted fields never span lines.
//
// Reader satisfies the csvutil.Reader interface.
type Reader struct {
	// Comma is the field delimiter. Default is ','.
	Comma rune
	// Quote is the quote character. Default is '"'.
	Quote rune
	// Strict reports bare and unterminated quotes as *ParseError. When unset the
	// tokenizer recovers: a bare quote is literal text and an unterminated quoted
	// field runs to the end of its line.
	Strict bool

	lines []string
	pos   int
	first int
}

// NewReader creates a Reader over lines with the default delimiter and quote.
func NewReader(lines []string) *Reader {
	return &Reader{
		Comma: DefaultDelimiter,
		Quote: quoteChar,
		lines: lines,
		first: 1,
	}
}

// Read tokenizes the next line. It returns io.EOF once every line has been consumed.
func (r *Reader) Read() (record []string, err error) {
	if r == nil || r.pos >= len(r.lines) {
		return nil, io.EOF
	}

	comma := r.Comma
	if comma == 0 {
		comma = DefaultDelimiter
	}
	quote := r.Quote
	if quote == 0 {
		quote = quoteChar
	}

	line := r.lines[r.pos]
	r.pos++

	fields, column, err := splitLine(line, comma, quote, r.Strict)
	if err != nil {
		return nil, &ParseError{Line: r.Line(), Column: column, Err: err}
	}
	return fields, nil
}

// ReadAll exhausts the reader, repeatedly calling Read to collect records until io.EOF
// and returning the accumulated records slice plus the first non-EOF error encountered.
func (r *Reader) ReadAll() (records [][]string, err error) {
	for {
		record, err := r.Read()
		if err == io.EOF {
			return records, nil
		}
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
}

// Line reports the 1-based line number of the record most recently returned by Read.
func (r *Reader) Line() int {
	return r.first + r.pos - 1
}

// SplitFields tokenizes a single line using the lenient quoting rules.
func SplitFields(line string, comma, quote rune) []string {
	fields, _, _ := splitLine(line, comma, quote, false)
	return fields
}

// splitLine returns the fields of line. On a strict-mode failure it returns the
// 1-based column of the offending rune.
func splitLine(line string, comma, quote rune, strict bool) ([]string, int, error) { //nolint:gocognit
	fields := make([]string, 0, 8)
	var field strings.Builder

	i, column := 0, 1
	for {
		field.Reset()

		r, size := utf8.DecodeRuneInString(line[i:])
		if i < len(line) && r == quote {
			// Quoted field: the delimiter is literal and "" is an escaped quote.
			i += size
			column++
			closed := false
			for i < len(line) {
				r, size = utf8.DecodeRuneInString(line[i:])
				if r == quote {
					next, nextSize := utf8.DecodeRuneInString(line[i+size:])
					if i+size < len(line) && next == quote {
						field.WriteRune(quote)
						i += size + nextSize
						column += 2
						continue
					}
					i += size
					column++
					closed = true
					break
				}
				field.WriteString(line[i : i+size])
				i += size
				column++
			}
			if !closed && strict {
				return nil, column, ErrUnterminatedQuote
			}
			// Text between the closing quote and the next delimiter is kept verbatim.
			for i < len(line) {
				r, size = utf8.DecodeRuneInString(line[i:])
				if r == comma {
					break
				}
				if strict {
					return nil, column - 1, ErrBareQuote
				}
				field.WriteString(line[i : i+size])
				i += size
				column++
			}
		} else {
			for i < len(line) {
				r, size = utf8.DecodeRuneInString(line[i:])
				if r == comma {
					break
				}
				if r == quote && strict {
					return nil, column, ErrBareQuote
				}
				field.WriteString(line[i : i+size])
				i += size
				column++
			}
		}

		fields = append(fields, field.String())
		if i >= len(line) {
			return fields, 0, nil
		}

		// Skip the delimiter; a trailing delimiter yields a final empty field.
		_, size = utf8.DecodeRuneInString(line[i:])
		i += size
		column++
	}
}
