package csvdoc

import (
	"bufio"
	"errors"
	"io"
	"strings"
	"unicode/utf8"
)

var (
	errNilWriter      = errors.New("csvdoc: writer is nil")
	errWriterNoTarget = errors.New("csvdoc: writer destination cannot be nil")
)

// Writer emits delimiter-separated lines. Lines are separated, not terminated:
// nothing follows the last line written.
//
// Writer satisfies the csvutil.Writer interface.
type Writer struct {
	dst *bufio.Writer

	// Comma is the field delimiter. Default is ','.
	Comma rune
	// Quote is the quote character. Default is '"'.
	Quote rune
	// UseCRLF separates lines with \r\n when set.
	UseCRLF bool
	// AlwaysQuote forces quoting for all fields when enabled.
	AlwaysQuote bool

	started bool
	err     error
}

// NewWriter creates a new Writer that buffers output to w.
func NewWriter(w io.Writer) *Writer {
	if w == nil {
		panic(errWriterNoTarget.Error())
	}
	return &Writer{
		dst:   bufio.NewWriter(w),
		Comma: DefaultDelimiter,
		Quote: quoteChar,
	}
}

// Reset updates the underlying writer while preserving the configuration flags.
// The next line written is treated as the first.
func (w *Writer) Reset(dst io.Writer) {
	if w == nil {
		panic(errNilWriter.Error())
	}
	if dst == nil {
		panic(errWriterNoTarget.Error())
	}
	if w.dst == nil {
		w.dst = bufio.NewWriter(dst)
	} else {
		w.dst.Reset(dst)
	}
	w.started = false
	w.err = nil
}

// WriteHint emits the dialect-hint line sep=<Comma>.
func (w *Writer) WriteHint() error {
	if err := w.check(); err != nil {
		return err
	}
	if err := w.newline(); err != nil {
		return err
	}
	if _, err := w.dst.WriteString(hintMarker); err != nil {
		w.err = err
		return err
	}
	if _, err := w.dst.WriteRune(w.comma()); err != nil {
		w.err = err
		return err
	}
	return nil
}

// Write emits a single record as one line.
func (w *Writer) Write(record []string) error {
	if err := w.check(); err != nil {
		return err
	}

	comma := w.comma()
	quote := w.Quote
	if quote == 0 {
		quote = quoteChar
	}

	if err := w.newline(); err != nil {
		return err
	}
	for i := range record {
		if i > 0 {
			if _, err := w.dst.WriteRune(comma); err != nil {
				w.err = err
				return err
			}
		}
		if err := w.writeField(record[i], comma, quote); err != nil {
			w.err = err
			return err
		}
	}
	return nil
}

// WriteAll writes multiple records, stopping at the first error.
func (w *Writer) WriteAll(records [][]string) error {
	if w == nil {
		return errNilWriter
	}
	for _, record := range records {
		if err := w.Write(record); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes pending buffered data to the underlying writer.
func (w *Writer) Flush() error {
	if err := w.check(); err != nil {
		return err
	}
	if err := w.dst.Flush(); err != nil {
		w.err = err
		return err
	}
	return nil
}

// Error reports the first error encountered by the writer.
func (w *Writer) Error() error {
	if w == nil {
		return errNilWriter
	}
	return w.err
}

func (w *Writer) check() error {
	if w == nil {
		return errNilWriter
	}
	if w.dst == nil {
		return errWriterNoTarget
	}
	return w.err
}

func (w *Writer) comma() rune {
	if w.Comma == 0 {
		return DefaultDelimiter
	}
	return w.Comma
}

// newline writes the line separator before every line except the first.
func (w *Writer) newline() error {
	if !w.started {
		w.started = true
		return nil
	}
	sep := newlineLF
	if w.UseCRLF {
		sep = newlineCRLF
	}
	if _, err := w.dst.WriteString(sep); err != nil {
		w.err = err
		return err
	}
	return nil
}

func (w *Writer) writeField(field string, comma, quote rune) error {
	if !w.AlwaysQuote && !fieldNeedsQuote(field, comma) {
		_, err := w.dst.WriteString(field)
		return err
	}
	if _, err := w.dst.WriteRune(quote); err != nil {
		return err
	}

	q := string(quote)
	for {
		i := strings.Index(field, q)
		if i < 0 {
			break
		}
		if _, err := w.dst.WriteString(field[:i+len(q)]); err != nil {
			return err
		}
		if _, err := w.dst.WriteString(q); err != nil {
			return err
		}
		field = field[i+len(q):]
	}
	if _, err := w.dst.WriteString(field); err != nil {
		return err
	}
	_, err := w.dst.WriteRune(quote)
	return err
}

// fieldNeedsQuote reports whether field contains the delimiter. Quotes and
// newlines alone never trigger quoting.
func fieldNeedsQuote(field string, comma rune) bool {
	if comma < utf8.RuneSelf {
		return strings.IndexByte(field, byte(comma)) >= 0
	}
	return strings.ContainsRune(field, comma)
}
