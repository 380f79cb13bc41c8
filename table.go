package csvdoc

import (
	"fmt"
	"io"
	"slices"
	"strings"
)

// Table is an in-memory CSV document: a dialect, an ordered header and an ordered
// sequence of records. A Table is not safe for concurrent use.
type Table struct {
	dialect Dialect
	keys    []string
	rows    []*Record
}

// Parse decodes a complete document. The newline style is detected from the text;
// the delimiter comes from WithDelimiter, a leading sep= hint line, or defaults to ','.
//
// Rows shorter than the header are zero-filled and longer rows are truncated. Parse
// fails with ErrInvalidInput only when no header line exists or the header line is blank.
func Parse(text string, opts ...Option) (*Table, error) {
	o, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}
	if text == "" {
		return nil, fmt.Errorf("%w: empty document", ErrInvalidInput)
	}

	dialect, hinted := DetectDialect(text)
	if o.delimiter != 0 {
		dialect.Delimiter = o.delimiter
	}

	lines := splitLines(text, dialect.Newline)
	first := 1
	if hinted {
		lines = lines[1:]
		first = 2
	}
	if len(lines) == 0 {
		return nil, &ParseError{Line: first, Err: fmt.Errorf("%w: missing header line", ErrInvalidInput)}
	}
	if lines[0] == "" {
		return nil, &ParseError{Line: first, Err: fmt.Errorf("%w: blank header line", ErrInvalidInput)}
	}

	r := NewReader(lines)
	r.Comma = dialect.Delimiter
	r.Strict = o.strict
	r.first = first

	keys, err := r.Read()
	if err != nil {
		return nil, err
	}

	rows := make([]*Record, 0, len(lines)-1)
	for {
		fields, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		rows = append(rows, assemble(keys, fields))
	}

	return &Table{dialect: dialect, keys: keys, rows: rows}, nil
}

// ParseBytes is Parse for a byte slice.
func ParseBytes(data []byte, opts ...Option) (*Table, error) {
	return Parse(string(data), opts...)
}

// New returns an empty table with the given header. Only WithDelimiter affects it.
func New(keys []string, opts ...Option) (*Table, error) {
	o, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}
	d := Dialect{Delimiter: DefaultDelimiter, Newline: newlineLF}
	if o.delimiter != 0 {
		d.Delimiter = o.delimiter
	}
	return &Table{dialect: d, keys: slices.Clone(keys)}, nil
}

// Dialect returns the table's dialect.
func (t *Table) Dialect() Dialect {
	return t.dialect
}

// Delimiter returns the delimiter used for serialization.
func (t *Table) Delimiter() rune {
	return t.dialect.Delimiter
}

// SetDelimiter changes the delimiter for future serialization. Existing records are
// not re-tokenized. The quote, CR, LF and invalid runes are rejected with
// ErrInvalidDelimiter and leave the table unchanged.
func (t *Table) SetDelimiter(d rune) error {
	if !validDelimiter(d) {
		return fmt.Errorf("%w: %q", ErrInvalidDelimiter, d)
	}
	t.dialect.Delimiter = d
	return nil
}

// Newline returns the newline sequence detected on input.
func (t *Table) Newline() string {
	return t.dialect.Newline
}

// Keys returns a copy of the header.
func (t *Table) Keys() []string {
	return slices.Clone(t.keys)
}

// SetKeys replaces the header. Existing records are not realigned: values under
// keys no longer in the header are dropped on serialization and new keys
// serialize as empty fields.
func (t *Table) SetKeys(keys []string) {
	t.keys = slices.Clone(keys)
}

// Rows returns the records in order. The slice is a copy; the records are shared.
func (t *Table) Rows() []*Record {
	return slices.Clone(t.rows)
}

// SetRows replaces all records. Nil entries become empty records.
func (t *Table) SetRows(rows []*Record) {
	t.rows = densify(rows)
}

// Len returns the number of records.
func (t *Table) Len() int {
	return len(t.rows)
}

// Row returns the record at index i.
func (t *Table) Row(i int) (*Record, bool) {
	if i < 0 || i >= len(t.rows) {
		return nil, false
	}
	return t.rows[i], true
}

// WriteCSV serializes the table through w using the table's delimiter. The writer's
// newline and quoting flags are honored. The caller flushes w.
func (t *Table) WriteCSV(w *Writer) error {
	w.Comma = t.dialect.Delimiter
	if w.comma() != DefaultDelimiter {
		if err := w.WriteHint(); err != nil {
			return err
		}
	}
	if err := w.Write(t.keys); err != nil {
		return err
	}
	fields := make([]string, len(t.keys))
	for _, row := range t.rows {
		t.project(row, fields)
		if err := w.Write(fields); err != nil {
			return err
		}
	}
	return nil
}

// WriteTo writes the serialized table to dst.
func (t *Table) WriteTo(dst io.Writer) (int64, error) {
	cw := &countingWriter{w: dst}
	w := NewWriter(cw)
	if err := t.WriteCSV(w); err != nil {
		return cw.n, err
	}
	err := w.Flush()
	return cw.n, err
}

// String returns the serialized document. Lines are separated by "\n" whatever
// newline style the input used.
func (t *Table) String() string {
	var b strings.Builder
	// strings.Builder never fails.
	_, _ = t.WriteTo(&b)
	return b.String()
}

// MarshalText implements encoding.TextMarshaler.
func (t *Table) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using Parse with detection.
func (t *Table) UnmarshalText(text []byte) error {
	parsed, err := ParseBytes(text)
	if err != nil {
		return err
	}
	*t = *parsed
	return nil
}

// project fills fields with row's values in header order. It is equivalent to
// key-order matching followed by zero-fill of absent header keys.
func (t *Table) project(row *Record, fields []string) {
	for i, k := range t.keys {
		fields[i] = row.Get(k)
	}
}

func densify(rows []*Record) []*Record {
	out := make([]*Record, len(rows))
	for i, r := range rows {
		if r == nil {
			r = &Record{}
		}
		out[i] = r
	}
	return out
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
