package csvdoc

import (
	"errors"
	"fmt"
	"io"
	"reflect"
	"slices"

	"github.com/jszwec/csvutil"
)

// Decode stores the table's rows in v, which must be a non-nil pointer to a struct,
// a slice of structs or an array of structs. Struct fields are matched to header keys
// by their `csv` tag, as csvutil does. Rows are projected onto the header first, so
// every record handed to the decoder is exactly as wide as the header.
//
// Decoding into a single struct consumes the first row and fails with ErrDecode when
// there is none. A slice target receives an empty slice for a table without rows.
func (t *Table) Decode(v any) error {
	if len(t.keys) == 0 {
		return fmt.Errorf("%w: table has no header", ErrDecode)
	}

	rr := &rowReader{t: t}
	dec, err := csvutil.NewDecoder(rr, t.keys...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDecode, err)
	}
	if err := dec.Decode(v); err != nil {
		switch {
		case errors.Is(err, io.EOF):
			if emptySlice(v) {
				return nil
			}
			return fmt.Errorf("%w: no rows", ErrDecode)
		case rr.pos == 0:
			return fmt.Errorf("%w: %w", ErrDecode, err)
		}
		return fmt.Errorf("%w: row %d: %w", ErrDecode, rr.pos-1, err)
	}
	return nil
}

// Encode builds a table from v, a slice or array of structs (or pointers to structs).
// The header is the struct's csv field order; every element becomes one row.
func Encode(v any, opts ...Option) (*Table, error) {
	val := reflect.ValueOf(v)
	for val.Kind() == reflect.Pointer && !val.IsNil() {
		val = val.Elem()
	}
	if val.Kind() != reflect.Slice && val.Kind() != reflect.Array {
		return nil, fmt.Errorf("csvdoc: Encode(%T): want slice or array of structs", v)
	}

	keys, err := csvutil.Header(reflect.New(val.Type().Elem()).Interface(), "")
	if err != nil {
		return nil, err
	}
	t, err := New(keys, opts...)
	if err != nil {
		return nil, err
	}

	tw := &tableWriter{t: t}
	enc := csvutil.NewEncoder(tw)
	for i := 0; i < val.Len(); i++ {
		if err := enc.Encode(val.Index(i).Interface()); err != nil {
			return nil, fmt.Errorf("csvdoc: encoding element %d: %w", i, err)
		}
	}
	return t, nil
}

// emptySlice sets *v to an empty slice when v points to a slice.
func emptySlice(v any) bool {
	val := reflect.ValueOf(v)
	if val.Kind() != reflect.Pointer || val.IsNil() || val.Elem().Kind() != reflect.Slice {
		return false
	}
	val.Elem().Set(reflect.MakeSlice(val.Elem().Type(), 0, 0))
	return true
}

// rowReader feeds header-projected rows to a csvutil.Decoder.
type rowReader struct {
	t   *Table
	pos int
}

func (r *rowReader) Read() ([]string, error) {
	if r.pos >= len(r.t.rows) {
		return nil, io.EOF
	}
	fields := make([]string, len(r.t.keys))
	r.t.project(r.t.rows[r.pos], fields)
	r.pos++
	return fields, nil
}

// tableWriter receives records from a csvutil.Encoder. The encoder emits the
// header before the first row.
type tableWriter struct {
	t      *Table
	header bool
}

func (w *tableWriter) Write(record []string) error {
	if !w.header {
		w.header = true
		w.t.keys = slices.Clone(record)
		return nil
	}
	w.t.rows = append(w.t.rows, assemble(w.t.keys, record))
	return nil
}
