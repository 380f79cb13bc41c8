package csvdoc

import (
	"fmt"
	"unicode/utf8"
)

// Option configures Parse, New and Encode.
type Option func(*options) error

type options struct {
	delimiter rune
	strict    bool
}

// WithDelimiter forces the field delimiter and skips delimiter detection.
// A dialect-hint line, if present, is still consumed.
//
// The delimiter must be a valid rune other than the quote character, CR or LF.
func WithDelimiter(d rune) Option {
	return func(o *options) error {
		if !validDelimiter(d) {
			return fmt.Errorf("%w: %q", ErrInvalidDelimiter, d)
		}
		o.delimiter = d
		return nil
	}
}

// WithStrictQuotes makes the tokenizer report malformed quoting as a *ParseError
// instead of recovering.
func WithStrictQuotes() Option {
	return func(o *options) error {
		o.strict = true
		return nil
	}
}

func applyOptions(opts []Option) (options, error) {
	var o options
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&o); err != nil {
			return options{}, err
		}
	}
	return o, nil
}

func validDelimiter(d rune) bool {
	return d != 0 && d != quoteChar && d != '\r' && d != '\n' && d != utf8.RuneError && utf8.ValidRune(d)
}
