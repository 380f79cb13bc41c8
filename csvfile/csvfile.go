// Package csvfile loads and saves csvdoc tables on disk.
//
// Reading honors a leading byte order mark: UTF-8 BOMs are stripped and UTF-16
// input is transcoded to UTF-8. Input without a BOM is passed through byte for
// byte. Saving replaces the target atomically.
package csvfile

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/natefinch/atomic"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/oleg578/csvdoc"
)

const filePerms = 0o644

var (
	// ErrNotFound is returned when the path to load does not exist.
	ErrNotFound = errors.New("csvfile: file not found")
	// ErrIO wraps any other read or write failure.
	ErrIO = errors.New("csvfile: i/o error")
)

// Load reads path and parses it with opts.
func Load(path string, opts ...csvdoc.Option) (*csvdoc.Table, error) {
	text, err := ReadText(path)
	if err != nil {
		return nil, err
	}
	return csvdoc.Parse(text, opts...)
}

// Save serializes t and atomically replaces path with the result.
func Save(path string, t *csvdoc.Table) error {
	return WriteText(path, t.String())
}

// ReadText returns the decoded contents of path.
func ReadText(path string) (string, error) {
	f, err := os.Open(path) //nolint:gosec // path is intentionally user-controlled
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return "", fmt.Errorf("%w: %w", ErrIO, err)
	}
	defer f.Close()

	text, err := DecodeText(f)
	if err != nil {
		return "", fmt.Errorf("%w: reading %s: %w", ErrIO, path, err)
	}
	return text, nil
}

// DecodeText reads all of r, removing a leading byte order mark.
func DecodeText(r io.Reader) (string, error) {
	dec := unicode.BOMOverride(transform.Nop)
	data, err := io.ReadAll(transform.NewReader(r, dec))
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// WriteText atomically replaces path with text. New files are created with
// mode 0644; existing files keep their mode.
func WriteText(path, text string) error {
	_, statErr := os.Stat(path)
	created := errors.Is(statErr, fs.ErrNotExist)

	if err := atomic.WriteFile(path, strings.NewReader(text)); err != nil {
		return fmt.Errorf("%w: writing %s: %w", ErrIO, path, err)
	}

	if created {
		if err := os.Chmod(path, filePerms); err != nil {
			return fmt.Errorf("%w: setting permissions on %s: %w", ErrIO, path, err)
		}
	}
	return nil
}
