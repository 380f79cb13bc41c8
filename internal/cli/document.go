package cli

import (
	"fmt"
	"strings"

	"k8s.io/klog/v2"

	"github.com/oleg578/csvdoc"
	"github.com/oleg578/csvdoc/csvfile"
	"github.com/oleg578/csvdoc/internal/config"
)

// outputFlags are shared by commands that write a document.
type outputFlags struct {
	outDelimiter string
	crlf         bool
	quoteAll     bool
}

func delimiterOption(d string) ([]csvdoc.Option, error) {
	if d == "" {
		return nil, nil
	}
	if err := config.Validate(config.Config{Delimiter: d}); err != nil {
		return nil, err
	}
	return []csvdoc.Option{csvdoc.WithDelimiter(config.Rune(d))}, nil
}

// load reads a document from path, or from stdin when path is "-".
func (e *env) load(o *IO, path, delimiter string) (*csvdoc.Table, error) {
	opts, err := delimiterOption(delimiter)
	if err != nil {
		return nil, err
	}

	var t *csvdoc.Table
	if path == "-" {
		text, err := csvfile.DecodeText(o.in)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		t, err = csvdoc.Parse(text, opts...)
		if err != nil {
			return nil, err
		}
	} else {
		t, err = csvfile.Load(e.path(path), opts...)
		if err != nil {
			return nil, err
		}
	}

	klog.V(2).InfoS("parsed document",
		"path", path,
		"delimiter", string(t.Delimiter()),
		"keys", len(t.Keys()),
		"rows", t.Len())
	return t, nil
}

func render(t *csvdoc.Table, f outputFlags) (string, error) {
	if f.outDelimiter != "" {
		if err := config.Validate(config.Config{OutDelimiter: f.outDelimiter}); err != nil {
			return "", err
		}
		if err := t.SetDelimiter(config.Rune(f.outDelimiter)); err != nil {
			return "", err
		}
	}

	var b strings.Builder
	w := csvdoc.NewWriter(&b)
	w.UseCRLF = f.crlf
	w.AlwaysQuote = f.quoteAll
	if err := t.WriteCSV(w); err != nil {
		return "", err
	}
	if err := w.Flush(); err != nil {
		return "", err
	}
	return b.String(), nil
}

// emit writes text to stdout when path is empty or "-", otherwise replaces the file.
func (e *env) emit(o *IO, path, text string) error {
	if path == "" || path == "-" {
		o.Println(text)
		return nil
	}
	target := e.path(path)
	if err := csvfile.WriteText(target, text); err != nil {
		return err
	}
	klog.V(2).InfoS("wrote document", "path", target, "bytes", len(text))
	return nil
}
