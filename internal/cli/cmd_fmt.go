package cli

import (
	"context"

	flag "github.com/spf13/pflag"

	"github.com/oleg578/csvdoc"
)

func (e *env) fmtCmd() *Command {
	fs := flag.NewFlagSet("fmt", flag.ContinueOnError)
	delimiter := fs.StringP("delimiter", "d", e.cfg.Delimiter, "Input delimiter (default: detect)")
	dropEmpty := fs.Bool("drop-empty", e.cfg.DropEmpty, "Remove rows whose values are all empty")
	output := fs.StringP("output", "o", "", "Write to `file` instead of stdout")
	var out outputFlags
	addOutputFlags(fs, e, &out)

	return &Command{
		Flags: fs,
		Usage: "fmt [flags] <file|->",
		Short: "Normalize a CSV document",
		Long: "Parse a CSV document and write it back with minimal quoting.\n" +
			"Values are reordered to follow the header; missing values are written empty.",
		Exec: func(_ context.Context, o *IO, args []string) error {
			in, err := oneInput(args)
			if err != nil {
				return err
			}
			t, err := e.load(o, in, *delimiter)
			if err != nil {
				return err
			}
			if *dropEmpty {
				before := t.Len()
				t.Filter(csvdoc.NonEmpty)
				if dropped := before - t.Len(); dropped > 0 {
					o.ErrPrintln("dropped", dropped, "empty rows")
				}
			}
			text, err := render(t, out)
			if err != nil {
				return err
			}
			return e.emit(o, *output, text)
		},
	}
}

func addOutputFlags(fs *flag.FlagSet, e *env, out *outputFlags) {
	fs.StringVar(&out.outDelimiter, "out-delimiter", e.cfg.OutDelimiter, "Output delimiter (default: input delimiter)")
	fs.BoolVar(&out.crlf, "crlf", e.cfg.CRLF, "Separate lines with CRLF")
	fs.BoolVar(&out.quoteAll, "quote-all", e.cfg.QuoteAll, "Quote every field")
}
