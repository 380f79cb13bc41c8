package cli

import (
	"context"

	flag "github.com/spf13/pflag"
)

func (e *env) countCmd() *Command {
	fs := flag.NewFlagSet("count", flag.ContinueOnError)
	delimiter := fs.StringP("delimiter", "d", e.cfg.Delimiter, "Input delimiter (default: detect)")
	dropEmpty := fs.Bool("drop-empty", e.cfg.DropEmpty, "Do not count rows whose values are all empty")

	return &Command{
		Flags: fs,
		Usage: "count [flags] <file|->",
		Short: "Print the number of data rows",
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
				t.Filter(nil)
			}
			o.Println(t.Len())
			return nil
		},
	}
}
