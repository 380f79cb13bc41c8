package cli

import (
	"context"

	flag "github.com/spf13/pflag"
)

func (e *env) keysCmd() *Command {
	fs := flag.NewFlagSet("keys", flag.ContinueOnError)
	delimiter := fs.StringP("delimiter", "d", e.cfg.Delimiter, "Input delimiter (default: detect)")

	return &Command{
		Flags: fs,
		Usage: "keys [flags] <file|->",
		Short: "Print header keys, one per line",
		Exec: func(_ context.Context, o *IO, args []string) error {
			in, err := oneInput(args)
			if err != nil {
				return err
			}
			t, err := e.load(o, in, *delimiter)
			if err != nil {
				return err
			}
			for _, k := range t.Keys() {
				o.Println(k)
			}
			return nil
		},
	}
}
