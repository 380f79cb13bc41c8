package cli

import (
	"context"

	flag "github.com/spf13/pflag"

	"github.com/oleg578/csvdoc/internal/config"
)

func (e *env) configCmd() *Command {
	fs := flag.NewFlagSet("config", flag.ContinueOnError)

	return &Command{
		Flags: fs,
		Usage: "config",
		Short: "Print the effective configuration",
		Exec: func(_ context.Context, o *IO, args []string) error {
			if len(args) > 0 {
				return errTooManyArgs
			}
			text, err := config.Format(e.cfg)
			if err != nil {
				return err
			}
			o.Println(text)
			if e.sources.Project != "" {
				o.ErrPrintln("# project:", e.sources.Project)
			}
			if e.sources.Explicit != "" {
				o.ErrPrintln("# config:", e.sources.Explicit)
			}
			return nil
		},
	}
}
