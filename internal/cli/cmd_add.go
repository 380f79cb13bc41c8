package cli

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	flag "github.com/spf13/pflag"
)

var (
	errMissingValues = errors.New("missing key=value arguments")
	errBadAssignment = errors.New("expected key=value")
)

func (e *env) addCmd() *Command {
	fs := flag.NewFlagSet("add", flag.ContinueOnError)
	delimiter := fs.StringP("delimiter", "d", e.cfg.Delimiter, "Input delimiter (default: detect)")
	output := fs.StringP("output", "o", "", "Write to `file` (default: rewrite the input, stdout for -)")
	var out outputFlags
	addOutputFlags(fs, e, &out)

	return &Command{
		Flags: fs,
		Usage: "add [flags] <file|-> key=value...",
		Short: "Append a row",
		Long: "Append one row built from key=value arguments.\n" +
			"Values are placed in header order. Keys not in the header are dropped with a warning.",
		Exec: func(_ context.Context, o *IO, args []string) error {
			if len(args) == 0 {
				return errMissingInput
			}
			if len(args) == 1 {
				return errMissingValues
			}
			in := args[0]

			values := make(map[string]string, len(args)-1)
			for _, arg := range args[1:] {
				k, v, ok := strings.Cut(arg, "=")
				if !ok || k == "" {
					return fmt.Errorf("%w: %q", errBadAssignment, arg)
				}
				values[k] = v
			}

			t, err := e.load(o, in, *delimiter)
			if err != nil {
				return err
			}

			keys := t.Keys()
			var unknown []string
			for k := range values {
				if !slices.Contains(keys, k) {
					unknown = append(unknown, k)
				}
			}
			slices.Sort(unknown)
			for _, k := range unknown {
				o.Warn("key %q is not in the header, value dropped", k)
			}

			t.Add(values)

			text, err := render(t, out)
			if err != nil {
				return err
			}
			target := *output
			if target == "" {
				target = in
			}
			return e.emit(o, target, text)
		},
	}
}
