// Package cli implements the csvdoc command line.
package cli

import (
	"context"
	"errors"
	goflag "flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	flag "github.com/spf13/pflag"
	"k8s.io/klog/v2"

	"github.com/oleg578/csvdoc/internal/config"
)

// Run is the main entry point. Returns exit code.
func Run(in io.Reader, out, errOut io.Writer, args []string, workDir string) int {
	o := NewIO(in, out, errOut)

	fs := flag.NewFlagSet("csvdoc", flag.ContinueOnError)
	fs.SetInterspersed(false)
	fs.SetOutput(&strings.Builder{})

	flagCwd := fs.StringP("cwd", "C", "", "Run as if started in `dir`")
	flagConfig := fs.StringP("config", "c", "", "Use specified config `file`")
	flagHelp := fs.BoolP("help", "h", false, "Show help")

	gfs := goflag.NewFlagSet("klog", goflag.ContinueOnError)
	klog.InitFlags(gfs)
	fs.AddGoFlagSet(gfs)

	if len(args) > 0 {
		args = args[1:]
	}

	if err := fs.Parse(args); err != nil {
		o.ErrPrintln("error:", err)
		printUsage(errOut, nil)
		return 1
	}

	if *flagCwd != "" {
		workDir = *flagCwd
	}
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			o.ErrPrintln("error: cannot get working directory:", err)
			return 1
		}
		workDir = wd
	}

	cfg, sources, err := config.Load(workDir, *flagConfig)
	if err != nil {
		o.ErrPrintln("error:", err)
		return 1
	}
	klog.V(3).InfoS("loaded config", "project", sources.Project, "explicit", sources.Explicit)

	e := &env{workDir: workDir, cfg: cfg, sources: sources}
	commands := e.commands()

	rest := fs.Args()
	if *flagHelp || len(rest) == 0 {
		printUsage(out, commands)
		return 0
	}

	name := rest[0]
	for _, cmd := range commands {
		if cmd.Name() == name {
			return cmd.Run(context.Background(), o, rest[1:])
		}
	}

	o.ErrPrintln("error: unknown command:", name)
	printUsage(errOut, commands)
	return 1
}

func printUsage(w io.Writer, commands []*Command) {
	var b strings.Builder
	b.WriteString("Usage: csvdoc [flags] <command> [args]\n\n")
	b.WriteString("Flags:\n")
	b.WriteString("  -C, --cwd <dir>       Run as if started in <dir>\n")
	b.WriteString("  -c, --config <file>   Use specified config file\n")
	b.WriteString("  -v, --v <level>       Log verbosity\n")
	b.WriteString("  -h, --help            Show help\n")
	if len(commands) > 0 {
		b.WriteString("\nCommands:\n")
		for _, cmd := range commands {
			b.WriteString(cmd.HelpLine())
			b.WriteByte('\n')
		}
	}
	_, _ = io.WriteString(w, b.String())
}

// env carries what every command needs after global flags are handled.
type env struct {
	workDir string
	cfg     config.Config
	sources config.Sources
}

func (e *env) commands() []*Command {
	return []*Command{
		e.fmtCmd(),
		e.keysCmd(),
		e.countCmd(),
		e.addCmd(),
		e.configCmd(),
	}
}

// path resolves p against the working directory. "-" is left alone.
func (e *env) path(p string) string {
	if p == "-" || p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(e.workDir, p)
}

var (
	errMissingInput = errors.New("missing input file (use - for stdin)")
	errTooManyArgs  = errors.New("too many arguments")
)

func oneInput(args []string) (string, error) {
	switch len(args) {
	case 0:
		return "", errMissingInput
	case 1:
		return args[0], nil
	}
	return "", fmt.Errorf("%w: %s", errTooManyArgs, strings.Join(args[1:], " "))
}
