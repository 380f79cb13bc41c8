package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// CLI runs csvdoc commands against a temp directory in tests.
type CLI struct {
	t   *testing.T
	Dir string
}

// NewCLI creates a new test CLI with a temp directory.
func NewCLI(t *testing.T) *CLI {
	t.Helper()

	return &CLI{t: t, Dir: t.TempDir()}
}

// Run executes the CLI with the given args and returns stdout, stderr, and exit code.
// Args should not include "csvdoc"; it is added automatically.
func (c *CLI) Run(args ...string) (string, string, int) {
	return c.RunWithInput(strings.NewReader(""), args...)
}

// RunWithInput is Run with stdin.
func (c *CLI) RunWithInput(stdin io.Reader, args ...string) (string, string, int) {
	var outBuf, errBuf bytes.Buffer

	fullArgs := append([]string{"csvdoc"}, args...)
	code := Run(stdin, &outBuf, &errBuf, fullArgs, c.Dir)

	return outBuf.String(), errBuf.String(), code
}

// MustRun executes the CLI and fails the test on a non-zero exit.
// Returns stdout without its final newline.
func (c *CLI) MustRun(args ...string) string {
	c.t.Helper()

	stdout, stderr, code := c.Run(args...)
	if code != 0 {
		c.t.Fatalf("command %v failed with exit code %d\nstderr: %s", args, code, stderr)
	}

	return strings.TrimSuffix(stdout, "\n")
}

// MustFail executes the CLI and fails the test if the command succeeds.
// Returns trimmed stderr.
func (c *CLI) MustFail(args ...string) string {
	c.t.Helper()

	stdout, stderr, code := c.Run(args...)
	if code == 0 {
		c.t.Fatalf("command %v should have failed\nstdout: %s", args, stdout)
	}

	return strings.TrimSpace(stderr)
}

// WriteFile writes a file relative to the CLI's directory.
func (c *CLI) WriteFile(name, content string) {
	c.t.Helper()

	if err := os.WriteFile(filepath.Join(c.Dir, name), []byte(content), 0o600); err != nil {
		c.t.Fatalf("write %s: %v", name, err)
	}
}

// ReadFile reads a file relative to the CLI's directory.
func (c *CLI) ReadFile(name string) string {
	c.t.Helper()

	data, err := os.ReadFile(filepath.Join(c.Dir, name))
	if err != nil {
		c.t.Fatalf("read %s: %v", name, err)
	}

	return string(data)
}
