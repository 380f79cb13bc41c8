package main

import (
	"os"

	"k8s.io/klog/v2"

	"github.com/oleg578/csvdoc/internal/cli"
)

func main() {
	code := cli.Run(os.Stdin, os.Stdout, os.Stderr, os.Args, "")
	klog.Flush()
	os.Exit(code)
}
