// Command gls254util exercises the gls254 package from the command line:
// it can replay the published test vectors and benchmark the four
// exported operations.
package main

import (
	"os"

	"github.com/hashicorp/go-hclog"
)

var logger hclog.Logger

func main() {
	logger = hclog.New(&hclog.LoggerOptions{
		Name:  "gls254util",
		Level: hclog.Info,
	})

	if err := newRootCommand().Execute(); err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}
