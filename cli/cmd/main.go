// Command polyquine prints a self-reproducing program in the
// language selected by --cpp or --python.
package main

import (
	"errors"
	"log/slog"
	"os"

	"github.com/byte4ever/polyquine/cli"
)

func main() {
	err := cli.Run(os.Stdout, os.Stderr, os.Exit, os.Args[1:]...)
	if err == nil {
		return
	}

	var ue *cli.UsageError
	if errors.As(err, &ue) {
		// Already reported by the parser.
		os.Exit(2)
	}

	slog.Error("fatal", "error", err)
	os.Exit(1)
}
