// Command critic classifies movie reviews against positive and negative
// word lists and keeps the results in a small local database.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/roach88/critic/internal/cli"
)

func main() {
	err := cli.NewRootCommand().Execute()
	if err == nil {
		return
	}

	// ExitErrors have already been reported by the formatter.
	var exitErr *cli.ExitError
	if !errors.As(err, &exitErr) {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	os.Exit(cli.GetExitCode(err))
}
