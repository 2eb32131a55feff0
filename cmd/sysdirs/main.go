// Package main is the entry point for the sysdirs CLI.
package main

import (
	"fmt"
	"os"

	stderrors "errors"

	"github.com/thoreinstein/sysdirs/cmd/sysdirs/commands"
	"github.com/thoreinstein/sysdirs/internal/errors"
)

func main() {
	if err := commands.Execute(); err != nil {
		code := errors.ExitUser

		var exitErr *errors.ExitError
		if stderrors.As(err, &exitErr) {
			code = exitErr.Code
			if exitErr.Suggestion != "" {
				fmt.Fprintf(os.Stderr, "Error: %v\n%s\n", err, exitErr.Suggestion)
				os.Exit(code)
			}
		}

		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(code)
	}
}
