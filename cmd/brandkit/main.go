package main

import (
	"errors"
	"fmt"
	"os"

	brandkiterrors "github.com/alexisbeaulieu97/brandkit/pkg/errors"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps errors to process exit codes: 2 for bad input files, 1 for
// everything else including drift.
func exitCode(err error) int {
	var parseErr *brandkiterrors.ParseError
	var validationErr *brandkiterrors.ValidationError
	if errors.As(err, &parseErr) || errors.As(err, &validationErr) {
		return 2
	}
	return 1
}
