package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/skraft/ftag/internal/store"
)

// printLines writes result strings to stdout, one per line.
func printLines(lines []string) {
	for _, line := range lines {
		fmt.Println(line)
	}
}

// exitWithError writes a diagnostic to stderr and exits.
func exitWithError(code int, format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
	os.Exit(code)
}

// exitStoreError maps store sentinel errors to exit codes and exits.
func exitStoreError(err error) {
	switch {
	case errors.Is(err, store.ErrStoreNotFound), errors.Is(err, store.ErrStoreExists):
		exitWithError(ExitStoreError, "%v", err)
	case errors.Is(err, store.ErrCorrupt):
		exitWithError(ExitDataError, "%v", err)
	case errors.Is(err, store.ErrEmptyInclude):
		exitWithError(ExitQueryError, "%v", err)
	default:
		exitWithError(ExitError, "%v", err)
	}
}
