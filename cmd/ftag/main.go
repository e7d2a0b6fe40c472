// Package main provides the ftag CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/skraft/ftag/internal/config"
	"github.com/skraft/ftag/internal/store"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		// Print the error since we have SilenceErrors: true
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ftag",
	Short: "Tag files in the current directory tree",
	Long: `ftag maintains a tag index over files in a directory.

Tags live in a single ftag.db store in the working directory, created
once with 'ftag init'. Each invocation performs one operation against
that store: add, remove or rename tags on a file, list tags, or find
files by tag.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Pick up FTAG_* overrides from a .env file if present.
		_ = godotenv.Load()
	},
}

func init() {
	rootCmd.Version = Version
}

// storePath resolves the store file location in the working directory.
func storePath() string {
	cwd, err := os.Getwd()
	if err != nil {
		exitWithError(ExitError, "getting current directory: %v", err)
	}
	return config.DBPath(cwd, store.DefaultDBName)
}

// mustOpenStore opens the store in the working directory, exits on error.
// The caller is responsible for calling Close() on the returned store.
func mustOpenStore() *store.Store {
	st, err := store.Open(storePath())
	if err != nil {
		exitStoreError(err)
	}
	return st
}
