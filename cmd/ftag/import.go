package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/skraft/ftag/internal/taglist"
)

func init() {
	rootCmd.AddCommand(importCmd)
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Merge a YAML tag list into the store",
	Long: `Read a tag list produced by 'ftag export' and add its associations to
the store. Pairs already present are ignored, so importing is idempotent
and never removes existing tags.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func runImport(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		exitWithError(ExitError, "opening %s: %v", args[0], err)
	}
	defer f.Close()

	files, err := taglist.Read(f)
	if err != nil {
		exitWithError(ExitDataError, "%v", err)
	}

	st := mustOpenStore()
	defer st.Close()

	pairs := 0
	for _, ft := range files {
		if _, err := st.AddTags(ft.Path, ft.Tags); err != nil {
			exitStoreError(err)
		}
		pairs += len(ft.Tags)
	}

	fmt.Printf("imported %d files (%d tag pairs)\n", len(files), pairs)
	return nil
}
