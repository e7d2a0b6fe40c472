package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(rmCmd)
}

var rmCmd = &cobra.Command{
	Use:   "rm <file> <tag>...",
	Short: "Remove tags from a file",
	Long: `Remove one or more tags from a file and print its remaining tag set.

Tags not associated with the file are ignored; removing from an untagged
file is legal and leaves the store unchanged.`,
	Args: cobra.MinimumNArgs(2),
	RunE: runRm,
}

func runRm(cmd *cobra.Command, args []string) error {
	st := mustOpenStore()
	defer st.Close()

	tags, err := st.RemoveTags(args[0], args[1:])
	if err != nil {
		exitStoreError(err)
	}

	printLines(tags)
	return nil
}
