package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(renameCmd)
}

var renameCmd = &cobra.Command{
	Use:   "rename <file> <old> <new>",
	Short: "Rename a tag on a single file",
	Long: `Replace one tag with another on a single file and print its tag set.

Equivalent to removing the old tag and adding the new one, for this file
only; other files keep the old tag. If the file does not carry the old
tag, nothing changes.`,
	Args: cobra.ExactArgs(3),
	RunE: runRename,
}

func runRename(cmd *cobra.Command, args []string) error {
	st := mustOpenStore()
	defer st.Close()

	tags, err := st.RenameTag(args[0], args[1], args[2])
	if err != nil {
		exitStoreError(err)
	}

	printLines(tags)
	return nil
}
