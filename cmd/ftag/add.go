package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(addCmd)
}

var addCmd = &cobra.Command{
	Use:   "add <file> <tag>...",
	Short: "Add tags to a file",
	Long: `Add one or more tags to a file and print its resulting tag set.

Tags the file already carries are ignored; a (file, tag) pair exists at
most once. The path is recorded exactly as given.`,
	Args: cobra.MinimumNArgs(2),
	RunE: runAdd,
}

func runAdd(cmd *cobra.Command, args []string) error {
	st := mustOpenStore()
	defer st.Close()

	tags, err := st.AddTags(args[0], args[1:])
	if err != nil {
		exitStoreError(err)
	}

	printLines(tags)
	return nil
}
