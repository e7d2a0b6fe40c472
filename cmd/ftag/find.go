package main

import (
	"github.com/spf13/cobra"

	"github.com/skraft/ftag/internal/query"
)

func init() {
	rootCmd.AddCommand(findCmd)
}

var findCmd = &cobra.Command{
	Use:   "find <tag>... [-- <excluded-tag>...]",
	Short: "Find files by tag",
	Long: `List every file carrying all of the given tags. Tags after a "--"
separator are exclusions: files carrying any of them are dropped from
the result. At least one included tag is required.

  ftag find vacation beach -- private`,
	Args: cobra.ArbitraryArgs,
	RunE: runFind,
}

func runFind(cmd *cobra.Command, args []string) error {
	include, exclude := query.SplitAtDash(args, cmd.ArgsLenAtDash())

	st := mustOpenStore()
	defer st.Close()

	files, err := query.Find(st, include, exclude)
	if err != nil {
		exitStoreError(err)
	}

	printLines(files)
	return nil
}
