package main

import (
	"github.com/spf13/cobra"

	"github.com/skraft/ftag/internal/query"
)

func init() {
	listCmd.Flags().BoolP("reverse", "r", false, "Reverse the sorted order")
	listCmd.Flags().BoolP("counts", "c", false, "Show the number of files per tag")
	listCmd.Flags().BoolP("sort-count", "s", false, "Sort by file count instead of tag name")
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list [file]",
	Short: "List tags of a file, or all tags",
	Long: `List the tags of a file, or every tag in the store when no file is
given. Output is sorted ascending by tag name; -s sorts the global list
by file count instead, and -r reverses whichever order applies.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	reversed, _ := cmd.Flags().GetBool("reverse")
	counts, _ := cmd.Flags().GetBool("counts")
	byCount, _ := cmd.Flags().GetBool("sort-count")

	if len(args) == 1 && (counts || byCount) {
		exitWithError(ExitError, "-c and -s apply to the global tag list only")
	}

	st := mustOpenStore()
	defer st.Close()

	var lines []string
	var err error
	if len(args) == 1 {
		lines, err = query.ListFile(st, args[0], reversed)
	} else {
		lines, err = query.ListAll(st, query.ListOptions{
			ByCount:    byCount,
			Reverse:    reversed,
			ShowCounts: counts,
		})
	}
	if err != nil {
		exitStoreError(err)
	}

	printLines(lines)
	return nil
}
