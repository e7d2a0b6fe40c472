package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/skraft/ftag/internal/taglist"
)

func init() {
	exportCmd.Flags().StringP("output", "o", "", "Write to file instead of stdout")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the tag store as YAML",
	Long: `Write the whole file-to-tag association as a YAML tag list, paths and
tag sets in ascending order. The output can be re-imported with
'ftag import'.`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")

	st := mustOpenStore()
	defer st.Close()

	files, err := st.Dump()
	if err != nil {
		exitStoreError(err)
	}

	w := os.Stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			exitWithError(ExitError, "creating %s: %v", output, err)
		}
		defer f.Close()
		w = f
	}

	if err := taglist.Write(w, files); err != nil {
		exitWithError(ExitError, "%v", err)
	}
	return nil
}
