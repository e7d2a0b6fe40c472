package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skraft/ftag/internal/store"
)

func init() {
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create an empty tag store in the current directory",
	Args:  cobra.NoArgs,
	RunE:  runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	path := storePath()

	st, err := store.Init(path)
	if err != nil {
		exitStoreError(err)
	}
	defer st.Close()

	fmt.Printf("initialized empty tag store at %s\n", path)
	return nil
}
