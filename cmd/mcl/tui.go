package main

import (
	"context"

	"mcl/internal/tui"

	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Start the interactive interface",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	svc, err := connectService(context.Background())
	if err != nil {
		return err
	}
	defer svc.Close()

	return tui.Run(svc)
}
