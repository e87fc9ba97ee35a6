package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var versionsCmd = &cobra.Command{
	Use:   "versions",
	Short: "List installable game versions",
	RunE:  runVersions,
}

func init() {
	rootCmd.AddCommand(versionsCmd)
}

func runVersions(cmd *cobra.Command, args []string) error {
	svc, err := initService()
	if err != nil {
		return err
	}
	defer svc.Close()

	versions := svc.Meta().Versions(context.Background())

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(versions)
	}
	for _, v := range versions {
		fmt.Println(v)
	}
	return nil
}
