package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var notificationsLimit int

var notificationsCmd = &cobra.Command{
	Use:   "notifications",
	Short: "Show recent notifications",
	RunE:  runNotifications,
}

func init() {
	notificationsCmd.Flags().IntVar(&notificationsLimit, "limit", 20, "maximum entries")
	rootCmd.AddCommand(notificationsCmd)
}

func runNotifications(cmd *cobra.Command, args []string) error {
	svc, err := initService()
	if err != nil {
		return err
	}
	defer svc.Close()

	records, err := svc.DB().ListNotifications(notificationsLimit)
	if err != nil {
		return err
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(records)
	}

	if len(records) == 0 {
		fmt.Println("No notifications.")
		return nil
	}
	for _, r := range records {
		fmt.Printf("%s  [%s] %s: %s\n", r.CreatedAt.Format("2006-01-02 15:04"), r.Level, r.Title, r.Message)
	}
	return nil
}
