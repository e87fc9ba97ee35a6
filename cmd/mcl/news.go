package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var newsLimit int

var newsCmd = &cobra.Command{
	Use:   "news",
	Short: "Show launcher news",
	RunE:  runNews,
}

func init() {
	newsCmd.Flags().IntVar(&newsLimit, "limit", 10, "maximum entries")
	rootCmd.AddCommand(newsCmd)
}

func runNews(cmd *cobra.Command, args []string) error {
	svc, err := initService()
	if err != nil {
		return err
	}
	defer svc.Close()

	items, err := svc.Meta().News(context.Background(), newsLimit)
	if err != nil {
		return err
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(items)
	}

	for _, item := range items {
		fmt.Println(item.Title)
		if item.Date != "" {
			fmt.Printf("    %s\n", item.Date)
		}
		if item.Summary != "" {
			fmt.Printf("    %s\n", item.Summary)
		}
		if item.URL != "" {
			fmt.Printf("    %s\n", item.URL)
		}
		fmt.Println()
	}
	return nil
}
