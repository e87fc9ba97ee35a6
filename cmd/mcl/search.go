package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"mcl/internal/domain"

	"github.com/spf13/cobra"
)

var (
	searchKind  string
	searchLimit int
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search the add-on registry",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSearch,
}

func init() {
	searchCmd.Flags().StringVar(&searchKind, "kind", "mod", "add-on kind (mod, resourcepack, shader)")
	searchCmd.Flags().IntVar(&searchLimit, "limit", 0, "maximum results")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	svc, err := connectService(ctx)
	if err != nil {
		return err
	}
	defer svc.Close()

	_, loader, err := svc.Session().Target()
	if err != nil {
		return err
	}

	kind := domain.ParseKind(searchKind)
	if !domain.CanInstall(loader, kind) {
		return fmt.Errorf("mods need a modded loader; the selected instance runs %s", loader)
	}

	refs, err := svc.Registry().Search(ctx, strings.Join(args, " "), kind, searchLimit, loader)
	if err != nil {
		return err
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(refs)
	}

	if len(refs) == 0 {
		fmt.Println("No results.")
		return nil
	}
	for _, ref := range refs {
		fmt.Printf("%-24s %8s  %s\n", ref.Slug, formatDownloads(ref.Downloads), ref.Title)
		if verbose && ref.Description != "" {
			fmt.Printf("    %s\n", ref.Description)
		}
	}
	return nil
}
