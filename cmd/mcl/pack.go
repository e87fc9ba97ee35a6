package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var packCmd = &cobra.Command{
	Use:   "pack",
	Short: "Curated add-on packs",
}

var packListCmd = &cobra.Command{
	Use:   "list",
	Short: "List curated packs",
	RunE:  runPackList,
}

var packInstallCmd = &cobra.Command{
	Use:   "install <name>",
	Short: "Install a curated pack into the selected instance",
	Args:  cobra.ExactArgs(1),
	RunE:  runPackInstall,
}

func init() {
	packCmd.AddCommand(packListCmd, packInstallCmd)
	rootCmd.AddCommand(packCmd)
}

func runPackList(cmd *cobra.Command, args []string) error {
	svc, err := initService()
	if err != nil {
		return err
	}
	defer svc.Close()

	for _, pack := range svc.Packs() {
		fmt.Println(pack.Name)
		if pack.Description != "" {
			fmt.Printf("    %s\n", pack.Description)
		}
		for loader, slugs := range pack.SlugsByLoader {
			fmt.Printf("    %s: %s\n", loader, strings.Join(slugs, ", "))
		}
	}
	return nil
}

func runPackInstall(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	svc, err := connectService(ctx)
	if err != nil {
		return err
	}
	defer svc.Close()

	pack, err := svc.FindPack(args[0])
	if err != nil {
		return err
	}

	version, loader, err := svc.Session().Target()
	if err != nil {
		return err
	}

	result, err := svc.PackInstaller().Install(ctx, pack, version, loader)
	if err != nil {
		return err
	}

	fmt.Printf("Installed %d add-ons from %s.\n", len(result.Installed), pack.Name)
	if len(result.Skipped) > 0 {
		fmt.Printf("Skipped (no compatible version for %s): %s\n", version, strings.Join(result.Skipped, ", "))
	}
	return nil
}
