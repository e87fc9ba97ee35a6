package main

import (
	"context"
	"fmt"

	"mcl/internal/domain"

	"github.com/spf13/cobra"
)

var installKind string

var installCmd = &cobra.Command{
	Use:   "install <slug>...",
	Short: "Install add-ons into the selected instance",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runInstall,
}

func init() {
	installCmd.Flags().StringVar(&installKind, "kind", "mod", "add-on kind (mod, resourcepack, shader)")
	rootCmd.AddCommand(installCmd)
}

func runInstall(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	svc, err := connectService(ctx)
	if err != nil {
		return err
	}
	defer svc.Close()

	version, loader, err := svc.Session().Target()
	if err != nil {
		return err
	}

	kind := domain.ParseKind(installKind)
	if !domain.CanInstall(loader, kind) {
		return fmt.Errorf("mods need a modded loader; the selected instance runs %s", loader)
	}

	for _, slug := range args {
		ref, err := svc.Registry().Project(ctx, slug)
		if err != nil {
			return err
		}

		if err := svc.Backend().InstallProject(ctx, ref.ID, version, kind, loader); err != nil {
			return fmt.Errorf("installing %s: %w", ref.Title, err)
		}
		fmt.Printf("Installed %s\n", ref.Title)
	}
	return nil
}
