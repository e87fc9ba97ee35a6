package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"mcl/internal/core"

	"github.com/spf13/cobra"
)

var (
	version = "0.3.0"

	// Global flags
	configDir   string
	dataDir     string
	backendAddr string
	verbose     bool
	jsonOutput  bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "mcl",
	Short: "mcl - Minecraft launcher frontend",
	Long: `mcl is a launcher frontend for Minecraft: instance management, curated
add-on packs, registry search, and game launching through the native backend.

Run 'mcl tui' for the interactive interface, or use subcommands directly.`,
	Version:       version,
	SilenceUsage:  true, // Runtime errors should not print usage
	SilenceErrors: true, // We handle error output in Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config", "", "config directory (default: ~/.config/mcl)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", "", "data directory (default: ~/.local/share/mcl)")
	rootCmd.PersistentFlags().StringVar(&backendAddr, "backend", "", "backend host address (default: from config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output in JSON format (list, search, versions, news)")
}

// Execute runs the root command. Exit codes: 0 = success, 1 = error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if jsonOutput {
			fmt.Printf(`{"error":%q}`+"\n", err.Error())
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

// initService creates the core service from flags and configuration.
func initService() (*core.Service, error) {
	opts, err := serviceOptions()
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(opts.ConfigDir, 0755); err != nil {
		return nil, fmt.Errorf("creating config dir: %w", err)
	}
	if err := os.MkdirAll(opts.DataDir, 0755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	svc, err := core.NewService(opts)
	if err != nil {
		return nil, err
	}

	if backendAddr != "" {
		svc.Config().BackendAddr = backendAddr
	}
	return svc, nil
}

// connectService creates the service and dials the backend host.
func connectService(ctx context.Context) (*core.Service, error) {
	svc, err := initService()
	if err != nil {
		return nil, err
	}

	if err := svc.Connect(ctx); err != nil {
		svc.Close()
		return nil, fmt.Errorf("backend host is not reachable (is it running?): %w", err)
	}

	if err := svc.Session().Refresh(ctx); err != nil {
		svc.Close()
		return nil, err
	}
	return svc, nil
}

// serviceOptions resolves config and data directories from flags with
// XDG-style defaults.
func serviceOptions() (core.Options, error) {
	opts := core.Options{ConfigDir: configDir, DataDir: dataDir}
	if opts.ConfigDir != "" && opts.DataDir != "" {
		return opts, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return core.Options{}, fmt.Errorf("home directory: %w", err)
	}
	if opts.ConfigDir == "" {
		opts.ConfigDir = filepath.Join(homeDir, ".config", "mcl")
	}
	if opts.DataDir == "" {
		opts.DataDir = filepath.Join(homeDir, ".local", "share", "mcl")
	}
	return opts, nil
}
