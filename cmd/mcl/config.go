package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change launcher settings",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a setting (backend-addr, join-server, notify-url)",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

func init() {
	configCmd.AddCommand(configShowCmd, configSetCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	svc, err := initService()
	if err != nil {
		return err
	}
	defer svc.Close()

	cfg := svc.Config()
	fmt.Printf("backend-addr: %s\n", cfg.BackendAddr)
	fmt.Printf("join-server:  %s\n", cfg.JoinServer)
	fmt.Printf("notify-url:   %s\n", cfg.NotifyURL)
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	svc, err := initService()
	if err != nil {
		return err
	}
	defer svc.Close()

	key, value := args[0], args[1]
	cfg := svc.Config()

	switch key {
	case "backend-addr":
		cfg.BackendAddr = value
	case "join-server":
		cfg.JoinServer = value
	case "notify-url":
		cfg.NotifyURL = value
	default:
		return fmt.Errorf("unknown setting %q (want backend-addr, join-server, or notify-url)", key)
	}

	if err := svc.SaveConfig(); err != nil {
		return err
	}
	fmt.Printf("%s = %s\n", key, value)
	return nil
}
