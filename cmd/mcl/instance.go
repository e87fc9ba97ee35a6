package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"mcl/internal/domain"

	"github.com/spf13/cobra"
)

var (
	instanceVersion string
	instanceLoader  string
)

var instanceCmd = &cobra.Command{
	Use:   "instance",
	Short: "Manage game instances",
}

var instanceListCmd = &cobra.Command{
	Use:   "list",
	Short: "List instances",
	RunE:  runInstanceList,
}

var instanceCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a new instance",
	Args:  cobra.ExactArgs(1),
	RunE:  runInstanceCreate,
}

var instanceSelectCmd = &cobra.Command{
	Use:   "select <id-or-name>",
	Short: "Select the active instance",
	Args:  cobra.ExactArgs(1),
	RunE:  runInstanceSelect,
}

var instanceDeleteCmd = &cobra.Command{
	Use:   "delete <id-or-name>",
	Short: "Delete an instance",
	Args:  cobra.ExactArgs(1),
	RunE:  runInstanceDelete,
}

var instanceModsCmd = &cobra.Command{
	Use:   "mods [id-or-name]",
	Short: "List an instance's installed mods",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runInstanceMods,
}

var instanceEditCmd = &cobra.Command{
	Use:   "edit <id-or-name>",
	Short: "Edit an instance",
	Args:  cobra.ExactArgs(1),
	RunE:  runInstanceEdit,
}

var instanceModCmd = &cobra.Command{
	Use:   "mod <enable|disable> <file>",
	Short: "Enable or disable a mod file in the selected instance",
	Args:  cobra.ExactArgs(2),
	RunE:  runInstanceMod,
}

var instanceNewName string

func init() {
	instanceCreateCmd.Flags().StringVar(&instanceVersion, "mc-version", "", "game version (default: latest release)")
	instanceCreateCmd.Flags().StringVar(&instanceLoader, "loader", "vanilla", "loader (vanilla, fabric)")
	instanceEditCmd.Flags().StringVar(&instanceNewName, "name", "", "new display name")
	instanceEditCmd.Flags().StringVar(&instanceVersion, "mc-version", "", "new game version")
	instanceEditCmd.Flags().StringVar(&instanceLoader, "loader", "", "new loader (vanilla, fabric)")

	instanceCmd.AddCommand(instanceListCmd, instanceCreateCmd, instanceSelectCmd,
		instanceDeleteCmd, instanceModsCmd, instanceEditCmd, instanceModCmd)
	rootCmd.AddCommand(instanceCmd)
}

func runInstanceList(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	svc, err := connectService(ctx)
	if err != nil {
		return err
	}
	defer svc.Close()

	instances := svc.Session().Instances()
	selected, _ := svc.Session().Selected()

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(instances)
	}

	if len(instances) == 0 {
		fmt.Println("No instances. Create one with: mcl instance create <name>")
		return nil
	}
	for _, inst := range instances {
		marker := " "
		if inst.ID == selected.ID {
			marker = "*"
		}
		fmt.Printf("%s %s  %s (%s, %s)\n", marker, inst.ID, inst.Name, inst.EffectiveVersion(), inst.Loader)
	}
	return nil
}

func runInstanceCreate(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	svc, err := connectService(ctx)
	if err != nil {
		return err
	}
	defer svc.Close()

	inst, err := svc.Session().CreateInstance(ctx, args[0], instanceVersion, domain.ParseLoader(instanceLoader))
	if err != nil {
		return err
	}

	fmt.Printf("Created %s (%s, %s)\n", inst.Name, inst.EffectiveVersion(), inst.Loader)
	return nil
}

func runInstanceSelect(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	svc, err := connectService(ctx)
	if err != nil {
		return err
	}
	defer svc.Close()

	inst, err := findInstance(svc.Session().Instances(), args[0])
	if err != nil {
		return err
	}

	if err := svc.SelectInstance(ctx, inst.ID); err != nil {
		return err
	}
	fmt.Printf("Selected %s\n", inst.Name)
	return nil
}

func runInstanceDelete(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	svc, err := connectService(ctx)
	if err != nil {
		return err
	}
	defer svc.Close()

	inst, err := findInstance(svc.Session().Instances(), args[0])
	if err != nil {
		return err
	}

	if err := svc.Session().DeleteInstance(ctx, inst.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted %s\n", inst.Name)
	return nil
}

func runInstanceEdit(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	svc, err := connectService(ctx)
	if err != nil {
		return err
	}
	defer svc.Close()

	inst, err := findInstance(svc.Session().Instances(), args[0])
	if err != nil {
		return err
	}

	if instanceNewName != "" {
		inst.Name = instanceNewName
	}
	if instanceVersion != "" {
		inst.McVersion = instanceVersion
	}
	if instanceLoader != "" {
		inst.Loader = domain.ParseLoader(instanceLoader)
	}

	if err := svc.Session().SaveInstance(ctx, inst); err != nil {
		return err
	}
	fmt.Printf("Updated %s (%s, %s)\n", inst.Name, inst.EffectiveVersion(), inst.Loader)
	return nil
}

func runInstanceMod(cmd *cobra.Command, args []string) error {
	action, file := args[0], args[1]

	var enabled bool
	switch action {
	case "enable":
		enabled = true
	case "disable":
		enabled = false
	default:
		return fmt.Errorf("unknown action %q (want enable or disable)", action)
	}

	ctx := context.Background()
	svc, err := connectService(ctx)
	if err != nil {
		return err
	}
	defer svc.Close()

	inst, ok := svc.Session().Selected()
	if !ok {
		return domain.ErrNoInstanceSelected
	}

	if err := svc.Backend().SetInstanceModEnabled(ctx, inst.ID, file, enabled); err != nil {
		return err
	}
	fmt.Printf("%sd %s\n", action, file)
	return nil
}

func runInstanceMods(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	svc, err := connectService(ctx)
	if err != nil {
		return err
	}
	defer svc.Close()

	var inst domain.Instance
	if len(args) == 1 {
		inst, err = findInstance(svc.Session().Instances(), args[0])
		if err != nil {
			return err
		}
	} else {
		var ok bool
		inst, ok = svc.Session().Selected()
		if !ok {
			return domain.ErrNoInstanceSelected
		}
	}

	mods, err := svc.Backend().ListInstanceMods(ctx, inst.ID)
	if err != nil {
		return err
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(mods)
	}

	if len(mods) == 0 {
		fmt.Println("No mods installed.")
		return nil
	}
	for _, mod := range mods {
		state := "enabled"
		if !mod.Enabled {
			state = "disabled"
		}
		fmt.Printf("%s  (%s)\n", mod.File, state)
	}
	return nil
}
