package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var accountCmd = &cobra.Command{
	Use:   "account",
	Short: "Microsoft account sign-in",
}

var accountLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in with a Microsoft account",
	Long: `Prints the Microsoft sign-in URL. Open it in a browser, complete the
sign-in, then paste the redirect URL (or the bare authorization code) back
when prompted. The backend exchanges the code for game credentials.`,
	RunE: runAccountLogin,
}

var accountShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the signed-in account",
	RunE:  runAccountShow,
}

var accountLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out",
	RunE:  runAccountLogout,
}

func init() {
	accountCmd.AddCommand(accountLoginCmd, accountShowCmd, accountLogoutCmd)
	rootCmd.AddCommand(accountCmd)
}

func runAccountLogin(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	svc, err := connectService(ctx)
	if err != nil {
		return err
	}
	defer svc.Close()

	fmt.Println("Open this URL in a browser and sign in:")
	fmt.Println()
	fmt.Println("  " + svc.Auth().AuthorizeURL())
	fmt.Println()
	fmt.Print("Paste the redirect URL here: ")

	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return fmt.Errorf("reading redirect URL: %w", err)
	}

	code, err := svc.Auth().ParseRedirect(strings.TrimSpace(line))
	if err != nil {
		return err
	}

	account, err := svc.Backend().Authenticate(ctx, code)
	if err != nil {
		return fmt.Errorf("completing sign-in: %w", err)
	}

	if err := svc.SignIn(*account); err != nil {
		return err
	}
	fmt.Printf("Signed in as %s\n", account.Username)
	return nil
}

func runAccountShow(cmd *cobra.Command, args []string) error {
	svc, err := initService()
	if err != nil {
		return err
	}
	defer svc.Close()

	stored, err := svc.DB().GetAccount()
	if err != nil {
		return err
	}
	if stored == nil {
		fmt.Println("Not signed in. Run: mcl account login")
		return nil
	}
	fmt.Printf("%s (%s)\n", stored.Username, stored.UUID)
	return nil
}

func runAccountLogout(cmd *cobra.Command, args []string) error {
	svc, err := initService()
	if err != nil {
		return err
	}
	defer svc.Close()

	if err := svc.SignOut(); err != nil {
		return err
	}
	fmt.Println("Signed out.")
	return nil
}
