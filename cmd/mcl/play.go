package main

import (
	"context"
	"fmt"

	"mcl/internal/domain"

	"github.com/spf13/cobra"
)

var playWait bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Launch the selected instance",
	RunE:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&playWait, "wait", false, "stay attached until the game exits")
	rootCmd.AddCommand(playCmd)
}

func runPlay(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	svc, err := connectService(ctx)
	if err != nil {
		return err
	}
	defer svc.Close()

	if _, ok := svc.Session().Account(); !ok {
		return fmt.Errorf("%w: run 'mcl account login' first", domain.ErrNoAccount)
	}

	launcher := svc.Launcher()

	started := make(chan struct{})
	exited := make(chan string, 1)
	launcher.OnPhaseChange(func(phase domain.LaunchPhase, status string) {
		switch phase {
		case domain.LaunchLaunching:
			if verbose {
				fmt.Println(status)
			}
		case domain.LaunchStarted:
			select {
			case <-started:
			default:
				close(started)
			}
		case domain.LaunchExited:
			select {
			case exited <- status:
			default:
			}
		}
	})

	if err := launcher.Play(ctx); err != nil {
		if report, ok := launcher.Blocked(); ok {
			fmt.Println(report.Title)
			fmt.Println(report.Body)
			if report.File != "" {
				fmt.Printf("Remove it and retry with: mcl play  (offending file: %s)\n", report.File)
			}
		}
		return err
	}

	// The game process can exit before it ever reports as started (early
	// crash, instant window close), so wait on both outcomes.
	status, running := waitForStart(started, exited)
	if !running {
		fmt.Println(status)
		return nil
	}
	fmt.Println("Game started.")

	if playWait {
		fmt.Println(<-exited)
	}
	return nil
}

// waitForStart blocks until the game either reports as started (running is
// true) or exits first (running is false, status is the exit message).
func waitForStart(started <-chan struct{}, exited <-chan string) (status string, running bool) {
	select {
	case <-started:
		return "", true
	case status = <-exited:
		return status, false
	}
}
