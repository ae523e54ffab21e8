package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"codeberg.org/snonux/naivetrans/internal/cli"
	"codeberg.org/snonux/naivetrans/internal/processor"
)

func main() {
	// Create flags instance
	flags := cli.NewFlags()

	// Create root command
	rootCmd := cli.CreateRootCommand(flags)

	// Set up command initialization
	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
	})

	// Set the run function
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		err := runCommand(cmd, args, flags)
		if errors.Is(err, context.Canceled) {
			// Interrupted by the user
			fmt.Println()
			return nil
		}
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Execute command
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func runCommand(cmd *cobra.Command, args []string, flags *cli.Flags) error {
	// Config file and environment values, unless given as flags
	cli.ApplyConfig(flags)

	logger, err := cli.NewLogger(os.Stderr, flags.LogLevel)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	proc := processor.NewProcessor(flags, logger)

	switch {
	case flags.Archive:
		return proc.ArchiveHistory()
	case flags.ShowHistory > 0:
		return proc.ShowHistory(ctx, flags.ShowHistory)
	case flags.ListModels:
		return proc.ListModels(ctx)
	case flags.Suggest != "":
		return proc.SuggestWord(ctx, flags.Suggest)
	case flags.ExportAnki != "":
		outputPath, err := proc.ExportAnki(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("Anki import file created: %s\n", outputPath)
		return nil
	case flags.BatchFile != "":
		return proc.ProcessBatch(ctx)
	case len(args) > 0:
		return proc.ProcessText(ctx, args[0])
	default:
		// No input provided - start the interactive session
		return proc.RunInteractive(ctx)
	}
}
