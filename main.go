package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/petuhovskiy/notepick/internal/app"
	"github.com/petuhovskiy/notepick/internal/commands"
	"github.com/petuhovskiy/notepick/internal/log"
)

var (
	base     *app.App
	executor *commands.Executor
)

var rootCmd = &cobra.Command{
	Use:           "notepick",
	Short:         "Pick what to work on next from your notes",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		base, err = app.NewAppFromEnv(cmd.Context())
		if err != nil {
			return err
		}
		executor = commands.NewExecutor(base, commands.NewWriterNotifier(cmd.OutOrStdout()))
		return nil
	},
}

// pickCmd runs the weighted random pick once
var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Open a random project note or the flashcard queue",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return executor.Run(cmd.Context(), commands.IDPickRandomNote, nil)
	},
}

var dueCmd = &cobra.Command{
	Use:   "due",
	Short: "Show the number of due flashcards",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return executor.Run(cmd.Context(), commands.IDDueFlashcards, nil)
	},
}

func init() {
	rootCmd.AddCommand(pickCmd, dueCmd, priorityCmd, openCmd, closeCmd, serveCmd)
}

func main() {
	defer log.DefaultGlobals()()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		log.Error(ctx, "failed to run", zap.Error(err))
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}
