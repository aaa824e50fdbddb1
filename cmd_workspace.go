package main

import (
	"github.com/spf13/cobra"

	"github.com/petuhovskiy/notepick/internal/commands"
)

var openCmd = &cobra.Command{
	Use:   "open <title>",
	Short: "Pin a note open so that pick skips it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return executor.Run(cmd.Context(), commands.IDOpenNote, args)
	},
}

var closeCmd = &cobra.Command{
	Use:   "close <title>",
	Short: "Close every pane showing the note",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return executor.Run(cmd.Context(), commands.IDCloseNote, args)
	},
}
