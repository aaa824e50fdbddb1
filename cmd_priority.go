package main

import (
	"github.com/spf13/cobra"

	"github.com/petuhovskiy/notepick/internal/commands"
)

var priorityCmd = &cobra.Command{
	Use:   "priority",
	Short: "Read or change the priority of a note",
}

var prioritySetCmd = &cobra.Command{
	Use:   "set <title> <priority>",
	Short: "Set the priority of the note with the given title",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return executor.Run(cmd.Context(), commands.IDSetPriority, args)
	},
}

var priorityGetCmd = &cobra.Command{
	Use:   "get <title>",
	Short: "Show the priority of the note with the given title",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return executor.Run(cmd.Context(), commands.IDGetPriority, args)
	},
}

func init() {
	priorityCmd.AddCommand(prioritySetCmd, priorityGetCmd)
}
