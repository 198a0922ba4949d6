package commands

import (
	"github.com/spf13/cobra"
)

// list: the first screen, resuming the remembered school if there is one.
func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show the schools, or the scores of the remembered school",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			wire.Coordinator.Start(cmd.Context())
			return wire.Sink.Render(wire.Coordinator.State())
		},
	}
}

// show: the plain list, ignoring any remembered school.
func showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the schools without resuming a selection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			wire.Coordinator.ShowList(cmd.Context())
			return wire.Sink.Render(wire.Coordinator.State())
		},
	}
}
