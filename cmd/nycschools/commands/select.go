package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"nycschools/internal/domain"
	"nycschools/internal/services/coordinator"
)

// select: remember a school and show its scores.
func selectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "select <id>",
		Short: "Select a school by id and show its average SAT scores",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := selectSchool(cmd.Context(), wire.Coordinator, args[0]); err != nil {
				return err
			}
			return wire.Sink.Render(wire.Coordinator.State())
		},
	}
}

// selectSchool loads the list if needed, looks up the name of id and selects
// it. When the list cannot be loaded the coordinator is left in its Error
// state and no error is returned.
func selectSchool(ctx context.Context, c *coordinator.Coordinator, id string) error {
	schools := c.Schools()
	if schools == nil {
		c.ShowList(ctx)
		if schools = c.Schools(); schools == nil {
			return ctx.Err()
		}
	}
	for _, s := range schools {
		if s.ID == domain.SchoolID(id) {
			c.OnSchoolSelected(ctx, s.ID, s.Name)
			return nil
		}
	}
	return fmt.Errorf("no school with id %q", id)
}
