package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/utext/internal/core/domain"
)

func (c *CLI) newCompareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare A B",
		Short: "Compare two texts and print their order and equality",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			modeName, _ := cmd.Flags().GetString("mode")
			mode, err := domain.ParseComparisonMode(modeName)
			if err != nil {
				return err
			}

			order, equal, err := c.app.Compare(cmd.Context(), domain.FromString(args[0]), domain.FromString(args[1]), mode)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "order=%d equal=%t\n", order, equal)
			return nil
		},
	}
	cmd.Flags().StringP("mode", "m", domain.Ordinal.String(), "Comparison mode")
	return cmd
}
