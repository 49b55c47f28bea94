package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/utext/internal/core/domain"
)

func (c *CLI) newHashCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hash TEXT",
		Short: "Print the hash of a text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fold, _ := cmd.Flags().GetBool("fold")

			text := domain.FromString(args[0])
			h := text.Hash()
			if fold {
				h = text.HashFold()
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), domain.FormatHash(h))
			return nil
		},
	}
	cmd.Flags().Bool("fold", false, "Hash the case-folded text")
	return cmd
}
