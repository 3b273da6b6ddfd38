package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCSSCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "css PATH...",
		Short: "Print the @font-face block for the loaded fonts",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := ctx.newSession()
			if err != nil {
				return err
			}
			defer s.Teardown()

			if _, err := load(cmd.Context(), cmd, s, args); err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), s.CSS())
			return nil
		},
	}
}
