package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func themeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "theme [name]",
		Short: "Print or change the display theme (e.g. claro, escuro)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				if err := appCtx.Theme.SetTheme(args[0]); err != nil {
					return err
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), appCtx.Theme.Theme())
			return nil
		},
	}
}
