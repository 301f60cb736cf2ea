package commands

import (
	"github.com/spf13/cobra"
)

func postCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "post <content>",
		Short: "Publish a new post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := mustOnline(); err != nil {
				return err
			}
			if err := restoreFeed(); err != nil {
				return err
			}
			if err := appCtx.Feed.CreatePost(cmd.Context(), args[0]); err != nil {
				return err
			}
			renderPost(cmd.OutOrStdout(), appCtx.Feed.Snapshot().Posts[0])
			return saveFeed()
		},
	}
}
