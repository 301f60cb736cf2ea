package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func feedCmd() *cobra.Command {
	var offline bool
	cmd := &cobra.Command{
		Use:   "feed",
		Short: "Load and print your feed",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !offline {
				if err := mustOnline(); err != nil {
					return err
				}
			}
			if err := restoreFeed(); err != nil {
				return err
			}
			if offline {
				renderFeed(cmd.OutOrStdout(), appCtx.Feed.Snapshot())
				return nil
			}

			if err := appCtx.Feed.LoadFeed(cmd.Context()); err != nil {
				// The container keeps the message meant for the reader.
				return errors.New(appCtx.Feed.Snapshot().Error)
			}
			renderFeed(cmd.OutOrStdout(), appCtx.Feed.Snapshot())
			return saveFeed()
		},
	}
	cmd.Flags().BoolVar(&offline, "offline", false, "print the last saved feed without calling the API")
	return cmd
}

// mustOnline rejects commands that need the API when none is configured.
func mustOnline() error {
	if !appCtx.Online() {
		return fmt.Errorf("no API configured. use --api or MURAL_API_BASE")
	}
	return nil
}
