package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"mural/internal/domain"
)

// like <id>: toggle the viewer's like on a post from the saved feed.
func likeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "like <id>",
		Short: "Toggle your like on a post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid post id %q", args[0])
			}
			id := domain.PostID(n)

			if err := mustOnline(); err != nil {
				return err
			}
			if err := restoreFeed(); err != nil {
				return err
			}
			if err := appCtx.Feed.ToggleLike(cmd.Context(), id); err != nil {
				return err
			}

			for _, p := range appCtx.Feed.Snapshot().Posts {
				if p.ID == id {
					renderPost(cmd.OutOrStdout(), p)
					return saveFeed()
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Toggled like on #%d (not in saved feed; run `mural feed` to refresh)\n", id)
			return nil
		},
	}
}
