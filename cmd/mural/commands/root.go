package commands

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"mural/internal/app"
)

var (
	home       string
	apiBase    string
	storeKind  string
	passphrase string
	verbose    bool

	appCtx *app.Wire
)

func Execute() error {
	return execute(newRootCmd())
}

// execute runs root and releases the wired stores, also when a command fails.
func execute(root *cobra.Command) error {
	defer func() {
		if appCtx != nil {
			_ = appCtx.Close()
			appCtx = nil
		}
	}()
	return root.Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "mural",
		Short:        "Read and post to your feed from the terminal",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig()
			if err != nil {
				return err
			}
			if home != "" {
				cfg.Home = home
			}
			if apiBase != "" {
				cfg.APIBase = apiBase
			}
			if storeKind != "" {
				cfg.Store = storeKind
			}

			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

			appCtx, err = app.NewWire(cfg, logger)
			return err
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "data dir (default $MURAL_HOME or ~/.mural)")
	root.PersistentFlags().StringVar(&apiBase, "api", "", "API base URL (default $MURAL_API_BASE)")
	root.PersistentFlags().StringVar(&storeKind, "store", "", "preference store: file or sqlite (default $MURAL_STORE or file)")
	root.PersistentFlags().StringVarP(&passphrase, "passphrase", "p", os.Getenv("MURAL_PASSPHRASE"), "passphrase to seal the local feed snapshot")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(feedCmd(), postCmd(), likeCmd(), themeCmd())
	return root
}
