package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/doeshing/nltklayer/internal/app"
	"github.com/doeshing/nltklayer/internal/infrastructure/cli/commands"
)

// Options holds CLI-level configuration.
type Options struct {
	Verbose    bool
	ConfigPath string
}

// NewRootCmd wires the cobra root command. The container is built once flags
// are parsed, so --config and --verbose apply to every subcommand.
func NewRootCmd(ctx context.Context, opts Options) *cobra.Command {
	container := &app.Container{}

	root := &cobra.Command{
		Use:   "nltklayer",
		Short: "Build and smoke-test an NLTK function layer",
		Long:  "nltklayer downloads the NLTK data packages a serverless layer needs and verifies a built layer end to end.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !needsContainer(cmd) {
				return nil
			}
			built, err := app.BuildContainer(ctx, app.Options{Verbose: opts.Verbose, ConfigPath: opts.ConfigPath})
			if err != nil {
				return err
			}
			*container = *built
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&opts.ConfigPath, "config", opts.ConfigPath, "Config file (default ~/.nltklayer/config.yaml)")
	root.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", opts.Verbose, "Log progress to stderr")

	root.AddCommand(commands.NewFetchCommand(container))
	root.AddCommand(commands.NewVerifyCommand(container))
	root.AddCommand(commands.NewDoctorCommand(container))
	root.AddCommand(commands.NewHistoryCommand(container))
	root.AddCommand(commands.NewCacheCommand(container))
	root.AddCommand(commands.NewVersionCommand())
	return root
}

func needsContainer(cmd *cobra.Command) bool {
	switch cmd.Name() {
	case "version", "help", "completion":
		return false
	}
	return true
}
