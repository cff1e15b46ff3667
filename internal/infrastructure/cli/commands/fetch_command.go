package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/doeshing/nltklayer/internal/app"
	"github.com/doeshing/nltklayer/internal/application/fetch"
	"github.com/doeshing/nltklayer/internal/domain"
)

// NewFetchCommand creates the fetch command
func NewFetchCommand(container *app.Container) *cobra.Command {
	var opts fetch.Options

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Download the layer's NLTK data packages",
		Long:  "Downloads vader_lexicon and punkt into the target directory (NLTK_DATA, default /opt/python/nltk_data) and verifies each one resolves.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if container.FetchService == nil {
				return errors.New(ErrFetchServiceUnavailable)
			}
			report, err := container.FetchService.Run(cmd.Context(), opts)
			if err != nil {
				return err
			}
			displayFetchReport(cmd.OutOrStdout(), report)
			if !report.OK() {
				return domain.ErrChecksFailed
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.TargetDir, "dir", "d", "", "Download directory (overrides NLTK_DATA and config)")
	cmd.Flags().BoolVar(&opts.Force, "force", false, "Download even when the archive is up to date")
	return cmd
}
