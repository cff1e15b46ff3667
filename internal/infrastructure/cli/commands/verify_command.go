package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/doeshing/nltklayer/internal/app"
	"github.com/doeshing/nltklayer/internal/application/verify"
	"github.com/doeshing/nltklayer/internal/domain"
)

// NewVerifyCommand creates the verify command
func NewVerifyCommand(container *app.Container) *cobra.Command {
	var opts verify.Options

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Smoke-test a built layer",
		Long:  "Runs import, data path, layer structure, sentiment and tokenization checks against the layer root (default /opt/python).",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if container.VerifyService == nil {
				return errors.New(ErrVerifyServiceUnavailable)
			}
			report, err := container.VerifyService.Run(cmd.Context(), opts)
			if err != nil {
				return err
			}
			displayVerifyReport(cmd.OutOrStdout(), report)
			if !report.OK() {
				return domain.ErrChecksFailed
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.LayerRoot, "root", "r", "", "Layer python root (overrides NLTKLAYER_LAYER_ROOT and config)")
	return cmd
}
