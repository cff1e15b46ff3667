package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/doeshing/nltklayer/internal/app"
	"github.com/doeshing/nltklayer/internal/domain"
)

// NewDoctorCommand creates the doctor command
func NewDoctorCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check the environment before fetching or verifying",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if container.DoctorService == nil {
				return errors.New(ErrDoctorServiceUnavailable)
			}
			report, err := container.DoctorService.Run(cmd.Context())
			displayHealthReport(cmd.OutOrStdout(), report)
			if err != nil {
				return err
			}
			if !report.OK() {
				return domain.ErrChecksFailed
			}
			return nil
		},
	}
}
