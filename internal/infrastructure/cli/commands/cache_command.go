package commands

import (
	"errors"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/doeshing/nltklayer/internal/app"
)

// NewCacheCommand creates the cache command with its subcommands
func NewCacheCommand(container *app.Container) *cobra.Command {
	cacheCmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect or clear the data index cache",
	}

	cacheCmd.AddCommand(
		newCacheSizeCommand(container),
		newCacheClearCommand(container),
	)

	return cacheCmd
}

// newCacheSizeCommand creates the 'cache size' subcommand
func newCacheSizeCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "size",
		Short: "Show cache location and size",
		RunE: func(cmd *cobra.Command, args []string) error {
			if container.IndexCache == nil {
				return errors.New(ErrCacheDisabled)
			}
			count, total, err := container.IndexCache.Size()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d entries, %s\n", container.IndexCache.Dir(), count, humanize.Bytes(uint64(total)))
			return nil
		},
	}
}

// newCacheClearCommand creates the 'cache clear' subcommand
func newCacheClearCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete cached index documents",
		RunE: func(cmd *cobra.Command, args []string) error {
			if container.IndexCache == nil {
				return errors.New(ErrCacheDisabled)
			}
			if err := container.IndexCache.Clear(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), MsgCacheCleared)
			return nil
		},
	}
}
