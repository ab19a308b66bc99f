package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPurgeCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "purge",
		Short: "Delete every element under the configured prefix",
		Long: `Delete every element under the configured prefix.

Deletes run one at a time in the store's listing order and stop at the first
failure; entries deleted before the failure stay deleted.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !force {
				return fmt.Errorf("refusing to purge without --force")
			}

			repo, err := buildRepository()
			if err != nil {
				return err
			}

			ok, err := repo.DeleteAll(cmd.Context(), nil)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("purge incomplete: a delete failed, remaining elements were left in place")
			}
			fmt.Println("purged")
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Actually delete; required")
	return cmd
}
