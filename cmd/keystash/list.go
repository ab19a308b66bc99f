package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List key elements under the configured prefix",
		RunE: func(cmd *cobra.Command, _ []string) error {
			repo, err := buildRepository()
			if err != nil {
				return err
			}

			elements, err := repo.ListAll(cmd.Context())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tFRIENDLY NAME\tSIZE")
			for _, el := range elements {
				fmt.Fprintf(w, "%s\t%s\t%d\n", el.ID, el.FriendlyName, len(el.Raw))
			}
			return w.Flush()
		},
	}
}
