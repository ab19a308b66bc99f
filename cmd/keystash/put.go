package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/keystash/keystash/internal/keyring"
)

func newPutCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "put [file]",
		Short: "Store a key XML document",
		Long: `Store a key XML document read from a file or stdin.

The element name is taken from --name, else the document's id attribute,
else a generated UUID.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				raw []byte
				err error
			)
			if len(args) == 1 {
				raw, err = os.ReadFile(args[0])
			} else {
				raw, err = io.ReadAll(os.Stdin)
			}
			if err != nil {
				return fmt.Errorf("read document: %w", err)
			}

			el, err := keyring.ParseElement(raw)
			if err != nil {
				return err
			}

			repo, err := buildRepository()
			if err != nil {
				return err
			}
			return repo.Store(cmd.Context(), el, name)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Explicit element name (overrides the document's id attribute)")
	return cmd
}
