package commands

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/heroactions/internal/models"
	"github.com/KirkDiggler/heroactions/internal/repositories/document"
	"github.com/spf13/cobra"
)

func newDocumentCmd(open StoreOpener) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "document",
		Short: "Manage the documents deck entries point at",
	}

	cmd.AddCommand(newDocumentAddCmd(open))

	return cmd
}

func newDocumentAddCmd(open StoreOpener) *cobra.Command {
	var description string

	cmd := &cobra.Command{
		Use:   "add <reference> <name>",
		Short: "Store a document, e.g. add Item.abc123 \"Press the Advantage\"",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc := &models.Document{
				ID:          args[0],
				Name:        args[1],
				Description: description,
			}

			return withStores(cmd, open, func(ctx context.Context, stores *Stores) error {
				if err := stores.Documents.SaveDocument(ctx, &document.SaveDocumentInput{
					Document: doc,
				}); err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(), "Saved document %s %q\n", doc.ID, doc.Name)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "Optional flavour text")

	return cmd
}
