package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/KirkDiggler/heroactions/internal/models"
	"github.com/KirkDiggler/heroactions/internal/repositories/deck"
	"github.com/KirkDiggler/heroactions/internal/repositories/document"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// DeckFile is the YAML layout deck import reads: a deck plus the documents
// its entries point at
type DeckFile struct {
	Deck      models.Deck       `yaml:"deck"`
	Documents []models.Document `yaml:"documents"`
}

// readDeckFile parses and checks a deck file
func readDeckFile(path string) (*DeckFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var file DeckFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	if file.Deck.ID == "" {
		return nil, fmt.Errorf("%s: deck id is required", path)
	}

	if file.Deck.Name == "" {
		file.Deck.Name = file.Deck.ID
	}

	seen := make(map[string]bool, len(file.Deck.Entries))
	for i := range file.Deck.Entries {
		entry := &file.Deck.Entries[i]
		if entry.ID == "" {
			return nil, fmt.Errorf("%s: entry %d has no id", path, i)
		}
		if seen[entry.ID] {
			return nil, fmt.Errorf("%s: duplicate entry id %s", path, entry.ID)
		}
		seen[entry.ID] = true

		if entry.Type == "" {
			entry.Type = models.EntryTypeText
		}
		if entry.Weight <= 0 {
			entry.Weight = 1
		}
	}

	for _, doc := range file.Documents {
		if doc.ID == "" {
			return nil, fmt.Errorf("%s: document without id", path)
		}
	}

	return &file, nil
}

func newDeckCmd(open StoreOpener) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deck",
		Short: "Manage hero action decks",
	}

	cmd.AddCommand(
		newDeckImportCmd(open),
		newDeckListCmd(open),
		newDeckUseCmd(open),
	)

	return cmd
}

func newDeckImportCmd(open StoreOpener) *cobra.Command {
	var use bool

	cmd := &cobra.Command{
		Use:   "import <file.yaml>",
		Short: "Store a deck and its documents from a YAML file",
		Long: `Store a deck and its documents from a YAML file.

The deck is saved as written; the bot assigns roll ranges the first time
someone with authority draws from it. Pass --use to make it the custom deck.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := readDeckFile(args[0])
			if err != nil {
				return err
			}

			return withStores(cmd, open, func(ctx context.Context, stores *Stores) error {
				for i := range file.Documents {
					if err := stores.Documents.SaveDocument(ctx, &document.SaveDocumentInput{
						Document: &file.Documents[i],
					}); err != nil {
						return err
					}
				}

				if err := stores.Decks.SaveDeck(ctx, &deck.SaveDeckInput{
					Deck: &file.Deck,
				}); err != nil {
					return err
				}

				if use {
					if err := stores.Decks.SetCustomDeckRef(ctx, &deck.SetCustomDeckRefInput{
						DeckRef: file.Deck.ID,
					}); err != nil {
						return err
					}
				}

				fmt.Fprintf(cmd.OutOrStdout(), "Imported deck %q (%d entries, %d documents)\n", file.Deck.Name, len(file.Deck.Entries), len(file.Documents))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&use, "use", false, "Make the imported deck the custom deck")

	return cmd
}

func newDeckListCmd(open StoreOpener) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored decks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStores(cmd, open, func(ctx context.Context, stores *Stores) error {
				output, err := stores.Decks.ListDecks(ctx, &deck.ListDecksInput{})
				if err != nil {
					return err
				}

				custom, err := stores.Decks.GetCustomDeckRef(ctx)
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				if len(output.Decks) == 0 {
					fmt.Fprintln(out, "No decks stored")
					return nil
				}

				for _, d := range output.Decks {
					marker := " "
					if d.ID == custom {
						marker = "*"
					}
					fmt.Fprintf(out, "%s %s\t%s\t%d entries\n", marker, d.ID, d.Name, len(d.Entries))
				}
				return nil
			})
		},
	}
}

func newDeckUseCmd(open StoreOpener) *cobra.Command {
	var clearRef bool

	cmd := &cobra.Command{
		Use:   "use [deck-id]",
		Short: "Set the custom deck, or clear it with --clear",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if clearRef == (len(args) == 1) {
				return fmt.Errorf("give a deck id or --clear")
			}

			return withStores(cmd, open, func(ctx context.Context, stores *Stores) error {
				ref := ""
				if !clearRef {
					ref = args[0]
					if _, err := stores.Decks.GetDeck(ctx, &deck.GetDeckInput{DeckID: ref}); err != nil {
						return err
					}
				}

				if err := stores.Decks.SetCustomDeckRef(ctx, &deck.SetCustomDeckRefInput{
					DeckRef: ref,
				}); err != nil {
					return err
				}

				if clearRef {
					fmt.Fprintln(cmd.OutOrStdout(), "Custom deck cleared")
				} else {
					fmt.Fprintf(cmd.OutOrStdout(), "Custom deck set to %s\n", ref)
				}
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&clearRef, "clear", false, "Fall back to the world default deck")

	return cmd
}
