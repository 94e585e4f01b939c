package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/KirkDiggler/heroactions/internal/models"
	"github.com/KirkDiggler/heroactions/internal/repositories/character"
	"github.com/spf13/cobra"
)

func newCharacterCmd(open StoreOpener) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "character",
		Short: "Manage characters",
	}

	cmd.AddCommand(
		newCharacterAddCmd(open),
		newCharacterShowCmd(open),
		newPointsCmd(open),
	)

	return cmd
}

func newCharacterAddCmd(open StoreOpener) *cobra.Command {
	var (
		name       string
		kind       string
		owners     []string
		heroPoints int
	)

	cmd := &cobra.Command{
		Use:   "add <id>",
		Short: "Create or replace a character",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			charType := models.CharacterType(kind)
			switch charType {
			case models.CharacterTypeCharacter, models.CharacterTypeNPC, models.CharacterTypeVehicle:
			default:
				return fmt.Errorf("unknown character type %q", kind)
			}

			if heroPoints < 0 {
				return fmt.Errorf("hero points cannot be negative")
			}

			char := &models.Character{
				ID:         args[0],
				Name:       name,
				Type:       charType,
				Owners:     owners,
				HeroPoints: heroPoints,
			}
			if char.Name == "" {
				char.Name = char.ID
			}

			return withStores(cmd, open, func(ctx context.Context, stores *Stores) error {
				if err := stores.Characters.SaveCharacter(ctx, &character.SaveCharacterInput{
					Character: char,
				}); err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(), "Saved %s %q owned by %v with %d hero point(s)\n", char.Type, char.Name, char.Owners, char.HeroPoints)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Display name (defaults to the id)")
	cmd.Flags().StringVar(&kind, "type", string(models.CharacterTypeCharacter), "character, npc or vehicle")
	cmd.Flags().StringSliceVar(&owners, "owner", nil, "Discord user id of an owner (repeatable)")
	cmd.Flags().IntVar(&heroPoints, "points", 0, "Starting hero points")

	return cmd
}

func newCharacterShowCmd(open StoreOpener) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Print a character",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStores(cmd, open, func(ctx context.Context, stores *Stores) error {
				char, err := stores.Characters.GetCharacter(ctx, &character.GetCharacterInput{
					CharacterID: args[0],
				})
				if err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(), "%s (%s) type=%s owners=%v points=%d\n", char.Name, char.ID, char.Type, char.Owners, char.HeroPoints)
				return nil
			})
		},
	}
}

func newPointsCmd(open StoreOpener) *cobra.Command {
	return &cobra.Command{
		Use:   "points <id> <amount>",
		Short: "Grant hero points; a negative amount takes them away",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("amount must be a whole number: %w", err)
			}

			return withStores(cmd, open, func(ctx context.Context, stores *Stores) error {
				output, err := stores.Characters.AddPoints(ctx, &character.AddPointsInput{
					CharacterID: args[0],
					Amount:      amount,
				})
				if err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(), "%s now has %d hero point(s)\n", args[0], output.Total)
				return nil
			})
		},
	}
}
