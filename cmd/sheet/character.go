package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/services/character"
)

// sheetView is the JSON printed for a single character
type sheetView struct {
	State   *dnd5e.CharacterState `json:"state,omitempty"`
	Derived *dnd5e.DerivedStats   `json:"derived,omitempty"`
}

// summaryView is one row of character list
type summaryView struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Level   int    `json:"level"`
	ClassID string `json:"class_id"`
	RaceID  string `json:"race_id,omitempty"`
}

func newCharacterCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "character",
		Short: "Manage stored characters",
	}

	cmd.AddCommand(
		newCharacterCreateCmd(opts),
		newCharacterGetCmd(opts),
		newCharacterListCmd(opts),
		newCharacterUpdateCmd(opts),
		newCharacterEquipCmd(opts),
		newCharacterLevelUpCmd(opts),
		newCharacterRecalculateCmd(opts),
		newCharacterDeleteCmd(opts),
	)

	return cmd
}

// withService opens the character service for one command and closes it
// afterwards
func (o *rootOptions) withService(ctx context.Context, fn func(svc character.Service) error) error {
	svc, closeFn, err := o.newService(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if closeFn == nil {
			return
		}
		if err := closeFn(); err != nil {
			slog.WarnContext(ctx, "failed to close character store", "error", err)
		}
	}()

	return fn(svc)
}

func newCharacterCreateCmd(opts *rootOptions) *cobra.Command {
	var statePath string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a character from a state file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			state, err := readState(cmd.InOrStdin(), statePath)
			if err != nil {
				return err
			}

			return opts.withService(cmd.Context(), func(svc character.Service) error {
				out, err := svc.CreateCharacter(cmd.Context(), &character.CreateCharacterInput{State: state})
				if err != nil {
					return err
				}
				return writeJSON(cmd.OutOrStdout(), sheetView{State: out.State, Derived: out.Derived})
			})
		},
	}

	cmd.Flags().StringVar(&statePath, "state", "", "character state file (.yaml, .yml, .json or - for stdin)")
	_ = cmd.MarkFlagRequired("state")

	return cmd
}

func newCharacterGetCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Print a stored character and its derived stats",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withService(cmd.Context(), func(svc character.Service) error {
				out, err := svc.GetCharacter(cmd.Context(), &character.GetCharacterInput{CharacterID: args[0]})
				if err != nil {
					return err
				}
				return writeJSON(cmd.OutOrStdout(), sheetView{State: out.State, Derived: out.Derived})
			})
		},
	}
}

func newCharacterListCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored characters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.withService(cmd.Context(), func(svc character.Service) error {
				out, err := svc.ListCharacters(cmd.Context(), &character.ListCharactersInput{})
				if err != nil {
					return err
				}

				summaries := make([]summaryView, 0, len(out.States))
				for _, state := range out.States {
					summaries = append(summaries, summaryView{
						ID:      state.ID,
						Name:    state.Name,
						Level:   state.Level,
						ClassID: state.ClassID,
						RaceID:  state.RaceID,
					})
				}
				return writeJSON(cmd.OutOrStdout(), summaries)
			})
		},
	}
}

func newCharacterUpdateCmd(opts *rootOptions) *cobra.Command {
	var statePath string

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Replace a stored character with a state file",
		Long: `update replaces the stored character with the same id. Hit points in
the file are ignored; the stored values carry over.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			state, err := readState(cmd.InOrStdin(), statePath)
			if err != nil {
				return err
			}

			return opts.withService(cmd.Context(), func(svc character.Service) error {
				out, err := svc.UpdateCharacter(cmd.Context(), &character.UpdateCharacterInput{State: state})
				if err != nil {
					return err
				}
				return writeJSON(cmd.OutOrStdout(), sheetView{State: out.State, Derived: out.Derived})
			})
		},
	}

	cmd.Flags().StringVar(&statePath, "state", "", "character state file (.yaml, .yml, .json or - for stdin)")
	_ = cmd.MarkFlagRequired("state")

	return cmd
}

func newCharacterEquipCmd(opts *rootOptions) *cobra.Command {
	var (
		armor   string
		shield  string
		weapons []string
	)

	cmd := &cobra.Command{
		Use:   "equip <id>",
		Short: "Replace the equipped armor, shield and weapons",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withService(cmd.Context(), func(svc character.Service) error {
				out, err := svc.EquipItems(cmd.Context(), &character.EquipItemsInput{
					CharacterID: args[0],
					Equipped: dnd5e.EquippedSlots{
						Armor:   armor,
						Shield:  shield,
						Weapons: weapons,
					},
				})
				if err != nil {
					return err
				}
				return writeJSON(cmd.OutOrStdout(), sheetView{State: out.State, Derived: out.Derived})
			})
		},
	}

	cmd.Flags().StringVar(&armor, "armor", "", "armor item id")
	cmd.Flags().StringVar(&shield, "shield", "", "shield item id")
	cmd.Flags().StringSliceVar(&weapons, "weapon", nil, "weapon item id, repeatable")

	return cmd
}

func newCharacterLevelUpCmd(opts *rootOptions) *cobra.Command {
	var method string

	cmd := &cobra.Command{
		Use:   "level-up <id>",
		Short: "Advance a character one level",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withService(cmd.Context(), func(svc character.Service) error {
				out, err := svc.LevelUp(cmd.Context(), &character.LevelUpInput{
					CharacterID: args[0],
					Method:      character.HitPointMethod(method),
				})
				if err != nil {
					return err
				}

				if _, err := fmt.Fprintf(cmd.ErrOrStderr(), "level %d: hit die %d\n",
					out.State.Level, out.HitDieResult); err != nil {
					return err
				}
				return writeJSON(cmd.OutOrStdout(), sheetView{State: out.State, Derived: out.Derived})
			})
		},
	}

	cmd.Flags().StringVar(&method, "method", string(character.HitPointMethodAverage), "hit point method (average or roll)")

	return cmd
}

func newCharacterRecalculateCmd(opts *rootOptions) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "recalculate [id]",
		Short: "Refresh the stored derived stats",
		Long: `recalculate refreshes the stored snapshot of one character, or of every
stored character with --all, for example after the catalog changed.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if all {
				return cobra.NoArgs(cmd, args)
			}
			return cobra.ExactArgs(1)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withService(cmd.Context(), func(svc character.Service) error {
				if all {
					return recalculateAll(cmd, svc)
				}

				out, err := svc.Recalculate(cmd.Context(), &character.RecalculateInput{CharacterID: args[0]})
				if err != nil {
					return err
				}
				return writeJSON(cmd.OutOrStdout(), sheetView{Derived: out.Derived})
			})
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "recalculate every stored character")

	return cmd
}

// recalculateAll keeps going past failures and reports how many failed
func recalculateAll(cmd *cobra.Command, svc character.Service) error {
	ctx := cmd.Context()

	list, err := svc.ListCharacters(ctx, &character.ListCharactersInput{})
	if err != nil {
		return err
	}

	var failed int
	for _, state := range list.States {
		if _, err := svc.Recalculate(ctx, &character.RecalculateInput{CharacterID: state.ID}); err != nil {
			failed++
			slog.ErrorContext(ctx, "failed to recalculate character",
				"character_id", state.ID,
				"error", err)
		}
	}

	if _, err := fmt.Fprintf(cmd.OutOrStdout(), "recalculated %d of %d characters\n",
		len(list.States)-failed, len(list.States)); err != nil {
		return err
	}
	if failed > 0 {
		return errors.Internalf("%d character(s) failed to recalculate", failed)
	}
	return nil
}

func newCharacterDeleteCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a stored character",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withService(cmd.Context(), func(svc character.Service) error {
				if _, err := svc.DeleteCharacter(cmd.Context(), &character.DeleteCharacterInput{CharacterID: args[0]}); err != nil {
					return err
				}
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
				return err
			})
		},
	}
}
