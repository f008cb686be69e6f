package main

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-sheet/internal/engine"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

func newRecalcCmd(opts *rootOptions) *cobra.Command {
	var (
		statePath string
		strict    bool
	)

	cmd := &cobra.Command{
		Use:   "recalc",
		Short: "Recalculate derived stats from a state file",
		Long: `recalc reads a character state (YAML or JSON, "-" for stdin) and prints
the derived stats as JSON. It does not touch Redis.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cat, err := opts.loadCatalog()
			if err != nil {
				return err
			}

			state, err := readState(cmd.InOrStdin(), statePath)
			if err != nil {
				return err
			}

			derived := engine.RecalcAll(state, cat)
			if err := writeJSON(cmd.OutOrStdout(), derived); err != nil {
				return err
			}

			if strict && derived.HasErrors() {
				return errors.FailedPreconditionf("character sheet has %d error(s)", countErrors(derived))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&statePath, "state", "", "character state file (.yaml, .yml, .json or - for stdin)")
	cmd.Flags().BoolVar(&strict, "strict", false, "exit non-zero when any warning has error severity")
	_ = cmd.MarkFlagRequired("state")

	return cmd
}

// readState decodes a state file. JSON is chosen by extension; anything
// else, stdin included, is read as YAML.
func readState(stdin io.Reader, path string) (*dnd5e.CharacterState, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeInvalidArgument, "failed to read state %s", path)
	}

	state := &dnd5e.CharacterState{}
	if strings.EqualFold(filepath.Ext(path), ".json") {
		err = json.Unmarshal(data, state)
	} else {
		err = yaml.Unmarshal(data, state)
	}
	if err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeInvalidArgument, "failed to decode state %s", path)
	}

	return state, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return errors.Wrap(err, "failed to encode output")
	}
	return nil
}

func countErrors(derived *dnd5e.DerivedStats) int {
	n := 0
	for _, w := range derived.Warnings {
		if w.Severity == dnd5e.SeverityError {
			n++
		}
	}
	return n
}
