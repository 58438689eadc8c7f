// Package cli implements the demonlord-sheet commands.
package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/demonlord-sheet/internal/domain/character"
	"github.com/KirkDiggler/demonlord-sheet/internal/domain/rulebook/demonlord"
	apperr "github.com/KirkDiggler/demonlord-sheet/internal/errors"
	"github.com/KirkDiggler/demonlord-sheet/internal/events"
	characterService "github.com/KirkDiggler/demonlord-sheet/internal/services/character"
)

// Output formats
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Deps are the collaborators the commands run against
type Deps struct {
	Service    characterService.Service
	Catalog    characterService.Catalog
	Characters map[string]demonlord.Factory

	// Validation, when set, replaces the validation config of loaded characters
	Validation *character.ValidationConfig

	// EventBus is attached to loaded characters once they are set up;
	// Changes, when listening on it, is drained into reassign output
	EventBus *events.Bus
	Changes  *events.ChangeLog

	// DefaultLevel and DefaultFormat seed the flag defaults
	DefaultLevel  int
	DefaultFormat string
}

// NewRootCmd builds the command tree
func NewRootCmd(deps *Deps) *cobra.Command {
	if deps.DefaultFormat == "" {
		deps.DefaultFormat = FormatText
	}
	if deps.Characters == nil {
		deps.Characters = demonlord.Factories
	}

	root := &cobra.Command{
		Use:           "sheet",
		Short:         "Shadow of the Demon Lord character sheets",
		Long:          "Resolves character attributes from ancestry, paths and stored choices, and previews what path changes would do to those choices.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringP("format", "f", deps.DefaultFormat, "Output format: json or text")

	root.AddCommand(
		newShowCmd(deps),
		newPathsCmd(deps),
		newReassignCmd(deps),
	)

	return root
}

func outputFormat(cmd *cobra.Command) (string, error) {
	format, _ := cmd.Flags().GetString("format")
	if format != FormatText && format != FormatJSON {
		return "", apperr.InvalidArgumentf("unknown format %q, use json or text", format)
	}
	return format, nil
}

// loadCharacter builds a pre-made character and moves it to level
func loadCharacter(deps *Deps, key string, level int) (*character.Character, error) {
	factory, ok := deps.Characters[key]
	if !ok {
		return nil, apperr.NotFoundf("no pre-made character %q", key).
			WithMeta("character", key)
	}

	char, err := factory()
	if err != nil {
		return nil, err
	}
	if deps.Validation != nil {
		char.WithValidationConfig(*deps.Validation)
	}
	char.SetLevel(level)
	if deps.EventBus != nil {
		char.WithEventBus(deps.EventBus)
	}
	return char, nil
}

func writeJSON(w io.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}
