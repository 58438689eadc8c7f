package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/demonlord-sheet/internal/domain/choices"
	apperr "github.com/KirkDiggler/demonlord-sheet/internal/errors"
	"github.com/KirkDiggler/demonlord-sheet/internal/events"
	characterService "github.com/KirkDiggler/demonlord-sheet/internal/services/character"
)

func newReassignCmd(deps *Deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reassign",
		Short: "Swap a path and report which stored choices it drops or truncates",
		Example: `  sheet reassign -c edward -l 3 --choice expertPath-3=agility,intellect --slot expertPath --path fighter
  sheet reassign -c edward -l 3 --slot expertPath --path fighter --confirm`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReassign(cmd, deps)
		},
	}

	cmd.Flags().StringP("character", "c", "edward", "Pre-made character to load")
	cmd.Flags().IntP("level", "l", deps.DefaultLevel, "Character level")
	cmd.Flags().StringArray("choice", nil, "Store a choice before reassigning, as location=pick[,pick...]")
	cmd.Flags().String("slot", "", "Path slot: novicePath, expertPath or masterPath (required)")
	cmd.Flags().String("path", "", "Path key to assign; empty clears the slot")
	cmd.Flags().Bool("confirm", false, "Apply the change even when choices would be lost")

	cmd.MarkFlagRequired("slot")

	return cmd
}

// ReassignResult is printed by the reassign command
type ReassignResult struct {
	Applied     bool                 `json:"applied"`
	Confirmed   bool                 `json:"confirmed"`
	Corrections []choices.Correction `json:"corrections"`
	Changes     []events.Change      `json:"changes"`
}

func runReassign(cmd *cobra.Command, deps *Deps) error {
	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}
	key, _ := cmd.Flags().GetString("character")
	level, _ := cmd.Flags().GetInt("level")
	rawChoices, _ := cmd.Flags().GetStringArray("choice")
	slot, _ := cmd.Flags().GetString("slot")
	pathKey, _ := cmd.Flags().GetString("path")
	confirm, _ := cmd.Flags().GetBool("confirm")

	char, err := loadCharacter(deps, key, level)
	if err != nil {
		return err
	}
	for _, raw := range rawChoices {
		if err := applyChoice(char, raw); err != nil {
			return err
		}
	}
	drainChanges(deps)

	output, err := deps.Service.AssignPath(cmd.Context(), &characterService.AssignPathInput{
		Character: char,
		Source:    choices.Source(slot),
		PathKey:   pathKey,
		Confirm:   confirm,
	})
	if apperr.IsConfirmationRequired(err) {
		fmt.Fprintf(cmd.OutOrStdout(), "%v\nStored choices that would change: %v\nRe-run with --confirm to apply.\n",
			err, apperr.GetMeta(err)["invalid_choices"])
		return nil
	}
	if err != nil {
		return err
	}

	result := ReassignResult{
		Applied:     output.Applied,
		Confirmed:   confirm,
		Corrections: output.Corrections,
	}
	if result.Corrections == nil {
		result.Corrections = []choices.Correction{}
	}
	result.Changes = drainChanges(deps)

	if format == FormatJSON {
		return writeJSON(cmd.OutOrStdout(), result)
	}

	out := cmd.OutOrStdout()
	if len(result.Corrections) == 0 {
		fmt.Fprintln(out, "No stored choices were affected.")
	}
	for _, c := range result.Corrections {
		fmt.Fprintf(out, "%s %s: %d -> %d selected\n",
			c.Location, c.Action, c.Before.SelectionLen(), c.After.SelectionLen())
	}
	if !result.Applied && len(result.Corrections) > 0 {
		fmt.Fprintln(out, "Validation is off for this change; the choices above are still stored.")
	}
	for _, c := range result.Changes {
		fmt.Fprintf(out, "- %s\n", c.Summary)
	}
	return nil
}

// drainChanges empties the change log, returning what it held
func drainChanges(deps *Deps) []events.Change {
	if deps.Changes == nil {
		return []events.Change{}
	}
	changes := deps.Changes.Drain()
	if changes == nil {
		changes = []events.Change{}
	}
	return changes
}
