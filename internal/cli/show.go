package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/demonlord-sheet/internal/domain/character"
	"github.com/KirkDiggler/demonlord-sheet/internal/domain/choices"
	"github.com/KirkDiggler/demonlord-sheet/internal/domain/shared"
	apperr "github.com/KirkDiggler/demonlord-sheet/internal/errors"
	characterService "github.com/KirkDiggler/demonlord-sheet/internal/services/character"
)

func newShowCmd(deps *Deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print a resolved character sheet",
		Example: `  sheet show --character edward --level 3
  sheet show -c edward -l 3 --choice expertPath-3=intellect,will -f json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, deps)
		},
	}

	cmd.Flags().StringP("character", "c", "edward", "Pre-made character to load")
	cmd.Flags().IntP("level", "l", deps.DefaultLevel, "Character level")
	cmd.Flags().StringArray("choice", nil, "Store a choice, as location=pick[,pick...] (repeatable)")

	return cmd
}

func runShow(cmd *cobra.Command, deps *Deps) error {
	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}
	key, _ := cmd.Flags().GetString("character")
	level, _ := cmd.Flags().GetInt("level")
	rawChoices, _ := cmd.Flags().GetStringArray("choice")

	char, err := loadCharacter(deps, key, level)
	if err != nil {
		return err
	}

	for _, raw := range rawChoices {
		if err := applyChoice(char, raw); err != nil {
			return err
		}
	}

	sheet, err := deps.Service.BuildSheet(cmd.Context(), char)
	if err != nil {
		return err
	}

	if format == FormatJSON {
		return writeJSON(cmd.OutOrStdout(), sheet)
	}
	return writeSheet(cmd.OutOrStdout(), sheet)
}

// applyChoice parses "location=a,b" and stores it against the matching offer
func applyChoice(char *character.Character, raw string) error {
	locKey, picks, ok := strings.Cut(raw, "=")
	if !ok {
		return apperr.InvalidArgumentf("choice %q must look like location=pick[,pick...]", raw)
	}

	loc, err := choices.ParseLocation(strings.TrimSpace(locKey))
	if err != nil {
		return err
	}

	var offer *choices.Available
	for _, available := range char.AvailableChoices() {
		if available.Location == loc {
			offer = &available
			break
		}
	}
	if offer == nil {
		return apperr.NotFoundf("nothing is offered at %s at level %d", loc, char.Level()).
			WithMeta("location", loc.Key())
	}

	values := splitPicks(picks)
	selection, err := selectionFor(offer.Config, values)
	if err != nil {
		return apperr.Wrapf(err, "invalid choice at %s", loc)
	}

	if !char.SetChoice(loc, selection) {
		return apperr.InvalidArgumentf("a different kind of choice is already stored at %s", loc)
	}
	return nil
}

func selectionFor(offer choices.Config, values []string) (choices.Config, error) {
	switch offer.Type {
	case choices.TypeAttribute:
		attrs := make([]shared.MainAttribute, 0, len(values))
		for _, v := range values {
			attr := shared.MainAttribute(strings.ToLower(v))
			if !attr.IsValid() {
				return choices.Config{}, apperr.InvalidArgumentf("unknown attribute %q", v)
			}
			attrs = append(attrs, attr)
		}
		return choices.SelectAttributes(attrs...), nil
	case choices.TypeSkill:
		skills := make([]shared.Skill, 0, len(values))
		for _, v := range values {
			found := false
			for _, s := range offer.AvailableSkills {
				if strings.EqualFold(s.Name, v) {
					skills = append(skills, s)
					found = true
					break
				}
			}
			if !found {
				return choices.Config{}, apperr.InvalidArgumentf("skill %q is not offered", v)
			}
		}
		return choices.SelectSkills(skills...), nil
	case choices.TypeProfession:
		return choices.SelectProfessions(values...), nil
	case choices.TypeLanguage:
		return choices.SelectLanguages(values...), nil
	case choices.TypeSpell:
		return choices.SelectSpells(values...), nil
	}
	return choices.Config{}, apperr.InvalidArgumentf("unsupported choice type %q", offer.Type)
}

func splitPicks(raw string) []string {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func writeSheet(w io.Writer, sheet *characterService.Sheet) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "%s\tLevel %d %s\n", sheet.Name, sheet.Level, sheet.Ancestry)
	for _, p := range sheet.Paths {
		fmt.Fprintf(tw, "%s\t%s\n", p.Slot, p.Name)
	}
	fmt.Fprintln(tw)

	for _, row := range sheet.Rows {
		fmt.Fprintf(tw, "%s\t%s\n", row.Label, row.Value)
	}

	if len(sheet.Choices) > 0 {
		fmt.Fprintln(tw)
		fmt.Fprintln(tw, "Choices")
		for _, c := range sheet.Choices {
			state := "default"
			if c.Stored {
				state = "stored"
			}
			fmt.Fprintf(tw, "%s\t%s, pick %d\t%s (%s)\t[%s]\n",
				c.Location, c.Type, c.Count, strings.Join(c.Selected, ", "), state, strings.Join(c.Options, ", "))
		}
	}

	if len(sheet.SuggestedLanguages) > 0 {
		fmt.Fprintln(tw)
		fmt.Fprintln(tw, "Suggested languages")
		for _, s := range sheet.SuggestedLanguages {
			fmt.Fprintf(tw, "%s\t%s\n", s.Language, s.Reason)
		}
	}

	return tw.Flush()
}
