package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/demonlord-sheet/internal/domain/rulebook"
	apperr "github.com/KirkDiggler/demonlord-sheet/internal/errors"
)

// PathSummary describes a path for listing
type PathSummary struct {
	Key     string        `json:"key"`
	Name    string        `json:"name"`
	Tier    rulebook.Tier `json:"tier"`
	Levels  []int         `json:"levels"`
	Choices []string      `json:"choices"`
}

func newPathsCmd(deps *Deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "paths",
		Short: "List the available paths",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPaths(cmd, deps)
		},
	}

	cmd.Flags().StringP("tier", "t", "", "Only list one tier: novice, expert or master")

	return cmd
}

func runPaths(cmd *cobra.Command, deps *Deps) error {
	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}
	tierFlag, _ := cmd.Flags().GetString("tier")

	tiers := []rulebook.Tier{rulebook.TierNovice, rulebook.TierExpert, rulebook.TierMaster}
	if tierFlag != "" {
		tier := rulebook.Tier(strings.ToLower(tierFlag))
		if !tier.IsValid() {
			return apperr.InvalidArgumentf("unknown tier %q", tierFlag)
		}
		tiers = []rulebook.Tier{tier}
	}

	summaries := []PathSummary{}
	for _, tier := range tiers {
		for _, p := range deps.Catalog.ListPaths(tier) {
			summaries = append(summaries, summarize(p))
		}
	}

	if format == FormatJSON {
		return writeJSON(cmd.OutOrStdout(), summaries)
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	for _, s := range summaries {
		levels := make([]string, 0, len(s.Levels))
		for _, l := range s.Levels {
			levels = append(levels, fmt.Sprint(l))
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\tlevels %s\t%s\n",
			s.Key, s.Name, s.Tier, strings.Join(levels, ","), strings.Join(s.Choices, "; "))
	}
	return tw.Flush()
}

func summarize(p *rulebook.Path) PathSummary {
	s := PathSummary{
		Key:     p.Key,
		Name:    p.Name,
		Tier:    p.Tier(),
		Levels:  p.Tier().Levels(),
		Choices: []string{},
	}
	maxLevel := s.Levels[len(s.Levels)-1]
	for _, lc := range p.Choices(maxLevel) {
		s.Choices = append(s.Choices, fmt.Sprintf("level %d: %d %s", lc.Level, lc.Config.Count, lc.Config.Type))
	}
	return s
}
