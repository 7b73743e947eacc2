package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/companion/benefit"
	"github.com/katalvlaran/companion/candidate"
	"github.com/katalvlaran/companion/planner"
)

// selection merges positional plant names with --prefer, falling back to
// the configured preferred plants when both are empty.
func (a *app) selection(args, prefer []string) []string {
	out := append(append([]string{}, args...), prefer...)
	if len(out) == 0 {
		out = append(out, a.cfg.Plan.Preferred...)
	}

	return out
}

func newPlanCmd(a *app) *cobra.Command {
	var (
		prefer  []string
		maxSize int
		noExt   bool
	)
	cmd := &cobra.Command{
		Use:   "plan [PLANT...]",
		Short: "Group preferred plants into garden beds",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.loadGraph(cmd.Context())
			if err != nil {
				return err
			}
			req := planner.Request{
				Preferred:         a.selection(args, prefer),
				MaxGroupSize:      a.cfg.Plan.MaxGroupSize,
				DisableExtensions: !a.cfg.Plan.Extensions || noExt,
			}
			if cmd.Flags().Changed("max-size") {
				req.MaxGroupSize = maxSize
			}
			res, err := planner.Plan(cmd.Context(), g, req, planner.WithLogger(a.logger))
			if err != nil {
				return err
			}

			return a.renderer().plan(res)
		},
	}
	cmd.Flags().StringSliceVarP(&prefer, "prefer", "p", nil, "preferred plants, comma-separated")
	cmd.Flags().IntVar(&maxSize, "max-size", candidate.DefaultMaxGroupSize,
		fmt.Sprintf("maximum plants per bed (%d-%d)", candidate.MinGroupSize, candidate.MaxGroupSizeLimit))
	cmd.Flags().BoolVar(&noExt, "no-extensions", false, "never add recommended plants")

	return cmd
}

// companionsReport is the output of the companions command.
type companionsReport struct {
	Companions      []planner.Companion        `json:"companions" yaml:"companions"`
	Recommendations []planner.HelperSuggestion `json:"recommendations" yaml:"recommendations"`
	Unknown         []string                   `json:"unknown" yaml:"unknown"`
}

func newCompanionsCmd(a *app) *cobra.Command {
	var (
		prefer []string
		limit  int
	)
	cmd := &cobra.Command{
		Use:   "companions [PLANT...]",
		Short: "Show how selected plants help each other and which plants to add",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.loadGraph(cmd.Context())
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("limit") {
				limit = a.cfg.Plan.HelperLimit
			}
			selected := a.selection(args, prefer)
			_, unknown := candidate.Split(g, selected)
			if unknown == nil {
				unknown = []string{}
			}

			return a.renderer().companions(companionsReport{
				Companions:      planner.Companions(g, selected),
				Recommendations: planner.TopHelpers(g, selected, limit),
				Unknown:         unknown,
			})
		},
	}
	cmd.Flags().StringSliceVarP(&prefer, "prefer", "p", nil, "selected plants, comma-separated")
	cmd.Flags().IntVar(&limit, "limit", planner.DefaultHelperLimit, "maximum recommendations")

	return cmd
}

// relation is one neighbor of a plant in the helpers report.
type relation struct {
	Plant  string `json:"plant" yaml:"plant"`
	Effect string `json:"effect,omitempty" yaml:"effect,omitempty"`
}

// helpersReport is the output of the helpers command.
type helpersReport struct {
	Plant    string     `json:"plant" yaml:"plant"`
	HelpedBy []relation `json:"helped_by" yaml:"helped_by"`
	Helps    []relation `json:"helps" yaml:"helps"`
}

func newHelpersCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "helpers PLANT",
		Short: "Show which plants help PLANT and which plants it helps",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.loadGraph(cmd.Context())
			if err != nil {
				return err
			}
			plant := args[0]
			if !g.Has(plant) {
				return fmt.Errorf("unknown plant %q", plant)
			}

			return a.renderer().helpers(helpersOf(g, plant))
		},
	}
}

func helpersOf(g *benefit.Graph, plant string) helpersReport {
	r := helpersReport{Plant: plant, HelpedBy: []relation{}, Helps: []relation{}}
	for _, h := range g.HelpersOf(plant) {
		effect, _ := g.Effect(h, plant)
		r.HelpedBy = append(r.HelpedBy, relation{Plant: h, Effect: effect})
	}
	for _, p := range g.HelpedBy(plant) {
		effect, _ := g.Effect(plant, p)
		r.Helps = append(r.Helps, relation{Plant: p, Effect: effect})
	}

	return r
}

// plantList is the output of the plants command.
type plantList struct {
	Plants []string `json:"plants" yaml:"plants"`
}

func newPlantsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "plants",
		Short: "List every plant in the dataset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.loadGraph(cmd.Context())
			if err != nil {
				return err
			}

			return a.renderer().plants(plantList{Plants: g.AllPlants()})
		},
	}
}
