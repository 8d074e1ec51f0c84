package cli

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rshade/ecocalc/internal/carbon"
)

const tabPadding = 2

// factorRow is the serialisable form of one emission factor.
type factorRow struct {
	Activity     carbon.Activity `json:"activity" yaml:"activity"`
	Key          carbon.Category `json:"key,omitempty" yaml:"key,omitempty"`
	Label        string          `json:"label" yaml:"label"`
	CO2PerUnit   float64         `json:"co2_per_unit" yaml:"co2_per_unit"`
	Unit         string          `json:"unit" yaml:"unit"`
	TreesPerUnit float64         `json:"trees_per_unit,omitempty" yaml:"trees_per_unit,omitempty"`
	ItemUnit     string          `json:"item_unit,omitempty" yaml:"item_unit,omitempty"`
	Equivalent   string          `json:"equivalent,omitempty" yaml:"equivalent,omitempty"`
}

func newFactorsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "factors [activity]",
		Short: "List emission factors",
		Long:  "Lists the emission factors (kg CO₂ per unit) of one activity, or of all activities.",
		Example: `  # All factor tables
  ecocalc factors

  # Energy sources only
  ecocalc factors energy -o json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			activities := carbon.Activities()
			if len(args) == 1 {
				activity, err := carbon.ParseActivity(args[0])
				if err != nil {
					return usageError("%v", err)
				}
				activities = []carbon.Activity{activity}
			}

			rows := factorRows(activities)
			if done, err := encode(cmd.OutOrStdout(), a.cfg.Output.Format, rows); done {
				return err
			}
			return renderFactorTable(cmd.OutOrStdout(), rows)
		},
	}
}

func factorRows(activities []carbon.Activity) []factorRow {
	var rows []factorRow
	for _, activity := range activities {
		for _, f := range carbon.Factors(activity) {
			row := factorRow{
				Activity:     activity,
				Key:          f.Key,
				Label:        f.Label,
				CO2PerUnit:   f.CO2PerUnit,
				Unit:         f.Unit,
				TreesPerUnit: f.TreesPerUnit,
				ItemUnit:     f.ItemUnit,
			}
			if f.HasEquivalent() {
				row.Equivalent = f.Equivalent.Label
			}
			rows = append(rows, row)
		}
	}
	return rows
}

func renderFactorTable(w io.Writer, rows []factorRow) error {
	tw := tabwriter.NewWriter(w, 0, 0, tabPadding, ' ', 0)

	fmt.Fprintln(tw, "Activity\tKey\tLabel\tkg CO₂/unit\tUnit")
	fmt.Fprintln(tw, "--------\t---\t-----\t-----------\t----")
	for _, r := range rows {
		key := string(r.Key)
		if key == "" {
			key = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			r.Activity, key, r.Label, strconv.FormatFloat(r.CO2PerUnit, 'f', -1, 64), r.Unit)
	}
	return tw.Flush()
}
