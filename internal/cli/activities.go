package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rshade/ecocalc/internal/carbon"
)

// activityRow is the serialisable form of an activity listing entry.
type activityRow struct {
	carbon.ActivityInfo `yaml:",inline"`

	Categories []carbon.Category `json:"categories,omitempty" yaml:"categories,omitempty"`
}

func newActivitiesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "activities",
		Short: "List the supported activities",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rows := make([]activityRow, 0, len(carbon.Activities()))
			for _, activity := range carbon.Activities() {
				info, _ := carbon.Describe(activity)
				rows = append(rows, activityRow{
					ActivityInfo: info,
					Categories:   carbon.Categories(activity),
				})
			}

			if done, err := encode(cmd.OutOrStdout(), a.cfg.Output.Format, rows); done {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, tabPadding, ' ', 0)
			fmt.Fprintln(tw, "Activity\tTitle\tImpact\tUnit\tCategories")
			fmt.Fprintln(tw, "--------\t-----\t------\t----\t----------")
			for _, r := range rows {
				cats := make([]string, len(r.Categories))
				for i, c := range r.Categories {
					cats[i] = string(c)
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
					r.Activity, r.Title, r.Impact, r.QuantityUnit, strings.Join(cats, ","))
			}
			return tw.Flush()
		},
	}
}
