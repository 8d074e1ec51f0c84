package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rshade/ecocalc/internal/carbon"
	"github.com/rshade/ecocalc/internal/format"
	"github.com/rshade/ecocalc/internal/logging"
)

// calcCommand describes the flags of one calc subcommand.
type calcCommand struct {
	activity     carbon.Activity
	quantityFlag string
	quantityHelp string
	categoryFlag string
	categoryHelp string
	// distanceFlag adds --distance for the one-way commute (remote work).
	distanceFlag bool
	example      string
}

var calcCommands = []calcCommand{
	{
		activity: carbon.ActivityBike, quantityFlag: "km", quantityHelp: "kilometres cycled",
		example: "ecocalc calc bike --km 5.2",
	},
	{
		activity: carbon.ActivityTransit, quantityFlag: "km", quantityHelp: "kilometres travelled",
		categoryFlag: "mode", categoryHelp: "transport mode",
		example: "ecocalc calc transit --km 15.5 --mode bus",
	},
	{
		activity: carbon.ActivityRemoteWork, quantityFlag: "days", quantityHelp: "days worked from home",
		distanceFlag: true,
		example:      "ecocalc calc remote-work --days 3 --distance 12.5",
	},
	{
		activity: carbon.ActivityDiet, quantityFlag: "days", quantityHelp: "meat-free days",
		example: "ecocalc calc diet --days 7",
	},
	{
		activity: carbon.ActivityPlastic, quantityFlag: "quantity", quantityHelp: "single-use items avoided",
		categoryFlag: "item", categoryHelp: "item type",
		example: "ecocalc calc plastic --item bottle --quantity 10",
	},
	{
		activity: carbon.ActivityEnergy, quantityFlag: "kwh", quantityHelp: "electricity consumed in kWh",
		categoryFlag: "source", categoryHelp: "energy source",
		example: "ecocalc calc energy --kwh 8.5 --source renewable",
	},
	{
		activity: carbon.ActivityFlight, quantityFlag: "km", quantityHelp: "flight distance in km",
		categoryFlag: "range", categoryHelp: "flight range (derived from --km when omitted)",
		example: "ecocalc calc flight --km 1200 --range medium",
	},
	{
		activity: carbon.ActivityRecycling, quantityFlag: "kg", quantityHelp: "kilograms recycled",
		categoryFlag: "material", categoryHelp: "recycled material",
		example: "ecocalc calc recycling --kg 2.5 --material paper",
	},
	{
		activity: carbon.ActivityShopping, quantityFlag: "euros", quantityHelp: "amount spent in euro",
		categoryFlag: "category", categoryHelp: "purchase category",
		example: "ecocalc calc shopping --euros 50 --category clothing",
	},
	{
		activity: carbon.ActivityFood, quantityFlag: "portions", quantityHelp: "number of portions",
		categoryFlag: "meal", categoryHelp: "meal type",
		example: "ecocalc calc food --portions 1 --meal beef",
	},
}

// newCalcCmd creates the calc command group with one subcommand per activity.
func newCalcCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Calculate the CO₂ impact of an activity",
	}
	for _, cc := range calcCommands {
		cmd.AddCommand(newActivityCmd(a, cc))
	}
	return cmd
}

func newActivityCmd(a *app, cc calcCommand) *cobra.Command {
	var (
		quantity float64
		category string
		distance float64
	)

	info, _ := carbon.Describe(cc.activity)
	cmd := &cobra.Command{
		Use:     string(cc.activity),
		Short:   info.Description,
		Long:    info.Title + ": " + info.Description,
		Example: "  " + cc.example,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in := carbon.Input{
				Quantity:   quantity,
				Category:   carbon.Category(strings.ToLower(strings.TrimSpace(category))),
				DistanceKm: distance,
			}
			if cc.activity == carbon.ActivityFlight && in.Category == "" && quantity > 0 {
				in.Category = carbon.ClassifyFlightRange(quantity)
			}

			log := logging.FromContext(cmd.Context())
			result, err := carbon.Compute(cc.activity, in)
			if err != nil {
				log.Debug().Err(err).Str("activity", string(cc.activity)).Msg("calculation rejected")
				return err
			}
			log.Debug().
				Str("activity", string(cc.activity)).
				Float64("quantity", in.Quantity).
				Str("category", string(in.Category)).
				Float64("value_kg", result.Value).
				Msg("calculation completed")

			return a.renderResult(cmd.OutOrStdout(), format.NewView(result))
		},
	}

	cmd.Flags().Float64Var(&quantity, cc.quantityFlag, 0, cc.quantityHelp)
	if cc.categoryFlag != "" {
		cmd.Flags().StringVar(&category, cc.categoryFlag, "", categoryUsage(cc))
	}
	if cc.distanceFlag {
		cmd.Flags().Float64Var(&distance, "distance", 0, "one-way commute distance in km")
	}
	return cmd
}

// categoryUsage lists the accepted values of a category flag.
func categoryUsage(cc calcCommand) string {
	cats := carbon.Categories(cc.activity)
	names := make([]string, len(cats))
	for i, c := range cats {
		names[i] = string(c)
	}
	return fmt.Sprintf("%s: %s", cc.categoryHelp, strings.Join(names, ", "))
}
