// Package main provides a tool to generate the emission factor reference
// document from the factor tables compiled into internal/carbon.
//
// Usage:
//
//	go run ./tools/generate-factor-docs [--output FILE] [--validate]
//
// Flags:
//
//	--output    Output file (default: ./docs/FACTORS.md, "-" for stdout)
//	--validate  Check every activity has factors and no factor is negative
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rshade/ecocalc/internal/carbon"
)

const header = `# Emission factors

Generated by ` + "`go run ./tools/generate-factor-docs`" + `. Do not edit by hand.

All values are kg CO₂ per unit of activity. Car-km comparisons divide a
result by the car baseline of %s kg/km.
`

// main renders the factor reference and writes it to the output file.
func main() {
	output := flag.String("output", "./docs/FACTORS.md", "Output file, - for stdout")
	validate := flag.Bool("validate", true, "Validate the factor tables before writing")
	flag.Parse()

	if *validate {
		if err := validateTables(); err != nil {
			fmt.Fprintf(os.Stderr, "Validation error: %v\n", err)
			os.Exit(1)
		}
	}

	if *output == "-" {
		if err := render(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Error rendering factors: %v\n", err)
			os.Exit(1)
		}
		return
	}

	var b strings.Builder
	if err := render(&b); err != nil {
		fmt.Fprintf(os.Stderr, "Error rendering factors: %v\n", err)
		os.Exit(1)
	}

	if err := os.MkdirAll(filepath.Dir(*output), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output directory: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*output, []byte(b.String()), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing file: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully wrote %s (%d bytes)\n", *output, b.Len())
}

// validateTables checks that every activity has at least one factor and
// that no factor is negative.
func validateTables() error {
	for _, activity := range carbon.Activities() {
		factors := carbon.Factors(activity)
		if len(factors) == 0 {
			return fmt.Errorf("activity %s has no factors", activity)
		}
		for _, f := range factors {
			if f.CO2PerUnit < 0 {
				return fmt.Errorf("%s/%s: negative factor %v", activity, f.Key, f.CO2PerUnit)
			}
			if f.Label == "" {
				return fmt.Errorf("%s/%s: empty label", activity, f.Key)
			}
		}
	}
	return nil
}

// render writes one markdown section per activity.
func render(w io.Writer) error {
	if _, err := fmt.Fprintf(w, header, formatFactor(carbon.CarBaselineKgPerKm)); err != nil {
		return err
	}

	for _, activity := range carbon.Activities() {
		info, _ := carbon.Describe(activity)
		if _, err := fmt.Fprintf(w, "\n## %s (`%s`)\n\n%s. Impact: %s.\n\n", info.Title, activity, info.Description, info.Impact); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, "| Key | Label | kg CO₂ / unit | Unit | Notes |"); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, "|---|---|---|---|---|"); err != nil {
			return err
		}
		for _, f := range carbon.Factors(activity) {
			key := string(f.Key)
			if key == "" {
				key = "-"
			}
			if _, err := fmt.Fprintf(w, "| %s | %s | %s | %s | %s |\n",
				key, f.Label, formatFactor(f.CO2PerUnit), f.Unit, factorNotes(f)); err != nil {
				return err
			}
		}
	}
	return nil
}

// factorNotes describes the auxiliary fields of a factor.
func factorNotes(f carbon.EmissionFactor) string {
	var notes []string
	if f.TreesPerUnit > 0 {
		notes = append(notes, "trees/unit "+formatFactor(f.TreesPerUnit))
	}
	if f.ItemUnit != "" {
		notes = append(notes, "per "+f.ItemUnit)
	}
	if f.HasEquivalent() {
		notes = append(notes, "≈ "+f.Equivalent.Label)
	}
	return strings.Join(notes, "; ")
}

func formatFactor(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
