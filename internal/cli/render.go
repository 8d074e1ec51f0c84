package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/rshade/ecocalc/internal/carbon"
	"github.com/rshade/ecocalc/internal/config"
	"github.com/rshade/ecocalc/internal/format"
)

// Result card rendering constants.
const (
	cardWidth         = 48
	maxQuantityDigits = 3
	savingsColor      = lipgloss.Color("42")
	emissionsColor    = lipgloss.Color("208")
	mutedColor        = lipgloss.Color("245")
	borderColor       = lipgloss.Color("63")
)

// encode writes v in a structured output format. It reports false for text.
func encode(w io.Writer, outputFormat string, v any) (bool, error) {
	switch outputFormat {
	case config.OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return true, enc.Encode(v)
	case config.OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return true, err
		}
		return true, enc.Close()
	default:
		return false, nil
	}
}

// renderResult prints a calculation result in the configured format.
func (a *app) renderResult(w io.Writer, v format.View) error {
	if done, err := encode(w, a.cfg.Output.Format, v); done {
		return err
	}
	if a.styled(w) {
		return renderStyledResult(w, v)
	}
	return renderPlainResult(w, v)
}

// renderPlainResult writes the result as plain text lines.
func renderPlainResult(w io.Writer, v format.View) error {
	var b strings.Builder
	fmt.Fprintln(&b, v.Title)
	fmt.Fprintf(&b, "%s %s %s\n", v.DisplayValue, v.Unit, v.Caption)
	fmt.Fprintln(&b, quantityLine(v))
	if v.BasisLabel != "" {
		fmt.Fprintf(&b, "Base: %s\n", v.BasisLabel)
	}
	for _, c := range v.Comparisons {
		fmt.Fprintf(&b, "≈ %s\n", c.Text)
	}
	for _, n := range v.Notes {
		fmt.Fprintf(&b, "- %s\n", n)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// renderStyledResult writes the result as a bordered lipgloss card.
func renderStyledResult(w io.Writer, v format.View) error {
	valueColor := savingsColor
	if v.Impact == carbon.ImpactEmissions {
		valueColor = emissionsColor
	}

	titleStyle := lipgloss.NewStyle().Bold(true)
	valueStyle := lipgloss.NewStyle().Bold(true).Foreground(valueColor)
	mutedStyle := lipgloss.NewStyle().Foreground(mutedColor)
	boxStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Padding(0, 1).
		Width(cardWidth)

	var content strings.Builder
	content.WriteString(titleStyle.Render(v.Title))
	content.WriteString("\n\n")
	content.WriteString(valueStyle.Render(v.DisplayValue + " " + v.Unit))
	content.WriteString(" ")
	content.WriteString(mutedStyle.Render(v.Caption))
	content.WriteString("\n")
	content.WriteString(mutedStyle.Render(quantityLine(v)))
	if v.BasisLabel != "" {
		content.WriteString("\n")
		content.WriteString(mutedStyle.Render("Base: " + v.BasisLabel))
	}
	if len(v.Comparisons) > 0 {
		content.WriteString("\n")
		for _, c := range v.Comparisons {
			content.WriteString("\n≈ " + c.Text)
		}
	}
	if len(v.Notes) > 0 {
		content.WriteString("\n")
		for _, n := range v.Notes {
			content.WriteString("\n" + mutedStyle.Render(n))
		}
	}

	_, err := fmt.Fprintln(w, boxStyle.Render(content.String()))
	return err
}

// quantityLine describes the entered quantity, e.g. "Quantità: 1,200 km".
func quantityLine(v format.View) string {
	return fmt.Sprintf("Quantità: %s %s", format.FormatGrouped(v.Quantity, quantityDigits(v.Quantity)), v.QuantityUnit)
}

// quantityDigits returns the fractional digits needed to show q, at most maxQuantityDigits.
func quantityDigits(q float64) int {
	s := strconv.FormatFloat(q, 'f', -1, 64)
	_, frac, ok := strings.Cut(s, ".")
	if !ok {
		return 0
	}
	return min(len(frac), maxQuantityDigits)
}
