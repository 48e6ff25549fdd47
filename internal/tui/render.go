package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/ravenclaw900/dst-farming-ui/internal/report"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA500")).
			Bold(true).
			Underline(true)

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#AAAAAA"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Italic(true)

	recipeStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("#3C3C3C")).
			PaddingLeft(2).
			Foreground(lipgloss.Color("#AAAAAA"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFAF00"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5F5F")).
			Bold(true)

	cursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EEEEEE")).
			Background(lipgloss.Color("#5F5F87")).
			Bold(true).
			PaddingLeft(1).
			PaddingRight(1)

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA500")).
			Bold(true).
			Padding(0, 1)

	cellStyle = lipgloss.NewStyle().Padding(0, 1)
)

// plantName renders a plant name in the plant's own color.
func plantName(name, color string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Bold(true).Render(name)
}

// RenderReport formats a report for the terminal.
func RenderReport(r report.Report) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("%s %s", r.Season, r.Ratio)))
	b.WriteString("\n")
	b.WriteString(infoStyle.Render(fmt.Sprintf("Minimum seeds per crop type: %d", r.MinSeedsPerCropType)))
	b.WriteString("\n")
	if r.Farm != nil {
		b.WriteString(infoStyle.Render(fmt.Sprintf("Filled plot: %d x %d = %d cells (farm %dx%d)",
			r.Farm.FilledHorizontal, r.Farm.FilledVertical, r.Farm.FilledTotal, r.Farm.Width, r.Farm.Height)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if len(r.Recipes) == 0 {
		b.WriteString(fmt.Sprintf("No combinations for %s at %s.\n", r.Season, r.Ratio))
		return b.String()
	}

	for i, e := range r.Recipes {
		var parts []string
		for _, s := range e.Slots {
			name := plantName(s.Name, s.Color)
			if s.Count > 1 {
				name = fmt.Sprintf("%d× %s", s.Count, name)
			}
			parts = append(parts, name)
		}
		fmt.Fprintf(&b, "%2d. %s\n", i+1, strings.Join(parts, " + "))

		detail := fmt.Sprintf("%s   formula %+d  compost %+d  manure %+d",
			e.Abbreviation, e.Totals.Formula, e.Totals.Compost, e.Totals.Manure)
		if len(e.OutOfSeason) > 0 {
			detail += "\n" + warnStyle.Render("out of season: "+strings.Join(e.OutOfSeason, ", "))
		}
		b.WriteString(recipeStyle.Render(detail))
		b.WriteString("\n")
	}
	return b.String()
}

// RenderCatalog formats the plant catalog as a table.
func RenderCatalog(entries []report.PlantEntry) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("#3C3C3C"))).
		Headers("Plant", "Abbr", "Seasons", "Formula", "Compost", "Manure").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	for _, e := range entries {
		t.Row(
			plantName(e.Name, e.Color),
			e.Abbreviation,
			strings.Join(e.Seasons, ", "),
			fmt.Sprintf("%+d", e.Nutrients.Formula),
			fmt.Sprintf("%+d", e.Nutrients.Compost),
			fmt.Sprintf("%+d", e.Nutrients.Manure),
		)
	}
	return t.String()
}
