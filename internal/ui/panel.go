package ui

import (
	"strconv"
	"strings"
	"vitrine/internal/filter"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

const (
	activeSymbol   = "◆"
	completeSymbol = "◇"
	separator      = " · "
	borderTop      = "┌"
	borderSide     = "│"
	borderBottom   = "└"
)

func FormTheme() *huh.Theme {
	t := huh.ThemeBase()
	red := lipgloss.Color("1")
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.SetString("✗").Foreground(red)
	t.Blurred.ErrorMessage = t.Blurred.ErrorMessage.SetString("✗").Foreground(red)
	return t
}

type Field struct {
	Label    string
	Value    string
	Optional bool
}

func borderStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
}

// RenderPanel draws a bordered list of fields. The field at activeIdx is shown
// as being edited; fields with no value are hidden unless active.
func RenderPanel(title string, fields []Field, activeIdx int) string {
	var b strings.Builder

	border := borderStyle()

	b.WriteString(border.Render(borderTop))
	b.WriteString(" ")
	b.WriteString(title)
	b.WriteString("\n")

	b.WriteString(border.Render(borderSide))
	b.WriteString("\n")

	for i, f := range fields {
		active := i == activeIdx
		if f.Value != "" || active {
			b.WriteString(renderField(f, active))
			b.WriteString("\n")
		}
	}

	if activeIdx >= 0 && activeIdx < len(fields) {
		b.WriteString(border.Render(borderSide))
		b.WriteString("\n")
	}

	b.WriteString(border.Render(borderBottom))
	b.WriteString("\n")

	return b.String()
}

// SelectionFields describes sel as panel fields, in category, colour, search
// order. The search field is empty when no term is set.
func SelectionFields(sel filter.Selection) []Field {
	category, color := sel.Category, sel.Color
	if category == "" {
		category = filter.CategoryAll
	}
	if color == "" {
		color = filter.ColorAny
	}
	return []Field{
		{Label: "Category", Value: string(category)},
		{Label: "Color", Value: string(color)},
		{Label: "Search", Value: strings.TrimSpace(sel.Search), Optional: true},
	}
}

// RenderSelection summarises sel together with the number of matches.
func RenderSelection(sel filter.Selection, matches int) string {
	fields := append(SelectionFields(sel), Field{Label: "Matches", Value: strconv.Itoa(matches)})
	return RenderPanel("Filters", fields, -1)
}

func renderField(f Field, active bool) string {
	var b strings.Builder

	if active {
		b.WriteString(activeSymbol)
		b.WriteString(" ")
		b.WriteString(f.Label)
		if f.Optional {
			b.WriteString(" (optional)")
		}
	} else {
		b.WriteString(completeSymbol)
		b.WriteString(" ")
		b.WriteString(f.Label)
		b.WriteString(separator)
		b.WriteString(f.Value)
	}

	return b.String()
}
