package render

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
)

const favoriteMark = " *"

type LipglossRenderer struct {
	width int
	r     *lipgloss.Renderer

	nameStyle     lipgloss.Style
	idStyle       lipgloss.Style
	designerStyle lipgloss.Style
	tagStyle      lipgloss.Style
	favStyle      lipgloss.Style
	labelStyle    lipgloss.Style
	emptyStyle    lipgloss.Style
	hintStyle     lipgloss.Style
}

func NewLipglossRenderer(w io.Writer, width int) *LipglossRenderer {
	r := lipgloss.NewRenderer(w)
	return &LipglossRenderer{
		width:         width,
		r:             r,
		nameStyle:     r.NewStyle().Bold(true),
		idStyle:       r.NewStyle().Faint(true),
		designerStyle: r.NewStyle().Faint(true),
		tagStyle:      r.NewStyle().Foreground(lipgloss.Color("3")),
		favStyle:      r.NewStyle().Foreground(lipgloss.Color("1")),
		labelStyle:    r.NewStyle().Bold(true),
		emptyStyle:    r.NewStyle().Bold(true),
		hintStyle:     r.NewStyle().Faint(true),
	}
}

func NewLipglossRendererAuto(w io.Writer) *LipglossRenderer {
	width := 80
	if f, ok := w.(*os.File); ok {
		if tw, _, err := term.GetSize(f.Fd()); err == nil && tw > 0 {
			width = tw
		}
	}
	return NewLipglossRenderer(w, width)
}

func (r *LipglossRenderer) RenderItemList(view ItemListView) string {
	if view.IsEmpty() {
		return r.renderEmpty(view)
	}

	var sb strings.Builder
	for i, item := range view.Items {
		last := i == len(view.Items)-1
		sb.WriteString(r.renderItem(item, last))
	}
	sb.WriteString("\n")
	return sb.String()
}

func (r *LipglossRenderer) renderEmpty(view ItemListView) string {
	title := view.EmptyTitle
	if title == "" {
		title = "No pieces found."
	}
	out := r.emptyStyle.Render(title) + "\n"
	if view.EmptyHint != "" {
		out += r.hintStyle.Render(view.EmptyHint) + "\n"
	}
	return out
}

func (r *LipglossRenderer) renderItem(item ItemListItem, last bool) string {
	name := r.nameStyle.Render(item.Name)
	if item.Favorite {
		name += r.favStyle.Render(favoriteMark)
	}
	id := r.idStyle.Render("#" + strconv.Itoa(item.ID))

	padding := max(1, r.width-lipgloss.Width(name)-lipgloss.Width(id))
	headerLine := name + strings.Repeat(" ", padding) + id

	lines := []string{
		headerLine,
		r.designerStyle.Render("  " + byline(item.Designer, item.Year)),
	}
	if len(item.Categories) > 0 {
		lines = append(lines, r.tagStyle.Render("  "+strings.Join(item.Categories, ", ")))
	}
	if !last {
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}

func (r *LipglossRenderer) RenderItemDetail(view ItemDetailView) string {
	var sb strings.Builder

	title := r.nameStyle.Render(view.Name)
	if view.Favorite {
		title += r.favStyle.Render(favoriteMark)
	}
	sb.WriteString(title + "\n")
	sb.WriteString(r.designerStyle.Render(byline(view.Designer, view.Year)) + "\n")
	if len(view.Categories) > 0 {
		sb.WriteString(r.tagStyle.Render(strings.Join(view.Categories, ", ")) + "\n")
	}

	sb.WriteString("\n")
	sb.WriteString(r.notesLine("Top", view.Top))
	sb.WriteString(r.notesLine("Heart", view.Heart))
	sb.WriteString(r.notesLine("Base", view.Base))

	if view.Story != "" {
		sb.WriteString("\n")
		sb.WriteString(wrap(view.Story, r.width) + "\n")
	}
	if view.ShareURL != "" {
		sb.WriteString("\n")
		sb.WriteString(r.labelStyle.Render("Share:") + " " + view.ShareURL + "\n")
	}
	return sb.String()
}

func (r *LipglossRenderer) notesLine(label string, notes []string) string {
	value := strings.Join(notes, ", ")
	if value == "" {
		value = "-"
	}
	return r.labelStyle.Render(fmt.Sprintf("%-6s", label+":")) + " " + value + "\n"
}

func byline(designer string, year int) string {
	if year <= 0 {
		return designer
	}
	return designer + ", " + strconv.Itoa(year)
}

// wrap breaks text on spaces so no line exceeds width columns. Words longer
// than width get a line of their own.
func wrap(text string, width int) string {
	if width <= 0 {
		return text
	}

	var lines []string
	var line strings.Builder
	for _, word := range strings.Fields(text) {
		if line.Len() > 0 && lipgloss.Width(line.String())+1+lipgloss.Width(word) > width {
			lines = append(lines, line.String())
			line.Reset()
		}
		if line.Len() > 0 {
			line.WriteString(" ")
		}
		line.WriteString(word)
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}
	return strings.Join(lines, "\n")
}
