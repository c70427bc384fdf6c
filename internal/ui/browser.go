package ui

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"
	"vitrine/internal/app"
	"vitrine/internal/catalog"
	"vitrine/internal/deeplink"
	"vitrine/internal/filter"
	"vitrine/internal/imagesrc"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// FragmentMsg tells the browser the location fragment changed outside of it.
type FragmentMsg string

type openLinkMsg struct {
	fragment string
}

type clearStatusMsg struct {
	seq int
}

const statusTTL = 2 * time.Second

type browserKeys struct {
	Up         key.Binding
	Down       key.Binding
	Open       key.Binding
	Close      key.Binding
	Search     key.Binding
	NextCat    key.Binding
	PrevCat    key.Binding
	NextColor  key.Binding
	PrevColor  key.Binding
	Favorite   key.Binding
	Share      key.Binding
	Reset      key.Binding
	Quit       key.Binding
	ForceQuit  key.Binding
	ExitSearch key.Binding
}

func defaultBrowserKeys() browserKeys {
	return browserKeys{
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Open:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "details")),
		Close:      key.NewBinding(key.WithKeys("esc", "backspace"), key.WithHelp("esc", "close")),
		Search:     key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		NextCat:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "category")),
		PrevCat:    key.NewBinding(key.WithKeys("shift+tab")),
		NextColor:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c/C", "color")),
		PrevColor:  key.NewBinding(key.WithKeys("C")),
		Favorite:   key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "favorite")),
		Share:      key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "share")),
		Reset:      key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		Quit:       key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit:  key.NewBinding(key.WithKeys("ctrl+c")),
		ExitSearch: key.NewBinding(key.WithKeys("esc", "enter")),
	}
}

func (k browserKeys) help() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Open, k.Search, k.NextCat, k.NextColor, k.Favorite, k.Share, k.Reset, k.Quit}
}

type BrowserOptions struct {
	ShareBaseURL string
	// Copy receives share links; nil disables copying.
	Copy func(string) error
}

// Browser is the interactive presenter. All state lives in the controller;
// the browser only tracks the cursor, the search box and a status line.
type Browser struct {
	ctrl      *app.Controller
	keys      browserKeys
	search    textinput.Model
	shareBase string
	copy      func(string) error

	visible   filter.Result
	cursor    int
	width     int
	height    int
	status    string
	statusSeq int

	titleStyle  lipgloss.Style
	cursorStyle lipgloss.Style
	faintStyle  lipgloss.Style
	favStyle    lipgloss.Style
	labelStyle  lipgloss.Style
}

func NewBrowser(ctrl *app.Controller, opts BrowserOptions) *Browser {
	ti := textinput.New()
	ti.Placeholder = "Search by name, designer, notes..."
	ti.Prompt = "/ "
	ti.SetValue(ctrl.Selection().Search)

	b := &Browser{
		ctrl:        ctrl,
		keys:        defaultBrowserKeys(),
		search:      ti,
		shareBase:   opts.ShareBaseURL,
		copy:        opts.Copy,
		width:       80,
		titleStyle:  lipgloss.NewStyle().Bold(true),
		cursorStyle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("5")),
		faintStyle:  lipgloss.NewStyle().Faint(true),
		favStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		labelStyle:  lipgloss.NewStyle().Bold(true),
	}
	b.refresh()
	return b
}

// Init schedules the start-up deep link, if any, after the first frame.
func (b *Browser) Init() tea.Cmd {
	fragment := b.ctrl.Location().Fragment()
	if fragment == "" {
		return nil
	}
	return tea.Tick(deeplink.OpenDelay, func(time.Time) tea.Msg {
		return openLinkMsg{fragment: fragment}
	})
}

func (b *Browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.width, b.height = msg.Width, msg.Height
		return b, nil

	case openLinkMsg:
		b.ctrl.HandleFragment(msg.fragment)
		return b, nil

	case FragmentMsg:
		b.ctrl.HandleFragment(string(msg))
		return b, nil

	case clearStatusMsg:
		if msg.seq == b.statusSeq {
			b.status = ""
		}
		return b, nil

	case tea.KeyMsg:
		if key.Matches(msg, b.keys.ForceQuit) {
			return b, tea.Quit
		}
		if b.search.Focused() {
			return b.updateSearch(msg)
		}
		if _, open := b.ctrl.Selected(); open {
			return b.updateDetail(msg)
		}
		return b.updateList(msg)
	}
	return b, nil
}

func (b *Browser) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, b.keys.ExitSearch) {
		b.search.Blur()
		return b, nil
	}

	var cmd tea.Cmd
	b.search, cmd = b.search.Update(msg)
	if b.search.Value() != b.ctrl.Selection().Search {
		b.ctrl.SetSearch(b.search.Value())
		b.refresh()
	}
	return b, cmd
}

func (b *Browser) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	it, _ := b.ctrl.Selected()
	switch {
	case key.Matches(msg, b.keys.Close):
		b.ctrl.CloseDetail()
	case key.Matches(msg, b.keys.Favorite):
		b.ctrl.ToggleFavorite(it.ID)
		b.refresh()
	case key.Matches(msg, b.keys.Share):
		return b, b.share(it)
	case key.Matches(msg, b.keys.Quit):
		return b, tea.Quit
	}
	return b, nil
}

func (b *Browser) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, b.keys.Quit):
		return b, tea.Quit
	case key.Matches(msg, b.keys.Up):
		if b.cursor > 0 {
			b.cursor--
		}
	case key.Matches(msg, b.keys.Down):
		if b.cursor < len(b.visible.Items)-1 {
			b.cursor++
		}
	case key.Matches(msg, b.keys.Search):
		return b, b.search.Focus()
	case key.Matches(msg, b.keys.NextCat):
		b.ctrl.SetCategory(cycle(filter.Categories(), b.ctrl.Selection().Category, 1))
		b.refresh()
	case key.Matches(msg, b.keys.PrevCat):
		b.ctrl.SetCategory(cycle(filter.Categories(), b.ctrl.Selection().Category, -1))
		b.refresh()
	case key.Matches(msg, b.keys.NextColor):
		b.ctrl.SetColor(cycle(filter.Colors(), b.ctrl.Selection().Color, 1))
		b.refresh()
	case key.Matches(msg, b.keys.PrevColor):
		b.ctrl.SetColor(cycle(filter.Colors(), b.ctrl.Selection().Color, -1))
		b.refresh()
	case key.Matches(msg, b.keys.Reset):
		b.ctrl.ResetFilters()
		b.search.SetValue("")
		b.refresh()
	case key.Matches(msg, b.keys.Open):
		if it, ok := b.current(); ok {
			b.ctrl.Select(it.ID)
		}
	case key.Matches(msg, b.keys.Favorite):
		if it, ok := b.current(); ok {
			b.ctrl.ToggleFavorite(it.ID)
			b.refresh()
		}
	case key.Matches(msg, b.keys.Share):
		if it, ok := b.current(); ok {
			return b, b.share(it)
		}
	}
	return b, nil
}

func (b *Browser) share(it catalog.Item) tea.Cmd {
	link := deeplink.ShareURL(b.shareBase, it.ID)
	status := "Link: " + link
	if b.copy != nil {
		if err := b.copy(link); err != nil {
			status = "Copy failed, link: " + link
		} else {
			status = "Copied: " + link
		}
	}
	return b.setStatus(status)
}

func (b *Browser) setStatus(s string) tea.Cmd {
	b.status = s
	b.statusSeq++
	seq := b.statusSeq
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}

func (b *Browser) refresh() {
	b.visible = b.ctrl.Visible()
	if b.cursor >= len(b.visible.Items) {
		b.cursor = max(0, len(b.visible.Items)-1)
	}
}

func (b *Browser) current() (catalog.Item, bool) {
	if b.cursor < 0 || b.cursor >= len(b.visible.Items) {
		return catalog.Item{}, false
	}
	return b.visible.Items[b.cursor], true
}

// Cursor returns the index of the highlighted row.
func (b *Browser) Cursor() int {
	return b.cursor
}

// Status returns the transient status line.
func (b *Browser) Status() string {
	return b.status
}

func (b *Browser) View() string {
	if it, ok := b.ctrl.Selected(); ok {
		return b.viewDetail(it)
	}
	return b.viewList()
}

func (b *Browser) viewList() string {
	var sb strings.Builder
	sel := b.ctrl.Selection()

	sb.WriteString(b.titleStyle.Render("vitrine"))
	sb.WriteString(b.faintStyle.Render(fmt.Sprintf("  %s · %s · %d shown",
		orDefault(string(sel.Category), string(filter.CategoryAll)),
		orDefault(string(sel.Color), string(filter.ColorAny)),
		len(b.visible.Items))))
	sb.WriteString("\n")
	sb.WriteString(b.search.View())
	sb.WriteString("\n\n")

	if b.visible.Empty() {
		empty := b.ctrl.EmptyMessage()
		sb.WriteString(b.titleStyle.Render(empty.Title) + "\n")
		sb.WriteString(b.faintStyle.Render(empty.Hint) + "\n")
	}

	for i, it := range b.visible.Items {
		prefix := "  "
		name := it.Name
		if i == b.cursor {
			prefix = "> "
			name = b.cursorStyle.Render(name)
		}
		line := prefix + name + b.faintStyle.Render(" · "+it.Designer)
		if b.ctrl.IsFavorite(it.ID) {
			line += b.favStyle.Render(" *")
		}
		sb.WriteString(line + "\n")
	}

	sb.WriteString(b.footer())
	return sb.String()
}

func (b *Browser) viewDetail(it catalog.Item) string {
	var sb strings.Builder

	title := b.titleStyle.Render(it.Name)
	if b.ctrl.IsFavorite(it.ID) {
		title += b.favStyle.Render(" *")
	}
	sb.WriteString(title + "\n")
	sb.WriteString(b.faintStyle.Render(it.Designer+", "+strconv.Itoa(it.Year)) + "\n")
	if len(it.Categories) > 0 {
		sb.WriteString(b.faintStyle.Render(strings.Join(it.Categories, ", ")) + "\n")
	}
	sb.WriteString("\n")
	sb.WriteString(b.labelStyle.Render("Top:   ") + " " + strings.Join(it.Notes.Top, ", ") + "\n")
	sb.WriteString(b.labelStyle.Render("Heart: ") + " " + strings.Join(it.Notes.Heart, ", ") + "\n")
	sb.WriteString(b.labelStyle.Render("Base:  ") + " " + strings.Join(it.Notes.Base, ", ") + "\n")
	sb.WriteString("\n")
	sb.WriteString(lipgloss.NewStyle().Width(max(20, b.width-2)).Render(it.Story) + "\n\n")
	sb.WriteString(b.faintStyle.Render("Image: "+imagesrc.Sources(it.ImageURL).Default) + "\n")
	sb.WriteString(b.footer())
	return sb.String()
}

func (b *Browser) footer() string {
	var sb strings.Builder
	sb.WriteString("\n")
	if b.status != "" {
		sb.WriteString(b.status + "\n")
	}
	var parts []string
	for _, k := range b.keys.help() {
		h := k.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	sb.WriteString(b.faintStyle.Render(strings.Join(parts, " · ")))
	return sb.String()
}

func cycle[T comparable](values []T, current T, step int) T {
	idx := slices.Index(values, current)
	if idx < 0 {
		return values[0]
	}
	n := len(values)
	return values[((idx+step)%n+n)%n]
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
