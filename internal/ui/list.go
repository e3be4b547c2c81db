package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/postboard/internal/posts"
	"github.com/five82/postboard/internal/state"
)

const (
	// header, search input and its underline, footer
	listChromeHeight = 4
	cardBodyLines    = 2
	// border top and bottom, title line, body preview
	cardHeight = 2 + 1 + cardBodyLines
	pinMarker  = "📌"
)

// listScreen is the searchable list of post cards. Its controller lives as
// long as the screen stays mounted, detail screens included.
type listScreen struct {
	controller *state.Controller
	input      textinput.Model
	spinner    spinner.Model
	searching  bool

	width   int
	visible int // cards that fit on screen
	cursor  int
	offset  int // index of the first visible card
}

func newListScreen(c *state.Controller) listScreen {
	input := textinput.New()
	input.Prompt = "/ "
	input.Placeholder = "Search by title"
	input.CharLimit = 256

	return listScreen{
		controller: c,
		input:      input,
		spinner:    spinner.New(spinner.WithSpinner(spinner.Dot)),
		visible:    1,
	}
}

func (l *listScreen) applyTheme(styles Styles) {
	l.input.PromptStyle = styles.AccentText
	l.input.TextStyle = styles.Text
	l.input.PlaceholderStyle = styles.FaintText
	l.spinner.Style = styles.AccentText
}

func (l *listScreen) resize(width, height int) {
	l.width = width
	l.input.Width = maxInt(width-lipgloss.Width(l.input.Prompt)-1, 1)
	l.visible = maxInt(height/cardHeight, 1)
	l.scrollToCursor()
}

func (l *listScreen) focusSearch() tea.Cmd {
	l.searching = true
	return l.input.Focus()
}

func (l *listScreen) blurSearch() {
	l.searching = false
	l.input.Blur()
}

// updateInput feeds msg to the search field and pushes any change in its
// text to the controller.
func (l *listScreen) updateInput(msg tea.Msg) tea.Cmd {
	before := l.input.Value()
	var cmd tea.Cmd
	l.input, cmd = l.input.Update(msg)
	if query := l.input.Value(); query != before {
		l.controller.SetQuery(query)
		l.cursor, l.offset = 0, 0
	}
	return cmd
}

func (l *listScreen) move(delta int) {
	l.moveTo(l.cursor + delta)
}

func (l *listScreen) moveTo(index int) {
	count := len(l.controller.State().Filtered())
	if count == 0 {
		l.cursor, l.offset = 0, 0
		return
	}
	l.cursor = minInt(maxInt(index, 0), count-1)
	l.scrollToCursor()
}

func (l *listScreen) scrollToCursor() {
	if l.cursor < l.offset {
		l.offset = l.cursor
	}
	if l.cursor >= l.offset+l.visible {
		l.offset = l.cursor - l.visible + 1
	}
	if l.offset < 0 {
		l.offset = 0
	}
}

// selected returns the highlighted post of the current filtered view.
func (l listScreen) selected() (posts.Post, bool) {
	items := l.controller.State().Filtered()
	if l.cursor < 0 || l.cursor >= len(items) {
		return posts.Post{}, false
	}
	return items[l.cursor], true
}

// renderList renders the header, search field, cards and footer.
func (m Model) renderList() string {
	styles := m.theme.Styles()
	snap := m.list.controller.State()
	items := snap.Filtered()

	var b strings.Builder

	count := ""
	if snap.Phase == state.PhaseLoaded {
		count = fmt.Sprintf("%d of %d", len(items), len(snap.Posts))
	}
	b.WriteString(m.renderBar(styles.Header, "Posts", count))
	b.WriteString("\n")

	search := styles.Search
	if m.list.searching {
		search = styles.SearchFocused
	}
	b.WriteString(search.Width(m.width).Render(m.list.input.View()))
	b.WriteString("\n")

	body := m.renderListBody(snap, items, styles)
	b.WriteString(lipgloss.NewStyle().Height(maxInt(m.height-listChromeHeight, 1)).Render(body))
	b.WriteString("\n")

	b.WriteString(styles.Footer.Width(m.width).Render(m.help.View(m.keys)))
	return b.String()
}

func (m Model) renderListBody(snap state.ListState, items []posts.Post, styles Styles) string {
	switch snap.Phase {
	case state.PhaseLoading:
		return m.list.spinner.View() + " " + styles.MutedText.Render("Loading posts…")
	case state.PhaseFailed:
		return styles.DangerText.Render(snap.ErrorText())
	}

	if len(items) == 0 {
		if snap.Query != "" {
			return styles.MutedText.Render(fmt.Sprintf("No posts match %q", snap.Query))
		}
		return styles.MutedText.Render("No posts")
	}

	cursor := minInt(m.list.cursor, len(items)-1)
	offset := minInt(m.list.offset, cursor)
	end := minInt(offset+m.list.visible, len(items))

	cards := make([]string, 0, end-offset)
	for i := offset; i < end; i++ {
		cards = append(cards, m.renderCard(items[i], i == cursor, styles))
	}
	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}

// renderCard draws one post: pin marker and title on the first line, then
// a short preview of the body.
func (m Model) renderCard(p posts.Post, selected bool, styles Styles) string {
	style := styles.Card
	if selected {
		style = styles.CardSelected
	}
	// border and padding take two cells on each side
	inner := maxInt(m.width-4, 4)

	title := styles.Pin.Render(pinMarker) + " " +
		styles.CardTitle.Render(truncate(p.Title, inner-lipgloss.Width(pinMarker)-1))

	lines := wrapLines(collapseSpace(p.Body), inner, cardBodyLines)
	for len(lines) < cardBodyLines {
		lines = append(lines, "")
	}
	for i, line := range lines {
		lines[i] = styles.CardBody.Render(line)
	}

	content := title + "\n" + strings.Join(lines, "\n")
	return style.Width(inner + 2).Render(content)
}

// renderBar renders a full-width bar with a left title and right-aligned
// detail text.
func (m Model) renderBar(style lipgloss.Style, left, right string) string {
	// horizontal padding on the bar style
	space := m.width - 2 - lipgloss.Width(left) - lipgloss.Width(right)
	if space < 1 {
		space = 1
	}
	return style.Width(m.width).Render(left + strings.Repeat(" ", space) + right)
}
