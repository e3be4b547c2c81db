package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/five82/postboard/internal/posts"
)

// header and footer
const detailChromeHeight = 2

// detailScreen shows one post in a scrollable viewport. The viewport owns
// the scroll offset; lines are drawn from lines directly so tabs and runs
// of spaces reach the terminal untouched.
type detailScreen struct {
	post     posts.Post
	lines    []string
	viewport viewport.Model
}

func newDetailScreen() detailScreen {
	return detailScreen{viewport: viewport.New(defaultWidth, defaultHeight-detailChromeHeight)}
}

// show replaces the displayed post and scrolls back to the top.
func (d *detailScreen) show(p posts.Post, styles Styles) {
	d.post = p
	d.render(styles)
	d.viewport.GotoTop()
}

func (d *detailScreen) resize(width, height int, styles Styles) {
	d.viewport.Width = maxInt(width, 1)
	d.viewport.Height = maxInt(height, 1)
	d.render(styles)
}

func (d *detailScreen) render(styles Styles) {
	d.lines = detailLines(d.post, d.viewport.Width, styles)
	d.viewport.SetContent(strings.Join(d.lines, "\n"))
}

// view returns the lines inside the viewport's current window.
func (d detailScreen) view() string {
	start := minInt(maxInt(d.viewport.YOffset, 0), len(d.lines))
	end := minInt(start+d.viewport.Height, len(d.lines))
	return strings.Join(d.lines[start:end], "\n")
}

// detailLines lays out the title above the body. Text is hard wrapped at
// width without touching its whitespace; body line breaks are kept.
func detailLines(p posts.Post, width int, styles Styles) []string {
	// one cell of left and right margin
	wrap := maxInt(width-2, 1)
	title := styles.CardTitle.TabWidth(lipgloss.NoTabConversion)
	body := styles.Text.TabWidth(lipgloss.NoTabConversion)

	var lines []string
	add := func(text string, style lipgloss.Style) {
		for _, para := range strings.Split(text, "\n") {
			for _, line := range strings.Split(ansi.Hardwrap(para, wrap, true), "\n") {
				lines = append(lines, " "+style.Render(line))
			}
		}
	}
	add(p.Title, title)
	lines = append(lines, "")
	add(p.Body, body)
	return lines
}

// renderDetail renders the "Post Detail" screen.
func (m Model) renderDetail() string {
	styles := m.theme.Styles()

	var b strings.Builder
	b.WriteString(m.renderBar(styles.Header, "Post Detail", ""))
	b.WriteString("\n")
	pane := lipgloss.NewStyle().Height(m.detail.viewport.Height).TabWidth(lipgloss.NoTabConversion)
	b.WriteString(pane.Render(m.detail.view()))
	b.WriteString("\n")

	scroll := fmt.Sprintf("%3.0f%%", m.detail.viewport.ScrollPercent()*100)
	h := m.help
	h.Width = maxInt(h.Width-len(scroll)-1, 1)
	b.WriteString(m.renderBar(styles.Footer, h.View(m.keys), scroll))
	return b.String()
}
