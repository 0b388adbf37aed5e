package render

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Page shows already-rendered report text in a scrollable full-screen
// view. The content is static; nothing is re-collected while paging.
func Page(content string) error {
	p := tea.NewProgram(pager{content: content}, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

type pager struct {
	content  string
	viewport viewport.Model
	ready    bool
}

func (p pager) Init() tea.Cmd { return nil }

func (p pager) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return p, tea.Quit
		}
	case tea.WindowSizeMsg:
		footer := lipgloss.Height(p.footer())
		if !p.ready {
			p.viewport = viewport.New(msg.Width, msg.Height-footer)
			p.viewport.SetContent(p.content)
			p.ready = true
		} else {
			p.viewport.Width = msg.Width
			p.viewport.Height = msg.Height - footer
		}
	}

	var cmd tea.Cmd
	p.viewport, cmd = p.viewport.Update(msg)
	return p, cmd
}

func (p pager) View() string {
	if !p.ready {
		return "loading..."
	}
	return p.viewport.View() + "\n" + p.footer()
}

func (p pager) footer() string {
	return subtleStyle.Render("↑/↓ scroll · q quit")
}
