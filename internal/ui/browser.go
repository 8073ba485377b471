package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"snag/internal/note"
)

var (
	browserPaneStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("8")).
				Padding(0, 1)
	browserHelpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

type entryItem struct {
	entry note.Entry
}

func (i entryItem) Title() string { return i.entry.Title }

func (i entryItem) Description() string {
	switch n := len(i.entry.Illustrations); n {
	case 0:
		return "no illustrations"
	case 1:
		return "1 illustration"
	default:
		return fmt.Sprintf("%d illustrations", n)
	}
}

func (i entryItem) FilterValue() string { return i.entry.Title }

type browserModel struct {
	list     list.Model
	view     viewport.Model
	catalog  *note.Catalog
	width    int
	height   int
	focusDoc bool
}

// NewBrowserModel returns a Bubble Tea model that pages through
// catalog entries: a title list on the left, the selected note on the
// right.
func NewBrowserModel(title string, catalog *note.Catalog) tea.Model {
	items := make([]list.Item, 0, catalog.Len())
	for e := range catalog.All() {
		items = append(items, entryItem{entry: e})
	}

	l := list.New(items, list.NewDefaultDelegate(), 30, 20)
	l.Title = title
	l.SetShowHelp(false)

	vp := viewport.New(50, 20)

	m := &browserModel{
		list:    l,
		view:    vp,
		catalog: catalog,
		width:   80,
		height:  24,
	}
	m.syncViewport()
	return m
}

func (m *browserModel) Init() tea.Cmd {
	return nil
}

func (m *browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "tab":
			m.focusDoc = !m.focusDoc
			return m, nil
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil
	}

	var cmd tea.Cmd
	if m.focusDoc {
		m.view, cmd = m.view.Update(msg)
		return m, cmd
	}
	before := m.list.Index()
	m.list, cmd = m.list.Update(msg)
	if m.list.Index() != before {
		m.syncViewport()
	}
	return m, cmd
}

func (m *browserModel) View() string {
	left := browserPaneStyle.Render(m.list.View())
	right := browserPaneStyle.Render(m.view.View())
	help := browserHelpStyle.Render("↑/↓ select · tab focus note · q quit")
	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, left, right),
		help,
	)
}

func (m *browserModel) resize() {
	listWidth := m.width / 3
	if listWidth < 24 {
		listWidth = 24
	}
	docWidth := m.width - listWidth - 6
	if docWidth < 20 {
		docWidth = 20
	}
	height := m.height - 4
	if height < 5 {
		height = 5
	}
	m.list.SetSize(listWidth, height)
	m.view.Width = docWidth
	m.view.Height = height
	m.syncViewport()
}

func (m *browserModel) syncViewport() {
	item, ok := m.list.SelectedItem().(entryItem)
	if !ok {
		m.view.SetContent("")
		return
	}
	var b strings.Builder
	if err := (ANSI{Width: m.view.Width}).renderEntry(&b, item.entry); err == nil {
		m.view.SetContent(b.String())
	}
	m.view.GotoTop()
}
