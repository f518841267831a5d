package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// PickerModel lets the user choose a board variant before playing.
type PickerModel struct {
	variants []snake.Variant
	table    table.Model
	help     help.Model
	keys     PickerKeyMap
	width    int
	height   int
	selected string
	quitting bool
}

// NewPickerModel creates a picker listing the built-in variants.
func NewPickerModel(width, height int) PickerModel {
	h := help.New()
	h.ShowAll = false

	m := PickerModel{
		variants: snake.Variants(),
		help:     h,
		keys:     DefaultPickerKeyMap(),
		width:    width,
		height:   height,
	}
	m.table = m.createTable()
	return m
}

// createTable builds the variant table.
func (m *PickerModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Variant", Width: 16},
		{Title: "Board", Width: 8},
		{Title: "ID", Width: 12},
	}

	rows := make([]table.Row, 0, len(m.variants))
	for _, v := range m.variants {
		rows = append(rows, table.Row{v.Title, fmt.Sprintf("%dx%d", v.Rows, v.Cols), v.ID})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(len(rows)+1),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("22")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// Init initializes the model.
func (m PickerModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Select):
			if i := m.table.Cursor(); i >= 0 && i < len(m.variants) {
				m.selected = m.variants[i].ID
			}
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the picker.
func (m PickerModel) View() string {
	if m.quitting {
		return ""
	}

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("10")).
		MarginBottom(1)
	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	var b strings.Builder
	b.WriteString(titleStyle.Render("S N A K E"))
	b.WriteString("\n")
	b.WriteString(tableStyle.Render(m.table.View()))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, b.String())
}

// Selected returns the chosen variant ID, or "" when none was chosen.
func (m PickerModel) Selected() string {
	return m.selected
}

// IsQuitting returns true if the user left without choosing.
func (m PickerModel) IsQuitting() bool {
	return m.quitting
}

// RunPicker shows the variant picker and returns the chosen variant ID.
// An empty ID means the user quit.
func RunPicker(cfg core.RuntimeConfig) (string, error) {
	p := tea.NewProgram(
		NewPickerModel(cfg.ScreenW, cfg.ScreenH),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	m, ok := finalModel.(PickerModel)
	if !ok || m.IsQuitting() {
		return "", nil
	}
	return m.Selected(), nil
}
