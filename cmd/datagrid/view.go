package main

import (
	"context"
	"flag"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/grindlemire/datagrid"
)

const scrollStep = 4

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))

// runView implements the view subcommand.
func runView(args []string) error {
	fs := flag.NewFlagSet("view", flag.ExitOnError)
	var f gridFlags
	f.register(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	g, err := f.build(context.Background())
	if err != nil {
		return err
	}
	defer g.Detach()

	m := newViewModel(g)
	if f.width > 0 && f.height > 0 {
		m.width, m.height = f.width, f.height
	}
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

// viewModel is the bubbletea model driving an interactive grid.
type viewModel struct {
	grid          *datagrid.DataGrid
	width, height int
	status        string
}

func newViewModel(g *datagrid.DataGrid) *viewModel {
	m := &viewModel{grid: g, width: 80, height: 24}
	if len(g.Rows()) > 0 {
		g.Select(0, 0)
	}
	return m
}

func (m *viewModel) Init() tea.Cmd { return nil }

func (m *viewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case tea.KeyMsg:
		m.status = ""
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "left", "h":
			m.grid.ScrollBy(-scrollStep, 0)
		case "right", "l":
			m.grid.ScrollBy(scrollStep, 0)
		case "up", "k":
			m.move(-1, 0)
		case "down", "j":
			m.move(1, 0)
		case "tab":
			m.move(0, 1)
		case "shift+tab":
			m.move(0, -1)
		case "<", ">":
			delta := 1
			if msg.String() == "<" {
				delta = -1
			}
			if _, leaf, ok := m.grid.Current(); !ok || !m.grid.Resize(leaf, delta) {
				m.status = "cannot resize"
			}
		case "s":
			if _, leaf, ok := m.grid.Current(); !ok || !m.grid.SortBy(leaf) {
				m.status = "cannot sort"
			}
		}
	}
	return m, nil
}

// move shifts the current cell by (dr, dc), clamped to the grid.
func (m *viewModel) move(dr, dc int) {
	rows := len(m.grid.Rows())
	leaves := m.grid.Header().ColumnHeaders.Get().Len()
	if rows == 0 || leaves == 0 {
		return
	}
	r, c, _ := m.grid.Current()
	r = max(0, min(rows-1, r+dr))
	c = max(0, min(leaves-1, c+dc))
	m.grid.Select(r, c)
}

func (m *viewModel) View() string {
	lines := m.grid.Render(m.width, max(1, m.height-1))
	return strings.Join(append(lines, statusStyle.Render(m.statusLine())), "\n")
}

func (m *viewModel) statusLine() string {
	if m.status != "" {
		return m.status
	}
	r, c, ok := m.grid.Current()
	if !ok {
		return "no selection  q quit"
	}
	header := m.grid.Header().ColumnHeaders.Get().At(c)
	return fmt.Sprintf("row %d/%d  %s  ←/→ scroll  ↑/↓ select  tab column  </> resize  s sort  q quit",
		r+1, len(m.grid.Rows()), header.Column)
}
