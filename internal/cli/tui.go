package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	errs "github.com/matzehuels/gridpath/pkg/errors"
	"github.com/matzehuels/gridpath/pkg/grid"
	"github.com/matzehuels/gridpath/pkg/pathsolve"
	"github.com/matzehuels/gridpath/pkg/pipeline"
)

// maxEditDigits bounds a typed weight.
const maxEditDigits = 6

var (
	tuiHelpStyle   = lipgloss.NewStyle().Foreground(colorDim)
	tuiStatusStyle = lipgloss.NewStyle().Foreground(colorGray)
	tuiErrorStyle  = lipgloss.NewStyle().Foreground(colorRed)
	tuiEditStyle   = lipgloss.NewStyle().Foreground(colorYellow).Bold(true)
)

// =============================================================================
// BoardModel - Interactive board
// =============================================================================

// BoardModel is the bubbletea model of the interactive board. It owns the
// board's highlight state and acts as the control panel that receives the
// total cost of every run.
type BoardModel struct {
	ctx    context.Context
	runner *pipeline.Runner

	Board  *grid.Board
	Totals grid.Totals
	Cursor position

	size      int
	maxWeight int
	seed      uint64

	edit   string // digits typed so far; empty when not editing
	status string
	err    error
}

// NewBoardModel creates a board model over g. Runs go through runner so
// they share the CLI's cache. seed and maxWeight drive the "r" key.
func NewBoardModel(ctx context.Context, runner *pipeline.Runner, g grid.Grid, seed uint64, maxWeight int) BoardModel {
	if runner == nil {
		runner = pipeline.NewRunner(nil, nil, nil)
	}
	return BoardModel{
		ctx:       ctx,
		runner:    runner,
		Board:     grid.NewBoard(g),
		Totals:    grid.Totals{},
		size:      g.Size(),
		maxWeight: maxWeight,
		seed:      seed,
	}
}

// ReportTotalCost implements grid.Reporter.
func (m BoardModel) ReportTotalCost(algorithm string, cost int) {
	m.Totals.ReportTotalCost(algorithm, cost)
}

func (m BoardModel) Init() tea.Cmd {
	return nil
}

func (m BoardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.edit != "" {
		switch key.String() {
		case "enter":
			m.commitEdit()
			return m, nil
		case "backspace":
			m.edit = m.edit[:len(m.edit)-1]
			return m, nil
		case "esc":
			m.edit = ""
			m.status = "edit cancelled"
			return m, nil
		}
	}

	switch s := key.String(); s {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc":
		return m, tea.Quit
	case "up", "k":
		m.move(-1, 0)
	case "down", "j":
		m.move(1, 0)
	case "left", "h":
		m.move(0, -1)
	case "right", "l":
		m.move(0, 1)
	case "d":
		m.run(pathsolve.AlgorithmDynamic)
	case "g":
		m.run(pathsolve.AlgorithmGreedy)
	case "r":
		m.seed++
		m.Board.Reset(grid.Random(m.size, m.maxWeight, m.seed))
		m.clearTotals()
		m.err = nil
		m.status = fmt.Sprintf("new grid (seed %d)", m.seed)
	case "c":
		m.Board.Clear()
		m.clearTotals()
		m.err = nil
		m.status = "highlights cleared"
	default:
		if len(s) == 1 && s[0] >= '0' && s[0] <= '9' && len(m.edit) < maxEditDigits {
			m.edit += s
		}
	}
	return m, nil
}

func (m *BoardModel) move(dr, dc int) {
	r, c := m.Cursor.row+dr, m.Cursor.col+dc
	if r >= 0 && r < m.size && c >= 0 && c < m.size {
		m.Cursor = position{row: r, col: c}
	}
	m.edit = ""
}

// commitEdit writes the typed weight into the cursor cell. Changing a weight
// invalidates every computed path, so highlights and totals are cleared.
func (m *BoardModel) commitEdit() {
	w, err := strconv.Atoi(m.edit)
	m.edit = ""
	if err != nil {
		m.err = err
		return
	}
	m.Board.SetValue(m.Cursor.row, m.Cursor.col, w)
	m.Board.Clear()
	m.clearTotals()
	m.err = nil
	m.status = fmt.Sprintf("(%d,%d) = %d", m.Cursor.row, m.Cursor.col, w)
}

// run solves the board with algorithm a and overlays the path on the
// existing highlights.
func (m *BoardModel) run(a pathsolve.Algorithm) {
	res, err := m.runner.Solve(m.ctx, m.Board.Grid(), string(a))
	if err != nil {
		m.err = err
		return
	}
	m.Board.ApplyPath(res.Path, a.Highlight())
	m.ReportTotalCost(string(a), res.MinCost)
	m.err = nil
	m.status = fmt.Sprintf("%s: total cost %d", a, res.MinCost)
}

func (m *BoardModel) clearTotals() {
	for k := range m.Totals {
		delete(m.Totals, k)
	}
}

func (m BoardModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(fmt.Sprintf("gridpath · %d×%d", m.size, m.size)))
	b.WriteString("\n")
	b.WriteString(tuiHelpStyle.Render("←↑↓→ move  0-9 edit  d dynamic  g greedy  r random  c clear  q quit"))
	b.WriteString("\n\n")

	cursor := m.Cursor
	b.WriteString(boardTable(m.Board, &cursor))
	b.WriteString("\n")

	if l := legend(m.Board, m.Totals); l != "" {
		b.WriteString(l)
		b.WriteString("\n")
	}

	switch {
	case m.edit != "":
		b.WriteString(tuiEditStyle.Render(fmt.Sprintf("(%d,%d) ← %s", m.Cursor.row, m.Cursor.col, m.edit)))
		b.WriteString(tuiHelpStyle.Render("  enter set  esc cancel"))
	case m.err != nil:
		b.WriteString(tuiErrorStyle.Render(iconError + " " + errs.UserMessage(m.err)))
	case m.status != "":
		b.WriteString(tuiStatusStyle.Render(m.status))
	}
	b.WriteString("\n")
	return b.String()
}
