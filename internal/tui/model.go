// Package tui implements the interactive plan review screen.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hjkim0226-droid/ae-folder-organizer-sub000/internal/cli"
	"github.com/hjkim0226-droid/ae-folder-organizer-sub000/internal/model"
)

const (
	headerHeight = 3
	footerHeight = 2
)

// Model holds the review screen state: the computed plan, scroll position,
// and whether the user accepted it.
type Model struct {
	plan      *model.Plan
	keymap    KeyMap
	viewport  viewport.Model
	width     int
	height    int
	ready     bool
	showSkips bool
	showHelp  bool
	accepted  bool
	quitting  bool
}

func newModel(plan *model.Plan) Model {
	return Model{
		plan:      plan,
		keymap:    DefaultKeyMap(),
		showSkips: true,
	}
}

// Accepted reports whether the user accepted the plan.
func (m Model) Accepted() bool {
	return m.accepted
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keymap.ForceQuit), key.Matches(msg, m.keymap.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keymap.Accept):
			m.accepted = true
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keymap.ToggleSkips):
			m.showSkips = !m.showSkips
			m.viewport.SetContent(m.renderPlacements())
			return m, nil

		case key.Matches(msg, m.keymap.Help):
			m.showHelp = !m.showHelp
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-headerHeight-footerHeight)
			m.viewport.YPosition = headerHeight
			m.viewport.SetContent(m.renderPlacements())
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - headerHeight - footerHeight
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the UI.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Preparing plan review..."
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderHeader(),
		m.viewport.View(),
		m.renderFooter(),
	)
}

func (m Model) renderHeader() string {
	title := cli.FormatTitle("Placement Plan")
	line := fmt.Sprintf("%s  %s",
		cli.BoldStyle.Render(m.plan.Project),
		cli.SubtleStyle.Render(fmt.Sprintf("%d items · %d moves · %d skipped",
			len(m.plan.Placements), m.plan.MoveCount(), m.plan.SkipCount())))
	return lipgloss.JoinVertical(lipgloss.Left, title, line)
}

func (m Model) renderFooter() string {
	if m.showHelp {
		var rows []string
		for _, group := range m.keymap.FullHelp() {
			var parts []string
			for _, b := range group {
				parts = append(parts, fmt.Sprintf("%s %s",
					cli.BoldStyle.Render(b.Help().Key),
					cli.SubtleStyle.Render(b.Help().Desc)))
			}
			rows = append(rows, strings.Join(parts, "  "))
		}
		return strings.Join(rows, "\n")
	}

	var parts []string
	for _, b := range m.keymap.ShortHelp() {
		parts = append(parts, fmt.Sprintf("%s %s",
			cli.BoldStyle.Render(b.Help().Key),
			cli.SubtleStyle.Render(b.Help().Desc)))
	}
	return "\n" + strings.Join(parts, "  ")
}

// renderPlacements builds the scrollable placement list.
func (m Model) renderPlacements() string {
	var sb strings.Builder
	for _, pl := range m.plan.Placements {
		if pl.Moves() {
			sb.WriteString(renderMove(pl))
			sb.WriteString("\n")
			continue
		}
		if !m.showSkips {
			continue
		}
		sb.WriteString(renderSkip(pl))
		sb.WriteString("\n")
	}
	if sb.Len() == 0 {
		return cli.SubtleStyle.Render("Nothing to show.")
	}
	return sb.String()
}

func renderMove(pl model.Placement) string {
	line := fmt.Sprintf("%s %s → %s",
		cli.SuccessStyle.Render(cli.SuccessIcon),
		pl.ItemName,
		cli.InfoStyle.Render(strings.Join(pl.Path, "/")))
	if pl.LabelColor > 0 {
		line += cli.SubtleStyle.Render(fmt.Sprintf("  label %d", pl.LabelColor))
	}
	if pl.Status == model.PlacementException {
		line += cli.WarningStyle.Render("  (exception)")
	}
	return line
}

func renderSkip(pl model.Placement) string {
	reason := pl.Reason
	if reason == "" {
		reason = "no matching rule"
	}
	return cli.SubtleStyle.Render(fmt.Sprintf("- %s (%s)", pl.ItemName, reason))
}
