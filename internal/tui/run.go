package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hjkim0226-droid/ae-folder-organizer-sub000/internal/model"
)

// Review shows the plan in a full-screen review UI and reports whether the
// user accepted it. Quitting without accepting returns false with no error.
func Review(ctx context.Context, plan *model.Plan) (bool, error) {
	if plan == nil || len(plan.Placements) == 0 {
		return false, errors.New("nothing to review")
	}

	program := tea.NewProgram(
		newModel(plan),
		tea.WithContext(ctx),
		tea.WithAltScreen(),
	)

	final, err := program.Run()
	if err != nil {
		return false, fmt.Errorf("plan review failed: %w", err)
	}

	m, ok := final.(Model)
	if !ok {
		return false, fmt.Errorf("unexpected review model type %T", final)
	}
	return m.Accepted(), nil
}
