package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/packing/internal/packlist"
)

// Run starts the full-screen shell and blocks until the user quits.
func Run(ctx context.Context, st *packlist.Store, opt Options) error {
	p := tea.NewProgram(New(st, opt), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
