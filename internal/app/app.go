package app

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/jiangshengdev/lis-explorer/internal/parse"
	"github.com/jiangshengdev/lis-explorer/internal/trace"
	"github.com/jiangshengdev/lis-explorer/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	Input      string
	Speed      time.Duration
	Width      int
	Height     int
	ShowFooter bool
	Verbose    bool
	Dump       bool
}

// Run bootstraps the program: parse the initial sequence, then either dump
// the full trace to stdout or hand the sequence to the interactive viewer.
func Run(cfg Config) error {
	values, err := parse.Sequence(cfg.Input)
	if err != nil {
		return fmt.Errorf("parse input sequence: %w", err)
	}
	if cfg.Dump {
		return Dump(os.Stdout, trace.Compute(values))
	}
	model := ui.NewModel(values, cfg.Speed, cfg.Width, cfg.Height, cfg.ShowFooter, cfg.Verbose)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
