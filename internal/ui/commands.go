package ui

import (
	"time"

	"github.com/jiangshengdev/lis-explorer/internal/playback"
	tea "github.com/charmbracelet/bubbletea"
)

// playTickMsg is one auto-play timer firing. The epoch ties it to the
// schedule that created it; the playback controller absorbs ticks whose
// schedule has since been cancelled.
type playTickMsg struct {
	epoch int
}

func scheduleTick(epoch int, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return playTickMsg{epoch: epoch}
	})
}

func (m *Model) handlePlayTickMsg(msg tea.Msg) tea.Cmd {
	tick, ok := msg.(playTickMsg)
	if !ok {
		return nil
	}
	switch m.exp.HandleTick(tick.epoch) {
	case playback.TickAdvanced:
		return scheduleTick(tick.epoch, m.exp.Speed())
	case playback.TickExhausted:
		if m.verbose {
			m.setInfo("Reached the final step.")
		}
	}
	return nil
}

// startPlaybackCmd converts an armed schedule into the tea command that
// drives it.
func startPlaybackCmd(playing bool, epoch int, interval time.Duration) tea.Cmd {
	if !playing {
		return nil
	}
	return scheduleTick(epoch, interval)
}
