package tui

import (
	"errors"
	"io"

	"github.com/charmbracelet/bubbletea"
	"github.com/vito/progrock"
)

// TapeSource yields progrock status updates until it returns an error.
// io.EOF marks a recording that finished normally.
type TapeSource interface {
	Read() (*progrock.StatusUpdate, error)
}

// MsgTapeUpdate carries one batch of vertex changes.
type MsgTapeUpdate struct {
	Update *progrock.StatusUpdate
}

// MsgTapeEnded ends the view. Err is nil when the recording finished normally.
type MsgTapeEnded struct {
	Err error
}

// WaitForTape reads the next update from tape.
func WaitForTape(tape TapeSource) tea.Cmd {
	return func() tea.Msg {
		update, err := tape.Read()
		switch {
		case errors.Is(err, io.EOF):
			return MsgTapeEnded{}
		case err != nil:
			return MsgTapeEnded{Err: err}
		}
		return MsgTapeUpdate{Update: update}
	}
}
