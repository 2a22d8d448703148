package app

import (
	"context"
	"errors"
	"os"

	"github.com/charmbracelet/bubbletea"
	"go.trai.ch/dxpatch/internal/adapters/telemetry/progrock" //nolint:depguard // progress view is wired in app layer
	"go.trai.ch/dxpatch/internal/core/ports"
	"go.trai.ch/dxpatch/internal/tui"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

const streamBuffer = 256

// runRecorded runs fn with the app's telemetry, or, when progress is set, with a recorder
// streaming to a live terminal view titled title.
func (a *App) runRecorded(
	ctx context.Context,
	title string,
	progress bool,
	fn func(context.Context, ports.Telemetry) error,
) error {
	if !progress {
		return fn(ctx, a.telemetry)
	}

	stream := progrock.NewStream(streamBuffer)
	recorder := progrock.NewRecorder(stream)

	opts := append([]tea.ProgramOption{tea.WithContext(ctx), tea.WithOutput(os.Stderr)}, a.teaOptions...)
	program := tea.NewProgram(tui.NewModel(stream, title), opts...)

	var g errgroup.Group

	// Renderer routine
	g.Go(func() error {
		_, err := program.Run()
		// Once the view is gone nobody reads the stream; closing it drops further updates.
		_ = stream.Close()
		if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
			return zerr.Wrap(err, "progress view failed")
		}
		return nil
	})

	// Worker routine
	var runErr error
	g.Go(func() error {
		defer func() { _ = recorder.Close() }()
		runErr = fn(ctx, recorder)
		return nil
	})

	viewErr := g.Wait()
	if runErr != nil {
		return runErr
	}
	return viewErr
}
