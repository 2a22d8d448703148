// Package scheduler applies install instructions with bounded parallelism.
package scheduler

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.trai.ch/dxpatch/internal/core/domain"
	"go.trai.ch/dxpatch/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Status represents the state of one instruction during a run.
type Status string

const (
	// StatusPending indicates the instruction is waiting to be applied.
	StatusPending Status = "Pending"
	// StatusRunning indicates the file is being copied.
	StatusRunning Status = "Running"
	// StatusCompleted indicates the file was copied.
	StatusCompleted Status = "Completed"
	// StatusFailed indicates the copy failed.
	StatusFailed Status = "Failed"
	// StatusCached indicates the destination already held identical content.
	StatusCached Status = "Cached"
)

// Report summarizes one run.
type Report struct {
	// Records holds one record per applied instruction, in instruction order.
	Records   []domain.InstallRecord
	Statuses  []Status
	Copied    int
	Unchanged int
	Failed    int
}

// Scheduler applies install instructions through an Installer.
type Scheduler struct {
	installer ports.Installer
	logger    ports.Logger
	now       func() time.Time
}

// NewScheduler creates a new Scheduler.
func NewScheduler(installer ports.Installer, logger ports.Logger) *Scheduler {
	return &Scheduler{
		installer: installer,
		logger:    logger,
		now:       time.Now,
	}
}

// Run applies every instruction, at most parallelism at a time, recording one vertex per file.
// A failing file does not stop the others; the returned error joins every failure.
// Cancelling ctx stops instructions that have not started yet.
func (s *Scheduler) Run(
	ctx context.Context,
	tel ports.Telemetry,
	instructions []domain.InstallInstruction,
	parallelism int,
) (*Report, error) {
	state := &runState{
		s:        s,
		tel:      tel,
		records:  make([]*domain.InstallRecord, len(instructions)),
		statuses: make([]Status, len(instructions)),
		errs:     make([]error, len(instructions)),
	}
	for i := range state.statuses {
		state.statuses[i] = StatusPending
	}

	var g errgroup.Group
	if parallelism > 0 {
		g.SetLimit(parallelism)
	}
	for i, instr := range instructions {
		g.Go(func() error {
			state.apply(ctx, i, instr)
			return nil
		})
	}
	_ = g.Wait()

	return state.report()
}

type runState struct {
	s   *Scheduler
	tel ports.Telemetry

	mu       sync.Mutex
	records  []*domain.InstallRecord
	statuses []Status
	errs     []error
}

func (state *runState) setStatus(i int, status Status) {
	state.mu.Lock()
	defer state.mu.Unlock()
	state.statuses[i] = status
}

func (state *runState) apply(ctx context.Context, i int, instr domain.InstallInstruction) {
	if err := ctx.Err(); err != nil {
		state.fail(i, instr, err)
		return
	}

	state.setStatus(i, StatusRunning)
	vctx, vertex := state.tel.Record(ctx, "install "+instr.Source.Name)

	outcome, digest, err := state.s.installer.Install(vctx, instr)
	if err != nil {
		vertex.Complete(err)
		state.fail(i, instr, err)
		return
	}

	status := StatusCompleted
	if outcome == domain.OutcomeUnchanged {
		vertex.Cached()
		status = StatusCached
	}
	vertex.Complete(nil)
	state.s.logger.Debug(outcome.String() + " " + instr.Destination)

	record := &domain.InstallRecord{
		Destination: instr.Destination,
		Source:      instr.Source.Path,
		Digest:      digest,
		InstalledAt: state.s.now(),
	}
	if instr.Board != nil {
		record.Device = instr.Board.Name
	}

	state.mu.Lock()
	defer state.mu.Unlock()
	state.statuses[i] = status
	state.records[i] = record
}

func (state *runState) fail(i int, instr domain.InstallInstruction, err error) {
	wrapped := zerr.With(zerr.Wrap(err, "install failed"), "file", instr.Source.Path)

	state.mu.Lock()
	defer state.mu.Unlock()
	state.statuses[i] = StatusFailed
	state.errs[i] = wrapped
}

func (state *runState) report() (*Report, error) {
	state.mu.Lock()
	defer state.mu.Unlock()

	report := &Report{Statuses: state.statuses}
	for i, record := range state.records {
		switch state.statuses[i] {
		case StatusCompleted:
			report.Copied++
		case StatusCached:
			report.Unchanged++
		case StatusFailed:
			report.Failed++
		}
		if record != nil {
			report.Records = append(report.Records, *record)
		}
	}
	return report, errors.Join(state.errs...)
}
