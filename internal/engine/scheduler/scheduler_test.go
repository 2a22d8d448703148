package scheduler_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/dxpatch/internal/adapters/telemetry"
	"go.trai.ch/dxpatch/internal/core/domain"
	"go.trai.ch/dxpatch/internal/core/ports/mocks"
	"go.trai.ch/dxpatch/internal/engine/scheduler"
	"go.uber.org/mock/gomock"
)

func instruction(name, dest string, board *domain.BoardDescriptor) domain.InstallInstruction {
	return domain.InstallInstruction{
		Source:      domain.PackageFile{Path: "/pack/" + name, Name: name},
		Class:       domain.ClassHeader,
		Destination: dest,
		Board:       board,
	}
}

func TestScheduler_Run_RecordsOutcomes(t *testing.T) {
	ctrl := gomock.NewController(t)
	installer := mocks.NewMockInstaller(ctrl)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Debug(gomock.Any()).AnyTimes()

	board := &domain.BoardDescriptor{Name: "AVR64DD32"}
	instructions := []domain.InstallInstruction{
		instruction("ioavr64dd32.h", "/tc/avr/include/avr/ioavr64dd32.h", board),
		instruction("common.h", "/tc/avr/include/avr/common.h", nil),
	}

	installer.EXPECT().Install(gomock.Any(), instructions[0]).Return(domain.OutcomeCopied, "aaaa", nil)
	installer.EXPECT().Install(gomock.Any(), instructions[1]).Return(domain.OutcomeUnchanged, "bbbb", nil)

	s := scheduler.NewScheduler(installer, logger)
	report, err := s.Run(context.Background(), telemetry.NewNoop(), instructions, 2)
	require.NoError(t, err)

	assert.Equal(t, 1, report.Copied)
	assert.Equal(t, 1, report.Unchanged)
	assert.Equal(t, 0, report.Failed)
	assert.Equal(t, []scheduler.Status{scheduler.StatusCompleted, scheduler.StatusCached}, report.Statuses)

	require.Len(t, report.Records, 2)
	assert.Equal(t, "/tc/avr/include/avr/ioavr64dd32.h", report.Records[0].Destination)
	assert.Equal(t, "/pack/ioavr64dd32.h", report.Records[0].Source)
	assert.Equal(t, "aaaa", report.Records[0].Digest)
	assert.Equal(t, "AVR64DD32", report.Records[0].Device)
	assert.False(t, report.Records[0].InstalledAt.IsZero())
	assert.Empty(t, report.Records[1].Device)
}

func TestScheduler_Run_JoinsFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	installer := mocks.NewMockInstaller(ctrl)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Debug(gomock.Any()).AnyTimes()

	instructions := []domain.InstallInstruction{
		instruction("a.h", "/tc/a.h", nil),
		instruction("b.h", "/tc/b.h", nil),
		instruction("c.h", "/tc/c.h", nil),
	}

	installer.EXPECT().Install(gomock.Any(), instructions[0]).Return(domain.OutcomeUnchanged, "", errors.New("disk full"))
	installer.EXPECT().Install(gomock.Any(), instructions[1]).Return(domain.OutcomeCopied, "b", nil)
	installer.EXPECT().Install(gomock.Any(), instructions[2]).Return(domain.OutcomeUnchanged, "", errors.New("read-only"))

	s := scheduler.NewScheduler(installer, logger)
	report, err := s.Run(context.Background(), telemetry.NewNoop(), instructions, 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	assert.Contains(t, err.Error(), "read-only")

	assert.Equal(t, 2, report.Failed)
	assert.Equal(t, 1, report.Copied)
	require.Len(t, report.Records, 1)
	assert.Equal(t, "/tc/b.h", report.Records[0].Destination)
}

func TestScheduler_Run_CancelledContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	installer := mocks.NewMockInstaller(ctrl)
	logger := mocks.NewMockLogger(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := scheduler.NewScheduler(installer, logger)
	report, err := s.Run(ctx, telemetry.NewNoop(), []domain.InstallInstruction{instruction("a.h", "/tc/a.h", nil)}, 1)
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, report.Failed)
	assert.Empty(t, report.Records)
}

func TestScheduler_Run_MarksUnchangedVertexCached(t *testing.T) {
	ctrl := gomock.NewController(t)
	installer := mocks.NewMockInstaller(ctrl)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Debug(gomock.Any()).AnyTimes()
	tel := mocks.NewMockTelemetry(ctrl)
	vertex := mocks.NewMockVertex(ctrl)

	instr := instruction("a.h", "/tc/a.h", nil)

	tel.EXPECT().Record(gomock.Any(), "install a.h").Return(context.Background(), vertex)
	installer.EXPECT().Install(gomock.Any(), instr).Return(domain.OutcomeUnchanged, "d", nil)
	gomock.InOrder(
		vertex.EXPECT().Cached(),
		vertex.EXPECT().Complete(nil),
	)

	s := scheduler.NewScheduler(installer, logger)
	_, err := s.Run(context.Background(), tel, []domain.InstallInstruction{instr}, 1)
	require.NoError(t, err)
}
