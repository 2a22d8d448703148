package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/dxpatch/internal/app"
	"go.trai.ch/dxpatch/internal/core/domain"
	"go.trai.ch/dxpatch/internal/core/ports"
	"go.trai.ch/dxpatch/internal/core/ports/mocks"
	"go.trai.ch/dxpatch/internal/engine/decoder"
	"go.trai.ch/dxpatch/internal/engine/planner"
	"go.trai.ch/dxpatch/internal/engine/scheduler"
	"go.trai.ch/dxpatch/internal/engine/synth"
	"go.uber.org/mock/gomock"
)

func newApp(ctrl *gomock.Controller, loader ports.ConfigLoader, logger ports.Logger) *app.App {
	installer := mocks.NewMockInstaller(ctrl)
	return app.New(
		loader,
		mocks.NewMockPackDiscoverer(ctrl),
		planner.New(mocks.NewMockCompilerVersionLister(ctrl), decoder.New(), synth.New(), logger),
		scheduler.NewScheduler(installer, logger),
		installer,
		mocks.NewMockBoardWriter(ctrl),
		mocks.NewMockInstallStateStore(ctrl),
		mocks.NewMockPackIndex(ctrl),
		mocks.NewMockPackFetcher(ctrl),
		mocks.NewMockToolchainProvisioner(ctrl),
		mocks.NewMockTelemetry(ctrl),
		logger,
	)
}

func provide(a *app.App, logger ports.Logger) ComponentProvider {
	return func(context.Context) (*app.Components, func(), error) {
		return &app.Components{App: a, Logger: logger}, func() {}, nil
	}
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().SetVerbose(false).AnyTimes()
	application := newApp(ctrl, mocks.NewMockConfigLoader(ctrl), mockLogger)

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provide(application, mockLogger))
	assert.Equal(t, 0, exitCode)
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ExecutionError verifies that run returns 1 and logs when the command fails.
func TestRun_ExecutionError(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockLoader := mocks.NewMockConfigLoader(ctrl)
	mockLoader.EXPECT().Load(domain.ConfigFileName).Return(nil, errors.New("load failed"))

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().SetVerbose(false).AnyTimes()
	mockLogger.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.Contains(t, err.Error(), "load failed")
	})

	application := newApp(ctrl, mockLoader, mockLogger)

	var applied bool
	exitCode := run(context.Background(), []string{"plan"}, io.Discard, provide(application, mockLogger),
		func(a *app.App) {
			applied = true
			a.WithParallelism(1)
		})

	assert.Equal(t, 1, exitCode)
	assert.True(t, applied)
}

// TestRun_Signal verifies that the context is canceled on signal.
func TestRun_Signal(t *testing.T) {
	ctrl := gomock.NewController(t)

	blockCh := make(chan struct{})

	mockLoader := mocks.NewMockConfigLoader(ctrl)
	mockLoader.EXPECT().Load(gomock.Any()).DoAndReturn(func(_ string) (*domain.Config, error) {
		select {
		case <-blockCh:
			return nil, context.Canceled
		case <-time.After(5 * time.Second):
			return nil, errors.New("timeout in mock")
		}
	})

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().SetVerbose(false).AnyTimes()
	mockLogger.EXPECT().Error(gomock.Any()).AnyTimes()

	application := newApp(ctrl, mockLoader, mockLogger)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan int)

	go func() {
		errCh <- run(ctx, []string{"install"}, io.Discard, provide(application, mockLogger))
	}()

	time.Sleep(100 * time.Millisecond)

	cancel()
	close(blockCh)

	select {
	case ret := <-errCh:
		assert.NotEqual(t, 0, ret)
	case <-time.After(2 * time.Second):
		t.Fatal("run did not return after cancellation")
	}
}
