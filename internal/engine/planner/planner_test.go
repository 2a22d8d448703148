package planner_test

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/dxpatch/internal/core/boarddoc"
	"go.trai.ch/dxpatch/internal/core/domain"
	"go.trai.ch/dxpatch/internal/core/ports/mocks"
	"go.trai.ch/dxpatch/internal/engine/decoder"
	"go.trai.ch/dxpatch/internal/engine/planner"
	"go.trai.ch/dxpatch/internal/engine/synth"
	"go.uber.org/mock/gomock"
)

const (
	toolchain = "/home/dev/.platformio/packages/toolchain-atmelavr"
	pack      = "/tmp/Atmel.AVR-Dx_DFP.2.6.303"
)

const template = `{
  "build": {"extra_flags": "", "mcu": "", "variant": ""},
  "bootloader": {"class": ""},
  "hardware": {"millistimer": "B2"},
  "name": "",
  "upload": {"maximum_ram_size": 0, "maximum_size": 0},
  "url": ""
}`

func newPlanner(t *testing.T, versions ...string) (*planner.Planner, *mocks.MockLogger) {
	t.Helper()
	ctrl := gomock.NewController(t)

	lister := mocks.NewMockCompilerVersionLister(ctrl)
	lister.EXPECT().CompilerVersions(toolchain).Return(versions, nil).AnyTimes()

	logger := mocks.NewMockLogger(ctrl)

	return planner.New(lister, decoder.New(), synth.New(), logger), logger
}

func loadTemplate(t *testing.T) *boarddoc.Document {
	t.Helper()
	doc, err := boarddoc.Parse([]byte(template))
	require.NoError(t, err)
	return doc
}

func files(paths ...string) []domain.PackageFile {
	out := make([]domain.PackageFile, 0, len(paths))
	for _, p := range paths {
		out = append(out, domain.NewPackageFile(filepath.Join(pack, p)))
	}
	return out
}

func TestPlan(t *testing.T) {
	p, logger := newPlanner(t, "7.3.0")
	logger.EXPECT().Debug(gomock.Any()).Times(1)

	instrs, err := p.Plan(context.Background(), planner.Request{
		Files: files(
			"include/avr/ioavr64dd32.h",
			"include/avr/common_avr.h",
			"gcc/dev/avr64dd32/avrxmega2/libavr64dd32.a",
			"gcc/dev/avr64dd32/avrxmega2/crtavr64dd32.o",
			"gcc/dev/avr64dd32/device-specs/specs-avr64dd32",
		),
		Template:  loadTemplate(t),
		Toolchain: toolchain,
	})
	require.NoError(t, err)
	require.Len(t, instrs, 5)

	assert.Equal(t, domain.ClassHeader, instrs[0].Class)
	assert.Equal(t, filepath.Join(toolchain, "avr/include/avr/ioavr64dd32.h"), instrs[0].Destination)
	require.NotNil(t, instrs[0].Board)
	assert.Equal(t, "AVR64DD32", instrs[0].Board.Name)

	assert.Equal(t, domain.ClassHeader, instrs[1].Class)
	assert.Equal(t, filepath.Join(toolchain, "avr/include/avr/common_avr.h"), instrs[1].Destination)
	assert.Nil(t, instrs[1].Board)

	assert.Equal(t, domain.ClassLinkArtifact, instrs[2].Class)
	assert.Equal(t, filepath.Join(toolchain, "avr/lib/avrxmega2/libavr64dd32.a"), instrs[2].Destination)
	assert.Equal(t, domain.ClassLinkArtifact, instrs[3].Class)

	assert.Equal(t, domain.ClassSpecsFragment, instrs[4].Class)
	assert.Equal(t, filepath.Join(toolchain, "lib/gcc/avr/7.3.0/device-specs/specs-avr64dd32"), instrs[4].Destination)

	boards := domain.Boards(instrs)
	require.Len(t, boards, 1)
	assert.Equal(t, 8192, boards[0].RAMLimit)
}

func TestPlan_DeduplicatesBoards(t *testing.T) {
	p, _ := newPlanner(t, "7.3.0")

	// The same device shipped twice, the second copy under a different casing.
	instrs, err := p.Plan(context.Background(), planner.Request{
		Files: files(
			"include/avr/ioavr64dd32.h",
			"include/avr/ioavr128da64.h",
			"include/legacy/IOAVR64DD32.H",
		),
		Template:  loadTemplate(t),
		Toolchain: toolchain,
	})
	require.NoError(t, err)
	require.Len(t, instrs, 3)

	assert.Nil(t, instrs[0].Board)
	require.NotNil(t, instrs[1].Board)
	require.NotNil(t, instrs[2].Board)
	assert.Equal(t, "AVR64DD32", instrs[2].Board.Name)

	boards := domain.Boards(instrs)
	require.Len(t, boards, 2)
	assert.Equal(t, "AVR128DA64", boards[0].Name)
	assert.Equal(t, "AVR64DD32", boards[1].Name)
}

func TestPlan_UnclassifiableAborts(t *testing.T) {
	p, _ := newPlanner(t, "7.3.0")

	instrs, err := p.Plan(context.Background(), planner.Request{
		Files: files(
			"include/avr/ioavr64dd32.h",
			"gcc/dev/avr64dd32/firmware.bin",
		),
		Template:  loadTemplate(t),
		Toolchain: toolchain,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnclassifiableFile))
	assert.Nil(t, instrs)
}

func TestPlan_ReportsEarliestFailure(t *testing.T) {
	p, _ := newPlanner(t, "5.4.0", "7.3.0")

	paths := make([]string, 0, 64)
	for i := range 32 {
		paths = append(paths, fmt.Sprintf("gcc/dev/avr%ddd32/device-specs/specs-avr%ddd32", i+1, i+1))
	}
	paths = append(paths, "gcc/dev/avr64dd32/firmware.bin")

	for range 5 {
		_, err := p.Plan(context.Background(), planner.Request{
			Files:     files(paths...),
			Template:  loadTemplate(t),
			Toolchain: toolchain,
		})
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrAmbiguousSpecsDestination))
	}
}

func TestPlan_MalformedTemplate(t *testing.T) {
	p, _ := newPlanner(t, "7.3.0")

	tmpl, err := boarddoc.Parse([]byte(`{"name": ""}`))
	require.NoError(t, err)

	instrs, err := p.Plan(context.Background(), planner.Request{
		Files:     files("include/avr/common_avr.h"),
		Template:  tmpl,
		Toolchain: toolchain,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrMalformedTemplate))
	assert.Nil(t, instrs)
}

func TestPlan_Deterministic(t *testing.T) {
	p, logger := newPlanner(t, "7.3.0")
	logger.EXPECT().Debug(gomock.Any()).AnyTimes()

	req := planner.Request{
		Files: files(
			"include/avr/ioavr32dd14.h",
			"include/avr/ioavr64dd32.h",
			"include/avr/ioavr128da64.h",
			"include/avr/common_avr.h",
			"gcc/dev/avr32dd14/device-specs/specs-avr32dd14",
		),
		Template:  loadTemplate(t),
		Toolchain: toolchain,
	}

	first, err := p.Plan(context.Background(), req)
	require.NoError(t, err)
	second, err := p.Plan(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestPlan_Canceled(t *testing.T) {
	p, _ := newPlanner(t, "7.3.0")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Plan(ctx, planner.Request{
		Files:     files("include/avr/ioavr64dd32.h"),
		Template:  loadTemplate(t),
		Toolchain: toolchain,
	})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPlan_Empty(t *testing.T) {
	p, _ := newPlanner(t)

	instrs, err := p.Plan(context.Background(), planner.Request{
		Template:  loadTemplate(t),
		Toolchain: toolchain,
	})
	require.NoError(t, err)
	assert.Empty(t, instrs)
}
