package classifier_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/dxpatch/internal/core/domain"
	"go.trai.ch/dxpatch/internal/core/ports/mocks"
	"go.trai.ch/dxpatch/internal/engine/classifier"
	"go.uber.org/mock/gomock"
)

const root = "/opt/toolchain-atmelavr"

func TestClassify(t *testing.T) {
	c := classifier.New(root, "", nil)

	tests := []struct {
		path string
		want domain.FileClass
	}{
		{"/pack/include/avr/ioavr64dd32.h", domain.ClassHeader},
		{"/pack/include/avr/IOAVR64DD32.H", domain.ClassHeader},
		{"/pack/gcc/dev/avr64dd32/avrxmega2/libavr64dd32.a", domain.ClassLinkArtifact},
		{"/pack/gcc/dev/avr64dd32/avrxmega2/crtavr64dd32.o", domain.ClassLinkArtifact},
		{"/pack/gcc/dev/avr64dd32/device-specs/specs-avr64dd32", domain.ClassSpecsFragment},
	}

	for _, tt := range tests {
		t.Run(filepath.Base(tt.path), func(t *testing.T) {
			got, err := c.Classify(domain.NewPackageFile(tt.path))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassify_Unclassifiable(t *testing.T) {
	c := classifier.New(root, "", nil)

	for _, path := range []string{"/pack/gcc/dev/avr64dd32/firmware.bin", "/pack/include/README"} {
		_, err := c.Classify(domain.NewPackageFile(path))
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrUnclassifiableFile), "path %s", path)
	}
}

func TestDestination(t *testing.T) {
	ctrl := gomock.NewController(t)
	lister := mocks.NewMockCompilerVersionLister(ctrl)
	lister.EXPECT().CompilerVersions(root).Return([]string{"7.3.0"}, nil).Times(1)

	c := classifier.New(root, "", lister)

	tests := []struct {
		name  string
		path  string
		class domain.FileClass
		want  string
	}{
		{
			name:  "header",
			path:  "/pack/include/avr/ioavr64dd32.h",
			class: domain.ClassHeader,
			want:  filepath.Join(root, "avr", "include", "avr", "ioavr64dd32.h"),
		},
		{
			name:  "link artifact keeps parent directory",
			path:  "/pack/gcc/dev/avr64dd32/avrxmega2/libavr64dd32.a",
			class: domain.ClassLinkArtifact,
			want:  filepath.Join(root, "avr", "lib", "avrxmega2", "libavr64dd32.a"),
		},
		{
			name:  "specs fragment",
			path:  "/pack/gcc/dev/avr64dd32/device-specs/specs-avr64dd32",
			class: domain.ClassSpecsFragment,
			want:  filepath.Join(root, "lib", "gcc", "avr", "7.3.0", "device-specs", "specs-avr64dd32"),
		},
		{
			name:  "second specs fragment reuses the resolved directory",
			path:  "/pack/gcc/dev/avr32dd14/device-specs/specs-avr32dd14",
			class: domain.ClassSpecsFragment,
			want:  filepath.Join(root, "lib", "gcc", "avr", "7.3.0", "device-specs", "specs-avr32dd14"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.Destination(domain.NewPackageFile(tt.path), tt.class)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDestination_HeaderDoesNotListVersions(t *testing.T) {
	ctrl := gomock.NewController(t)
	lister := mocks.NewMockCompilerVersionLister(ctrl)

	c := classifier.New(root, "", lister)
	_, err := c.Destination(domain.NewPackageFile("/pack/include/avr/ioavr64dd32.h"), domain.ClassHeader)
	require.NoError(t, err)
}

func TestDestination_SpecsAmbiguous(t *testing.T) {
	tests := []struct {
		name     string
		versions []string
		pin      string
	}{
		{name: "no compiler installed", versions: nil},
		{name: "several compilers installed", versions: []string{"5.4.0", "7.3.0"}},
		{name: "pinned version missing", versions: []string{"5.4.0", "7.3.0"}, pin: "12.1.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			lister := mocks.NewMockCompilerVersionLister(ctrl)
			lister.EXPECT().CompilerVersions(root).Return(tt.versions, nil)

			c := classifier.New(root, tt.pin, lister)
			_, err := c.Destination(
				domain.NewPackageFile("/pack/gcc/dev/avr64dd32/device-specs/specs-avr64dd32"),
				domain.ClassSpecsFragment,
			)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrAmbiguousSpecsDestination))
		})
	}
}

func TestDestination_SpecsPinned(t *testing.T) {
	ctrl := gomock.NewController(t)
	lister := mocks.NewMockCompilerVersionLister(ctrl)
	lister.EXPECT().CompilerVersions(root).Return([]string{"5.4.0", "7.3.0"}, nil)

	c := classifier.New(root, "5.4.0", lister)
	got, err := c.Destination(
		domain.NewPackageFile("/pack/gcc/dev/avr64dd32/device-specs/specs-avr64dd32"),
		domain.ClassSpecsFragment,
	)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "lib", "gcc", "avr", "5.4.0", "device-specs", "specs-avr64dd32"), got)
}

func TestDestination_ListerError(t *testing.T) {
	ctrl := gomock.NewController(t)
	lister := mocks.NewMockCompilerVersionLister(ctrl)
	lister.EXPECT().CompilerVersions(root).Return(nil, errors.New("permission denied"))

	c := classifier.New(root, "", lister)
	_, err := c.Destination(
		domain.NewPackageFile("/pack/gcc/dev/avr64dd32/device-specs/specs-avr64dd32"),
		domain.ClassSpecsFragment,
	)
	require.ErrorContains(t, err, "permission denied")
}
