package synth_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/dxpatch/internal/core/boarddoc"
	"go.trai.ch/dxpatch/internal/core/domain"
	"go.trai.ch/dxpatch/internal/engine/decoder"
	"go.trai.ch/dxpatch/internal/engine/synth"
)

const template = `{
  "build": {
    "core": "dxcore",
    "extra_flags": "",
    "f_cpu": "24000000L",
    "mcu": "",
    "variant": ""
  },
  "bootloader": {
    "class": ""
  },
  "hardware": {
    "millistimer": "B2"
  },
  "name": "",
  "upload": {
    "maximum_ram_size": 0,
    "maximum_size": 0,
    "speed": 115200
  },
  "url": "",
  "vendor": "Microchip"
}
`

func parseTemplate(t *testing.T, data string) *boarddoc.Document {
	t.Helper()
	doc, err := boarddoc.Parse([]byte(data))
	require.NoError(t, err)
	return doc
}

func TestSynthesize_AVR64DD32(t *testing.T) {
	tmpl := parseTemplate(t, template)
	attrs := domain.DeviceAttributes{Family: "avr", RAMCode: 64, SubFamily: "dd", Pins: 32}

	board, err := synth.New().Synthesize(attrs, tmpl)
	require.NoError(t, err)

	assert.Equal(t, "AVR64DD32", board.Name)
	assert.Equal(t, "avr64dd32", board.MCU)
	assert.Equal(t, 8192, board.RAMLimit)
	assert.Equal(t, 65536, board.FlashLimit)
	assert.Equal(t, "32pin-ddseries", board.Variant)
	assert.Equal(t, "optiboot_64dd", board.Bootloader)
	assert.Equal(t, "B2", board.MillisTimer)
	assert.Contains(t, board.Flags, "-DARDUINO_AVR_AVR64DD32")
	assert.Contains(t, board.Flags, "-DARDUINO_avrdd")
	assert.Equal(t, "https://www.microchip.com/wwwproducts/en/AVR64DD32", board.URL)

	want := `{
  "build": {
    "core": "dxcore",
    "extra_flags": "-DARDUINO_AVR_AVR64DD32 -DARDUINO_avrdd -DMILLIS_USE_TIMERB2",
    "f_cpu": "24000000L",
    "mcu": "avr64dd32",
    "variant": "32pin-ddseries"
  },
  "bootloader": {
    "class": "optiboot_64dd"
  },
  "hardware": {
    "millistimer": "B2"
  },
  "name": "AVR64DD32",
  "upload": {
    "maximum_ram_size": 8192,
    "maximum_size": 65536,
    "speed": 115200
  },
  "url": "https://www.microchip.com/wwwproducts/en/AVR64DD32",
  "vendor": "Microchip"
}
`
	assert.Equal(t, want, string(board.Document))
}

func TestSynthesize_AVR128DA64(t *testing.T) {
	tmpl := parseTemplate(t, template)
	attrs := domain.DeviceAttributes{Family: "avr", RAMCode: 128, SubFamily: "da", Pins: 64}

	board, err := synth.New().Synthesize(attrs, tmpl)
	require.NoError(t, err)

	assert.Equal(t, "64pin-standard", board.Variant)
	assert.Equal(t, 16384, board.RAMLimit)
	assert.Equal(t, 131072, board.FlashLimit)
	assert.Equal(t, "optiboot_128dx", board.Bootloader)
	assert.Equal(t, "B2", board.MillisTimer)
	assert.Equal(t, []string{
		"-DARDUINO_AVR_AVR128DA64",
		"-DARDUINO_avrda",
		"-DMILLIS_USE_TIMERB2",
	}, board.Flags)
}

func TestSynthesize_AVR32DD14(t *testing.T) {
	tmpl := parseTemplate(t, template)
	attrs := domain.DeviceAttributes{Family: "avr", RAMCode: 32, SubFamily: "dd", Pins: 14}

	s := synth.New()
	small, err := s.Synthesize(attrs, tmpl)
	require.NoError(t, err)
	other, err := s.Synthesize(domain.DeviceAttributes{Family: "avr", RAMCode: 32, SubFamily: "dd", Pins: 28}, tmpl)
	require.NoError(t, err)

	assert.Equal(t, "B1", small.MillisTimer)
	assert.Contains(t, small.Flags, "-DMILLIS_USE_TIMERB1")
	assert.Equal(t, "optiboot_32dd14", small.Bootloader)
	assert.Equal(t, "optiboot_32dd", other.Bootloader)
	assert.NotEqual(t, small.Bootloader, other.Bootloader)

	doc, err := boarddoc.Parse(small.Document)
	require.NoError(t, err)
	timer, ok := doc.Lookup("hardware", "millistimer")
	require.True(t, ok)
	assert.Equal(t, "B1", timer)
}

func TestDerive_MillisTimerThreshold(t *testing.T) {
	s := synth.New()

	tests := []struct {
		sub  string
		pins int
		want string
	}{
		{"dd", 14, "B1"},
		{"dd", 20, "B1"},
		{"dd", 28, "B2"},
		{"da", 14, "B2"},
		{"db", 28, "B2"},
	}

	for _, tt := range tests {
		board := s.Derive(domain.DeviceAttributes{Family: "avr", RAMCode: 64, SubFamily: tt.sub, Pins: tt.pins})
		assert.Equal(t, tt.want, board.MillisTimer, "%s%d", tt.sub, tt.pins)
	}
}

func TestDerive_BootloaderFloor(t *testing.T) {
	s := synth.New()

	board := s.Derive(domain.DeviceAttributes{Family: "avr", RAMCode: 16, SubFamily: "dd", Pins: 28})
	assert.Equal(t, "optiboot_32dd", board.Bootloader)
	assert.Equal(t, 2048, board.RAMLimit)
	assert.Equal(t, 16384, board.FlashLimit)

	board = s.Derive(domain.DeviceAttributes{Family: "avr", RAMCode: 16, SubFamily: "dd", Pins: 14})
	assert.Equal(t, "optiboot_32dd14", board.Bootloader)
}

func TestDerive_MemoryLimits(t *testing.T) {
	s := synth.New()

	for _, r := range []int{1, 8, 16, 32, 64, 128} {
		board := s.Derive(domain.DeviceAttributes{Family: "avr", RAMCode: r, SubFamily: "db", Pins: 32})
		assert.Equal(t, 128*r, board.RAMLimit)
		assert.Equal(t, 1024*r, board.FlashLimit)
	}
}

func TestDerive_LargestDecodableSize(t *testing.T) {
	s := synth.New()
	board := s.Derive(domain.DeviceAttributes{Family: "avr", RAMCode: decoder.MaxSizeCode, SubFamily: "dd", Pins: 32})

	assert.Positive(t, board.RAMLimit)
	assert.Positive(t, board.FlashLimit)
	assert.Equal(t, decoder.MaxSizeCode*1024, board.FlashLimit)
}

func TestSynthesize_Deterministic(t *testing.T) {
	tmpl := parseTemplate(t, template)
	attrs := domain.DeviceAttributes{Family: "avr", RAMCode: 64, SubFamily: "dd", Pins: 32}
	s := synth.New()

	first, err := s.Synthesize(attrs, tmpl)
	require.NoError(t, err)
	second, err := s.Synthesize(attrs, tmpl)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, first.Document, second.Document)
}

func TestSynthesize_TemplateUntouched(t *testing.T) {
	tmpl := parseTemplate(t, template)
	before, err := tmpl.Encode()
	require.NoError(t, err)

	_, err = synth.New().Synthesize(domain.DeviceAttributes{Family: "avr", RAMCode: 64, SubFamily: "dd", Pins: 32}, tmpl)
	require.NoError(t, err)

	after, err := tmpl.Encode()
	require.NoError(t, err)
	assert.Equal(t, string(before), string(after))
}

func TestSynthesize_WithoutMillisKey(t *testing.T) {
	tmpl := parseTemplate(t, `{"build": {"extra_flags": "", "mcu": "", "variant": ""},
"bootloader": {"class": ""}, "name": "", "upload": {"maximum_ram_size": 0, "maximum_size": 0}, "url": ""}`)

	board, err := synth.New().Synthesize(domain.DeviceAttributes{Family: "avr", RAMCode: 32, SubFamily: "dd", Pins: 14}, tmpl)
	require.NoError(t, err)
	assert.NotContains(t, string(board.Document), "millistimer")
	assert.Contains(t, string(board.Document), "-DMILLIS_USE_TIMERB1")
}

func TestValidateTemplate(t *testing.T) {
	require.NoError(t, synth.ValidateTemplate(parseTemplate(t, template)))

	err := synth.ValidateTemplate(parseTemplate(t, `{"name": "", "build": {"mcu": ""}}`))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrMalformedTemplate))
	assert.Contains(t, err.Error(), "malformed board template")

	err = synth.ValidateTemplate(nil)
	assert.True(t, errors.Is(err, domain.ErrMalformedTemplate))
}

func TestSynthesize_MalformedTemplate(t *testing.T) {
	tmpl := parseTemplate(t, `{"name": "", "url": ""}`)

	_, err := synth.New().Synthesize(domain.DeviceAttributes{Family: "avr", RAMCode: 64, SubFamily: "dd", Pins: 32}, tmpl)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrMalformedTemplate))
}

func TestNewWithFamilies(t *testing.T) {
	s := synth.NewWithFamilies(map[string]synth.Family{}, synth.Family{VariantSuffix: "plain", BootloaderSuffix: "x"})

	board := s.Derive(domain.DeviceAttributes{Family: "avr", RAMCode: 64, SubFamily: "dd", Pins: 14})
	assert.Equal(t, "14pin-plain", board.Variant)
	assert.Equal(t, "optiboot_64x", board.Bootloader)
	assert.Equal(t, "B2", board.MillisTimer)
}
