// Package synth derives board descriptors from decoded device attributes.
package synth

import (
	"strconv"
	"strings"

	"go.trai.ch/dxpatch/internal/core/boarddoc"
	"go.trai.ch/dxpatch/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	ramBytesPerCode   = 128
	flashBytesPerCode = 1024

	// ProductURLPrefix is the vendor product page the device name is appended to.
	ProductURLPrefix = "https://www.microchip.com/wwwproducts/en/"
)

var (
	keyName       = []string{"name"}
	keyURL        = []string{"url"}
	keyMCU        = []string{"build", "mcu"}
	keyFlags      = []string{"build", "extra_flags"}
	keyVariant    = []string{"build", "variant"}
	keyRAM        = []string{"upload", "maximum_ram_size"}
	keyFlash      = []string{"upload", "maximum_size"}
	keyBootloader = []string{"bootloader", "class"}
	keyMillis     = []string{"hardware", "millistimer"}
)

// RequiredKeys lists the template keys every synthesis writes.
var RequiredKeys = [][]string{
	keyName, keyURL, keyMCU, keyFlags, keyVariant, keyRAM, keyFlash, keyBootloader,
}

// Synthesizer fills a board template from device attributes.
type Synthesizer struct {
	families map[string]Family
	fallback Family
}

// New creates a Synthesizer using DefaultFamilies.
func New() *Synthesizer {
	return NewWithFamilies(DefaultFamilies, DefaultFamily)
}

// NewWithFamilies creates a Synthesizer with a custom family table.
func NewWithFamilies(families map[string]Family, fallback Family) *Synthesizer {
	return &Synthesizer{families: families, fallback: fallback}
}

// ValidateTemplate reports ErrMalformedTemplate when the template lacks a key synthesis writes.
func ValidateTemplate(tmpl *boarddoc.Document) error {
	if tmpl == nil {
		return zerr.Wrap(domain.ErrMalformedTemplate, "no template loaded")
	}
	if missing := tmpl.Missing(RequiredKeys...); len(missing) > 0 {
		return zerr.With(zerr.Wrap(domain.ErrMalformedTemplate, "template is missing keys"),
			"missing", strings.Join(missing, ", "))
	}
	return nil
}

// Synthesize returns the descriptor of the device. The template is not modified.
func (s *Synthesizer) Synthesize(attrs domain.DeviceAttributes, tmpl *boarddoc.Document) (domain.BoardDescriptor, error) {
	if err := ValidateTemplate(tmpl); err != nil {
		return domain.BoardDescriptor{}, err
	}

	board := s.Derive(attrs)

	doc := tmpl.Clone()
	sets := []struct {
		path  []string
		value string
	}{
		{keyName, board.Name},
		{keyURL, board.URL},
		{keyMCU, board.MCU},
		{keyFlags, strings.Join(board.Flags, " ")},
		{keyVariant, board.Variant},
		{keyBootloader, board.Bootloader},
	}
	for _, set := range sets {
		if err := doc.SetString(set.value, set.path...); err != nil {
			return domain.BoardDescriptor{}, zerr.Wrap(err, domain.ErrMalformedTemplate.Error())
		}
	}
	if err := doc.SetInt(board.RAMLimit, keyRAM...); err != nil {
		return domain.BoardDescriptor{}, zerr.Wrap(err, domain.ErrMalformedTemplate.Error())
	}
	if err := doc.SetInt(board.FlashLimit, keyFlash...); err != nil {
		return domain.BoardDescriptor{}, zerr.Wrap(err, domain.ErrMalformedTemplate.Error())
	}
	if doc.Has(keyMillis...) {
		if err := doc.SetString(board.MillisTimer, keyMillis...); err != nil {
			return domain.BoardDescriptor{}, zerr.Wrap(err, domain.ErrMalformedTemplate.Error())
		}
	}

	encoded, err := doc.Encode()
	if err != nil {
		return domain.BoardDescriptor{}, zerr.With(zerr.Wrap(err, "failed to encode board descriptor"), "device", board.Name)
	}
	board.Document = encoded
	return board, nil
}

// Derive computes the descriptor fields without a template.
func (s *Synthesizer) Derive(attrs domain.DeviceAttributes) domain.BoardDescriptor {
	family := s.family(attrs.SubFamily)
	name := attrs.Name()
	timer := family.millisTimer(attrs.Pins)

	tier := max(attrs.RAMCode, bootloaderFloor)

	return domain.BoardDescriptor{
		Name:       name,
		MCU:        attrs.Token(),
		RAMLimit:   attrs.RAMCode * ramBytesPerCode,
		FlashLimit: attrs.RAMCode * flashBytesPerCode,
		Variant:    strconv.Itoa(attrs.Pins) + "pin-" + family.VariantSuffix,
		Flags: []string{
			"-DARDUINO_AVR_" + name,
			"-DARDUINO_avr" + attrs.SubFamily,
			"-DMILLIS_USE_TIMER" + timer,
		},
		MillisTimer: timer,
		Bootloader:  "optiboot_" + strconv.Itoa(tier) + family.bootloaderSuffix(attrs.Pins),
		URL:         ProductURLPrefix + name,
	}
}

func (s *Synthesizer) family(code string) Family {
	if f, ok := s.families[code]; ok {
		return f
	}
	return s.fallback
}
