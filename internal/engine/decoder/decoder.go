// Package decoder extracts device attributes from vendor header names.
package decoder

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"go.trai.ch/dxpatch/internal/core/domain"
)

// Pattern is one header naming convention. Its expression must capture, in order,
// the family prefix, the size code, the sub-family code and the pin count.
type Pattern struct {
	Name string
	Expr *regexp.Regexp
}

// DefaultPatterns are the vendor's naming conventions, most specific first.
// The two-letter form (ioavr64dd32.h) must precede the single-letter form
// so that a second sub-family letter is never read as part of the pin count.
var DefaultPatterns = []Pattern{
	{Name: "two-letter", Expr: regexp.MustCompile(`^io(avr)?(\d+)([a-z]{2})(\d+)$`)},
	{Name: "single-letter", Expr: regexp.MustCompile(`^io(avr)?(\d+)([a-z])(\d+)$`)},
}

// MaxSizeCode is the largest size code accepted. The code is the flash size in KiB,
// so larger codes overflow the derived byte limits.
const MaxSizeCode = math.MaxInt / 1024

// Decoder matches header stems against an ordered list of patterns.
type Decoder struct {
	patterns []Pattern
}

// New creates a Decoder. With no patterns it uses DefaultPatterns.
func New(patterns ...Pattern) *Decoder {
	if len(patterns) == 0 {
		patterns = DefaultPatterns
	}
	return &Decoder{patterns: patterns}
}

// Decode returns the attributes encoded in stem and true, or false when no pattern
// matches the whole stem. A non-match is the normal outcome for shared headers.
func (d *Decoder) Decode(stem string) (domain.DeviceAttributes, bool) {
	s := strings.ToLower(stem)
	for _, p := range d.patterns {
		m := p.Expr.FindStringSubmatch(s)
		if m == nil {
			continue
		}
		attrs, ok := attributes(m)
		if ok {
			return attrs, true
		}
	}
	return domain.DeviceAttributes{}, false
}

func attributes(m []string) (domain.DeviceAttributes, bool) {
	if len(m) != 5 {
		return domain.DeviceAttributes{}, false
	}
	size, err := strconv.Atoi(m[2])
	if err != nil || size == 0 || size > MaxSizeCode {
		return domain.DeviceAttributes{}, false
	}
	pins, err := strconv.Atoi(m[4])
	if err != nil || pins == 0 {
		return domain.DeviceAttributes{}, false
	}
	return domain.DeviceAttributes{
		Family:    m[1],
		RAMCode:   size,
		SubFamily: m[3],
		Pins:      pins,
	}, true
}
