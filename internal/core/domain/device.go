package domain

import (
	"strconv"
	"strings"
)

// DeviceAttributes is the silicon identity decoded from a device header name.
// A value is either fully populated or not produced at all.
type DeviceAttributes struct {
	// Family is the optional family prefix, lowercase (e.g. "avr").
	Family string
	// RAMCode is the size code as written in the file name (e.g. 64 for avr64dd32).
	RAMCode int
	// SubFamily is the lowercase sub-family code (e.g. "dd").
	SubFamily string
	// Pins is the package pin count.
	Pins int
}

// Token returns the lowercase canonical device token, e.g. "avr64dd32".
func (a DeviceAttributes) Token() string {
	var b strings.Builder
	b.WriteString(a.Family)
	b.WriteString(strconv.Itoa(a.RAMCode))
	b.WriteString(a.SubFamily)
	b.WriteString(strconv.Itoa(a.Pins))
	return b.String()
}

// Name returns the uppercase device name, e.g. "AVR64DD32".
func (a DeviceAttributes) Name() string {
	return strings.ToUpper(a.Token())
}
