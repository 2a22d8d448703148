package domain

// FileClass identifies how a package file is installed into the toolchain.
type FileClass uint8

const (
	// ClassHeader is a per-device or shared C header.
	ClassHeader FileClass = iota + 1
	// ClassLinkArtifact is a startup object or device library consumed by the linker.
	ClassLinkArtifact
	// ClassSpecsFragment is a compiler device-specs file.
	ClassSpecsFragment
)

// String returns the lowercase name of the class.
func (c FileClass) String() string {
	switch c {
	case ClassHeader:
		return "header"
	case ClassLinkArtifact:
		return "link-artifact"
	case ClassSpecsFragment:
		return "specs-fragment"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (c FileClass) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}
