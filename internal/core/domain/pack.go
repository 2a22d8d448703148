package domain

// PackRelease describes one vendor pack as listed in the pack index.
type PackRelease struct {
	Name    string
	Version string
	URL     string
	Devices []string
}

// ArchiveName returns the file name the vendor publishes the pack under,
// e.g. "Atmel.AVR-Dx_DFP.2.6.303.atpack".
func (r PackRelease) ArchiveName() string {
	return "Atmel." + r.Name + "." + r.Version + ".atpack"
}

// DirName returns the directory the archive is extracted into.
func (r PackRelease) DirName() string {
	return "Atmel." + r.Name + "." + r.Version
}
