package domain

import "time"

// InstallOutcome reports what the installer did with one instruction.
type InstallOutcome uint8

const (
	// OutcomeCopied means the file was written to its destination.
	OutcomeCopied InstallOutcome = iota + 1
	// OutcomeUnchanged means the destination already held identical content.
	OutcomeUnchanged
)

// String returns the outcome name.
func (o InstallOutcome) String() string {
	switch o {
	case OutcomeCopied:
		return "copied"
	case OutcomeUnchanged:
		return "unchanged"
	default:
		return "unknown"
	}
}

// InstallRecord is one file written into the toolchain or the boards directory.
type InstallRecord struct {
	Destination string    `json:"destination"`
	Source      string    `json:"source,omitempty"`
	Digest      string    `json:"digest,omitempty"`
	Device      string    `json:"device,omitempty"`
	InstalledAt time.Time `json:"installed_at"`
}
