package domain

import (
	"slices"
	"strings"
)

// InstallInstruction pairs a package file with its destination in the toolchain
// and, for device headers, the board descriptor to emit.
type InstallInstruction struct {
	Source      PackageFile
	Class       FileClass
	Destination string
	Board       *BoardDescriptor
}

// Boards returns the descriptors attached to the instructions, ordered by device name.
func Boards(instructions []InstallInstruction) []BoardDescriptor {
	var boards []BoardDescriptor
	for _, instr := range instructions {
		if instr.Board != nil {
			boards = append(boards, *instr.Board)
		}
	}
	slices.SortFunc(boards, func(a, b BoardDescriptor) int {
		return strings.Compare(a.Name, b.Name)
	})
	return boards
}
