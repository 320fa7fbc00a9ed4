// Package progression defines how levels follow each other: the first and
// final level numbers, the complexity a level is generated with, and the
// depth band a level belongs to. The player never sees the total; they find
// the end by reaching the final level.
package progression

import (
	"github.com/leonelquinteros/gotext"
)

// FirstLevel is the number of the level a new game starts on.
const FirstLevel = 1

// FinalLevel is the number of the deepest level.
const FinalLevel = 21

// IsFinal returns true if the given level is the final one.
func IsFinal(level int) bool {
	return level >= FinalLevel
}

// Next returns the level after the given one, or 0 if there is no next level
// (current is final).
func Next(level int) int {
	if level < FirstLevel {
		return FirstLevel
	}
	if IsFinal(level) {
		return 0
	}
	return level + 1
}

// Complexity returns the complexity coefficient entities on the given level
// are spawned with.
func Complexity(level int) int {
	switch {
	case level < FirstLevel:
		return FirstLevel
	case level > FinalLevel:
		return FinalLevel
	default:
		return level
	}
}

// Band groups levels by depth.
type Band int

const (
	Upper  Band = iota // Levels 1-7
	Middle             // Levels 8-14
	Lower              // Levels 15-20
	Depths             // Final level
)

// BandOf returns the depth band of the given level.
func BandOf(level int) Band {
	switch {
	case IsFinal(level):
		return Depths
	case level >= 15:
		return Lower
	case level >= 8:
		return Middle
	default:
		return Upper
	}
}

// BandName returns the translated name of the band. Uses gotext.Get with
// constant keys so the strings can be extracted.
func BandName(b Band) string {
	switch b {
	case Middle:
		return gotext.Get("BAND_MIDDLE")
	case Lower:
		return gotext.Get("BAND_LOWER")
	case Depths:
		return gotext.Get("BAND_DEPTHS")
	default:
		return gotext.Get("BAND_UPPER")
	}
}
