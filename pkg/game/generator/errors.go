package generator

import "errors"

var (
	// ErrGenerationFailed is returned when a level could not be produced
	// within the retry caps.
	ErrGenerationFailed = errors.New("level generation failed")
	// ErrPuzzleUnsolvable is wrapped when no solvable lock-and-key layout
	// was found.
	ErrPuzzleUnsolvable = errors.New("no solvable lock layout")
)
