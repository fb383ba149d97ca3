// Package mapfile reads square terrain maps written in a one-character-per-
// cell alphabet and turns them into a *terrain.Map.
//
// Format:
//
//	~  water (impassable)     .  flatland (cost 1)
//	@  start (flatland)       *  forest   (cost 2)
//	X  end   (flatland)       ^  mountain (cost 3)
//
// Lines end with CRLF. "\r" advances the row; "\n" advances it too unless it
// directly follows "\r", so "\r\n", "\r" and "\n" each end exactly one line.
// The map is N×N where N is the number of lines.
//
// Parsing runs in two passes: CountLines sizes the grid, then the character
// pass fills it. Every other character stops parsing at that point: the
// partially populated map is returned together with an error wrapping
// ErrMalformedInput, so callers can still inspect what was read.
//
// Errors:
//
//   - ErrEmptyMap:        the input has no lines.
//   - ErrMalformedInput:  unknown character, or a cell beyond the N×N grid.
//   - ErrDuplicateMarker: a second "@" or "X".
//   - ErrIO:              the source could not be opened or read.
//
// Format writes a map back in the same alphabet with CRLF terminators, so
// Parse(Format(m)) reproduces m.
package mapfile
