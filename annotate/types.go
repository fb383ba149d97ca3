package annotate

import "errors"

// Sentinel errors.
var (
	// ErrNilInput indicates a nil map or search result.
	ErrNilInput = errors.New("annotate: map and result must be non-nil")

	// ErrNoPath indicates that the end cell was never closed.
	ErrNoPath = errors.New("annotate: no path to the end cell")

	// ErrCorruptPath indicates a parent chain that dangles or loops.
	ErrCorruptPath = errors.New("annotate: parent chain does not reach the start")

	// ErrLayout indicates a map file whose bytes do not follow the
	// N×N-with-CRLF layout that Offset assumes.
	ErrLayout = errors.New("annotate: file is not an N×N CRLF map")

	// ErrIO wraps file system failures.
	ErrIO = errors.New("annotate: i/o failure")
)

// PathMarker overwrites the map character of every marked path cell.
const PathMarker byte = '#'

// terminatorLen is the width of the "\r\n" row terminator.
const terminatorLen = 2
