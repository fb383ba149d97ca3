package mapfile

import (
	"errors"

	"github.com/katalvlaran/wayfinder/terrain"
)

// Sentinel errors returned by the parser.
var (
	// ErrEmptyMap indicates input without any line.
	ErrEmptyMap = errors.New("mapfile: map has no lines")

	// ErrMalformedInput indicates an unknown character or a cell that does not
	// fit into the N×N grid. Parsing stops at the offending character.
	ErrMalformedInput = errors.New("mapfile: malformed map")

	// ErrDuplicateMarker indicates a second start or end marker.
	ErrDuplicateMarker = errors.New("mapfile: duplicate endpoint marker")

	// ErrIO indicates that the map source could not be opened or read.
	ErrIO = errors.New("mapfile: i/o failure")
)

// Map alphabet.
const (
	WaterMarker    = '~'
	StartMarker    = '@'
	EndMarker      = 'X'
	FlatlandMarker = '.'
	ForestMarker   = '*'
	MountainMarker = '^'
)

// LineTerminator ends every line written by Format.
const LineTerminator = "\r\n"

// maxLineBytes bounds a single line during the line-count pass.
const maxLineBytes = 1 << 24

// Options configures parsing.
//
// Heuristic – heuristic attached to the produced map. Default terrain.Manhattan.
type Options struct {
	Heuristic terrain.Heuristic
}

// Option represents a functional option for configuring the parser.
type Option func(*Options)

// WithHeuristic selects the heuristic of the produced map.
func WithHeuristic(h terrain.Heuristic) Option {
	return func(o *Options) {
		if h != nil {
			o.Heuristic = h
		}
	}
}

// DefaultOptions returns Options with Heuristic=terrain.Manhattan.
func DefaultOptions() Options {
	return Options{Heuristic: terrain.Manhattan}
}
