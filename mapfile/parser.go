package mapfile

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/wayfinder/terrain"
)

// Parse reads a whole map from r.
//
// Steps:
//  1. Buffer the input and count its lines (N).
//  2. Allocate an N×N terrain.Map.
//  3. Walk the characters, placing cells and recording the endpoints.
//
// On ErrMalformedInput and ErrDuplicateMarker the partially populated map is
// returned alongside the error. Other errors return a nil map.
func Parse(r io.Reader, opts ...Option) (*terrain.Map, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIO, err)
	}
	n, err := CountLines(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	return parseStream(n, bufio.NewReader(bytes.NewReader(data)), opts)
}

// ParseFile parses the map stored at name. The file is opened once for the
// line count and once for the character pass; each handle is closed before
// the function moves on.
func ParseFile(name string, opts ...Option) (*terrain.Map, error) {
	n, err := countFileLines(name)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIO, err)
	}
	defer f.Close()

	return parseStream(n, bufio.NewReader(f), opts)
}

func countFileLines(name string) (int, error) {
	f, err := os.Open(name)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrIO, err)
	}
	defer f.Close()

	return CountLines(f)
}

// parseStream allocates an n×n map and fills it from br.
func parseStream(n int, br io.ByteReader, opts []Option) (*terrain.Map, error) {
	if n == 0 {
		return nil, ErrEmptyMap
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	m, err := terrain.NewMap(n, terrain.WithHeuristic(cfg.Heuristic))
	if err != nil {
		return nil, err
	}

	p := &parser{m: m}
	if err := p.run(br); err != nil {
		if errors.Is(err, ErrIO) {
			return nil, err
		}
		return m, err
	}

	return m, nil
}

// parser holds the cursor of the character pass.
type parser struct {
	m        *terrain.Map
	row, col int
	prev     byte
}

// run consumes br until EOF or the first error.
func (p *parser) run(br io.ByteReader) error {
	for {
		ch, err := br.ReadByte()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("%w: %v", ErrIO, err)
		}
		if err := p.consume(ch); err != nil {
			return err
		}
		p.prev = ch
	}
}

// consume applies one character to the map.
func (p *parser) consume(ch byte) error {
	switch ch {
	case '\r':
		p.row++
		p.col = 0
		return nil
	case '\n':
		p.col = 0
		if p.prev != '\r' {
			p.row++
		}
		return nil
	}

	kind, ok := kindOf(ch)
	if !ok {
		return fmt.Errorf("%w: unexpected %q at row %d, column %d", ErrMalformedInput, ch, p.row, p.col)
	}
	at := terrain.Coord{Row: p.row, Col: p.col}
	if !p.m.InBounds(at) {
		return fmt.Errorf("%w: cell %s outside the %dx%d grid", ErrMalformedInput, at, p.m.Dim(), p.m.Dim())
	}
	if err := p.m.SetCell(at, kind); err != nil {
		return err
	}

	switch ch {
	case StartMarker:
		if s, set := p.m.Start(); set {
			return fmt.Errorf("%w: start at %s and %s", ErrDuplicateMarker, s, at)
		}
		if err := p.m.SetStartCell(at); err != nil {
			return err
		}
	case EndMarker:
		if e, set := p.m.End(); set {
			return fmt.Errorf("%w: end at %s and %s", ErrDuplicateMarker, e, at)
		}
		if err := p.m.SetEndCell(at); err != nil {
			return err
		}
	}
	p.col++

	return nil
}

// kindOf maps a map character to its terrain kind.
func kindOf(ch byte) (terrain.Kind, bool) {
	switch ch {
	case WaterMarker:
		return terrain.Water, true
	case StartMarker, EndMarker, FlatlandMarker:
		return terrain.Flatland, true
	case ForestMarker:
		return terrain.Forest, true
	case MountainMarker:
		return terrain.Mountain, true
	default:
		return 0, false
	}
}
