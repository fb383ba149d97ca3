package report

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/wayfinder/annotate"
	"github.com/katalvlaran/wayfinder/mapfile"
	"github.com/katalvlaran/wayfinder/terrain"
)

// Cell labels of the grid and score dumps.
const (
	SourceLabel      = "SO  "
	DestinationLabel = "DE  "
	BlockedLabel     = "BL  "
)

// NoPathMessage is printed when the search could not reach the end.
const NoPathMessage = "No possible path"

// Grid prints the terrain of m before a search.
func Grid(w io.Writer, m *terrain.Map) error {
	start, okS := m.Start()
	end, okE := m.End()

	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "\n Grid: ")
	for r := 0; r < m.Dim(); r++ {
		for c := 0; c < m.Dim(); c++ {
			at := terrain.Coord{Row: r, Col: c}
			switch _, ok := m.At(at); {
			case okS && at == start:
				bw.WriteString(SourceLabel)
			case okE && at == end:
				bw.WriteString(DestinationLabel)
			case ok:
				fmt.Fprintf(bw, "%-3d ", 0)
			default:
				bw.WriteString(BlockedLabel)
			}
		}
		fmt.Fprintln(bw)
	}
	fmt.Fprintln(bw)

	return bw.Flush()
}

// Scores prints the total cost of every cell after a search.
func Scores(w io.Writer, m *terrain.Map) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "\nScores for cells: ")
	for r := 0; r < m.Dim(); r++ {
		for c := 0; c < m.Dim(); c++ {
			if cell, ok := m.At(terrain.Coord{Row: r, Col: c}); ok {
				fmt.Fprintf(bw, "%-3d ", cell.TotalCost())
			} else {
				bw.WriteString(BlockedLabel)
			}
		}
		fmt.Fprintln(bw)
	}
	fmt.Fprintln(bw)

	return bw.Flush()
}

// Path prints the trace of path, which is ordered end first.
func Path(w io.Writer, path []terrain.Coord) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "Path: ")
	for i, c := range path {
		if i > 0 {
			bw.WriteString(" -> ")
		}
		bw.WriteString(c.String())
	}
	fmt.Fprintln(bw)

	return bw.Flush()
}

// NoPath prints NoPathMessage.
func NoPath(w io.Writer) error {
	_, err := fmt.Fprintln(w, NoPathMessage)

	return err
}

// Overlay prints m in the map file alphabet with '#' over every path cell
// except the end, matching what annotate writes into the file copy. Rows end
// in "\n".
func Overlay(w io.Writer, m *terrain.Map, path []terrain.Coord) error {
	onPath := mapset.New[terrain.Coord]()
	for i, c := range path {
		if i == 0 && len(path) > 1 {
			continue
		}
		onPath.Put(c)
	}

	text := mapfile.Format(m)
	onPath.Each(func(c terrain.Coord) {
		if m.InBounds(c) {
			text[annotate.Offset(c, m.Dim())] = annotate.PathMarker
		}
	})
	_, err := w.Write(bytes.ReplaceAll(text, []byte(mapfile.LineTerminator), []byte("\n")))

	return err
}
