package mapfile

import (
	"bytes"

	"github.com/katalvlaran/wayfinder/terrain"
)

// Format writes m in the map alphabet, one CRLF-terminated line per row.
// Byte offsets of the output follow row*(N+2)+col.
func Format(m *terrain.Map) []byte {
	n := m.Dim()
	var buf bytes.Buffer
	buf.Grow(n * (n + len(LineTerminator)))

	start, hasStart := m.Start()
	end, hasEnd := m.End()
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			at := terrain.Coord{Row: r, Col: c}
			cell, ok := m.At(at)
			switch {
			case !ok:
				buf.WriteByte(WaterMarker)
			case hasStart && at == start:
				buf.WriteByte(StartMarker)
			case hasEnd && at == end:
				buf.WriteByte(EndMarker)
			default:
				buf.WriteByte(markerOf(cell.Kind))
			}
		}
		buf.WriteString(LineTerminator)
	}

	return buf.Bytes()
}

func markerOf(k terrain.Kind) byte {
	switch k {
	case terrain.Forest:
		return ForestMarker
	case terrain.Mountain:
		return MountainMarker
	case terrain.Flatland:
		return FlatlandMarker
	default:
		return WaterMarker
	}
}
