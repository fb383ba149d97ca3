package terrain

import (
	"github.com/dhconnelly/rtreego"
)

// WaterBody is one 8-connected component of impassable positions.
// Cells holds row-major indices in BFS order; Min and Max bound the
// component inclusively.
type WaterBody struct {
	Cells    []int
	Min, Max Coord
}

// Overlaps reports whether the body's bounding box shares at least one grid
// position with the inclusive rectangle [a, b].
func (wb WaterBody) Overlaps(a, b Coord) bool {
	lo, hi := span(a, b)
	return wb.Min.Row <= hi.Row && lo.Row <= wb.Max.Row &&
		wb.Min.Col <= hi.Col && lo.Col <= wb.Max.Col
}

// WaterBodies finds all contiguous regions of impassable positions using
// 8-connectivity.
// Time:   O(N²·8).
// Memory: O(N²) for visited flags and output.
func (m *Map) WaterBodies() []WaterBody {
	seen := make([]bool, len(m.cells))
	var bodies []WaterBody

	for i0, cell := range m.cells {
		if cell != nil || seen[i0] {
			continue
		}
		// BFS to collect component
		queue := []int{i0}
		seen[i0] = true
		first := m.Coordinate(i0)
		body := WaterBody{Min: first, Max: first}

		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			body.Cells = append(body.Cells, u)
			at := m.Coordinate(u)
			body.Min = Coord{Row: min(body.Min.Row, at.Row), Col: min(body.Min.Col, at.Col)}
			body.Max = Coord{Row: max(body.Max.Row, at.Row), Col: max(body.Max.Col, at.Col)}
			for _, d := range Neighbors8 {
				next := at.Add(d)
				if !m.InBounds(next) {
					continue
				}
				vi := m.Index(next)
				if m.cells[vi] == nil && !seen[vi] {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}
		bodies = append(bodies, body)
	}

	return bodies
}

// waterEntry wraps a water body for R-tree storage.
type waterEntry struct {
	body WaterBody
	bbox rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (e *waterEntry) Bounds() rtreego.Rect {
	return e.bbox
}

// WaterIndex answers region queries over the water bodies of a map.
type WaterIndex struct {
	tree *rtreego.Rtree
}

// NewWaterIndex builds an R-tree over the bounding boxes of m's water
// bodies. Each grid position is a unit square, so a body spanning rows
// r0..r1 occupies [r0, r1+1) on the row axis.
func NewWaterIndex(m *Map) (*WaterIndex, error) {
	tree := rtreego.NewTree(2, 25, 50) // 2D, min 25, max 50 entries per node
	for _, body := range m.WaterBodies() {
		bbox, err := cellRect(body.Min, body.Max)
		if err != nil {
			return nil, err
		}
		tree.Insert(&waterEntry{body: body, bbox: bbox})
	}

	return &WaterIndex{tree: tree}, nil
}

// Len returns the number of indexed water bodies.
func (wi *WaterIndex) Len() int {
	return wi.tree.Size()
}

// QueryRegion returns the water bodies whose bounding boxes overlap the
// inclusive rectangle spanned by a and b (in any corner order).
func (wi *WaterIndex) QueryRegion(a, b Coord) []WaterBody {
	lo, hi := span(a, b)
	bbox, err := cellRect(lo, hi)
	if err != nil {
		return nil
	}

	results := wi.tree.SearchIntersect(bbox)
	bodies := make([]WaterBody, 0, len(results))
	for _, item := range results {
		body := item.(*waterEntry).body
		// Boxes that merely touch share no cell.
		if body.Overlaps(lo, hi) {
			bodies = append(bodies, body)
		}
	}

	return bodies
}

// cellRect converts the inclusive cell range [lo, hi] into an R-tree
// rectangle with unit-square cells.
func cellRect(lo, hi Coord) (rtreego.Rect, error) {
	return rtreego.NewRect(
		rtreego.Point{float64(lo.Row), float64(lo.Col)},
		[]float64{float64(hi.Row - lo.Row + 1), float64(hi.Col - lo.Col + 1)},
	)
}

func span(a, b Coord) (lo, hi Coord) {
	lo = Coord{Row: min(a.Row, b.Row), Col: min(a.Col, b.Col)}
	hi = Coord{Row: max(a.Row, b.Row), Col: max(a.Col, b.Col)}
	return lo, hi
}
