package annotate

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/katalvlaran/wayfinder/terrain"
)

// GeoJSON encodes path (end first, as returned by Reconstruct) as a feature
// collection in grid space: x is the column, y the row.
//
// Features, in order:
//  1. "route": a LineString from start to end, or a Point when the path has
//     a single cell. Properties: cost, dimension, cells.
//  2. "start" and "end": Points.
func GeoJSON(m *terrain.Map, path []terrain.Coord) ([]byte, error) {
	if m == nil {
		return nil, ErrNilInput
	}
	if len(path) == 0 {
		return nil, ErrNoPath
	}

	route := make(orb.LineString, 0, len(path))
	for _, c := range Reverse(path) {
		route = append(route, point(c))
	}

	cost := 0
	if cell, ok := m.At(path[0]); ok {
		cost = cell.Cost()
	}

	var geom orb.Geometry = route
	if len(route) == 1 {
		geom = route[0]
	}
	line := geojson.NewFeature(geom)
	line.Properties["role"] = "route"
	line.Properties["cost"] = cost
	line.Properties["dimension"] = m.Dim()
	line.Properties["cells"] = len(path)

	start := geojson.NewFeature(point(path[len(path)-1]))
	start.Properties["role"] = "start"
	end := geojson.NewFeature(point(path[0]))
	end.Properties["role"] = "end"

	fc := geojson.NewFeatureCollection()
	fc.Append(line).Append(start).Append(end)
	fc.BBox = geojson.NewBBox(route.Bound())

	data, err := fc.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("annotate: encode geojson: %w", err)
	}

	return data, nil
}

func point(c terrain.Coord) orb.Point {
	return orb.Point{float64(c.Col), float64(c.Row)}
}
