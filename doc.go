// Package wayfinder finds the cheapest route across a square terrain map and
// marks it in the map file.
//
// A map is an N×N grid of characters, one row per line with "\r\n"
// terminators:
//
//	~  water     impassable
//	.  flatland  cost 1
//	*  forest    cost 2
//	^  mountain  cost 3
//	@  start     flatland
//	X  end       flatland
//
// Moving into a cell costs that cell's movement cost; every cell has up to
// eight neighbours, and diagonal steps cost the same as straight ones.
//
// The work is split into subpackages, each usable on its own:
//
//	terrain/   Map, Cell, Kind, heuristics and the water-body R-tree index
//	mapfile/   parse a map file into a terrain.Map and format it back
//	search/    A* over a terrain.Map, writing cost and parent into each cell
//	annotate/  rebuild the route, mark it with '#' in a file, GeoJSON export
//	report/    console dumps of the grid, the scores and the route
//	render/    PNG image of the map and the route
//
// The wayfinder command in cmd/wayfinder wires them together:
//
//	go run ./cmd/wayfinder -map large_map.txt -png route.png
//
// Quick start:
//
//	m, err := mapfile.ParseFile("large_map.txt")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	res, err := search.Run(m)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if res.Found {
//	    path, _ := annotate.Reconstruct(m, res)
//	    report.Path(os.Stdout, path)
//	}
package wayfinder
