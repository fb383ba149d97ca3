// Package annotate turns a finished search into output: the path as a list
// of coordinates, '#' marks written into a copy of the map file, and a
// GeoJSON export of the route.
//
// Path reconstruction:
//
//   - Reconstruct walks parent links from the end cell back to the start and
//     returns the cells end first. The walk is bounded by the number of grid
//     cells; a longer or dangling chain is ErrCorruptPath.
//   - An end cell the search never closed yields ErrNoPath.
//
// File marking:
//
//   - The map file has N cells per row followed by "\r\n", so cell (r, c)
//     lives at byte Offset = r*(N+2) + c.
//   - Mark writes '#' over every path cell except the end, which keeps its
//     'X'. The start is the last cell of the walk and is marked too. When
//     start and end coincide that single cell is marked.
//   - MarkFile patches the file in place through io.WriterAt; CopyFile and
//     Annotate produce a marked copy and leave the input untouched.
//   - The parser also accepts "\n" or "\r" alone as line ends, but such a
//     file does not match Offset. MarkFile checks the layout first
//     (CheckLayout) and refuses with ErrLayout before writing anything.
//
// GeoJSON:
//
//   - GeoJSON builds a FeatureCollection with the route (x = column,
//     y = row) from start to end and one point feature per endpoint.
//
// Errors (sentinel):
//
//   - ErrNilInput:    a nil map or result.
//   - ErrNoPath:      the end was never reached.
//   - ErrCorruptPath: the parent chain does not lead back to the start.
//   - ErrLayout:      the file is not N rows of N cells ended by "\r\n".
//   - ErrIO:          opening, copying or writing a file failed.
package annotate
