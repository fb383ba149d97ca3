// Package render draws a terrain map and an optional path as a PNG image.
//
// Every cell becomes a Scale×Scale square coloured by kind (water, flatland,
// forest, mountain). Path cells are tinted, the route is drawn as a
// polyline through the cell centres, and the start and end get discs.
//
// Options:
//
//   - WithScale(px): side of one cell in pixels (default 8). Values ≤ 0 make
//     PNG return ErrBadScale.
//   - WithCaption(text): adds a CaptionHeight band under the map with text
//     set in the Go font.
//
// Without a caption the image is Dim*Scale pixels square; large maps with a large scale can
// need a lot of memory.
package render
