package render

import (
	"fmt"
	"image/color"
	"io"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"github.com/zyedidia/generic/mapset"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/katalvlaran/wayfinder/terrain"
)

// PNG encodes m as a PNG image to w. path may be empty; when given it is
// ordered end first, as returned by annotate.Reconstruct.
func PNG(w io.Writer, m *terrain.Map, path []terrain.Coord, opts ...Option) error {
	dc, err := draw(m, path, opts)
	if err != nil {
		return err
	}
	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("render: encode: %w", err)
	}

	return nil
}

// SavePNG writes the image to the file name.
func SavePNG(name string, m *terrain.Map, path []terrain.Coord, opts ...Option) error {
	dc, err := draw(m, path, opts)
	if err != nil {
		return err
	}
	if err := dc.SavePNG(name); err != nil {
		return fmt.Errorf("render: save %s: %w", name, err)
	}

	return nil
}

func draw(m *terrain.Map, path []terrain.Coord, opts []Option) (*gg.Context, error) {
	// 1) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Scale <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrBadScale, cfg.Scale)
	}
	if m == nil {
		return nil, ErrNilMap
	}

	scale := float64(cfg.Scale)
	side := m.Dim() * cfg.Scale
	height := side
	if cfg.Caption != "" {
		height += CaptionHeight
	}
	dc := gg.NewContext(side, height)

	onPath := mapset.New[terrain.Coord]()
	for _, c := range path {
		onPath.Put(c)
	}

	// 2) Terrain squares, x = column, y = row
	for r := 0; r < m.Dim(); r++ {
		for c := 0; c < m.Dim(); c++ {
			at := terrain.Coord{Row: r, Col: c}
			x, y := float64(c)*scale, float64(r)*scale
			dc.SetColor(colorOf(m, at))
			dc.DrawRectangle(x, y, scale, scale)
			dc.Fill()
			if onPath.Has(at) {
				dc.SetColor(PathTint)
				dc.DrawRectangle(x, y, scale, scale)
				dc.Fill()
			}
		}
	}

	// 3) Route through the cell centres
	if len(path) > 1 {
		dc.SetColor(RouteColor)
		dc.SetLineWidth(scale / 4)
		first := path[0]
		dc.MoveTo(centre(first, scale))
		for _, c := range path[1:] {
			dc.LineTo(centre(c, scale))
		}
		dc.Stroke()
	}

	// 4) Endpoints
	if start, ok := m.Start(); ok {
		disc(dc, start, scale, StartColor)
	}
	if end, ok := m.End(); ok {
		disc(dc, end, scale, EndColor)
	}

	// 5) Caption band
	if cfg.Caption != "" {
		if err := caption(dc, cfg.Caption, side); err != nil {
			return nil, err
		}
	}

	return dc, nil
}

// caption fills the band under the map and writes text in the Go font.
func caption(dc *gg.Context, text string, top int) error {
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return fmt.Errorf("render: load font: %w", err)
	}
	dc.SetColor(BandColor)
	dc.DrawRectangle(0, float64(top), float64(dc.Width()), CaptionHeight)
	dc.Fill()

	dc.SetFontFace(truetype.NewFace(f, &truetype.Options{Size: captionFontSize}))
	dc.SetColor(CaptionColor)
	dc.DrawStringAnchored(text, captionMargin, float64(top)+CaptionHeight/2, 0, 0.5)

	return nil
}

func colorOf(m *terrain.Map, at terrain.Coord) color.Color {
	cell, ok := m.At(at)
	if !ok {
		return WaterColor
	}
	switch cell.Kind {
	case terrain.Forest:
		return ForestColor
	case terrain.Mountain:
		return MountainColor
	default:
		return FlatlandColor
	}
}

func centre(c terrain.Coord, scale float64) (x, y float64) {
	return float64(c.Col)*scale + scale/2, float64(c.Row)*scale + scale/2
}

func disc(dc *gg.Context, c terrain.Coord, scale float64, col color.Color) {
	x, y := centre(c, scale)
	dc.SetColor(col)
	dc.DrawCircle(x, y, scale/3)
	dc.Fill()
}
