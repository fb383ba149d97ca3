package render

import (
	"errors"
	"image/color"
)

// ErrBadScale indicates a non-positive cell size.
var ErrBadScale = errors.New("render: scale must be positive")

// ErrNilMap indicates that PNG received a nil map.
var ErrNilMap = errors.New("render: map is nil")

// DefaultScale is the side of one cell in pixels.
const DefaultScale = 8

// Caption band below the map.
const (
	CaptionHeight   = 20
	captionFontSize = 12
	captionMargin   = 4
)

// Palette.
var (
	WaterColor    = color.RGBA{R: 66, G: 135, B: 245, A: 255}
	FlatlandColor = color.RGBA{R: 222, G: 214, B: 170, A: 255}
	ForestColor   = color.RGBA{R: 46, G: 125, B: 50, A: 255}
	MountainColor = color.RGBA{R: 121, G: 85, B: 72, A: 255}
	PathTint      = color.RGBA{R: 255, G: 235, B: 59, A: 140}
	RouteColor    = color.RGBA{A: 255}
	StartColor    = color.RGBA{G: 200, A: 255}
	EndColor      = color.RGBA{R: 220, A: 255}
	CaptionColor  = color.RGBA{A: 255}
	BandColor     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// Options configures rendering.
//
// Scale   – side of one cell in pixels.
// Caption – text for a CaptionHeight band under the map; "" = no band.
type Options struct {
	Scale   int
	Caption string
}

// Option represents a functional option for PNG.
type Option func(*Options)

// WithScale sets the side of one cell in pixels.
func WithScale(px int) Option {
	return func(o *Options) {
		o.Scale = px
	}
}

// WithCaption adds a text band under the map.
func WithCaption(text string) Option {
	return func(o *Options) {
		o.Caption = text
	}
}

// DefaultOptions returns Options with DefaultScale.
func DefaultOptions() Options {
	return Options{Scale: DefaultScale}
}
