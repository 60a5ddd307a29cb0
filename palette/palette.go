// Package palette assigns small integer indices to the colors of an
// indexed image and reads and writes RIFF PAL palette files.
package palette

import (
	"image/color"
	"maps"
	"slices"

	"github.com/cockroachdb/errors"
)

// MaxColors is the number of entries an 8-bit color table can hold.
const MaxColors = 256

// ErrExhausted is returned when a palette already holds MaxColors colors.
var ErrExhausted = errors.New("palette exhausted")

// Palette maps colors to indices in insertion order. Adding a color that is
// already present returns its existing index. The zero value is empty and
// ready to use.
type Palette struct {
	colors []color.RGBA
	index  map[color.RGBA]uint8
}

// New returns an empty palette.
func New() *Palette {
	return &Palette{}
}

// Add registers c and returns its index.
func (p *Palette) Add(c color.RGBA) (uint8, error) {
	c.A = 0xFF
	if idx, ok := p.index[c]; ok {
		return idx, nil
	}
	if len(p.colors) >= MaxColors {
		return 0, errors.Wrapf(ErrExhausted, "cannot add %s to %d colors", Hex(c), len(p.colors))
	}

	if p.index == nil {
		p.index = make(map[color.RGBA]uint8)
	}
	idx := uint8(len(p.colors))
	p.colors = append(p.colors, c)
	p.index[c] = idx
	return idx, nil
}

// AddHex parses s with ParseHex and registers the result.
func (p *Palette) AddHex(s string) (uint8, error) {
	c, err := ParseHex(s)
	if err != nil {
		return 0, err
	}
	return p.Add(c)
}

// Index reports the index of c, if registered.
func (p *Palette) Index(c color.RGBA) (uint8, bool) {
	c.A = 0xFF
	idx, ok := p.index[c]
	return idx, ok
}

// Len returns the number of registered colors.
func (p *Palette) Len() int {
	return len(p.colors)
}

// At returns the color at index i.
func (p *Palette) At(i uint8) color.RGBA {
	return p.colors[i]
}

// Colors returns the registered colors in index order as a fresh slice.
func (p *Palette) Colors() color.Palette {
	pal := make(color.Palette, len(p.colors))
	for i, c := range p.colors {
		pal[i] = c
	}
	return pal
}

// Clone returns an independent copy of p.
func (p *Palette) Clone() *Palette {
	return &Palette{
		colors: slices.Clone(p.colors),
		index:  maps.Clone(p.index),
	}
}
