package chart

import "image"

// Image returns the rendered chart as a top-down paletted image for the
// standard image encoders. The buffer is flipped vertically so that the
// image looks the same as the bitmap does in a viewer.
func (c *Chart) Image() (*image.Paletted, error) {
	if c.state != Rendered {
		return nil, ErrNotRendered
	}
	img := image.NewPaletted(c.Bounds(), c.pal.Colors())
	for y := range c.height {
		src := c.pix[y*c.width : (y+1)*c.width]
		dst := img.Pix[(c.height-1-y)*img.Stride:]
		copy(dst[:c.width], src)
	}
	return img, nil
}
