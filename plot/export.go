package plot

import (
	"image"
	"image/gif"
	"image/png"
	"io"
	"sync"

	"bmpchart/chart"

	"github.com/cockroachdb/errors"
	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"
)

// export encodes c to w in format, scaled up by factor.
func export(w io.Writer, c *chart.Chart, format string, factor int) error {
	if format == "bmp" {
		return c.Encode(w)
	}

	img, err := c.Image()
	if err != nil {
		return err
	}
	img = upscale(img, factor)

	switch format {
	case "bmp-std":
		err = bmp.Encode(w, img)
	case "png":
		enc := png.Encoder{
			CompressionLevel: png.BestCompression,
			BufferPool:       pngPool,
		}
		err = enc.Encode(w, img)
	case "gif":
		err = gif.Encode(w, img, &gif.Options{NumColors: len(img.Palette)})
	case "tiff":
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return errors.Wrapf(ErrInvalidJob, "unsupported output format %q", format)
	}
	if err != nil {
		return errors.Wrapf(err, "could not encode %s", format)
	}
	return nil
}

// upscale enlarges img by an integer factor keeping hard pixel edges.
func upscale(img *image.Paletted, factor int) *image.Paletted {
	if factor <= 1 {
		return img
	}
	b := img.Bounds()
	dst := image.NewPaletted(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor), img.Palette)
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

type pngEncoderBufferPool struct {
	pool sync.Pool
}

func (p *pngEncoderBufferPool) Get() *png.EncoderBuffer {
	return p.pool.Get().(*png.EncoderBuffer)
}

func (p *pngEncoderBufferPool) Put(buf *png.EncoderBuffer) {
	p.pool.Put(buf)
}

var pngPool = &pngEncoderBufferPool{
	pool: sync.Pool{
		New: func() any {
			return &png.EncoderBuffer{}
		},
	},
}
