// Package bitmap writes 8-bit indexed BMP files with a version 5 info
// header and a full 256 entry color table.
//
// Pixel rows are written in buffer order with no padding. The first row
// of the buffer is the first row in the file, which readers display at
// the bottom of the image.
package bitmap

import (
	"bytes"
	"encoding/binary"
	"image/color"
	"io"

	"github.com/cockroachdb/errors"
)

const (
	fileHeaderLen = 14
	infoHeaderLen = 124
	tableEntries  = 256
	tableLen      = tableEntries * 4

	// DataOffset is the byte offset of the pixel data in every file.
	DataOffset = fileHeaderLen + infoHeaderLen + tableLen

	signature     = 0x4d42 // "BM"
	bitsPerPixel  = 8
	pixelsPerM    = 3780 // 96 DPI
	intentGraphic = 4    // LCS_GM_IMAGES
)

var (
	// ErrTooManyColors is returned for palettes with more than 256 entries.
	ErrTooManyColors = errors.New("too many colors for an 8-bit bitmap")
	// ErrPixelCount is returned when the pixel buffer does not match the dimensions.
	ErrPixelCount = errors.New("pixel count does not match dimensions")
)

type fileHeader struct {
	Signature uint16
	Length    uint32
	Reserved  uint32
	Offset    uint32
}

type infoHeader struct {
	Size          uint32
	Width         int32
	Height        int32
	Planes        uint16
	BitCount      uint16
	Compression   uint32
	ImageSize     uint32
	XPelsPerMeter int32
	YPelsPerMeter int32
	ColorsUsed    uint32
	Important     uint32
	Masks         [4]uint32 // red, green, blue, alpha
	ColorSpace    uint32
	Endpoints     [36]byte
	Gamma         [3]uint32
	Intent        uint32
	ProfileData   uint32
	ProfileSize   uint32
	Reserved      uint32
}

// Size returns the length in bytes of a width x height file.
func Size(width, height int) int {
	return DataOffset + width*height
}

// Encode writes pix, one palette index per pixel, as a width x height
// bitmap to w.
func Encode(w io.Writer, width, height int, pal color.Palette, pix []uint8) error {
	if len(pal) > tableEntries {
		return errors.Wrapf(ErrTooManyColors, "%d colors", len(pal))
	}
	if width <= 0 || height <= 0 || len(pix) != width*height {
		return errors.Wrapf(ErrPixelCount, "%d pixels for %dx%d", len(pix), width, height)
	}

	fh := fileHeader{
		Signature: signature,
		Length:    uint32(Size(width, height)),
		Offset:    DataOffset,
	}
	ih := infoHeader{
		Size:          infoHeaderLen,
		Width:         int32(width),
		Height:        int32(height),
		Planes:        1,
		BitCount:      bitsPerPixel,
		XPelsPerMeter: pixelsPerM,
		YPelsPerMeter: pixelsPerM,
		ColorsUsed:    uint32(len(pal)),
		Intent:        intentGraphic,
	}

	var table [tableLen]byte
	for i, c := range pal {
		rgba := color.RGBAModel.Convert(c).(color.RGBA)
		table[i*4+0] = rgba.B
		table[i*4+1] = rgba.G
		table[i*4+2] = rgba.R
	}

	for _, v := range []any{fh, ih, table} {
		if err := binary.Write(w, binary.LittleEndian, v); err != nil {
			return errors.Wrap(err, "could not write bitmap header")
		}
	}
	if _, err := w.Write(pix); err != nil {
		return errors.Wrap(err, "could not write bitmap pixels")
	}
	return nil
}

// Marshal returns the encoded bitmap as a byte slice.
func Marshal(width, height int, pal color.Palette, pix []uint8) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(Size(width, height))
	if err := Encode(&buf, width, height, pal, pix); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
