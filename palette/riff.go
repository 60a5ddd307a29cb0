package palette

import (
	"encoding/binary"
	"image/color"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"golang.org/x/image/riff"
)

/*
A PAL file is a RIFF form of type "PAL " holding one "data" chunk per palette:

typedef struct tagLOGPALETTE {
  WORD         palVersion;    // 0x0300
  WORD         palNumEntries;
  PALETTEENTRY palPalEntry[1];
} LOGPALETTE;

typedef struct tagPALETTEENTRY {
  BYTE peRed;
  BYTE peGreen;
  BYTE peBlue;
  BYTE peFlags;
} PALETTEENTRY;
*/

const palVersion = 0x0300

var (
	riffType = riff.FourCC{'R', 'I', 'F', 'F'}
	palType  = riff.FourCC{'P', 'A', 'L', ' '}
	dataType = riff.FourCC{'d', 'a', 't', 'a'}
)

// ReadPAL returns the colors of every palette chunk in r, in file order.
func ReadPAL(r io.Reader) ([]color.RGBA, error) {
	formType, rd, err := riff.NewReader(r)
	if err != nil {
		return nil, errors.Wrap(err, "could not open RIFF stream")
	}
	if formType != palType {
		return nil, errors.Newf("unsupported RIFF content type: %q", formType[:])
	}

	return readChunks(rd, "PAL")
}

func readChunks(r *riff.Reader, ident string) ([]color.RGBA, error) {
	var res []color.RGBA
	for n := 0; ; n++ {
		id, size, data, err := r.Next()
		if err == io.EOF {
			return res, nil
		}
		if err != nil {
			return res, errors.Wrapf(err, "could not read chunk %s#%d", ident, n)
		}

		switch id {
		case riff.LIST:
			listType, list, err := riff.NewListReader(size, data)
			if err != nil {
				return res, errors.Wrapf(err, "could not read list %s#%d", ident, n)
			}
			if listType != palType {
				return res, errors.Newf("list %s#%d has unsupported type %q", ident, n, listType[:])
			}
			colors, err := readChunks(list, ident+"."+string(listType[:3]))
			res = append(res, colors...)
			if err != nil {
				return res, err
			}
		case dataType:
			colors, err := readEntries(data)
			if err != nil {
				return res, errors.Wrapf(err, "chunk %s#%d", ident, n)
			}
			res = append(res, colors...)
		default:
			return res, errors.Newf("unsupported chunk type in %s#%d: %q", ident, n, id[:])
		}
	}
}

func readEntries(r io.Reader) ([]color.RGBA, error) {
	var head [4]byte
	if _, err := io.ReadFull(r, head[:]); err != nil {
		return nil, errors.Wrap(err, "could not read palette header")
	}
	if ver := binary.LittleEndian.Uint16(head[0:2]); ver != palVersion {
		return nil, errors.Newf("unsupported palette version 0x%04x", ver)
	}

	count := int(binary.LittleEndian.Uint16(head[2:4]))
	entries := make([]byte, 4*count)
	if _, err := io.ReadFull(r, entries); err != nil {
		return nil, errors.Wrapf(err, "could not read %d palette entries", count)
	}

	res := make([]color.RGBA, count)
	for i := range res {
		e := entries[4*i:]
		res[i] = color.RGBA{R: e[0], G: e[1], B: e[2], A: 0xFF}
	}
	return res, nil
}

// WritePAL writes pal as a single-chunk RIFF PAL stream and returns the
// number of bytes written.
func WritePAL(w io.Writer, pal color.Palette) (int64, error) {
	if len(pal) > 0xFFFF {
		return 0, errors.Newf("palette too large for PAL format: %d colors", len(pal))
	}

	chunkSize := 4 + 4*len(pal) // palVersion + palNumEntries + 4 bytes/color
	buf := make([]byte, 0, 12+8+chunkSize)
	buf = append(buf, riffType[:]...)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(4+8+chunkSize))
	buf = append(buf, palType[:]...)
	buf = append(buf, dataType[:]...)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(chunkSize))
	buf = binary.LittleEndian.AppendUint16(buf, palVersion)
	buf = binary.LittleEndian.AppendUint16(buf, uint16(len(pal)))
	for _, col := range pal {
		c := color.RGBAModel.Convert(col).(color.RGBA)
		buf = append(buf, c.R, c.G, c.B, 0x00)
	}

	n, err := w.Write(buf)
	if err != nil {
		return int64(n), errors.Wrap(err, "could not write palette")
	}
	return int64(n), nil
}

// LoadPAL reads the PAL file at path.
func LoadPAL(path string) ([]color.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not open palette %q", path)
	}
	defer f.Close()

	colors, err := ReadPAL(f)
	if err != nil {
		return nil, errors.Wrapf(err, "could not load palette %q", path)
	}
	return colors, nil
}
