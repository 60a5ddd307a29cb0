package palette

import (
	"bytes"
	"image/color"
	"testing"

	"github.com/cockroachdb/errors"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    color.RGBA
		wantErr bool
	}{
		{"long form", "#ff8000", color.RGBA{R: 0xFF, G: 0x80, A: 0xFF}, false},
		{"upper case", "#00FF0A", color.RGBA{G: 0xFF, B: 0x0A, A: 0xFF}, false},
		{"short form", "#0fa", color.RGBA{G: 0xFF, B: 0xAA, A: 0xFF}, false},
		{"black", "#000000", color.RGBA{A: 0xFF}, false},
		{"missing hash", "ff8000", color.RGBA{}, true},
		{"too short", "#ff80", color.RGBA{}, true},
		{"too long", "#ff800000", color.RGBA{}, true},
		{"not hex", "#gg0000", color.RGBA{}, true},
		{"signed", "#+f0000", color.RGBA{}, true},
		{"empty", "", color.RGBA{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHex(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseHex(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, ErrInvalidColorFormat) {
					t.Errorf("ParseHex(%q) error = %v, want ErrInvalidColorFormat", tt.in, err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParseHex(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestHex(t *testing.T) {
	if got := Hex(color.RGBA{R: 0x12, G: 0xAB, B: 0x0F, A: 0xFF}); got != "#12ab0f" {
		t.Errorf("Hex() = %q, want %q", got, "#12ab0f")
	}
}

func TestAddAssignsIndicesInOrder(t *testing.T) {
	p := New()
	for i, hex := range []string{"#000000", "#ffffff", "#ff0000"} {
		idx, err := p.AddHex(hex)
		if err != nil {
			t.Fatalf("AddHex(%q) error = %v", hex, err)
		}
		if int(idx) != i {
			t.Errorf("AddHex(%q) = %d, want %d", hex, idx, i)
		}
	}

	idx, err := p.AddHex("#FFFFFF")
	if err != nil {
		t.Fatalf("AddHex() error = %v", err)
	}
	if idx != 1 {
		t.Errorf("re-adding a registered color returned %d, want 1", idx)
	}
	if p.Len() != 3 {
		t.Errorf("Len() = %d, want 3", p.Len())
	}
}

func TestAddExhausted(t *testing.T) {
	p := New()
	for i := range MaxColors {
		if _, err := p.Add(color.RGBA{R: uint8(i), G: 1}); err != nil {
			t.Fatalf("Add(#%d) error = %v", i, err)
		}
	}

	// known colors still resolve on a full palette
	if idx, err := p.Add(color.RGBA{R: 7, G: 1}); err != nil || idx != 7 {
		t.Errorf("Add(existing) = %d, %v, want 7, nil", idx, err)
	}

	_, err := p.Add(color.RGBA{R: 1, G: 2})
	if !errors.Is(err, ErrExhausted) {
		t.Errorf("Add(257th) error = %v, want ErrExhausted", err)
	}
	if p.Len() != MaxColors {
		t.Errorf("Len() = %d after failed add, want %d", p.Len(), MaxColors)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	p := New()
	if _, err := p.AddHex("#102030"); err != nil {
		t.Fatal(err)
	}

	c := p.Clone()
	if _, err := c.AddHex("#405060"); err != nil {
		t.Fatal(err)
	}

	if p.Len() != 1 {
		t.Errorf("original Len() = %d, want 1", p.Len())
	}
	if _, ok := p.Index(color.RGBA{R: 0x40, G: 0x50, B: 0x60}); ok {
		t.Error("color added to clone is visible in the original")
	}
	if c.Len() != 2 {
		t.Errorf("clone Len() = %d, want 2", c.Len())
	}
}

func TestZeroValuePalette(t *testing.T) {
	var p Palette
	idx, err := p.Add(color.RGBA{R: 1})
	if err != nil || idx != 0 {
		t.Fatalf("Add() on zero value = %d, %v", idx, err)
	}
	if got := p.At(0); got != (color.RGBA{R: 1, A: 0xFF}) {
		t.Errorf("At(0) = %v", got)
	}
}

func TestCycle(t *testing.T) {
	n := len(Series)
	for i := range 2 * n {
		if got := Cycle(nil, i); got != Series[i%n] {
			t.Errorf("Cycle(nil, %d) = %v, want %v", i, got, Series[i%n])
		}
	}

	custom := []color.RGBA{{R: 1}, {R: 2}}
	if got := Cycle(custom, 3); got != custom[1] {
		t.Errorf("Cycle(custom, 3) = %v, want %v", got, custom[1])
	}
}

func TestSeriesHasNoBlack(t *testing.T) {
	for i, c := range Series {
		if c.R == 0 && c.G == 0 && c.B == 0 {
			t.Errorf("Series[%d] is black, invisible on the default background", i)
		}
	}
}

func TestPALRoundTrip(t *testing.T) {
	pal := color.Palette{
		color.RGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xFF},
		color.RGBA{R: 0xFF, A: 0xFF},
		color.RGBA{B: 0xFF, A: 0xFF},
	}

	var buf bytes.Buffer
	n, err := WritePAL(&buf, pal)
	if err != nil {
		t.Fatalf("WritePAL() error = %v", err)
	}
	if want := int64(12 + 8 + 4 + 4*len(pal)); n != want {
		t.Errorf("WritePAL() wrote %d bytes, want %d", n, want)
	}

	got, err := ReadPAL(&buf)
	if err != nil {
		t.Fatalf("ReadPAL() error = %v", err)
	}
	if len(got) != len(pal) {
		t.Fatalf("ReadPAL() returned %d colors, want %d", len(got), len(pal))
	}
	for i := range pal {
		if got[i] != pal[i] {
			t.Errorf("color %d = %v, want %v", i, got[i], pal[i])
		}
	}
}

func TestReadPALRejectsOtherForms(t *testing.T) {
	data := []byte("RIFF\x04\x00\x00\x00WAVE")
	if _, err := ReadPAL(bytes.NewReader(data)); err == nil {
		t.Error("ReadPAL() accepted a WAVE form")
	}
}
