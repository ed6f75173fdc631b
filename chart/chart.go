// Package chart reads colour rendition charts out of photographs and matches
// two readings of the same chart against each other.
package chart

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/kovidgoyal/go-parallel"
	"gonum.org/v1/gonum/mat"

	"github.com/Ssuyk/colour"
)

// Layout describes the patch grid of a chart photograph. The photograph is
// expected to be cropped to the patch area, one rectangular cell per patch.
type Layout struct {
	Rows, Cols int
	// Inset is the fraction of each cell skipped on every side before
	// averaging, keeping patch borders and the chart frame out of the
	// measurement.
	Inset float64
}

// Classic is the 24 patch ColorChecker layout.
var Classic = Layout{Rows: 4, Cols: 6, Inset: 0.25}

// Patches returns the number of patches in the layout.
func (l Layout) Patches() int { return l.Rows * l.Cols }

var ErrBadLayout = errors.New("chart: invalid chart layout")

func (l Layout) validate(b image.Rectangle) error {
	if l.Rows <= 0 || l.Cols <= 0 {
		return fmt.Errorf("%w: %dx%d grid", ErrBadLayout, l.Rows, l.Cols)
	}
	if l.Inset < 0 || l.Inset >= 0.5 {
		return fmt.Errorf("%w: inset %v outside [0, 0.5)", ErrBadLayout, l.Inset)
	}
	if b.Dx() < l.Cols || b.Dy() < l.Rows {
		return fmt.Errorf("%w: %dx%d image too small for a %dx%d grid", ErrBadLayout, b.Dx(), b.Dy(), l.Rows, l.Cols)
	}
	return nil
}

// Measure averages the central region of every patch cell and returns the
// readings as an n x 3 sample matrix in reading order (left to right, top to
// bottom), channels normalised to [0, 1].
func Measure(img image.Image, l Layout) (*mat.Dense, error) {
	b := img.Bounds()
	if err := l.validate(b); err != nil {
		return nil, err
	}
	cw := float64(b.Dx()) / float64(l.Cols)
	ch := float64(b.Dy()) / float64(l.Rows)
	ans := mat.NewDense(l.Patches(), 3, nil)
	f := func(start, limit int) {
		for p := start; p < limit; p++ {
			row, col := p/l.Cols, p%l.Cols
			x0 := b.Min.X + int(cw*(float64(col)+l.Inset)+0.5)
			x1 := b.Min.X + int(cw*(float64(col)+1-l.Inset)+0.5)
			y0 := b.Min.Y + int(ch*(float64(row)+l.Inset)+0.5)
			y1 := b.Min.Y + int(ch*(float64(row)+1-l.Inset)+0.5)
			if x1 <= x0 {
				x1 = x0 + 1
			}
			if y1 <= y0 {
				y1 = y0 + 1
			}
			var rs, gs, bs float64
			for y := y0; y < y1; y++ {
				for x := x0; x < x1; x++ {
					r, g, bl, _ := img.At(x, y).RGBA()
					rs += float64(r)
					gs += float64(g)
					bs += float64(bl)
				}
			}
			n := float64((x1 - x0) * (y1 - y0) * 0xffff)
			ans.Set(p, 0, rs/n)
			ans.Set(p, 1, gs/n)
			ans.Set(p, 2, bs/n)
		}
	}
	if err := parallel.Run_in_parallel_over_range(0, f, 0, l.Patches()); err != nil {
		return nil, err
	}
	return ans, nil
}

// Match measures both chart photographs with the same layout and fits the
// candidate reading onto the reference reading.
func Match(reference, candidate image.Image, l Layout) (colour.Matrix3, error) {
	ref, err := Measure(reference, l)
	if err != nil {
		return colour.Matrix3{}, err
	}
	cand, err := Measure(candidate, l)
	if err != nil {
		return colour.Matrix3{}, err
	}
	return colour.FirstOrderFit(ref, cand)
}

// Patch is one chart field with its conventional name and nominal sRGB value.
type Patch struct {
	Name string
	SRGB color.NRGBA
}

// ClassicPatches lists the 24 fields of the classic ColorChecker in reading
// order, with the commonly published nominal sRGB values.
var ClassicPatches = []Patch{
	{"dark skin", color.NRGBA{0x73, 0x52, 0x44, 0xff}},
	{"light skin", color.NRGBA{0xc2, 0x96, 0x82, 0xff}},
	{"blue sky", color.NRGBA{0x62, 0x7a, 0x9d, 0xff}},
	{"foliage", color.NRGBA{0x57, 0x6c, 0x43, 0xff}},
	{"blue flower", color.NRGBA{0x85, 0x80, 0xb1, 0xff}},
	{"bluish green", color.NRGBA{0x67, 0xbd, 0xaa, 0xff}},
	{"orange", color.NRGBA{0xd6, 0x7e, 0x2c, 0xff}},
	{"purplish blue", color.NRGBA{0x50, 0x5b, 0xa6, 0xff}},
	{"moderate red", color.NRGBA{0xc1, 0x5a, 0x63, 0xff}},
	{"purple", color.NRGBA{0x5e, 0x3c, 0x6c, 0xff}},
	{"yellow green", color.NRGBA{0x9d, 0xbc, 0x40, 0xff}},
	{"orange yellow", color.NRGBA{0xe0, 0xa3, 0x2e, 0xff}},
	{"blue", color.NRGBA{0x38, 0x3d, 0x96, 0xff}},
	{"green", color.NRGBA{0x46, 0x94, 0x49, 0xff}},
	{"red", color.NRGBA{0xaf, 0x36, 0x3c, 0xff}},
	{"yellow", color.NRGBA{0xe7, 0xc7, 0x1f, 0xff}},
	{"magenta", color.NRGBA{0xbb, 0x56, 0x95, 0xff}},
	{"cyan", color.NRGBA{0x08, 0x85, 0xa1, 0xff}},
	{"white", color.NRGBA{0xf3, 0xf3, 0xf2, 0xff}},
	{"neutral 8", color.NRGBA{0xc8, 0xc8, 0xc8, 0xff}},
	{"neutral 6.5", color.NRGBA{0xa0, 0xa0, 0xa4, 0xff}},
	{"neutral 5", color.NRGBA{0x7a, 0x7a, 0x79, 0xff}},
	{"neutral 3.5", color.NRGBA{0x55, 0x55, 0x55, 0xff}},
	{"black", color.NRGBA{0x34, 0x34, 0x34, 0xff}},
}
