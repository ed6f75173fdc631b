package colour

import (
	"image"
	"image/draw"

	"github.com/kovidgoyal/go-parallel"
)

func toNRGBA(img image.Image) *image.NRGBA {
	if p, ok := img.(*image.NRGBA); ok && p.Rect.Min == (image.Point{}) {
		return p
	}
	dst := image.NewNRGBA(image.Rect(0, 0, img.Bounds().Dx(), img.Bounds().Dy()))
	draw.Draw(dst, dst.Rect, img, img.Bounds().Min, draw.Src)
	return dst
}

// remap builds a dw x dh image whose pixel at (x, y) is copied from src at
// the offset returned by srcIndex, one row of dst at a time in parallel.
func remap(src *image.NRGBA, dw, dh int, srcIndex func(x, y int) int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, dw, dh))
	f := func(start, limit int) {
		for y := start; y < limit; y++ {
			d := dst.Pix[y*dst.Stride:]
			for x := 0; x < dw; x++ {
				i := srcIndex(x, y)
				copy(d[x*4:x*4+4], src.Pix[i:i+4])
			}
		}
	}
	_ = parallel.Run_in_parallel_over_range(0, f, 0, dh)
	return dst
}

// FlipH returns the image flipped horizontally (left to right).
func FlipH(img image.Image) *image.NRGBA {
	src := toNRGBA(img)
	w, h := src.Rect.Dx(), src.Rect.Dy()
	return remap(src, w, h, func(x, y int) int { return y*src.Stride + (w-1-x)*4 })
}

// FlipV returns the image flipped vertically (top to bottom).
func FlipV(img image.Image) *image.NRGBA {
	src := toNRGBA(img)
	w, h := src.Rect.Dx(), src.Rect.Dy()
	return remap(src, w, h, func(x, y int) int { return (h-1-y)*src.Stride + x*4 })
}

// Rotate90 returns the image rotated 90 degrees counter-clockwise.
func Rotate90(img image.Image) *image.NRGBA {
	src := toNRGBA(img)
	w, h := src.Rect.Dx(), src.Rect.Dy()
	return remap(src, h, w, func(x, y int) int { return x*src.Stride + (w-1-y)*4 })
}

// Rotate180 returns the image rotated 180 degrees.
func Rotate180(img image.Image) *image.NRGBA {
	src := toNRGBA(img)
	w, h := src.Rect.Dx(), src.Rect.Dy()
	return remap(src, w, h, func(x, y int) int { return (h-1-y)*src.Stride + (w-1-x)*4 })
}

// Rotate270 returns the image rotated 270 degrees counter-clockwise.
func Rotate270(img image.Image) *image.NRGBA {
	src := toNRGBA(img)
	w, h := src.Rect.Dx(), src.Rect.Dy()
	return remap(src, h, w, func(x, y int) int { return (h-1-x)*src.Stride + y*4 })
}

// Transpose flips the image horizontally and rotates it 90 degrees
// counter-clockwise.
func Transpose(img image.Image) *image.NRGBA {
	src := toNRGBA(img)
	w, h := src.Rect.Dx(), src.Rect.Dy()
	return remap(src, h, w, func(x, y int) int { return x*src.Stride + y*4 })
}

// Transverse flips the image vertically and rotates it 90 degrees
// counter-clockwise.
func Transverse(img image.Image) *image.NRGBA {
	src := toNRGBA(img)
	w, h := src.Rect.Dx(), src.Rect.Dy()
	return remap(src, h, w, func(x, y int) int { return (h-1-x)*src.Stride + (w-1-y)*4 })
}
