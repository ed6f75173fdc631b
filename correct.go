package colour

import (
	"image"
	"image/color"

	"github.com/kovidgoyal/go-parallel"
)

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// CorrectColors applies a fitted correction matrix to every pixel of img,
// with channels normalised to [0, 1] and clamped back into range. Alpha is
// left untouched. The input image is not modified; *image.NRGBA and
// *image.NRGBA64 have fast paths, anything else is rendered into a fresh
// NRGBA image.
func CorrectColors(image_any image.Image, m Matrix3) (ans image.Image, err error) {
	b := image_any.Bounds()
	width, height := b.Dx(), b.Dy()
	if width == 0 || height == 0 {
		return image_any, nil
	}
	var f func(start, limit int)
	switch img := image_any.(type) {
	case *image.NRGBA:
		out := &image.NRGBA{Pix: append([]uint8(nil), img.Pix...), Stride: img.Stride, Rect: img.Rect}
		f = func(start, limit int) {
			for y := start; y < limit; y++ {
				row := out.Pix[out.Stride*y:]
				_ = row[4*(width-1)]
				for range width {
					s := row[0:3:3]
					v := m.Apply(Vec3{float64(s[0]) / 0xff, float64(s[1]) / 0xff, float64(s[2]) / 0xff})
					s[0] = uint8(clamp01(v[0])*0xff + 0.5)
					s[1] = uint8(clamp01(v[1])*0xff + 0.5)
					s[2] = uint8(clamp01(v[2])*0xff + 0.5)
					row = row[4:]
				}
			}
		}
		ans = out
	case *image.NRGBA64:
		out := &image.NRGBA64{Pix: append([]uint8(nil), img.Pix...), Stride: img.Stride, Rect: img.Rect}
		f = func(start, limit int) {
			for y := start; y < limit; y++ {
				row := out.Pix[out.Stride*y:]
				_ = row[8*(width-1)]
				for range width {
					s := row[0:8:8]
					r := uint16(s[0])<<8 | uint16(s[1])
					g := uint16(s[2])<<8 | uint16(s[3])
					bl := uint16(s[4])<<8 | uint16(s[5])
					v := m.Apply(Vec3{float64(r) / 0xffff, float64(g) / 0xffff, float64(bl) / 0xffff})
					r = uint16(clamp01(v[0])*0xffff + 0.5)
					g = uint16(clamp01(v[1])*0xffff + 0.5)
					bl = uint16(clamp01(v[2])*0xffff + 0.5)
					s[0], s[1] = uint8(r>>8), uint8(r)
					s[2], s[3] = uint8(g>>8), uint8(g)
					s[4], s[5] = uint8(bl>>8), uint8(bl)
					row = row[8:]
				}
			}
		}
		ans = out
	default:
		out := image.NewNRGBA(b)
		f = func(start, limit int) {
			for y := start; y < limit; y++ {
				for x := 0; x < width; x++ {
					c := color.NRGBAModel.Convert(image_any.At(x+b.Min.X, y+b.Min.Y)).(color.NRGBA)
					v := m.Apply(Vec3{float64(c.R) / 0xff, float64(c.G) / 0xff, float64(c.B) / 0xff})
					c.R = uint8(clamp01(v[0])*0xff + 0.5)
					c.G = uint8(clamp01(v[1])*0xff + 0.5)
					c.B = uint8(clamp01(v[2])*0xff + 0.5)
					out.SetNRGBA(x+b.Min.X, y+b.Min.Y, c)
				}
			}
		}
		ans = out
	}
	err = parallel.Run_in_parallel_over_range(0, f, 0, height)
	return
}
