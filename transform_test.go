package colour

import (
	"image"
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

var (
	pxA = color.NRGBA{255, 0, 0, 255}
	pxB = color.NRGBA{0, 255, 0, 255}
	pxC = color.NRGBA{0, 0, 255, 255}
	pxD = color.NRGBA{255, 255, 0, 255}
	pxE = color.NRGBA{255, 0, 255, 255}
	pxF = color.NRGBA{0, 255, 255, 255}
)

// 3 wide by 2 tall:
//
//	A B C
//	D E F
func testGrid() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	for i, c := range []color.NRGBA{pxA, pxB, pxC, pxD, pxE, pxF} {
		img.SetNRGBA(i%3, i/3, c)
	}
	return img
}

func requireGrid(t *testing.T, img *image.NRGBA, w, h int, want []color.NRGBA) {
	t.Helper()
	require.Equal(t, image.Rect(0, 0, w, h), img.Rect)
	got := make([]color.NRGBA, 0, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			got = append(got, img.NRGBAAt(x, y))
		}
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("pixel grid mismatch (-want +got):\n%s", diff)
	}
}

func TestFlipH(t *testing.T) {
	requireGrid(t, FlipH(testGrid()), 3, 2, []color.NRGBA{
		pxC, pxB, pxA,
		pxF, pxE, pxD,
	})
}

func TestFlipV(t *testing.T) {
	requireGrid(t, FlipV(testGrid()), 3, 2, []color.NRGBA{
		pxD, pxE, pxF,
		pxA, pxB, pxC,
	})
}

func TestRotate90(t *testing.T) {
	// counter-clockwise: the right column becomes the top row
	requireGrid(t, Rotate90(testGrid()), 2, 3, []color.NRGBA{
		pxC, pxF,
		pxB, pxE,
		pxA, pxD,
	})
}

func TestRotate180(t *testing.T) {
	requireGrid(t, Rotate180(testGrid()), 3, 2, []color.NRGBA{
		pxF, pxE, pxD,
		pxC, pxB, pxA,
	})
}

func TestRotate270(t *testing.T) {
	requireGrid(t, Rotate270(testGrid()), 2, 3, []color.NRGBA{
		pxD, pxA,
		pxE, pxB,
		pxF, pxC,
	})
}

func TestTranspose(t *testing.T) {
	requireGrid(t, Transpose(testGrid()), 2, 3, []color.NRGBA{
		pxA, pxD,
		pxB, pxE,
		pxC, pxF,
	})
}

func TestTransverse(t *testing.T) {
	requireGrid(t, Transverse(testGrid()), 2, 3, []color.NRGBA{
		pxF, pxC,
		pxE, pxB,
		pxD, pxA,
	})
}

func TestRotate90TwiceIsRotate180(t *testing.T) {
	twice := Rotate90(Rotate90(testGrid()))
	once := Rotate180(testGrid())
	if diff := cmp.Diff(once.Pix, twice.Pix); diff != "" {
		t.Fatalf("double quarter turn differs from half turn (-want +got):\n%s", diff)
	}
}
