package chart

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/Ssuyk/colour"
)

// sRGB (D65) to CIE XYZ.
var xyzFromLinearSRGB = colour.Matrix3{
	{0.4124564, 0.3575761, 0.1804375},
	{0.2126729, 0.7151522, 0.0721750},
	{0.0193339, 0.1191920, 0.9503041},
}

var whiteD65 = colour.Vec3{0.95047, 1.00000, 1.08883}

func srgbToLinear(c float64) float64 {
	if c <= 0.04045 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

func labF(t float64) float64 {
	if t > 216.0/24389.0 {
		return math.Cbrt(t)
	}
	return (24389.0/27.0*t + 16) / 116
}

// srgbToLab converts an sRGB sample in [0, 1] to CIELAB relative to D65.
func srgbToLab(v colour.Vec3) colour.Vec3 {
	lin := colour.Vec3{srgbToLinear(v[0]), srgbToLinear(v[1]), srgbToLinear(v[2])}
	xyz := xyzFromLinearSRGB.Apply(lin)
	fx := labF(xyz[0] / whiteD65[0])
	fy := labF(xyz[1] / whiteD65[1])
	fz := labF(xyz[2] / whiteD65[2])
	return colour.Vec3{116*fy - 16, 500 * (fx - fy), 200 * (fy - fz)}
}

// DeltaE76 is the CIE76 colour difference between two sRGB samples in [0, 1].
func DeltaE76(a, b colour.Vec3) float64 {
	la, lb := srgbToLab(a), srgbToLab(b)
	d0 := la[0] - lb[0]
	d1 := la[1] - lb[1]
	d2 := la[2] - lb[2]
	return math.Sqrt(d0*d0 + d1*d1 + d2*d2)
}

// Residuals reports, patch by patch, the CIE76 difference between the
// reference samples and the candidate samples after correction by m. It is a
// quality measure for a fitted matrix: small values mean the correction maps
// the candidate chart closely onto the reference chart.
func Residuals(reference, candidate mat.Matrix, m colour.Matrix3) ([]float64, error) {
	rr, rc := reference.Dims()
	cr, cc := candidate.Dims()
	if rc != 3 || cc != 3 || rr != cr {
		return nil, fmt.Errorf("%w: reference is %dx%d, candidate is %dx%d", colour.ErrDimensionMismatch, rr, rc, cr, cc)
	}
	ans := make([]float64, rr)
	for i := range ans {
		ref := colour.Vec3{reference.At(i, 0), reference.At(i, 1), reference.At(i, 2)}
		got := m.Apply(colour.Vec3{candidate.At(i, 0), candidate.At(i, 1), candidate.At(i, 2)})
		for j := range got {
			got[j] = math.Min(1, math.Max(0, got[j]))
		}
		ans[i] = DeltaE76(ref, got)
	}
	return ans, nil
}
