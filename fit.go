package colour

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/Ssuyk/colour/regression"
)

// ErrDimensionMismatch means the two sample matrices do not describe
// corresponding tristimulus measurements: unequal sample counts, or a column
// count other than 3.
var ErrDimensionMismatch = errors.New("colour: sample matrices must be n x 3 with equal sample counts")

// ErrSingularRegression means the candidate samples cannot determine a fit,
// typically because there are fewer than 4 independent samples.
var ErrSingularRegression = regression.ErrSingular

// FirstOrderFit computes the 3x3 matrix that best maps candidate samples onto
// the corresponding reference samples in the least squares sense. Both inputs
// are n x 3, one sample per row, matched by row index; at least 4 independent
// samples are needed for a determined fit.
//
// Each row of the result comes from regressing one reference channel against
// all three candidate channels. The regression fits an intercept but the
// intercept is then dropped, so a constant offset between the two measurement
// sets is deliberately left uncorrected.
func FirstOrderFit(reference, candidate mat.Matrix) (ans Matrix3, err error) {
	rr, rc := reference.Dims()
	cr, cc := candidate.Dims()
	if rc != 3 || cc != 3 || rr != cr {
		return ans, fmt.Errorf("%w: reference is %dx%d, candidate is %dx%d", ErrDimensionMismatch, rr, rc, cr, cc)
	}
	y := make([]float64, rr)
	for ch := range 3 {
		for i := range y {
			y[i] = reference.At(i, ch)
		}
		coef, err := regression.Linear(candidate, y)
		if err != nil {
			return Matrix3{}, fmt.Errorf("colour: fitting channel %d: %w", ch, err)
		}
		ans[ch] = [3]float64{coef[0], coef[1], coef[2]}
	}
	return ans, nil
}
