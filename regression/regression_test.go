package regression

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestLinearSingle(t *testing.T) {
	// y = 2x + 3, exactly
	x := mat.NewDense(6, 1, []float64{1, 2, 3, 4, 5, 6})
	y := make([]float64, 6)
	for i := range y {
		y[i] = 2*x.At(i, 0) + 3
	}
	coef, err := Linear(x, y)
	require.NoError(t, err)
	require.Len(t, coef, 2)
	require.InDelta(t, 2, coef[0], 1e-10)
	require.InDelta(t, 3, coef[1], 1e-10)
}

func TestLinearMultipleSlopesThenIntercept(t *testing.T) {
	x := mat.NewDense(6, 3, []float64{
		1, 2, 3,
		2, 1, 0,
		0, 5, 2,
		3, 3, 1,
		4, 0, 2,
		1, 1, 5,
	})
	slopes := []float64{1, 2, -0.5}
	const intercept = 0.25
	y := make([]float64, 6)
	for i := range y {
		y[i] = intercept
		for j, s := range slopes {
			y[i] += s * x.At(i, j)
		}
	}
	coef, err := Linear(x, y)
	require.NoError(t, err)
	require.Len(t, coef, 4)
	for j, s := range slopes {
		require.InDelta(t, s, coef[j], 1e-10)
	}
	require.InDelta(t, intercept, coef[3], 1e-10)
}

func TestLinearResponseLengthMismatch(t *testing.T) {
	_, err := Linear(mat.NewDense(4, 2, nil), make([]float64, 5))
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrSingular)
}

func TestLinearUnderdetermined(t *testing.T) {
	x := mat.NewDense(3, 3, []float64{1, 2, 3, 4, 5, 6, 7, 8, 10})
	_, err := Linear(x, []float64{1, 2, 3})
	require.ErrorIs(t, err, ErrSingular)
}

func TestLinearCollinearPredictors(t *testing.T) {
	// second column is a multiple of the first
	x := mat.NewDense(6, 2, []float64{
		1, 2,
		2, 4,
		3, 6,
		4, 8,
		5, 10,
		6, 12,
	})
	_, err := Linear(x, []float64{1, 2, 3, 4, 5, 6})
	require.ErrorIs(t, err, ErrSingular)
}

func TestLinearConstantPredictor(t *testing.T) {
	// a constant predictor is collinear with the intercept column
	x := mat.NewDense(5, 1, []float64{4, 4, 4, 4, 4})
	_, err := Linear(x, []float64{1, 2, 3, 4, 5})
	require.ErrorIs(t, err, ErrSingular)
}
