// Package regression provides the ordinary least squares primitive that the
// colour fit is built on.
package regression

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ErrSingular is returned when the least squares system is underdetermined or
// numerically singular, for example when there are fewer observations than
// coefficients or the predictor columns are collinear. Match with errors.Is.
var ErrSingular = errors.New("regression: singular least squares system")

// Linear fits y ~ x*b + c by ordinary least squares via QR factorisation and
// returns the slope coefficients in predictor column order, followed by the
// intercept c as the final element.
func Linear(x mat.Matrix, y []float64) ([]float64, error) {
	rows, cols := x.Dims()
	if rows != len(y) {
		return nil, fmt.Errorf("regression: %d observations but %d responses", rows, len(y))
	}
	if rows < cols+1 {
		return nil, fmt.Errorf("%w: %d observations for %d coefficients", ErrSingular, rows, cols+1)
	}

	// Design matrix with the intercept column appended after the
	// predictors, so the coefficient order is slopes then intercept.
	a := mat.NewDense(rows, cols+1, nil)
	for i := range rows {
		for j := range cols {
			a.Set(i, j, x.At(i, j))
		}
		a.Set(i, cols, 1)
	}
	b := mat.NewVecDense(rows, y)
	c := mat.NewVecDense(cols+1, nil)

	qr := new(mat.QR)
	qr.Factorize(a)
	if err := qr.SolveVecTo(c, false, b); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSingular, err)
	}

	coef := make([]float64, cols+1)
	for i := range coef {
		coef[i] = c.AtVec(i)
	}
	return coef, nil
}
