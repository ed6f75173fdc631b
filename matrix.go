package colour

import (
	"errors"
	"fmt"
)

// Vec3 is a single tristimulus colour sample, one value per channel.
type Vec3 [3]float64

// Matrix3 is a 3x3 colour transform. Row r column c is the weight of input
// channel c when computing output channel r.
type Matrix3 [3][3]float64

// ErrSingularMatrix means a matrix has no inverse.
var ErrSingularMatrix = errors.New("colour: matrix is singular")

// Identity returns the 3x3 identity transform.
func Identity() Matrix3 {
	return Matrix3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
}

func (m *Matrix3) IsIdentity() bool {
	return m[0][0] == 1 && m[0][1] == 0 && m[0][2] == 0 && m[1][0] == 0 && m[1][1] == 1 && m[1][2] == 0 && m[2][0] == 0 && m[2][1] == 0 && m[2][2] == 1
}

// Apply transforms a single colour sample, treating it as a column vector.
func (m *Matrix3) Apply(v Vec3) Vec3 {
	return Vec3{
		m[0][0]*v[0] + m[0][1]*v[1] + m[0][2]*v[2],
		m[1][0]*v[0] + m[1][1]*v[1] + m[1][2]*v[2],
		m[2][0]*v[0] + m[2][1]*v[1] + m[2][2]*v[2],
	}
}

// Mul returns the matrix product m * o.
func (m *Matrix3) Mul(o Matrix3) (ans Matrix3) {
	for i := range 3 {
		for j := range 3 {
			for k := range 3 {
				ans[i][j] += m[i][k] * o[k][j]
			}
		}
	}
	return
}

func (m *Matrix3) Inverted() (ans Matrix3, err error) {
	det := m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])

	if det == 0 {
		return ans, ErrSingularMatrix
	}
	invDet := 1 / det
	adj := Matrix3{
		{
			(m[1][1]*m[2][2] - m[1][2]*m[2][1]),
			(m[0][2]*m[2][1] - m[0][1]*m[2][2]),
			(m[0][1]*m[1][2] - m[0][2]*m[1][1]),
		},
		{
			(m[1][2]*m[2][0] - m[1][0]*m[2][2]),
			(m[0][0]*m[2][2] - m[0][2]*m[2][0]),
			(m[0][2]*m[1][0] - m[0][0]*m[1][2]),
		},
		{
			(m[1][0]*m[2][1] - m[1][1]*m[2][0]),
			(m[0][1]*m[2][0] - m[0][0]*m[2][1]),
			(m[0][0]*m[1][1] - m[0][1]*m[1][0]),
		},
	}
	for i := range 3 {
		for j := range 3 {
			ans[i][j] = invDet * adj[i][j]
		}
	}
	return
}

func (m Matrix3) String() string {
	return fmt.Sprintf("Matrix3{% .6f % .6f % .6f | % .6f % .6f % .6f | % .6f % .6f % .6f}",
		m[0][0], m[0][1], m[0][2], m[1][0], m[1][1], m[1][2], m[2][0], m[2][1], m[2][2])
}
