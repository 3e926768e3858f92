// SPDX-License-Identifier: MIT
package linalg_test

import (
	"testing"

	"github.com/katalvlaran/uvncam/linalg"
	"github.com/stretchr/testify/require"
)

func TestNew_Rectangular(t *testing.T) {
	m := mustNew(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	r, c := m.Shape()
	require.Equal(t, 2, r)
	require.Equal(t, 3, c)

	v, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 6.0, v)
}

func TestNew_NotRectangular(t *testing.T) {
	_, err := linalg.New([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, linalg.ErrNotRectangular)
}

func TestNew_BadShape(t *testing.T) {
	_, err := linalg.New(nil)
	require.ErrorIs(t, err, linalg.ErrBadShape)
	_, err = linalg.New([][]float64{{}})
	require.ErrorIs(t, err, linalg.ErrBadShape)
}

func TestNew_CopiesInput(t *testing.T) {
	values := [][]float64{{1, 2}, {3, 4}}
	m := mustNew(t, values)
	values[0][0] = 99

	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)

	// Values is a deep copy as well.
	out := m.Values()
	out[1][1] = -1
	v, _ = m.At(1, 1)
	require.Equal(t, 4.0, v)
}

func TestAt_OutOfRange(t *testing.T) {
	m := mustNew(t, [][]float64{{1}})
	for _, idx := range [][2]int{{-1, 0}, {0, -1}, {1, 0}, {0, 1}} {
		_, err := m.At(idx[0], idx[1])
		require.ErrorIs(t, err, linalg.ErrOutOfRange)
	}
}

func TestMul_Succeeds(t *testing.T) {
	// A is 2×3, B is 3×2: A*B = 2×2
	a := mustNew(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	b := mustNew(t, [][]float64{{7, 8}, {9, 10}, {11, 12}})

	c, err := a.Mul(b)
	require.NoError(t, err)
	require.True(t, c.Equal(mustNew(t, [][]float64{{58, 64}, {139, 154}})), "got\n%v", c)
}

func TestMul_ResultShape(t *testing.T) {
	a := mustNew(t, [][]float64{{1, 2, 3}})     // 1×3
	b := mustNew(t, [][]float64{{1}, {2}, {3}}) // 3×1
	c, err := a.Mul(b)
	require.NoError(t, err)
	r, cc := c.Shape()
	require.Equal(t, 1, r)
	require.Equal(t, 1, cc)
	v, _ := c.At(0, 0)
	require.Equal(t, 14.0, v)

	d, err := b.Mul(a)
	require.NoError(t, err)
	r, cc = d.Shape()
	require.Equal(t, 3, r)
	require.Equal(t, 3, cc)
}

func TestMul_DimensionMismatch(t *testing.T) {
	a := mustNew(t, [][]float64{{1, 2}, {3, 4}})
	b := mustNew(t, [][]float64{{1, 2, 3}})
	_, err := a.Mul(b)
	require.ErrorIs(t, err, linalg.ErrDimensionMismatch)

	_, err = a.Mul(nil)
	require.ErrorIs(t, err, linalg.ErrNilMatrix)
}

func TestMul_IdentityIsNeutral(t *testing.T) {
	m := mustNew(t, [][]float64{
		{1.5, -2, 0, 4},
		{0, 3, 7, -1},
		{2, 0.25, -6, 9},
	})
	i4, err := linalg.Identity(4)
	require.NoError(t, err)
	i3, err := linalg.Identity(3)
	require.NoError(t, err)

	right, err := m.Mul(i4)
	require.NoError(t, err)
	require.True(t, right.Equal(m))

	left, err := i3.Mul(m)
	require.NoError(t, err)
	require.True(t, left.Equal(m))
}

func TestIdentity_BadShape(t *testing.T) {
	_, err := linalg.Identity(0)
	require.ErrorIs(t, err, linalg.ErrBadShape)
}

func TestScale_ReturnsNewMatrix(t *testing.T) {
	m := mustNew(t, [][]float64{{1, -2}, {3, 4}})
	s := m.Scale(2)
	require.True(t, s.Equal(mustNew(t, [][]float64{{2, -4}, {6, 8}})))
	// receiver untouched
	require.True(t, m.Equal(mustNew(t, [][]float64{{1, -2}, {3, 4}})))
}

func TestAdd(t *testing.T) {
	a := mustNew(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	b := mustNew(t, [][]float64{{6, 5, 4}, {3, 2, 1}})

	sum, err := a.Add(b)
	require.NoError(t, err)
	require.True(t, sum.Equal(mustNew(t, [][]float64{{7, 7, 7}, {7, 7, 7}})))

	require.True(t, a.AddScalar(1).Equal(mustNew(t, [][]float64{{2, 3, 4}, {5, 6, 7}})))
}

func TestAdd_DimensionMismatch(t *testing.T) {
	a := mustNew(t, [][]float64{{1, 2}, {3, 4}})
	b := mustNew(t, [][]float64{{1, 2}, {3, 4}, {5, 6}})
	_, err := a.Add(b)
	require.ErrorIs(t, err, linalg.ErrDimensionMismatch)
}

func TestRowColumn(t *testing.T) {
	m := mustNew(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	row, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, linalg.Vector{4, 5, 6}, row)

	col, err := m.Column(2)
	require.NoError(t, err)
	require.Equal(t, linalg.Vector{3, 6}, col)

	// extracted vectors are values, not live views
	row[0] = 100
	v, _ := m.At(1, 0)
	require.Equal(t, 4.0, v)

	_, err = m.Row(2)
	require.ErrorIs(t, err, linalg.ErrOutOfRange)
	_, err = m.Column(-1)
	require.ErrorIs(t, err, linalg.ErrOutOfRange)
}

func TestToArray_ColumnMajor(t *testing.T) {
	m := mustNew(t, [][]float64{{1, 2}, {3, 4}, {5, 6}})
	require.Equal(t, []float64{1, 3, 5, 2, 4, 6}, m.ToArray())
	require.Equal(t, []float32{1, 3, 5, 2, 4, 6}, m.ToArray32())

	// translation lands in elements 12..14, as uniform uploads expect
	arr := linalg.Translate(2, 3, 4).ToArray()
	require.Equal(t, []float64{2, 3, 4, 1}, arr[12:16])
}

func TestTranspose(t *testing.T) {
	m := mustNew(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	require.True(t, m.Transpose().Equal(mustNew(t, [][]float64{{1, 4}, {2, 5}, {3, 6}})))
}

func TestString(t *testing.T) {
	m := mustNew(t, [][]float64{{1, -2}, {3, 4}})
	require.Equal(t, " 1.0 -2.0\n 3.0  4.0", m.String())
}

func TestMultiplyMatrices(t *testing.T) {
	_, err := linalg.MultiplyMatrices(linalg.Translate(1, 0, 0))
	require.ErrorIs(t, err, linalg.ErrTooFewOperands)

	m, err := linalg.MultiplyMatrices(linalg.Translate(1, 0, 0), linalg.Translate(0, 2, 0), linalg.ScaleMatrix(3, 3, 3))
	require.NoError(t, err)
	p, err := m.MulVec4(linalg.Vector4{1, 1, 1, 1})
	require.NoError(t, err)
	require.Equal(t, linalg.Vector4{4, 5, 3, 1}, p)

	_, err = linalg.MultiplyMatrices(linalg.Translate(1, 0, 0), mustNew(t, [][]float64{{1, 2}}))
	require.ErrorIs(t, err, linalg.ErrDimensionMismatch)
}

func TestMulVec4_RequiresSquare4(t *testing.T) {
	m := mustNew(t, [][]float64{{1, 2, 3}})
	_, err := m.MulVec4(linalg.Vector4{})
	require.ErrorIs(t, err, linalg.ErrDimensionMismatch)
}

func TestDeterminantInverse(t *testing.T) {
	m, err := linalg.MultiplyMatrices(linalg.Translate(1, -2, 3), linalg.ScaleMatrix(2, 4, 0.5))
	require.NoError(t, err)

	det, err := m.Determinant()
	require.NoError(t, err)
	require.InDelta(t, 4.0, det, tol)

	inv, err := m.Inverse()
	require.NoError(t, err)
	prod, err := m.Mul(inv)
	require.NoError(t, err)
	i4, _ := linalg.Identity(4)
	require.True(t, prod.ApproxEqual(i4, tol), "got\n%v", prod)
}

func TestInverse_Errors(t *testing.T) {
	_, err := mustNew(t, [][]float64{{1, 2, 3}, {4, 5, 6}}).Inverse()
	require.ErrorIs(t, err, linalg.ErrNonSquare)

	_, err = mustNew(t, [][]float64{{1, 2}, {2, 4}}).Inverse()
	require.ErrorIs(t, err, linalg.ErrSingular)

	_, err = mustNew(t, [][]float64{{1, 2}}).Determinant()
	require.ErrorIs(t, err, linalg.ErrNonSquare)
}

func TestUniform(t *testing.T) {
	m := linalg.Translate(2, 3, 4)
	u, err := m.Uniform()
	require.NoError(t, err)
	require.Equal(t, m.ToArray32(), u[:])
	require.Equal(t, float32(2), u.Col(3)[0])

	_, err = mustNew(t, [][]float64{{1}}).Uniform()
	require.ErrorIs(t, err, linalg.ErrDimensionMismatch)
}
