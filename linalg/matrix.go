// SPDX-License-Identifier: MIT

// Package linalg - Matrix storage (row-major) and composition.
//
// Purpose:
//   - Provide an immutable rectangular grid of float64 values backed by a flat
//     row-major buffer (offset = i*cols + j).
//   - Every composition (Scale, Mul, Add, Transpose, ...) allocates a new
//     Matrix; no method mutates its receiver.
//   - Linearise to column-major order for shader uniform upload.
//
// Complexity quicksheet:
//   - New: O(r*c); At: O(1); Mul: O(r*n*c); Add/Scale/ToArray: O(r*c).

package linalg

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ---------- error context tags ----------

const (
	opNew       = "New"
	opAt        = "At"
	opRow       = "Row"
	opColumn    = "Column"
	opMul       = "Mul"
	opAdd       = "Add"
	opMulVec4   = "MulVec4"
	opDet       = "Determinant"
	opInverse   = "Inverse"
	opUniform   = "Uniform"
	opIdentity  = "Identity"
	opRotate    = "Rotate"
	opPerspect  = "Perspective"
	opMultiply  = "MultiplyMatrices"
	opCompose   = "ComposeModel"
	opFromMat   = "QuaternionFromMatrix"
	opNormalize = "Normalized"
)

// Matrix is an immutable row-major matrix of float64 values.
//   - r,c hold dimensions (both > 0).
//   - data is a flat buffer of length r*c, never exposed to callers.
type Matrix struct {
	r, c int
	data []float64
}

var _ fmt.Stringer = (*Matrix)(nil)

// New builds a Matrix from a rectangular grid of values.
// The grid is copied; later changes to values do not affect the Matrix.
//
// Inputs:
//   - values: row slices; the first row fixes the column count.
//
// Errors:
//   - ErrBadShape when values has no rows or the first row is empty.
//   - ErrNotRectangular when any row length differs from the first.
//
// Complexity: O(r*c).
func New(values [][]float64) (*Matrix, error) {
	// 1) Shape comes from the first row
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, linalgErrorf(opNew, ErrBadShape)
	}
	rows, cols := len(values), len(values[0])

	// 2) Flatten row by row, failing on the first ragged row
	data := make([]float64, 0, rows*cols)
	for i, row := range values {
		if len(row) != cols {
			return nil, fmt.Errorf("%s: row %d has %d values, want %d: %w", opNew, i, len(row), cols, ErrNotRectangular)
		}
		data = append(data, row...)
	}

	return &Matrix{r: rows, c: cols, data: data}, nil
}

// newZero allocates an r×c zero matrix. Callers guarantee r, c > 0.
func newZero(rows, cols int) *Matrix {
	return &Matrix{r: rows, c: cols, data: make([]float64, rows*cols)}
}

// fromRows builds a Matrix from literal rows known to be rectangular.
// Used by the fixed-shape factories; a ragged literal is a programmer error.
func fromRows(rows ...[]float64) *Matrix {
	m, err := New(rows)
	if err != nil {
		panic(err)
	}

	return m
}

// Rows returns the row count.
func (m *Matrix) Rows() int { return m.r }

// Cols returns the column count.
func (m *Matrix) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call.
func (m *Matrix) Shape() (rows, cols int) { return m.r, m.c }

// At returns the element at (row, col) or ErrOutOfRange.
func (m *Matrix) At(row, col int) (float64, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, fmt.Errorf("%s(%d,%d): %w", opAt, row, col, ErrOutOfRange)
	}

	return m.data[row*m.c+col], nil
}

// at is the unchecked accessor used by kernels.
func (m *Matrix) at(row, col int) float64 { return m.data[row*m.c+col] }

// Values returns a deep copy of the grid.
func (m *Matrix) Values() [][]float64 {
	out := make([][]float64, m.r)
	for i := range out {
		out[i] = append([]float64(nil), m.data[i*m.c:(i+1)*m.c]...)
	}

	return out
}

// Row returns row i as a new Vector (not a live view).
func (m *Matrix) Row(i int) (Vector, error) {
	if i < 0 || i >= m.r {
		return nil, fmt.Errorf("%s(%d): %w", opRow, i, ErrOutOfRange)
	}

	return append(Vector(nil), m.data[i*m.c:(i+1)*m.c]...), nil
}

// Column returns column j as a new Vector (not a live view).
func (m *Matrix) Column(j int) (Vector, error) {
	if j < 0 || j >= m.c {
		return nil, fmt.Errorf("%s(%d): %w", opColumn, j, ErrOutOfRange)
	}
	out := make(Vector, m.r)
	for i := range out {
		out[i] = m.at(i, j)
	}

	return out, nil
}

// Scale returns alpha*m (multiplication by a scalar).
// Complexity: O(r*c).
func (m *Matrix) Scale(alpha float64) *Matrix {
	res := newZero(m.r, m.c)
	for k, v := range m.data {
		res.data[k] = v * alpha
	}

	return res
}

// Mul returns the matrix product m×o with m on the left.
// The result is m.Rows()×o.Cols().
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(m, o).
//   - Stage 2: i-k-j loop over the flat buffers, skipping zero coefficients.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (m.Cols() != o.Rows()).
// Complexity: O(r*n*c).
func (m *Matrix) Mul(o *Matrix) (*Matrix, error) {
	if err := ValidateMulCompatible(m, o); err != nil {
		return nil, fmt.Errorf("%s %dx%d by %dx%d: %w", opMul, rowsOf(m), colsOf(m), rowsOf(o), colsOf(o), err)
	}
	// Result is m.r×o.c, zero-initialised so the kernel can accumulate.
	res := newZero(m.r, o.c)
	var (
		i, k, j  int
		av       float64
		rowA     int
		rowB     int
		rowRes   int
		aCols    = m.c
		bCols    = o.c
		resData  = res.data
		leftData = m.data
	)
	for i = 0; i < m.r; i++ {
		rowA = i * aCols   // start of row i in m
		rowRes = i * bCols // start of row i in res
		for k = 0; k < aCols; k++ {
			av = leftData[rowA+k]
			if av == 0 {
				continue // skip zero for performance
			}
			rowB = k * bCols
			// res[i,*] += m[i,k] * o[k,*]; the inner loop walks both rows contiguously
			for j = 0; j < bCols; j++ {
				resData[rowRes+j] += av * o.data[rowB+j]
			}
		}
	}

	return res, nil
}

// AddScalar returns m with alpha added to every element.
func (m *Matrix) AddScalar(alpha float64) *Matrix {
	res := newZero(m.r, m.c)
	for k, v := range m.data {
		res.data[k] = v + alpha
	}

	return res
}

// Add returns the elementwise sum m + o. Shapes must be identical.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func (m *Matrix) Add(o *Matrix) (*Matrix, error) {
	if err := ValidateSameShape(m, o); err != nil {
		return nil, fmt.Errorf("%s %dx%d to %dx%d: %w", opAdd, rowsOf(o), colsOf(o), rowsOf(m), colsOf(m), err)
	}
	res := newZero(m.r, m.c)
	for k := range res.data {
		res.data[k] = m.data[k] + o.data[k]
	}

	return res, nil
}

// Transpose returns mᵀ.
// Complexity: O(r*c).
func (m *Matrix) Transpose() *Matrix {
	res := newZero(m.c, m.r)
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			res.data[j*m.r+i] = m.data[i*m.c+j]
		}
	}

	return res
}

// MulVec4 returns m×v for a 4×4 m.
// Errors: ErrDimensionMismatch when m is not 4×4.
func (m *Matrix) MulVec4(v Vector4) (Vector4, error) {
	if err := validateShape(m, 4, 4); err != nil {
		return Vector4{}, linalgErrorf(opMulVec4, err)
	}
	var out Vector4
	for i := 0; i < 4; i++ {
		// out[i] = row i of m · v
		for k := 0; k < 4; k++ {
			out[i] += m.data[i*4+k] * v[k]
		}
	}

	return out, nil
}

// ToArray linearises m in column-major order: destination columns outer,
// source rows inner. This is the layout uniformMatrix4fv-style uploads expect.
//
// Implementation:
//   - Stage 1: allocate r*c once.
//   - Stage 2: for each column j, append m[0,j] … m[r-1,j].
//
// Complexity: O(r*c).
func (m *Matrix) ToArray() []float64 {
	out := make([]float64, 0, m.r*m.c)
	for j := 0; j < m.c; j++ {
		// column j is strided by m.c in the row-major buffer
		for i := 0; i < m.r; i++ {
			out = append(out, m.data[i*m.c+j])
		}
	}

	return out
}

// ToArray32 is ToArray narrowed to float32.
func (m *Matrix) ToArray32() []float32 {
	out := make([]float32, 0, m.r*m.c)
	for j := 0; j < m.c; j++ {
		for i := 0; i < m.r; i++ {
			out = append(out, float32(m.data[i*m.c+j]))
		}
	}

	return out
}

// Equal reports whether m and o have the same shape and identical elements.
func (m *Matrix) Equal(o *Matrix) bool {
	return m.ApproxEqual(o, 0)
}

// ApproxEqual reports whether m and o have the same shape and every pair of
// elements differs by at most eps.
func (m *Matrix) ApproxEqual(o *Matrix, eps float64) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.r != o.r || m.c != o.c {
		return false
	}
	for k, v := range m.data {
		if math.Abs(v-o.data[k]) > eps {
			return false
		}
	}

	return true
}

// String renders m as a padded grid with one decimal per element, rows
// separated by newlines.
func (m *Matrix) String() string {
	// 1) Format every cell and track the widest
	cells := make([]string, len(m.data))
	width := 0
	for k, v := range m.data {
		cells[k] = strconv.FormatFloat(v, 'f', 1, 64)
		if len(cells[k]) > width {
			width = len(cells[k])
		}
	}
	// 2) Right-align each cell to the common width
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		if i > 0 {
			sb.WriteByte('\n')
		}
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteByte(' ')
			}
			cell := cells[i*m.c+j]
			sb.WriteString(strings.Repeat(" ", width-len(cell)))
			sb.WriteString(cell)
		}
	}

	return sb.String()
}

func rowsOf(m *Matrix) int {
	if m == nil {
		return 0
	}

	return m.r
}

func colsOf(m *Matrix) int {
	if m == nil {
		return 0
	}

	return m.c
}
