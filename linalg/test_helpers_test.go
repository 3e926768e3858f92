// SPDX-License-Identifier: MIT
// Package linalg_test: shared helpers for unit tests.
package linalg_test

import (
	"testing"

	"github.com/katalvlaran/uvncam/linalg"
	"github.com/stretchr/testify/require"
)

// tol is the tolerance for results that go through trigonometry.
const tol = 1e-12

// mustNew builds a Matrix or fails the test.
func mustNew(tb testing.TB, values [][]float64) *linalg.Matrix {
	tb.Helper()
	m, err := linalg.New(values)
	require.NoError(tb, err)

	return m
}

// requireArrayInDelta compares two flat arrays elementwise.
func requireArrayInDelta(tb testing.TB, want, got []float64, delta float64) {
	tb.Helper()
	require.Len(tb, got, len(want))
	for i := range want {
		require.InDeltaf(tb, want[i], got[i], delta, "index %d", i)
	}
}

// requireVec3InDelta compares two Vector3 componentwise.
func requireVec3InDelta(tb testing.TB, want, got linalg.Vector3, delta float64) {
	tb.Helper()
	require.Truef(tb, want.ApproxEqual(got, delta), "want %v, got %v", want, got)
}
