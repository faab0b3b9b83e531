// Package polyreg fits ordinary least squares regressions on polynomial
// feature expansions.
package polyreg

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// rcond is the relative singular value cut-off used to decide the rank of the
// design matrix.
const rcond = 1e-10

var (
	ErrNoSamples         = errors.New("polyreg: no samples")
	ErrDimensionMismatch = errors.New("polyreg: dimension mismatch")
)

// Expand returns every monomial of x up to the given degree, ordered by degree
// and then lexicographically: for two inputs and degree 2 that is
// 1, x, y, x², xy, y².
func Expand(x []float64, degree int) []float64 {
	out := []float64{1}
	prev := []term{{last: 0, value: 1}}
	for d := 1; d <= degree; d++ {
		var next []term
		for _, t := range prev {
			for i := t.last; i < len(x); i++ {
				next = append(next, term{last: i, value: t.value * x[i]})
			}
		}
		for _, t := range next {
			out = append(out, t.value)
		}
		prev = next
	}
	return out
}

type term struct {
	last  int
	value float64
}

// Model is a fitted linear model over expanded features.
type Model struct {
	Degree    int
	Intercept float64
	Coef      []float64
}

// Fit expands every row of X to the given degree and fits y by least squares
// with an intercept. Rank deficient designs get the minimum-norm solution.
func Fit(X [][]float64, y []float64, degree int) (*Model, error) {
	n := len(X)
	if n == 0 {
		return nil, ErrNoSamples
	}
	if len(y) != n {
		return nil, fmt.Errorf("%w: %d rows, %d targets", ErrDimensionMismatch, n, len(y))
	}

	rows := make([][]float64, n)
	for i, x := range X {
		if len(x) != len(X[0]) {
			return nil, fmt.Errorf("%w: row %d has %d features, want %d", ErrDimensionMismatch, i, len(x), len(X[0]))
		}
		rows[i] = Expand(x, degree)
	}
	k := len(rows[0])

	colMean := make([]float64, k)
	for _, r := range rows {
		for j, v := range r {
			colMean[j] += v
		}
	}
	for j := range colMean {
		colMean[j] /= float64(n)
	}
	var yMean float64
	for _, v := range y {
		yMean += v
	}
	yMean /= float64(n)

	a := mat.NewDense(n, k, nil)
	b := mat.NewVecDense(n, nil)
	for i, r := range rows {
		for j, v := range r {
			a.Set(i, j, v-colMean[j])
		}
		b.SetVec(i, y[i]-yMean)
	}

	coef := make([]float64, k)
	var svd mat.SVD
	if !svd.Factorize(a, mat.SVDThin) {
		return nil, errors.New("polyreg: singular value decomposition failed")
	}
	if rank := svd.Rank(rcond); rank > 0 {
		var solution mat.VecDense
		svd.SolveVecTo(&solution, b, rank)
		for j := range coef {
			coef[j] = solution.AtVec(j)
		}
	}

	intercept := yMean
	for j, c := range coef {
		intercept -= c * colMean[j]
	}

	return &Model{Degree: degree, Intercept: intercept, Coef: coef}, nil
}

// Predict evaluates the model on one raw (unexpanded) feature row.
func (m *Model) Predict(x []float64) float64 {
	out := m.Intercept
	for j, v := range Expand(x, m.Degree) {
		if j < len(m.Coef) {
			out += m.Coef[j] * v
		}
	}
	return out
}
