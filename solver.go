package main

import "math"

// Generic bisection root-finder used by every "required X" calculator
// (required savings, required contribution rate, required gross salary,
// borrowing capacity). The objective must be monotonic in the unknown over
// the bracketing interval; that is the caller's precondition and is not
// checked here.

// DefaultSolveIterations caps bisection so a mis-bracketed request can never
// hang; the solver returns its best estimate when the cap is hit.
const DefaultSolveIterations = 100

// SolveRequest describes one inversion: find x in [Lower, Upper] such that
// Objective(x) equals Target. Tolerance bounds the remaining half-interval
// in units of the unknown; TargetTolerance, when set, allows an early exit
// once the objective is close enough in its own units.
type SolveRequest struct {
	Target          float64
	Lower           float64
	Upper           float64
	Tolerance       float64
	TargetTolerance float64
	MaxIterations   int
	// Increasing tells the solver which half-interval to keep: true when a
	// larger unknown produces a larger objective value.
	Increasing bool
	Objective  func(x float64) float64
}

// SolveResult carries the estimate plus convergence diagnostics. A run that
// hits the iteration cap is not an error; Converged simply reports false and
// callers treat the wide remaining interval as reduced confidence.
type SolveResult struct {
	Value      float64
	Iterations int
	Residual   float64
	Converged  bool
}

// Bisect searches the bracketing interval for the input that maps to the
// target output, halving the interval each iteration.
func Bisect(req SolveRequest) SolveResult {
	maxIter := req.MaxIterations
	if maxIter <= 0 {
		maxIter = DefaultSolveIterations
	}
	tolerance := req.Tolerance
	if tolerance <= 0 {
		tolerance = 1e-6
	}

	low, high := req.Lower, req.Upper
	mid := (low + high) / 2
	var residual float64

	for i := 1; i <= maxIter; i++ {
		mid = (low + high) / 2
		value := req.Objective(mid)
		residual = value - req.Target

		closeEnough := req.TargetTolerance > 0 && math.Abs(residual) < req.TargetTolerance
		if closeEnough || (high-low)/2 < tolerance {
			return SolveResult{Value: mid, Iterations: i, Residual: residual, Converged: true}
		}

		// Keep the half that still brackets the target.
		tooLow := value < req.Target
		if !req.Increasing {
			tooLow = !tooLow
		}
		if tooLow {
			low = mid
		} else {
			high = mid
		}
	}

	return SolveResult{Value: mid, Iterations: maxIter, Residual: residual, Converged: false}
}
