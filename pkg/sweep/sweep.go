// Package sweep scans a diagnostic or a population solve over one or two
// swept axes (T_e, N_e) and accumulates the results keyed by variable name,
// for building temperature-density diagnostic grids and excitation curves.
// Adapted from toy-spice's pkg/analysis.DCSweep: there it re-stamps and
// re-solves a circuit at each swept source value and stores the solution
// vector per step; here each step re-solves the level-population system (or
// a diagnostic root) at a swept T_e/N_e and stores the requested scalars
// per step. The single/nested-sweep split carries over unchanged; there is
// no swept source whose value needs restoring, since each step passes
// (T_e, N_e) straight to the caller's Eval.
package sweep

import "fmt"

// Point is one sample of a two-axis sweep: the T_e, N_e pair it was
// evaluated at, plus whatever scalar outputs the caller's Eval recorded.
type Point struct {
	Te, Ne float64
	Values map[string]float64
}

// Eval computes the named scalar outputs of a model at one (T_e, N_e)
// sample. Implementations close over an *atomdata.Atom and call into
// rateeq or diagnostic; Eval itself stays domain-agnostic so Grid can be
// reused for populations, critical densities, or line-ratio diagnostics.
type Eval func(te, ne float64) (map[string]float64, error)

// Axis is one swept variable: inclusive start/stop with a fixed increment,
// following DCSweep's start/stop/increment sweep-value generation.
type Axis struct {
	Start, Stop, Step float64
}

// Values expands the axis into its sample points. A non-positive Step or a
// Stop before Start yields the single Start sample, matching a degenerate
// single-point "sweep" rather than erroring.
func (a Axis) Values() []float64 {
	if a.Step <= 0 || a.Stop < a.Start {
		return []float64{a.Start}
	}
	var vals []float64
	for v := a.Start; v <= a.Stop; v += a.Step {
		vals = append(vals, v)
	}
	return vals
}

// Grid evaluates eval at every (T_e, N_e) combination of teAxis x neAxis,
// the nested-sweep case of DCSweep.Execute, and returns one Point per
// combination in row-major (T_e outer, N_e inner) order.
func Grid(teAxis, neAxis Axis, eval Eval) ([]Point, error) {
	if eval == nil {
		return nil, fmt.Errorf("sweep: missing evaluator")
	}

	tes := teAxis.Values()
	nes := neAxis.Values()
	points := make([]Point, 0, len(tes)*len(nes))

	for _, te := range tes {
		for _, ne := range nes {
			values, err := eval(te, ne)
			if err != nil {
				return nil, fmt.Errorf("sweep: evaluating at T_e=%g, N_e=%g: %w", te, ne, err)
			}
			points = append(points, Point{Te: te, Ne: ne, Values: values})
		}
	}

	return points, nil
}

// Line evaluates eval along a single axis at a fixed value of the other
// variable, the single-sweep case of DCSweep.Execute. sweepTe selects
// whether axis varies T_e (true) or N_e (false); fixed supplies the
// held-constant partner value.
func Line(axis Axis, fixed float64, sweepTe bool, eval Eval) ([]Point, error) {
	if eval == nil {
		return nil, fmt.Errorf("sweep: missing evaluator")
	}

	points := make([]Point, 0)
	for _, v := range axis.Values() {
		te, ne := v, fixed
		if !sweepTe {
			te, ne = fixed, v
		}
		values, err := eval(te, ne)
		if err != nil {
			return nil, fmt.Errorf("sweep: evaluating at T_e=%g, N_e=%g: %w", te, ne, err)
		}
		points = append(points, Point{Te: te, Ne: ne, Values: values})
	}

	return points, nil
}
