package boundary

import (
	"fmt"
	"math"
)

// Point3D is a point in the 3-D target space. X and Y carry over from the
// source point unchanged; Z is derived.
type Point3D struct {
	X float64
	Y float64
	Z float64
}

// Transformer maps 2-D parameter points into 3-D coordinates. The Z
// coordinate depends on chi, so the transform shares the Calculator (and
// through it the engine configuration) rather than recomputing constants.
type Transformer struct {
	calc *Calculator
}

// NewTransformer creates a new Transformer sharing the given Calculator.
func NewTransformer(calc *Calculator) (*Transformer, error) {
	if calc == nil {
		return nil, fmt.Errorf("calculator cannot be nil")
	}
	return &Transformer{calc: calc}, nil
}

// To3D maps (x, y) to 3-D coordinates:
//
//	X = x, Y = y, Z = sqrt(E_vac) * r² / (1 + chi)
//
// The first two axes are the identity exactly. The denominator is strictly
// positive since chi >= 0, so there is no singularity.
func (t *Transformer) To3D(x, y float64) (Point3D, error) {
	chi, err := t.calc.Chi(x, y)
	if err != nil {
		return Point3D{}, err
	}

	r2 := x*x + y*y
	return Point3D{
		X: x,
		Y: y,
		Z: math.Sqrt(t.calc.cfg.VacuumEnergy) * r2 / (1 + chi),
	}, nil
}
