// SPDX-License-Identifier: MIT

package builder

import (
	"github.com/katalvlaran/kfca/kcontext"
	"github.com/katalvlaran/kfca/semiring"
)

var (
	vehicleObjects = []string{
		"Car", "Boat", "Scooter", "Motorbike", "Bus",
		"Truck", "Van", "Bicycle", "Helicopter", "Airplane",
	}
	vehicleAttributes = []string{
		"is_transport", "goes_fast", "is_big", "produces_noise", "has_2_wheels",
		"has_4_wheels", "has_motor", "flies", "floats", "eco_friendly", "expensive",
	}
	// Degrees from four votes per cell, normalized to quarters.
	vehicleRelation = [][]float64{
		{1.00, 1.00, 0.50, 0.75, 0.00, 1.00, 1.00, 0.00, 0.00, 0.25, 0.75},
		{1.00, 0.50, 0.50, 0.50, 0.00, 0.00, 1.00, 0.00, 1.00, 0.50, 0.75},
		{1.00, 0.50, 0.00, 0.50, 1.00, 0.00, 1.00, 0.00, 0.00, 0.50, 0.25},
		{1.00, 0.75, 0.00, 0.75, 1.00, 0.00, 1.00, 0.00, 0.00, 0.25, 0.50},
		{1.00, 0.50, 1.00, 0.75, 0.00, 1.00, 1.00, 0.00, 0.00, 0.00, 0.50},
		{1.00, 0.50, 1.00, 0.75, 0.00, 1.00, 1.00, 0.00, 0.00, 0.00, 0.75},
		{1.00, 0.50, 0.75, 0.75, 0.00, 1.00, 1.00, 0.00, 0.00, 0.25, 0.75},
		{1.00, 0.25, 0.00, 0.00, 1.00, 0.00, 0.00, 0.00, 0.00, 1.00, 0.00},
		{1.00, 0.75, 0.50, 1.00, 0.00, 0.00, 1.00, 1.00, 0.00, 0.00, 1.00},
		{1.00, 1.00, 1.00, 1.00, 0.00, 0.00, 1.00, 1.00, 0.00, 0.00, 1.00},
	}

	crossObjects    = []string{"1", "2", "3", "4", "5"}
	crossAttributes = []string{"a", "b", "c", "d"}
	crossRelation   = [][]bool{
		{true, true, true, true},
		{true, true, false, false},
		{false, true, true, true},
		{false, true, false, false},
		{false, true, true, false},
	}
)

// Vehicles returns the 10×11 graded vehicle context over s. Values lie on
// the DefaultLevels grid.
func Vehicles(s semiring.Semiring[float64]) (*kcontext.Context[float64], error) {
	return kcontext.New(vehicleObjects, vehicleAttributes, vehicleRelation, s)
}

// CrossTable returns the 5×4 Boolean cross table whose lattice has five
// concepts: {1..5}/{b}, {1,3,5}/{b,c}, {1,2}/{a,b}, {1,3}/{b,c,d} and
// {1}/{a,b,c,d}.
func CrossTable() (*kcontext.Context[bool], error) {
	return kcontext.New(crossObjects, crossAttributes, crossRelation, semiring.Semiring[bool](semiring.Boolean{}))
}
