package engine

import (
	"github.com/lixenwraith/orbiter/constant"
	"github.com/lixenwraith/orbiter/physics"
)

// OrbitEvaluator estimates eccentricity over fixed windows of distance samples
type OrbitEvaluator struct {
	interval     uint64
	samples      []float64
	eccentricity float64
	windows      uint64
}

// NewOrbitEvaluator creates an evaluator that recomputes every interval ticks
func NewOrbitEvaluator(interval uint64) *OrbitEvaluator {
	if interval == 0 {
		interval = 1
	}
	return &OrbitEvaluator{
		interval:     interval,
		samples:      make([]float64, 0, interval),
		eccentricity: constant.UnknownEccentricity,
	}
}

// Record appends one distance sample
func (o *OrbitEvaluator) Record(distance float64) {
	o.samples = append(o.samples, distance)
}

// Due reports whether tick closes a window
func (o *OrbitEvaluator) Due(tick uint64) bool {
	return tick > 0 && tick%o.interval == 0
}

// Evaluate recomputes eccentricity from the window and clears it
func (o *OrbitEvaluator) Evaluate() float64 {
	o.eccentricity = physics.Eccentricity(o.samples, constant.UnknownEccentricity)
	o.samples = o.samples[:0]
	o.windows++
	return o.eccentricity
}

// Eccentricity returns the last computed value, UnknownEccentricity before the first window
func (o *OrbitEvaluator) Eccentricity() float64 {
	return o.eccentricity
}

// Pending returns the number of samples in the open window
func (o *OrbitEvaluator) Pending() int {
	return len(o.samples)
}

// Windows returns the number of completed windows
func (o *OrbitEvaluator) Windows() uint64 {
	return o.windows
}
