package display

import (
	"math"

	"wearable_display/internal/models"
)

const (
	strideFactor     = 0.414 // stride length as a fraction of height
	stepsPerHourWalk = 4800
)

// walkingMinutes estimates time spent walking for the given step count.
func walkingMinutes(p models.UserProfile, steps uint32) float64 {
	heightM := p.HeightCM / 100
	return (heightM * strideFactor * float64(steps) / stepsPerHourWalk) * 60
}

// KcalsFromSteps returns the MET-based energy estimate, truncated to uint16.
func KcalsFromSteps(p models.UserProfile, steps uint32) uint16 {
	if steps == 0 {
		return 0
	}
	kcals := walkingMinutes(p, steps) * p.MET * 3.5 * p.WeightKG / 200
	return clampUint16(kcals)
}

// ActiveMinutes is the walking time shown next to the calorie count.
func ActiveMinutes(p models.UserProfile, steps uint32) uint16 {
	if steps == 0 {
		return 0
	}
	return clampUint16(walkingMinutes(p, steps))
}

func clampUint16(v float64) uint16 {
	switch {
	case v <= 0 || math.IsNaN(v):
		return 0
	case v >= math.MaxUint16:
		return math.MaxUint16
	default:
		return uint16(v)
	}
}
