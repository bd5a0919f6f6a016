package state

import "math"

type check struct {
	name string
	ok   bool
}

// checks compares every field and keeps going after a failure, so all
// results are available to callers.
func (s *State) checks(other *State, epsilon float64) []check {
	return []check{
		{"phases", s.numPhases == other.numPhases},
		{PressureName, VectorApproxEqual(s.Pressure(), other.Pressure(), epsilon)},
		{TemperatureName, VectorApproxEqual(s.Temperature(), other.Temperature(), epsilon)},
		{FacePressureName, VectorApproxEqual(s.FacePressure(), other.FacePressure(), epsilon)},
		{FaceFluxName, VectorApproxEqual(s.FaceFlux(), other.FaceFlux(), epsilon)},
		{SaturationName, VectorApproxEqual(s.Saturation(), other.Saturation(), epsilon)},
	}
}

// Equals reports whether both states have the same phase count and all
// well-known fields agree within the relative tolerance epsilon.
func (s *State) Equals(other *State, epsilon float64) bool {
	return allOK(s.checks(other, epsilon))
}

// Mismatches lists the comparisons that failed, in evaluation order.
func (s *State) Mismatches(other *State, epsilon float64) []string {
	return failed(s.checks(other, epsilon))
}

func allOK(cs []check) bool {
	equal := true
	for _, c := range cs {
		equal = equal && c.ok
	}
	return equal
}

func failed(cs []check) []string {
	var names []string
	for _, c := range cs {
		if !c.ok {
			names = append(names, c.name)
		}
	}
	return names
}

// VectorApproxEqual reports whether v1 and v2 have the same length and every
// pair satisfies |a-b| <= epsilon*(|a|+|b|). Two exact zeros always match;
// a NaN on either side never does.
func VectorApproxEqual(v1, v2 []float64, epsilon float64) bool {
	if len(v1) != len(v2) {
		return false
	}
	for i := range v1 {
		diff := math.Abs(v1[i] - v2[i])
		scale := math.Abs(v1[i]) + math.Abs(v2[i])
		if !(diff <= epsilon*scale) {
			return false
		}
	}
	return true
}
