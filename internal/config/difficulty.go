package config

import "math"

// SpeedRamp is the single linear difficulty rule: every Every distance units
// the world speed grows by Step, never beyond Max.
type SpeedRamp struct {
	Start float64
	Max   float64
	Step  float64
	Every int
}

// Next returns the speed after the ledger reached distance. The speed only
// changes on exact multiples of Every.
func (r SpeedRamp) Next(speed float64, distance int) float64 {
	if r.Every <= 0 || distance <= 0 || distance%r.Every != 0 {
		return speed
	}
	return math.Min(speed+r.Step, r.Max)
}

// SpeedAt returns the speed reached after running distance units from Start.
func (r SpeedRamp) SpeedAt(distance int) float64 {
	if r.Every <= 0 || distance <= 0 {
		return r.Start
	}
	steps := distance / r.Every
	return math.Min(r.Start+float64(steps)*r.Step, r.Max)
}
