package model

import "errors"

// EfficiencyCurve maps a year to assumed mining-hardware efficiency in
// J/TH. It is piecewise linear: constant at BaselineJPerTH up to and
// including BaselineYear, constant at FloorJPerTH from FloorYear on, and
// linearly interpolated between the two anchor points.
type EfficiencyCurve struct {
	BaselineYear   int
	BaselineJPerTH float64
	FloorYear      int
	FloorJPerTH    float64
}

// DefaultCurve returns the standard assumption: 50 J/TH in 2016 improving
// linearly to 30 J/TH by 2020, constant outside that range.
func DefaultCurve() EfficiencyCurve {
	return EfficiencyCurve{
		BaselineYear:   2016,
		BaselineJPerTH: 50.0,
		FloorYear:      2020,
		FloorJPerTH:    30.0,
	}
}

func (c EfficiencyCurve) Validate() error {
	if c.BaselineJPerTH <= 0 {
		return errors.New("BaselineJPerTH must be > 0")
	}
	if c.FloorJPerTH <= 0 {
		return errors.New("FloorJPerTH must be > 0")
	}
	if c.FloorYear <= c.BaselineYear {
		return errors.New("FloorYear must be after BaselineYear")
	}
	return nil
}

// JPerTH evaluates the curve for a year.
func (c EfficiencyCurve) JPerTH(year int) float64 {
	switch {
	case year <= c.BaselineYear:
		return c.BaselineJPerTH
	case year >= c.FloorYear:
		return c.FloorJPerTH
	default:
		slope := (c.FloorJPerTH - c.BaselineJPerTH) / float64(c.FloorYear-c.BaselineYear)
		return c.BaselineJPerTH + slope*float64(year-c.BaselineYear)
	}
}
