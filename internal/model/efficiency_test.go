package model

import (
	"math"
	"testing"
)

func TestDefaultCurveAnchors(t *testing.T) {
	c := DefaultCurve()

	cases := []struct {
		year int
		want float64
	}{
		{1990, 50.0},
		{2015, 50.0},
		{2016, 50.0},
		{2017, 45.0},
		{2018, 40.0},
		{2019, 35.0},
		{2020, 30.0},
		{2021, 30.0},
		{2050, 30.0},
	}
	for _, tc := range cases {
		got := c.JPerTH(tc.year)
		if math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("JPerTH(%d) = %v, expected %v", tc.year, got, tc.want)
		}
	}
}

func TestDefaultCurveNonIncreasing(t *testing.T) {
	c := DefaultCurve()
	prev := c.JPerTH(2010)
	for year := 2011; year <= 2030; year++ {
		cur := c.JPerTH(year)
		if cur > prev {
			t.Fatalf("curve increased at year %d: %v -> %v", year, prev, cur)
		}
		prev = cur
	}
}

func TestCurveValidate(t *testing.T) {
	if err := DefaultCurve().Validate(); err != nil {
		t.Fatalf("default curve should validate, got %v", err)
	}

	bad := []EfficiencyCurve{
		{BaselineYear: 2016, BaselineJPerTH: 0, FloorYear: 2020, FloorJPerTH: 30},
		{BaselineYear: 2016, BaselineJPerTH: 50, FloorYear: 2020, FloorJPerTH: -1},
		{BaselineYear: 2020, BaselineJPerTH: 50, FloorYear: 2016, FloorJPerTH: 30},
		{BaselineYear: 2016, BaselineJPerTH: 50, FloorYear: 2016, FloorJPerTH: 30},
	}
	for i, c := range bad {
		if err := c.Validate(); err == nil {
			t.Errorf("case %d: expected validation error for %+v", i, c)
		}
	}
}
