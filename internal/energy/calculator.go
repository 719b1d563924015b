package energy

import (
	"fmt"
	"sort"

	"github.com/zfacksandahler/btc-energy-model/internal/model"
)

// HoursPerYear assumes 24/7 mining operation.
const HoursPerYear = 8760.0

// JoulesPerTWh converts joules to terawatt-hours.
const JoulesPerTWh = 3.6e15

// Calculator maps hashrate records through the efficiency curve and the
// energy conversion formula. It is stateless between runs.
type Calculator struct {
	Curve        model.EfficiencyCurve
	HoursPerYear float64
}

func New(curve model.EfficiencyCurve) *Calculator {
	return &Calculator{
		Curve:        curve,
		HoursPerYear: HoursPerYear,
	}
}

// Run produces a Report for a set of records. Rows come out sorted
// ascending by year regardless of input order; the input slice is not
// modified. Years are unique by loader contract, so no tie-break exists.
func (c *Calculator) Run(records []model.HashrateRecord) (*Report, error) {
	if err := c.Curve.Validate(); err != nil {
		return nil, fmt.Errorf("efficiency curve invalid: %w", err)
	}
	if c.HoursPerYear <= 0 {
		return nil, fmt.Errorf("hours per year must be > 0, got %v", c.HoursPerYear)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("no records")
	}

	rows := make([]model.EnergyResult, 0, len(records))
	total := 0.0
	for _, rec := range records {
		eff := c.Curve.JPerTH(rec.Year)
		// annual_energy_J = avg_hashrate_PHs * 1e12 * efficiency_J_per_TH * hours
		annualJ := rec.AvgHashratePHs * 1e12 * eff * c.HoursPerYear
		twh := annualJ / JoulesPerTWh

		rows = append(rows, model.EnergyResult{
			Year:             rec.Year,
			AvgHashratePHs:   rec.AvgHashratePHs,
			EfficiencyJPerTH: eff,
			EnergyTWh:        twh,
		})
		total += twh
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].Year < rows[j].Year })

	return &Report{
		Rows:     rows,
		TotalTWh: total,
	}, nil
}
