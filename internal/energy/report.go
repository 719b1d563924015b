package energy

import (
	"github.com/zfacksandahler/btc-energy-model/internal/model"
)

// Report is the primary artifact of a calculation run: one row per input
// year, sorted ascending by year, plus the sum over all rows.
type Report struct {
	Rows     []model.EnergyResult
	TotalTWh float64
}

// Years returns the row years in report order.
func (r *Report) Years() []int {
	out := make([]int, len(r.Rows))
	for i, row := range r.Rows {
		out[i] = row.Year
	}
	return out
}
