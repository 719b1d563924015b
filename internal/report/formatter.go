package report

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/zfacksandahler/btc-energy-model/internal/energy"
)

const (
	title      = "Bitcoin Energy Consumption Estimate"
	ruleWidth  = 62
	defDecimal = 2
)

// FormatTable renders a report as a fixed-width text table, one row per
// year in ascending order, with a total footer. decimals controls the
// displayed precision of all float columns; values below zero fall back
// to the default of 2.
func FormatTable(r *energy.Report, decimals int) string {
	if decimals < 0 {
		decimals = defDecimal
	}

	var b strings.Builder
	b.WriteString(title + "\n")
	b.WriteString(strings.Repeat("=", ruleWidth) + "\n")
	b.WriteString(fmt.Sprintf("%-6s %-16s %-18s %-12s\n",
		"Year", "Hashrate (PH/s)", "Efficiency (J/TH)", "Energy (TWh)"))
	b.WriteString(strings.Repeat("-", ruleWidth) + "\n")

	for _, row := range r.Rows {
		b.WriteString(fmt.Sprintf("%-6d %-16.*f %-18.*f %-12.*f\n",
			row.Year,
			decimals, row.AvgHashratePHs,
			decimals, row.EfficiencyJPerTH,
			decimals, row.EnergyTWh,
		))
	}

	b.WriteString(strings.Repeat("-", ruleWidth) + "\n")
	b.WriteString(fmt.Sprintf("Total energy consumption (sum over years): %.*f TWh\n", decimals, r.TotalTWh))
	return b.String()
}

// FormatJSON renders a report as indented JSON.
func FormatJSON(r *energy.Report) (string, error) {
	type row struct {
		Year             int     `json:"year"`
		AvgHashratePHs   float64 `json:"avg_hashrate_phs"`
		EfficiencyJPerTH float64 `json:"efficiency_j_per_th"`
		EnergyTWh        float64 `json:"energy_twh"`
	}
	payload := struct {
		Rows     []row   `json:"rows"`
		TotalTWh float64 `json:"total_twh"`
	}{
		Rows:     make([]row, 0, len(r.Rows)),
		TotalTWh: r.TotalTWh,
	}
	for _, src := range r.Rows {
		payload.Rows = append(payload.Rows, row{
			Year:             src.Year,
			AvgHashratePHs:   src.AvgHashratePHs,
			EfficiencyJPerTH: src.EfficiencyJPerTH,
			EnergyTWh:        src.EnergyTWh,
		})
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data) + "\n", nil
}
