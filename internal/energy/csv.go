package energy

import (
	"encoding/csv"
	"os"
	"strconv"
)

// WriteReportCSV writes one row per year to path.
func WriteReportCSV(path string, report *Report) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"year",
		"avg_hashrate_PHs",
		"efficiency_J_per_TH",
		"energy_TWh",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range report.Rows {
		row := []string{
			strconv.Itoa(r.Year),
			fmtFloat(r.AvgHashratePHs),
			fmtFloat(r.EfficiencyJPerTH),
			fmtFloat(r.EnergyTWh),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
