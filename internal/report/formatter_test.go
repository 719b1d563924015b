package report

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/zfacksandahler/btc-energy-model/internal/energy"
	"github.com/zfacksandahler/btc-energy-model/internal/model"
)

func sampleReport(t *testing.T) *energy.Report {
	t.Helper()
	r, err := energy.New(model.DefaultCurve()).Run([]model.HashrateRecord{
		{Year: 2016, AvgHashratePHs: 1.2},
		{Year: 2018, AvgHashratePHs: 20000},
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	return r
}

func TestFormatTable(t *testing.T) {
	out := FormatTable(sampleReport(t), 2)

	for _, want := range []string{
		"Bitcoin Energy Consumption Estimate",
		"Year",
		"Hashrate (PH/s)",
		"Efficiency (J/TH)",
		"Energy (TWh)",
		"Total energy consumption",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	// 2016 row with 2-decimal display.
	if !strings.Contains(out, "2016   1.20") {
		t.Errorf("output missing formatted 2016 row:\n%s", out)
	}
	if !strings.Contains(out, "50.00") {
		t.Errorf("output missing 2-decimal efficiency:\n%s", out)
	}

	// One line per year between the rules, 2016 before 2018.
	if strings.Index(out, "2016") > strings.Index(out, "2018") {
		t.Errorf("rows out of order:\n%s", out)
	}
}

func TestFormatTableDecimalFallback(t *testing.T) {
	out := FormatTable(sampleReport(t), -1)
	if !strings.Contains(out, "1.20") {
		t.Errorf("negative decimals should fall back to 2:\n%s", out)
	}
}

func TestFormatJSON(t *testing.T) {
	out, err := FormatJSON(sampleReport(t))
	if err != nil {
		t.Fatalf("format: %v", err)
	}

	var payload struct {
		Rows []struct {
			Year int `json:"year"`
		} `json:"rows"`
		TotalTWh float64 `json:"total_twh"`
	}
	if err := json.Unmarshal([]byte(out), &payload); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, out)
	}
	if len(payload.Rows) != 2 || payload.Rows[0].Year != 2016 {
		t.Errorf("unexpected payload: %+v", payload)
	}
	if payload.TotalTWh <= 0 {
		t.Errorf("total should be positive, got %v", payload.TotalTWh)
	}
}
