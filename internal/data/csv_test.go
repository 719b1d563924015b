package data

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hashrate.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write temp csv: %v", err)
	}
	return path
}

func TestLoadHashrateCSV(t *testing.T) {
	path := writeCSV(t, "year,avg_hashrate_PHs\n2016,1.2\n2017,3.4\n2020,120000\n")

	records, err := LoadHashrateCSV(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	if records[0].Year != 2016 || records[0].AvgHashratePHs != 1.2 {
		t.Errorf("unexpected first record: %+v", records[0])
	}
	if records[2].Year != 2020 || records[2].AvgHashratePHs != 120000 {
		t.Errorf("unexpected last record: %+v", records[2])
	}
}

func TestLoadHashrateCSVColumnOrderFree(t *testing.T) {
	path := writeCSV(t, "avg_hashrate_PHs,year\n1.2,2016\n")

	records, err := LoadHashrateCSV(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(records) != 1 || records[0].Year != 2016 || records[0].AvgHashratePHs != 1.2 {
		t.Fatalf("unexpected records: %+v", records)
	}
}

func TestLoadHashrateCSVSourceNotFound(t *testing.T) {
	_, err := LoadHashrateCSV(filepath.Join(t.TempDir(), "missing.csv"))
	if !errors.Is(err, ErrSourceNotFound) {
		t.Fatalf("expected ErrSourceNotFound, got %v", err)
	}
}

func TestLoadHashrateCSVSchemaErrors(t *testing.T) {
	cases := map[string]string{
		"missing hashrate column": "year\n2016\n",
		"missing year column":     "avg_hashrate_PHs\n1.2\n",
		"misnamed column":         "year,hashrate\n2016,1.2\n",
		"empty file":              "",
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := LoadHashrateCSV(writeCSV(t, content))
			if !errors.Is(err, ErrSchema) {
				t.Fatalf("expected ErrSchema, got %v", err)
			}
		})
	}
}

func TestLoadHashrateCSVValueErrors(t *testing.T) {
	cases := map[string]string{
		"bad year":          "year,avg_hashrate_PHs\ntwenty,1.2\n",
		"bad hashrate":      "year,avg_hashrate_PHs\n2016,fast\n",
		"negative hashrate": "year,avg_hashrate_PHs\n2016,-1.2\n",
		"non-finite":        "year,avg_hashrate_PHs\n2016,NaN\n",
		"duplicate year":    "year,avg_hashrate_PHs\n2016,1.2\n2016,3.4\n",
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := LoadHashrateCSV(writeCSV(t, content))
			if !errors.Is(err, ErrValue) {
				t.Fatalf("expected ErrValue, got %v", err)
			}
		})
	}
}

func TestLoadHashrateCSVRowNumberInError(t *testing.T) {
	path := writeCSV(t, "year,avg_hashrate_PHs\n2016,1.2\n2017,bad\n")
	_, err := LoadHashrateCSV(path)
	if err == nil {
		t.Fatal("expected error")
	}
	if got := err.Error(); !strings.Contains(got, "row 2") {
		t.Errorf("error should identify row 2, got %q", got)
	}
}

func TestListDatasets(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.csv", "b.csv", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	datasets, err := ListDatasets(dir)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(datasets) != 2 {
		t.Fatalf("expected 2 datasets, got %d: %+v", len(datasets), datasets)
	}

	missing, err := ListDatasets(filepath.Join(dir, "nope"))
	if err != nil || missing != nil {
		t.Fatalf("missing dir should yield empty catalog, got %v, %v", missing, err)
	}
}
