package data

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/zfacksandahler/btc-energy-model/internal/model"
)

const (
	colYear     = "year"
	colHashrate = "avg_hashrate_PHs"
)

// LoadHashrateCSV parses a hashrate dataset.
//
// Expected format:
//
//	year,avg_hashrate_PHs
//	2016,1.2
//	2017,3.4
//
// Column order is free; the header is matched by name. Failures return
// ErrSourceNotFound, ErrSchema or ErrValue (wrapped with context such as
// the offending row number).
func LoadHashrateCSV(path string) ([]model.HashrateRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: %s is empty", ErrSchema, path)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: reading header: %v", ErrSchema, err)
	}

	yearIdx, hashrateIdx := -1, -1
	for i, name := range header {
		switch strings.TrimSpace(name) {
		case colYear:
			yearIdx = i
		case colHashrate:
			hashrateIdx = i
		}
	}
	if yearIdx < 0 {
		return nil, fmt.Errorf("%w: missing column %q", ErrSchema, colYear)
	}
	if hashrateIdx < 0 {
		return nil, fmt.Errorf("%w: missing column %q", ErrSchema, colHashrate)
	}

	var records []model.HashrateRecord
	seen := map[int]bool{}
	for rowNum := 1; ; rowNum++ {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", ErrValue, rowNum, err)
		}

		year, err := strconv.Atoi(strings.TrimSpace(row[yearIdx]))
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: year %q is not an integer", ErrValue, rowNum, row[yearIdx])
		}
		hashrate, err := strconv.ParseFloat(strings.TrimSpace(row[hashrateIdx]), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: hashrate %q is not a number", ErrValue, rowNum, row[hashrateIdx])
		}
		if math.IsNaN(hashrate) || math.IsInf(hashrate, 0) {
			return nil, fmt.Errorf("%w: row %d: hashrate %q is not finite", ErrValue, rowNum, row[hashrateIdx])
		}
		if hashrate < 0 {
			return nil, fmt.Errorf("%w: row %d: hashrate %v is negative", ErrValue, rowNum, hashrate)
		}
		if seen[year] {
			return nil, fmt.Errorf("%w: row %d: duplicate year %d", ErrValue, rowNum, year)
		}
		seen[year] = true

		records = append(records, model.HashrateRecord{
			Year:           year,
			AvgHashratePHs: hashrate,
		})
	}

	return records, nil
}
