package model

// HashrateRecord is one year of observed network hashrate.
// Units:
// - AvgHashratePHs: PH/s (petahashes per second), averaged over the year
//
// Records are produced by the loader and treated as immutable afterwards.
// Years are unique within a dataset but need not be contiguous.
type HashrateRecord struct {
	Year           int
	AvgHashratePHs float64
}

// EnergyResult is the derived estimate for one year.
// Units:
// - EfficiencyJPerTH: J/TH (joules per terahash)
// - EnergyTWh: TWh per year
type EnergyResult struct {
	Year             int
	AvgHashratePHs   float64
	EfficiencyJPerTH float64
	EnergyTWh        float64
}
