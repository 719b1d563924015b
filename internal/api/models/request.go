package models

// ReportRequest represents the request body for running an estimate.
// Exactly one of Dataset or Records must be provided.
type ReportRequest struct {
	Dataset string          `json:"dataset,omitempty"` // path to a hashrate CSV
	Records []HashrateInput `json:"records,omitempty"` // inline dataset
	Config  *CurveConfig    `json:"config,omitempty"`  // optional curve override
	Options ReportOptions   `json:"options,omitempty"`
}

// HashrateInput is one inline per-year record.
type HashrateInput struct {
	Year           int     `json:"year"`
	AvgHashratePHs float64 `json:"avg_hashrate_phs"`
}

// CurveConfig overrides the efficiency-curve anchor points.
type CurveConfig struct {
	BaselineYear   int     `json:"baseline_year"`
	BaselineJPerTH float64 `json:"baseline_j_per_th"`
	FloorYear      int     `json:"floor_year"`
	FloorJPerTH    float64 `json:"floor_j_per_th"`
}

// ReportOptions contains optional report parameters.
type ReportOptions struct {
	OmitRows bool `json:"omit_rows,omitempty"` // return only the summary
}
