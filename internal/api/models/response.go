package models

// ReportResponse represents the response from a report run.
type ReportResponse struct {
	Status  string        `json:"status"`
	Summary ReportSummary `json:"summary"`
	Rows    []ReportRow   `json:"rows,omitempty"`
}

// ReportSummary contains aggregated results.
type ReportSummary struct {
	Years     int     `json:"years"`
	FirstYear int     `json:"first_year"`
	LastYear  int     `json:"last_year"`
	TotalTWh  float64 `json:"total_twh"`
}

// ReportRow represents one year in the report.
type ReportRow struct {
	Year             int     `json:"year"`
	AvgHashratePHs   float64 `json:"avg_hashrate_phs"`
	EfficiencyJPerTH float64 `json:"efficiency_j_per_th"`
	EnergyTWh        float64 `json:"energy_twh"`
}

// CurvePoint is one sampled year of the efficiency curve.
type CurvePoint struct {
	Year   int     `json:"year"`
	JPerTH float64 `json:"j_per_th"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
