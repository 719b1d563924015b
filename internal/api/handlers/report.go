package handlers

import (
	"errors"
	"net/http"

	"github.com/zfacksandahler/btc-energy-model/internal/api/models"
	"github.com/zfacksandahler/btc-energy-model/internal/data"
	"github.com/zfacksandahler/btc-energy-model/internal/energy"
	"github.com/zfacksandahler/btc-energy-model/internal/model"

	"github.com/gin-gonic/gin"
)

// ReportHandler handles report-related requests
type ReportHandler struct{}

func NewReportHandler() *ReportHandler {
	return &ReportHandler{}
}

// RunReport handles POST /api/v1/report
func (h *ReportHandler) RunReport(c *gin.Context) {
	var req models.ReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "INVALID_REQUEST", err.Error())
		return
	}

	records, err := h.resolveRecords(req)
	if err != nil {
		writeLoadError(c, err)
		return
	}

	curve := model.DefaultCurve()
	if req.Config != nil {
		curve = model.EfficiencyCurve{
			BaselineYear:   req.Config.BaselineYear,
			BaselineJPerTH: req.Config.BaselineJPerTH,
			FloorYear:      req.Config.FloorYear,
			FloorJPerTH:    req.Config.FloorJPerTH,
		}
		if err := curve.Validate(); err != nil {
			badRequest(c, "INVALID_CONFIG", err.Error())
			return
		}
	}

	report, err := energy.New(curve).Run(records)
	if err != nil {
		badRequest(c, "EMPTY_DATASET", err.Error())
		return
	}

	resp := models.ReportResponse{
		Status: "completed",
		Summary: models.ReportSummary{
			Years:     len(report.Rows),
			FirstYear: report.Rows[0].Year,
			LastYear:  report.Rows[len(report.Rows)-1].Year,
			TotalTWh:  report.TotalTWh,
		},
	}
	if !req.Options.OmitRows {
		resp.Rows = make([]models.ReportRow, len(report.Rows))
		for i, row := range report.Rows {
			resp.Rows[i] = models.ReportRow{
				Year:             row.Year,
				AvgHashratePHs:   row.AvgHashratePHs,
				EfficiencyJPerTH: row.EfficiencyJPerTH,
				EnergyTWh:        row.EnergyTWh,
			}
		}
	}

	c.JSON(http.StatusOK, resp)
}

func (h *ReportHandler) resolveRecords(req models.ReportRequest) ([]model.HashrateRecord, error) {
	if req.Dataset != "" && len(req.Records) > 0 {
		return nil, errBothSources
	}
	if req.Dataset != "" {
		return data.LoadHashrateCSV(req.Dataset)
	}
	records := make([]model.HashrateRecord, 0, len(req.Records))
	seen := map[int]bool{}
	for _, in := range req.Records {
		if in.AvgHashratePHs < 0 {
			return nil, errNegativeInline
		}
		if seen[in.Year] {
			return nil, errDuplicateInline
		}
		seen[in.Year] = true
		records = append(records, model.HashrateRecord{
			Year:           in.Year,
			AvgHashratePHs: in.AvgHashratePHs,
		})
	}
	return records, nil
}

var (
	errBothSources     = errors.New("provide either dataset or records, not both")
	errNegativeInline  = errors.New("records contain a negative hashrate")
	errDuplicateInline = errors.New("records contain a duplicate year")
)

func writeLoadError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, data.ErrSourceNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "SOURCE_NOT_FOUND", Message: err.Error()},
		})
	case errors.Is(err, data.ErrSchema):
		badRequest(c, "SCHEMA_ERROR", err.Error())
	case errors.Is(err, data.ErrValue), errors.Is(err, errNegativeInline), errors.Is(err, errDuplicateInline):
		badRequest(c, "VALUE_ERROR", err.Error())
	default:
		badRequest(c, "LOAD_ERROR", err.Error())
	}
}

func badRequest(c *gin.Context, code, msg string) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error: models.ErrorDetail{Code: code, Message: msg},
	})
}
