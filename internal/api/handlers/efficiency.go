package handlers

import (
	"net/http"
	"strconv"

	"github.com/zfacksandahler/btc-energy-model/internal/api/models"
	"github.com/zfacksandahler/btc-energy-model/internal/model"

	"github.com/gin-gonic/gin"
)

// GetEfficiencyCurve handles GET /api/v1/efficiency?from=YYYY&to=YYYY
func GetEfficiencyCurve(c *gin.Context) {
	from, err := yearParam(c, "from", 2014)
	if err != nil {
		badRequest(c, "INVALID_PARAM", err.Error())
		return
	}
	to, err := yearParam(c, "to", 2024)
	if err != nil {
		badRequest(c, "INVALID_PARAM", err.Error())
		return
	}
	if to < from {
		badRequest(c, "INVALID_PARAM", "to must be >= from")
		return
	}

	curve := model.DefaultCurve()
	points := make([]models.CurvePoint, 0, to-from+1)
	for year := from; year <= to; year++ {
		points = append(points, models.CurvePoint{
			Year:   year,
			JPerTH: curve.JPerTH(year),
		})
	}

	c.JSON(http.StatusOK, gin.H{"points": points})
}

func yearParam(c *gin.Context, name string, def int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}
