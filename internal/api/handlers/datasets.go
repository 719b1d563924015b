package handlers

import (
	"net/http"

	"github.com/zfacksandahler/btc-energy-model/internal/data"

	"github.com/gin-gonic/gin"
)

// ListDatasets handles GET /api/v1/datasets
func ListDatasets(c *gin.Context) {
	datasets, err := data.ListDatasets(data.DefaultDataDir())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": gin.H{
				"code":    "DATASET_SCAN_ERROR",
				"message": err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"datasets": datasets,
		"count":    len(datasets),
	})
}
