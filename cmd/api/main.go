package main

import (
	"fmt"
	"log"
	"os"

	"github.com/zfacksandahler/btc-energy-model/internal/api/handlers"
	"github.com/zfacksandahler/btc-energy-model/internal/api/middleware"
	"github.com/zfacksandahler/btc-energy-model/internal/data"

	"github.com/gin-gonic/gin"
)

func main() {
	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}

	if dir := data.DefaultDataDir(); dir != "" {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			log.Printf("Data directory: %s", dir)
		} else {
			log.Printf("Data directory not found at: %s (error: %v)", dir, err)
		}
	}

	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	router.Use(middleware.CORS())
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler())

	reportHandler := handlers.NewReportHandler()

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	{
		api.POST("/report", reportHandler.RunReport)
		api.GET("/efficiency", handlers.GetEfficiencyCurve)
		api.GET("/datasets", handlers.ListDatasets)
	}

	addr := fmt.Sprintf(":%s", port)
	log.Printf("Starting API server on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
