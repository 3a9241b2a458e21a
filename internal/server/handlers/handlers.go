package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/manzoorshoro/crypto-market-report/internal/application/report"
	"github.com/manzoorshoro/crypto-market-report/pkg/config"
)

type Handlers struct {
	ReportSvc report.IReportService
	Logger    zerolog.Logger
	Config    *config.Config
}

func New(reportSvc report.IReportService, logger zerolog.Logger, config *config.Config) *Handlers {
	return &Handlers{
		ReportSvc: reportSvc,
		Logger:    logger,
		Config:    config,
	}
}

func (h *Handlers) SetupHandlers(router *gin.Engine) {
	reportHandler := NewReportHandler(h.ReportSvc, h.Logger)
	dashboardHandler := NewDashboardHandler()
	healthHandler := NewHealthHandler()

	router.GET("/", dashboardHandler.Page)

	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)

	v1 := router.Group("/v1")
	{
		v1.GET("/report", reportHandler.GetReport)
		v1.POST("/report/refresh", reportHandler.RefreshReport)
	}
}
