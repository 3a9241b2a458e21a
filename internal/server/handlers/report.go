package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/manzoorshoro/crypto-market-report/internal/application/report"
	"github.com/manzoorshoro/crypto-market-report/internal/domain"
)

type ReportHandler struct {
	ReportSvc report.IReportService
	Logger    zerolog.Logger
}

func NewReportHandler(reportSvc report.IReportService, logger zerolog.Logger) *ReportHandler {
	return &ReportHandler{
		ReportSvc: reportSvc,
		Logger:    logger,
	}
}

// GetReport serves the current market report, rebuilding it when the cached
// copy has expired. A fetch failure aborts the whole cycle: no partial
// report is ever returned.
func (h *ReportHandler) GetReport(c *gin.Context) {
	result, err := h.ReportSvc.Report(c.Request.Context())
	if err != nil {
		h.Logger.Error().Err(err).Msg("Failed to build report")
		c.JSON(http.StatusBadGateway, domain.ApiResponse{
			Message: "Failed to fetch data from CoinGecko: " + err.Error(),
			Success: false,
			Status:  http.StatusBadGateway,
		})
		return
	}

	c.JSON(http.StatusOK, domain.ApiResponse{
		Message: "market report",
		Success: true,
		Status:  http.StatusOK,
		Data:    result,
	})
}

// RefreshReport invalidates the cache and rebuilds immediately. Wired to
// the dashboard's refresh button.
func (h *ReportHandler) RefreshReport(c *gin.Context) {
	result, err := h.ReportSvc.Refresh(c.Request.Context())
	if err != nil {
		h.Logger.Error().Err(err).Msg("Failed to refresh report")
		c.JSON(http.StatusBadGateway, domain.ApiResponse{
			Message: "Failed to fetch data from CoinGecko: " + err.Error(),
			Success: false,
			Status:  http.StatusBadGateway,
		})
		return
	}

	c.JSON(http.StatusOK, domain.ApiResponse{
		Message: "report refreshed",
		Success: true,
		Status:  http.StatusOK,
		Data:    result,
	})
}
