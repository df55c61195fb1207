package api

import (
	"net/http"

	resdto "hotel-nova/internal/handler/dto/response"
	"hotel-nova/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	reportUseCase usecase.ReportUseCase
}

func NewReportHandler(reportUseCase usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{
		reportUseCase: reportUseCase,
	}
}

// @Summary Revenue report
// @Description Total revenue across every checked-out stay
// @Tags reports
// @Produce json
// @Success 200 {object} resdto.RevenueResponse
// @Router /reports/revenue [get]
func (h *ReportHandler) Revenue(c *gin.Context) {
	report, err := h.reportUseCase.TotalRevenue(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromRevenueReport(report))
}

// @Summary Occupancy report
// @Description Room counts per housekeeping status
// @Tags reports
// @Produce json
// @Success 200 {object} resdto.OccupancyResponse
// @Router /reports/occupancy [get]
func (h *ReportHandler) Occupancy(c *gin.Context) {
	counts, err := h.reportUseCase.Occupancy(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromOccupancyCounts(counts))
}
