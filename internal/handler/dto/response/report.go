package response

import (
	"hotel-nova/internal/usecase"

	"github.com/jinzhu/copier"
)

type RevenueResponse struct {
	CheckedOutCount int   `json:"checkedOutCount"`
	TotalCents      int64 `json:"totalCents"`
}

type OccupancyResponse struct {
	Total       int `json:"total"`
	Available   int `json:"available"`
	Occupied    int `json:"occupied"`
	Cleaning    int `json:"cleaning"`
	Maintenance int `json:"maintenance"`
}

func FromRevenueReport(r *usecase.RevenueReport) *RevenueResponse {
	var resp RevenueResponse
	_ = copier.Copy(&resp, r)
	return &resp
}

func FromOccupancyCounts(c *usecase.OccupancyCounts) *OccupancyResponse {
	var resp OccupancyResponse
	_ = copier.Copy(&resp, c)
	return &resp
}
