package dto

import (
	"time"

	"finsight/internal/models"
)

// CurrentFiscalYearResponse always carries the resolved window bounds;
// Summary is null when no transaction falls inside the window.
type CurrentFiscalYearResponse struct {
	FYStartDate time.Time                 `json:"fy_start_date"`
	FYEndDate   time.Time                 `json:"fy_end_date"`
	Summary     *models.FiscalYearSummary `json:"summary"`
}
