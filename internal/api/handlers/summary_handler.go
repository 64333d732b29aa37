package handlers

import (
	"time"

	"finsight/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type SummaryHandler struct {
	summaryService *service.SummaryService
	logger         *zap.Logger
}

func NewSummaryHandler(summaryService *service.SummaryService, logger *zap.Logger) *SummaryHandler {
	return &SummaryHandler{
		summaryService: summaryService,
		logger:         logger,
	}
}

// Daily godoc
// @Summary Daily credit/debit totals
// @Tags summary
// @Produce json
// @Param startDate query string true "Start date (YYYY-MM-DD)"
// @Param endDate query string true "End date (YYYY-MM-DD)"
// @Security Bearer
// @Success 200 {array} models.DailySummary
// @Failure 400 {object} map[string]string
// @Router /api/v1/summary/daily [get]
func (h *SummaryHandler) Daily(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	from, to, err := dateRange(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	rows, err := h.summaryService.Daily(c.Context(), userID, from, to)
	if err != nil {
		h.logger.Error("Daily summary failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error getting daily summary",
		})
	}

	return c.JSON(rows)
}

// Weekly godoc
// @Summary Weekly credit/debit totals grouped by ISO week
// @Tags summary
// @Produce json
// @Param startDate query string true "Start date (YYYY-MM-DD)"
// @Param endDate query string true "End date (YYYY-MM-DD)"
// @Security Bearer
// @Success 200 {array} models.WeeklySummary
// @Failure 400 {object} map[string]string
// @Router /api/v1/summary/weekly [get]
func (h *SummaryHandler) Weekly(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	from, to, err := dateRange(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	rows, err := h.summaryService.Weekly(c.Context(), userID, from, to)
	if err != nil {
		h.logger.Error("Weekly summary failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error getting weekly summary",
		})
	}

	return c.JSON(rows)
}

// Monthly godoc
// @Summary Monthly credit/debit totals within a year
// @Tags summary
// @Produce json
// @Param year query int true "Calendar year"
// @Security Bearer
// @Success 200 {array} models.MonthlySummary
// @Failure 400 {object} map[string]string
// @Router /api/v1/summary/monthly [get]
func (h *SummaryHandler) Monthly(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	year := c.QueryInt("year")
	if year == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "year is required",
		})
	}

	rows, err := h.summaryService.Monthly(c.Context(), userID, year)
	if err != nil {
		h.logger.Error("Monthly summary failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error getting monthly summary",
		})
	}

	return c.JSON(rows)
}

// ByCategory godoc
// @Summary Debit totals grouped by category
// @Tags summary
// @Produce json
// @Param startDate query string true "Start date (YYYY-MM-DD)"
// @Param endDate query string true "End date (YYYY-MM-DD)"
// @Security Bearer
// @Success 200 {array} models.CategorySummary
// @Failure 400 {object} map[string]string
// @Router /api/v1/summary/category [get]
func (h *SummaryHandler) ByCategory(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	from, to, err := dateRange(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	rows, err := h.summaryService.ByCategory(c.Context(), userID, from, to)
	if err != nil {
		h.logger.Error("Category summary failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error getting category summary",
		})
	}

	return c.JSON(rows)
}

// CurrentFiscalYear godoc
// @Summary Totals for the fiscal year containing today
// @Tags summary
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.CurrentFiscalYearResponse
// @Router /api/v1/summary/current-fy [get]
func (h *SummaryHandler) CurrentFiscalYear(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	resp, err := h.summaryService.CurrentFiscalYear(c.Context(), userID)
	if err != nil {
		h.logger.Error("Current FY summary failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error getting current FY summary",
		})
	}

	return c.JSON(resp)
}

// LastThreeFiscalYears godoc
// @Summary Totals for the three most recent fiscal years
// @Tags summary
// @Produce json
// @Security Bearer
// @Success 200 {array} models.FiscalYearSummary
// @Router /api/v1/summary/last-3-fy [get]
func (h *SummaryHandler) LastThreeFiscalYears(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	rows, err := h.summaryService.LastThreeFiscalYears(c.Context(), userID)
	if err != nil {
		h.logger.Error("FY comparison failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error getting FY comparison",
		})
	}

	return c.JSON(rows)
}

func dateRange(c *fiber.Ctx) (time.Time, time.Time, error) {
	from, err := time.Parse("2006-01-02", c.Query("startDate"))
	if err != nil {
		return time.Time{}, time.Time{}, fiber.NewError(fiber.StatusBadRequest, "invalid or missing startDate")
	}
	to, err := time.Parse("2006-01-02", c.Query("endDate"))
	if err != nil {
		return time.Time{}, time.Time{}, fiber.NewError(fiber.StatusBadRequest, "invalid or missing endDate")
	}
	return from, to, nil
}
