package handlers

import (
	"errors"
	"io"
	"time"

	"finsight/internal/models"
	"finsight/internal/repository"
	"finsight/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type StatementHandler struct {
	stmtService *service.StatementService
	logger      *zap.Logger
}

func NewStatementHandler(stmtService *service.StatementService, logger *zap.Logger) *StatementHandler {
	return &StatementHandler{
		stmtService: stmtService,
		logger:      logger,
	}
}

// UploadStatement godoc
// @Summary Upload a bank statement
// @Description Upload a statement PDF, parse it into transactions and persist them
// @Tags statements
// @Accept multipart/form-data
// @Produce json
// @Param statementFile formData file true "Statement PDF"
// @Param password formData string false "PDF password"
// @Security Bearer
// @Success 201 {object} dto.UploadStatementResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /api/v1/statements/upload [post]
func (h *StatementHandler) UploadStatement(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	file, err := c.FormFile("statementFile")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No PDF file uploaded",
		})
	}
	password := c.FormValue("password")

	src, err := file.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to open file",
		})
	}
	defer src.Close()

	blob, err := io.ReadAll(src)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to read file",
		})
	}

	resp, err := h.stmtService.UploadStatement(c.Context(), userID, blob, file.Filename, password)
	if err != nil {
		if errors.Is(err, service.ErrDocumentDecrypt) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		h.logger.Error("Failed to process statement", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error processing statement",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

// ListStatements godoc
// @Summary List uploaded statements
// @Tags statements
// @Produce json
// @Security Bearer
// @Success 200 {array} dto.StatementResponse
// @Failure 401 {object} map[string]string
// @Router /api/v1/statements [get]
func (h *StatementHandler) ListStatements(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	statements, err := h.stmtService.ListStatements(c.Context(), userID)
	if err != nil {
		h.logger.Error("Failed to list statements", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list statements",
		})
	}

	return c.JSON(statements)
}

// DeleteStatement godoc
// @Summary Delete a statement and its transactions
// @Tags statements
// @Produce json
// @Param id path string true "Statement ID"
// @Security Bearer
// @Success 200 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/statements/{id} [delete]
func (h *StatementHandler) DeleteStatement(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	statementID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid statement ID",
		})
	}

	if err := h.stmtService.DeleteStatement(c.Context(), userID, statementID); err != nil {
		if errors.Is(err, service.ErrStatementNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Statement not found",
			})
		}
		h.logger.Error("Failed to delete statement", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete statement",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Statement deleted",
	})
}

// ListTransactions godoc
// @Summary List transactions
// @Description List the caller's transactions with optional filters, newest first
// @Tags transactions
// @Produce json
// @Param startDate query string false "Start date (YYYY-MM-DD)"
// @Param endDate query string false "End date (YYYY-MM-DD)"
// @Param type query string false "Transaction type: credit or debit"
// @Param category query string false "Category"
// @Security Bearer
// @Success 200 {array} dto.TransactionResponse
// @Failure 401 {object} map[string]string
// @Router /api/v1/transactions [get]
func (h *StatementHandler) ListTransactions(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	var filters repository.TransactionFilters
	if v := c.Query("startDate"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid startDate",
			})
		}
		filters.StartDate = &t
	}
	if v := c.Query("endDate"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid endDate",
			})
		}
		filters.EndDate = &t
	}
	filters.Type = models.TransactionType(c.Query("type"))
	filters.Category = models.TransactionCategory(c.Query("category"))

	transactions, err := h.stmtService.ListTransactions(c.Context(), userID, filters)
	if err != nil {
		h.logger.Error("Failed to list transactions", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error fetching transactions",
		})
	}

	return c.JSON(transactions)
}

func getUserID(c *fiber.Ctx) (uuid.UUID, error) {
	userIDStr, ok := c.Locals("userID").(string)
	if !ok {
		return uuid.Nil, fiber.ErrUnauthorized
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return uuid.Nil, err
	}

	return userID, nil
}
