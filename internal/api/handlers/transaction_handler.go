package handlers

import (
	"errors"

	"github.com/betoquiroga/edmoney-backend/internal/dto"
	"github.com/betoquiroga/edmoney-backend/internal/models"
	"github.com/betoquiroga/edmoney-backend/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type TransactionHandler struct {
	txService      *service.TransactionService
	metricsService *service.MetricsService
	logger         *zap.Logger
}

func NewTransactionHandler(txService *service.TransactionService, metricsService *service.MetricsService, logger *zap.Logger) *TransactionHandler {
	return &TransactionHandler{
		txService:      txService,
		metricsService: metricsService,
		logger:         logger,
	}
}

func (h *TransactionHandler) Create(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req dto.CreateTransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	inputMethodID, err := uuid.Parse(req.InputMethodID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input_method_id",
		})
	}

	input := service.CreateTransactionInput{
		UserID:          userID,
		CategoryID:      req.CategoryID,
		InputMethodID:   inputMethodID,
		Type:            models.TransactionType(req.Type),
		Amount:          req.Amount,
		Currency:        req.Currency,
		TransactionDate: req.TransactionDate,
		Description:     req.Description,
	}
	if req.IsRecurring != nil {
		input.IsRecurring = *req.IsRecurring
	}
	if req.PaymentMethodID != nil {
		pmID, err := uuid.Parse(*req.PaymentMethodID)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid payment_method_id",
			})
		}
		input.PaymentMethodID = &pmID
	}
	if req.RecurringID != nil {
		recurringID, err := uuid.Parse(*req.RecurringID)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid recurring_id",
			})
		}
		input.RecurringID = &recurringID
	}

	tx, err := h.txService.Create(c.Context(), input)
	if err != nil {
		if errors.Is(err, service.ErrInvalidType) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Type must be one of: income, expense, transfer",
			})
		}
		h.logger.Error("Failed to create transaction", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create transaction",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.NewTransactionResponse(tx))
}

func (h *TransactionHandler) List(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	transactions, err := h.txService.FindAll(c.Context(), userID)
	if err != nil {
		h.logger.Error("Failed to list transactions", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch transactions",
		})
	}

	return c.JSON(dto.NewTransactionResponses(transactions))
}

// Summary serves GET /transactions/summary: lifetime balance and
// totals, zeros for users without data.
func (h *TransactionHandler) Summary(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	summary, err := h.metricsService.GetSummary(c.Context(), userID)
	if err != nil {
		h.logger.Error("Failed to compute summary", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to compute summary",
		})
	}

	return c.JSON(summary)
}

// Recent serves GET /transactions/recent?limit= with category names
// resolved.
func (h *TransactionHandler) Recent(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	limit := c.QueryInt("limit", 0)

	transactions, err := h.txService.Recent(c.Context(), userID, limit)
	if err != nil {
		h.logger.Error("Failed to fetch recent transactions", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch recent transactions",
		})
	}

	return c.JSON(dto.NewTransactionResponses(transactions))
}

// TotalsByPeriod serves GET /transactions/totals-by-period.
// startDate and endDate are required; type is optional.
func (h *TransactionHandler) TotalsByPeriod(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	startParam := c.Query("startDate")
	endParam := c.Query("endDate")
	if startParam == "" || endParam == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "startDate and endDate are required",
		})
	}

	start, err := parseDateParam(startParam, false)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid startDate",
		})
	}
	end, err := parseDateParam(endParam, true)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid endDate",
		})
	}

	txType := models.TransactionType(c.Query("type"))

	totals, err := h.txService.TotalsByPeriod(c.Context(), userID, txType, start, end)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidType):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Type must be one of: income, expense, transfer",
			})
		case errors.Is(err, service.ErrInvalidDateRange):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "endDate must not precede startDate",
			})
		}
		h.logger.Error("Failed to compute period totals", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to compute period totals",
		})
	}

	return c.JSON(totals)
}

// Recurring serves GET /transactions/recurring/:recurringId.
func (h *TransactionHandler) Recurring(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	recurringID, err := uuid.Parse(c.Params("recurringId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid recurring id",
		})
	}

	transactions, err := h.txService.FindByRecurringID(c.Context(), userID, recurringID)
	if err != nil {
		h.logger.Error("Failed to fetch recurring series", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch recurring transactions",
		})
	}

	return c.JSON(dto.NewTransactionResponses(transactions))
}

func (h *TransactionHandler) Get(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid transaction id",
		})
	}

	tx, err := h.txService.FindOne(c.Context(), id, userID)
	if err != nil {
		if errors.Is(err, service.ErrTransactionNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Transaction not found",
			})
		}
		h.logger.Error("Failed to fetch transaction", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch transaction",
		})
	}

	return c.JSON(dto.NewTransactionResponse(tx))
}

func (h *TransactionHandler) Update(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid transaction id",
		})
	}

	var req dto.UpdateTransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	input := service.UpdateTransactionInput{
		CategoryID:      req.CategoryID,
		Amount:          req.Amount,
		Currency:        req.Currency,
		TransactionDate: req.TransactionDate,
		Description:     req.Description,
		IsRecurring:     req.IsRecurring,
	}
	if req.Type != nil {
		txType := models.TransactionType(*req.Type)
		input.Type = &txType
	}
	if req.PaymentMethodID != nil {
		pmID, err := uuid.Parse(*req.PaymentMethodID)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid payment_method_id",
			})
		}
		input.PaymentMethodID = &pmID
	}

	tx, err := h.txService.Update(c.Context(), id, userID, input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTransactionNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Transaction not found",
			})
		case errors.Is(err, service.ErrInvalidType):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Type must be one of: income, expense, transfer",
			})
		}
		h.logger.Error("Failed to update transaction", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update transaction",
		})
	}

	return c.JSON(dto.NewTransactionResponse(tx))
}

func (h *TransactionHandler) Delete(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid transaction id",
		})
	}

	if err := h.txService.Remove(c.Context(), id, userID); err != nil {
		if errors.Is(err, service.ErrTransactionNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Transaction not found",
			})
		}
		h.logger.Error("Failed to delete transaction", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete transaction",
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
