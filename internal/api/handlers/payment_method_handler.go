package handlers

import (
	"errors"

	"github.com/betoquiroga/edmoney-backend/internal/dto"
	"github.com/betoquiroga/edmoney-backend/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type PaymentMethodHandler struct {
	pmService *service.PaymentMethodService
	logger    *zap.Logger
}

func NewPaymentMethodHandler(pmService *service.PaymentMethodService, logger *zap.Logger) *PaymentMethodHandler {
	return &PaymentMethodHandler{
		pmService: pmService,
		logger:    logger,
	}
}

func (h *PaymentMethodHandler) Create(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req dto.CreatePaymentMethodRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	pm, err := h.pmService.Create(c.Context(), userID, req.Name, isActive)
	if err != nil {
		h.logger.Error("Failed to create payment method", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create payment method",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.NewPaymentMethodResponse(pm))
}

func (h *PaymentMethodHandler) List(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	methods, err := h.pmService.FindAll(c.Context(), userID)
	if err != nil {
		h.logger.Error("Failed to list payment methods", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch payment methods",
		})
	}

	return c.JSON(dto.NewPaymentMethodResponses(methods))
}

func (h *PaymentMethodHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid payment method id",
		})
	}

	pm, err := h.pmService.FindOne(c.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrPaymentMethodNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Payment method not found",
			})
		}
		h.logger.Error("Failed to fetch payment method", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch payment method",
		})
	}

	return c.JSON(dto.NewPaymentMethodResponse(pm))
}

func (h *PaymentMethodHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid payment method id",
		})
	}

	var req dto.UpdatePaymentMethodRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	pm, err := h.pmService.Update(c.Context(), id, req.Name, req.IsActive)
	if err != nil {
		if errors.Is(err, service.ErrPaymentMethodNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Payment method not found",
			})
		}
		h.logger.Error("Failed to update payment method", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update payment method",
		})
	}

	return c.JSON(dto.NewPaymentMethodResponse(pm))
}

func (h *PaymentMethodHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid payment method id",
		})
	}

	if err := h.pmService.Remove(c.Context(), id); err != nil {
		if errors.Is(err, service.ErrPaymentMethodNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Payment method not found",
			})
		}
		h.logger.Error("Failed to delete payment method", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete payment method",
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
