package handlers

import (
	"errors"

	"github.com/betoquiroga/edmoney-backend/internal/dto"
	"github.com/betoquiroga/edmoney-backend/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type InputMethodHandler struct {
	imService *service.InputMethodService
	logger    *zap.Logger
}

func NewInputMethodHandler(imService *service.InputMethodService, logger *zap.Logger) *InputMethodHandler {
	return &InputMethodHandler{
		imService: imService,
		logger:    logger,
	}
}

func (h *InputMethodHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateInputMethodRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	im, err := h.imService.Create(c.Context(), req.Name, isActive)
	if err != nil {
		h.logger.Error("Failed to create input method", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create input method",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.NewInputMethodResponse(im))
}

func (h *InputMethodHandler) List(c *fiber.Ctx) error {
	methods, err := h.imService.FindAll(c.Context())
	if err != nil {
		h.logger.Error("Failed to list input methods", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch input methods",
		})
	}

	return c.JSON(dto.NewInputMethodResponses(methods))
}

func (h *InputMethodHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input method id",
		})
	}

	im, err := h.imService.FindOne(c.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrInputMethodNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Input method not found",
			})
		}
		h.logger.Error("Failed to fetch input method", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch input method",
		})
	}

	return c.JSON(dto.NewInputMethodResponse(im))
}

func (h *InputMethodHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input method id",
		})
	}

	var req dto.UpdateInputMethodRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	im, err := h.imService.Update(c.Context(), id, req.Name, req.IsActive)
	if err != nil {
		if errors.Is(err, service.ErrInputMethodNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Input method not found",
			})
		}
		h.logger.Error("Failed to update input method", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update input method",
		})
	}

	return c.JSON(dto.NewInputMethodResponse(im))
}

func (h *InputMethodHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input method id",
		})
	}

	if err := h.imService.Remove(c.Context(), id); err != nil {
		if errors.Is(err, service.ErrInputMethodNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Input method not found",
			})
		}
		h.logger.Error("Failed to delete input method", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete input method",
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
