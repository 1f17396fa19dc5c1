package handlers

import (
	"errors"

	"github.com/betoquiroga/edmoney-backend/internal/dto"
	"github.com/betoquiroga/edmoney-backend/internal/models"
	"github.com/betoquiroga/edmoney-backend/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type CategoryHandler struct {
	categoryService *service.CategoryService
	logger          *zap.Logger
}

func NewCategoryHandler(categoryService *service.CategoryService, logger *zap.Logger) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
		logger:          logger,
	}
}

func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req dto.CreateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	input := service.CreateCategoryInput{
		UserID:   userID,
		Name:     req.Name,
		Type:     models.TransactionType(req.Type),
		Icon:     req.Icon,
		IsActive: true,
	}
	if req.IsDefault != nil {
		input.IsDefault = *req.IsDefault
	}
	if req.IsActive != nil {
		input.IsActive = *req.IsActive
	}

	category, err := h.categoryService.Create(c.Context(), input)
	if err != nil {
		if errors.Is(err, service.ErrInvalidType) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Type must be one of: income, expense, transfer",
			})
		}
		h.logger.Error("Failed to create category", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create category",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.NewCategoryResponse(category))
}

func (h *CategoryHandler) List(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	txType := models.TransactionType(c.Query("type"))

	var isDefault *bool
	if v := c.Query("isDefault"); v != "" {
		b := v == "true"
		isDefault = &b
	}

	categories, err := h.categoryService.FindAll(c.Context(), userID, txType, isDefault)
	if err != nil {
		if errors.Is(err, service.ErrInvalidType) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Type must be one of: income, expense, transfer",
			})
		}
		h.logger.Error("Failed to list categories", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch categories",
		})
	}

	return c.JSON(dto.NewCategoryResponses(categories))
}

func (h *CategoryHandler) Get(c *fiber.Ctx) error {
	category, err := h.categoryService.FindOne(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, service.ErrCategoryNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Category not found",
			})
		}
		h.logger.Error("Failed to fetch category", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch category",
		})
	}

	return c.JSON(dto.NewCategoryResponse(category))
}

func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	input := service.UpdateCategoryInput{
		Name:     req.Name,
		Icon:     req.Icon,
		IsActive: req.IsActive,
	}
	if req.Type != nil {
		txType := models.TransactionType(*req.Type)
		input.Type = &txType
	}

	category, err := h.categoryService.Update(c.Context(), c.Params("id"), input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCategoryNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Category not found",
			})
		case errors.Is(err, service.ErrCategoryProtected):
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Default categories cannot be modified",
			})
		case errors.Is(err, service.ErrInvalidType):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Type must be one of: income, expense, transfer",
			})
		}
		h.logger.Error("Failed to update category", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update category",
		})
	}

	return c.JSON(dto.NewCategoryResponse(category))
}

func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	if err := h.categoryService.Remove(c.Context(), c.Params("id")); err != nil {
		switch {
		case errors.Is(err, service.ErrCategoryNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Category not found",
			})
		case errors.Is(err, service.ErrCategoryProtected):
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Default categories cannot be deleted",
			})
		}
		h.logger.Error("Failed to delete category", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete category",
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
