package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/betoquiroga/edmoney-backend/internal/models"
	"github.com/betoquiroga/edmoney-backend/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrCategoryNotFound  = errors.New("category not found")
	ErrCategoryProtected = errors.New("default categories cannot be modified")
)

type CategoryService struct {
	repo   *repository.CategoryRepository
	logger *zap.Logger
}

func NewCategoryService(repo *repository.CategoryRepository, logger *zap.Logger) *CategoryService {
	return &CategoryService{
		repo:   repo,
		logger: logger,
	}
}

type CreateCategoryInput struct {
	UserID    uuid.UUID
	Name      string
	Type      models.TransactionType
	Icon      string
	IsDefault bool
	IsActive  bool
}

func (s *CategoryService) Create(ctx context.Context, input CreateCategoryInput) (*models.Category, error) {
	if !input.Type.Valid() {
		return nil, ErrInvalidType
	}

	now := time.Now()
	userID := input.UserID
	c := &models.Category{
		ID:        uuid.NewString(),
		UserID:    &userID,
		Name:      input.Name,
		Type:      input.Type,
		Icon:      input.Icon,
		IsDefault: input.IsDefault,
		IsActive:  input.IsActive,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}

	return c, nil
}

func (s *CategoryService) FindOne(ctx context.Context, id string) (*models.Category, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("fetch category: %w", err)
	}
	return c, nil
}

// FindAll lists the user's categories together with the default
// (global) ones, optionally filtered by type and is_default.
func (s *CategoryService) FindAll(ctx context.Context, userID uuid.UUID, txType models.TransactionType, isDefault *bool) ([]*models.Category, error) {
	if txType != "" && !txType.Valid() {
		return nil, ErrInvalidType
	}

	categories, err := s.repo.ListVisible(ctx, userID, txType, isDefault)
	if err != nil {
		return nil, fmt.Errorf("fetch categories: %w", err)
	}
	return categories, nil
}

type UpdateCategoryInput struct {
	Name     *string
	Type     *models.TransactionType
	Icon     *string
	IsActive *bool
}

func (s *CategoryService) Update(ctx context.Context, id string, input UpdateCategoryInput) (*models.Category, error) {
	c, err := s.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}
	if c.IsDefault {
		return nil, ErrCategoryProtected
	}

	if input.Name != nil {
		c.Name = *input.Name
	}
	if input.Type != nil {
		if !input.Type.Valid() {
			return nil, ErrInvalidType
		}
		c.Type = *input.Type
	}
	if input.Icon != nil {
		c.Icon = *input.Icon
	}
	if input.IsActive != nil {
		c.IsActive = *input.IsActive
	}
	c.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, c); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("update category: %w", err)
	}

	return c, nil
}

func (s *CategoryService) Remove(ctx context.Context, id string) error {
	c, err := s.FindOne(ctx, id)
	if err != nil {
		return err
	}
	if c.IsDefault {
		return ErrCategoryProtected
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrCategoryNotFound
		}
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}
