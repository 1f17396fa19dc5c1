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

var ErrInputMethodNotFound = errors.New("input method not found")

type InputMethodService struct {
	repo   *repository.InputMethodRepository
	logger *zap.Logger
}

func NewInputMethodService(repo *repository.InputMethodRepository, logger *zap.Logger) *InputMethodService {
	return &InputMethodService{
		repo:   repo,
		logger: logger,
	}
}

func (s *InputMethodService) Create(ctx context.Context, name string, isActive bool) (*models.InputMethod, error) {
	now := time.Now()
	im := &models.InputMethod{
		ID:        uuid.New(),
		Name:      name,
		IsActive:  isActive,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, im); err != nil {
		return nil, fmt.Errorf("create input method: %w", err)
	}
	return im, nil
}

func (s *InputMethodService) FindOne(ctx context.Context, id uuid.UUID) (*models.InputMethod, error) {
	im, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInputMethodNotFound
		}
		return nil, fmt.Errorf("fetch input method: %w", err)
	}
	return im, nil
}

func (s *InputMethodService) FindAll(ctx context.Context) ([]*models.InputMethod, error) {
	methods, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch input methods: %w", err)
	}
	return methods, nil
}

func (s *InputMethodService) Update(ctx context.Context, id uuid.UUID, name *string, isActive *bool) (*models.InputMethod, error) {
	im, err := s.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}

	if name != nil {
		im.Name = *name
	}
	if isActive != nil {
		im.IsActive = *isActive
	}
	im.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, im); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInputMethodNotFound
		}
		return nil, fmt.Errorf("update input method: %w", err)
	}
	return im, nil
}

func (s *InputMethodService) Remove(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrInputMethodNotFound
		}
		return fmt.Errorf("delete input method: %w", err)
	}
	return nil
}
