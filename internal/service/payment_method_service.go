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

var ErrPaymentMethodNotFound = errors.New("payment method not found")

type PaymentMethodService struct {
	repo   *repository.PaymentMethodRepository
	logger *zap.Logger
}

func NewPaymentMethodService(repo *repository.PaymentMethodRepository, logger *zap.Logger) *PaymentMethodService {
	return &PaymentMethodService{
		repo:   repo,
		logger: logger,
	}
}

func (s *PaymentMethodService) Create(ctx context.Context, userID uuid.UUID, name string, isActive bool) (*models.PaymentMethod, error) {
	now := time.Now()
	pm := &models.PaymentMethod{
		ID:        uuid.New(),
		UserID:    &userID,
		Name:      name,
		IsActive:  isActive,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, pm); err != nil {
		return nil, fmt.Errorf("create payment method: %w", err)
	}
	return pm, nil
}

func (s *PaymentMethodService) FindOne(ctx context.Context, id uuid.UUID) (*models.PaymentMethod, error) {
	pm, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPaymentMethodNotFound
		}
		return nil, fmt.Errorf("fetch payment method: %w", err)
	}
	return pm, nil
}

func (s *PaymentMethodService) FindAll(ctx context.Context, userID uuid.UUID) ([]*models.PaymentMethod, error) {
	methods, err := s.repo.ListVisible(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("fetch payment methods: %w", err)
	}
	return methods, nil
}

func (s *PaymentMethodService) Update(ctx context.Context, id uuid.UUID, name *string, isActive *bool) (*models.PaymentMethod, error) {
	pm, err := s.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}

	if name != nil {
		pm.Name = *name
	}
	if isActive != nil {
		pm.IsActive = *isActive
	}
	pm.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, pm); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPaymentMethodNotFound
		}
		return nil, fmt.Errorf("update payment method: %w", err)
	}
	return pm, nil
}

func (s *PaymentMethodService) Remove(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrPaymentMethodNotFound
		}
		return fmt.Errorf("delete payment method: %w", err)
	}
	return nil
}
