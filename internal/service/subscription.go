package service

import (
	"context"

	"github.com/lifeline-salud/backend/internal/db"
	"github.com/lifeline-salud/backend/internal/model"
)

type SubscriptionService struct {
	repo *db.Postgres
}

func NewSubscriptionService(repo *db.Postgres) *SubscriptionService {
	return &SubscriptionService{repo: repo}
}

func (s *SubscriptionService) CreateType(ctx context.Context, req model.CreateTypeRequest) (*model.TypeRecord, error) {
	id, err := s.repo.CreateType(ctx, req)
	if err != nil {
		return nil, err
	}
	return &model.TypeRecord{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		EntityType:  req.EntityType,
	}, nil
}

func (s *SubscriptionService) CreateSubscription(ctx context.Context, req model.CreateSubscriptionRequest) (*model.Subscription, error) {
	id, err := s.repo.CreateSubscription(ctx, req)
	if err != nil {
		return nil, err
	}
	return &model.Subscription{
		ID:            id,
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		BillingPeriod: req.BillingPeriod,
	}, nil
}
