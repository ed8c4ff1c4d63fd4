package service

import (
	"context"

	"github.com/lifeline-salud/backend/internal/db"
	"github.com/lifeline-salud/backend/internal/model"
)

type InventoryService struct {
	repo *db.Postgres
}

func NewInventoryService(repo *db.Postgres) *InventoryService {
	return &InventoryService{repo: repo}
}

func (s *InventoryService) CreateInventory(ctx context.Context, req model.CreateInventoryRequest) (*model.Inventory, error) {
	id, err := s.repo.CreateInventory(ctx, req)
	if err != nil {
		return nil, err
	}
	return &model.Inventory{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Type:        req.Type,
		Questions:   req.Questions,
	}, nil
}

func (s *InventoryService) GetInventoryDetails(ctx context.Context, inventoryID int64) (*model.Inventory, error) {
	return s.repo.GetInventoryDetails(ctx, inventoryID)
}

func (s *InventoryService) GetInventories(ctx context.Context) ([]model.Inventory, error) {
	return s.repo.GetInventories(ctx)
}

func (s *InventoryService) CreateInventoryResponse(ctx context.Context, inventoryID int64, req model.CreateInventoryResponseRequest) (*model.InventoryResponse, error) {
	id, err := s.repo.CreateInventoryResponse(ctx, inventoryID, req)
	if err != nil {
		return nil, err
	}
	return &model.InventoryResponse{
		ID:             id,
		InventoryID:    &inventoryID,
		MedicalRecord:  req.MedicalRecord,
		RespondentName: req.RespondentName,
		Answers:        req.Answers,
	}, nil
}

func (s *InventoryService) GetInventoryResponses(ctx context.Context, responseID int64) ([]model.InventoryResponse, error) {
	return s.repo.GetInventoryResponses(ctx, responseID)
}

func (s *InventoryService) GetAllInventoryResponses(ctx context.Context) ([]model.InventoryResponse, error) {
	return s.repo.GetAllInventoryResponses(ctx)
}
