package service

import (
	"context"

	"github.com/lifeline-salud/backend/internal/db"
	"go.uber.org/zap"
)

// AdminService wraps the destructive maintenance procedures.
type AdminService struct {
	repo   *db.Postgres
	logger *zap.Logger
}

func NewAdminService(repo *db.Postgres, logger *zap.Logger) *AdminService {
	return &AdminService{repo: repo, logger: logger}
}

func (s *AdminService) DeleteAllContent(ctx context.Context) error {
	s.logger.Warn("deleting all content")
	return s.repo.DeleteAllContent(ctx)
}

func (s *AdminService) DropAllTables(ctx context.Context) error {
	s.logger.Warn("dropping all tables and views")
	return s.repo.DropAllTables(ctx)
}

func (s *AdminService) DropAllProcedures(ctx context.Context) error {
	s.logger.Warn("dropping all stored procedures")
	return s.repo.DropAllProcedures(ctx)
}
