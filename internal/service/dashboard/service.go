package dashboard

import (
	"context"

	"github.com/m04kA/LondonHouse-ReservationService/internal/domain"
	"github.com/m04kA/LondonHouse-ReservationService/internal/service/dashboard/models"
)

// Service отдает статичный снимок дашборда. Решений на его основе не принимается.
type Service struct {
	snapshot domain.DashboardSnapshot
	logger   Logger
}

// NewService создает новый экземпляр сервиса дашборда
func NewService(snapshot domain.DashboardSnapshot, logger Logger) *Service {
	return &Service{
		snapshot: snapshot,
		logger:   logger,
	}
}

// Snapshot возвращает показатели дашборда
func (s *Service) Snapshot(ctx context.Context) (*models.DashboardResponse, error) {
	s.logger.Info("Snapshot: serving dashboard for period=%q", s.snapshot.Period)
	return models.FromDomainSnapshot(s.snapshot), nil
}
