package usecase

import (
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// StatsUseCase agregados del panel admin.
type StatsUseCase struct {
	repo repository.StatsRepository
}

// NewStatsUseCase construye el caso de uso.
func NewStatsUseCase(repo repository.StatsRepository) *StatsUseCase {
	return &StatsUseCase{repo: repo}
}

// Get devuelve los contadores del panel.
func (uc *StatsUseCase) Get() (*dto.StatsResponse, error) {
	stats, err := uc.repo.Get()
	if err != nil {
		return nil, err
	}
	return &dto.StatsResponse{
		TotalProducts:  stats.TotalProducts,
		ActiveUsers:    stats.ActiveUsers,
		TotalLocations: stats.TotalLocations,
		TotalUnits:     stats.TotalUnits,
	}, nil
}
