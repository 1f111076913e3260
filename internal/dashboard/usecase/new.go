package usecase

import (
	"context"

	"hospital-coordinator/internal/dashboard"
	pkgLog "hospital-coordinator/pkg/log"
)

type implUseCase struct {
	l pkgLog.Logger
}

// New creates a new dashboard UseCase instance.
func New(l pkgLog.Logger) *implUseCase {
	return &implUseCase{l: l}
}

func (uc *implUseCase) Stats(ctx context.Context) dashboard.KPIStats {
	return dashboard.Stats()
}

func (uc *implUseCase) RevenueSeries(ctx context.Context) []dashboard.RevenuePoint {
	return dashboard.Revenue()
}

func (uc *implUseCase) InsuranceDistribution(ctx context.Context) []dashboard.InsuranceShare {
	return dashboard.Insurance()
}
