package dashboard

import "context"

// UseCase exposes the read-only dashboard data.
type UseCase interface {
	Stats(ctx context.Context) KPIStats
	RevenueSeries(ctx context.Context) []RevenuePoint
	InsuranceDistribution(ctx context.Context) []InsuranceShare
}
