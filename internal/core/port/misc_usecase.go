package port

import (
	"context"

	"mesa-market/internal/core/domain"
)

// AuthUseCase resolves which marketplace party a user acts as.
type AuthUseCase interface {
	ResolveRole(ctx context.Context, userID string) (domain.Role, error)
}

// DashboardUseCase reports platform-wide statistics.
type DashboardUseCase interface {
	GetStats(ctx context.Context) (*StatsResp, error)
}

// StatsResp aggregates marketplace activity. AvgCTR is a percentage
// rounded to two decimals.
type StatsResp struct {
	Sponsors        int64       `json:"sponsors"`
	Publishers      int64       `json:"publishers"`
	ActiveCampaigns int64       `json:"activeCampaigns"`
	TotalPlacements int64       `json:"totalPlacements"`
	Metrics         StatsMetric `json:"metrics"`
}

type StatsMetric struct {
	TotalImpressions int64   `json:"totalImpressions"`
	TotalClicks      int64   `json:"totalClicks"`
	TotalConversions int64   `json:"totalConversions"`
	AvgCTR           float64 `json:"avgCtr"`
}

type NewsletterUseCase interface {
	Subscribe(ctx context.Context, in SubscribeInput) error
}

type SubscribeInput struct {
	Email string `json:"email" validate:"required,email"`
}
