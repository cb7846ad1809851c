package usecase

import (
	"context"
	"fmt"
	"math"

	"mesa-market/internal/core/domain"
	"mesa-market/internal/core/port"
)

// DashboardUseCase aggregates platform-wide counters.
type DashboardUseCase struct {
	sponsors   port.SponsorRepository
	publishers port.PublisherRepository
	campaigns  port.CampaignRepository
	placements port.PlacementRepository
}

func NewDashboardUseCase(
	sponsors port.SponsorRepository,
	publishers port.PublisherRepository,
	campaigns port.CampaignRepository,
	placements port.PlacementRepository,
) *DashboardUseCase {
	return &DashboardUseCase{sponsors: sponsors, publishers: publishers, campaigns: campaigns, placements: placements}
}

func (u *DashboardUseCase) GetStats(ctx context.Context) (*port.StatsResp, error) {
	var (
		resp port.StatsResp
		err  error
	)
	if resp.Sponsors, err = u.sponsors.CountActive(ctx); err != nil {
		return nil, fmt.Errorf("count sponsors: %w", err)
	}
	if resp.Publishers, err = u.publishers.CountActive(ctx); err != nil {
		return nil, fmt.Errorf("count publishers: %w", err)
	}
	if resp.ActiveCampaigns, err = u.campaigns.CountByStatus(ctx, domain.CampaignActive); err != nil {
		return nil, fmt.Errorf("count campaigns: %w", err)
	}
	if resp.TotalPlacements, err = u.placements.Count(ctx); err != nil {
		return nil, fmt.Errorf("count placements: %w", err)
	}
	m, err := u.placements.Metrics(ctx)
	if err != nil {
		return nil, fmt.Errorf("placement metrics: %w", err)
	}
	resp.Metrics = port.StatsMetric{
		TotalImpressions: m.Impressions,
		TotalClicks:      m.Clicks,
		TotalConversions: m.Conversions,
		AvgCTR:           clickThroughRate(m.Clicks, m.Impressions),
	}
	return &resp, nil
}

// clickThroughRate is clicks per impression as a percentage, rounded to two
// decimals. It is 0 when there are no impressions.
func clickThroughRate(clicks, impressions int64) float64 {
	if impressions == 0 {
		return 0
	}
	return math.Round(float64(clicks)/float64(impressions)*100*100) / 100
}
