package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"mesa-market/internal/core/domain"
	"mesa-market/internal/core/port"
)

type PlacementUseCase struct {
	placements port.PlacementRepository
	campaigns  port.CampaignRepository
	slots      port.AdSlotRepository
	owner      *OwnershipResolver
}

func NewPlacementUseCase(
	placements port.PlacementRepository,
	campaigns port.CampaignRepository,
	slots port.AdSlotRepository,
	owner *OwnershipResolver,
) *PlacementUseCase {
	return &PlacementUseCase{placements: placements, campaigns: campaigns, slots: slots, owner: owner}
}

// List returns placements on the caller's sponsor campaigns together with
// placements on the caller's publisher slots.
func (u *PlacementUseCase) List(ctx context.Context, caller domain.User, req port.ListPlacementsReq) ([]domain.PlacementListItem, error) {
	if err := validateInput(req); err != nil {
		return nil, err
	}
	sponsor, err := u.owner.ownedSponsor(ctx, caller.ID)
	if err != nil {
		return nil, err
	}
	publisher, err := u.owner.ownedPublisher(ctx, caller.ID)
	if err != nil {
		return nil, err
	}
	if sponsor == nil && publisher == nil {
		return []domain.PlacementListItem{}, nil
	}

	filter := domain.PlacementFilter{
		CampaignID:     req.CampaignID,
		ForPublisherID: req.PublisherID,
		Status:         req.Status,
	}
	if sponsor != nil {
		filter.SponsorID = &sponsor.ID
	}
	if publisher != nil {
		filter.PublisherID = &publisher.ID
	}
	items, err := u.placements.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list placements: %w", err)
	}
	return items, nil
}

func (u *PlacementUseCase) Create(ctx context.Context, caller domain.User, in port.CreatePlacementInput) (*domain.Placement, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	ve := domain.NewValidationError()
	start := parseDate(ve, "startDate", in.StartDate)
	end := parseDate(ve, "endDate", in.EndDate)
	checkDateRange(ve, start, end)
	if err := ve.OrNil(); err != nil {
		return nil, err
	}

	campaign, err := u.campaigns.Get(ctx, in.CampaignID)
	if err != nil {
		return nil, fmt.Errorf("get campaign: %w", err)
	}
	owned := false
	if campaign != nil {
		if owned, err = u.owner.ownsSponsor(ctx, caller.ID, campaign.SponsorID); err != nil {
			return nil, err
		}
	}
	if err = authorize(campaign != nil, owned, "Campaign"); err != nil {
		return nil, err
	}

	slot, err := u.slots.Get(ctx, in.AdSlotID)
	if err != nil {
		return nil, fmt.Errorf("get ad slot: %w", err)
	}
	if slot == nil {
		return nil, domain.NotFound("Ad slot")
	}
	if !slot.IsAvailable {
		return nil, domain.ErrSlotUnavailable
	}
	if slot.PublisherID != in.PublisherID {
		ve.Add("publisherId", "must match the ad slot's publisher")
		return nil, ve
	}

	model := domain.PricingCPM
	if in.PricingModel != nil {
		model = *in.PricingModel
	}
	now := time.Now().UTC()
	p := &domain.Placement{
		ID:           uuid.New(),
		CampaignID:   campaign.ID,
		CreativeID:   in.CreativeID,
		AdSlotID:     slot.ID,
		PublisherID:  slot.PublisherID,
		AgreedPrice:  in.AgreedPrice,
		PricingModel: model,
		StartDate:    start,
		EndDate:      end,
		Status:       domain.PlacementPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err = u.placements.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("create placement: %w", err)
	}
	return p, nil
}
