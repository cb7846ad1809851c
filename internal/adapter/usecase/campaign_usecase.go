package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"mesa-market/internal/core/domain"
	"mesa-market/internal/core/port"
)

type CampaignUseCase struct {
	campaigns  port.CampaignRepository
	placements port.PlacementRepository
	owner      *OwnershipResolver
}

func NewCampaignUseCase(campaigns port.CampaignRepository, placements port.PlacementRepository, owner *OwnershipResolver) *CampaignUseCase {
	return &CampaignUseCase{campaigns: campaigns, placements: placements, owner: owner}
}

// List is scoped to the caller's sponsor. Callers that are not sponsors get
// an empty list.
func (u *CampaignUseCase) List(ctx context.Context, caller domain.User, req port.ListCampaignsReq) ([]domain.Campaign, error) {
	if err := validateInput(req); err != nil {
		return nil, err
	}
	sponsor, err := u.owner.ownedSponsor(ctx, caller.ID)
	if err != nil {
		return nil, err
	}
	if sponsor == nil {
		return []domain.Campaign{}, nil
	}
	campaigns, err := u.campaigns.ListBySponsor(ctx, sponsor.ID, req.Status)
	if err != nil {
		return nil, fmt.Errorf("list campaigns: %w", err)
	}
	return campaigns, nil
}

func (u *CampaignUseCase) Get(ctx context.Context, caller domain.User, id uuid.UUID) (*domain.CampaignDetail, error) {
	c, err := u.ownedCampaign(ctx, caller, id)
	if err != nil {
		return nil, err
	}
	placements, err := u.placements.ListByCampaign(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list campaign placements: %w", err)
	}
	return &domain.CampaignDetail{Campaign: *c, Placements: placements}, nil
}

func (u *CampaignUseCase) Create(ctx context.Context, caller domain.User, in port.CreateCampaignInput) (*domain.Campaign, error) {
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

	owned, err := u.owner.ownsSponsor(ctx, caller.ID, in.SponsorID)
	if err != nil {
		return nil, err
	}
	if !owned {
		return nil, domain.Forbidden("")
	}

	now := time.Now().UTC()
	c := &domain.Campaign{
		ID:          uuid.New(),
		SponsorID:   in.SponsorID,
		Name:        in.Name,
		Description: in.Description,
		Budget:      in.Budget,
		Spent:       decimal.Zero,
		CPMRate:     nullDecimal(in.CPMRate),
		CPCRate:     nullDecimal(in.CPCRate),
		StartDate:   start,
		EndDate:     end,
		Targeting: domain.Targeting{
			Categories: nonNil(in.TargetCategories),
			Regions:    nonNil(in.TargetRegions),
		},
		Status:    domain.CampaignDraft,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err = u.campaigns.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("create campaign: %w", err)
	}
	return c, nil
}

func (u *CampaignUseCase) Update(ctx context.Context, caller domain.User, id uuid.UUID, in port.UpdateCampaignInput) (*domain.Campaign, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	c, err := u.ownedCampaign(ctx, caller, id)
	if err != nil {
		return nil, err
	}

	ve := domain.NewValidationError()
	start, end := c.StartDate, c.EndDate
	if in.StartDate != nil {
		start = parseDate(ve, "startDate", *in.StartDate)
	}
	if in.EndDate != nil {
		end = parseDate(ve, "endDate", *in.EndDate)
	}
	checkDateRange(ve, start, end)
	if err = ve.OrNil(); err != nil {
		return nil, err
	}

	c.StartDate, c.EndDate = start, end
	if in.Name != nil {
		c.Name = *in.Name
	}
	if in.Description != nil {
		c.Description = in.Description
	}
	if in.Budget != nil {
		c.Budget = *in.Budget
	}
	if in.CPMRate != nil {
		c.CPMRate = nullDecimal(in.CPMRate)
	}
	if in.CPCRate != nil {
		c.CPCRate = nullDecimal(in.CPCRate)
	}
	if in.TargetCategories != nil {
		c.Categories = in.TargetCategories
	}
	if in.TargetRegions != nil {
		c.Regions = in.TargetRegions
	}
	if in.Status != nil {
		c.Status = *in.Status
	}
	c.UpdatedAt = time.Now().UTC()

	if err = u.campaigns.Update(ctx, c); err != nil {
		return nil, fmt.Errorf("update campaign: %w", err)
	}
	return c, nil
}

func (u *CampaignUseCase) Delete(ctx context.Context, caller domain.User, id uuid.UUID) error {
	if _, err := u.ownedCampaign(ctx, caller, id); err != nil {
		return err
	}
	if err := u.campaigns.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete campaign: %w", err)
	}
	return nil
}

func (u *CampaignUseCase) ownedCampaign(ctx context.Context, caller domain.User, id uuid.UUID) (*domain.Campaign, error) {
	c, err := u.campaigns.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get campaign: %w", err)
	}
	owned := false
	if c != nil {
		if owned, err = u.owner.ownsSponsor(ctx, caller.ID, c.SponsorID); err != nil {
			return nil, err
		}
	}
	if err = authorize(c != nil, owned, "Campaign"); err != nil {
		return nil, err
	}
	return c, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
