package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"mesa-market/internal/core/domain"
	"mesa-market/internal/core/port"
)

type SponsorUseCase struct {
	sponsors  port.SponsorRepository
	campaigns port.CampaignRepository
}

func NewSponsorUseCase(sponsors port.SponsorRepository, campaigns port.CampaignRepository) *SponsorUseCase {
	return &SponsorUseCase{sponsors: sponsors, campaigns: campaigns}
}

func (u *SponsorUseCase) List(ctx context.Context, caller domain.User) ([]domain.SponsorSummary, error) {
	sponsors, err := u.sponsors.ListByUserID(ctx, caller.ID)
	if err != nil {
		return nil, fmt.Errorf("list sponsors: %w", err)
	}
	return sponsors, nil
}

func (u *SponsorUseCase) Get(ctx context.Context, caller domain.User, id uuid.UUID) (*domain.SponsorDetail, error) {
	s, err := u.ownedSponsor(ctx, caller, id)
	if err != nil {
		return nil, err
	}
	campaigns, err := u.campaigns.ListBySponsor(ctx, id, nil)
	if err != nil {
		return nil, fmt.Errorf("list sponsor campaigns: %w", err)
	}
	return &domain.SponsorDetail{Sponsor: *s, Campaigns: campaigns}, nil
}

// Create registers the caller as a sponsor. A user owns at most one
// sponsor; a second attempt fails with domain.ErrConflict.
func (u *SponsorUseCase) Create(ctx context.Context, caller domain.User, in port.CreateSponsorInput) (*domain.Sponsor, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	s := &domain.Sponsor{
		ID:               uuid.New(),
		UserID:           caller.ID,
		Name:             in.Name,
		Email:            in.Email,
		Website:          in.Website,
		Logo:             in.Logo,
		Description:      in.Description,
		Industry:         in.Industry,
		SubscriptionTier: domain.TierFree,
		IsActive:         true,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := u.sponsors.Create(ctx, s); err != nil {
		return nil, fmt.Errorf("create sponsor: %w", err)
	}
	return s, nil
}

func (u *SponsorUseCase) Update(ctx context.Context, caller domain.User, id uuid.UUID, in port.UpdateSponsorInput) (*domain.Sponsor, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	s, err := u.ownedSponsor(ctx, caller, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		s.Name = *in.Name
	}
	if in.Email != nil {
		s.Email = *in.Email
	}
	if in.Website != nil {
		s.Website = in.Website
	}
	if in.Logo != nil {
		s.Logo = in.Logo
	}
	if in.Description != nil {
		s.Description = in.Description
	}
	if in.Industry != nil {
		s.Industry = in.Industry
	}
	s.UpdatedAt = time.Now().UTC()

	if err = u.sponsors.Update(ctx, s); err != nil {
		return nil, fmt.Errorf("update sponsor: %w", err)
	}
	return s, nil
}

func (u *SponsorUseCase) ownedSponsor(ctx context.Context, caller domain.User, id uuid.UUID) (*domain.Sponsor, error) {
	s, err := u.sponsors.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get sponsor: %w", err)
	}
	if err = authorize(s != nil, s != nil && s.UserID == caller.ID, "Sponsor"); err != nil {
		return nil, err
	}
	return s, nil
}
