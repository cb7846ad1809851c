package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"mesa-market/internal/core/domain"
	"mesa-market/internal/core/port"
)

func TestCampaignList_NotASponsor(t *testing.T) {
	r := newRepos(t)
	r.sponsors.EXPECT().FindByUserID(mock.Anything, bob.ID).Return(nil, nil)

	got, err := NewCampaignUseCase(r.campaigns, r.placements, r.owner).List(context.Background(), bob, port.ListCampaignsReq{})
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestCampaignCreate(t *testing.T) {
	valid := func(sponsorID uuid.UUID) port.CreateCampaignInput {
		return port.CreateCampaignInput{
			Name:      "Spring launch",
			Budget:    decimal.NewFromInt(5000),
			StartDate: "2026-03-01",
			EndDate:   "2026-04-01T00:00:00Z",
			SponsorID: sponsorID,
		}
	}

	t.Run("end before start", func(t *testing.T) {
		r := newRepos(t)
		in := valid(uuid.New())
		in.EndDate = "2026-02-01"

		_, err := NewCampaignUseCase(r.campaigns, r.placements, r.owner).Create(context.Background(), alice, in)
		var ve *domain.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Contains(t, ve.Fields, "endDate")
	})

	t.Run("bad date", func(t *testing.T) {
		r := newRepos(t)
		in := valid(uuid.New())
		in.StartDate = "March 1st"

		_, err := NewCampaignUseCase(r.campaigns, r.placements, r.owner).Create(context.Background(), alice, in)
		var ve *domain.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Contains(t, ve.Fields, "startDate")
	})

	t.Run("foreign sponsor", func(t *testing.T) {
		r := newRepos(t)
		s := testSponsor(bob)
		r.sponsors.EXPECT().Get(mock.Anything, s.ID).Return(s, nil)

		_, err := NewCampaignUseCase(r.campaigns, r.placements, r.owner).Create(context.Background(), alice, valid(s.ID))
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("draft with zero spend", func(t *testing.T) {
		r := newRepos(t)
		s := testSponsor(alice)
		r.sponsors.EXPECT().Get(mock.Anything, s.ID).Return(s, nil)
		r.campaigns.EXPECT().Create(mock.Anything, mock.AnythingOfType("*domain.Campaign")).Return(nil)

		c, err := NewCampaignUseCase(r.campaigns, r.placements, r.owner).Create(context.Background(), alice, valid(s.ID))
		require.NoError(t, err)
		assert.Equal(t, domain.CampaignDraft, c.Status)
		assert.True(t, c.Spent.IsZero())
		assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), c.StartDate)
		assert.Equal(t, []string{}, c.Categories)
	})
}

func TestCampaignGet_NotFoundBeforeForbidden(t *testing.T) {
	r := newRepos(t)
	uc := NewCampaignUseCase(r.campaigns, r.placements, r.owner)

	missing := uuid.New()
	r.campaigns.EXPECT().Get(mock.Anything, missing).Return(nil, nil)
	_, err := uc.Get(context.Background(), alice, missing)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	s := testSponsor(bob)
	c := &domain.Campaign{ID: uuid.New(), SponsorID: s.ID, Status: domain.CampaignActive}
	r.campaigns.EXPECT().Get(mock.Anything, c.ID).Return(c, nil)
	r.sponsors.EXPECT().Get(mock.Anything, s.ID).Return(s, nil)
	_, err = uc.Get(context.Background(), alice, c.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestCampaignUpdate(t *testing.T) {
	r := newRepos(t)
	s := testSponsor(alice)
	c := &domain.Campaign{
		ID:        uuid.New(),
		SponsorID: s.ID,
		Budget:    decimal.NewFromInt(100),
		StartDate: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		Status:    domain.CampaignDraft,
	}
	r.campaigns.EXPECT().Get(mock.Anything, c.ID).Return(c, nil)
	r.sponsors.EXPECT().Get(mock.Anything, s.ID).Return(s, nil)
	r.campaigns.EXPECT().Update(mock.Anything, mock.AnythingOfType("*domain.Campaign")).Return(nil)

	uc := NewCampaignUseCase(r.campaigns, r.placements, r.owner)

	_, err := uc.Update(context.Background(), alice, c.ID, port.UpdateCampaignInput{EndDate: ptr("2025-12-01")})
	assert.ErrorIs(t, err, domain.ErrValidation)

	status := domain.CampaignActive
	got, err := uc.Update(context.Background(), alice, c.ID, port.UpdateCampaignInput{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, domain.CampaignActive, got.Status)
}
