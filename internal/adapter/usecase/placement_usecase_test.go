package usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"mesa-market/internal/core/domain"
	"mesa-market/internal/core/port"
)

func TestPlacementList(t *testing.T) {
	t.Run("no records", func(t *testing.T) {
		r := newRepos(t)
		r.sponsors.EXPECT().FindByUserID(mock.Anything, alice.ID).Return(nil, nil)
		r.publishers.EXPECT().FindByUserID(mock.Anything, alice.ID).Return(nil, nil)

		got, err := NewPlacementUseCase(r.placements, r.campaigns, r.slots, r.owner).List(context.Background(), alice, port.ListPlacementsReq{})
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("both sides", func(t *testing.T) {
		r := newRepos(t)
		s := testSponsor(alice)
		p := testPublisher(alice)
		status := domain.PlacementActive
		r.sponsors.EXPECT().FindByUserID(mock.Anything, alice.ID).Return(s, nil)
		r.publishers.EXPECT().FindByUserID(mock.Anything, alice.ID).Return(p, nil)
		r.placements.EXPECT().
			List(mock.Anything, domain.PlacementFilter{SponsorID: &s.ID, PublisherID: &p.ID, Status: &status}).
			Return([]domain.PlacementListItem{{}}, nil)

		got, err := NewPlacementUseCase(r.placements, r.campaigns, r.slots, r.owner).
			List(context.Background(), alice, port.ListPlacementsReq{Status: &status})
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})
}

func TestPlacementCreate(t *testing.T) {
	sponsor := testSponsor(alice)
	pub := testPublisher(bob)
	campaign := &domain.Campaign{ID: uuid.New(), SponsorID: sponsor.ID}

	input := func(slot *domain.AdSlot) port.CreatePlacementInput {
		return port.CreatePlacementInput{
			CampaignID:  campaign.ID,
			CreativeID:  uuid.New(),
			AdSlotID:    slot.ID,
			PublisherID: slot.PublisherID,
			AgreedPrice: decimal.NewFromInt(250),
			StartDate:   "2026-05-01",
			EndDate:     "2026-05-31",
		}
	}

	t.Run("booked slot", func(t *testing.T) {
		r := newRepos(t)
		slot := testSlot(pub, false)
		r.campaigns.EXPECT().Get(mock.Anything, campaign.ID).Return(campaign, nil)
		r.sponsors.EXPECT().Get(mock.Anything, sponsor.ID).Return(sponsor, nil)
		r.slots.EXPECT().Get(mock.Anything, slot.ID).Return(slot, nil)

		_, err := NewPlacementUseCase(r.placements, r.campaigns, r.slots, r.owner).Create(context.Background(), alice, input(slot))
		assert.ErrorIs(t, err, domain.ErrSlotUnavailable)
	})

	t.Run("publisher mismatch", func(t *testing.T) {
		r := newRepos(t)
		slot := testSlot(pub, true)
		r.campaigns.EXPECT().Get(mock.Anything, campaign.ID).Return(campaign, nil)
		r.sponsors.EXPECT().Get(mock.Anything, sponsor.ID).Return(sponsor, nil)
		r.slots.EXPECT().Get(mock.Anything, slot.ID).Return(slot, nil)

		in := input(slot)
		in.PublisherID = uuid.New()
		_, err := NewPlacementUseCase(r.placements, r.campaigns, r.slots, r.owner).Create(context.Background(), alice, in)
		var ve *domain.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Contains(t, ve.Fields, "publisherId")
	})

	t.Run("foreign campaign", func(t *testing.T) {
		r := newRepos(t)
		slot := testSlot(pub, true)
		r.campaigns.EXPECT().Get(mock.Anything, campaign.ID).Return(campaign, nil)
		r.sponsors.EXPECT().Get(mock.Anything, sponsor.ID).Return(sponsor, nil)

		_, err := NewPlacementUseCase(r.placements, r.campaigns, r.slots, r.owner).Create(context.Background(), bob, input(slot))
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("pending CPM by default", func(t *testing.T) {
		r := newRepos(t)
		slot := testSlot(pub, true)
		r.campaigns.EXPECT().Get(mock.Anything, campaign.ID).Return(campaign, nil)
		r.sponsors.EXPECT().Get(mock.Anything, sponsor.ID).Return(sponsor, nil)
		r.slots.EXPECT().Get(mock.Anything, slot.ID).Return(slot, nil)
		r.placements.EXPECT().Create(mock.Anything, mock.AnythingOfType("*domain.Placement")).Return(nil)

		p, err := NewPlacementUseCase(r.placements, r.campaigns, r.slots, r.owner).Create(context.Background(), alice, input(slot))
		require.NoError(t, err)
		assert.Equal(t, domain.PlacementPending, p.Status)
		assert.Equal(t, domain.PricingCPM, p.PricingModel)
		assert.Equal(t, pub.ID, p.PublisherID)
	})
}
