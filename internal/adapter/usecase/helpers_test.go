package usecase

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"mesa-market/internal/core/domain"
	"mesa-market/internal/core/port/mocks"
)

type repos struct {
	sponsors   *mocks.MockSponsorRepository
	publishers *mocks.MockPublisherRepository
	slots      *mocks.MockAdSlotRepository
	campaigns  *mocks.MockCampaignRepository
	placements *mocks.MockPlacementRepository
	quotes     *mocks.MockQuoteRepository
	newsletter *mocks.MockNewsletterRepository
	owner      *OwnershipResolver
}

func newRepos(t *testing.T) *repos {
	r := &repos{
		sponsors:   mocks.NewMockSponsorRepository(t),
		publishers: mocks.NewMockPublisherRepository(t),
		slots:      mocks.NewMockAdSlotRepository(t),
		campaigns:  mocks.NewMockCampaignRepository(t),
		placements: mocks.NewMockPlacementRepository(t),
		quotes:     mocks.NewMockQuoteRepository(t),
		newsletter: mocks.NewMockNewsletterRepository(t),
	}
	r.owner = NewOwnershipResolver(r.sponsors, r.publishers)
	return r
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func (r *repos) adSlots() *AdSlotUseCase {
	return NewAdSlotUseCase(r.slots, r.placements, r.publishers, r.owner, discardLogger())
}

func (r *repos) quoteUC() *QuoteUseCase {
	return NewQuoteUseCase(r.quotes, r.slots, r.owner)
}

var (
	alice = domain.User{ID: "user-alice", Email: "alice@example.com", Name: "Alice"}
	bob   = domain.User{ID: "user-bob", Email: "bob@example.com", Name: "Bob"}
)

func testSponsor(owner domain.User) *domain.Sponsor {
	return &domain.Sponsor{
		ID:               uuid.New(),
		UserID:           owner.ID,
		Name:             owner.Name + " Brands",
		Email:            owner.Email,
		SubscriptionTier: domain.TierFree,
		IsActive:         true,
	}
}

func testPublisher(owner domain.User) *domain.Publisher {
	return &domain.Publisher{
		ID:       uuid.New(),
		UserID:   owner.ID,
		Name:     owner.Name + " Media",
		Email:    owner.Email,
		IsActive: true,
	}
}

func testSlot(pub *domain.Publisher, available bool) *domain.AdSlot {
	now := time.Now().UTC()
	return &domain.AdSlot{
		ID:          uuid.New(),
		PublisherID: pub.ID,
		Name:        "Homepage banner",
		Type:        domain.AdSlotDisplay,
		BasePrice:   decimal.RequireFromString("500.00"),
		IsAvailable: available,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func ptr[T any](v T) *T { return &v }
