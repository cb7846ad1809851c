package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"mesa-market/internal/core/domain"
	"mesa-market/internal/core/port"
)

// OwnershipResolver maps an authenticated user to the sponsor or publisher
// they own. It implements port.AuthUseCase and backs every ownership check
// in the other use cases.
type OwnershipResolver struct {
	sponsors   port.SponsorRepository
	publishers port.PublisherRepository
}

func NewOwnershipResolver(sponsors port.SponsorRepository, publishers port.PublisherRepository) *OwnershipResolver {
	return &OwnershipResolver{sponsors: sponsors, publishers: publishers}
}

// ResolveRole looks for a sponsor owned by userID, then a publisher. A user
// owning both resolves to sponsor. Owning neither is not an error.
func (o *OwnershipResolver) ResolveRole(ctx context.Context, userID string) (domain.Role, error) {
	sponsor, err := o.sponsors.FindByUserID(ctx, userID)
	if err != nil {
		return domain.NoRole(), fmt.Errorf("find sponsor: %w", err)
	}
	if sponsor != nil {
		return domain.SponsorRole(sponsor.ID, sponsor.Name), nil
	}

	publisher, err := o.publishers.FindByUserID(ctx, userID)
	if err != nil {
		return domain.NoRole(), fmt.Errorf("find publisher: %w", err)
	}
	if publisher != nil {
		return domain.PublisherRole(publisher.ID, publisher.Name), nil
	}
	return domain.NoRole(), nil
}

// ownsSponsor reports whether sponsorID exists and belongs to userID.
func (o *OwnershipResolver) ownsSponsor(ctx context.Context, userID string, sponsorID uuid.UUID) (bool, error) {
	s, err := o.sponsors.Get(ctx, sponsorID)
	if err != nil {
		return false, fmt.Errorf("get sponsor: %w", err)
	}
	return s != nil && s.UserID == userID, nil
}

// ownsPublisher reports whether publisherID exists and belongs to userID.
func (o *OwnershipResolver) ownsPublisher(ctx context.Context, userID string, publisherID uuid.UUID) (bool, error) {
	p, err := o.publishers.Get(ctx, publisherID)
	if err != nil {
		return false, fmt.Errorf("get publisher: %w", err)
	}
	return p != nil && p.UserID == userID, nil
}

func (o *OwnershipResolver) ownedSponsor(ctx context.Context, userID string) (*domain.Sponsor, error) {
	s, err := o.sponsors.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("find sponsor: %w", err)
	}
	return s, nil
}

func (o *OwnershipResolver) ownedPublisher(ctx context.Context, userID string) (*domain.Publisher, error) {
	p, err := o.publishers.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("find publisher: %w", err)
	}
	return p, nil
}
