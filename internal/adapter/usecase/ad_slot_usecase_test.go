package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"mesa-market/internal/core/domain"
	"mesa-market/internal/core/port"
)

func TestBook_MissingSlotIsNotFoundWhateverTheSponsor(t *testing.T) {
	r := newRepos(t)
	id := uuid.New()
	r.slots.EXPECT().Get(mock.Anything, id).Return(nil, nil)

	// Alice does not own this sponsor id, but the slot check comes first.
	_, err := r.adSlots().Book(context.Background(), alice, id, port.BookInput{SponsorID: uuid.New()})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.EqualError(t, err, "Ad slot not found")
}

func TestBook_ForeignSponsorIsForbidden(t *testing.T) {
	r := newRepos(t)
	slot := testSlot(testPublisher(bob), true)
	sponsor := testSponsor(bob)
	r.slots.EXPECT().Get(mock.Anything, slot.ID).Return(slot, nil)
	r.sponsors.EXPECT().Get(mock.Anything, sponsor.ID).Return(sponsor, nil)

	_, err := r.adSlots().Book(context.Background(), alice, slot.ID, port.BookInput{SponsorID: sponsor.ID})
	assert.ErrorIs(t, err, domain.ErrForbidden)
	r.slots.AssertNotCalled(t, "MarkBooked", mock.Anything, mock.Anything)
}

func TestBook_UnknownSponsorIsForbidden(t *testing.T) {
	r := newRepos(t)
	slot := testSlot(testPublisher(bob), true)
	sponsorID := uuid.New()
	r.slots.EXPECT().Get(mock.Anything, slot.ID).Return(slot, nil)
	r.sponsors.EXPECT().Get(mock.Anything, sponsorID).Return(nil, nil)

	_, err := r.adSlots().Book(context.Background(), alice, slot.ID, port.BookInput{SponsorID: sponsorID})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestBook_RequiresSponsorID(t *testing.T) {
	r := newRepos(t)

	_, err := r.adSlots().Book(context.Background(), alice, uuid.New(), port.BookInput{})
	require.ErrorIs(t, err, domain.ErrValidation)
	var ve *domain.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, []string{"is required"}, ve.Fields["sponsorId"])
}

func TestBook_SucceedsThenSecondAttemptIsUnavailable(t *testing.T) {
	r := newRepos(t)
	slot := testSlot(testPublisher(bob), true)
	sponsor := testSponsor(alice)
	booked := *slot
	booked.IsAvailable = false

	r.slots.EXPECT().Get(mock.Anything, slot.ID).Return(slot, nil)
	r.sponsors.EXPECT().Get(mock.Anything, sponsor.ID).Return(sponsor, nil)
	r.slots.EXPECT().MarkBooked(mock.Anything, slot.ID).Return(&booked, nil).Once()
	r.slots.EXPECT().MarkBooked(mock.Anything, slot.ID).Return(nil, domain.ErrSlotUnavailable).Once()

	uc := r.adSlots()
	in := port.BookInput{SponsorID: sponsor.ID, Message: ptr("Q3 launch")}

	got, err := uc.Book(context.Background(), alice, slot.ID, in)
	require.NoError(t, err)
	assert.False(t, got.IsAvailable)
	assert.Equal(t, domain.StateBooked, got.State())

	_, err = uc.Book(context.Background(), alice, slot.ID, in)
	assert.ErrorIs(t, err, domain.ErrSlotUnavailable)
}

// TestConcurrentBooking ensures that of many simultaneous bookings exactly
// one wins when the repository performs a conditional write.
func TestConcurrentBooking(t *testing.T) {
	r := newRepos(t)
	slot := testSlot(testPublisher(bob), true)
	sponsor := testSponsor(alice)

	var (
		mu        sync.Mutex
		available = true
	)

	r.slots.EXPECT().Get(mock.Anything, slot.ID).Return(slot, nil)
	r.sponsors.EXPECT().Get(mock.Anything, sponsor.ID).Return(sponsor, nil)
	r.slots.EXPECT().
		MarkBooked(mock.Anything, slot.ID).
		RunAndReturn(func(ctx context.Context, id uuid.UUID) (*domain.AdSlot, error) {
			mu.Lock()
			defer mu.Unlock()
			if !available {
				return nil, domain.ErrSlotUnavailable
			}
			available = false
			booked := *slot
			booked.IsAvailable = false
			return &booked, nil
		})

	uc := r.adSlots()

	var (
		wg          sync.WaitGroup
		resMu       sync.Mutex
		wins        int
		unavailable int
	)
	count := 20
	wg.Add(count)
	for i := 0; i < count; i++ {
		go func() {
			defer wg.Done()
			_, err := uc.Book(context.Background(), alice, slot.ID, port.BookInput{SponsorID: sponsor.ID})
			resMu.Lock()
			defer resMu.Unlock()
			switch {
			case err == nil:
				wins++
			case errors.Is(err, domain.ErrSlotUnavailable):
				unavailable++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, wins)
	assert.Equal(t, count-1, unavailable)
	assert.False(t, available)
}

func TestUnbook(t *testing.T) {
	t.Run("not found before forbidden", func(t *testing.T) {
		r := newRepos(t)
		id := uuid.New()
		r.slots.EXPECT().Get(mock.Anything, id).Return(nil, nil)

		_, err := r.adSlots().Unbook(context.Background(), alice, id)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("only the owning publisher", func(t *testing.T) {
		r := newRepos(t)
		pub := testPublisher(bob)
		slot := testSlot(pub, false)
		r.slots.EXPECT().Get(mock.Anything, slot.ID).Return(slot, nil)
		r.publishers.EXPECT().Get(mock.Anything, pub.ID).Return(pub, nil)

		_, err := r.adSlots().Unbook(context.Background(), alice, slot.ID)
		assert.ErrorIs(t, err, domain.ErrForbidden)
		r.slots.AssertNotCalled(t, "MarkAvailable", mock.Anything, mock.Anything)
	})

	t.Run("idempotent", func(t *testing.T) {
		r := newRepos(t)
		pub := testPublisher(bob)
		slot := testSlot(pub, true)
		r.slots.EXPECT().Get(mock.Anything, slot.ID).Return(slot, nil)
		r.publishers.EXPECT().Get(mock.Anything, pub.ID).Return(pub, nil)
		r.slots.EXPECT().MarkAvailable(mock.Anything, slot.ID).Return(slot, nil).Twice()

		uc := r.adSlots()
		for i := 0; i < 2; i++ {
			got, err := uc.Unbook(context.Background(), bob, slot.ID)
			require.NoError(t, err)
			assert.True(t, got.IsAvailable)
		}
	})
}

// TestBookingRoundTrip walks a slot through available -> booked ->
// available -> booked.
func TestBookingRoundTrip(t *testing.T) {
	r := newRepos(t)
	pub := testPublisher(bob)
	slot := testSlot(pub, true)
	sponsor := testSponsor(alice)

	var mu sync.Mutex
	state := *slot

	r.slots.EXPECT().Get(mock.Anything, slot.ID).RunAndReturn(func(context.Context, uuid.UUID) (*domain.AdSlot, error) {
		mu.Lock()
		defer mu.Unlock()
		cp := state
		return &cp, nil
	})
	r.slots.EXPECT().MarkBooked(mock.Anything, slot.ID).RunAndReturn(func(context.Context, uuid.UUID) (*domain.AdSlot, error) {
		mu.Lock()
		defer mu.Unlock()
		if !state.IsAvailable {
			return nil, domain.ErrSlotUnavailable
		}
		state.IsAvailable = false
		cp := state
		return &cp, nil
	})
	r.slots.EXPECT().MarkAvailable(mock.Anything, slot.ID).RunAndReturn(func(context.Context, uuid.UUID) (*domain.AdSlot, error) {
		mu.Lock()
		defer mu.Unlock()
		state.IsAvailable = true
		cp := state
		return &cp, nil
	})
	r.sponsors.EXPECT().Get(mock.Anything, sponsor.ID).Return(sponsor, nil)
	r.publishers.EXPECT().Get(mock.Anything, pub.ID).Return(pub, nil)

	uc := r.adSlots()
	ctx := context.Background()
	in := port.BookInput{SponsorID: sponsor.ID}

	got, err := uc.Book(ctx, alice, slot.ID, in)
	require.NoError(t, err)
	assert.Equal(t, domain.StateBooked, got.State())

	_, err = uc.Book(ctx, alice, slot.ID, in)
	require.ErrorIs(t, err, domain.ErrSlotUnavailable)

	got, err = uc.Unbook(ctx, bob, slot.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StateAvailable, got.State())

	got, err = uc.Book(ctx, alice, slot.ID, in)
	require.NoError(t, err)
	assert.Equal(t, domain.StateBooked, got.State())
}

func TestAdSlotList(t *testing.T) {
	t.Run("defaults and pagination", func(t *testing.T) {
		r := newRepos(t)
		r.slots.EXPECT().
			List(mock.Anything, domain.AdSlotFilter{Limit: 6, Offset: 0, AvailableOnly: true}).
			Return([]domain.AdSlotListItem{{}, {}}, 14, nil)

		items, page, err := r.adSlots().List(context.Background(), port.ListAdSlotsReq{AvailableOnly: true})
		require.NoError(t, err)
		assert.Len(t, items, 2)
		assert.Equal(t, domain.Pagination{Page: 1, Limit: 6, Total: 14, TotalPages: 3, HasMore: true}, page)
	})

	t.Run("offset", func(t *testing.T) {
		r := newRepos(t)
		typ := domain.AdSlotVideo
		r.slots.EXPECT().
			List(mock.Anything, domain.AdSlotFilter{Type: &typ, Limit: 10, Offset: 20}).
			Return(nil, 25, nil)

		_, page, err := r.adSlots().List(context.Background(), port.ListAdSlotsReq{Type: &typ, Page: 3, Limit: 10})
		require.NoError(t, err)
		assert.False(t, page.HasMore)
		assert.Equal(t, 3, page.TotalPages)
	})

	t.Run("limit above maximum", func(t *testing.T) {
		r := newRepos(t)
		_, _, err := r.adSlots().List(context.Background(), port.ListAdSlotsReq{Limit: 51})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestAdSlotCreate(t *testing.T) {
	t.Run("requires owning the publisher", func(t *testing.T) {
		r := newRepos(t)
		pub := testPublisher(bob)
		r.publishers.EXPECT().Get(mock.Anything, pub.ID).Return(pub, nil)

		_, err := r.adSlots().Create(context.Background(), alice, port.CreateAdSlotInput{
			Name:        "Sidebar",
			Type:        domain.AdSlotDisplay,
			BasePrice:   decimal.NewFromInt(100),
			PublisherID: pub.ID,
		})
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("starts available", func(t *testing.T) {
		r := newRepos(t)
		pub := testPublisher(alice)
		r.publishers.EXPECT().Get(mock.Anything, pub.ID).Return(pub, nil)
		r.slots.EXPECT().Create(mock.Anything, mock.AnythingOfType("*domain.AdSlot")).Return(nil)

		slot, err := r.adSlots().Create(context.Background(), alice, port.CreateAdSlotInput{
			Name:        "Sidebar",
			Type:        domain.AdSlotDisplay,
			BasePrice:   decimal.NewFromInt(100),
			CPMFloor:    ptr(decimal.NewFromFloat(2.5)),
			PublisherID: pub.ID,
		})
		require.NoError(t, err)
		assert.True(t, slot.IsAvailable)
		assert.True(t, slot.CPMFloor.Valid)
		assert.Equal(t, pub.ID, slot.PublisherID)
	})

	t.Run("validation", func(t *testing.T) {
		r := newRepos(t)
		_, err := r.adSlots().Create(context.Background(), alice, port.CreateAdSlotInput{
			Type:      "BILLBOARD",
			BasePrice: decimal.NewFromInt(-1),
		})
		var ve *domain.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Contains(t, ve.Fields, "name")
		assert.Contains(t, ve.Fields, "type")
		assert.Contains(t, ve.Fields, "basePrice")
		assert.Contains(t, ve.Fields, "publisherId")
	})
}

func TestAdSlotUpdateAndDelete(t *testing.T) {
	r := newRepos(t)
	pub := testPublisher(bob)
	slot := testSlot(pub, true)
	price := decimal.NewFromInt(750)
	updated := *slot
	updated.Name, updated.BasePrice = "Hero banner", price

	r.slots.EXPECT().Get(mock.Anything, slot.ID).Return(slot, nil)
	r.publishers.EXPECT().Get(mock.Anything, pub.ID).Return(pub, nil)
	r.slots.EXPECT().
		Update(mock.Anything, slot.ID, domain.AdSlotPatch{Name: ptr("Hero banner"), BasePrice: &price}).
		Return(&updated, nil)
	r.slots.EXPECT().Delete(mock.Anything, slot.ID).Return(nil)

	uc := r.adSlots()
	got, err := uc.Update(context.Background(), bob, slot.ID, port.UpdateAdSlotInput{
		Name:      ptr("Hero banner"),
		BasePrice: &price,
	})
	require.NoError(t, err)
	assert.Equal(t, "Hero banner", got.Name)
	assert.True(t, price.Equal(got.BasePrice))

	_, err = uc.Update(context.Background(), alice, slot.ID, port.UpdateAdSlotInput{Name: ptr("mine now")})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	assert.ErrorIs(t, uc.Delete(context.Background(), alice, slot.ID), domain.ErrForbidden)
	assert.NoError(t, uc.Delete(context.Background(), bob, slot.ID))
}

// TestRenameKeepsConcurrentBooking books the slot after Update has read it
// and checks that a name-only update leaves the booking in place.
func TestRenameKeepsConcurrentBooking(t *testing.T) {
	r := newRepos(t)
	pub := testPublisher(bob)
	slot := testSlot(pub, true)
	sponsor := testSponsor(alice)

	var (
		mu     sync.Mutex
		stored = *slot
	)
	snapshot := func() *domain.AdSlot {
		mu.Lock()
		defer mu.Unlock()
		cp := stored
		return &cp
	}

	r.publishers.EXPECT().Get(mock.Anything, pub.ID).Return(pub, nil)
	r.sponsors.EXPECT().Get(mock.Anything, sponsor.ID).Return(sponsor, nil)
	r.slots.EXPECT().MarkBooked(mock.Anything, slot.ID).
		RunAndReturn(func(context.Context, uuid.UUID) (*domain.AdSlot, error) {
			mu.Lock()
			defer mu.Unlock()
			if !stored.IsAvailable {
				return nil, domain.ErrSlotUnavailable
			}
			stored.IsAvailable = false
			cp := stored
			return &cp, nil
		})

	uc := r.adSlots()
	// The booking commits between the update's read and its write.
	r.slots.EXPECT().Get(mock.Anything, slot.ID).
		RunAndReturn(func(context.Context, uuid.UUID) (*domain.AdSlot, error) {
			return snapshot(), nil
		}).Once()
	r.slots.EXPECT().Get(mock.Anything, slot.ID).
		RunAndReturn(func(context.Context, uuid.UUID) (*domain.AdSlot, error) {
			return snapshot(), nil
		})
	r.slots.EXPECT().Update(mock.Anything, slot.ID, mock.Anything).
		RunAndReturn(func(_ context.Context, _ uuid.UUID, patch domain.AdSlotPatch) (*domain.AdSlot, error) {
			_, err := uc.Book(context.Background(), alice, slot.ID, port.BookInput{SponsorID: sponsor.ID})
			require.NoError(t, err)

			assert.Nil(t, patch.IsAvailable, "name-only update must not carry the booking flag")
			mu.Lock()
			defer mu.Unlock()
			if patch.Name != nil {
				stored.Name = *patch.Name
			}
			if patch.IsAvailable != nil {
				stored.IsAvailable = *patch.IsAvailable
			}
			cp := stored
			return &cp, nil
		})

	got, err := uc.Update(context.Background(), bob, slot.ID, port.UpdateAdSlotInput{Name: ptr("renamed")})
	require.NoError(t, err)
	assert.Equal(t, "renamed", got.Name)
	assert.False(t, got.IsAvailable)

	_, err = uc.Book(context.Background(), alice, slot.ID, port.BookInput{SponsorID: sponsor.ID})
	assert.ErrorIs(t, err, domain.ErrSlotUnavailable)
}

func TestAdSlotUpdate_VanishedSlotIsNotFound(t *testing.T) {
	r := newRepos(t)
	pub := testPublisher(bob)
	slot := testSlot(pub, true)
	r.slots.EXPECT().Get(mock.Anything, slot.ID).Return(slot, nil)
	r.publishers.EXPECT().Get(mock.Anything, pub.ID).Return(pub, nil)
	r.slots.EXPECT().Update(mock.Anything, slot.ID, mock.Anything).Return(nil, nil)

	_, err := r.adSlots().Update(context.Background(), bob, slot.ID, port.UpdateAdSlotInput{Name: ptr("gone")})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAdSlotGet(t *testing.T) {
	r := newRepos(t)
	pub := testPublisher(bob)
	slot := testSlot(pub, true)
	r.slots.EXPECT().Get(mock.Anything, slot.ID).Return(slot, nil)
	r.publishers.EXPECT().Get(mock.Anything, pub.ID).Return(pub, nil)
	r.placements.EXPECT().ListByAdSlot(mock.Anything, slot.ID).Return([]domain.SlotPlacement{}, nil)

	// Any authenticated viewer may read a slot.
	got, err := r.adSlots().Get(context.Background(), alice, slot.ID)
	require.NoError(t, err)
	assert.Equal(t, pub.Name, got.Publisher.Name)
	assert.Empty(t, got.Placements)
}
