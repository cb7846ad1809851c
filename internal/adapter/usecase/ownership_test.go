package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"mesa-market/internal/core/domain"
)

func TestResolveRole(t *testing.T) {
	t.Run("sponsor wins over publisher", func(t *testing.T) {
		r := newRepos(t)
		s := testSponsor(alice)
		r.sponsors.EXPECT().FindByUserID(mock.Anything, alice.ID).Return(s, nil)

		role, err := r.owner.ResolveRole(context.Background(), alice.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.SponsorRole(s.ID, s.Name), role)
		assert.Equal(t, uuid.Nil, role.PublisherID)
	})

	t.Run("publisher", func(t *testing.T) {
		r := newRepos(t)
		p := testPublisher(alice)
		r.sponsors.EXPECT().FindByUserID(mock.Anything, alice.ID).Return(nil, nil)
		r.publishers.EXPECT().FindByUserID(mock.Anything, alice.ID).Return(p, nil)

		role, err := r.owner.ResolveRole(context.Background(), alice.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.PublisherRole(p.ID, p.Name), role)
	})

	t.Run("neither", func(t *testing.T) {
		r := newRepos(t)
		r.sponsors.EXPECT().FindByUserID(mock.Anything, "nobody").Return(nil, nil)
		r.publishers.EXPECT().FindByUserID(mock.Anything, "nobody").Return(nil, nil)

		role, err := r.owner.ResolveRole(context.Background(), "nobody")
		require.NoError(t, err)
		assert.Equal(t, domain.RoleNone, role.Kind)
	})

	t.Run("storage error", func(t *testing.T) {
		r := newRepos(t)
		boom := errors.New("connection reset")
		r.sponsors.EXPECT().FindByUserID(mock.Anything, alice.ID).Return(nil, boom)

		_, err := r.owner.ResolveRole(context.Background(), alice.ID)
		assert.ErrorIs(t, err, boom)
	})
}

func TestRoleJSON(t *testing.T) {
	s := testSponsor(alice)
	b, err := domain.SponsorRole(s.ID, "Acme").MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"role":"sponsor","sponsorId":"`+s.ID.String()+`","name":"Acme"}`, string(b))

	b, err = domain.NoRole().MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"role":null}`, string(b))
}

func TestAuthorize(t *testing.T) {
	assert.ErrorIs(t, authorize(false, false, "Campaign"), domain.ErrNotFound)
	assert.ErrorIs(t, authorize(false, true, "Campaign"), domain.ErrNotFound)
	assert.ErrorIs(t, authorize(true, false, "Campaign"), domain.ErrForbidden)
	assert.NoError(t, authorize(true, true, "Campaign"))
	assert.EqualError(t, authorize(false, false, "Campaign"), "Campaign not found")
}
