package postgres

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"mesa-market/internal/core/domain"
)

func TestAdSlotPatchSet(t *testing.T) {
	name := "renamed"
	set, args := adSlotPatchSet(domain.AdSlotPatch{Name: &name})
	assert.Equal(t, []string{"name = $1", "updated_at = now()"}, set)
	assert.Equal(t, []any{"renamed"}, args)

	price := decimal.NewFromInt(300)
	available := true
	set, args = adSlotPatchSet(domain.AdSlotPatch{BasePrice: &price, IsAvailable: &available})
	assert.Equal(t, []string{"base_price = $1", "is_available = $2", "updated_at = now()"}, set)
	assert.Equal(t, []any{price, true}, args)

	set, args = adSlotPatchSet(domain.AdSlotPatch{})
	assert.Equal(t, []string{"updated_at = now()"}, set)
	assert.Empty(t, args)
}
