package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"mesa-market/internal/core/domain"
)

// seedNamespace derives stable ids so re-running Seed is a no-op.
var seedNamespace = uuid.MustParse("6f1c2a8e-8d0b-4c55-9a57-3b1f0f6f4a10")

func seedID(kind string, n int) uuid.UUID {
	return uuid.NewSHA1(seedNamespace, []byte(fmt.Sprintf("%s-%d", kind, n)))
}

type seedPublisher struct {
	name, category string
	views          int64
	slots          []seedSlot
}

type seedSlot struct {
	name  string
	typ   domain.AdSlotType
	price string
}

var demoPublishers = []seedPublisher{
	{"The Daily Byte", "Technology", 250000, []seedSlot{
		{"Homepage leaderboard", domain.AdSlotDisplay, "1200.00"},
		{"Weekly digest sponsor", domain.AdSlotNewsletter, "800.00"},
		{"Article native card", domain.AdSlotNative, "450.00"},
	}},
	{"Trailhead Radio", "Outdoors", 90000, []seedSlot{
		{"Pre-roll read", domain.AdSlotPodcast, "600.00"},
		{"Mid-roll read", domain.AdSlotPodcast, "750.00"},
	}},
	{"Kitchen Table", "Food", 140000, []seedSlot{
		{"Recipe video bumper", domain.AdSlotVideo, "950.00"},
		{"Sidebar rectangle", domain.AdSlotDisplay, "300.00"},
		{"Newsletter footer", domain.AdSlotNewsletter, "200.00"},
	}},
}

var demoSponsors = []struct {
	name, industry string
	tier           domain.SubscriptionTier
	budget         string
}{
	{"Acme Outfitters", "Retail", domain.TierProfessional, "25000.00"},
	{"Northwind Coffee", "Food & Beverage", domain.TierStarter, "8000.00"},
}

// Seed inserts demo sponsors, publishers, ad slots, campaigns, creatives
// and placements. Demo records belong to the users seed-publisher-N and
// seed-sponsor-N. Existing rows are left untouched.
func Seed(ctx context.Context, pool *pgxpool.Pool) error {
	return pgx.BeginFunc(ctx, pool, func(tx pgx.Tx) error {
		now := time.Now().UTC()

		for i, p := range demoPublishers {
			pubID := seedID("publisher", i)
			_, err := tx.Exec(ctx, `INSERT INTO publishers
    (id, user_id, name, email, category, monthly_views, is_verified, is_active, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,true,true,$7,$7) ON CONFLICT DO NOTHING`,
				pubID, fmt.Sprintf("seed-publisher-%d", i), p.name,
				fmt.Sprintf("ads%d@publisher.example", i), p.category, p.views, now)
			if err != nil {
				return fmt.Errorf("seed publisher %q: %w", p.name, err)
			}
			for j, s := range p.slots {
				_, err = tx.Exec(ctx, `INSERT INTO ad_slots
    (id, publisher_id, name, type, base_price, is_available, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,true,$6,$6) ON CONFLICT DO NOTHING`,
					seedID(fmt.Sprintf("slot-%d", i), j), pubID, s.name, s.typ, decimal.RequireFromString(s.price), now)
				if err != nil {
					return fmt.Errorf("seed ad slot %q: %w", s.name, err)
				}
			}
		}

		for i, s := range demoSponsors {
			sponsorID := seedID("sponsor", i)
			_, err := tx.Exec(ctx, `INSERT INTO sponsors
    (id, user_id, name, email, industry, subscription_tier, is_verified, is_active, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,true,true,$7,$7) ON CONFLICT DO NOTHING`,
				sponsorID, fmt.Sprintf("seed-sponsor-%d", i), s.name,
				fmt.Sprintf("marketing%d@sponsor.example", i), s.industry, s.tier, now)
			if err != nil {
				return fmt.Errorf("seed sponsor %q: %w", s.name, err)
			}

			campaignID := seedID("campaign", i)
			_, err = tx.Exec(ctx, `INSERT INTO campaigns
    (id, sponsor_id, name, budget, spent, cpm_rate, start_date, end_date,
     target_categories, target_regions, status, created_at, updated_at)
VALUES ($1,$2,$3,$4,0,$5,$6,$7,$8,$9,$10,$11,$11) ON CONFLICT DO NOTHING`,
				campaignID, sponsorID, s.name+" launch", decimal.RequireFromString(s.budget),
				decimal.NewFromInt(12), now.AddDate(0, 0, -7), now.AddDate(0, 2, 0),
				[]string{"Technology", "Food"}, []string{"US", "CA"}, domain.CampaignActive, now)
			if err != nil {
				return fmt.Errorf("seed campaign: %w", err)
			}

			creativeID := seedID("creative", i)
			_, err = tx.Exec(ctx, `INSERT INTO creatives (id, campaign_id, name, type, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$5) ON CONFLICT DO NOTHING`,
				creativeID, campaignID, s.name+" banner", domain.CreativeBanner, now)
			if err != nil {
				return fmt.Errorf("seed creative: %w", err)
			}

			// Sponsor i runs on the first slot of publisher i.
			_, err = tx.Exec(ctx, `INSERT INTO placements
    (id, campaign_id, creative_id, ad_slot_id, publisher_id, agreed_price, pricing_model,
     start_date, end_date, status, impressions, clicks, conversions, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,'CPM',$7,$8,'ACTIVE',$9,$10,$11,$12,$12) ON CONFLICT DO NOTHING`,
				seedID("placement", i), campaignID, creativeID, seedID(fmt.Sprintf("slot-%d", i), 0),
				seedID("publisher", i), decimal.RequireFromString(demoPublishers[i].slots[0].price),
				now.AddDate(0, 0, -7), now.AddDate(0, 1, 0),
				int64(12000*(i+1)), int64(180*(i+1)), int64(9*(i+1)), now)
			if err != nil {
				return fmt.Errorf("seed placement: %w", err)
			}
		}
		return nil
	})
}
