package httpadapter

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"mesa-market/internal/adapter/usecase"
	"mesa-market/internal/config/configs"
	"mesa-market/internal/core/domain"
	"mesa-market/internal/core/port/mocks"
)

var (
	alice = domain.User{ID: "user-alice", Email: "alice@example.com", Name: "Alice"}
	bob   = domain.User{ID: "user-bob", Email: "bob@example.com", Name: "Bob"}
)

type testEnv struct {
	sessions   *mocks.MockSessionValidator
	db         *mocks.MockPinger
	limiter    *mocks.MockRateLimiter
	sponsors   *mocks.MockSponsorRepository
	publishers *mocks.MockPublisherRepository
	slots      *mocks.MockAdSlotRepository
	campaigns  *mocks.MockCampaignRepository
	placements *mocks.MockPlacementRepository
	quotes     *mocks.MockQuoteRepository
	newsletter *mocks.MockNewsletterRepository
	router     http.Handler
}

func newTestEnv(t *testing.T, withLimiter bool) *testEnv {
	e := &testEnv{
		sessions:   mocks.NewMockSessionValidator(t),
		db:         mocks.NewMockPinger(t),
		sponsors:   mocks.NewMockSponsorRepository(t),
		publishers: mocks.NewMockPublisherRepository(t),
		slots:      mocks.NewMockAdSlotRepository(t),
		campaigns:  mocks.NewMockCampaignRepository(t),
		placements: mocks.NewMockPlacementRepository(t),
		quotes:     mocks.NewMockQuoteRepository(t),
		newsletter: mocks.NewMockNewsletterRepository(t),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	owner := usecase.NewOwnershipResolver(e.sponsors, e.publishers)

	svc := Services{
		Auth:       owner,
		AdSlots:    usecase.NewAdSlotUseCase(e.slots, e.placements, e.publishers, owner, logger),
		Quotes:     usecase.NewQuoteUseCase(e.quotes, e.slots, owner),
		Campaigns:  usecase.NewCampaignUseCase(e.campaigns, e.placements, owner),
		Sponsors:   usecase.NewSponsorUseCase(e.sponsors, e.campaigns),
		Publishers: usecase.NewPublisherUseCase(e.publishers, e.slots),
		Placements: usecase.NewPlacementUseCase(e.placements, e.campaigns, e.slots, owner),
		Dashboard:  usecase.NewDashboardUseCase(e.sponsors, e.publishers, e.campaigns, e.placements),
		Newsletter: usecase.NewNewsletterUseCase(e.newsletter, logger),
	}
	infra := Infra{
		Sessions:   e.sessions,
		CookieName: "session_token",
		DB:         e.db,
		RateLimit:  configs.RateLimit{Rate: 10, Burst: 30, AuthRate: 1, AuthBurst: 5},
	}
	if withLimiter {
		e.limiter = mocks.NewMockRateLimiter(t)
		infra.Limiter = e.limiter
	}
	e.router = NewHandler(svc, infra, logger).Router()
	return e
}

// login makes token resolve to user.
func (e *testEnv) login(user domain.User) string {
	token := user.ID + "-token"
	e.sessions.EXPECT().Validate(mock.Anything, token).Return(user, nil).Maybe()
	return token
}

func (e *testEnv) do(method, path, token, body string) *httptest.ResponseRecorder {
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func testSponsor(owner domain.User) *domain.Sponsor {
	return &domain.Sponsor{ID: uuid.New(), UserID: owner.ID, Name: owner.Name + " Brands", Email: owner.Email, IsActive: true}
}

func testPublisher(owner domain.User) *domain.Publisher {
	return &domain.Publisher{ID: uuid.New(), UserID: owner.ID, Name: owner.Name + " Media", Email: owner.Email, IsActive: true}
}

func testSlot(pub *domain.Publisher, available bool) *domain.AdSlot {
	return &domain.AdSlot{
		ID:          uuid.New(),
		PublisherID: pub.ID,
		Name:        "Sidebar",
		Type:        domain.AdSlotDisplay,
		BasePrice:   decimal.RequireFromString("250.00"),
		IsAvailable: available,
		CreatedAt:   time.Now().UTC(),
		UpdatedAt:   time.Now().UTC(),
	}
}

func TestAuthentication(t *testing.T) {
	t.Run("missing token", func(t *testing.T) {
		e := newTestEnv(t, false)
		rec := e.do(http.MethodGet, "/api/campaigns", "", "")

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		body := decodeBody[errorBody](t, rec)
		assert.Equal(t, errorBody{Error: "Authentication required", Status: 401, StatusText: "Unauthorized"}, body)
	})

	t.Run("rejected token", func(t *testing.T) {
		e := newTestEnv(t, false)
		e.sessions.EXPECT().Validate(mock.Anything, "stale").Return(domain.User{}, domain.ErrUnauthenticated)

		rec := e.do(http.MethodGet, "/api/campaigns", "stale", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("session cookie", func(t *testing.T) {
		e := newTestEnv(t, false)
		token := e.login(alice)
		e.sponsors.EXPECT().FindByUserID(mock.Anything, alice.ID).Return(nil, nil)
		e.publishers.EXPECT().FindByUserID(mock.Anything, alice.ID).Return(nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
		req.AddCookie(&http.Cookie{Name: "session_token", Value: token})
		rec := httptest.NewRecorder()
		e.router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"user":{"id":"user-alice","email":"alice@example.com","name":"Alice"},"role":{"role":null}}`, rec.Body.String())
	})
}

func TestResolveRole(t *testing.T) {
	e := newTestEnv(t, false)
	sponsor := testSponsor(alice)
	e.sponsors.EXPECT().FindByUserID(mock.Anything, alice.ID).Return(sponsor, nil)

	rec := e.do(http.MethodGet, "/api/auth/role/"+alice.ID, "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"role":"sponsor","sponsorId":"`+sponsor.ID.String()+`","name":"Alice Brands"}`,
		rec.Body.String())
}

func TestBookAdSlot(t *testing.T) {
	t.Run("booked then unavailable", func(t *testing.T) {
		e := newTestEnv(t, false)
		token := e.login(alice)
		sponsor := testSponsor(alice)
		slot := testSlot(testPublisher(bob), true)
		booked := *slot
		booked.IsAvailable = false

		e.slots.EXPECT().Get(mock.Anything, slot.ID).Return(slot, nil)
		e.sponsors.EXPECT().Get(mock.Anything, sponsor.ID).Return(sponsor, nil)
		e.slots.EXPECT().MarkBooked(mock.Anything, slot.ID).Return(&booked, nil).Once()
		e.slots.EXPECT().MarkBooked(mock.Anything, slot.ID).Return(nil, domain.ErrSlotUnavailable).Once()

		body := `{"sponsorId":"` + sponsor.ID.String() + `","message":"Q3 launch"}`
		rec := e.do(http.MethodPost, "/api/ad-slots/"+slot.ID.String()+"/book", token, body)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		ok := decodeBody[map[string]any](t, rec)
		assert.Equal(t, true, ok["success"])
		assert.Equal(t, "Ad slot booked successfully!", ok["message"])
		assert.Equal(t, false, ok["adSlot"].(map[string]any)["isAvailable"])

		rec = e.do(http.MethodPost, "/api/ad-slots/"+slot.ID.String()+"/book", token, body)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Ad slot is no longer available", decodeBody[errorBody](t, rec).Error)
	})

	t.Run("missing slot is 404 before sponsor check", func(t *testing.T) {
		e := newTestEnv(t, false)
		token := e.login(bob)
		id := uuid.New()
		e.slots.EXPECT().Get(mock.Anything, id).Return(nil, nil)

		rec := e.do(http.MethodPost, "/api/ad-slots/"+id.String()+"/book", token, `{"sponsorId":"`+uuid.NewString()+`"}`)

		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, errorBody{Error: "Ad slot not found", Status: 404, StatusText: "Not Found"}, decodeBody[errorBody](t, rec))
	})

	t.Run("foreign sponsor is 403", func(t *testing.T) {
		e := newTestEnv(t, false)
		token := e.login(bob)
		sponsor := testSponsor(alice)
		slot := testSlot(testPublisher(bob), true)
		e.slots.EXPECT().Get(mock.Anything, slot.ID).Return(slot, nil)
		e.sponsors.EXPECT().Get(mock.Anything, sponsor.ID).Return(sponsor, nil)

		rec := e.do(http.MethodPost, "/api/ad-slots/"+slot.ID.String()+"/book", token, `{"sponsorId":"`+sponsor.ID.String()+`"}`)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("missing sponsorId", func(t *testing.T) {
		e := newTestEnv(t, false)
		token := e.login(alice)

		rec := e.do(http.MethodPost, "/api/ad-slots/"+uuid.NewString()+"/book", token, "")

		require.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeBody[errorBody](t, rec)
		assert.Equal(t, "Validation failed", body.Error)
		assert.Contains(t, body.Details, "sponsorId")
	})

	t.Run("malformed id", func(t *testing.T) {
		e := newTestEnv(t, false)
		token := e.login(alice)

		rec := e.do(http.MethodPost, "/api/ad-slots/not-a-uuid/book", token, `{}`)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("malformed json", func(t *testing.T) {
		e := newTestEnv(t, false)
		token := e.login(alice)

		rec := e.do(http.MethodPost, "/api/ad-slots/"+uuid.NewString()+"/book", token, `{"sponsorId":`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decodeBody[errorBody](t, rec).Details, "body")
	})
}

func TestUnbookAdSlot(t *testing.T) {
	e := newTestEnv(t, false)
	token := e.login(bob)
	pub := testPublisher(bob)
	slot := testSlot(pub, false)
	freed := *slot
	freed.IsAvailable = true

	e.slots.EXPECT().Get(mock.Anything, slot.ID).Return(slot, nil)
	e.publishers.EXPECT().Get(mock.Anything, pub.ID).Return(pub, nil)
	e.slots.EXPECT().MarkAvailable(mock.Anything, slot.ID).Return(&freed, nil)

	rec := e.do(http.MethodPost, "/api/ad-slots/"+slot.ID.String()+"/unbook", token, "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Ad slot is now available again", decodeBody[map[string]any](t, rec)["message"])
}

func TestListAdSlots(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		e := newTestEnv(t, false)
		token := e.login(alice)
		e.slots.EXPECT().
			List(mock.Anything, domain.AdSlotFilter{Limit: 6, Offset: 0}).
			Return([]domain.AdSlotListItem{}, int64(7), nil)

		rec := e.do(http.MethodGet, "/api/ad-slots", token, "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t,
			`{"data":[],"pagination":{"page":1,"limit":6,"total":7,"totalPages":2,"hasMore":true}}`,
			rec.Body.String())
	})

	t.Run("filters", func(t *testing.T) {
		e := newTestEnv(t, false)
		token := e.login(alice)
		pubID := uuid.New()
		typ := domain.AdSlotType("VIDEO")
		e.slots.EXPECT().
			List(mock.Anything, domain.AdSlotFilter{Type: &typ, AvailableOnly: true, PublisherID: &pubID, Limit: 10, Offset: 20}).
			Return([]domain.AdSlotListItem{}, int64(0), nil)

		rec := e.do(http.MethodGet, "/api/ad-slots?type=VIDEO&available=true&publisherId="+pubID.String()+"&page=3&limit=10", token, "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	for _, q := range []string{"limit=51", "page=abc", "type=BILLBOARD", "publisherId=x"} {
		t.Run("rejects "+q, func(t *testing.T) {
			e := newTestEnv(t, false)
			token := e.login(alice)

			rec := e.do(http.MethodGet, "/api/ad-slots?"+q, token, "")
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestUpdateQuoteStatus(t *testing.T) {
	t.Run("missing quote is 404 for non-publisher", func(t *testing.T) {
		e := newTestEnv(t, false)
		token := e.login(alice)
		id := uuid.New()
		e.quotes.EXPECT().Get(mock.Anything, id).Return(nil, nil)

		rec := e.do(http.MethodPatch, "/api/quotes/"+id.String()+"/status", token, `{"status":"ACCEPTED"}`)

		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Quote request not found", decodeBody[errorBody](t, rec).Error)
	})

	t.Run("not a publisher", func(t *testing.T) {
		e := newTestEnv(t, false)
		token := e.login(alice)
		quote := &domain.QuoteRequest{ID: uuid.New(), AdSlotID: uuid.New(), Status: domain.QuotePending}
		e.quotes.EXPECT().Get(mock.Anything, quote.ID).Return(quote, nil)
		e.publishers.EXPECT().FindByUserID(mock.Anything, alice.ID).Return(nil, nil)

		rec := e.do(http.MethodPatch, "/api/quotes/"+quote.ID.String()+"/status", token, `{"status":"ACCEPTED"}`)

		require.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "Not a publisher", decodeBody[errorBody](t, rec).Error)
	})

	t.Run("other publisher's slot", func(t *testing.T) {
		e := newTestEnv(t, false)
		token := e.login(alice)
		mine := testPublisher(alice)
		slot := testSlot(testPublisher(bob), true)
		quote := &domain.QuoteRequest{ID: uuid.New(), AdSlotID: slot.ID, Status: domain.QuotePending}
		e.quotes.EXPECT().Get(mock.Anything, quote.ID).Return(quote, nil)
		e.publishers.EXPECT().FindByUserID(mock.Anything, alice.ID).Return(mine, nil)
		e.slots.EXPECT().Get(mock.Anything, slot.ID).Return(slot, nil)

		rec := e.do(http.MethodPatch, "/api/quotes/"+quote.ID.String()+"/status", token, `{"status":"ACCEPTED"}`)

		require.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "Not authorized to update this quote", decodeBody[errorBody](t, rec).Error)
	})

	t.Run("owner updates", func(t *testing.T) {
		e := newTestEnv(t, false)
		token := e.login(bob)
		pub := testPublisher(bob)
		slot := testSlot(pub, true)
		quote := &domain.QuoteRequest{ID: uuid.New(), AdSlotID: slot.ID, Status: domain.QuotePending}
		e.quotes.EXPECT().Get(mock.Anything, quote.ID).Return(quote, nil)
		e.publishers.EXPECT().FindByUserID(mock.Anything, bob.ID).Return(pub, nil)
		e.slots.EXPECT().Get(mock.Anything, slot.ID).Return(slot, nil)
		e.quotes.EXPECT().UpdateStatus(mock.Anything, quote.ID, domain.QuoteStatus("ACCEPTED")).Return(nil)

		rec := e.do(http.MethodPatch, "/api/quotes/"+quote.ID.String()+"/status", token, `{"status":"ACCEPTED"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"success":true,"message":"Quote status updated to ACCEPTED"}`, rec.Body.String())
	})

	t.Run("invalid status", func(t *testing.T) {
		e := newTestEnv(t, false)
		token := e.login(bob)

		rec := e.do(http.MethodPatch, "/api/quotes/"+uuid.NewString()+"/status", token, `{"status":"MAYBE"}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decodeBody[errorBody](t, rec).Details, "status")
	})
}

func TestRequestQuote(t *testing.T) {
	e := newTestEnv(t, false)
	token := e.login(alice)
	slot := testSlot(testPublisher(bob), true)
	e.slots.EXPECT().Get(mock.Anything, slot.ID).Return(slot, nil)
	e.quotes.EXPECT().Create(mock.Anything, mock.AnythingOfType("*domain.QuoteRequest")).Return(nil)

	rec := e.do(http.MethodPost, "/api/quotes", token,
		`{"companyName":"Acme","email":"buyer@acme.test","adSlotId":"`+slot.ID.String()+`"}`)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	body := decodeBody[map[string]any](t, rec)
	assert.Equal(t, "Quote request submitted successfully", body["message"])
	assert.NotEmpty(t, body["quoteId"])
}

func TestHealth(t *testing.T) {
	t.Run("connected", func(t *testing.T) {
		e := newTestEnv(t, false)
		e.db.EXPECT().Ping(mock.Anything).Return(nil)

		rec := e.do(http.MethodGet, "/api/health", "", "")

		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody[map[string]any](t, rec)
		assert.Equal(t, "ok", body["status"])
		assert.Equal(t, "connected", body["database"])
	})

	t.Run("disconnected", func(t *testing.T) {
		e := newTestEnv(t, false)
		e.db.EXPECT().Ping(mock.Anything).Return(io.ErrUnexpectedEOF)

		rec := e.do(http.MethodGet, "/api/health", "", "")

		require.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Equal(t, "Database disconnected", decodeBody[errorBody](t, rec).Error)
	})
}

func TestNewsletter(t *testing.T) {
	e := newTestEnv(t, false)
	e.newsletter.EXPECT().Subscribe(mock.Anything, "reader@example.com").
		Return(&domain.NewsletterSubscriber{ID: uuid.New(), Email: "reader@example.com"}, nil)

	rec := e.do(http.MethodPost, "/api/newsletter", "", `{"email":"Reader@Example.com"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"message":"Thanks for subscribing!"}`, rec.Body.String())
}

func TestRequestID(t *testing.T) {
	e := newTestEnv(t, false)
	e.db.EXPECT().Ping(mock.Anything).Return(nil).Times(2)

	rec := e.do(http.MethodGet, "/api/health", "", "")
	_, err := uuid.Parse(rec.Header().Get(requestIDHeader))
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set(requestIDHeader, "abc-123")
	rec = httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", rec.Header().Get(requestIDHeader))
}

func TestUnknownRoute(t *testing.T) {
	e := newTestEnv(t, false)

	rec := e.do(http.MethodGet, "/api/nowhere", "", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Not Found", decodeBody[errorBody](t, rec).StatusText)
}
