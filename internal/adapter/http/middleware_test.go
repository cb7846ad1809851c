package httpadapter

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"mesa-market/internal/core/domain"
	"mesa-market/internal/core/port"
)

// httptest.NewRequest uses 192.0.2.1 as the client address.
const testClientIP = "192.0.2.1"

func TestRateLimit(t *testing.T) {
	t.Run("rejects with retry-after", func(t *testing.T) {
		e := newTestEnv(t, true)
		e.limiter.EXPECT().Allow(mock.Anything, "api:"+testClientIP, 10.0, 30).Return(&port.RateLimitResult{
			Allowed:    false,
			Limit:      30,
			Remaining:  0,
			ResetTime:  time.Now().Add(3 * time.Second),
			RetryAfter: 1500 * time.Millisecond,
		}, nil)

		rec := e.do(http.MethodPost, "/api/newsletter", "", `{"email":"reader@example.com"}`)

		require.Equal(t, http.StatusTooManyRequests, rec.Code)
		assert.Equal(t, "2", rec.Header().Get("Retry-After"))
		assert.Equal(t, "30", rec.Header().Get("RateLimit-Limit"))
		assert.Equal(t, "0", rec.Header().Get("RateLimit-Remaining"))
		assert.Equal(t, "Too Many Requests", decodeBody[errorBody](t, rec).StatusText)
	})

	t.Run("auth routes use the strict bucket", func(t *testing.T) {
		e := newTestEnv(t, true)
		e.limiter.EXPECT().Allow(mock.Anything, "auth:"+testClientIP, 1.0, 5).Return(&port.RateLimitResult{
			Allowed:   true,
			Limit:     5,
			Remaining: 4,
			ResetTime: time.Now().Add(time.Second),
		}, nil)
		e.sponsors.EXPECT().FindByUserID(mock.Anything, "nobody").Return(nil, nil)
		e.publishers.EXPECT().FindByUserID(mock.Anything, "nobody").Return(nil, nil)

		rec := e.do(http.MethodGet, "/api/auth/role/nobody", "", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "4", rec.Header().Get("RateLimit-Remaining"))
		assert.JSONEq(t, `{"role":null}`, rec.Body.String())
	})

	t.Run("limiter failure lets requests through", func(t *testing.T) {
		e := newTestEnv(t, true)
		e.limiter.EXPECT().Allow(mock.Anything, "api:"+testClientIP, 10.0, 30).Return(nil, errors.New("connection refused"))
		e.newsletter.EXPECT().Subscribe(mock.Anything, "reader@example.com").
			Return(&domain.NewsletterSubscriber{ID: uuid.New(), Email: "reader@example.com"}, nil)

		rec := e.do(http.MethodPost, "/api/newsletter", "", `{"email":"reader@example.com"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("health is never limited", func(t *testing.T) {
		e := newTestEnv(t, true)
		e.db.EXPECT().Ping(mock.Anything).Return(nil)

		rec := e.do(http.MethodGet, "/api/health", "", "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestRecoverer(t *testing.T) {
	h := &Handler{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	panicky := h.recoverer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	panicky.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, errorBody{Error: "Internal Server Error", Status: 500, StatusText: "Internal Server Error"}, decodeBody[errorBody](t, rec))
}

func TestWriteErrorHidesInternalDetail(t *testing.T) {
	h := &Handler{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	rec := httptest.NewRecorder()

	h.writeError(rec, httptest.NewRequest(http.MethodGet, "/", nil), errors.New("pq: relation does not exist"))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "relation")
}

func TestWriteErrorConflict(t *testing.T) {
	h := &Handler{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	rec := httptest.NewRecorder()

	h.writeError(rec, httptest.NewRequest(http.MethodPost, "/", nil), domain.ErrConflict)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestBearerToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Empty(t, bearerToken(req))

	req.Header.Set("Authorization", "Bearer abc.def")
	assert.Equal(t, "abc.def", bearerToken(req))

	req.Header.Set("Authorization", "bearer xyz")
	assert.Equal(t, "xyz", bearerToken(req))

	req.Header.Set("Authorization", "Basic Zm9vOmJhcg==")
	assert.Empty(t, bearerToken(req))
}
