package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"mesa-market/internal/core/port"
)

type NewsletterUseCase struct {
	repo   port.NewsletterRepository
	logger *slog.Logger
}

func NewNewsletterUseCase(repo port.NewsletterRepository, logger *slog.Logger) *NewsletterUseCase {
	return &NewsletterUseCase{repo: repo, logger: logger}
}

// Subscribe is idempotent: subscribing an address twice succeeds both times.
func (u *NewsletterUseCase) Subscribe(ctx context.Context, in port.SubscribeInput) error {
	in.Email = strings.TrimSpace(strings.ToLower(in.Email))
	if err := validateInput(in); err != nil {
		return err
	}
	sub, err := u.repo.Subscribe(ctx, in.Email)
	if err != nil {
		return fmt.Errorf("subscribe: %w", err)
	}
	u.logger.DebugContext(ctx, "newsletter subscription", slog.String("subscriber_id", sub.ID.String()))
	return nil
}
