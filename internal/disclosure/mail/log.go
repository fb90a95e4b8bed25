package mail

import (
	"context"
	"log/slog"

	"github.com/aussiebroadwan/disclosure/pkg/slogx"
)

// LogMailer writes invitations to the request logger instead of sending
// them. It is used when no SMTP relay is configured.
type LogMailer struct{}

func (LogMailer) SendInvite(ctx context.Context, inv Invitation) error {
	slogx.FromContext(ctx).Info("invite email (not sent, no SMTP relay)",
		slog.String("to", inv.To),
		slog.String("property", inv.PropertyTitle),
		slog.String("role", inv.Role),
		slog.String("link", inv.Link),
		slog.Time("expires_at", inv.ExpiresAt),
	)
	return nil
}
