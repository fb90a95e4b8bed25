package mail_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/aussiebroadwan/disclosure/internal/disclosure/mail"
	"github.com/aussiebroadwan/disclosure/pkg/slogx"
	"github.com/stretchr/testify/require"
)

func sampleInvite() mail.Invitation {
	return mail.Invitation{
		To:            "seller@example.com",
		InviterName:   "Ada Agent",
		PropertyTitle: "12 Smith St",
		Role:          "seller",
		Link:          "https://app.example.com/invite/abc123",
		ExpiresAt:     time.Date(2026, 6, 8, 9, 30, 0, 0, time.UTC),
	}
}

func TestInvitationBody(t *testing.T) {
	body, err := sampleInvite().Body()
	require.NoError(t, err)
	require.Contains(t, body, `href="https://app.example.com/invite/abc123"`)
	require.Contains(t, body, "Ada Agent has invited you")
	require.Contains(t, body, "<strong>12 Smith St</strong>")
	require.Contains(t, body, "8 Jun 2026 09:30 UTC")
}

func TestInvitationBodyEscapes(t *testing.T) {
	inv := sampleInvite()
	inv.PropertyTitle = "<b>x</b>"
	inv.InviterName = ""

	body, err := inv.Body()
	require.NoError(t, err)
	require.Contains(t, body, "&lt;b&gt;x&lt;/b&gt;")
	require.Contains(t, body, "You have been invited")
}

func TestLogMailer(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	ctx := slogx.WithContext(context.Background(), logger)

	require.NoError(t, mail.LogMailer{}.SendInvite(ctx, sampleInvite()))
	require.Contains(t, buf.String(), `"to":"seller@example.com"`)
	require.Contains(t, buf.String(), "invite/abc123")
}

func TestNewSMTPMailer(t *testing.T) {
	m, err := mail.NewSMTPMailer(mail.SMTPConfig{Host: "localhost", Port: 1025, From: "noreply@example.com"})
	require.NoError(t, err)
	require.NotNil(t, m)

	_, err = mail.NewSMTPMailer(mail.SMTPConfig{Host: "", Port: 25})
	require.Error(t, err)
}

func TestSMTPMailerRejectsBadRecipient(t *testing.T) {
	m, err := mail.NewSMTPMailer(mail.SMTPConfig{Host: "localhost", Port: 1025, From: "noreply@example.com"})
	require.NoError(t, err)

	inv := sampleInvite()
	inv.To = "not an address"
	require.Error(t, m.SendInvite(context.Background(), inv))
}
