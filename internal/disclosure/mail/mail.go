// Package mail delivers invitation emails.
package mail

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"time"
)

// Invitation is the content of an invite email.
type Invitation struct {
	To            string
	InviterName   string
	PropertyTitle string
	Role          string
	Link          string
	ExpiresAt     time.Time
}

// Mailer sends invitation emails. Implementations must be safe for
// concurrent use.
type Mailer interface {
	SendInvite(ctx context.Context, inv Invitation) error
}

// Subject returns the subject line for inv.
func (inv Invitation) Subject() string {
	return fmt.Sprintf("You're invited to %s", inv.PropertyTitle)
}

var inviteTemplate = template.Must(template.New("invite").Parse(`<!doctype html>
<html>
<body style="font-family:Arial,sans-serif">
<p>Hello,</p>
<p>{{if .InviterName}}{{.InviterName}} has{{else}}You have been{{end}} invited you to join <strong>{{.PropertyTitle}}</strong> as {{.Role}}.</p>
<p><a href="{{.Link}}">Accept the invitation</a></p>
<p style="color:#555;font-size:12px">This link expires {{.ExpiresAt.UTC.Format "2 Jan 2006 15:04 MST"}}.</p>
</body>
</html>
`))

// Body renders the HTML body of inv.
func (inv Invitation) Body() (string, error) {
	var buf bytes.Buffer
	if err := inviteTemplate.Execute(&buf, inv); err != nil {
		return "", fmt.Errorf("mail: render invite: %w", err)
	}
	return buf.String(), nil
}
