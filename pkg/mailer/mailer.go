package mailer

import (
	"context"
	"errors"
)

// Mailer delivers transactional email. Enabled reports whether a provider
// is configured at all; Send on a disabled mailer returns ErrDisabled.
type Mailer interface {
	Enabled() bool
	Send(ctx context.Context, to, subject, htmlBody string) error
}

var ErrDisabled = errors.New("mail provider not configured")
