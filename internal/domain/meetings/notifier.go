package meetings

import (
	"context"

	"go.uber.org/zap"

	"creative-edge/internal/infra/mailer"
)

type Sender interface {
	Send(ctx context.Context, msg mailer.Message) error
}

// Notifier forwards a validated request to the site owner. One attempt per
// request; relay failures are returned to the caller.
type Notifier struct {
	sender Sender
	brand  string
	to     string
	log    *zap.Logger
}

func NewNotifier(sender Sender, brand, to string, log *zap.Logger) *Notifier {
	if log == nil {
		log = zap.NewNop()
	}
	return &Notifier{sender: sender, brand: brand, to: to, log: log}
}

func (n *Notifier) Notify(ctx context.Context, r Request) error {
	email := ComposeEmail(n.brand, r)

	err := n.sender.Send(ctx, mailer.Message{
		FromName: n.brand,
		To:       n.to,
		ReplyTo:  r.Email,
		Subject:  email.Subject,
		Text:     email.Text,
	})
	if err != nil {
		n.log.Error("meeting request email failed", zap.Error(err))
		return err
	}

	n.log.Info("meeting request sent",
		zap.String("preferred_date", r.PreferredDate),
		zap.Bool("has_photo", r.PhotoURL != ""),
	)
	return nil
}
