package messaging

import (
	"context"
	"encoding/json"
	"fmt"

	"wexel-ledger/internal/core/domain"

	"github.com/nats-io/nats.go/jetstream"
)

// Notifier implements ports.Notifier by publishing each notification to
// <prefix>.<type>, e.g. ledger.notifications.listing.sold.
type Notifier struct {
	pub    Publisher
	prefix string
}

func NewNotifier(pub Publisher, subjectPrefix string) *Notifier {
	return &Notifier{pub: pub, prefix: subjectPrefix}
}

func (n *Notifier) Notify(ctx context.Context, note domain.Notification) error {
	data, err := json.Marshal(note)
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}

	subject := n.prefix + "." + string(note.Type)
	// Dedup window on the stream absorbs republishing the same notification.
	msgID := fmt.Sprintf("%s:%d:%d", note.Type, note.WexelID, note.OccurredAt.UnixNano())
	if _, err := n.pub.Publish(ctx, subject, data, jetstream.WithMsgID(msgID)); err != nil {
		return fmt.Errorf("publish %s: %w", subject, err)
	}
	return nil
}
