package notification

import (
	"context"

	"arenaslot/models"
)

// EmailSender delivers one email. Implementations are opaque providers; the
// dispatcher only needs the narrow send contract.
type EmailSender interface {
	SendEmail(ctx context.Context, to, subject, body string) error
}

// MessageSender delivers one text message (SMS or chat).
type MessageSender interface {
	SendMessage(ctx context.Context, to, body string) error
}

// Dispatcher fans a message out to a recipient list in bounded-size batches.
type Dispatcher interface {
	// Dispatch sends message to recipients over one channel. batchSize <= 0
	// selects the channel default (50 for email, 20 for SMS/WhatsApp).
	Dispatch(ctx context.Context, channel models.Channel, recipients []string, subject, message string, batchSize int) models.ChannelReport
	// DispatchAll runs Dispatch for each requested channel. Channels are
	// independent: a failure on one never blocks or rolls back another.
	DispatchAll(ctx context.Context, channels []models.Channel, emails, phones []string, subject, message string) models.DispatchReport
}

// Default batch sizes. SMS/chat gateways typically cap concurrent sends
// lower than email providers do.
const (
	DefaultEmailBatchSize   = 50
	DefaultMessageBatchSize = 20
)
