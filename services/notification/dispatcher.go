package notification

import (
	"context"
	"fmt"
	"sync"

	"arenaslot/models"
	"arenaslot/utils"

	"go.uber.org/zap"
)

// DefaultDispatcher is the production Dispatcher. One sender per channel is
// injected at startup so tests can substitute fakes.
type DefaultDispatcher struct {
	Email    EmailSender
	SMS      MessageSender
	WhatsApp MessageSender
}

// Dispatch partitions recipients into consecutive batches and sends each
// batch concurrently, awaiting the whole batch before starting the next.
// Peak in-flight sends are bounded by the batch size, which gives natural
// backpressure against rate-limited providers. The first batch with a failed
// send aborts the remaining batches for this channel; completed batches stay
// completed.
func (d *DefaultDispatcher) Dispatch(ctx context.Context, channel models.Channel, recipients []string, subject, message string, batchSize int) models.ChannelReport {
	logger := utils.GetLogger()

	if batchSize <= 0 {
		batchSize = defaultBatchSize(channel)
	}

	// Recipients without an address are dropped up front, never counted as
	// per-recipient failures.
	valid := recipients[:0:0]
	for _, r := range recipients {
		if r != "" {
			valid = append(valid, r)
		}
	}

	report := models.ChannelReport{Channel: channel, Recipients: len(valid)}

	for i := 0; i < len(valid); i += batchSize {
		end := i + batchSize
		if end > len(valid) {
			end = len(valid)
		}
		batch := valid[i:end]
		batchIndex := i/batchSize + 1

		if err := d.sendBatch(ctx, channel, batch, subject, message); err != nil {
			report.FailedBatch = batchIndex
			report.Error = err.Error()
			logger.Error("notification batch failed",
				zap.String("channel", string(channel)),
				zap.Int("batch", batchIndex),
				zap.Error(err),
			)
			return report
		}

		report.BatchesSent++
		logger.Info("notification batch sent",
			zap.String("channel", string(channel)),
			zap.Int("batch", batchIndex),
			zap.Int("size", len(batch)),
		)
	}
	return report
}

// sendBatch issues every send in the batch concurrently and waits for all of
// them. The first error observed is returned.
func (d *DefaultDispatcher) sendBatch(ctx context.Context, channel models.Channel, batch []string, subject, message string) error {
	errs := make([]error, len(batch))
	var wg sync.WaitGroup

	for i, recipient := range batch {
		wg.Add(1)
		go func(i int, to string) {
			defer wg.Done()
			errs[i] = d.send(ctx, channel, to, subject, message)
		}(i, recipient)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

func (d *DefaultDispatcher) send(ctx context.Context, channel models.Channel, to, subject, message string) error {
	switch channel {
	case models.ChannelEmail:
		return d.Email.SendEmail(ctx, to, subject, message)
	case models.ChannelSMS:
		return d.SMS.SendMessage(ctx, to, message)
	case models.ChannelWhatsApp:
		return d.WhatsApp.SendMessage(ctx, to, message)
	default:
		return fmt.Errorf("unknown notification channel %q", channel)
	}
}

// DispatchAll runs the requested channels sequentially, collecting one
// report per channel. Email channels receive the email list; SMS and
// WhatsApp receive the phone list.
func (d *DefaultDispatcher) DispatchAll(ctx context.Context, channels []models.Channel, emails, phones []string, subject, message string) models.DispatchReport {
	var report models.DispatchReport
	for _, ch := range channels {
		recipients := phones
		if ch == models.ChannelEmail {
			recipients = emails
		}
		report.Channels = append(report.Channels, d.Dispatch(ctx, ch, recipients, subject, message, 0))
	}
	return report
}

func defaultBatchSize(channel models.Channel) int {
	if channel == models.ChannelEmail {
		return DefaultEmailBatchSize
	}
	return DefaultMessageBatchSize
}
