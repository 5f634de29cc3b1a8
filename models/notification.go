package models

// Channel identifies one notification transport.
type Channel string

const (
	ChannelEmail    Channel = "email"
	ChannelSMS      Channel = "sms"
	ChannelWhatsApp Channel = "whatsapp"
	// ChannelAll selects every transport in a dispatch request.
	ChannelAll Channel = "all"
)

// ChannelReport records the outcome of dispatching one channel. FailedBatch
// is the 1-based index of the batch whose sends failed; batches before it
// completed and are counted in BatchesSent.
type ChannelReport struct {
	Channel     Channel `json:"channel"`
	Recipients  int     `json:"recipients"`
	BatchesSent int     `json:"batchesSent"`
	FailedBatch int     `json:"failedBatch,omitempty"`
	Error       string  `json:"error,omitempty"`
}

// DispatchReport aggregates per-channel outcomes of one notification job.
// A failure on one channel never rolls back another channel's sends.
type DispatchReport struct {
	Channels []ChannelReport `json:"channels"`
}

// Failed reports whether any channel ended in failure.
func (r DispatchReport) Failed() bool {
	for _, c := range r.Channels {
		if c.Error != "" {
			return true
		}
	}
	return false
}
