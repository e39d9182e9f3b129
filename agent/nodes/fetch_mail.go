package cyclenode

import (
	"context"

	"github.com/rs/zerolog/log"

	contractx "github.com/Mustafabeshara/Agent-Yahoo-gmail/agent/contract"
)

// FetchMail pulls unread messages. A fetch failure is not fatal: the mail
// phase is skipped for this cycle and the rest of the pipeline runs.
func FetchMail(ctx context.Context, in *CycleState, reader contractx.MailboxReader) (*CycleState, error) {
	if in == nil {
		return nil, ErrNilState
	}

	messages, err := reader.FetchUnread(ctx)
	if err != nil {
		log.Warn().Str("cycle_id", in.CycleID).Err(err).Msg("mailbox fetch failed, skipping mail phase")
		in.MailboxSkip = err.Error()
		return in, nil
	}

	in.Messages = messages
	log.Info().Str("cycle_id", in.CycleID).Int("count", len(messages)).Msg("fetched unread messages")
	return in, nil
}
