package cyclenode

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	commandx "github.com/Mustafabeshara/Agent-Yahoo-gmail/agent/command"
	contractx "github.com/Mustafabeshara/Agent-Yahoo-gmail/agent/contract"
	statex "github.com/Mustafabeshara/Agent-Yahoo-gmail/agent/state"
)

// Follow-up cadence: first nudge after 2 days, second after 7 more, then
// the contact is written off as unresponsive after another 7.
const (
	followUp1After    = 2 * 24 * time.Hour
	followUp2After    = 7 * 24 * time.Hour
	unresponsiveAfter = 7 * 24 * time.Hour
)

// ManageOutreach contacts configured targets that are not yet in the
// outreach list, then walks the existing list and advances the follow-up
// ladder for anyone whose last contact is stale enough.
func ManageOutreach(
	ctx context.Context,
	in *CycleState,
	applier *commandx.Applier,
	targets []contractx.OutreachTarget,
) (*CycleState, error) {
	if in == nil || in.Context == nil {
		return nil, ErrNilState
	}

	var initial []contractx.Command
	for _, target := range targets {
		if _, ok := in.Context.FindContact(target.Email); ok {
			continue
		}
		log.Info().Str("cycle_id", in.CycleID).Str("supplier", target.Name).Msg("new supplier, initiating outreach")
		initial = append(initial, contractx.Command{
			Type:  contractx.CommandSendOutreachEmail,
			Name:  target.Name,
			Email: target.Email,
		})
	}
	if _, err := applier.Apply(ctx, in.Context, initial, in.Now); err != nil {
		return nil, err
	}

	var followUps []contractx.Command
	for _, contact := range in.Context.OutreachList {
		elapsed := in.Now.Sub(contact.LastContactDate)
		switch contact.Status {
		case statex.StatusInitialSent:
			if elapsed >= followUp1After {
				followUps = append(followUps, followUpCommand(contact, statex.StatusFollowUp1))
			}
		case statex.StatusFollowUp1:
			if elapsed >= followUp2After {
				followUps = append(followUps, followUpCommand(contact, statex.StatusFollowUp2))
			}
		case statex.StatusFollowUp2:
			if elapsed >= unresponsiveAfter {
				followUps = append(followUps, contractx.Command{
					Type:   contractx.CommandUpsertContact,
					Name:   contact.Name,
					Email:  contact.Email,
					Status: string(statex.StatusUnresponsive),
				})
			}
		}
	}
	if _, err := applier.Apply(ctx, in.Context, followUps, in.Now); err != nil {
		return nil, err
	}

	return in, nil
}

func followUpCommand(contact *statex.OutreachContact, next statex.ContactStatus) contractx.Command {
	return contractx.Command{
		Type:   contractx.CommandSendFollowUp,
		Name:   contact.Name,
		Email:  contact.Email,
		Status: string(next),
	}
}
