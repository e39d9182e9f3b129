// Package command executes typed commands against the agent context.
// Routing output and cycle phases never mutate the context directly;
// everything funnels through the applier so invalid operations are
// rejected in one place.
package command

import (
	"context"
	"fmt"
	"strings"
	"time"

	contractx "github.com/Mustafabeshara/Agent-Yahoo-gmail/agent/contract"
	reportx "github.com/Mustafabeshara/Agent-Yahoo-gmail/agent/report"
	statex "github.com/Mustafabeshara/Agent-Yahoo-gmail/agent/state"
	toolx "github.com/Mustafabeshara/Agent-Yahoo-gmail/agent/tool"
)

type Applier struct {
	sender contractx.MailSender
}

func NewApplier(sender contractx.MailSender) *Applier {
	return &Applier{sender: sender}
}

// Apply executes commands in order against agentCtx. It fails fast on
// the first invalid command; partial mutations before the failure remain
// applied, matching the sequential, no-rollback model of a run.
func (a *Applier) Apply(
	ctx context.Context,
	agentCtx *statex.AgentContext,
	cmds []contractx.Command,
	now time.Time,
) ([]contractx.CommandResult, error) {
	if agentCtx == nil {
		return nil, fmt.Errorf("%w: agent context is nil", contractx.ErrValidation)
	}

	results := make([]contractx.CommandResult, 0, len(cmds))
	for _, cmd := range cmds {
		out, err := a.applyOne(ctx, agentCtx, cmd, now)
		if err != nil {
			return results, err
		}
		results = append(results, contractx.CommandResult{Type: cmd.Type, Output: out})
	}
	return results, nil
}

func (a *Applier) applyOne(
	ctx context.Context,
	agentCtx *statex.AgentContext,
	cmd contractx.Command,
	now time.Time,
) (string, error) {
	switch cmd.Type {
	case contractx.CommandUpsertContact:
		status := statex.ContactStatus(cmd.Status)
		if !status.Valid() {
			return "", fmt.Errorf("%w: status=%q", contractx.ErrValidation, cmd.Status)
		}
		return agentCtx.UpsertContact(cmd.Name, cmd.Email, status, now)

	case contractx.CommandAddSummary:
		if strings.TrimSpace(cmd.Subject) == "" || strings.TrimSpace(cmd.Summary) == "" || strings.TrimSpace(cmd.Trend) == "" {
			return "", fmt.Errorf("%w: add_summary requires subject, summary, and trend", contractx.ErrValidation)
		}
		return agentCtx.AddMedicalSummary(cmd.Subject, cmd.Summary, cmd.Trend, now), nil

	case contractx.CommandGenerateWeeklyReport:
		return reportx.Weekly(agentCtx, now), nil

	case contractx.CommandGenerateBiweeklyReport:
		return reportx.BiWeekly(agentCtx, now), nil

	case contractx.CommandSendOutreachEmail:
		if err := requireContactFields(cmd); err != nil {
			return "", err
		}
		subject, body := toolx.DraftOutreachEmail(cmd.Name)
		if err := a.send(ctx, cmd.Email, subject, body); err != nil {
			return "", err
		}
		return agentCtx.UpsertContact(cmd.Name, cmd.Email, statex.StatusInitialSent, now)

	case contractx.CommandSendFollowUp:
		if err := requireContactFields(cmd); err != nil {
			return "", err
		}
		status := statex.ContactStatus(cmd.Status)
		if status != statex.StatusFollowUp1 && status != statex.StatusFollowUp2 {
			return "", fmt.Errorf("%w: send_follow_up target status=%q", contractx.ErrValidation, cmd.Status)
		}
		subject, body := toolx.DraftFollowUpEmail(cmd.Name)
		if err := a.send(ctx, cmd.Email, subject, body); err != nil {
			return "", err
		}
		return agentCtx.UpsertContact(cmd.Name, cmd.Email, status, now)

	default:
		return "", fmt.Errorf("%w: %q", contractx.ErrUnknownCommand, cmd.Type)
	}
}

func (a *Applier) send(ctx context.Context, to, subject, body string) error {
	if a.sender == nil {
		return fmt.Errorf("%w: mail sender is not configured", contractx.ErrValidation)
	}
	if err := a.sender.Send(ctx, to, subject, body); err != nil {
		return fmt.Errorf("send email to %s: %w", to, err)
	}
	return nil
}

func requireContactFields(cmd contractx.Command) error {
	if strings.TrimSpace(cmd.Name) == "" || strings.TrimSpace(cmd.Email) == "" {
		return fmt.Errorf("%w: %s requires name and email", contractx.ErrValidation, cmd.Type)
	}
	return nil
}
