package cyclenode

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	commandx "github.com/Mustafabeshara/Agent-Yahoo-gmail/agent/command"
	contractx "github.com/Mustafabeshara/Agent-Yahoo-gmail/agent/contract"
	toolx "github.com/Mustafabeshara/Agent-Yahoo-gmail/agent/tool"
)

// ProcessMail routes each fetched message and dispatches it to the
// matching handler. A failure on one message skips that message only;
// there are no retries.
func ProcessMail(
	ctx context.Context,
	in *CycleState,
	registry contractx.Registry,
	tools contractx.ToolGateway,
	applier *commandx.Applier,
) (*CycleState, error) {
	if in == nil || in.Context == nil {
		return nil, ErrNilState
	}

	for _, msg := range in.Messages {
		if err := processOne(ctx, in, msg, registry, tools, applier); err != nil {
			log.Warn().
				Str("cycle_id", in.CycleID).
				Str("from", msg.From).
				Str("subject", msg.Subject).
				Err(err).
				Msg("message processing failed, skipping")
			continue
		}
		in.Processed++
	}
	return in, nil
}

func processOne(
	ctx context.Context,
	in *CycleState,
	msg contractx.Message,
	registry contractx.Registry,
	tools contractx.ToolGateway,
	applier *commandx.Applier,
) error {
	decision, err := registry.Triage().Route(ctx, contractx.RouteRequest{
		Message: msg,
		Now:     in.Now,
	})
	if err != nil {
		return fmt.Errorf("triage: %w", err)
	}

	log.Info().
		Str("cycle_id", in.CycleID).
		Str("from", msg.From).
		Str("route", string(decision.Route)).
		Str("reason", decision.Reason).
		Msg("routed message")

	switch decision.Route {
	case contractx.RouteMedicalNews:
		return handleMedicalNews(ctx, in, msg, registry, applier)
	case contractx.RouteTender:
		return handleTender(ctx, in, msg, tools)
	case contractx.RouteOutreach:
		return handleOutreachReply(ctx, in, msg, registry, applier)
	case contractx.RouteResponse:
		return handleResponse(ctx, in, msg, registry)
	default:
		return fmt.Errorf("%w: route=%q", contractx.ErrValidation, decision.Route)
	}
}

func handleMedicalNews(
	ctx context.Context,
	in *CycleState,
	msg contractx.Message,
	registry contractx.Registry,
	applier *commandx.Applier,
) error {
	resp, err := registry.MedicalNews().Summarize(ctx, contractx.SummarizeRequest{
		Subject: msg.Subject,
		Body:    msg.Body,
	})
	if err != nil {
		return fmt.Errorf("summarize: %w", err)
	}

	_, err = applier.Apply(ctx, in.Context, []contractx.Command{{
		Type:    contractx.CommandAddSummary,
		Subject: msg.Subject,
		Summary: resp.Summary,
		Trend:   resp.Trend,
	}}, in.Now)
	return err
}

func handleTender(ctx context.Context, in *CycleState, msg contractx.Message, tools contractx.ToolGateway) error {
	results, err := tools.Execute(ctx, contractx.AgentTypeTender, []contractx.ToolRequest{{
		Tool: toolx.ToolDownloadAttachments,
		Args: map[string]any{"subject_keyword": "KOC tenders"},
	}})
	if err != nil {
		return fmt.Errorf("tender tool: %w", err)
	}
	for _, res := range results {
		if res.Error != "" {
			return fmt.Errorf("tender tool %s: %s", res.Tool, res.Error)
		}
		if out, ok := res.Result.(string); ok {
			in.TenderResult = out
		}
	}
	return nil
}

// handleOutreachReply marks a known contact as replied. An outreach-routed
// message from an unknown sender falls back to response drafting.
func handleOutreachReply(
	ctx context.Context,
	in *CycleState,
	msg contractx.Message,
	registry contractx.Registry,
	applier *commandx.Applier,
) error {
	contact, ok := in.Context.FindContact(msg.From)
	if !ok {
		return handleResponse(ctx, in, msg, registry)
	}

	_, err := applier.Apply(ctx, in.Context, []contractx.Command{{
		Type:   contractx.CommandUpsertContact,
		Name:   contact.Name,
		Email:  contact.Email,
		Status: "replied",
	}}, in.Now)
	return err
}

func handleResponse(ctx context.Context, in *CycleState, msg contractx.Message, registry contractx.Registry) error {
	resp, err := registry.Drafting().Draft(ctx, contractx.DraftRequest{
		From:    msg.From,
		Subject: msg.Subject,
		Body:    msg.Body,
	})
	if err != nil {
		return fmt.Errorf("draft: %w", err)
	}
	in.Drafts = append(in.Drafts, resp.Draft)
	return nil
}
