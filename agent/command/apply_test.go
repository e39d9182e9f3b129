package command

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	contractx "github.com/Mustafabeshara/Agent-Yahoo-gmail/agent/contract"
	statex "github.com/Mustafabeshara/Agent-Yahoo-gmail/agent/state"
)

type sentMail struct {
	to      string
	subject string
	body    string
}

type fakeSender struct {
	err  error
	sent []sentMail
}

func (f *fakeSender) Send(_ context.Context, to, subject, body string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sentMail{to: to, subject: subject, body: body})
	return nil
}

var applyNow = time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)

func TestApplyUpsertAndSummary(t *testing.T) {
	t.Parallel()

	applier := NewApplier(&fakeSender{})
	agentCtx := statex.NewAgentContext()

	results, err := applier.Apply(context.Background(), agentCtx, []contractx.Command{
		{Type: contractx.CommandUpsertContact, Name: "Acme Medical", Email: "acme@example.com", Status: "initial_sent"},
		{Type: contractx.CommandAddSummary, Subject: "Trial Results", Summary: "Phase 3 succeeded.", Trend: "Gene therapy"},
	}, applyNow)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].Output != "Successfully added new contact Acme Medical to outreach list." {
		t.Fatalf("unexpected upsert output: %q", results[0].Output)
	}
	if results[1].Output != "Successfully added medical summary to context." {
		t.Fatalf("unexpected summary output: %q", results[1].Output)
	}
	if len(agentCtx.OutreachList) != 1 || len(agentCtx.MedicalSummaries) != 1 {
		t.Fatalf("unexpected context state: %d contacts, %d summaries",
			len(agentCtx.OutreachList), len(agentCtx.MedicalSummaries))
	}
}

func TestApplyFailsFastKeepingPriorMutations(t *testing.T) {
	t.Parallel()

	applier := NewApplier(&fakeSender{})
	agentCtx := statex.NewAgentContext()

	results, err := applier.Apply(context.Background(), agentCtx, []contractx.Command{
		{Type: contractx.CommandUpsertContact, Name: "Acme Medical", Email: "acme@example.com", Status: "initial_sent"},
		{Type: contractx.CommandUpsertContact, Name: "Bad", Email: "bad@example.com", Status: "ghosted"},
		{Type: contractx.CommandUpsertContact, Name: "Never", Email: "never@example.com", Status: "replied"},
	}, applyNow)
	if !errors.Is(err, contractx.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected results up to the failure, got %d", len(results))
	}
	if len(agentCtx.OutreachList) != 1 {
		t.Fatalf("expected the first upsert to stand, got %d contacts", len(agentCtx.OutreachList))
	}
	if agentCtx.OutreachList[0].Email != "acme@example.com" {
		t.Fatalf("unexpected surviving contact: %s", agentCtx.OutreachList[0].Email)
	}
}

func TestApplyUnknownCommand(t *testing.T) {
	t.Parallel()

	applier := NewApplier(&fakeSender{})
	_, err := applier.Apply(context.Background(), statex.NewAgentContext(), []contractx.Command{
		{Type: contractx.CommandType("delete_contact")},
	}, applyNow)
	if !errors.Is(err, contractx.ErrUnknownCommand) {
		t.Fatalf("expected ErrUnknownCommand, got %v", err)
	}
}

func TestApplyAddSummaryMissingFields(t *testing.T) {
	t.Parallel()

	applier := NewApplier(&fakeSender{})
	_, err := applier.Apply(context.Background(), statex.NewAgentContext(), []contractx.Command{
		{Type: contractx.CommandAddSummary, Subject: "No body"},
	}, applyNow)
	if !errors.Is(err, contractx.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestApplySendOutreachEmail(t *testing.T) {
	t.Parallel()

	sender := &fakeSender{}
	applier := NewApplier(sender)
	agentCtx := statex.NewAgentContext()

	results, err := applier.Apply(context.Background(), agentCtx, []contractx.Command{
		{Type: contractx.CommandSendOutreachEmail, Name: "Innovate MedTech", Email: "contact@innovatemed.com"},
	}, applyNow)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if len(sender.sent) != 1 {
		t.Fatalf("expected 1 email sent, got %d", len(sender.sent))
	}
	if sender.sent[0].to != "contact@innovatemed.com" {
		t.Fatalf("unexpected recipient: %s", sender.sent[0].to)
	}
	if !strings.Contains(sender.sent[0].subject, "Innovate MedTech") {
		t.Fatalf("unexpected subject: %s", sender.sent[0].subject)
	}

	contact, ok := agentCtx.FindContact("contact@innovatemed.com")
	if !ok {
		t.Fatal("expected contact recorded after outreach send")
	}
	if contact.Status != statex.StatusInitialSent {
		t.Fatalf("unexpected status: %s", contact.Status)
	}
	if results[0].Output != "Successfully added new contact Innovate MedTech to outreach list." {
		t.Fatalf("unexpected output: %q", results[0].Output)
	}
}

func TestApplySendFollowUpAdvancesStatus(t *testing.T) {
	t.Parallel()

	sender := &fakeSender{}
	applier := NewApplier(sender)
	agentCtx := statex.NewAgentContext()
	if _, err := agentCtx.UpsertContact("Innovate MedTech", "contact@innovatemed.com", statex.StatusInitialSent, applyNow.Add(-72*time.Hour)); err != nil {
		t.Fatalf("UpsertContact() error = %v", err)
	}

	_, err := applier.Apply(context.Background(), agentCtx, []contractx.Command{
		{Type: contractx.CommandSendFollowUp, Name: "Innovate MedTech", Email: "contact@innovatemed.com", Status: "follow_up_1_sent"},
	}, applyNow)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if len(sender.sent) != 1 {
		t.Fatalf("expected 1 follow-up sent, got %d", len(sender.sent))
	}
	if sender.sent[0].subject != "Checking In: Distribution Opportunities in Kuwait" {
		t.Fatalf("unexpected subject: %s", sender.sent[0].subject)
	}

	contact, _ := agentCtx.FindContact("contact@innovatemed.com")
	if contact.Status != statex.StatusFollowUp1 {
		t.Fatalf("unexpected status: %s", contact.Status)
	}
	if !contact.LastContactDate.Equal(applyNow) {
		t.Fatalf("expected last contact advanced to now, got %v", contact.LastContactDate)
	}
}

func TestApplySendFollowUpRejectsNonFollowUpStatus(t *testing.T) {
	t.Parallel()

	applier := NewApplier(&fakeSender{})
	_, err := applier.Apply(context.Background(), statex.NewAgentContext(), []contractx.Command{
		{Type: contractx.CommandSendFollowUp, Name: "Acme Medical", Email: "acme@example.com", Status: "replied"},
	}, applyNow)
	if !errors.Is(err, contractx.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestApplySendFailureLeavesContactUntouched(t *testing.T) {
	t.Parallel()

	sendErr := errors.New("relay down")
	applier := NewApplier(&fakeSender{err: sendErr})
	agentCtx := statex.NewAgentContext()

	_, err := applier.Apply(context.Background(), agentCtx, []contractx.Command{
		{Type: contractx.CommandSendOutreachEmail, Name: "Acme Medical", Email: "acme@example.com"},
	}, applyNow)
	if !errors.Is(err, sendErr) {
		t.Fatalf("expected send error, got %v", err)
	}
	if len(agentCtx.OutreachList) != 0 {
		t.Fatalf("failed send must not record a contact, got %d", len(agentCtx.OutreachList))
	}
}

func TestApplyGenerateReports(t *testing.T) {
	t.Parallel()

	applier := NewApplier(&fakeSender{})
	agentCtx := statex.NewAgentContext()

	results, err := applier.Apply(context.Background(), agentCtx, []contractx.Command{
		{Type: contractx.CommandGenerateWeeklyReport},
		{Type: contractx.CommandGenerateBiweeklyReport},
	}, applyNow)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if !strings.HasPrefix(results[0].Output, "Weekly Supplier Outreach Report") {
		t.Fatalf("unexpected weekly output: %q", results[0].Output)
	}
	if !strings.HasPrefix(results[1].Output, "Bi-Weekly Medical Trends Report") {
		t.Fatalf("unexpected bi-weekly output: %q", results[1].Output)
	}
	if len(agentCtx.WeeklyReport) != 1 || len(agentCtx.BiWeeklyReport) != 1 {
		t.Fatalf("expected one entry in each report history, got %d/%d",
			len(agentCtx.WeeklyReport), len(agentCtx.BiWeeklyReport))
	}
}

func TestApplyNilContext(t *testing.T) {
	t.Parallel()

	applier := NewApplier(&fakeSender{})
	_, err := applier.Apply(context.Background(), nil, []contractx.Command{
		{Type: contractx.CommandGenerateWeeklyReport},
	}, applyNow)
	if !errors.Is(err, contractx.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}
