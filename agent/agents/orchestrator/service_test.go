package orchestrator

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	contractx "github.com/Mustafabeshara/Agent-Yahoo-gmail/agent/contract"
	statex "github.com/Mustafabeshara/Agent-Yahoo-gmail/agent/state"
)

var cycleNow = time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)

type fakeReader struct {
	messages []contractx.Message
	err      error
}

func (f *fakeReader) FetchUnread(_ context.Context) ([]contractx.Message, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.messages, nil
}

type fakeRouter struct {
	routes map[string]contractx.Route
}

func (f *fakeRouter) Route(_ context.Context, req contractx.RouteRequest) (contractx.RouteDecision, error) {
	route, ok := f.routes[req.Message.Subject]
	if !ok {
		route = contractx.RouteResponse
	}
	return contractx.RouteDecision{Route: route, Reason: "fake"}, nil
}

type fakeSummarizerAgent struct {
	resp contractx.SummarizeResponse
}

func (f *fakeSummarizerAgent) Summarize(_ context.Context, _ contractx.SummarizeRequest) (contractx.SummarizeResponse, error) {
	return f.resp, nil
}

type fakeDrafter struct {
	draft string
}

func (f *fakeDrafter) Draft(_ context.Context, _ contractx.DraftRequest) (contractx.DraftResponse, error) {
	return contractx.DraftResponse{Draft: f.draft}, nil
}

type fakeRegistry struct {
	triage      contractx.Router
	medicalNews contractx.Summarizer
	drafting    contractx.Drafter
}

func (f *fakeRegistry) Triage() contractx.Router          { return f.triage }
func (f *fakeRegistry) MedicalNews() contractx.Summarizer { return f.medicalNews }
func (f *fakeRegistry) Drafting() contractx.Drafter       { return f.drafting }

type fakeTools struct {
	results []contractx.ToolResult
	calls   int
}

func (f *fakeTools) Execute(_ context.Context, _ contractx.AgentType, reqs []contractx.ToolRequest) ([]contractx.ToolResult, error) {
	f.calls++
	return append([]contractx.ToolResult(nil), f.results...), nil
}

type sentMail struct {
	to      string
	subject string
}

type fakeSender struct {
	err  error
	sent []sentMail
}

func (f *fakeSender) Send(_ context.Context, to, subject, _ string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sentMail{to: to, subject: subject})
	return nil
}

func defaultRegistry() *fakeRegistry {
	return &fakeRegistry{
		triage: &fakeRouter{routes: map[string]contractx.Route{
			"Gene Therapy Breakthrough": contractx.RouteMedicalNews,
			"KOC tenders June":          contractx.RouteTender,
		}},
		medicalNews: &fakeSummarizerAgent{resp: contractx.SummarizeResponse{
			Summary: "Phase 3 succeeded.",
			Trend:   "Gene therapy",
		}},
		drafting: &fakeDrafter{draft: "Thanks for your email."},
	}
}

func newTestOrchestrator(
	t *testing.T,
	registry contractx.Registry,
	tools contractx.ToolGateway,
	reader contractx.MailboxReader,
	sender contractx.MailSender,
	cfg Config,
) *Orchestrator {
	t.Helper()
	o, err := New(registry, tools, reader, sender, cfg)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	o.now = func() time.Time { return cycleNow }
	return o
}

func TestNewValidatesDependencies(t *testing.T) {
	t.Parallel()

	if _, err := New(nil, &fakeTools{}, &fakeReader{}, &fakeSender{}, Config{}); err == nil {
		t.Fatal("expected error for nil registry")
	}
	if _, err := New(defaultRegistry(), nil, &fakeReader{}, &fakeSender{}, Config{}); err == nil {
		t.Fatal("expected error for nil tool gateway")
	}
	if _, err := New(defaultRegistry(), &fakeTools{}, nil, &fakeSender{}, Config{}); err == nil {
		t.Fatal("expected error for nil reader")
	}
	if _, err := New(defaultRegistry(), &fakeTools{}, &fakeReader{}, nil, Config{}); err == nil {
		t.Fatal("expected error for nil sender")
	}
}

func TestRunCycleNilContext(t *testing.T) {
	t.Parallel()

	o := newTestOrchestrator(t, defaultRegistry(), &fakeTools{}, &fakeReader{}, &fakeSender{}, Config{})
	if _, err := o.RunCycle(context.Background(), nil); err == nil {
		t.Fatal("expected error for nil agent context")
	}
}

func TestRunCycleFullPipeline(t *testing.T) {
	t.Parallel()

	reader := &fakeReader{messages: []contractx.Message{
		{From: "news@medjournal.example", Subject: "Gene Therapy Breakthrough", Body: "article text"},
		{From: "customer@example.com", Subject: "Pricing question", Body: "How much?"},
	}}
	tools := &fakeTools{results: []contractx.ToolResult{
		{Tool: "gmail.download_attachments", Result: "Successfully downloaded 3 attachments from KOC tender emails."},
	}}
	sender := &fakeSender{}

	o := newTestOrchestrator(t, defaultRegistry(), tools, reader, sender, Config{
		Targets: []contractx.OutreachTarget{
			{Name: "Innovate MedTech", Email: "contact@innovatemed.com"},
		},
	})

	agentCtx := statex.NewAgentContext()
	out, err := o.RunCycle(context.Background(), agentCtx)
	if err != nil {
		t.Fatalf("RunCycle() error = %v", err)
	}

	if out.CycleID == "" {
		t.Fatal("expected non-empty cycle id")
	}
	if out.Processed != 2 {
		t.Fatalf("expected 2 processed messages, got %d", out.Processed)
	}
	if len(out.Drafts) != 1 || out.Drafts[0] != "Thanks for your email." {
		t.Fatalf("unexpected drafts: %#v", out.Drafts)
	}
	if len(out.Reports) != 2 {
		t.Fatalf("expected 2 reports, got %d", len(out.Reports))
	}
	if !strings.HasPrefix(out.Reports[0], "Weekly Supplier Outreach Report (2026-08-25)") {
		t.Fatalf("unexpected weekly report: %q", out.Reports[0])
	}
	if !strings.Contains(out.Reports[1], "Trend: Gene therapy – 1 article(s)") {
		t.Fatalf("unexpected bi-weekly report: %q", out.Reports[1])
	}

	if len(sender.sent) != 1 || sender.sent[0].to != "contact@innovatemed.com" {
		t.Fatalf("expected one outreach send, got %#v", sender.sent)
	}
	contact, ok := agentCtx.FindContact("contact@innovatemed.com")
	if !ok || contact.Status != statex.StatusInitialSent {
		t.Fatalf("unexpected outreach contact: %#v", contact)
	}
	if len(agentCtx.MedicalSummaries) != 1 {
		t.Fatalf("expected 1 medical summary, got %d", len(agentCtx.MedicalSummaries))
	}
	if !strings.Contains(out.Snapshot, "contact@innovatemed.com") {
		t.Fatalf("snapshot missing contact:\n%s", out.Snapshot)
	}
	// the fixed tender check runs once per cycle
	if tools.calls != 1 {
		t.Fatalf("expected 1 tender check, got %d", tools.calls)
	}
}

func TestRunCycleMailboxFailureStillReports(t *testing.T) {
	t.Parallel()

	reader := &fakeReader{err: errors.New("imap: dial failed")}
	o := newTestOrchestrator(t, defaultRegistry(), &fakeTools{}, reader, &fakeSender{}, Config{})

	out, err := o.RunCycle(context.Background(), statex.NewAgentContext())
	if err != nil {
		t.Fatalf("RunCycle() error = %v", err)
	}
	if out.MailboxSkip == "" {
		t.Fatal("expected mailbox skip reason recorded")
	}
	if out.Processed != 0 {
		t.Fatalf("expected no processed messages, got %d", out.Processed)
	}
	if len(out.Reports) != 2 {
		t.Fatalf("reports must still be generated, got %d", len(out.Reports))
	}
}

func TestRunCycleFollowUpProgression(t *testing.T) {
	t.Parallel()

	sender := &fakeSender{}
	o := newTestOrchestrator(t, defaultRegistry(), &fakeTools{}, &fakeReader{}, sender, Config{})

	agentCtx := statex.NewAgentContext()
	if _, err := agentCtx.UpsertContact("Global Pharma", "inquiries@globalpharma.com", statex.StatusInitialSent, cycleNow.Add(-3*24*time.Hour)); err != nil {
		t.Fatalf("UpsertContact() error = %v", err)
	}

	if _, err := o.RunCycle(context.Background(), agentCtx); err != nil {
		t.Fatalf("RunCycle() error = %v", err)
	}

	contact, _ := agentCtx.FindContact("inquiries@globalpharma.com")
	if contact.Status != statex.StatusFollowUp1 {
		t.Fatalf("expected follow up 1, got %s", contact.Status)
	}
	if len(sender.sent) != 1 || sender.sent[0].subject != "Checking In: Distribution Opportunities in Kuwait" {
		t.Fatalf("unexpected sends: %#v", sender.sent)
	}
}
