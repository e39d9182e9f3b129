package contract

import "context"

// Router classifies an email into a route.
type Router interface {
	Route(ctx context.Context, req RouteRequest) (RouteDecision, error)
}

// Summarizer condenses a medical news article and labels its trend.
type Summarizer interface {
	Summarize(ctx context.Context, req SummarizeRequest) (SummarizeResponse, error)
}

// Drafter writes a reply draft for a general inquiry.
type Drafter interface {
	Draft(ctx context.Context, req DraftRequest) (DraftResponse, error)
}

// Registry hands out the LLM-backed agents.
type Registry interface {
	Triage() Router
	MedicalNews() Summarizer
	Drafting() Drafter
}

// MailboxReader fetches currently-unread messages, marking them read on
// the remote store as a side effect of the fetch.
type MailboxReader interface {
	FetchUnread(ctx context.Context) ([]Message, error)
}

// MailSender delivers one outbound email.
type MailSender interface {
	Send(ctx context.Context, to, subject, body string) error
}

// ToolGateway executes tool requests on behalf of an agent.
type ToolGateway interface {
	Execute(ctx context.Context, agentType AgentType, reqs []ToolRequest) ([]ToolResult, error)
}
