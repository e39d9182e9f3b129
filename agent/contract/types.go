package contract

import "time"

// AgentType identifies one of the specialized agents an email can be
// dispatched to.
type AgentType string

const (
	AgentTypeTriage      AgentType = "triage"
	AgentTypeMedicalNews AgentType = "medical_news"
	AgentTypeTender      AgentType = "tender"
	AgentTypeDrafting    AgentType = "drafting"
	AgentTypeOutreach    AgentType = "outreach"
	AgentTypeReporting   AgentType = "reporting"
)

// Route is the triage router's verdict for a single email.
type Route string

const (
	RouteMedicalNews Route = "medical_news"
	RouteTender      Route = "tender"
	RouteResponse    Route = "response"
	RouteOutreach    Route = "outreach"
)

func (r Route) Valid() bool {
	switch r {
	case RouteMedicalNews, RouteTender, RouteResponse, RouteOutreach:
		return true
	}
	return false
}

// Message is one mailbox message as produced by the mailbox reader.
type Message struct {
	From    string `json:"from"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

type RouteRequest struct {
	Message Message   `json:"message"`
	Now     time.Time `json:"now"`
}

type RouteDecision struct {
	Route  Route  `json:"route"`
	Reason string `json:"reason,omitempty"`
}

type SummarizeRequest struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

type SummarizeResponse struct {
	Summary string `json:"summary"`
	Trend   string `json:"trend"`
}

type DraftRequest struct {
	From    string `json:"from"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

type DraftResponse struct {
	Draft string `json:"draft"`
}

// OutreachTarget is a supplier the outreach phase should contact when it
// is not yet in the outreach list.
type OutreachTarget struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// CommandType enumerates the operations the router and cycle phases may
// request against the shared context. Anything else is rejected by the
// applier.
type CommandType string

const (
	CommandUpsertContact          CommandType = "upsert_contact"
	CommandAddSummary             CommandType = "add_summary"
	CommandGenerateWeeklyReport   CommandType = "generate_weekly_report"
	CommandGenerateBiweeklyReport CommandType = "generate_biweekly_report"
	CommandSendOutreachEmail      CommandType = "send_outreach_email"
	CommandSendFollowUp           CommandType = "send_follow_up"
)

// Command is a single typed operation request. Only the fields relevant
// to the command type are set.
type Command struct {
	Type CommandType `json:"type"`

	// upsert_contact / send_outreach_email / send_follow_up
	Name   string `json:"name,omitempty"`
	Email  string `json:"email,omitempty"`
	Status string `json:"status,omitempty"`

	// add_summary
	Subject string `json:"subject,omitempty"`
	Summary string `json:"summary,omitempty"`
	Trend   string `json:"trend,omitempty"`
}

// CommandResult reports the outcome of one applied command.
type CommandResult struct {
	Type   CommandType `json:"type"`
	Output string      `json:"output,omitempty"`
	Error  string      `json:"error,omitempty"`
}

type ToolRequest struct {
	Tool string         `json:"tool"`
	Args map[string]any `json:"args,omitempty"`
}

type ToolResult struct {
	Tool   string `json:"tool"`
	Result any    `json:"result,omitempty"`
	Error  string `json:"error,omitempty"`
}
