package tool

import (
	"context"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/schema"

	contractx "github.com/Mustafabeshara/Agent-Yahoo-gmail/agent/contract"
)

const (
	ToolDownloadAttachments = "gmail.download_attachments"
	ToolEmailSend           = "email.send"
	ToolSummarize           = "news.summarize"
)

type Executor func(ctx context.Context, tool string, args map[string]any) (contractx.ToolResult, error)

// Deps carries the collaborators tools execute against.
type Deps struct {
	Sender     contractx.MailSender
	Summarizer *Summarizer
}

func BuildForAgent(agentType contractx.AgentType, deps Deps) ([]*schema.ToolInfo, Executor) {
	return infosForAgent(agentType), NewExecutor(agentType, deps)
}

func NewExecutor(agentType contractx.AgentType, deps Deps) Executor {
	fallback := DefaultExecutor(agentType)
	return func(ctx context.Context, tool string, args map[string]any) (contractx.ToolResult, error) {
		switch tool {
		case ToolDownloadAttachments:
			return executeDownloadAttachments(tool, args)
		case ToolEmailSend:
			return executeEmailSend(ctx, tool, args, deps.Sender)
		case ToolSummarize:
			return executeSummarize(ctx, tool, args, deps.Summarizer)
		default:
			return fallback(ctx, tool, args)
		}
	}
}

func DefaultExecutor(agentType contractx.AgentType) Executor {
	return func(_ context.Context, tool string, _ map[string]any) (contractx.ToolResult, error) {
		return contractx.ToolResult{
			Tool:  tool,
			Error: fmt.Sprintf("tool=%s is unavailable for agent=%s", tool, agentType),
		}, nil
	}
}

// executeDownloadAttachments is the tender-attachment stub: the Gmail
// API integration is pending, so it reports a canned success.
// TODO: replace with the real Gmail attachment fetch once credentials
// for the tender inbox are provisioned.
func executeDownloadAttachments(tool string, args map[string]any) (contractx.ToolResult, error) {
	keyword, err := stringArg(args, "subject_keyword")
	if err != nil {
		return contractx.ToolResult{Tool: tool, Error: err.Error()}, nil
	}
	if !strings.EqualFold(keyword, "KOC tenders") {
		return contractx.ToolResult{
			Tool:  tool,
			Error: fmt.Sprintf("unsupported subject keyword %q", keyword),
		}, nil
	}
	return contractx.ToolResult{
		Tool:   tool,
		Result: "Successfully downloaded 3 attachments from KOC tender emails.",
	}, nil
}

func executeEmailSend(ctx context.Context, tool string, args map[string]any, sender contractx.MailSender) (contractx.ToolResult, error) {
	if sender == nil {
		return contractx.ToolResult{Tool: tool, Error: "mail sender is not configured"}, nil
	}

	to, err := stringArg(args, "to")
	if err != nil {
		return contractx.ToolResult{Tool: tool, Error: err.Error()}, nil
	}
	subject, err := stringArg(args, "subject")
	if err != nil {
		return contractx.ToolResult{Tool: tool, Error: err.Error()}, nil
	}
	body, err := stringArg(args, "body")
	if err != nil {
		return contractx.ToolResult{Tool: tool, Error: err.Error()}, nil
	}

	if err := sender.Send(ctx, to, subject, body); err != nil {
		return contractx.ToolResult{Tool: tool, Error: err.Error()}, nil
	}
	return contractx.ToolResult{Tool: tool, Result: "Email sent successfully."}, nil
}

func executeSummarize(ctx context.Context, tool string, args map[string]any, summarizer *Summarizer) (contractx.ToolResult, error) {
	text, err := stringArg(args, "text")
	if err != nil {
		return contractx.ToolResult{Tool: tool, Error: err.Error()}, nil
	}

	digest, err := summarizer.Summarize(ctx, text)
	if err != nil {
		return contractx.ToolResult{Tool: tool, Error: err.Error()}, nil
	}
	return contractx.ToolResult{Tool: tool, Result: digest}, nil
}

func stringArg(args map[string]any, key string) (string, error) {
	raw, ok := args[key]
	if !ok {
		return "", fmt.Errorf("%s is required", key)
	}
	val, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("%s must be a string", key)
	}
	val = strings.TrimSpace(val)
	if val == "" {
		return "", fmt.Errorf("%s is empty", key)
	}
	return val, nil
}

func infosForAgent(agentType contractx.AgentType) []*schema.ToolInfo {
	switch agentType {
	case contractx.AgentTypeTender:
		return []*schema.ToolInfo{
			{
				Name: ToolDownloadAttachments,
				Desc: "Find tender emails matching a subject keyword and download their attachments.",
				ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
					"subject_keyword": {Type: schema.String, Desc: "Subject keyword to match", Required: true},
				}),
			},
		}
	case contractx.AgentTypeOutreach:
		return []*schema.ToolInfo{
			{
				Name: ToolEmailSend,
				Desc: "Send an email.",
				ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
					"to":      {Type: schema.String, Desc: "Recipient address", Required: true},
					"subject": {Type: schema.String, Desc: "Email subject", Required: true},
					"body":    {Type: schema.String, Desc: "Email body", Required: true},
				}),
			},
		}
	case contractx.AgentTypeMedicalNews:
		return []*schema.ToolInfo{
			{
				Name: ToolSummarize,
				Desc: "Summarize an article and identify its key trend.",
				ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
					"text": {Type: schema.String, Desc: "Article text", Required: true},
				}),
			},
		}
	default:
		return nil
	}
}

// Gateway adapts per-agent executors to the contract.ToolGateway
// interface, enforcing the per-agent allow-list.
type Gateway struct {
	deps Deps
}

func NewGateway(deps Deps) *Gateway {
	return &Gateway{deps: deps}
}

func (g *Gateway) Execute(ctx context.Context, agentType contractx.AgentType, reqs []contractx.ToolRequest) ([]contractx.ToolResult, error) {
	infos, executor := BuildForAgent(agentType, g.deps)

	allowed := make(map[string]struct{}, len(infos))
	for _, info := range infos {
		if info != nil && strings.TrimSpace(info.Name) != "" {
			allowed[info.Name] = struct{}{}
		}
	}

	results := make([]contractx.ToolResult, 0, len(reqs))
	for _, req := range reqs {
		if _, ok := allowed[req.Tool]; !ok {
			return nil, fmt.Errorf("%w: tool=%s is not allowed for agent=%s", contractx.ErrValidation, req.Tool, agentType)
		}
		out, err := executor(ctx, req.Tool, req.Args)
		if err != nil {
			return nil, err
		}
		results = append(results, out)
	}
	return results, nil
}
