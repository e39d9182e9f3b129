package specialist

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	einomodel "github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/compose"

	contractx "github.com/Mustafabeshara/Agent-Yahoo-gmail/agent/contract"
)

type triageImpl struct {
	runner compose.Runnable[map[string]any, triageLLMOutput]
}

type triageLLMOutput struct {
	Route  string `json:"route"`
	Reason string `json:"reason,omitempty"`
}

func newTriage(ctx context.Context, chatModel einomodel.BaseChatModel, systemPrompt string) (*triageImpl, error) {
	runner, err := compileStructuredLLMGraph[triageLLMOutput](ctx, chatModel, systemPrompt, "triage.model_graph")
	if err != nil {
		return nil, fmt.Errorf("%w: compile triage graph: %v", contractx.ErrModelInvoke, err)
	}
	return &triageImpl{runner: runner}, nil
}

func (t *triageImpl) Route(ctx context.Context, req contractx.RouteRequest) (contractx.RouteDecision, error) {
	if strings.TrimSpace(req.Message.Subject) == "" && strings.TrimSpace(req.Message.Body) == "" {
		return contractx.RouteDecision{}, fmt.Errorf("%w: message is empty", contractx.ErrValidation)
	}

	payload := map[string]any{
		"from":    req.Message.From,
		"subject": req.Message.Subject,
		"body":    req.Message.Body,
	}
	inputBytes, err := json.Marshal(payload)
	if err != nil {
		return contractx.RouteDecision{}, fmt.Errorf("%w: marshal triage payload: %v", contractx.ErrValidation, err)
	}

	out, err := t.runner.Invoke(ctx, map[string]any{
		"input": string(inputBytes),
	})
	if err != nil {
		return contractx.RouteDecision{}, fmt.Errorf("%w: triage invoke: %v", contractx.ErrModelInvoke, err)
	}

	route := contractx.Route(strings.TrimSpace(out.Route))
	if !route.Valid() {
		return contractx.RouteDecision{}, fmt.Errorf("%w: unsupported route=%q", contractx.ErrSchemaViolation, out.Route)
	}

	return contractx.RouteDecision{
		Route:  route,
		Reason: strings.TrimSpace(out.Reason),
	}, nil
}
