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

type draftingImpl struct {
	runner compose.Runnable[map[string]any, draftingLLMOutput]
}

type draftingLLMOutput struct {
	Draft string `json:"draft"`
}

func newDrafting(ctx context.Context, chatModel einomodel.BaseChatModel, systemPrompt string) (*draftingImpl, error) {
	runner, err := compileStructuredLLMGraph[draftingLLMOutput](ctx, chatModel, systemPrompt, "drafting.model_graph")
	if err != nil {
		return nil, fmt.Errorf("%w: compile drafting graph: %v", contractx.ErrModelInvoke, err)
	}
	return &draftingImpl{runner: runner}, nil
}

func (d *draftingImpl) Draft(ctx context.Context, req contractx.DraftRequest) (contractx.DraftResponse, error) {
	if strings.TrimSpace(req.Body) == "" {
		return contractx.DraftResponse{}, fmt.Errorf("%w: email body is required", contractx.ErrValidation)
	}

	payload := map[string]any{
		"from":    req.From,
		"subject": req.Subject,
		"body":    req.Body,
	}
	inputBytes, err := json.Marshal(payload)
	if err != nil {
		return contractx.DraftResponse{}, fmt.Errorf("%w: marshal drafting payload: %v", contractx.ErrValidation, err)
	}

	out, err := d.runner.Invoke(ctx, map[string]any{
		"input": string(inputBytes),
	})
	if err != nil {
		return contractx.DraftResponse{}, fmt.Errorf("%w: drafting invoke: %v", contractx.ErrModelInvoke, err)
	}

	draft := strings.TrimSpace(out.Draft)
	if draft == "" {
		return contractx.DraftResponse{}, fmt.Errorf("%w: draft is empty", contractx.ErrSchemaViolation)
	}

	return contractx.DraftResponse{Draft: draft}, nil
}
