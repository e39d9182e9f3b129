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

type medicalImpl struct {
	runner compose.Runnable[map[string]any, medicalLLMOutput]
}

type medicalLLMOutput struct {
	Summary string `json:"summary"`
	Trend   string `json:"trend"`
}

func newMedicalNews(ctx context.Context, chatModel einomodel.BaseChatModel, systemPrompt string) (*medicalImpl, error) {
	runner, err := compileStructuredLLMGraph[medicalLLMOutput](ctx, chatModel, systemPrompt, "medical_news.model_graph")
	if err != nil {
		return nil, fmt.Errorf("%w: compile medical news graph: %v", contractx.ErrModelInvoke, err)
	}
	return &medicalImpl{runner: runner}, nil
}

func (m *medicalImpl) Summarize(ctx context.Context, req contractx.SummarizeRequest) (contractx.SummarizeResponse, error) {
	if strings.TrimSpace(req.Body) == "" {
		return contractx.SummarizeResponse{}, fmt.Errorf("%w: article body is required", contractx.ErrValidation)
	}

	payload := map[string]any{
		"subject": req.Subject,
		"body":    req.Body,
	}
	inputBytes, err := json.Marshal(payload)
	if err != nil {
		return contractx.SummarizeResponse{}, fmt.Errorf("%w: marshal summarize payload: %v", contractx.ErrValidation, err)
	}

	out, err := m.runner.Invoke(ctx, map[string]any{
		"input": string(inputBytes),
	})
	if err != nil {
		return contractx.SummarizeResponse{}, fmt.Errorf("%w: medical news invoke: %v", contractx.ErrModelInvoke, err)
	}

	summary := strings.TrimSpace(out.Summary)
	trend := strings.TrimSpace(out.Trend)
	if summary == "" {
		return contractx.SummarizeResponse{}, fmt.Errorf("%w: summary is empty", contractx.ErrSchemaViolation)
	}
	if trend == "" {
		return contractx.SummarizeResponse{}, fmt.Errorf("%w: trend is empty", contractx.ErrSchemaViolation)
	}

	return contractx.SummarizeResponse{
		Summary: summary,
		Trend:   trend,
	}, nil
}
