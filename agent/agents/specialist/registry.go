package specialist

import (
	"context"
	"fmt"

	contractx "github.com/Mustafabeshara/Agent-Yahoo-gmail/agent/contract"
	llmx "github.com/Mustafabeshara/Agent-Yahoo-gmail/agent/llm"
	promptx "github.com/Mustafabeshara/Agent-Yahoo-gmail/agent/prompt"
)

type registryImpl struct {
	triage      contractx.Router
	medicalNews contractx.Summarizer
	drafting    contractx.Drafter
}

func (r *registryImpl) Triage() contractx.Router {
	return r.triage
}

func (r *registryImpl) MedicalNews() contractx.Summarizer {
	return r.medicalNews
}

func (r *registryImpl) Drafting() contractx.Drafter {
	return r.drafting
}

// NewRegistry builds one chat model per agent type and compiles the
// structured graphs behind the Router/Summarizer/Drafter interfaces.
func NewRegistry(ctx context.Context, cfg llmx.Config) (contractx.Registry, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	prompts := promptx.LoadPromptSet()
	if prompts.Triage == "" || prompts.MedicalNews == "" || prompts.Drafting == "" {
		return nil, contractx.ErrPromptMissing
	}

	triageModelCfg := cfg.OpenRouterFor(contractx.AgentTypeTriage)
	triageModel, err := triageModelCfg.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: create triage model: %v", contractx.ErrModelInvoke, err)
	}
	medicalModelCfg := cfg.OpenRouterFor(contractx.AgentTypeMedicalNews)
	medicalModel, err := medicalModelCfg.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: create medical news model: %v", contractx.ErrModelInvoke, err)
	}
	draftingModelCfg := cfg.OpenRouterFor(contractx.AgentTypeDrafting)
	draftingModel, err := draftingModelCfg.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: create drafting model: %v", contractx.ErrModelInvoke, err)
	}

	triage, err := newTriage(ctx, triageModel, prompts.Triage)
	if err != nil {
		return nil, err
	}
	medicalNews, err := newMedicalNews(ctx, medicalModel, prompts.MedicalNews)
	if err != nil {
		return nil, err
	}
	drafting, err := newDrafting(ctx, draftingModel, prompts.Drafting)
	if err != nil {
		return nil, err
	}

	return &registryImpl{
		triage:      triage,
		medicalNews: medicalNews,
		drafting:    drafting,
	}, nil
}
