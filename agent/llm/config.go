package llm

import (
	"fmt"
	"strings"
	"time"

	contractx "github.com/Mustafabeshara/Agent-Yahoo-gmail/agent/contract"
	openrouterx "github.com/Mustafabeshara/Agent-Yahoo-gmail/pkg/openrouter"
)

type Config struct {
	BaseURL            string        `envconfig:"BASE_URL" split_words:"true" default:"https://openrouter.ai/api/v1"`
	APIKey             string        `envconfig:"API_KEY" split_words:"true" required:"true"`
	Model              string        `envconfig:"MODEL" split_words:"true" required:"true"`
	MaxCompletionToken int           `envconfig:"MAX_COMPLETION_TOKEN" split_words:"true" default:"2000"`
	Temperature        float32       `envconfig:"TEMPERATURE" split_words:"true" default:"0.5"`
	Timeout            time.Duration `envconfig:"TIMEOUT" split_words:"true" default:"30s"`
	SiteURL            string        `envconfig:"SITE_URL" split_words:"true"`
	SiteName           string        `envconfig:"SITE_NAME" split_words:"true"`

	TriageModel        string  `envconfig:"TRIAGE_MODEL" split_words:"true"`
	MedicalModel       string  `envconfig:"MEDICAL_MODEL" split_words:"true"`
	DraftingModel      string  `envconfig:"DRAFTING_MODEL" split_words:"true"`
	TriageTemperature  float32 `envconfig:"TRIAGE_TEMPERATURE" split_words:"true" default:"-1"`
	MedicalTemperature float32 `envconfig:"MEDICAL_TEMPERATURE" split_words:"true" default:"-1"`
	DraftTemperature   float32 `envconfig:"DRAFT_TEMPERATURE" split_words:"true" default:"-1"`
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.APIKey) == "" {
		return fmt.Errorf("%w: openrouter api key is required", contractx.ErrValidation)
	}
	if strings.TrimSpace(c.Model) == "" {
		return fmt.Errorf("%w: default model is required", contractx.ErrValidation)
	}
	return nil
}

// OpenRouterFor resolves the effective model configuration for one agent
// type, falling back to the defaults where no override is set.
func (c Config) OpenRouterFor(agentType contractx.AgentType) openrouterx.Config {
	modelName := strings.TrimSpace(c.Model)
	temp := c.Temperature

	switch agentType {
	case contractx.AgentTypeTriage:
		if v := strings.TrimSpace(c.TriageModel); v != "" {
			modelName = v
		}
		if c.TriageTemperature >= 0 {
			temp = c.TriageTemperature
		}
	case contractx.AgentTypeMedicalNews:
		if v := strings.TrimSpace(c.MedicalModel); v != "" {
			modelName = v
		}
		if c.MedicalTemperature >= 0 {
			temp = c.MedicalTemperature
		}
	case contractx.AgentTypeDrafting:
		if v := strings.TrimSpace(c.DraftingModel); v != "" {
			modelName = v
		}
		if c.DraftTemperature >= 0 {
			temp = c.DraftTemperature
		}
	}

	maxCompletionToken := c.MaxCompletionToken
	return openrouterx.Config{
		BaseURL:            strings.TrimSpace(c.BaseURL),
		APIKey:             strings.TrimSpace(c.APIKey),
		Model:              modelName,
		MaxCompletionToken: &maxCompletionToken,
		Temperature:        temp,
		Timeout:            c.Timeout,
		SiteURL:            strings.TrimSpace(c.SiteURL),
		SiteName:           strings.TrimSpace(c.SiteName),
	}
}
