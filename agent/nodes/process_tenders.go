package cyclenode

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	contractx "github.com/Mustafabeshara/Agent-Yahoo-gmail/agent/contract"
	toolx "github.com/Mustafabeshara/Agent-Yahoo-gmail/agent/tool"
)

// ProcessTenders runs the fixed KOC tender attachment check once per
// cycle, independent of whether any fetched email mentioned tenders.
func ProcessTenders(ctx context.Context, in *CycleState, tools contractx.ToolGateway) (*CycleState, error) {
	if in == nil {
		return nil, ErrNilState
	}

	results, err := tools.Execute(ctx, contractx.AgentTypeTender, []contractx.ToolRequest{{
		Tool: toolx.ToolDownloadAttachments,
		Args: map[string]any{"subject_keyword": "KOC tenders"},
	}})
	if err != nil {
		return nil, fmt.Errorf("tender check: %w", err)
	}

	for _, res := range results {
		if res.Error != "" {
			log.Warn().Str("cycle_id", in.CycleID).Str("tool", res.Tool).Str("error", res.Error).Msg("tender check reported an error")
			continue
		}
		if out, ok := res.Result.(string); ok {
			in.TenderResult = out
			log.Info().Str("cycle_id", in.CycleID).Str("result", out).Msg("tender check complete")
		}
	}
	return in, nil
}
