package cyclenode

import (
	"context"

	commandx "github.com/Mustafabeshara/Agent-Yahoo-gmail/agent/command"
	contractx "github.com/Mustafabeshara/Agent-Yahoo-gmail/agent/contract"
)

// GenerateReports produces both reports every cycle. Cadence gating, if
// any, belongs to whatever schedules the process.
func GenerateReports(ctx context.Context, in *CycleState, applier *commandx.Applier) (*CycleState, error) {
	if in == nil || in.Context == nil {
		return nil, ErrNilState
	}

	results, err := applier.Apply(ctx, in.Context, []contractx.Command{
		{Type: contractx.CommandGenerateWeeklyReport},
		{Type: contractx.CommandGenerateBiweeklyReport},
	}, in.Now)
	if err != nil {
		return nil, err
	}

	for _, res := range results {
		in.Reports = append(in.Reports, res.Output)
	}
	return in, nil
}
