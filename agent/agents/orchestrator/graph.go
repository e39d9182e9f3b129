package orchestrator

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino/compose"

	cyclenode "github.com/Mustafabeshara/Agent-Yahoo-gmail/agent/nodes"
)

func (o *Orchestrator) compileCycleGraph(
	ctx context.Context,
) (compose.Runnable[cyclenode.CycleInput, cyclenode.CycleOutput], error) {
	graph := compose.NewGraph[cyclenode.CycleInput, cyclenode.CycleOutput]()

	if err := graph.AddLambdaNode("begin_cycle",
		compose.InvokableLambda(func(ctx context.Context, in cyclenode.CycleInput) (*cyclenode.CycleState, error) {
			return cyclenode.BeginCycle(in, o.now)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node begin_cycle: %w", err)
	}

	if err := graph.AddLambdaNode("fetch_mail",
		compose.InvokableLambda(func(ctx context.Context, in *cyclenode.CycleState) (*cyclenode.CycleState, error) {
			return cyclenode.FetchMail(ctx, in, o.reader)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node fetch_mail: %w", err)
	}

	if err := graph.AddLambdaNode("process_mail",
		compose.InvokableLambda(func(ctx context.Context, in *cyclenode.CycleState) (*cyclenode.CycleState, error) {
			return cyclenode.ProcessMail(ctx, in, o.registry, o.tools, o.applier)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node process_mail: %w", err)
	}

	if err := graph.AddLambdaNode("process_tenders",
		compose.InvokableLambda(func(ctx context.Context, in *cyclenode.CycleState) (*cyclenode.CycleState, error) {
			return cyclenode.ProcessTenders(ctx, in, o.tools)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node process_tenders: %w", err)
	}

	if err := graph.AddLambdaNode("manage_outreach",
		compose.InvokableLambda(func(ctx context.Context, in *cyclenode.CycleState) (*cyclenode.CycleState, error) {
			return cyclenode.ManageOutreach(ctx, in, o.applier, o.targets)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node manage_outreach: %w", err)
	}

	if err := graph.AddLambdaNode("generate_reports",
		compose.InvokableLambda(func(ctx context.Context, in *cyclenode.CycleState) (*cyclenode.CycleState, error) {
			return cyclenode.GenerateReports(ctx, in, o.applier)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node generate_reports: %w", err)
	}

	if err := graph.AddLambdaNode("snapshot_context",
		compose.InvokableLambda(func(ctx context.Context, in *cyclenode.CycleState) (cyclenode.CycleOutput, error) {
			return cyclenode.SnapshotContext(in)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node snapshot_context: %w", err)
	}

	edges := [][2]string{
		{compose.START, "begin_cycle"},
		{"begin_cycle", "fetch_mail"},
		{"fetch_mail", "process_mail"},
		{"process_mail", "process_tenders"},
		{"process_tenders", "manage_outreach"},
		{"manage_outreach", "generate_reports"},
		{"generate_reports", "snapshot_context"},
		{"snapshot_context", compose.END},
	}

	for _, edge := range edges {
		if err := graph.AddEdge(edge[0], edge[1]); err != nil {
			return nil, fmt.Errorf("add edge %s->%s: %w", edge[0], edge[1], err)
		}
	}

	runner, err := graph.Compile(ctx, compose.WithGraphName("orchestrator.run_cycle"))
	if err != nil {
		return nil, fmt.Errorf("compile cycle graph: %w", err)
	}
	return runner, nil
}
