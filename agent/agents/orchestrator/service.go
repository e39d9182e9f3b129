package orchestrator

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/cloudwego/eino/compose"
	"github.com/google/uuid"

	commandx "github.com/Mustafabeshara/Agent-Yahoo-gmail/agent/command"
	contractx "github.com/Mustafabeshara/Agent-Yahoo-gmail/agent/contract"
	cyclenode "github.com/Mustafabeshara/Agent-Yahoo-gmail/agent/nodes"
	statex "github.com/Mustafabeshara/Agent-Yahoo-gmail/agent/state"
	logx "github.com/Mustafabeshara/Agent-Yahoo-gmail/pkg/logger"
)

type Config struct {
	// Targets are the suppliers the outreach phase contacts when they
	// are not yet in the outreach list.
	Targets []contractx.OutreachTarget
}

// Orchestrator runs one full triage cycle: mail processing, tender
// check, outreach management, report generation, snapshot.
type Orchestrator struct {
	registry contractx.Registry
	tools    contractx.ToolGateway
	reader   contractx.MailboxReader
	applier  *commandx.Applier

	graphRunner compose.Runnable[cyclenode.CycleInput, cyclenode.CycleOutput]

	targets []contractx.OutreachTarget

	now func() time.Time
}

func New(
	registry contractx.Registry,
	tools contractx.ToolGateway,
	reader contractx.MailboxReader,
	sender contractx.MailSender,
	cfg Config,
) (*Orchestrator, error) {
	if registry == nil {
		return nil, errors.New("agent registry is required")
	}
	if tools == nil {
		return nil, errors.New("tool gateway is required")
	}
	if reader == nil {
		return nil, errors.New("mailbox reader is required")
	}
	if sender == nil {
		return nil, errors.New("mail sender is required")
	}

	o := &Orchestrator{
		registry: registry,
		tools:    tools,
		reader:   reader,
		applier:  commandx.NewApplier(sender),
		targets:  cfg.Targets,
		now:      time.Now,
	}

	graphRunner, err := o.compileCycleGraph(context.Background())
	if err != nil {
		return nil, err
	}
	o.graphRunner = graphRunner

	return o, nil
}

// RunCycle executes the fixed cycle pipeline against agentCtx. The
// context is owned by the caller for the duration of the run and mutated
// in place.
func (o *Orchestrator) RunCycle(ctx context.Context, agentCtx *statex.AgentContext) (cyclenode.CycleOutput, error) {
	if agentCtx == nil {
		return cyclenode.CycleOutput{}, cyclenode.ErrNilContext
	}

	cycleID := newCycleID()
	logger := logx.Component("orchestrator")
	logger.Info().Str("cycle_id", cycleID).Msg("cycle started")

	out, err := o.graphRunner.Invoke(ctx, cyclenode.CycleInput{
		CycleID: cycleID,
		Context: agentCtx,
	})
	if err != nil {
		logger.Error().Str("cycle_id", cycleID).Err(err).Msg("cycle failed")
		return cyclenode.CycleOutput{}, err
	}

	logger.Info().Str("cycle_id", cycleID).Int("processed", out.Processed).Msg("cycle finished")
	return out, nil
}

func newCycleID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
}
