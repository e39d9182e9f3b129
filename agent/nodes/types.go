// Package cyclenode holds the node functions of the triage-cycle graph.
// Each node takes the cycle state, does one phase of work, and passes the
// state on; the orchestrator wires them into a linear pipeline.
package cyclenode

import (
	"errors"
	"time"

	contractx "github.com/Mustafabeshara/Agent-Yahoo-gmail/agent/contract"
	statex "github.com/Mustafabeshara/Agent-Yahoo-gmail/agent/state"
)

var (
	ErrNilContext = errors.New("agent context is nil")
	ErrNilState   = errors.New("cycle state is nil")
)

type CycleInput struct {
	CycleID string
	Context *statex.AgentContext
}

type CycleOutput struct {
	CycleID     string
	Snapshot    string
	Reports     []string
	Drafts      []string
	Processed   int
	MailboxSkip string
}

// CycleState flows through the graph; nodes mutate it in place.
type CycleState struct {
	CycleID string
	Now     time.Time
	Context *statex.AgentContext

	Messages    []contractx.Message
	MailboxSkip string

	Processed    int
	Drafts       []string
	TenderResult string
	Reports      []string
}

func BeginCycle(in CycleInput, nowFn func() time.Time) (*CycleState, error) {
	if in.Context == nil {
		return nil, ErrNilContext
	}
	return &CycleState{
		CycleID: in.CycleID,
		Now:     nowFn().UTC(),
		Context: in.Context,
	}, nil
}
