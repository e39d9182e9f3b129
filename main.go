package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/Mustafabeshara/Agent-Yahoo-gmail/agent/agents/orchestrator"
	"github.com/Mustafabeshara/Agent-Yahoo-gmail/agent/agents/specialist"
	contractx "github.com/Mustafabeshara/Agent-Yahoo-gmail/agent/contract"
	llmx "github.com/Mustafabeshara/Agent-Yahoo-gmail/agent/llm"
	mailboxx "github.com/Mustafabeshara/Agent-Yahoo-gmail/agent/mailbox"
	statex "github.com/Mustafabeshara/Agent-Yahoo-gmail/agent/state"
	toolx "github.com/Mustafabeshara/Agent-Yahoo-gmail/agent/tool"
	configx "github.com/Mustafabeshara/Agent-Yahoo-gmail/pkg/config"
	_ "github.com/Mustafabeshara/Agent-Yahoo-gmail/pkg/logger/autoload"
	mailrelayx "github.com/Mustafabeshara/Agent-Yahoo-gmail/pkg/mailrelay"
	openrouterx "github.com/Mustafabeshara/Agent-Yahoo-gmail/pkg/openrouter"
)

// defaultTargets are the suppliers contacted when they are not yet in the
// outreach list.
var defaultTargets = []contractx.OutreachTarget{
	{Name: "Innovate MedTech", Email: "contact@innovatemed.com"},
	{Name: "Global Pharma", Email: "inquiries@globalpharma.com"},
}

func main() {
	ctx := context.Background()

	llmCfg := configx.MustNew[llmx.Config]("OPENROUTER")
	mailboxCfg := configx.MustNew[mailboxx.Config]("IMAP")
	relayCfg := configx.MustNew[mailrelayx.Config]("MAILRELAY")

	registry, err := specialist.NewRegistry(ctx, *llmCfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build agent registry")
	}

	var sender contractx.MailSender = mailrelayx.LogSender{}
	if strings.TrimSpace(relayCfg.URL) != "" {
		relayClient, err := mailrelayx.NewClient(*relayCfg)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to build mail relay client")
		}
		sender = relayClient
	}

	medicalCfg := llmCfg.OpenRouterFor(contractx.AgentTypeMedicalNews)
	summarizer := toolx.NewSummarizer(openrouterx.NewClient(medicalCfg), medicalCfg.Model)

	gateway := toolx.NewGateway(toolx.Deps{
		Sender:     sender,
		Summarizer: summarizer,
	})

	reader, err := mailboxx.NewReader(*mailboxCfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build mailbox reader")
	}

	orch, err := orchestrator.New(registry, gateway, reader, sender, orchestrator.Config{
		Targets: defaultTargets,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build orchestrator")
	}

	agentCtx := statex.NewAgentContext()

	out, err := orch.RunCycle(ctx, agentCtx)
	if err != nil {
		log.Fatal().Err(err).Msg("cycle failed")
	}

	log.Info().
		Str("cycle_id", out.CycleID).
		Int("processed", out.Processed).
		Str("mailbox_skip", out.MailboxSkip).
		Int("drafts", len(out.Drafts)).
		Msg("cycle complete")

	for _, report := range out.Reports {
		fmt.Println(report)
		fmt.Println()
	}
	fmt.Println(out.Snapshot)
}
