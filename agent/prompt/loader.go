package prompt

import (
	_ "embed"
	"strings"
)

var (
	//go:embed template/triage.txt
	triageRaw string

	//go:embed template/medical_news.txt
	medicalNewsRaw string

	//go:embed template/drafting.txt
	draftingRaw string
)

// PromptSet holds loaded prompt content.
type PromptSet struct {
	Triage      string
	MedicalNews string
	Drafting    string
}

// LoadPromptSet returns a PromptSet with trimmed prompt strings.
// Safe to call concurrently; the embed is compile-time.
func LoadPromptSet() PromptSet {
	return PromptSet{
		Triage:      strings.TrimSpace(triageRaw),
		MedicalNews: strings.TrimSpace(medicalNewsRaw),
		Drafting:    strings.TrimSpace(draftingRaw),
	}
}
