package state

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// ContactStatus tracks where a supplier sits in the outreach ladder.
type ContactStatus string

const (
	StatusInitialSent  ContactStatus = "initial_sent"
	StatusFollowUp1    ContactStatus = "follow_up_1_sent"
	StatusFollowUp2    ContactStatus = "follow_up_2_sent"
	StatusReplied      ContactStatus = "replied"
	StatusUnresponsive ContactStatus = "unresponsive"
)

func (s ContactStatus) Valid() bool {
	switch s {
	case StatusInitialSent, StatusFollowUp1, StatusFollowUp2, StatusReplied, StatusUnresponsive:
		return true
	}
	return false
}

// Humanize renders the status for report output: underscores become
// spaces and each word is title-cased ("follow_up_1_sent" -> "Follow Up 1 Sent").
func (s ContactStatus) Humanize() string {
	words := strings.Split(strings.ReplaceAll(string(s), "_", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// OutreachContact is one outreach target. Email is the identity key;
// records are mutated in place and never deleted within a run.
type OutreachContact struct {
	Name            string        `json:"name"`
	Email           string        `json:"email"`
	Status          ContactStatus `json:"status"`
	LastContactDate time.Time     `json:"last_contact_date"`
}

// MedicalNewsSummary is one classified article digest. Immutable once
// appended.
type MedicalNewsSummary struct {
	SourceEmailSubject string    `json:"source_email_subject"`
	Summary            string    `json:"summary"`
	Trend              string    `json:"trend"`
	Date               time.Time `json:"date"`
}

// AgentContext is the shared mutable aggregate for one run. It has a
// single owner for the duration of the run and is never accessed
// concurrently; every field accumulates and nothing is removed.
type AgentContext struct {
	OutreachList     []*OutreachContact   `json:"outreach_list"`
	MedicalSummaries []MedicalNewsSummary `json:"medical_summaries"`
	WeeklyReport     []string             `json:"weekly_report"`
	BiWeeklyReport   []string             `json:"bi_weekly_report"`
}

var ErrInvalidStatus = errors.New("invalid contact status")

func NewAgentContext() *AgentContext {
	return &AgentContext{
		OutreachList:     make([]*OutreachContact, 0, 8),
		MedicalSummaries: make([]MedicalNewsSummary, 0, 8),
	}
}

// FindContact returns the contact with the exact (case-sensitive) email,
// if present.
func (c *AgentContext) FindContact(email string) (*OutreachContact, bool) {
	for _, contact := range c.OutreachList {
		if contact.Email == email {
			return contact, true
		}
	}
	return nil, false
}

// UpsertContact updates the status and last-contact timestamp of the
// contact matching email, or appends a new record when there is no match.
// Returns a human-readable confirmation.
func (c *AgentContext) UpsertContact(name, email string, status ContactStatus, now time.Time) (string, error) {
	if !status.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	if strings.TrimSpace(email) == "" {
		return "", errors.New("contact email is empty")
	}

	if contact, ok := c.FindContact(email); ok {
		contact.Status = status
		contact.LastContactDate = now
		return fmt.Sprintf("Successfully updated contact %s with status %s.", name, status), nil
	}

	c.OutreachList = append(c.OutreachList, &OutreachContact{
		Name:            name,
		Email:           email,
		Status:          status,
		LastContactDate: now,
	})
	return fmt.Sprintf("Successfully added new contact %s to outreach list.", name), nil
}

// AddMedicalSummary appends one classified article digest.
func (c *AgentContext) AddMedicalSummary(subject, summary, trend string, now time.Time) string {
	c.MedicalSummaries = append(c.MedicalSummaries, MedicalNewsSummary{
		SourceEmailSubject: subject,
		Summary:            summary,
		Trend:              trend,
		Date:               now,
	})
	return "Successfully added medical summary to context."
}

// Snapshot serializes the full context for end-of-run inspection.
func (c *AgentContext) Snapshot() (string, error) {
	out, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal agent context: %w", err)
	}
	return string(out), nil
}
