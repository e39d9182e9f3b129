// Package report builds the textual reports derived from the agent
// context. Output is plain text for human/log consumption, fully
// determined by context state and the supplied clock.
package report

import (
	"fmt"
	"strings"
	"time"

	statex "github.com/Mustafabeshara/Agent-Yahoo-gmail/agent/state"
)

// Weekly renders the supplier outreach report and appends it to the
// context's weekly report history. Always appends exactly one entry.
func Weekly(ctx *statex.AgentContext, now time.Time) string {
	today := now.Format("2006-01-02")

	var report string
	if len(ctx.OutreachList) == 0 {
		report = fmt.Sprintf("Weekly Supplier Outreach Report (%s):\n\nNo supplier outreach activity this week.", today)
	} else {
		header := fmt.Sprintf("Weekly Supplier Outreach Report (%s)", today)
		divider := strings.Repeat("-", len(header))
		lines := []string{header, divider}

		statusOrder := make([]statex.ContactStatus, 0, 4)
		statusCounts := make(map[statex.ContactStatus]int, 4)
		for _, contact := range ctx.OutreachList {
			if _, seen := statusCounts[contact.Status]; !seen {
				statusOrder = append(statusOrder, contact.Status)
			}
			statusCounts[contact.Status]++

			days := daysSince(contact.LastContactDate, now)
			lines = append(lines, fmt.Sprintf("• %s (%s) – %s – %d days since last contact",
				contact.Name, contact.Email, contact.Status.Humanize(), days))
		}

		lines = append(lines, "", "Summary:")
		for _, status := range statusOrder {
			lines = append(lines, fmt.Sprintf("  - %s: %d", status.Humanize(), statusCounts[status]))
		}

		var unresponsive []*statex.OutreachContact
		for _, contact := range ctx.OutreachList {
			if contact.Status == statex.StatusUnresponsive {
				unresponsive = append(unresponsive, contact)
			}
		}
		if len(unresponsive) > 0 {
			lines = append(lines, "", "Unresponsive Suppliers:")
			for _, contact := range unresponsive {
				lines = append(lines, fmt.Sprintf("  • %s (%s)", contact.Name, contact.Email))
			}
		}

		report = strings.Join(lines, "\n")
	}

	ctx.WeeklyReport = append(ctx.WeeklyReport, report)
	return report
}

// daysSince is the whole-day difference between now and t, truncated.
func daysSince(t, now time.Time) int {
	return int(now.Sub(t).Hours() / 24)
}
