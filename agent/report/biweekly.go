package report

import (
	"fmt"
	"strings"
	"time"

	statex "github.com/Mustafabeshara/Agent-Yahoo-gmail/agent/state"
)

// trendWindow is the trailing window a summary must fall inside to be
// counted, boundary inclusive.
const trendWindow = 14 * 24 * time.Hour

// BiWeekly renders the medical trend report over the trailing 14 days and
// appends it to the context's bi-weekly report history. Trend grouping is
// by exact string equality, first-encountered order.
func BiWeekly(ctx *statex.AgentContext, now time.Time) string {
	today := now.Format("2006-01-02")
	cutoff := now.Add(-trendWindow)

	var recent []statex.MedicalNewsSummary
	for _, s := range ctx.MedicalSummaries {
		if !s.Date.Before(cutoff) {
			recent = append(recent, s)
		}
	}

	var report string
	if len(recent) == 0 {
		report = fmt.Sprintf("Bi-Weekly Medical Trends Report (%s):\n\nNo medical news summaries recorded in the last 14 days.", today)
	} else {
		header := fmt.Sprintf("Bi-Weekly Medical Trends Report (%s)", today)
		divider := strings.Repeat("-", len(header))
		lines := []string{header, divider}

		trendOrder := make([]string, 0, 4)
		trendGroups := make(map[string][]statex.MedicalNewsSummary, 4)
		for _, s := range recent {
			if _, seen := trendGroups[s.Trend]; !seen {
				trendOrder = append(trendOrder, s.Trend)
			}
			trendGroups[s.Trend] = append(trendGroups[s.Trend], s)
		}

		for _, trend := range trendOrder {
			items := trendGroups[trend]
			lines = append(lines, fmt.Sprintf("\nTrend: %s – %d article(s)", trend, len(items)))
			for _, item := range items {
				lines = append(lines, fmt.Sprintf("  • %s: %s", item.SourceEmailSubject, item.Summary))
			}
		}

		report = strings.Join(lines, "\n")
	}

	ctx.BiWeeklyReport = append(ctx.BiWeeklyReport, report)
	return report
}
