package formatter

import (
	"fmt"
	"math"
	"strings"

	"github.com/alexanderramin/studbud/internal/domain"
)

// FormatHours converts fractional hours into a compact human label,
// e.g. 2 -> "2h", 1.5 -> "1h 30m", 0.5 -> "30m".
func FormatHours(hours float64) string {
	totalMin := int(math.Round(hours * 60))
	if totalMin <= 0 {
		return "0m"
	}
	h := totalMin / 60
	m := totalMin % 60
	if h > 0 && m > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	if h > 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dm", m)
}

// FormatDailyPlan renders one day of the study plan.
func FormatDailyPlan(daily domain.DailyPlan) string {
	var b strings.Builder

	b.WriteString(Header(daily.DateKey()))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %s    %s %s\n",
		Dim("Environment:"), StyleFg.Render(daily.Environment),
		Dim("Preferred time:"), StyleFg.Render(daily.PreferredTime)))

	for _, block := range daily.Blocks {
		b.WriteString(fmt.Sprintf("  %s  %s %s\n",
			PriorityBadge(block.Priority),
			Bold(block.Subject),
			Dim("("+FormatHours(block.AllocatedHours)+")")))
		b.WriteString(fmt.Sprintf("      %s\n", StyleFg.Render(block.Task)))
	}

	return b.String()
}

// FormatStudyPlan renders the full plan in date order.
func FormatStudyPlan(plan domain.StudyPlan) string {
	dates := plan.Dates()
	sections := make([]string, 0, len(dates))
	for _, date := range dates {
		sections = append(sections, FormatDailyPlan(plan[date]))
	}
	return strings.Join(sections, "\n")
}

// FormatProfile renders a student profile summary.
func FormatProfile(p *domain.StudentProfile) string {
	var b strings.Builder

	b.WriteString(Header("Profile: " + p.StudentName))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Goals:"), StyleFg.Render(p.Goals)))
	b.WriteString(fmt.Sprintf("%s %s daily, %s, %s\n",
		Dim("Preferences:"),
		StyleFg.Render(FormatHours(p.Preferences.DailyDurationHours)),
		StyleFg.Render(p.Preferences.PreferredTime),
		StyleFg.Render(p.Preferences.Environment)))
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Methods:"), StyleFg.Render(strings.Join(p.Preferences.Methods, ", "))))
	b.WriteString("\n")

	for _, subject := range p.Subjects {
		b.WriteString(fmt.Sprintf("  %s\n", Bold(subject)))
		b.WriteString(fmt.Sprintf("      %s %s\n", StyleGreen.Render("strength:"), p.Strengths[subject]))
		b.WriteString(fmt.Sprintf("      %s %s\n", StyleRed.Render("weakness:"), p.Weaknesses[subject]))
	}

	return b.String()
}
