package planner

import "github.com/alexanderramin/studbud/internal/domain"

// FocusAnalyzer derives the per-subject focus area a daily plan should
// target. It is a separate boundary so a richer analyzer (e.g. concept
// extraction over the weakness text) can replace the current policy
// without touching the day builder.
type FocusAnalyzer interface {
	Analyze(profile domain.StudentProfile) map[string]string
}

// WeaknessFocus maps every subject to its declared weakness text.
type WeaknessFocus struct{}

func (WeaknessFocus) Analyze(profile domain.StudentProfile) map[string]string {
	focus := make(map[string]string, len(profile.Subjects))
	for _, subject := range profile.Subjects {
		focus[subject] = profile.Weaknesses[subject]
	}
	return focus
}
