package planner

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/alexanderramin/studbud/internal/classifier"
	"github.com/alexanderramin/studbud/internal/domain"
)

const (
	// negativeLabel is the one classifier label the priority rules
	// special-case; all other labels fall through.
	negativeLabel = "NEGATIVE"

	// negativeThreshold is the confidence a NEGATIVE result must exceed
	// (strictly) to force High priority.
	negativeThreshold = 0.7
)

// Prioritizer assigns a priority level to a study task by consulting
// the sentiment classifier. Classification failures degrade the single
// affected block to Medium; they never abort plan generation.
type Prioritizer struct {
	classifier classifier.Classifier
	logger     *slog.Logger
}

// NewPrioritizer creates a Prioritizer. A nil classifier is treated as
// a permanently failing one: every task gets the Medium fallback. A nil
// logger discards failure reports.
func NewPrioritizer(c classifier.Classifier, logger *slog.Logger) *Prioritizer {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Prioritizer{classifier: c, logger: logger}
}

// Prioritize applies the priority rules in fixed order: strong negative
// sentiment wins, then a weakness-substring match, then Low. The first
// matching rule decides; results are never combined.
func (p *Prioritizer) Prioritize(ctx context.Context, subject, weakness, task string) domain.Priority {
	if p.classifier == nil {
		p.logger.Warn("sentiment analysis skipped, defaulting to medium priority",
			"subject", subject, "reason", "no classifier configured")
		return domain.PriorityMedium
	}

	result, err := p.classifier.Classify(ctx, task)
	if err != nil {
		p.logger.Warn("sentiment analysis failed, defaulting to medium priority",
			"subject", subject, "error", err)
		return domain.PriorityMedium
	}

	if result.Label == negativeLabel && result.Score > negativeThreshold {
		return domain.PriorityHigh
	}
	if strings.Contains(task, weakness) {
		return domain.PriorityMedium
	}
	return domain.PriorityLow
}
