package planner

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/studbud/internal/domain"
)

// Generator produces multi-day study plans by invoking the day builder
// once per consecutive calendar date. Every day is scheduled; there are
// no gaps and no weekend handling.
type Generator struct {
	builder *DayBuilder
}

// NewGenerator creates a Generator over the given day builder.
func NewGenerator(builder *DayBuilder) *Generator {
	return &Generator{builder: builder}
}

// Generate builds daily plans for numDays consecutive dates starting at
// start (inclusive), keyed by ISO date string.
func (g *Generator) Generate(ctx context.Context, profile domain.StudentProfile, focus map[string]string, start time.Time, numDays int) (domain.StudyPlan, error) {
	if len(profile.Subjects) == 0 {
		return nil, domain.ErrNoSubjects
	}
	if numDays <= 0 {
		return nil, fmt.Errorf("number of days must be positive, got %d", numDays)
	}

	plan := make(domain.StudyPlan, numDays)
	current := start
	for day := 0; day < numDays; day++ {
		daily, err := g.builder.Build(ctx, profile, focus, current)
		if err != nil {
			return nil, err
		}
		plan[daily.DateKey()] = daily
		current = current.AddDate(0, 0, 1)
	}
	return plan, nil
}
