package planner

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/alexanderramin/studbud/internal/domain"
)

// minHoursPerSubject is the floor applied to per-subject allocation.
// With many subjects and a small daily duration, total allocated time
// can exceed the declared daily duration; that is intentional.
const minHoursPerSubject = 0.5

// DayBuilder allocates the daily study duration across subjects and
// assembles one prioritized study block per subject.
type DayBuilder struct {
	prioritizer *Prioritizer
	rng         *rand.Rand
}

// NewDayBuilder creates a DayBuilder. The random source drives study
// method selection; pass a seeded source for deterministic output, or
// nil for a time-seeded one.
func NewDayBuilder(prioritizer *Prioritizer, rng *rand.Rand) *DayBuilder {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &DayBuilder{prioritizer: prioritizer, rng: rng}
}

// Build creates the daily plan for the given date. Blocks follow the
// profile's subject order. Fails with domain.ErrNoSubjects when the
// profile has no subjects.
func (b *DayBuilder) Build(ctx context.Context, profile domain.StudentProfile, focus map[string]string, date time.Time) (domain.DailyPlan, error) {
	if len(profile.Subjects) == 0 {
		return domain.DailyPlan{}, domain.ErrNoSubjects
	}

	hoursPerSubject := profile.Preferences.DailyDurationHours / float64(len(profile.Subjects))
	if hoursPerSubject < minHoursPerSubject {
		hoursPerSubject = minHoursPerSubject
	}

	blocks := make([]domain.StudyBlock, 0, len(profile.Subjects))
	for _, subject := range profile.Subjects {
		methods := profile.Preferences.Methods
		method := methods[b.rng.Intn(len(methods))]
		task := fmt.Sprintf("Review %s using %s", focus[subject], method)

		blocks = append(blocks, domain.StudyBlock{
			Subject:        subject,
			AllocatedHours: hoursPerSubject,
			Task:           task,
			Priority:       b.prioritizer.Prioritize(ctx, subject, profile.Weaknesses[subject], task),
		})
	}

	return domain.DailyPlan{
		Date:          date,
		Blocks:        blocks,
		Environment:   profile.Preferences.Environment,
		PreferredTime: profile.Preferences.PreferredTime,
	}, nil
}
