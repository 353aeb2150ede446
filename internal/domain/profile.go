package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrNoSubjects indicates a profile with no subjects. Plan generation
// cannot proceed without at least one subject.
var ErrNoSubjects = errors.New("no subjects defined in profile")

// Preferences holds the student's declared study preferences.
type Preferences struct {
	PreferredTime      string
	DailyDurationHours float64
	Environment        string
	Methods            []string
}

// StudentProfile is the immutable input to plan generation: subjects,
// goals, per-subject strengths and weaknesses, and study preferences.
// Subject order is preserved and drives block order in daily plans.
type StudentProfile struct {
	ID          string
	StudentName string
	Subjects    []string
	Goals       string
	Strengths   map[string]string
	Weaknesses  map[string]string
	Preferences Preferences
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Validate checks the structural invariants: at least one non-empty
// subject, a strengths and weaknesses entry per subject, a positive
// daily duration, and at least one study method.
func (p *StudentProfile) Validate() error {
	if len(p.Subjects) == 0 {
		return ErrNoSubjects
	}
	for _, subject := range p.Subjects {
		if strings.TrimSpace(subject) == "" {
			return fmt.Errorf("subject names must be non-empty")
		}
		if _, ok := p.Strengths[subject]; !ok {
			return fmt.Errorf("subject %q has no strengths entry", subject)
		}
		if _, ok := p.Weaknesses[subject]; !ok {
			return fmt.Errorf("subject %q has no weaknesses entry", subject)
		}
	}
	if p.Preferences.DailyDurationHours <= 0 {
		return fmt.Errorf("daily duration must be positive, got %v hours", p.Preferences.DailyDurationHours)
	}
	if len(p.Preferences.Methods) == 0 {
		return fmt.Errorf("at least one study method is required")
	}
	return nil
}
