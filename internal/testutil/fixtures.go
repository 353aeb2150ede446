package testutil

import (
	"context"
	"time"

	"github.com/alexanderramin/studbud/internal/classifier"
	"github.com/alexanderramin/studbud/internal/domain"
)

// Profile returns a valid two-subject student profile for tests.
func Profile() domain.StudentProfile {
	now := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	return domain.StudentProfile{
		ID:          "profile-1",
		StudentName: "Alice",
		Subjects:    []string{"Math", "History"},
		Goals:       "Get an A in Math",
		Strengths:   map[string]string{"Math": "Problem-solving", "History": "Memorization"},
		Weaknesses:  map[string]string{"Math": "Calculus", "History": "Essays"},
		Preferences: domain.Preferences{
			PreferredTime:      "Morning",
			DailyDurationHours: 2,
			Environment:        "Library",
			Methods:            []string{"Flashcards", "Practice problems"},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Plan returns a two-day study plan matching Profile().
func Plan() domain.StudyPlan {
	return domain.StudyPlan{
		"2024-01-01": {
			Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			Blocks: []domain.StudyBlock{
				{Subject: "Math", AllocatedHours: 1, Task: "Review Calculus using Flashcards", Priority: domain.PriorityHigh},
				{Subject: "History", AllocatedHours: 1, Task: "Review Essays using Flashcards", Priority: domain.PriorityMedium},
			},
			Environment:   "Library",
			PreferredTime: "Morning",
		},
		"2024-01-02": {
			Date: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
			Blocks: []domain.StudyBlock{
				{Subject: "Math", AllocatedHours: 1, Task: "Review Calculus using Practice problems", Priority: domain.PriorityLow},
				{Subject: "History", AllocatedHours: 1, Task: "Review Essays using Practice problems", Priority: domain.PriorityMedium},
			},
			Environment:   "Library",
			PreferredTime: "Morning",
		},
	}
}

// StubClassifier is a Classifier test double returning a fixed result
// or error for every call.
type StubClassifier struct {
	Result classifier.Result
	Err    error
	Calls  int
}

func (s *StubClassifier) Classify(ctx context.Context, text string) (classifier.Result, error) {
	s.Calls++
	if s.Err != nil {
		return classifier.Result{}, s.Err
	}
	return s.Result, nil
}

func (s *StubClassifier) Available(ctx context.Context) bool { return s.Err == nil }
