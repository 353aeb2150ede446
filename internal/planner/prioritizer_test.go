package planner

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alexanderramin/studbud/internal/classifier"
	"github.com/alexanderramin/studbud/internal/domain"
)

// stubClassifier returns a fixed result or error for every call.
type stubClassifier struct {
	result classifier.Result
	err    error
	calls  int
}

func (s *stubClassifier) Classify(ctx context.Context, text string) (classifier.Result, error) {
	s.calls++
	if s.err != nil {
		return classifier.Result{}, s.err
	}
	return s.result, nil
}

func (s *stubClassifier) Available(ctx context.Context) bool { return s.err == nil }

func TestPrioritize_RuleTable(t *testing.T) {
	tests := []struct {
		name     string
		result   classifier.Result
		err      error
		weakness string
		task     string
		want     domain.Priority
	}{
		{
			name:     "strong negative sentiment forces high",
			result:   classifier.Result{Label: "NEGATIVE", Score: 0.85},
			weakness: "Calculus",
			task:     "Review Calculus using Flashcards",
			want:     domain.PriorityHigh,
		},
		{
			name:     "negative sentiment wins even without weakness match",
			result:   classifier.Result{Label: "NEGATIVE", Score: 0.71},
			weakness: "Essays",
			task:     "Review something else entirely",
			want:     domain.PriorityHigh,
		},
		{
			name:     "score exactly at threshold is not high",
			result:   classifier.Result{Label: "NEGATIVE", Score: 0.7},
			weakness: "Essays",
			task:     "Review Calculus using Flashcards",
			want:     domain.PriorityLow,
		},
		{
			name:     "weak negative with weakness match is medium",
			result:   classifier.Result{Label: "NEGATIVE", Score: 0.5},
			weakness: "Calculus",
			task:     "Review Calculus using Flashcards",
			want:     domain.PriorityMedium,
		},
		{
			name:     "positive label with weakness match is medium",
			result:   classifier.Result{Label: "POSITIVE", Score: 0.99},
			weakness: "Calculus",
			task:     "Review Calculus using Flashcards",
			want:     domain.PriorityMedium,
		},
		{
			name:     "positive label without weakness match is low",
			result:   classifier.Result{Label: "POSITIVE", Score: 0.99},
			weakness: "Essays",
			task:     "Review Calculus using Flashcards",
			want:     domain.PriorityLow,
		},
		{
			name:     "unknown label is never special-cased",
			result:   classifier.Result{Label: "NEUTRAL", Score: 0.95},
			weakness: "Essays",
			task:     "Review Calculus using Flashcards",
			want:     domain.PriorityLow,
		},
		{
			name:     "classifier failure defaults to medium",
			err:      classifier.ErrUnavailable,
			weakness: "Calculus",
			task:     "Review Calculus using Flashcards",
			want:     domain.PriorityMedium,
		},
		{
			name:     "classifier failure overrides would-be low",
			err:      errors.New("model exploded"),
			weakness: "Essays",
			task:     "Review Calculus using Flashcards",
			want:     domain.PriorityMedium,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubClassifier{result: tt.result, err: tt.err}
			p := NewPrioritizer(stub, nil)

			got := p.Prioritize(context.Background(), "Math", tt.weakness, tt.task)

			assert.Equal(t, tt.want, got)
			assert.Equal(t, 1, stub.calls)
		})
	}
}

func TestPrioritize_Deterministic(t *testing.T) {
	stub := &stubClassifier{result: classifier.Result{Label: "NEGATIVE", Score: 0.6}}
	p := NewPrioritizer(stub, nil)

	first := p.Prioritize(context.Background(), "Math", "Calculus", "Review Calculus using Flashcards")
	for i := 0; i < 10; i++ {
		got := p.Prioritize(context.Background(), "Math", "Calculus", "Review Calculus using Flashcards")
		assert.Equal(t, first, got)
	}
}

func TestPrioritize_NilClassifierDefaultsToMedium(t *testing.T) {
	p := NewPrioritizer(nil, nil)
	got := p.Prioritize(context.Background(), "Math", "Calculus", "Review Calculus using Flashcards")
	assert.Equal(t, domain.PriorityMedium, got)
}

func TestWeaknessFocus_IdentityMapping(t *testing.T) {
	profile := domain.StudentProfile{
		Subjects:   []string{"Math", "History"},
		Weaknesses: map[string]string{"Math": "Calculus", "History": "Essays"},
	}

	focus := WeaknessFocus{}.Analyze(profile)

	assert.Equal(t, map[string]string{"Math": "Calculus", "History": "Essays"}, focus)
}
