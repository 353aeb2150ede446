package planner

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/studbud/internal/classifier"
	"github.com/alexanderramin/studbud/internal/domain"
)

func testGenerator(c classifier.Classifier, seed int64) *Generator {
	return NewGenerator(NewDayBuilder(NewPrioritizer(c, nil), rand.New(rand.NewSource(seed))))
}

func TestGenerate_ConsecutiveDates(t *testing.T) {
	profile := testProfile()
	gen := testGenerator(&stubClassifier{result: classifier.Result{Label: "POSITIVE", Score: 0.9}}, 1)
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	plan, err := gen.Generate(context.Background(), profile, WeaknessFocus{}.Analyze(profile), start, 7)

	require.NoError(t, err)
	require.Len(t, plan, 7)
	assert.Equal(t, []string{
		"2024-01-01", "2024-01-02", "2024-01-03", "2024-01-04",
		"2024-01-05", "2024-01-06", "2024-01-07",
	}, plan.Dates())
}

func TestGenerate_CrossesMonthBoundary(t *testing.T) {
	profile := testProfile()
	gen := testGenerator(&stubClassifier{result: classifier.Result{Label: "POSITIVE", Score: 0.9}}, 1)
	start := time.Date(2024, 2, 28, 0, 0, 0, 0, time.UTC)

	plan, err := gen.Generate(context.Background(), profile, WeaknessFocus{}.Analyze(profile), start, 3)

	require.NoError(t, err)
	// 2024 is a leap year.
	assert.Equal(t, []string{"2024-02-28", "2024-02-29", "2024-03-01"}, plan.Dates())
}

func TestGenerate_SpecExample(t *testing.T) {
	profile := domain.StudentProfile{
		Subjects:   []string{"Math", "History"},
		Strengths:  map[string]string{"Math": "Algebra", "History": "Dates"},
		Weaknesses: map[string]string{"Math": "Calculus", "History": "Essays"},
		Preferences: domain.Preferences{
			PreferredTime:      "Evening",
			DailyDurationHours: 1,
			Environment:        "Quiet room",
			Methods:            []string{"Flashcards"},
		},
	}
	gen := testGenerator(&stubClassifier{result: classifier.Result{Label: "POSITIVE", Score: 0.9}}, 1)
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	plan, err := gen.Generate(context.Background(), profile, WeaknessFocus{}.Analyze(profile), start, 2)

	require.NoError(t, err)
	require.Len(t, plan, 2)
	for _, date := range []string{"2024-01-01", "2024-01-02"} {
		daily, ok := plan[date]
		require.True(t, ok, "missing date %s", date)
		require.Len(t, daily.Blocks, 2)
		assert.InDelta(t, 0.5, daily.Blocks[0].AllocatedHours, 1e-9)
		assert.InDelta(t, 0.5, daily.Blocks[1].AllocatedHours, 1e-9)
		assert.Equal(t, "Review Calculus using Flashcards", daily.Blocks[0].Task)
		assert.Equal(t, "Review Essays using Flashcards", daily.Blocks[1].Task)
	}
}

func TestGenerate_EmptyProfileFails(t *testing.T) {
	profile := testProfile()
	profile.Subjects = nil
	gen := testGenerator(&stubClassifier{}, 1)

	plan, err := gen.Generate(context.Background(), profile, nil, time.Now(), 5)

	assert.ErrorIs(t, err, domain.ErrNoSubjects)
	assert.Nil(t, plan)
}

func TestGenerate_NonPositiveDaysFails(t *testing.T) {
	profile := testProfile()
	gen := testGenerator(&stubClassifier{}, 1)

	for _, days := range []int{0, -1} {
		_, err := gen.Generate(context.Background(), profile, WeaknessFocus{}.Analyze(profile), time.Now(), days)
		assert.Error(t, err)
	}
}
