package cli

import (
	"bytes"
	"context"
	"math/rand"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/studbud/internal/classifier"
	"github.com/alexanderramin/studbud/internal/planner"
	"github.com/alexanderramin/studbud/internal/repository"
	"github.com/alexanderramin/studbud/internal/service"
	"github.com/alexanderramin/studbud/internal/testutil"
)

// testApp wires a full App backed by an in-memory DB for CLI integration tests.
// IsInteractive is false so commands take the flag path, never the wizard.
func testApp(t *testing.T) *App {
	t.Helper()
	database := testutil.NewTestDB(t)

	profileRepo := repository.NewSQLiteProfileRepo(database)
	planRepo := repository.NewSQLitePlanRepo(database)

	stub := &testutil.StubClassifier{Result: classifier.Result{Label: "POSITIVE", Score: 0.9}}
	builder := planner.NewDayBuilder(
		planner.NewPrioritizer(stub, nil),
		rand.New(rand.NewSource(7)),
	)

	return &App{
		Profiles: service.NewProfileService(profileRepo),
		Plans: service.NewPlanService(
			profileRepo,
			planRepo,
			planner.NewGenerator(builder),
			planner.WeaknessFocus{},
			testutil.NewTestUoW(database),
		),
	}
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

// seedProfile creates a profile through the init command's flag path.
func seedProfile(t *testing.T, app *App) string {
	t.Helper()
	_, err := executeCmd(t, app, "profile", "init",
		"--name", "Alice",
		"--subject", "Math",
		"--subject", "History",
		"--goals", "Pass finals",
		"--strength", "Math=Algebra",
		"--strength", "History=Memorization",
		"--weakness", "Math=Calculus",
		"--weakness", "History=Essays",
		"--time", "Morning",
		"--hours", "2",
		"--environment", "Library",
		"--method", "Flashcards",
	)
	require.NoError(t, err)

	profile, err := app.Profiles.GetLatest(context.Background())
	require.NoError(t, err)
	return profile.ID
}

func TestProfileInitCmd_Flags(t *testing.T) {
	app := testApp(t)
	seedProfile(t, app)

	profile, err := app.Profiles.GetLatest(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Alice", profile.StudentName)
	assert.Equal(t, []string{"Math", "History"}, profile.Subjects)
	assert.Equal(t, "Calculus", profile.Weaknesses["Math"])
	assert.Equal(t, 2.0, profile.Preferences.DailyDurationHours)
}

func TestProfileInitCmd_InvalidStrengthFormat(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "profile", "init",
		"--name", "Alice",
		"--subject", "Math",
		"--goals", "g",
		"--strength", "MathAlgebra",
		"--weakness", "Math=Calculus",
		"--environment", "Home",
		"--method", "Flashcards",
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--strength")
}

func TestProfileInitCmd_RejectsProfileWithoutSubjects(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "profile", "init",
		"--name", "Alice",
		"--goals", "g",
		"--environment", "Home",
		"--method", "Flashcards",
	)
	require.Error(t, err)
}

func TestProfileRemoveCmd(t *testing.T) {
	app := testApp(t)
	id := seedProfile(t, app)

	_, err := executeCmd(t, app, "profile", "remove", id)
	require.NoError(t, err)

	_, err = app.Profiles.GetByID(context.Background(), id)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestGenerateCmd(t *testing.T) {
	app := testApp(t)
	seedProfile(t, app)

	_, err := executeCmd(t, app, "generate", "--days", "2", "--start", "2024-03-04")
	require.NoError(t, err)

	stored, err := app.Plans.Latest(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, 2, stored.NumDays)
	assert.Contains(t, stored.Plan, "2024-03-04")
	assert.Contains(t, stored.Plan, "2024-03-05")
}

func TestGenerateCmd_InvalidStartDate(t *testing.T) {
	app := testApp(t)
	seedProfile(t, app)

	_, err := executeCmd(t, app, "generate", "--start", "03/04/2024")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid start date")
}

func TestGenerateCmd_NoProfile(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "generate", "--days", "2")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestShowCmd_NoPlan(t *testing.T) {
	app := testApp(t)
	seedProfile(t, app)

	_, err := executeCmd(t, app, "show")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestShowCmd_MissingDate(t *testing.T) {
	app := testApp(t)
	seedProfile(t, app)
	_, err := executeCmd(t, app, "generate", "--days", "1", "--start", "2024-03-04")
	require.NoError(t, err)

	_, err = executeCmd(t, app, "show", "--date", "2024-12-25")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no day")
}

func TestExportAndImportCmds(t *testing.T) {
	app := testApp(t)
	seedProfile(t, app)
	_, err := executeCmd(t, app, "generate", "--days", "2", "--start", "2024-03-04")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "plan.json")
	_, err = executeCmd(t, app, "export", "--out", path)
	require.NoError(t, err)

	before, err := app.Plans.Latest(context.Background(), "")
	require.NoError(t, err)

	_, err = executeCmd(t, app, "import", path)
	require.NoError(t, err)

	after, err := app.Plans.Latest(context.Background(), "")
	require.NoError(t, err)
	assert.NotEqual(t, before.ID, after.ID)
	assert.Equal(t, before.Plan, after.Plan)
}
