package service_test

import (
	"context"
	"math/rand"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/studbud/internal/classifier"
	"github.com/alexanderramin/studbud/internal/domain"
	"github.com/alexanderramin/studbud/internal/planner"
	"github.com/alexanderramin/studbud/internal/planstore"
	"github.com/alexanderramin/studbud/internal/repository"
	"github.com/alexanderramin/studbud/internal/service"
	"github.com/alexanderramin/studbud/internal/testutil"
)

type planFixture struct {
	profiles service.ProfileService
	plans    service.PlanService
	stub     *testutil.StubClassifier
}

func newPlanFixture(t *testing.T) *planFixture {
	t.Helper()
	database := testutil.NewTestDB(t)
	profileRepo := repository.NewSQLiteProfileRepo(database)
	planRepo := repository.NewSQLitePlanRepo(database)

	stub := &testutil.StubClassifier{
		Result: classifier.Result{Label: "POSITIVE", Score: 0.9},
	}
	builder := planner.NewDayBuilder(
		planner.NewPrioritizer(stub, nil),
		rand.New(rand.NewSource(42)),
	)
	plans := service.NewPlanService(
		profileRepo,
		planRepo,
		planner.NewGenerator(builder),
		planner.WeaknessFocus{},
		testutil.NewTestUoW(database),
	)
	return &planFixture{
		profiles: service.NewProfileService(profileRepo),
		plans:    plans,
		stub:     stub,
	}
}

func (f *planFixture) createProfile(t *testing.T) *domain.StudentProfile {
	t.Helper()
	profile := testutil.Profile()
	profile.ID = ""
	require.NoError(t, f.profiles.Create(context.Background(), &profile))
	return &profile
}

func TestPlanService_Generate(t *testing.T) {
	f := newPlanFixture(t)
	ctx := context.Background()
	profile := f.createProfile(t)

	stored, err := f.plans.Generate(ctx, service.GenerateRequest{
		ProfileID: profile.ID,
		StartDate: time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC),
		NumDays:   3,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, stored.ID)
	assert.Equal(t, profile.ID, stored.ProfileID)
	assert.Equal(t, 3, stored.NumDays)
	require.Len(t, stored.Plan, 3)
	for _, date := range []string{"2024-03-04", "2024-03-05", "2024-03-06"} {
		daily, ok := stored.Plan[date]
		require.True(t, ok, "missing day %s", date)
		assert.Len(t, daily.Blocks, len(profile.Subjects))
	}

	got, err := f.plans.GetByID(ctx, stored.ID)
	require.NoError(t, err)
	assert.Equal(t, stored.Plan, got.Plan)
}

func TestPlanService_Generate_UsesLatestProfileByDefault(t *testing.T) {
	f := newPlanFixture(t)
	ctx := context.Background()
	f.createProfile(t)
	latest := f.createProfile(t)

	stored, err := f.plans.Generate(ctx, service.GenerateRequest{
		StartDate: time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC),
		NumDays:   1,
	})
	require.NoError(t, err)
	assert.Equal(t, latest.ID, stored.ProfileID)
}

func TestPlanService_Generate_ProfileNotFound(t *testing.T) {
	f := newPlanFixture(t)

	_, err := f.plans.Generate(context.Background(), service.GenerateRequest{
		ProfileID: "missing",
		StartDate: time.Now(),
		NumDays:   1,
	})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestPlanService_Generate_RejectsNonPositiveDays(t *testing.T) {
	f := newPlanFixture(t)
	ctx := context.Background()
	profile := f.createProfile(t)

	_, err := f.plans.Generate(ctx, service.GenerateRequest{
		ProfileID: profile.ID,
		StartDate: time.Now(),
		NumDays:   0,
	})
	require.Error(t, err)

	_, err = f.plans.Latest(ctx, profile.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound, "failed generation must not persist a plan")
}

func TestPlanService_Generate_ClassifierFailureStillPersists(t *testing.T) {
	f := newPlanFixture(t)
	ctx := context.Background()
	profile := f.createProfile(t)
	f.stub.Err = classifier.ErrUnavailable

	stored, err := f.plans.Generate(ctx, service.GenerateRequest{
		ProfileID: profile.ID,
		StartDate: time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC),
		NumDays:   1,
	})
	require.NoError(t, err)
	for _, block := range stored.Plan["2024-03-04"].Blocks {
		assert.Equal(t, domain.PriorityMedium, block.Priority)
	}
}

func TestPlanService_Latest(t *testing.T) {
	f := newPlanFixture(t)
	ctx := context.Background()
	profile := f.createProfile(t)

	first, err := f.plans.Generate(ctx, service.GenerateRequest{
		ProfileID: profile.ID,
		StartDate: time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC),
		NumDays:   1,
	})
	require.NoError(t, err)
	second, err := f.plans.Generate(ctx, service.GenerateRequest{
		ProfileID: profile.ID,
		StartDate: time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
		NumDays:   1,
	})
	require.NoError(t, err)
	require.NotEqual(t, first.ID, second.ID)

	got, err := f.plans.Latest(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, second.ID, got.ID)
}

func TestPlanService_ExportAndImport(t *testing.T) {
	f := newPlanFixture(t)
	ctx := context.Background()
	profile := f.createProfile(t)

	stored, err := f.plans.Generate(ctx, service.GenerateRequest{
		ProfileID: profile.ID,
		StartDate: time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC),
		NumDays:   2,
	})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "plan.json")
	require.NoError(t, f.plans.Export(ctx, stored.ID, path))

	_, err = os.Stat(path)
	require.NoError(t, err)

	imported, err := f.plans.Import(ctx, profile.ID, path)
	require.NoError(t, err)
	assert.NotEqual(t, stored.ID, imported.ID)
	assert.Equal(t, stored.Plan, imported.Plan)
	assert.Equal(t, 2, imported.NumDays)
	assert.True(t, imported.StartDate.Equal(time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)))
}

func TestPlanService_Import_MissingFile(t *testing.T) {
	f := newPlanFixture(t)
	profile := f.createProfile(t)

	_, err := f.plans.Import(context.Background(), profile.ID, filepath.Join(t.TempDir(), "absent.json"))
	assert.ErrorIs(t, err, planstore.ErrPlanNotFound)
}

func TestPlanService_Export_DefaultsToLatest(t *testing.T) {
	f := newPlanFixture(t)
	ctx := context.Background()
	profile := f.createProfile(t)

	_, err := f.plans.Generate(ctx, service.GenerateRequest{
		ProfileID: profile.ID,
		StartDate: time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC),
		NumDays:   1,
	})
	require.NoError(t, err)
	latest, err := f.plans.Generate(ctx, service.GenerateRequest{
		ProfileID: profile.ID,
		StartDate: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		NumDays:   1,
	})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "latest.json")
	require.NoError(t, f.plans.Export(ctx, "", path))

	plan, err := planstore.Load(path)
	require.NoError(t, err)
	assert.Equal(t, latest.Plan, plan)
}
