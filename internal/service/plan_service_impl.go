package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/studbud/internal/db"
	"github.com/alexanderramin/studbud/internal/domain"
	"github.com/alexanderramin/studbud/internal/planner"
	"github.com/alexanderramin/studbud/internal/planstore"
	"github.com/alexanderramin/studbud/internal/repository"
)

type planService struct {
	profiles  repository.ProfileRepo
	plans     repository.PlanRepo
	generator *planner.Generator
	analyzer  planner.FocusAnalyzer
	uow       db.UnitOfWork
	observer  UseCaseObserver
}

func NewPlanService(
	profiles repository.ProfileRepo,
	plans repository.PlanRepo,
	generator *planner.Generator,
	analyzer planner.FocusAnalyzer,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) PlanService {
	return &planService{
		profiles:  profiles,
		plans:     plans,
		generator: generator,
		analyzer:  analyzer,
		uow:       uow,
		observer:  useCaseObserverOrNoop(observers),
	}
}

// Generate builds and persists a study plan for the requested profile.
// The plan rows are written inside a single transaction so a failed
// write never leaves a partial plan behind.
func (s *planService) Generate(ctx context.Context, req GenerateRequest) (stored *repository.StoredPlan, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"num_days": req.NumDays}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "generate-plan",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	var profile *domain.StudentProfile
	if req.ProfileID == "" {
		profile, err = s.profiles.GetLatest(ctx)
	} else {
		profile, err = s.profiles.GetByID(ctx, req.ProfileID)
	}
	if err != nil {
		return nil, err
	}
	fields["profile_id"] = profile.ID

	if err = profile.Validate(); err != nil {
		return nil, err
	}

	focus := s.analyzer.Analyze(*profile)

	var plan domain.StudyPlan
	plan, err = s.generator.Generate(ctx, *profile, focus, req.StartDate, req.NumDays)
	if err != nil {
		return nil, err
	}

	stored = &repository.StoredPlan{
		ID:        uuid.New().String(),
		ProfileID: profile.ID,
		StartDate: req.StartDate,
		NumDays:   req.NumDays,
		CreatedAt: time.Now().UTC(),
		Plan:      plan,
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLitePlanRepo(tx).Create(ctx, stored)
	})
	if err != nil {
		return nil, fmt.Errorf("persisting plan: %w", err)
	}
	return stored, nil
}

func (s *planService) GetByID(ctx context.Context, id string) (*repository.StoredPlan, error) {
	return s.plans.GetByID(ctx, id)
}

func (s *planService) Latest(ctx context.Context, profileID string) (*repository.StoredPlan, error) {
	if profileID == "" {
		profile, err := s.profiles.GetLatest(ctx)
		if err != nil {
			return nil, err
		}
		profileID = profile.ID
	}
	return s.plans.GetLatestByProfile(ctx, profileID)
}

func (s *planService) Export(ctx context.Context, planID, path string) error {
	var stored *repository.StoredPlan
	var err error
	if planID == "" {
		stored, err = s.Latest(ctx, "")
	} else {
		stored, err = s.plans.GetByID(ctx, planID)
	}
	if err != nil {
		return err
	}
	return planstore.Save(path, stored.Plan)
}

// Import reads a plan file and persists it wholesale as a new stored
// plan attached to the given profile (latest profile when empty).
func (s *planService) Import(ctx context.Context, profileID, path string) (*repository.StoredPlan, error) {
	plan, err := planstore.Load(path)
	if err != nil {
		return nil, err
	}
	dates := plan.Dates()
	if len(dates) == 0 {
		return nil, fmt.Errorf("plan file %s contains no days", path)
	}

	var profile *domain.StudentProfile
	if profileID == "" {
		profile, err = s.profiles.GetLatest(ctx)
	} else {
		profile, err = s.profiles.GetByID(ctx, profileID)
	}
	if err != nil {
		return nil, err
	}

	stored := &repository.StoredPlan{
		ID:        uuid.New().String(),
		ProfileID: profile.ID,
		StartDate: plan[dates[0]].Date,
		NumDays:   len(dates),
		CreatedAt: time.Now().UTC(),
		Plan:      plan,
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLitePlanRepo(tx).Create(ctx, stored)
	})
	if err != nil {
		return nil, fmt.Errorf("persisting imported plan: %w", err)
	}
	return stored, nil
}
