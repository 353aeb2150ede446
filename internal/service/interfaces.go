package service

import (
	"context"
	"time"

	"github.com/alexanderramin/studbud/internal/domain"
	"github.com/alexanderramin/studbud/internal/repository"
)

type ProfileService interface {
	Create(ctx context.Context, p *domain.StudentProfile) error
	GetByID(ctx context.Context, id string) (*domain.StudentProfile, error)
	GetLatest(ctx context.Context) (*domain.StudentProfile, error)
	List(ctx context.Context) ([]*domain.StudentProfile, error)
	Delete(ctx context.Context, id string) error
}

// GenerateRequest describes a plan generation run. An empty ProfileID
// targets the most recently created profile.
type GenerateRequest struct {
	ProfileID string
	StartDate time.Time
	NumDays   int
}

type PlanService interface {
	Generate(ctx context.Context, req GenerateRequest) (*repository.StoredPlan, error)
	GetByID(ctx context.Context, id string) (*repository.StoredPlan, error)
	Latest(ctx context.Context, profileID string) (*repository.StoredPlan, error)
	Export(ctx context.Context, planID, path string) error
	Import(ctx context.Context, profileID, path string) (*repository.StoredPlan, error)
}
