package repository

import (
	"context"
	"errors"
	"time"

	"github.com/alexanderramin/studbud/internal/domain"
)

// ErrNotFound indicates the requested entity does not exist.
var ErrNotFound = errors.New("not found")

// StoredPlan couples a generated study plan with its storage metadata.
type StoredPlan struct {
	ID        string
	ProfileID string
	StartDate time.Time
	NumDays   int
	CreatedAt time.Time
	Plan      domain.StudyPlan
}

type ProfileRepo interface {
	Create(ctx context.Context, p *domain.StudentProfile) error
	GetByID(ctx context.Context, id string) (*domain.StudentProfile, error)
	GetLatest(ctx context.Context) (*domain.StudentProfile, error)
	List(ctx context.Context) ([]*domain.StudentProfile, error)
	Delete(ctx context.Context, id string) error
}

type PlanRepo interface {
	Create(ctx context.Context, p *StoredPlan) error
	GetByID(ctx context.Context, id string) (*StoredPlan, error)
	GetLatestByProfile(ctx context.Context, profileID string) (*StoredPlan, error)
	ListByProfile(ctx context.Context, profileID string) ([]*StoredPlan, error)
	Delete(ctx context.Context, id string) error
}
