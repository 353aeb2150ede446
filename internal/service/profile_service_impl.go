package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/studbud/internal/domain"
	"github.com/alexanderramin/studbud/internal/repository"
)

type profileService struct {
	profiles repository.ProfileRepo
}

func NewProfileService(profiles repository.ProfileRepo) ProfileService {
	return &profileService{profiles: profiles}
}

func (s *profileService) Create(ctx context.Context, p *domain.StudentProfile) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	return s.profiles.Create(ctx, p)
}

func (s *profileService) GetByID(ctx context.Context, id string) (*domain.StudentProfile, error) {
	return s.profiles.GetByID(ctx, id)
}

func (s *profileService) GetLatest(ctx context.Context) (*domain.StudentProfile, error) {
	return s.profiles.GetLatest(ctx)
}

func (s *profileService) List(ctx context.Context) ([]*domain.StudentProfile, error) {
	return s.profiles.List(ctx)
}

func (s *profileService) Delete(ctx context.Context, id string) error {
	return s.profiles.Delete(ctx, id)
}
