package profile

import (
	"context"

	"github.com/peoplehub/hrm-backend-go/internal/domain/profile"
)

type profileServiceImpl struct {
	profileRepo profile.ProfileRepository
}

func NewProfileService(profileRepo profile.ProfileRepository) profile.ProfileService {
	return &profileServiceImpl{profileRepo: profileRepo}
}

// GetMine implements profile.ProfileService.
func (s *profileServiceImpl) GetMine(ctx context.Context, userID string) (*profile.ProfileResponse, error) {
	p, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := profile.ToResponse(p)
	return &resp, nil
}

// UpdateMine implements profile.ProfileService.
func (s *profileServiceImpl) UpdateMine(ctx context.Context, userID string, req profile.UpdateMyProfileRequest) (*profile.ProfileResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if err := s.profileRepo.UpdateContact(ctx, userID, req.Phone, req.Address); err != nil {
		return nil, err
	}

	return s.GetMine(ctx, userID)
}

// List implements profile.ProfileService.
func (s *profileServiceImpl) List(ctx context.Context) ([]profile.ProfileResponse, error) {
	list, err := s.profileRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return profile.ToResponseList(list), nil
}

// Update implements profile.ProfileService.
func (s *profileServiceImpl) Update(ctx context.Context, profileID string, req profile.AdminUpdateProfileRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	return s.profileRepo.UpdateByAdmin(ctx, profileID, req)
}
