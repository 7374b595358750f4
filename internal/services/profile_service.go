package services

import (
	"context"

	"github.com/google/uuid"

	"lounge/internal/models/db_models"
	"lounge/internal/models/request_models"
	"lounge/internal/models/response_models"
	"lounge/internal/repositories"
	"lounge/pkg/utils"
)

type ProfileServiceInterface interface {
	CreateProfile(request request_models.CreateProfileRequest, ctx context.Context) (*response_models.CreatedProfileResponse, error)
	ListProfiles(ctx context.Context) ([]response_models.ProfileResponse, error)
	DeleteProfile(id string, ctx context.Context) error
}

type ProfileService struct {
	profileRepo repositories.ProfileRepositoryInterface
}

func NewProfileService(profileRepo repositories.ProfileRepositoryInterface) ProfileServiceInterface {
	return &ProfileService{
		profileRepo: profileRepo,
	}
}

func (p *ProfileService) CreateProfile(request request_models.CreateProfileRequest, ctx context.Context) (*response_models.CreatedProfileResponse, error) {
	profile := &db_models.Profile{Name: request.Name}

	if err := p.profileRepo.Create(ctx, profile); err != nil {
		return nil, utils.ErrDatabaseError
	}

	token, err := utils.CreateToken(profile.ID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.CreatedProfileResponse{
		Profile: response_models.ProfileResponse{
			ID:   profile.ID.String(),
			Name: profile.Name,
		},
		Token: token,
	}, nil
}

func (p *ProfileService) ListProfiles(ctx context.Context) ([]response_models.ProfileResponse, error) {
	profiles, err := p.profileRepo.List(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.ProfileResponse, 0, len(profiles))
	for _, profile := range profiles {
		responses = append(responses, response_models.ProfileResponse{
			ID:   profile.ID.String(),
			Name: profile.Name,
		})
	}

	return responses, nil
}

func (p *ProfileService) DeleteProfile(id string, ctx context.Context) error {
	profileID, err := uuid.Parse(id)
	if err != nil {
		return utils.ErrProfileNotFound
	}

	deleted, err := p.profileRepo.Delete(ctx, profileID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if !deleted {
		return utils.ErrProfileNotFound
	}

	return nil
}
