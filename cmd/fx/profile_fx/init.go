package profile_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"lounge/internal/repositories"
	"lounge/internal/services"
)

var Module = fx.Provide(
	NewProfileService, NewProfileRepo)

func NewProfileService(repo repositories.ProfileRepositoryInterface) services.ProfileServiceInterface {
	return services.NewProfileService(repo)
}

func NewProfileRepo(db *gorm.DB) repositories.ProfileRepositoryInterface {
	return repositories.NewProfileRepository(db)
}
