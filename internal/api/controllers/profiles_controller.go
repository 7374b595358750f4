package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lounge/internal/models/request_models"
	"lounge/internal/services"
	"lounge/pkg/utils"
)

type ProfilesController struct {
	profileService services.ProfileServiceInterface
}

func NewProfilesController(profileService services.ProfileServiceInterface) *ProfilesController {
	return &ProfilesController{
		profileService: profileService,
	}
}

func (p *ProfilesController) CreateProfile(c *gin.Context) {
	var request request_models.CreateProfileRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Profile name is required")
		return
	}

	created, err := p.profileService.CreateProfile(request, c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, created, "Profile created successfully")
}

func (p *ProfilesController) ListProfiles(c *gin.Context) {
	profiles, err := p.profileService.ListProfiles(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, profiles, "Profiles fetched successfully")
}

func (p *ProfilesController) DeleteProfile(c *gin.Context) {
	if err := p.profileService.DeleteProfile(c.Param("id"), c.Request.Context()); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Profile deleted successfully")
}
