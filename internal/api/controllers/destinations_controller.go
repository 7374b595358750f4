package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"lounge/internal/services"
	"lounge/pkg/utils"
)

type DestinationsController struct {
	catalogService services.CatalogServiceInterface
}

func NewDestinationsController(catalogService services.CatalogServiceInterface) *DestinationsController {
	return &DestinationsController{
		catalogService: catalogService,
	}
}

// ListDestinations godoc
// @Summary List destinations
// @Description Fetch a paginated list of catalog destinations with resolved images
// @Tags Destinations
// @Produce json
// @Param page query int false "Page number (default: 1)"
// @Param pageSize query int false "Page size (default: 10, max: 100)"
// @Success 200 {object} utils.APIResponse
// @Router /destinations [get]
func (d *DestinationsController) ListDestinations(c *gin.Context) {
	pageStr := c.DefaultQuery("page", "1")
	pageSizeStr := c.DefaultQuery("pageSize", "10")

	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page number")
		return
	}

	pageSize, err := strconv.Atoi(pageSizeStr)
	if err != nil || pageSize < 1 || pageSize > 100 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page size (must be 1-100)")
		return
	}

	destinations, err := d.catalogService.ListDestinations(page, pageSize, c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, destinations, "Destinations fetched successfully")
}

func (d *DestinationsController) GetDestinationByID(c *gin.Context) {
	destination, err := d.catalogService.GetDestinationByID(c.Param("id"), c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, destination, "Destination fetched successfully")
}
