package controllers

import (
	"net/http"
	"strconv"

	"daytour/internal/services"
	"daytour/pkg/utils"

	"github.com/gin-gonic/gin"
)

type DestinationsController struct {
	destinationService services.DestinationServiceInterface
}

func NewDestinationsController(destinationService services.DestinationServiceInterface) *DestinationsController {
	return &DestinationsController{
		destinationService: destinationService,
	}
}

func (d *DestinationsController) GetDestinationById(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		utils.RespondError(c, http.StatusBadRequest, "Destination ID is required")
		return
	}

	dest, err := d.destinationService.GetDestinationByID(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, dest, "Destination fetched successfully")
}

func (d *DestinationsController) ListDestinations(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page number")
		return
	}

	pageSize, err := strconv.Atoi(c.DefaultQuery("pageSize", "20"))
	if err != nil || pageSize < 1 || pageSize > 100 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page size (must be 1-100)")
		return
	}

	category := c.Query("category")
	search := c.Query("search")

	dests, err := d.destinationService.ListDestinations(c.Request.Context(), page, pageSize, category, search)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, dests, "Destinations fetched successfully")
}
