package controllers

import (
	"net/http"

	"daytour/internal/models/request_models"
	"daytour/internal/services"
	"daytour/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type InteractionsController struct {
	interactionService services.InteractionServiceInterface
}

func NewInteractionsController(interactionService services.InteractionServiceInterface) *InteractionsController {
	return &InteractionsController{
		interactionService: interactionService,
	}
}

func (i *InteractionsController) RateDestination(c *gin.Context) {
	var req request_models.RateDestinationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid rating request: "+err.Error())
		return
	}

	if err := i.interactionService.RateDestination(c.Request.Context(), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Rating recorded successfully")
}

func (i *InteractionsController) LogVisit(c *gin.Context) {
	var req request_models.LogVisitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid visit request: "+err.Error())
		return
	}

	if err := i.interactionService.LogVisit(c.Request.Context(), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Visit logged successfully")
}

func (i *InteractionsController) FavoriteDestination(c *gin.Context) {
	var req request_models.FavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid favorite request: "+err.Error())
		return
	}

	if err := i.interactionService.FavoriteDestination(c.Request.Context(), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Favorite recorded successfully")
}

func (i *InteractionsController) GetUserActivity(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid user ID")
		return
	}

	activity, err := i.interactionService.GetUserActivity(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, activity, "User activity fetched successfully")
}
