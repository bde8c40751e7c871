package controllers

import (
	"net/http"
	"strconv"

	"daytour/internal/models/request_models"
	"daytour/internal/services"
	"daytour/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ToursController struct {
	tourService services.TourServiceInterface
}

func NewToursController(tourService services.TourServiceInterface) *ToursController {
	return &ToursController{
		tourService: tourService,
	}
}

func (t *ToursController) RecommendTour(c *gin.Context) {
	var req request_models.TourRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid tour request: "+err.Error())
		return
	}

	result, err := t.tourService.RecommendTour(c.Request.Context(), req.UserProfile, req.StartLocation, identityFromContext(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	if !result.Success {
		utils.RespondError(c, http.StatusBadRequest, result.Message)
		return
	}

	utils.RespondSuccess(c, result, "Tour recommended successfully")
}

func (t *ToursController) QuickRecommend(c *gin.Context) {
	category := c.DefaultQuery("user_type", "Cultural")

	budget, err := strconv.Atoi(c.DefaultQuery("budget", "500000"))
	if err != nil || budget < 0 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid budget")
		return
	}

	timeAvailable, err := strconv.Atoi(c.DefaultQuery("time_available", "8"))
	if err != nil || timeAvailable < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid time_available (must be at least 1 hour)")
		return
	}

	result, err := t.tourService.QuickRecommend(c.Request.Context(), category, budget, timeAvailable)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	if !result.Success {
		utils.RespondError(c, http.StatusBadRequest, result.Message)
		return
	}

	utils.RespondSuccess(c, result, "Tour recommended successfully")
}

func (t *ToursController) AnalyzeScores(c *gin.Context) {
	var req request_models.TourRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid tour request: "+err.Error())
		return
	}

	topN, err := strconv.Atoi(c.DefaultQuery("top_n", "10"))
	if err != nil || topN < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid top_n")
		return
	}

	analysis, err := t.tourService.AnalyzeScores(c.Request.Context(), req.UserProfile, topN)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, analysis, "Scores analyzed successfully")
}

// identityFromContext reads the traveler id the optional identity middleware
// stored, if any. An absent or malformed id means anonymous ranking.
func identityFromContext(c *gin.Context) *uuid.UUID {
	v, ok := c.Get("user_id")
	if !ok {
		return nil
	}
	s, ok := v.(string)
	if !ok {
		return nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return nil
	}
	return &id
}
