package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"placefinder/internal/models/request_models"
	"placefinder/internal/services"
	"placefinder/pkg/utils"
)

type DirectionsController struct {
	directionsService services.DirectionsServiceInterface
}

func NewDirectionsController(directionsService services.DirectionsServiceInterface) *DirectionsController {
	return &DirectionsController{
		directionsService: directionsService,
	}
}

// Directions godoc
// @Summary Get a route to a destination
// @Description Returns one route from the given origin to a free-text destination
// @Tags Directions
// @Accept json
// @Produce json
// @Param request body request_models.DirectionsRequest true "Directions payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Router /directions [post]
func (d *DirectionsController) Directions(c *gin.Context) {
	var req request_models.DirectionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	route, err := d.directionsService.Route(c.Request.Context(), req.Origin, req.Destination, req.TravelMode)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, route, "Route found")
}
