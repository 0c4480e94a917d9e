package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"placefinder/internal/models/request_models"
	"placefinder/internal/services"
	"placefinder/pkg/utils"
)

type SearchController struct {
	searchService services.SearchServiceInterface
}

func NewSearchController(searchService services.SearchServiceInterface) *SearchController {
	return &SearchController{
		searchService: searchService,
	}
}

// Search godoc
// @Summary Resolve a natural-language place query
// @Description Extracts intent from free text and returns matching places with map framing
// @Tags Search
// @Accept json
// @Produce json
// @Param request body request_models.SearchRequest true "Search payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 503 {object} utils.APIResponse
// @Router /search [post]
func (s *SearchController) Search(c *gin.Context) {
	var req request_models.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	result, err := s.searchService.ProcessQuery(c.Request.Context(), req.Query, req.UserLocation)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	message := fmt.Sprintf("Found %d location(s)", len(result.Locations))
	if len(result.Locations) == 0 {
		message = "No locations found for your query"
	}

	utils.RespondSuccess(c, result, message)
}
