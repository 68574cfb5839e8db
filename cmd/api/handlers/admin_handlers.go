package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"xeo/cmd/api/dto"
	"xeo/cmd/api/services"
)

// AdminCleanupCacheHandler godoc
// @Summary      Clean up expired cache documents
// @Description  Delete expired profile and advice cache documents and report per-collection counts
// @Tags         admin
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  dto.CleanupResponse
// @Failure      401  {object}  dto.ErrorResponseDTO
// @Failure      403  {object}  dto.ErrorResponseDTO
// @Failure      500  {object}  dto.ErrorResponseDTO
// @Router       /admin/cache/cleanup [post]
func AdminCleanupCacheHandler(svc *services.AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		resp, err := svc.CleanupCaches(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: err.Error()})
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

// AdminStatsHandler godoc
// @Summary      Read analysis statistics
// @Description  Daily analysis counts and average overall score for the last N days
// @Tags         admin
// @Security     BearerAuth
// @Produce      json
// @Param        days  query  int  false  "Window in days (1-90)"  default(7)
// @Success      200  {object}  dto.StatsResponse
// @Failure      401  {object}  dto.ErrorResponseDTO
// @Failure      403  {object}  dto.ErrorResponseDTO
// @Failure      500  {object}  dto.ErrorResponseDTO
// @Router       /admin/stats [get]
func AdminStatsHandler(svc *services.AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		days, _ := strconv.Atoi(c.DefaultQuery("days", "7"))

		resp, err := svc.Stats(c.Request.Context(), days)
		if err != nil {
			c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: err.Error()})
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}
