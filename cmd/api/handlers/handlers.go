package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"xeo/advisor"
	"xeo/cmd/api/clients/selaclient"
	"xeo/cmd/api/dto"
	"xeo/cmd/api/services"
	"xeo/engine"
)

// AnalyzePostHandler godoc
// @Summary      Analyze a post draft
// @Description  Score a draft against the pentagon dimensions and return action probabilities and quick tips
// @Tags         post
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PostAnalyzeRequest  true  "Draft to analyze"
// @Success      200  {object}  dto.PostAnalysisResponse
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      500  {object}  dto.ErrorResponseDTO
// @Router       /post/analyze [post]
func AnalyzePostHandler(svc *services.AnalysisService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.PostAnalyzeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: err.Error()})
			return
		}

		resp, err := svc.AnalyzePost(c.Request.Context(), services.AnalyzePostInput{
			Username:      req.Username,
			Content:       req.Content,
			PostType:      engine.ParsePostType(req.PostType),
			MediaType:     engine.ParseMediaType(req.MediaType),
			TargetPostURL: req.TargetPostURL,
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: err.Error()})
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

// AnalyzeProfileHandler godoc
// @Summary      Analyze a profile
// @Description  Aggregate a user's recent posts into profile scores, insights and recommendations
// @Tags         profile
// @Produce      json
// @Param        username  path   string  true   "X username without @"
// @Param        refresh   query  bool    false  "Bypass profile caches"
// @Success      200  {object}  dto.ProfileAnalysisResponse
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Failure      500  {object}  dto.ErrorResponseDTO
// @Router       /profile/{username}/analyze [get]
func AnalyzeProfileHandler(svc *services.AnalysisService) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := c.Param("username")
		refresh, _ := strconv.ParseBool(c.DefaultQuery("refresh", "false"))

		resp, err := svc.AnalyzeProfile(c.Request.Context(), username, refresh)
		if err != nil {
			if errors.Is(err, services.ErrProfileUnavailable) {
				c.JSON(http.StatusNotFound, dto.ErrorResponseDTO{Error: "profile_not_found"})
				return
			}
			c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: err.Error()})
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

// OptimizeHandler godoc
// @Summary      Generate optimized variants
// @Description  Produce conservative and aggressive rewrites of a draft, each re-scored against the same profile
// @Tags         post
// @Accept       json
// @Produce      json
// @Param        body  body  dto.OptimizeRequest  true  "Draft to optimize"
// @Success      200  {object}  dto.OptimizeResponse
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      500  {object}  dto.ErrorResponseDTO
// @Router       /post/optimize [post]
func OptimizeHandler(svc *services.OptimizeService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.OptimizeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: err.Error()})
			return
		}

		resp, err := svc.Optimize(c.Request.Context(), services.OptimizeInput{
			Content:     req.Content,
			Username:    req.Username,
			TargetScore: req.TargetScore,
			MediaType:   engine.ParseMediaType(req.MediaType),
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: err.Error()})
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

// ApplyTipsHandler godoc
// @Summary      Apply selected quick tips
// @Description  Apply up to three quick tips from a previous analysis to the draft and re-score the result
// @Tags         post
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ApplyTipsRequest  true  "Draft and selected tip ids"
// @Success      200  {object}  dto.ApplyTipsResponse
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      500  {object}  dto.ErrorResponseDTO
// @Router       /post/apply-tips [post]
func ApplyTipsHandler(svc *services.OptimizeService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.ApplyTipsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: err.Error()})
			return
		}

		resp, err := svc.ApplyTips(c.Request.Context(), services.ApplyTipsInput{
			Content:      req.Content,
			Username:     req.Username,
			MediaType:    engine.ParseMediaType(req.MediaType),
			SelectedTips: req.SelectedTips,
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: err.Error()})
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

// AdviceHandler godoc
// @Summary      Get improvement advice
// @Description  Generate persona-aware suggestions for a draft, cache-first with a rule-based fallback
// @Tags         advice
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AdviceRequest  true  "Draft to advise on"
// @Success      200  {object}  dto.AdviceResponse
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      500  {object}  dto.ErrorResponseDTO
// @Router       /advice [post]
func AdviceHandler(svc *services.AdviceService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.AdviceRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: err.Error()})
			return
		}

		resp, err := svc.Advise(c.Request.Context(), services.AdviceInput{
			Username:      req.Username,
			Content:       req.Content,
			PostType:      engine.ParsePostType(req.PostType),
			MediaType:     engine.ParseMediaType(req.MediaType),
			TargetPostURL: req.TargetPostURL,
			PersonaID:     req.PersonaID,
			Language:      req.Language,
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: err.Error()})
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

// PersonasHandler godoc
// @Summary      List advice personas
// @Description  List the response personas available for the advice endpoint
// @Tags         advice
// @Produce      json
// @Success      200  {array}  advisor.Persona
// @Router       /advice/personas [get]
func PersonasHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, advisor.Personas())
	}
}

// OpportunityHandler godoc
// @Summary      Analyze a reply opportunity
// @Description  Classify a target post's freshness, virality and reply competition, and score the reply opportunity
// @Tags         post
// @Produce      json
// @Param        url  query  string  true  "Target post URL (https://x.com/user/status/id)"
// @Success      200  {object}  dto.OpportunityResponse
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Failure      500  {object}  dto.ErrorResponseDTO
// @Router       /opportunity [get]
func OpportunityHandler(svc *services.AnalysisService) gin.HandlerFunc {
	return func(c *gin.Context) {
		postURL := c.Query("url")
		if postURL == "" {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "url query parameter is required"})
			return
		}
		if _, _, err := selaclient.ParsePostURL(postURL); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid post url"})
			return
		}

		resp, err := svc.TargetOpportunity(c.Request.Context(), postURL)
		if err != nil {
			if errors.Is(err, selaclient.ErrPostNotFound) {
				c.JSON(http.StatusNotFound, dto.ErrorResponseDTO{Error: "post_not_found"})
				return
			}
			c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: err.Error()})
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}
