package v1

import (
	"net/http"
	"strconv"

	"go-care-backend/internal/delivery/http/middleware"
	"go-care-backend/internal/delivery/http/response"
	"go-care-backend/internal/domain"
	"go-care-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type CareRequestHandler struct {
	requestUC  domain.CareRequestUsecase
	matchingUC domain.MatchingUsecase
}

func NewCareRequestHandler(protected *gin.RouterGroup, requestUC domain.CareRequestUsecase, matchingUC domain.MatchingUsecase) {
	handler := &CareRequestHandler{
		requestUC:  requestUC,
		matchingUC: matchingUC,
	}

	requests := protected.Group("/care-requests")
	{
		requests.POST("", handler.Create)
		requests.GET("", handler.List)
		requests.GET("/:id", handler.Get)
		// Running the engine writes matches and notifies carers, so the
		// trigger gets its own strict per-user limit.
		requests.POST("/:id/matches", middleware.RateLimitMiddleware(middleware.MatchRunRateLimitConfig()), handler.RunMatching)
		requests.GET("/:id/matches", handler.ListMatches)
	}
}

// Create godoc
// @Summary      Create care request
// @Description  Create a care request for one of the family's care recipients
// @Tags         care-requests
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      domain.CareRequest  true  "Care request"
// @Success      201      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      403      {object}  response.Response
// @Router       /care-requests [post]
func (h *CareRequestHandler) Create(c *gin.Context) {
	if !requireRole(c, domain.RoleFamily) {
		return
	}

	var req domain.CareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	if err := h.requestUC.CreateRequest(c, currentUserID(c), &req); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Care request created", req)
}

// List godoc
// @Summary      List care requests
// @Description  Returns the family's care requests, newest first
// @Tags         care-requests
// @Produce      json
// @Security     BearerAuth
// @Param        page      query     int  false  "Page number"
// @Param        pageSize  query     int  false  "Items per page"
// @Success      200       {object}  response.Response
// @Router       /care-requests [get]
func (h *CareRequestHandler) List(c *gin.Context) {
	if !requireRole(c, domain.RoleFamily) {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))

	requests, total, err := h.requestUC.ListRequests(c, currentUserID(c), page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Care requests", gin.H{
		"items": requests,
		"total": total,
		"page":  page,
	})
}

// Get godoc
// @Summary      Get care request
// @Tags         care-requests
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Care request ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /care-requests/{id} [get]
func (h *CareRequestHandler) Get(c *gin.Context) {
	if !requireRole(c, domain.RoleFamily) {
		return
	}

	req, err := h.requestUC.GetRequest(c, currentUserID(c), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Care request", req)
}

// RunMatching godoc
// @Summary      Run matching engine
// @Description  Score eligible carers for the request and persist the ranked shortlist. Idempotent: re-running returns the existing shortlist.
// @Tags         care-requests
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Care request ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /care-requests/{id}/matches [post]
func (h *CareRequestHandler) RunMatching(c *gin.Context) {
	if !requireRole(c, domain.RoleFamily) {
		return
	}

	// Ownership check before the engine runs
	requestID := c.Param("id")
	if _, err := h.requestUC.GetRequest(c, currentUserID(c), requestID); err != nil {
		c.Error(err)
		return
	}

	matches, err := h.matchingUC.FindMatches(c, requestID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Matching complete", gin.H{
		"items": matches,
		"total": len(matches),
	})
}

// ListMatches godoc
// @Summary      List matches for a care request
// @Tags         care-requests
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Care request ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /care-requests/{id}/matches [get]
func (h *CareRequestHandler) ListMatches(c *gin.Context) {
	if !requireRole(c, domain.RoleFamily) {
		return
	}

	matches, err := h.matchingUC.ListMatches(c, currentUserID(c), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Matches", gin.H{
		"items": matches,
		"total": len(matches),
	})
}
