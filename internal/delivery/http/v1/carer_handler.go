package v1

import (
	"net/http"

	"go-care-backend/internal/delivery/http/response"
	"go-care-backend/internal/domain"
	"go-care-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type CarerHandler struct {
	carerUC domain.CarerUsecase
}

func NewCarerHandler(protected *gin.RouterGroup, carerUC domain.CarerUsecase) {
	handler := &CarerHandler{carerUC: carerUC}

	carers := protected.Group("/carers")
	{
		carers.GET("/me", handler.MyProfile)
		carers.PUT("/me", handler.UpdateProfile)
		// Family-facing profile view; only approved carers resolve
		carers.GET("/:id", handler.PublicProfile)
	}
}

// MyProfile godoc
// @Summary      Own carer profile
// @Tags         carers
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /carers/me [get]
func (h *CarerHandler) MyProfile(c *gin.Context) {
	if !requireRole(c, domain.RoleCarer) {
		return
	}

	carer, err := h.carerUC.GetProfile(c, currentUserID(c))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Carer profile", carer)
}

// UpdateProfile godoc
// @Summary      Update carer profile
// @Description  Upsert the carer's profile, specializations and rates. First save creates the profile in pending approval state.
// @Tags         carers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        profile  body      domain.Carer  true  "Carer profile"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Router       /carers/me [put]
func (h *CarerHandler) UpdateProfile(c *gin.Context) {
	if !requireRole(c, domain.RoleCarer) {
		return
	}

	var carer domain.Carer
	if err := c.ShouldBindJSON(&carer); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	if err := h.carerUC.UpdateProfile(c, &carer); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Carer profile saved", carer)
}

// PublicProfile godoc
// @Summary      View a carer profile
// @Description  Approved carers only; pending or rejected profiles 404
// @Tags         carers
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Carer user ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /carers/{id} [get]
func (h *CarerHandler) PublicProfile(c *gin.Context) {
	carer, err := h.carerUC.GetPublicProfile(c, c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Carer profile", carer)
}
