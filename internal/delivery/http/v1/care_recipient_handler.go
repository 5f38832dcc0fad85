package v1

import (
	"net/http"

	"go-care-backend/internal/delivery/http/response"
	"go-care-backend/internal/domain"
	"go-care-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type CareRecipientHandler struct {
	recipientUC domain.CareRecipientUsecase
}

func NewCareRecipientHandler(protected *gin.RouterGroup, recipientUC domain.CareRecipientUsecase) {
	handler := &CareRecipientHandler{recipientUC: recipientUC}

	recipients := protected.Group("/care-recipients")
	{
		recipients.POST("", handler.Create)
		recipients.GET("", handler.List)
	}
}

// Create godoc
// @Summary      Create care recipient
// @Description  Register the person who will receive care
// @Tags         care-recipients
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        recipient  body      domain.CareRecipient  true  "Care recipient"
// @Success      201        {object}  response.Response
// @Failure      400        {object}  response.Response
// @Router       /care-recipients [post]
func (h *CareRecipientHandler) Create(c *gin.Context) {
	if !requireRole(c, domain.RoleFamily) {
		return
	}

	var recipient domain.CareRecipient
	if err := c.ShouldBindJSON(&recipient); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	if err := h.recipientUC.CreateRecipient(c, currentUserID(c), &recipient); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Care recipient created", recipient)
}

// List godoc
// @Summary      List care recipients
// @Tags         care-recipients
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Router       /care-recipients [get]
func (h *CareRecipientHandler) List(c *gin.Context) {
	if !requireRole(c, domain.RoleFamily) {
		return
	}

	recipients, err := h.recipientUC.ListRecipients(c, currentUserID(c))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Care recipients", recipients)
}
