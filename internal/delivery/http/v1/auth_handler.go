package v1

import (
	"net/http"

	"go-care-backend/internal/delivery/http/response"
	"go-care-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUC domain.AuthUsecase
}

func NewAuthHandler(protected *gin.RouterGroup, authUC domain.AuthUsecase) {
	handler := &AuthHandler{authUC: authUC}

	auth := protected.Group("/auth")
	{
		auth.POST("/session", handler.SyncSession)
		auth.GET("/me", handler.Me)
	}
}

// SyncSession godoc
// @Summary      Sync Supabase session
// @Description  Upsert the authenticated Supabase user into the local database
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /auth/session [post]
func (h *AuthHandler) SyncSession(c *gin.Context) {
	user := &domain.User{
		ID:    c.GetString(string(domain.KeyUserID)),
		Email: c.GetString(string(domain.KeyUserEmail)),
		Role:  c.GetString(string(domain.KeyUserRole)),
	}

	if err := h.authUC.EnsureUserExists(c, user); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Session synced", user)
}

// Me godoc
// @Summary      Current user
// @Description  Returns the authenticated user's local record
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	user, err := h.authUC.GetCurrentUser(c, userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "User details", user)
}
