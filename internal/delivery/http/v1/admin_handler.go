package v1

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"go-care-backend/internal/delivery/http/response"
	"go-care-backend/internal/domain"
	"go-care-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	adminUC domain.AdminUsecase
	authUC  domain.AuthUsecase
}

func NewAdminHandler(protected *gin.RouterGroup, adminUC domain.AdminUsecase, authUC domain.AuthUsecase) {
	handler := &AdminHandler{adminUC: adminUC, authUC: authUC}

	admin := protected.Group("/admin")
	{
		admin.GET("/carers", handler.ListCarers)
		admin.POST("/carers/:id/approve", handler.ApproveCarer)
		admin.POST("/carers/:id/reject", handler.RejectCarer)
		admin.PUT("/users/:id/role", handler.AssignRole)
		admin.GET("/matches/export", handler.ExportMatches)
	}
}

// ListCarers godoc
// @Summary      List carers by approval status
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        status    query     string  false  "Approval status (pending, approved, rejected)"
// @Param        page      query     int     false  "Page number"
// @Param        pageSize  query     int     false  "Items per page"
// @Success      200       {object}  response.Response
// @Failure      403       {object}  response.Response
// @Router       /admin/carers [get]
func (h *AdminHandler) ListCarers(c *gin.Context) {
	status := c.Query("status")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))

	carers, total, err := h.adminUC.ListCarers(c, status, page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Carers", gin.H{
		"items": carers,
		"total": total,
		"page":  page,
	})
}

// ApproveCarer godoc
// @Summary      Approve a carer
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Carer user ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /admin/carers/{id}/approve [post]
func (h *AdminHandler) ApproveCarer(c *gin.Context) {
	if err := h.adminUC.ApproveCarer(c, c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Carer approved", nil)
}

// RejectCarer godoc
// @Summary      Reject a carer
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Carer user ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /admin/carers/{id}/reject [post]
func (h *AdminHandler) RejectCarer(c *gin.Context) {
	if err := h.adminUC.RejectCarer(c, c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Carer rejected", nil)
}

type assignRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=family carer admin"`
}

// AssignRole godoc
// @Summary      Assign a user role
// @Description  Set a user's role (family, carer or admin)
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "User ID"
// @Param        role  body      assignRoleRequest  true  "New role"
// @Success      200   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /admin/users/{id}/role [put]
func (h *AdminHandler) AssignRole(c *gin.Context) {
	var req assignRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	if err := h.authUC.AssignRole(c, c.Param("id"), req.Role); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Role updated", nil)
}

// ExportMatches godoc
// @Summary      Export match report
// @Description  Download every match on the platform as an XLSX workbook
// @Tags         admin
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security     BearerAuth
// @Success      200  {file}    file
// @Failure      403  {object}  response.Response
// @Router       /admin/matches/export [get]
func (h *AdminHandler) ExportMatches(c *gin.Context) {
	data, err := h.adminUC.ExportMatchReport(c)
	if err != nil {
		c.Error(err)
		return
	}

	filename := fmt.Sprintf("match-report-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
