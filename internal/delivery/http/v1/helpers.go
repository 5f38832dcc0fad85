package v1

import (
	"go-care-backend/internal/domain"
	"go-care-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

func currentUserID(c *gin.Context) string {
	return c.GetString(string(domain.KeyUserID))
}

func currentRole(c *gin.Context) string {
	return c.GetString(string(domain.KeyUserRole))
}

// requireRole aborts with 403 unless the authenticated user has one of the
// given roles. Returns false when aborted.
func requireRole(c *gin.Context, roles ...string) bool {
	role := currentRole(c)
	for _, r := range roles {
		if role == r {
			return true
		}
	}
	c.Error(apperror.Forbidden("Insufficient permissions for this resource"))
	return false
}
