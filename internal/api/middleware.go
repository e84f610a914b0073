package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ferndale-labs/hotel-management-backend/internal/auth"
	"github.com/ferndale-labs/hotel-management-backend/internal/staff"
)

// requireRole looks up the authenticated staff member and checks the
// given predicate against their role. It MUST be used after
// auth.AuthRequired middleware.
func requireRole(staffService staff.Service, allowed func(staff.Role) bool, message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		staffID := auth.GetStaffID(c)
		if staffID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		st, err := staffService.GetByID(c.Request.Context(), staffID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "staff member not found"})
			return
		}

		if !st.IsActive {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden: account is inactive"})
			return
		}

		if !allowed(st.Role) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": message})
			return
		}

		c.Next()
	}
}

// RequireAdmin restricts the route to admins.
func RequireAdmin(staffService staff.Service) gin.HandlerFunc {
	return requireRole(staffService, func(r staff.Role) bool {
		return r == staff.RoleAdmin
	}, "forbidden: admin access required")
}

// RequireFrontDesk restricts the route to roles that manage guests and bookings.
func RequireFrontDesk(staffService staff.Service) gin.HandlerFunc {
	return requireRole(staffService, staff.Role.CanManageBookings, "forbidden: front desk access required")
}

// RequireHousekeeping restricts the route to roles that manage cleaning and maintenance.
func RequireHousekeeping(staffService staff.Service) gin.HandlerFunc {
	return requireRole(staffService, staff.Role.CanManageHousekeeping, "forbidden: housekeeping access required")
}
