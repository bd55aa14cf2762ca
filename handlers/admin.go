package handlers

import (
	"net/http"

	"meydancha/models"
	adminSvc "meydancha/services/admin"

	"github.com/gin-gonic/gin"
)

// ListUsersHandler returns every platform account.
func ListUsersHandler(svc adminSvc.AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		users, err := svc.ListUsers(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, users)
	}
}

// ListPendingOwnersHandler returns owner accounts awaiting approval.
func ListPendingOwnersHandler(svc adminSvc.AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		owners, err := svc.ListPendingOwners(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, owners)
	}
}

// SetOwnerStatusHandler approves or rejects a pending owner.
func SetOwnerStatusHandler(svc adminSvc.AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Status string `json:"status" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		u, err := svc.SetOwnerStatus(c.Request.Context(), c.Param("id"), req.Status)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, u)
	}
}

// ListComplaintsHandler returns complaints, optionally filtered by status.
func ListComplaintsHandler(svc adminSvc.AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := c.DefaultQuery("status", models.ComplaintStatusOpen)
		complaints, err := svc.ListComplaints(c.Request.Context(), status)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, complaints)
	}
}

// ResolveComplaintHandler closes a complaint with a resolution note.
func ResolveComplaintHandler(svc adminSvc.AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Status     string `json:"status" binding:"required"`
			Resolution string `json:"resolution"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		complaint, err := svc.ResolveComplaint(c.Request.Context(), c.Param("id"), req.Status, req.Resolution)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, complaint)
	}
}

// SetFieldBlockedHandler blocks or restores a field.
func SetFieldBlockedHandler(svc adminSvc.AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Blocked *bool  `json:"blocked" binding:"required"`
			Reason  string `json:"reason"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		if err := svc.SetFieldBlocked(c.Request.Context(), c.Param("id"), *req.Blocked, req.Reason); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "field block state updated"})
	}
}
