package handlers

import (
	"net/http"

	"meydancha/middleware"
	"meydancha/models"
	complaintSvc "meydancha/services/complaint"
	notificationSvc "meydancha/services/notification"

	"github.com/gin-gonic/gin"
)

// CreateComplaintHandler files a complaint against a field.
func CreateComplaintHandler(svc complaintSvc.ComplaintService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.ComplaintRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		complaint, err := svc.Create(c.Request.Context(), c.GetString(middleware.ContextUserID), req)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, complaint)
	}
}

// ListOwnComplaintsHandler returns the caller's filed complaints.
func ListOwnComplaintsHandler(svc complaintSvc.ComplaintService) gin.HandlerFunc {
	return func(c *gin.Context) {
		complaints, err := svc.ListMine(c.Request.Context(), c.GetString(middleware.ContextUserID))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, complaints)
	}
}

// ListNotificationsHandler returns the caller's in-app notifications.
func ListNotificationsHandler(svc notificationSvc.NotificationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		notifications, err := svc.ListForUser(c.Request.Context(), c.GetString(middleware.ContextUserID))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, notifications)
	}
}

// MarkNotificationReadHandler marks one of the caller's notifications read.
func MarkNotificationReadHandler(svc notificationSvc.NotificationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := svc.MarkRead(c.Request.Context(), c.Param("id"), c.GetString(middleware.ContextUserID))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "notification read"})
	}
}
