package handlers

import (
	"net/http"

	"meydancha/middleware"
	"meydancha/models"
	fieldSvc "meydancha/services/field"

	"github.com/gin-gonic/gin"
)

// ListFieldsHandler is the public venue search.
func ListFieldsHandler(svc fieldSvc.FieldService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var filter models.FieldFilter
		if err := c.ShouldBindQuery(&filter); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		fields, err := svc.List(c.Request.Context(), filter)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, fields)
	}
}

// GetFieldHandler returns one venue by ID.
func GetFieldHandler(svc fieldSvc.FieldService) gin.HandlerFunc {
	return func(c *gin.Context) {
		f, err := svc.GetByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, f)
	}
}

// CreateFieldHandler registers a new venue for the authenticated owner.
func CreateFieldHandler(svc fieldSvc.FieldService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.FieldCreateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		ownerID := c.GetString(middleware.ContextUserID)
		f, err := svc.Create(c.Request.Context(), ownerID, req)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, f)
	}
}

// UpdateFieldHandler modifies a venue.
func UpdateFieldHandler(svc fieldSvc.FieldService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.FieldUpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		f, err := svc.Update(c.Request.Context(), c.Param("id"),
			c.GetString(middleware.ContextUserID), c.GetString(middleware.ContextRole), req)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, f)
	}
}

// DeleteFieldHandler removes a venue.
func DeleteFieldHandler(svc fieldSvc.FieldService) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := svc.Delete(c.Request.Context(), c.Param("id"),
			c.GetString(middleware.ContextUserID), c.GetString(middleware.ContextRole))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "field deleted"})
	}
}

// ListOwnFieldsHandler returns the authenticated owner's venues.
func ListOwnFieldsHandler(svc fieldSvc.FieldService) gin.HandlerFunc {
	return func(c *gin.Context) {
		fields, err := svc.ListByOwner(c.Request.Context(), c.GetString(middleware.ContextUserID))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, fields)
	}
}
