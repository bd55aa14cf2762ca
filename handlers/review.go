package handlers

import (
	"net/http"

	"meydancha/middleware"
	"meydancha/models"
	reviewSvc "meydancha/services/review"

	"github.com/gin-gonic/gin"
)

// CreateReviewHandler records the caller's review of a field.
func CreateReviewHandler(svc reviewSvc.ReviewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.ReviewRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		rv, err := svc.Create(c.Request.Context(), c.GetString(middleware.ContextUserID), req)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, rv)
	}
}

// ListFieldReviewsHandler returns all reviews of one field.
func ListFieldReviewsHandler(svc reviewSvc.ReviewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		reviews, err := svc.ListByField(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, reviews)
	}
}

// DeleteReviewHandler removes a review.
func DeleteReviewHandler(svc reviewSvc.ReviewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := svc.Delete(c.Request.Context(), c.Param("id"),
			c.GetString(middleware.ContextUserID), c.GetString(middleware.ContextRole))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "review deleted"})
	}
}
