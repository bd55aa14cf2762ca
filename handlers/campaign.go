package handlers

import (
	"net/http"

	"meydancha/middleware"
	"meydancha/models"
	campaignSvc "meydancha/services/campaign"

	"github.com/gin-gonic/gin"
)

// CreateCampaignHandler registers a discount campaign for an owned field.
func CreateCampaignHandler(svc campaignSvc.CampaignService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.CampaignRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		campaign, err := svc.Create(c.Request.Context(), c.GetString(middleware.ContextUserID), req)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, campaign)
	}
}

// ListFieldCampaignsHandler returns a field's campaigns.
func ListFieldCampaignsHandler(svc campaignSvc.CampaignService) gin.HandlerFunc {
	return func(c *gin.Context) {
		campaigns, err := svc.ListByField(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, campaigns)
	}
}

// ListOwnCampaignsHandler returns the caller's campaigns across fields.
func ListOwnCampaignsHandler(svc campaignSvc.CampaignService) gin.HandlerFunc {
	return func(c *gin.Context) {
		campaigns, err := svc.ListByOwner(c.Request.Context(), c.GetString(middleware.ContextUserID))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, campaigns)
	}
}

// SetCampaignActiveHandler toggles a campaign on or off.
func SetCampaignActiveHandler(svc campaignSvc.CampaignService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Active *bool `json:"active" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		campaign, err := svc.SetActive(c.Request.Context(), c.Param("id"),
			c.GetString(middleware.ContextUserID), c.GetString(middleware.ContextRole), *req.Active)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, campaign)
	}
}

// DeleteCampaignHandler removes a campaign.
func DeleteCampaignHandler(svc campaignSvc.CampaignService) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := svc.Delete(c.Request.Context(), c.Param("id"),
			c.GetString(middleware.ContextUserID), c.GetString(middleware.ContextRole))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "campaign deleted"})
	}
}
