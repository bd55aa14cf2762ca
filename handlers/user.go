package handlers

import (
	"net/http"

	"meydancha/middleware"
	"meydancha/models"
	userSvc "meydancha/services/user"
	"meydancha/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RegisterUserHandler creates a new account and returns a session token.
func RegisterUserHandler(svc userSvc.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.UserRegistrationRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		resp, err := svc.Register(c.Request.Context(), req)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, resp)
	}
}

// SignInHandler verifies credentials and returns a fresh session token.
func SignInHandler(svc userSvc.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Email    string `json:"email" binding:"required,email"`
			Password string `json:"password" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		resp, err := svc.SignIn(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

// SignOutHandler revokes the caller's session.
func SignOutHandler(svc userSvc.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString(middleware.ContextUserID)
		if err := svc.SignOut(c.Request.Context(), userID); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "signed out"})
	}
}

// GetProfileHandler returns the authenticated user's profile.
func GetProfileHandler(svc userSvc.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString(middleware.ContextUserID)
		profile, err := svc.GetProfile(c.Request.Context(), userID)
		if err != nil {
			utils.GetLogger().Error("failed to load profile",
				zap.String("userID", userID), zap.Error(err))
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, profile)
	}
}

// UpdateProfileHandler updates the authenticated user's profile.
func UpdateProfileHandler(svc userSvc.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.UserUpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		userID := c.GetString(middleware.ContextUserID)
		updated, err := svc.UpdateProfile(c.Request.Context(), userID, req)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

// ChangePasswordHandler replaces the password and revokes the session.
func ChangePasswordHandler(svc userSvc.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			CurrentPassword string `json:"currentPassword" binding:"required"`
			NewPassword     string `json:"newPassword" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		userID := c.GetString(middleware.ContextUserID)
		if err := svc.ChangePassword(c.Request.Context(), userID, req.CurrentPassword, req.NewPassword); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "password changed, please sign in again"})
	}
}

// DeleteAccountHandler removes the caller's account.
func DeleteAccountHandler(svc userSvc.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString(middleware.ContextUserID)
		if err := svc.DeleteAccount(c.Request.Context(), userID); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "account deleted"})
	}
}
