package handlers

import (
	"errors"
	"net/http"

	bookingRepoPkg "meydancha/database/repository/booking"
	campaignRepoPkg "meydancha/database/repository/campaign"
	complaintRepoPkg "meydancha/database/repository/complaint"
	fieldRepoPkg "meydancha/database/repository/field"
	notificationRepoPkg "meydancha/database/repository/notification"
	reviewRepoPkg "meydancha/database/repository/review"
	userRepoPkg "meydancha/database/repository/user"
	adminSvc "meydancha/services/admin"
	bookingSvc "meydancha/services/booking"
	campaignSvc "meydancha/services/campaign"
	fieldSvc "meydancha/services/field"
	reviewSvc "meydancha/services/review"
	userSvc "meydancha/services/user"

	"github.com/gin-gonic/gin"
)

// statusFor maps service and repository errors to HTTP status codes.
// Anything unmapped is an internal error.
func statusFor(err error) int {
	switch {
	case errors.Is(err, bookingSvc.ErrSlotTaken):
		return http.StatusConflict
	case errors.Is(err, userSvc.ErrEmailTaken),
		errors.Is(err, reviewSvc.ErrAlreadyReviewed):
		return http.StatusConflict
	case errors.Is(err, bookingSvc.ErrInvalidRange),
		errors.Is(err, bookingSvc.ErrInvalidTimeFormat),
		errors.Is(err, bookingSvc.ErrInvalidDate),
		errors.Is(err, bookingSvc.ErrPastTime),
		errors.Is(err, bookingSvc.ErrOutsideWindow),
		errors.Is(err, bookingSvc.ErrInvalidState),
		errors.Is(err, fieldSvc.ErrInvalidPrice),
		errors.Is(err, campaignSvc.ErrInvalidDiscount),
		errors.Is(err, campaignSvc.ErrInvalidDateRange),
		errors.Is(err, reviewSvc.ErrInvalidRating),
		errors.Is(err, userSvc.ErrInvalidRole),
		errors.Is(err, adminSvc.ErrInvalidStatus):
		return http.StatusBadRequest
	case errors.Is(err, userSvc.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, bookingSvc.ErrNotAllowed),
		errors.Is(err, bookingSvc.ErrFieldBlocked),
		errors.Is(err, fieldSvc.ErrNotAllowed),
		errors.Is(err, fieldSvc.ErrOwnerNotApproved),
		errors.Is(err, campaignSvc.ErrNotAllowed),
		errors.Is(err, reviewSvc.ErrNotAllowed),
		errors.Is(err, reviewSvc.ErrNoPastBooking):
		return http.StatusForbidden
	case errors.Is(err, bookingRepoPkg.ErrBookingNotFound),
		errors.Is(err, fieldRepoPkg.ErrFieldNotFound),
		errors.Is(err, userRepoPkg.ErrUserNotFound),
		errors.Is(err, reviewRepoPkg.ErrReviewNotFound),
		errors.Is(err, campaignRepoPkg.ErrCampaignNotFound),
		errors.Is(err, complaintRepoPkg.ErrComplaintNotFound),
		errors.Is(err, notificationRepoPkg.ErrNotificationNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes the error with its mapped status. Internal errors
// are masked with a generic message.
func respondError(c *gin.Context, err error) {
	status := statusFor(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = "internal error, please try again"
	}
	c.JSON(status, gin.H{"error": msg})
}
