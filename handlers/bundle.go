package handlers

import (
	adminSvc "meydancha/services/admin"
	bookingSvc "meydancha/services/booking"
	campaignSvc "meydancha/services/campaign"
	complaintSvc "meydancha/services/complaint"
	fieldSvc "meydancha/services/field"
	notificationSvc "meydancha/services/notification"
	reviewSvc "meydancha/services/review"
	userSvc "meydancha/services/user"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups every endpoint handler into one struct for route
// registration.
type HandlerBundle struct {
	// User endpoints
	RegisterUserHandler   gin.HandlerFunc
	SignInHandler         gin.HandlerFunc
	SignOutHandler        gin.HandlerFunc
	GetProfileHandler     gin.HandlerFunc
	UpdateProfileHandler  gin.HandlerFunc
	ChangePasswordHandler gin.HandlerFunc
	DeleteAccountHandler  gin.HandlerFunc

	// Field endpoints
	ListFieldsHandler    gin.HandlerFunc
	GetFieldHandler      gin.HandlerFunc
	CreateFieldHandler   gin.HandlerFunc
	UpdateFieldHandler   gin.HandlerFunc
	DeleteFieldHandler   gin.HandlerFunc
	ListOwnFieldsHandler gin.HandlerFunc

	// Booking endpoints
	GetDayScheduleHandler    gin.HandlerFunc
	QuoteHandler             gin.HandlerFunc
	CreateBookingHandler     gin.HandlerFunc
	CancelBookingHandler     gin.HandlerFunc
	ListOwnBookingsHandler   gin.HandlerFunc
	ListFieldBookingsHandler gin.HandlerFunc

	// Review endpoints
	CreateReviewHandler     gin.HandlerFunc
	ListFieldReviewsHandler gin.HandlerFunc
	DeleteReviewHandler     gin.HandlerFunc

	// Campaign endpoints
	CreateCampaignHandler     gin.HandlerFunc
	ListFieldCampaignsHandler gin.HandlerFunc
	ListOwnCampaignsHandler   gin.HandlerFunc
	SetCampaignActiveHandler  gin.HandlerFunc
	DeleteCampaignHandler     gin.HandlerFunc

	// Complaint and notification endpoints
	CreateComplaintHandler      gin.HandlerFunc
	ListOwnComplaintsHandler    gin.HandlerFunc
	ListNotificationsHandler    gin.HandlerFunc
	MarkNotificationReadHandler gin.HandlerFunc

	// Admin endpoints
	ListUsersHandler         gin.HandlerFunc
	ListPendingOwnersHandler gin.HandlerFunc
	SetOwnerStatusHandler    gin.HandlerFunc
	ListComplaintsHandler    gin.HandlerFunc
	ResolveComplaintHandler  gin.HandlerFunc
	SetFieldBlockedHandler   gin.HandlerFunc
}

// Services collects the service implementations the bundle wraps.
type Services struct {
	User         userSvc.UserService
	Field        fieldSvc.FieldService
	Booking      bookingSvc.BookingService
	Review       reviewSvc.ReviewService
	Campaign     campaignSvc.CampaignService
	Complaint    complaintSvc.ComplaintService
	Notification notificationSvc.NotificationService
	Admin        adminSvc.AdminService
}

// NewHandlerBundle wires each endpoint to its service.
func NewHandlerBundle(s Services) *HandlerBundle {
	return &HandlerBundle{
		RegisterUserHandler:   RegisterUserHandler(s.User),
		SignInHandler:         SignInHandler(s.User),
		SignOutHandler:        SignOutHandler(s.User),
		GetProfileHandler:     GetProfileHandler(s.User),
		UpdateProfileHandler:  UpdateProfileHandler(s.User),
		ChangePasswordHandler: ChangePasswordHandler(s.User),
		DeleteAccountHandler:  DeleteAccountHandler(s.User),

		ListFieldsHandler:    ListFieldsHandler(s.Field),
		GetFieldHandler:      GetFieldHandler(s.Field),
		CreateFieldHandler:   CreateFieldHandler(s.Field),
		UpdateFieldHandler:   UpdateFieldHandler(s.Field),
		DeleteFieldHandler:   DeleteFieldHandler(s.Field),
		ListOwnFieldsHandler: ListOwnFieldsHandler(s.Field),

		GetDayScheduleHandler:    GetDayScheduleHandler(s.Booking),
		QuoteHandler:             QuoteHandler(s.Booking),
		CreateBookingHandler:     CreateBookingHandler(s.Booking),
		CancelBookingHandler:     CancelBookingHandler(s.Booking),
		ListOwnBookingsHandler:   ListOwnBookingsHandler(s.Booking),
		ListFieldBookingsHandler: ListFieldBookingsHandler(s.Booking),

		CreateReviewHandler:     CreateReviewHandler(s.Review),
		ListFieldReviewsHandler: ListFieldReviewsHandler(s.Review),
		DeleteReviewHandler:     DeleteReviewHandler(s.Review),

		CreateCampaignHandler:     CreateCampaignHandler(s.Campaign),
		ListFieldCampaignsHandler: ListFieldCampaignsHandler(s.Campaign),
		ListOwnCampaignsHandler:   ListOwnCampaignsHandler(s.Campaign),
		SetCampaignActiveHandler:  SetCampaignActiveHandler(s.Campaign),
		DeleteCampaignHandler:     DeleteCampaignHandler(s.Campaign),

		CreateComplaintHandler:      CreateComplaintHandler(s.Complaint),
		ListOwnComplaintsHandler:    ListOwnComplaintsHandler(s.Complaint),
		ListNotificationsHandler:    ListNotificationsHandler(s.Notification),
		MarkNotificationReadHandler: MarkNotificationReadHandler(s.Notification),

		ListUsersHandler:         ListUsersHandler(s.Admin),
		ListPendingOwnersHandler: ListPendingOwnersHandler(s.Admin),
		SetOwnerStatusHandler:    SetOwnerStatusHandler(s.Admin),
		ListComplaintsHandler:    ListComplaintsHandler(s.Admin),
		ResolveComplaintHandler:  ResolveComplaintHandler(s.Admin),
		SetFieldBlockedHandler:   SetFieldBlockedHandler(s.Admin),
	}
}
