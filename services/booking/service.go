package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	bookingRepo "meydancha/database/repository/booking"
	"meydancha/models"
	"meydancha/utils"

	"go.uber.org/zap"
)

// GetDaySchedule builds the display schedule: the generated slots for the
// day window, marked against existing bookings and the clock.
func (s *DefaultBookingService) GetDaySchedule(ctx context.Context, fieldID, date string) (*models.DaySchedule, error) {
	field, err := s.FieldRepo.GetByID(ctx, fieldID)
	if err != nil {
		return nil, err
	}

	if _, err := time.Parse(utils.DateFormat, truncateDate(date)); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}

	slots, err := GenerateSlots(s.Window)
	if err != nil {
		return nil, err
	}

	bookings, err := s.Repo.ListByFieldAndDate(ctx, fieldID, truncateDate(date))
	if err != nil {
		return nil, err
	}

	now := s.now()
	free := toSet(AvailableSlots(slots, date, bookings))
	upcoming := toSet(FilterPast(slots, date, now))

	schedule := &models.DaySchedule{
		FieldID:      fieldID,
		Date:         truncateDate(date),
		PricePerHour: field.PricePerHour,
		Slots:        make([]models.SlotStatus, 0, len(slots)),
	}
	for _, slot := range slots {
		taken := !free[slot]
		past := !upcoming[slot]
		schedule.Slots = append(schedule.Slots, models.SlotStatus{
			Slot:      slot,
			Taken:     taken,
			Past:      past,
			Available: !taken && !past,
		})
	}
	return schedule, nil
}

func toSet(slots []models.Slot) map[models.Slot]bool {
	set := make(map[models.Slot]bool, len(slots))
	for _, s := range slots {
		set[s] = true
	}
	return set
}

// Quote prices a candidate range without reserving it. The best active
// campaign covering the date is applied on top of the base price.
func (s *DefaultBookingService) Quote(ctx context.Context, req models.QuoteRequest) (*models.Quote, error) {
	field, err := s.FieldRepo.GetByID(ctx, req.FieldID)
	if err != nil {
		return nil, err
	}

	base, err := Price(field.PricePerHour, req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}

	quote := &models.Quote{
		FieldID:    req.FieldID,
		Date:       truncateDate(req.Date),
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		BasePrice:  base,
		TotalPrice: base,
	}

	campaign, err := s.bestCampaign(ctx, req.FieldID, quote.Date)
	if err != nil {
		utils.GetLogger().Warn("Quote: campaign lookup failed, pricing without discount",
			zap.String("fieldID", req.FieldID), zap.Error(err))
	} else if campaign != nil {
		quote.DiscountPercent = campaign.DiscountPercent
		quote.CampaignID = campaign.ID
		quote.TotalPrice = ApplyDiscount(base, campaign.DiscountPercent)
	}
	return quote, nil
}

// bestCampaign picks the highest active discount covering the date.
func (s *DefaultBookingService) bestCampaign(ctx context.Context, fieldID, date string) (*models.Campaign, error) {
	if s.CampaignRepo == nil {
		return nil, nil
	}
	campaigns, err := s.CampaignRepo.ActiveForDate(ctx, fieldID, date)
	if err != nil {
		return nil, err
	}
	var best *models.Campaign
	for i := range campaigns {
		c := &campaigns[i]
		if best == nil || c.DiscountPercent > best.DiscountPercent {
			best = c
		}
	}
	return best, nil
}

// CreateBooking validates the requested range against the day window and
// the clock, prices it, and hands the overlap decision to the repository's
// transactional insert. Passing the availability check here is never enough
// on its own: the repository is the arbiter under concurrency.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, userID string, req models.BookingRequest) (*models.Booking, error) {
	logger := utils.GetLogger()

	field, err := s.FieldRepo.GetByID(ctx, req.FieldID)
	if err != nil {
		return nil, err
	}
	if field.Blocked {
		return nil, ErrFieldBlocked
	}

	start, err := ParseClock(req.StartTime)
	if err != nil {
		return nil, err
	}
	end, err := ParseClock(req.EndTime)
	if err != nil {
		return nil, err
	}
	if end <= start {
		return nil, fmt.Errorf("%w: %s..%s", ErrInvalidRange, req.StartTime, req.EndTime)
	}
	if start < s.Window.OpenHour*60 || end > s.Window.CloseHour*60 {
		return nil, fmt.Errorf("%w: %s..%s", ErrOutsideWindow, req.StartTime, req.EndTime)
	}
	if start%60 != 0 || end%60 != 0 {
		return nil, fmt.Errorf("%w: bookings start and end on the hour", ErrInvalidRange)
	}

	now := s.now()
	past, err := IsPast(req.Date, req.StartTime, now)
	if err != nil {
		return nil, err
	}
	if past {
		return nil, ErrPastTime
	}

	quote, err := s.Quote(ctx, models.QuoteRequest{
		FieldID:   req.FieldID,
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	})
	if err != nil {
		return nil, err
	}

	b := &models.Booking{
		FieldID:         req.FieldID,
		UserID:          userID,
		Date:            truncateDate(req.Date),
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
		TotalPrice:      quote.TotalPrice,
		Status:          models.BookingStatusConfirmed,
		ReminderEnabled: req.ReminderEnabled,
		CampaignID:      quote.CampaignID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.Repo.CreateIfFree(ctx, b); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingConflict) {
			return nil, ErrSlotTaken
		}
		return nil, err
	}

	if b.ReminderEnabled {
		s.scheduleReminder(b, field.Name, now)
	}

	logger.Info("booking created",
		zap.String("bookingID", b.ID),
		zap.String("fieldID", b.FieldID),
		zap.String("date", b.Date),
		zap.String("range", b.StartTime+".."+b.EndTime))
	return b, nil
}

// scheduleReminder enqueues the reminder task. A failure here never fails
// the booking itself.
func (s *DefaultBookingService) scheduleReminder(b *models.Booking, fieldName string, now time.Time) {
	if s.Scheduler == nil {
		return
	}
	startMin, err := ParseClock(b.StartTime)
	if err != nil {
		return
	}
	at, err := slotInstant(b.Date, startMin, now.Location())
	if err != nil {
		return
	}
	fireAt := at.Add(-s.ReminderLead)
	if !fireAt.After(now) {
		return
	}

	payload := models.ReminderPayload{
		BookingID: b.ID,
		UserID:    b.UserID,
		FieldName: fieldName,
		Date:      b.Date,
		StartTime: b.StartTime,
	}
	if err := s.Scheduler.ScheduleReminder(payload, fireAt); err != nil {
		utils.GetLogger().Error("failed to schedule booking reminder",
			zap.String("bookingID", b.ID), zap.Error(err))
	}
}

func (s *DefaultBookingService) CancelBooking(ctx context.Context, id, actorID, actorRole string) (*models.Booking, error) {
	b, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !s.cancelAllowed(ctx, b, actorID, actorRole) {
		return nil, ErrNotAllowed
	}
	if b.Status != models.BookingStatusConfirmed {
		return nil, ErrInvalidState
	}

	updated, err := s.Repo.UpdateStatus(ctx, id, models.BookingStatusCancelled)
	if err != nil {
		return nil, err
	}

	utils.GetLogger().Info("booking cancelled",
		zap.String("bookingID", id), zap.String("by", actorID))
	return updated, nil
}

func (s *DefaultBookingService) cancelAllowed(ctx context.Context, b *models.Booking, actorID, actorRole string) bool {
	if actorRole == models.RoleAdmin || b.UserID == actorID {
		return true
	}
	field, err := s.FieldRepo.GetByID(ctx, b.FieldID)
	if err != nil {
		return false
	}
	return field.OwnerID == actorID
}

func (s *DefaultBookingService) ListUserBookings(ctx context.Context, userID string) ([]models.Booking, error) {
	return s.Repo.ListByUser(ctx, userID)
}

// ListFieldBookings restricts the field view to its owner and admins.
func (s *DefaultBookingService) ListFieldBookings(ctx context.Context, fieldID, actorID, actorRole string) ([]models.Booking, error) {
	field, err := s.FieldRepo.GetByID(ctx, fieldID)
	if err != nil {
		return nil, err
	}
	if actorRole != models.RoleAdmin && field.OwnerID != actorID {
		return nil, ErrNotAllowed
	}
	return s.Repo.ListByField(ctx, fieldID)
}
