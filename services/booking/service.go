package booking

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"eraflix/models"
	"eraflix/services/apperr"
	"eraflix/services/availability"
	"eraflix/services/catalog"
	"eraflix/utils"
)

// CreateBooking stores a pending booking for an available slot window and
// opens a payment intent for it. The slot window is copied by value so later
// catalog edits never rewrite the booking.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, req models.CreateBookingRequest) (*CreateBookingResult, error) {
	day, err := catalog.ValidateDate(req.Date)
	if err != nil {
		return nil, err
	}

	screen, err := s.Venues.GetScreenByID(ctx, req.ScreenID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperr.NewNotFoundError("screen", req.ScreenID)
		}
		return nil, fmt.Errorf("failed to fetch screen: %w", err)
	}
	if !screen.Active {
		return nil, apperr.NewConflictError("screen is not open for booking")
	}

	slot, err := s.Slots.GetByID(ctx, req.SlotID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperr.NewNotFoundError("slot", req.SlotID)
		}
		return nil, fmt.Errorf("failed to fetch slot: %w", err)
	}
	if slot.ScreenID != req.ScreenID {
		return nil, apperr.NewValidationError("slotId", "slot does not belong to the requested screen")
	}

	open, err := s.Resolver.AvailableSlots(ctx, req.ScreenID, req.Date)
	if err != nil {
		return nil, err
	}
	if !containsSlot(open, slot.ID) {
		return nil, apperr.NewConflictError(
			fmt.Sprintf("slot %s-%s on %s is no longer available", slot.Start, slot.End, req.Date))
	}

	hours, err := availability.DurationHours(slot.Start, slot.End)
	if err != nil {
		return nil, err
	}

	booking := models.Booking{
		ScreenID: req.ScreenID,
		Date:     day,
		Slot: models.SlotWindow{
			Start: slot.Start,
			End:   slot.End,
		},
		SlotName:      slot.Name,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		Guests:        req.Guests,
		TotalPrice:    screen.BasePrice * hours,
		Status:        models.BookingStatusPending,
	}

	id, err := s.Bookings.Create(ctx, booking)
	if err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}
	booking.ID = id

	result := &CreateBookingResult{Booking: booking}
	if s.Payments != nil && booking.TotalPrice > 0 {
		clientSecret, paymentID, err := s.Payments.CreateIntent(ctx, booking)
		if err != nil {
			return nil, fmt.Errorf("failed to open payment intent: %w", err)
		}
		if err := s.Bookings.SetPaymentID(ctx, booking.ID, paymentID); err != nil {
			return nil, fmt.Errorf("failed to attach payment to booking: %w", err)
		}
		booking.PaymentID = paymentID
		result.Booking = booking
		result.ClientSecret = clientSecret
	}
	return result, nil
}

// ConfirmBooking verifies payment and transitions the booking to confirmed.
// The partial unique index on (screen, date, window, confirmed) is the real
// double-booking guard: a duplicate-key here means another booking won the
// race and surfaces as a ConflictError.
func (s *DefaultBookingService) ConfirmBooking(ctx context.Context, bookingID string) (*models.Booking, error) {
	logger := utils.GetLogger()

	booking, err := s.getBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	switch booking.Status {
	case models.BookingStatusConfirmed:
		return booking, nil
	case models.BookingStatusCancelled:
		return nil, apperr.NewConflictError("booking has been cancelled")
	}

	if s.Payments != nil && booking.PaymentID != "" {
		paid, err := s.Payments.VerifyPaid(ctx, booking.PaymentID)
		if err != nil {
			return nil, fmt.Errorf("failed to verify payment: %w", err)
		}
		if !paid {
			return nil, apperr.NewConflictError("payment has not completed")
		}
	}

	if err := s.Bookings.UpdateStatus(ctx, bookingID, models.BookingStatusConfirmed); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, apperr.NewConflictError("another confirmed booking already covers this window")
		}
		if err == mongo.ErrNoDocuments {
			return nil, apperr.NewNotFoundError("booking", bookingID)
		}
		return nil, fmt.Errorf("failed to confirm booking: %w", err)
	}
	booking.Status = models.BookingStatusConfirmed

	if s.Tasks != nil {
		s.scheduleReminder(booking, logger)
	}
	return booking, nil
}

// CancelBooking transitions the booking to cancelled. Cancelling an already
// cancelled booking is a no-op.
func (s *DefaultBookingService) CancelBooking(ctx context.Context, bookingID string) (*models.Booking, error) {
	booking, err := s.getBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.Status == models.BookingStatusCancelled {
		return booking, nil
	}

	if err := s.Bookings.UpdateStatus(ctx, bookingID, models.BookingStatusCancelled); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperr.NewNotFoundError("booking", bookingID)
		}
		return nil, fmt.Errorf("failed to cancel booking: %w", err)
	}
	booking.Status = models.BookingStatusCancelled
	return booking, nil
}

func (s *DefaultBookingService) GetBooking(ctx context.Context, bookingID string) (*models.Booking, error) {
	return s.getBooking(ctx, bookingID)
}

// ListConfirmedBookings is the ledger read used by the availability engine's
// callers: confirmed bookings for the screen within the calendar day.
func (s *DefaultBookingService) ListConfirmedBookings(ctx context.Context, screenID string, day time.Time) ([]models.Booking, error) {
	bookings, err := s.Bookings.ListConfirmedByScreenAndDay(ctx, screenID, day)
	if err != nil {
		return nil, fmt.Errorf("failed to list confirmed bookings: %w", err)
	}
	return bookings, nil
}

// ListBookingsForDay returns bookings of every status for the admin view.
func (s *DefaultBookingService) ListBookingsForDay(ctx context.Context, screenID string, day time.Time) ([]models.Booking, error) {
	bookings, err := s.Bookings.ListByScreenAndDay(ctx, screenID, day)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return bookings, nil
}

func (s *DefaultBookingService) getBooking(ctx context.Context, bookingID string) (*models.Booking, error) {
	booking, err := s.Bookings.GetByID(ctx, bookingID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperr.NewNotFoundError("booking", bookingID)
		}
		return nil, fmt.Errorf("failed to fetch booking: %w", err)
	}
	return booking, nil
}

// scheduleReminder enqueues a reminder for 09:00 the day before the booking.
// Scheduling failures are logged, never surfaced: the booking is confirmed.
func (s *DefaultBookingService) scheduleReminder(booking *models.Booking, logger *zap.Logger) {
	d := booking.Date
	fireAt := time.Date(d.Year(), d.Month(), d.Day(), 9, 0, 0, 0, d.Location()).AddDate(0, 0, -1)
	if fireAt.Before(time.Now()) {
		return
	}

	payload := models.BookingReminderPayload{
		BookingID:     booking.ID,
		ScreenID:      booking.ScreenID,
		Date:          booking.Date.Format("2006-01-02"),
		Start:         booking.Slot.Start,
		CustomerEmail: booking.CustomerEmail,
		CustomerName:  booking.CustomerName,
	}
	if err := s.Tasks.ScheduleBookingReminder(payload, fireAt); err != nil {
		logger.Error("failed to schedule booking reminder",
			zap.String("bookingID", booking.ID), zap.Error(err))
	}
}

func containsSlot(slots []models.TimeSlot, slotID string) bool {
	for _, s := range slots {
		if s.ID == slotID {
			return true
		}
	}
	return false
}
