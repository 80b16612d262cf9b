package booking

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"

	"eraflix/models"
	"eraflix/services/apperr"
)

// --- in-memory collaborators ---

type fakeBookingRepo struct {
	bookings map[string]*models.Booking
	nextID   int

	// confirmedWindows simulates the partial unique index on
	// (screenId, date, slot.start, slot.end) for confirmed bookings.
	confirmedWindows map[string]string
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{
		bookings:         make(map[string]*models.Booking),
		confirmedWindows: make(map[string]string),
	}
}

func windowKey(b *models.Booking) string {
	return fmt.Sprintf("%s|%s|%s|%s", b.ScreenID, b.Date.Format("2006-01-02"), b.Slot.Start, b.Slot.End)
}

func (r *fakeBookingRepo) Create(ctx context.Context, booking models.Booking) (string, error) {
	r.nextID++
	booking.ID = fmt.Sprintf("B%d", r.nextID)
	r.bookings[booking.ID] = &booking
	return booking.ID, nil
}

func (r *fakeBookingRepo) GetByID(ctx context.Context, bookingID string) (*models.Booking, error) {
	b, ok := r.bookings[bookingID]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	out := *b
	return &out, nil
}

func (r *fakeBookingRepo) ListConfirmedByScreenAndDay(ctx context.Context, screenID string, day time.Time) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.ScreenID == screenID && b.Status == models.BookingStatusConfirmed && sameDay(b.Date, day) {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) ListByScreenAndDay(ctx context.Context, screenID string, day time.Time) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.ScreenID == screenID && sameDay(b.Date, day) {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) UpdateStatus(ctx context.Context, bookingID, status string) error {
	b, ok := r.bookings[bookingID]
	if !ok {
		return mongo.ErrNoDocuments
	}
	key := windowKey(b)
	if status == models.BookingStatusConfirmed {
		if holder, taken := r.confirmedWindows[key]; taken && holder != bookingID {
			return mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 11000}}}
		}
		r.confirmedWindows[key] = bookingID
	} else if r.confirmedWindows[key] == bookingID {
		// Leaving confirmed drops the document out of the partial index.
		delete(r.confirmedWindows, key)
	}
	b.Status = status
	return nil
}

func (r *fakeBookingRepo) SetPaymentID(ctx context.Context, bookingID, paymentID string) error {
	b, ok := r.bookings[bookingID]
	if !ok {
		return mongo.ErrNoDocuments
	}
	b.PaymentID = paymentID
	return nil
}

func (r *fakeBookingRepo) EnsureIndexes() error { return nil }

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

type fakeSlotStore struct {
	slots map[string]models.TimeSlot
}

func (r *fakeSlotStore) Create(ctx context.Context, slot models.TimeSlot) (string, error) {
	r.slots[slot.ID] = slot
	return slot.ID, nil
}
func (r *fakeSlotStore) Update(ctx context.Context, slot models.TimeSlot) error { return nil }
func (r *fakeSlotStore) DeleteByID(ctx context.Context, slotID string) error    { return nil }
func (r *fakeSlotStore) GetByID(ctx context.Context, slotID string) (*models.TimeSlot, error) {
	s, ok := r.slots[slotID]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return &s, nil
}
func (r *fakeSlotStore) GetActiveByWindow(ctx context.Context, screenID, start, end string) (*models.TimeSlot, error) {
	return nil, nil
}
func (r *fakeSlotStore) List(ctx context.Context, screenID string) ([]models.TimeSlot, error) {
	var out []models.TimeSlot
	for _, s := range r.slots {
		if s.ScreenID == screenID {
			out = append(out, s)
		}
	}
	return out, nil
}
func (r *fakeSlotStore) EnsureIndexes() error { return nil }

type fakeVenueStore struct {
	screens map[string]models.Screen
}

func (r *fakeVenueStore) CreateLocation(ctx context.Context, loc models.Location) (string, error) {
	return "", nil
}
func (r *fakeVenueStore) UpdateLocation(ctx context.Context, loc models.Location) error { return nil }
func (r *fakeVenueStore) DeleteLocation(ctx context.Context, locationID string) error   { return nil }
func (r *fakeVenueStore) GetLocationByID(ctx context.Context, locationID string) (*models.Location, error) {
	return nil, mongo.ErrNoDocuments
}
func (r *fakeVenueStore) ListLocations(ctx context.Context, activeOnly bool) ([]models.Location, error) {
	return nil, nil
}
func (r *fakeVenueStore) CreateScreen(ctx context.Context, screen models.Screen) (string, error) {
	return "", nil
}
func (r *fakeVenueStore) UpdateScreen(ctx context.Context, screen models.Screen) error { return nil }
func (r *fakeVenueStore) DeleteScreen(ctx context.Context, screenID string) error      { return nil }
func (r *fakeVenueStore) GetScreenByID(ctx context.Context, screenID string) (*models.Screen, error) {
	s, ok := r.screens[screenID]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return &s, nil
}
func (r *fakeVenueStore) ListScreens(ctx context.Context, locationID string, activeOnly bool) ([]models.Screen, error) {
	return nil, nil
}
func (r *fakeVenueStore) EnsureIndexes() error { return nil }

type fakePayments struct {
	paid      map[string]bool
	intents   int
	failNext  bool
	lastInput models.Booking
}

func (p *fakePayments) CreateIntent(ctx context.Context, booking models.Booking) (string, string, error) {
	if p.failNext {
		return "", "", fmt.Errorf("payment gateway unavailable")
	}
	p.intents++
	p.lastInput = booking
	id := fmt.Sprintf("pi_%d", p.intents)
	return id + "_secret", id, nil
}

func (p *fakePayments) VerifyPaid(ctx context.Context, paymentID string) (bool, error) {
	return p.paid[paymentID], nil
}

type fakeScheduler struct {
	reminders []models.BookingReminderPayload
}

func (s *fakeScheduler) ScheduleBookingReminder(payload models.BookingReminderPayload, fireAt time.Time) error {
	s.reminders = append(s.reminders, payload)
	return nil
}

// --- fixture ---

type fixture struct {
	svc      *DefaultBookingService
	bookings *fakeBookingRepo
	payments *fakePayments
	tasks    *fakeScheduler
}

func newFixture() *fixture {
	slots := &fakeSlotStore{slots: map[string]models.TimeSlot{
		"T1": {ID: "T1", ScreenID: "S1", Name: "Morning", Start: "10:00", End: "12:00", Active: true},
		"T2": {ID: "T2", ScreenID: "S1", Name: "Evening", Start: "18:00", End: "20:00", Active: true},
	}}
	venues := &fakeVenueStore{screens: map[string]models.Screen{
		"S1": {ID: "S1", LocationID: "L1", Name: "Screen One", Capacity: 10, BasePrice: 50, Active: true},
		"S2": {ID: "S2", LocationID: "L1", Name: "Closed Screen", Capacity: 8, BasePrice: 50, Active: false},
		"S3": {ID: "S3", LocationID: "L1", Name: "Screen Three", Capacity: 12, BasePrice: 75, Active: true},
	}}
	bookings := newFakeBookingRepo()
	payments := &fakePayments{paid: make(map[string]bool)}
	tasks := &fakeScheduler{}

	svc := &DefaultBookingService{
		Bookings: bookings,
		Slots:    slots,
		Venues:   venues,
		Resolver: &stubResolver{slots: slots, bookings: bookings},
		Payments: payments,
		Tasks:    tasks,
	}
	return &fixture{svc: svc, bookings: bookings, payments: payments, tasks: tasks}
}

// stubResolver applies the same exact-window exclusion as the production
// resolver, over the in-memory stores.
type stubResolver struct {
	slots    *fakeSlotStore
	bookings *fakeBookingRepo
}

func (r *stubResolver) AvailableSlots(ctx context.Context, screenID, date string) ([]models.TimeSlot, error) {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, apperr.NewValidationError("date", "must be YYYY-MM-DD")
	}
	confirmed, err := r.bookings.ListConfirmedByScreenAndDay(ctx, screenID, day)
	if err != nil {
		return nil, err
	}
	taken := make(map[models.SlotWindow]struct{})
	for _, b := range confirmed {
		taken[b.Slot] = struct{}{}
	}
	all, _ := r.slots.List(ctx, screenID)
	var out []models.TimeSlot
	for _, s := range all {
		if !s.Active {
			continue
		}
		if _, blocked := taken[models.SlotWindow{Start: s.Start, End: s.End}]; blocked {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

const bookingDate = "2024-06-01"

func validRequest() models.CreateBookingRequest {
	return models.CreateBookingRequest{
		ScreenID:      "S1",
		Date:          bookingDate,
		SlotID:        "T1",
		CustomerName:  "Ada",
		CustomerEmail: "ada@example.com",
		Guests:        4,
	}
}

// --- tests ---

func TestCreateBooking(t *testing.T) {
	f := newFixture()

	result, err := f.svc.CreateBooking(context.Background(), validRequest())
	require.NoError(t, err)

	b := result.Booking
	assert.Equal(t, models.BookingStatusPending, b.Status)
	assert.Equal(t, models.SlotWindow{Start: "10:00", End: "12:00"}, b.Slot)
	assert.Equal(t, "Morning", b.SlotName)
	// 2h at base price 50.
	assert.Equal(t, 100.0, b.TotalPrice)
	assert.Equal(t, "pi_1", b.PaymentID)
	assert.Equal(t, "pi_1_secret", result.ClientSecret)
}

func TestCreateBooking_UnknownScreen(t *testing.T) {
	f := newFixture()

	req := validRequest()
	req.ScreenID = "missing"
	_, err := f.svc.CreateBooking(context.Background(), req)
	require.Error(t, err)

	var notFoundErr *apperr.NotFoundError
	assert.ErrorAs(t, err, &notFoundErr)
}

func TestCreateBooking_InactiveScreen(t *testing.T) {
	f := newFixture()

	req := validRequest()
	req.ScreenID = "S2"
	_, err := f.svc.CreateBooking(context.Background(), req)
	require.Error(t, err)

	var conflictErr *apperr.ConflictError
	assert.ErrorAs(t, err, &conflictErr)
}

func TestCreateBooking_SlotFromOtherScreen(t *testing.T) {
	f := newFixture()

	req := validRequest()
	req.ScreenID = "S3"
	_, err := f.svc.CreateBooking(context.Background(), req)
	require.Error(t, err)

	var validationErr *apperr.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestCreateBooking_BadDate(t *testing.T) {
	f := newFixture()

	req := validRequest()
	req.Date = "01-06-2024"
	_, err := f.svc.CreateBooking(context.Background(), req)
	require.Error(t, err)

	var validationErr *apperr.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestCreateBooking_WindowAlreadyConfirmed(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	first, err := f.svc.CreateBooking(ctx, validRequest())
	require.NoError(t, err)
	f.payments.paid[first.Booking.PaymentID] = true
	_, err = f.svc.ConfirmBooking(ctx, first.Booking.ID)
	require.NoError(t, err)

	_, err = f.svc.CreateBooking(ctx, validRequest())
	require.Error(t, err)

	var conflictErr *apperr.ConflictError
	assert.ErrorAs(t, err, &conflictErr)

	// The evening slot on the same day is untouched.
	req := validRequest()
	req.SlotID = "T2"
	_, err = f.svc.CreateBooking(ctx, req)
	assert.NoError(t, err)
}

func TestConfirmBooking(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	result, err := f.svc.CreateBooking(ctx, validRequest())
	require.NoError(t, err)
	f.payments.paid[result.Booking.PaymentID] = true

	confirmed, err := f.svc.ConfirmBooking(ctx, result.Booking.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusConfirmed, confirmed.Status)

	// Confirming again is a no-op.
	again, err := f.svc.ConfirmBooking(ctx, result.Booking.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusConfirmed, again.Status)
}

func TestConfirmBooking_SchedulesReminder(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	req := validRequest()
	req.Date = "2030-01-15"
	result, err := f.svc.CreateBooking(ctx, req)
	require.NoError(t, err)
	f.payments.paid[result.Booking.PaymentID] = true

	_, err = f.svc.ConfirmBooking(ctx, result.Booking.ID)
	require.NoError(t, err)

	require.Len(t, f.tasks.reminders, 1)
	reminder := f.tasks.reminders[0]
	assert.Equal(t, result.Booking.ID, reminder.BookingID)
	assert.Equal(t, "2030-01-15", reminder.Date)
	assert.Equal(t, "10:00", reminder.Start)
	assert.Equal(t, "ada@example.com", reminder.CustomerEmail)
}

func TestConfirmBooking_UnpaidIntent(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	result, err := f.svc.CreateBooking(ctx, validRequest())
	require.NoError(t, err)

	_, err = f.svc.ConfirmBooking(ctx, result.Booking.ID)
	require.Error(t, err)

	var conflictErr *apperr.ConflictError
	assert.ErrorAs(t, err, &conflictErr)

	stored, err := f.svc.GetBooking(ctx, result.Booking.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusPending, stored.Status)
}

func TestConfirmBooking_LosesIndexRace(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	// Two pending bookings for the same window; both intents paid.
	first, err := f.svc.CreateBooking(ctx, validRequest())
	require.NoError(t, err)
	second, err := f.svc.CreateBooking(ctx, validRequest())
	require.NoError(t, err)
	f.payments.paid[first.Booking.PaymentID] = true
	f.payments.paid[second.Booking.PaymentID] = true

	_, err = f.svc.ConfirmBooking(ctx, first.Booking.ID)
	require.NoError(t, err)

	_, err = f.svc.ConfirmBooking(ctx, second.Booking.ID)
	require.Error(t, err)

	var conflictErr *apperr.ConflictError
	assert.ErrorAs(t, err, &conflictErr)
}

func TestConfirmBooking_Cancelled(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	result, err := f.svc.CreateBooking(ctx, validRequest())
	require.NoError(t, err)
	_, err = f.svc.CancelBooking(ctx, result.Booking.ID)
	require.NoError(t, err)

	_, err = f.svc.ConfirmBooking(ctx, result.Booking.ID)
	require.Error(t, err)

	var conflictErr *apperr.ConflictError
	assert.ErrorAs(t, err, &conflictErr)
}

func TestCancelBooking_FreesWindow(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	result, err := f.svc.CreateBooking(ctx, validRequest())
	require.NoError(t, err)
	f.payments.paid[result.Booking.PaymentID] = true
	_, err = f.svc.ConfirmBooking(ctx, result.Booking.ID)
	require.NoError(t, err)

	cancelled, err := f.svc.CancelBooking(ctx, result.Booking.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusCancelled, cancelled.Status)

	// Cancelling again is a no-op.
	_, err = f.svc.CancelBooking(ctx, result.Booking.ID)
	require.NoError(t, err)

	// The window is bookable again.
	_, err = f.svc.CreateBooking(ctx, validRequest())
	assert.NoError(t, err)
}

func TestCancelBooking_Unknown(t *testing.T) {
	f := newFixture()

	_, err := f.svc.CancelBooking(context.Background(), "missing")
	require.Error(t, err)

	var notFoundErr *apperr.NotFoundError
	assert.ErrorAs(t, err, &notFoundErr)
}

func TestCreateBooking_PaymentFailureSurfaces(t *testing.T) {
	f := newFixture()
	f.payments.failNext = true

	_, err := f.svc.CreateBooking(context.Background(), validRequest())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "payment")
}

func TestListBookingsForDay(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	first, err := f.svc.CreateBooking(ctx, validRequest())
	require.NoError(t, err)
	req := validRequest()
	req.SlotID = "T2"
	_, err = f.svc.CreateBooking(ctx, req)
	require.NoError(t, err)

	f.payments.paid[first.Booking.PaymentID] = true
	_, err = f.svc.ConfirmBooking(ctx, first.Booking.ID)
	require.NoError(t, err)

	day, _ := time.Parse("2006-01-02", bookingDate)

	all, err := f.svc.ListBookingsForDay(ctx, "S1", day)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	confirmed, err := f.svc.ListConfirmedBookings(ctx, "S1", day)
	require.NoError(t, err)
	require.Len(t, confirmed, 1)
	assert.Equal(t, first.Booking.ID, confirmed[0].ID)
}
