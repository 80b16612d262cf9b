// Package availability implements the availability resolution engine: a pure
// read-side projection of the slot catalog minus confirmed bookings.
package availability

import (
	"context"
	"fmt"
	"sort"

	bookingRepo "eraflix/database/repository/booking"
	slotRepo "eraflix/database/repository/slot"
	"eraflix/models"
	"eraflix/services/catalog"
)

// Resolver computes which catalog slots remain bookable for a screen on a
// given calendar date. It holds no state and never caches: every call
// recomputes from the two underlying collections.
//
// A slot is blocked only by a confirmed booking whose window matches the
// slot's (start, end) exactly. Slots are discrete units and a booking always
// snapshots a full catalog slot, so interval-overlap arithmetic is
// deliberately not used here.
type Resolver interface {
	AvailableSlots(ctx context.Context, screenID, date string) ([]models.TimeSlot, error)
}

// DefaultResolver is the production Resolver.
type DefaultResolver struct {
	Slots    slotRepo.SlotRepository
	Bookings bookingRepo.BookingRepository
}

// AvailableSlots returns the active catalog slots for the screen that are not
// covered by any confirmed booking on the given date, sorted by start time
// ascending with ties broken by slot id.
func (r *DefaultResolver) AvailableSlots(ctx context.Context, screenID, date string) ([]models.TimeSlot, error) {
	if err := catalog.ValidateScreenID(screenID); err != nil {
		return nil, err
	}
	day, err := catalog.ValidateDate(date)
	if err != nil {
		return nil, err
	}

	slots, err := r.Slots.List(ctx, screenID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch catalog slots: %w", err)
	}

	booked, err := r.Bookings.ListConfirmedByScreenAndDay(ctx, screenID, day)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch confirmed bookings: %w", err)
	}

	// One entry per booked window; duplicate covering bookings collapse,
	// so a slot is excluded exactly once.
	bookedWindows := make(map[models.SlotWindow]struct{}, len(booked))
	for _, b := range booked {
		bookedWindows[b.Slot] = struct{}{}
	}

	available := make([]models.TimeSlot, 0, len(slots))
	for _, slot := range slots {
		if !slot.Active {
			continue
		}
		if _, taken := bookedWindows[models.SlotWindow{Start: slot.Start, End: slot.End}]; taken {
			continue
		}
		available = append(available, slot)
	}

	sort.Slice(available, func(i, j int) bool {
		if available[i].Start != available[j].Start {
			return available[i].Start < available[j].Start
		}
		return available[i].ID < available[j].ID
	})
	return available, nil
}
