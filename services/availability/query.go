// File: services/availability/query.go
package availability

import (
	"time"

	"zeefreeze/models"
)

// Read-only lookups over a loaded set. A missing date is false, never an
// error: not-yet-specified means unavailable. Only a malformed date fails.

// IsDateAvailable reports whether a record exists for date with at least one
// slot open.
func IsDateAvailable(set models.AvailabilitySet, date string) (bool, error) {
	if err := parseDate(date); err != nil {
		return false, err
	}
	for _, day := range set {
		if day.Date == date {
			return day.Slots.Any(), nil
		}
	}
	return false, nil
}

// IsSlotAvailable reports whether a record exists for date with that specific
// slot open.
func IsSlotAvailable(set models.AvailabilitySet, date, slot string) (bool, error) {
	if err := parseDate(date); err != nil {
		return false, err
	}
	if !validSlot(slot) {
		return false, newInvalidSlotError(slot)
	}
	for _, day := range set {
		if day.Date != date {
			continue
		}
		if slot == models.SlotMorning {
			return day.Slots.Morning, nil
		}
		return day.Slots.Afternoon, nil
	}
	return false, nil
}

// CountAvailableDaysInRange counts distinct available dates within
// [start, end] inclusive. Used for calendar summary badges and
// technician matching.
func CountAvailableDaysInRange(set models.AvailabilitySet, start, end string) (int, error) {
	startT, err := time.Parse(models.DateLayout, start)
	if err != nil {
		return 0, newInvalidDateError(start)
	}
	endT, err := time.Parse(models.DateLayout, end)
	if err != nil {
		return 0, newInvalidDateError(end)
	}
	if endT.Before(startT) {
		return 0, &InvalidInputError{Field: "range", Value: start + ".." + end, Reason: "end precedes start"}
	}

	seen := make(map[string]struct{})
	count := 0
	for _, day := range set {
		if day.Date < start || day.Date > end {
			continue
		}
		if _, dup := seen[day.Date]; dup {
			continue
		}
		seen[day.Date] = struct{}{}
		if day.Slots.Any() {
			count++
		}
	}
	return count, nil
}
