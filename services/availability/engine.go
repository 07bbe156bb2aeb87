// File: services/availability/engine.go
package availability

import (
	"time"

	"zeefreeze/models"
)

// The toggle engine is pure: no I/O, no clocks, no awareness of the calendar
// window being displayed. Callers restrict interaction; the engine only
// validates the date value itself. The returned set carries no ordering
// guarantee beyond one entry per date.

func parseDate(date string) error {
	if _, err := time.Parse(models.DateLayout, date); err != nil {
		return newInvalidDateError(date)
	}
	return nil
}

func validSlot(slot string) bool {
	return slot == models.SlotMorning || slot == models.SlotAfternoon
}

// ToggleSlot flips one half-day window for the given date and returns the
// resulting set. State transitions:
//   - no record for date: create one with only the requested slot true;
//   - slot false: set it true in place;
//   - slot true: set it false, and if the other slot is also false the record
//     is deleted entirely (the day collapses back to "no availability").
func ToggleSlot(set models.AvailabilitySet, date, slot string) (models.AvailabilitySet, error) {
	if err := parseDate(date); err != nil {
		return nil, err
	}
	if !validSlot(slot) {
		return nil, newInvalidSlotError(slot)
	}

	out := make(models.AvailabilitySet, 0, len(set)+1)
	found := false
	for _, day := range set {
		if day.Date != date {
			out = append(out, day)
			continue
		}
		found = true
		if slot == models.SlotMorning {
			day.Slots.Morning = !day.Slots.Morning
		} else {
			day.Slots.Afternoon = !day.Slots.Afternoon
		}
		if !day.Slots.Any() {
			continue // both slots false: drop the record
		}
		day.Available = true
		out = append(out, day)
	}

	if !found {
		day := models.AvailabilityDay{
			Date:      date,
			Available: true,
		}
		if slot == models.SlotMorning {
			day.Slots.Morning = true
		} else {
			day.Slots.Afternoon = true
		}
		out = append(out, day)
	}
	return out, nil
}

// ToggleDay flips the whole day: any existing record is removed entirely,
// while an absent day gains a record with both slots true. Note the
// deliberate asymmetry: a day holding exactly one open slot does not round
// trip through two whole-day toggles.
func ToggleDay(set models.AvailabilitySet, date string) (models.AvailabilitySet, error) {
	if err := parseDate(date); err != nil {
		return nil, err
	}

	out := make(models.AvailabilitySet, 0, len(set)+1)
	found := false
	for _, day := range set {
		if day.Date == date {
			found = true
			continue
		}
		out = append(out, day)
	}

	if !found {
		out = append(out, models.AvailabilityDay{
			Date:      date,
			Available: true,
			Slots:     models.SlotFlags{Morning: true, Afternoon: true},
		})
	}
	return out, nil
}

// Normalize enforces the set invariants on externally supplied data: one
// record per date (later entries win), no record with both slots false, and
// Available recomputed from the slots.
func Normalize(set models.AvailabilitySet) models.AvailabilitySet {
	byDate := make(map[string]models.AvailabilityDay, len(set))
	order := make([]string, 0, len(set))
	for _, day := range set {
		if !day.Slots.Any() {
			delete(byDate, day.Date)
			continue
		}
		day.Available = true
		if _, seen := byDate[day.Date]; !seen {
			order = append(order, day.Date)
		}
		byDate[day.Date] = day
	}

	out := make(models.AvailabilitySet, 0, len(byDate))
	for _, date := range order {
		if day, ok := byDate[date]; ok {
			out = append(out, day)
		}
	}
	return out
}
