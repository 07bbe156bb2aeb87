// File: services/availability/service.go
package availability

import (
	"context"
	"errors"
	"time"

	availabilityRepo "zeefreeze/database/repository/availability"
	"zeefreeze/models"
	"zeefreeze/utils"

	"go.uber.org/zap"
)

// DefaultAvailabilityService is the production implementation.
type DefaultAvailabilityService struct {
	Repo availabilityRepo.AvailabilityRepository
	// SeedDays is the number of business days marked fully available when a
	// technician has no prior data.
	SeedDays int
	// Now allows tests to pin the seed window's starting point.
	Now func() time.Time
}

func (s *DefaultAvailabilityService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// load fetches the stored set, seeding (and persisting) a default window when
// the technician has none.
func (s *DefaultAvailabilityService) load(ctx context.Context, technicianID string) (models.AvailabilitySet, error) {
	set, err := s.Repo.LoadAll(ctx, technicianID)
	if err == nil {
		return set, nil
	}
	if !errors.Is(err, availabilityRepo.ErrNotFound) {
		return nil, &StorageError{Op: "load", Err: err}
	}

	seeded := SeedDefaultSet(s.now(), s.SeedDays)
	if err := s.Repo.ReplaceAll(ctx, technicianID, seeded); err != nil {
		return nil, &StorageError{Op: "seed", Err: err}
	}
	utils.GetLogger().Info("Seeded default availability",
		zap.String("technicianID", technicianID),
		zap.Int("days", len(seeded)))
	return seeded, nil
}

// SeedDefaultSet builds the default forward-looking window: the next n
// business days (weekdays only, starting tomorrow) marked fully available.
func SeedDefaultSet(from time.Time, n int) models.AvailabilitySet {
	if n <= 0 {
		n = 14
	}
	set := make(models.AvailabilitySet, 0, n)
	day := from
	for len(set) < n {
		day = day.AddDate(0, 0, 1)
		if wd := day.Weekday(); wd == time.Saturday || wd == time.Sunday {
			continue
		}
		set = append(set, models.AvailabilityDay{
			Date:      day.Format(models.DateLayout),
			Available: true,
			Slots:     models.SlotFlags{Morning: true, Afternoon: true},
		})
	}
	return set
}

func (s *DefaultAvailabilityService) GetSet(ctx context.Context, technicianID string) (*models.AvailabilityDTO, error) {
	set, err := s.load(ctx, technicianID)
	if err != nil {
		return nil, err
	}
	return &models.AvailabilityDTO{TechnicianID: technicianID, Days: set}, nil
}

func (s *DefaultAvailabilityService) ReplaceSet(ctx context.Context, technicianID string, days models.AvailabilitySet) (*models.AvailabilityDTO, error) {
	for _, day := range days {
		if err := parseDate(day.Date); err != nil {
			return nil, err
		}
	}
	normalized := Normalize(days)
	if err := s.Repo.ReplaceAll(ctx, technicianID, normalized); err != nil {
		// The old set remains the user-visible truth; the caller may retry.
		return nil, &StorageError{Op: "replace", Err: err}
	}
	return &models.AvailabilityDTO{TechnicianID: technicianID, Days: normalized}, nil
}

func (s *DefaultAvailabilityService) ToggleSlot(ctx context.Context, technicianID, date, slot string) (*models.AvailabilityDTO, error) {
	set, err := s.load(ctx, technicianID)
	if err != nil {
		return nil, err
	}
	next, err := ToggleSlot(set, date, slot)
	if err != nil {
		return nil, err
	}
	if err := s.Repo.ReplaceAll(ctx, technicianID, next); err != nil {
		return nil, &StorageError{Op: "replace", Err: err}
	}
	return &models.AvailabilityDTO{TechnicianID: technicianID, Days: next}, nil
}

func (s *DefaultAvailabilityService) ToggleDay(ctx context.Context, technicianID, date string) (*models.AvailabilityDTO, error) {
	set, err := s.load(ctx, technicianID)
	if err != nil {
		return nil, err
	}
	next, err := ToggleDay(set, date)
	if err != nil {
		return nil, err
	}
	if err := s.Repo.ReplaceAll(ctx, technicianID, next); err != nil {
		return nil, &StorageError{Op: "replace", Err: err}
	}
	return &models.AvailabilityDTO{TechnicianID: technicianID, Days: next}, nil
}

// SlotOpen does not seed: a technician with no stored set simply has no open
// slots from the booking flow's point of view.
func (s *DefaultAvailabilityService) SlotOpen(ctx context.Context, technicianID, date, slot string) (bool, error) {
	set, err := s.Repo.LoadAll(ctx, technicianID)
	if err != nil {
		if errors.Is(err, availabilityRepo.ErrNotFound) {
			// Still validate the inputs so malformed requests surface.
			if _, qerr := IsSlotAvailable(nil, date, slot); qerr != nil {
				return false, qerr
			}
			return false, nil
		}
		return false, &StorageError{Op: "load", Err: err}
	}
	return IsSlotAvailable(set, date, slot)
}

func (s *DefaultAvailabilityService) OpenDaysInRange(ctx context.Context, technicianID, start, end string) (int, error) {
	set, err := s.Repo.LoadAll(ctx, technicianID)
	if err != nil {
		if errors.Is(err, availabilityRepo.ErrNotFound) {
			if _, qerr := CountAvailableDaysInRange(nil, start, end); qerr != nil {
				return 0, qerr
			}
			return 0, nil
		}
		return 0, &StorageError{Op: "load", Err: err}
	}
	return CountAvailableDaysInRange(set, start, end)
}
