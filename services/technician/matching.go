// File: services/technician/matching.go
package technician

import (
	"context"
	"fmt"
	"sort"

	"zeefreeze/models"
	availabilitySvc "zeefreeze/services/availability"
	"zeefreeze/utils"

	"go.uber.org/zap"
)

// MatchBySkill returns active technicians holding the requested skill, ranked
// by open days within [start, end] (most open first, rating as tie-breaker).
// Technicians with zero open days in the window are excluded.
func (s *DefaultTechnicianService) MatchBySkill(ctx context.Context, skill, start, end string) ([]models.TechnicianMatch, error) {
	if skill == "" {
		return nil, fmt.Errorf("skill is required")
	}

	techs, err := s.Repo.GetBySkill(skill)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch technicians for skill %q: %w", skill, err)
	}

	matches := make([]models.TechnicianMatch, 0, len(techs))
	for _, tech := range techs {
		days, err := s.Availability.OpenDaysInRange(ctx, tech.ID, start, end)
		if err != nil {
			if availabilitySvc.IsInvalidInput(err) {
				return nil, err
			}
			// A storage hiccup for one technician should not sink the whole
			// match; log and move on.
			utils.GetLogger().Warn("Skipping technician in match",
				zap.String("technicianID", tech.ID), zap.Error(err))
			continue
		}
		if days == 0 {
			continue
		}
		tech.Security = models.Security{}
		matches = append(matches, models.TechnicianMatch{Technician: tech, AvailableDays: days})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].AvailableDays != matches[j].AvailableDays {
			return matches[i].AvailableDays > matches[j].AvailableDays
		}
		return matches[i].Technician.Profile.Rating > matches[j].Technician.Profile.Rating
	})
	return matches, nil
}
