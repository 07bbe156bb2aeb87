package technician

import (
	"context"
	"errors"
	"testing"

	"zeefreeze/models"
	availabilitySvc "zeefreeze/services/availability"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

type stubTechnicianRepo struct {
	bySkill map[string][]models.Technician
}

func (s *stubTechnicianRepo) GetByID(string) (*models.Technician, error)      { return nil, nil }
func (s *stubTechnicianRepo) GetAll() ([]models.Technician, error)            { return nil, nil }
func (s *stubTechnicianRepo) GetByEmail(string) (*models.Technician, error)   { return nil, nil }
func (s *stubTechnicianRepo) Create(*models.Technician) error                 { return nil }
func (s *stubTechnicianRepo) Update(*models.Technician) error                 { return nil }
func (s *stubTechnicianRepo) Delete(string) error                             { return nil }
func (s *stubTechnicianRepo) GetByTokenHash(string) (*models.Technician, error) {
	return nil, nil
}
func (s *stubTechnicianRepo) GetByIDWithProjection(string, bson.M) (*models.Technician, error) {
	return nil, nil
}
func (s *stubTechnicianRepo) UpdateWithDocument(string, bson.M) error { return nil }
func (s *stubTechnicianRepo) GetBySkill(skill string) ([]models.Technician, error) {
	return s.bySkill[skill], nil
}

// stubAvailability serves canned open-day counts per technician.
type stubAvailability struct {
	openDays map[string]int
	errFor   map[string]error
}

func (s *stubAvailability) GetSet(context.Context, string) (*models.AvailabilityDTO, error) {
	return nil, nil
}
func (s *stubAvailability) ReplaceSet(context.Context, string, models.AvailabilitySet) (*models.AvailabilityDTO, error) {
	return nil, nil
}
func (s *stubAvailability) ToggleSlot(context.Context, string, string, string) (*models.AvailabilityDTO, error) {
	return nil, nil
}
func (s *stubAvailability) ToggleDay(context.Context, string, string) (*models.AvailabilityDTO, error) {
	return nil, nil
}
func (s *stubAvailability) SlotOpen(context.Context, string, string, string) (bool, error) {
	return false, nil
}
func (s *stubAvailability) OpenDaysInRange(_ context.Context, technicianID, _, _ string) (int, error) {
	if err, ok := s.errFor[technicianID]; ok {
		return 0, err
	}
	return s.openDays[technicianID], nil
}

func tech(id, name string, rating float64) models.Technician {
	return models.Technician{
		ID: id,
		Profile: models.TechnicianProfile{
			Name:   name,
			Status: "active",
			Skills: []string{"cold_rooms"},
			Rating: rating,
		},
		Security: models.Security{PasswordHash: "secret", TokenHash: "secret"},
	}
}

func TestMatchBySkill_RanksByOpenDays(t *testing.T) {
	repo := &stubTechnicianRepo{bySkill: map[string][]models.Technician{
		"cold_rooms": {tech("t1", "Ana", 4.2), tech("t2", "Bram", 4.9), tech("t3", "Cato", 3.1)},
	}}
	avail := &stubAvailability{openDays: map[string]int{"t1": 2, "t2": 5, "t3": 0}}
	svc, err := NewDefaultTechnicianService(repo, avail)
	require.NoError(t, err)

	matches, err := svc.MatchBySkill(context.Background(), "cold_rooms", "2025-06-02", "2025-06-08")
	require.NoError(t, err)
	require.Len(t, matches, 2, "zero open days should be filtered out")
	assert.Equal(t, "t2", matches[0].Technician.ID)
	assert.Equal(t, 5, matches[0].AvailableDays)
	assert.Equal(t, "t1", matches[1].Technician.ID)

	// Credentials never leak through the match payload.
	for _, m := range matches {
		assert.Empty(t, m.Technician.Security.PasswordHash)
		assert.Empty(t, m.Technician.Security.TokenHash)
	}
}

func TestMatchBySkill_RatingBreaksTies(t *testing.T) {
	repo := &stubTechnicianRepo{bySkill: map[string][]models.Technician{
		"cold_rooms": {tech("t1", "Ana", 4.2), tech("t2", "Bram", 4.9)},
	}}
	avail := &stubAvailability{openDays: map[string]int{"t1": 3, "t2": 3}}
	svc, err := NewDefaultTechnicianService(repo, avail)
	require.NoError(t, err)

	matches, err := svc.MatchBySkill(context.Background(), "cold_rooms", "2025-06-02", "2025-06-08")
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, "t2", matches[0].Technician.ID)
}

func TestMatchBySkill_SkipsTechniciansWithStorageErrors(t *testing.T) {
	repo := &stubTechnicianRepo{bySkill: map[string][]models.Technician{
		"cold_rooms": {tech("t1", "Ana", 4.2), tech("t2", "Bram", 4.9)},
	}}
	avail := &stubAvailability{
		openDays: map[string]int{"t1": 3},
		errFor: map[string]error{
			"t2": &availabilitySvc.StorageError{Op: "load", Err: errors.New("timeout")},
		},
	}
	svc, err := NewDefaultTechnicianService(repo, avail)
	require.NoError(t, err)

	matches, err := svc.MatchBySkill(context.Background(), "cold_rooms", "2025-06-02", "2025-06-08")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "t1", matches[0].Technician.ID)
}

func TestMatchBySkill_InvalidRangeFailsFast(t *testing.T) {
	repo := &stubTechnicianRepo{bySkill: map[string][]models.Technician{
		"cold_rooms": {tech("t1", "Ana", 4.2)},
	}}
	avail := &stubAvailability{errFor: map[string]error{
		"t1": &availabilitySvc.InvalidInputError{Field: "range", Value: "x", Reason: "end precedes start"},
	}}
	svc, err := NewDefaultTechnicianService(repo, avail)
	require.NoError(t, err)

	_, err = svc.MatchBySkill(context.Background(), "cold_rooms", "2025-06-08", "2025-06-02")
	require.Error(t, err)
	assert.True(t, availabilitySvc.IsInvalidInput(err))
}
