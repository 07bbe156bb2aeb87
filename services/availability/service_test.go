package availability

import (
	"context"
	"errors"
	"testing"
	"time"

	availabilityRepo "zeefreeze/database/repository/availability"
	"zeefreeze/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAvailabilityRepo keeps sets in memory, mirroring the whole-set replace
// contract of the Mongo implementation.
type fakeAvailabilityRepo struct {
	sets     map[string]models.AvailabilitySet
	loadErr  error
	writeErr error
	replaces int
}

func newFakeRepo() *fakeAvailabilityRepo {
	return &fakeAvailabilityRepo{sets: make(map[string]models.AvailabilitySet)}
}

func (f *fakeAvailabilityRepo) LoadAll(_ context.Context, technicianID string) (models.AvailabilitySet, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	set, ok := f.sets[technicianID]
	if !ok || len(set) == 0 {
		return nil, availabilityRepo.ErrNotFound
	}
	return append(models.AvailabilitySet{}, set...), nil
}

func (f *fakeAvailabilityRepo) ReplaceAll(_ context.Context, technicianID string, days models.AvailabilitySet) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	f.replaces++
	f.sets[technicianID] = append(models.AvailabilitySet{}, days...)
	return nil
}

func newTestService(repo availabilityRepo.AvailabilityRepository) *DefaultAvailabilityService {
	return &DefaultAvailabilityService{
		Repo:     repo,
		SeedDays: 14,
		// Pinned to a Monday so the seed window is deterministic.
		Now: func() time.Time {
			return time.Date(2025, 5, 19, 10, 0, 0, 0, time.UTC)
		},
	}
}

func TestSeedDefaultSet(t *testing.T) {
	monday := time.Date(2025, 5, 19, 10, 0, 0, 0, time.UTC)
	set := SeedDefaultSet(monday, 14)

	require.Len(t, set, 14)
	// Starts tomorrow, not today.
	assert.Equal(t, "2025-05-20", set[0].Date)
	for _, day := range set {
		d, err := time.Parse(models.DateLayout, day.Date)
		require.NoError(t, err)
		assert.NotEqual(t, time.Saturday, d.Weekday())
		assert.NotEqual(t, time.Sunday, d.Weekday())
		assert.True(t, day.Available)
		assert.Equal(t, models.SlotFlags{Morning: true, Afternoon: true}, day.Slots)
	}
	// 14 business days from Tue 2025-05-20 lands on Fri 2025-06-06.
	assert.Equal(t, "2025-06-06", set[13].Date)
}

func TestSeedDefaultSet_SkipsWeekendStart(t *testing.T) {
	friday := time.Date(2025, 5, 23, 18, 0, 0, 0, time.UTC)
	set := SeedDefaultSet(friday, 5)
	require.Len(t, set, 5)
	// Saturday and Sunday are skipped; the window opens on Monday.
	assert.Equal(t, "2025-05-26", set[0].Date)
}

func TestGetSet_SeedsAndPersistsOnFirstLoad(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	dto, err := svc.GetSet(context.Background(), "tech-1")
	require.NoError(t, err)
	require.Len(t, dto.Days, 14)
	assert.Equal(t, "tech-1", dto.TechnicianID)

	// The seed was written through, so the next load returns the same window
	// without reseeding.
	assert.Equal(t, 1, repo.replaces)
	again, err := svc.GetSet(context.Background(), "tech-1")
	require.NoError(t, err)
	assert.Equal(t, dto.Days, again.Days)
	assert.Equal(t, 1, repo.replaces)
}

func TestToggleSlot_EndToEnd(t *testing.T) {
	repo := newFakeRepo()
	repo.sets["tech-1"] = models.AvailabilitySet{
		{Date: "2025-05-20", Available: true, Slots: models.SlotFlags{Morning: true, Afternoon: true}},
	}
	svc := newTestService(repo)
	ctx := context.Background()

	dto, err := svc.ToggleSlot(ctx, "tech-1", "2025-05-20", models.SlotMorning)
	require.NoError(t, err)
	day, ok := findDay(dto.Days, "2025-05-20")
	require.True(t, ok)
	assert.Equal(t, models.SlotFlags{Morning: false, Afternoon: true}, day.Slots)

	dto, err = svc.ToggleSlot(ctx, "tech-1", "2025-05-20", models.SlotAfternoon)
	require.NoError(t, err)
	_, ok = findDay(dto.Days, "2025-05-20")
	assert.False(t, ok, "record should be gone once both slots are closed")

	// Persisted state matches the returned DTO.
	assert.Equal(t, dto.Days, repo.sets["tech-1"])
}

func TestToggleSlot_InvalidInputDoesNotWrite(t *testing.T) {
	repo := newFakeRepo()
	repo.sets["tech-1"] = models.AvailabilitySet{
		{Date: "2025-05-20", Available: true, Slots: models.SlotFlags{Morning: true}},
	}
	svc := newTestService(repo)

	_, err := svc.ToggleSlot(context.Background(), "tech-1", "2025-05-20", "night")
	require.Error(t, err)
	assert.True(t, IsInvalidInput(err))
	assert.Zero(t, repo.replaces)
}

func TestToggleDay_EndToEnd(t *testing.T) {
	repo := newFakeRepo()
	repo.sets["tech-1"] = models.AvailabilitySet{
		{Date: "2025-05-20", Available: true, Slots: models.SlotFlags{Morning: true, Afternoon: true}},
	}
	svc := newTestService(repo)
	ctx := context.Background()

	dto, err := svc.ToggleDay(ctx, "tech-1", "2025-05-21")
	require.NoError(t, err)
	day, ok := findDay(dto.Days, "2025-05-21")
	require.True(t, ok)
	assert.Equal(t, models.SlotFlags{Morning: true, Afternoon: true}, day.Slots)

	dto, err = svc.ToggleDay(ctx, "tech-1", "2025-05-21")
	require.NoError(t, err)
	_, ok = findDay(dto.Days, "2025-05-21")
	assert.False(t, ok)
}

func TestReplaceSet_NormalizesInput(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	dto, err := svc.ReplaceSet(context.Background(), "tech-1", models.AvailabilitySet{
		{Date: "2025-05-20", Slots: models.SlotFlags{Morning: true}},
		{Date: "2025-05-21", Slots: models.SlotFlags{}},
		{Date: "2025-05-20", Slots: models.SlotFlags{Afternoon: true}},
	})
	require.NoError(t, err)
	require.Len(t, dto.Days, 1)
	assert.Equal(t, models.SlotFlags{Afternoon: true}, dto.Days[0].Slots)
	assert.True(t, dto.Days[0].Available)
}

func TestReplaceSet_RejectsMalformedDate(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	_, err := svc.ReplaceSet(context.Background(), "tech-1", models.AvailabilitySet{
		{Date: "05/20/2025", Slots: models.SlotFlags{Morning: true}},
	})
	require.Error(t, err)
	assert.True(t, IsInvalidInput(err))
	assert.Zero(t, repo.replaces)
}

func TestReplaceSet_StorageFailureLeavesOldSet(t *testing.T) {
	repo := newFakeRepo()
	repo.sets["tech-1"] = models.AvailabilitySet{
		{Date: "2025-05-20", Available: true, Slots: models.SlotFlags{Morning: true}},
	}
	repo.writeErr = errors.New("connection reset")
	svc := newTestService(repo)

	_, err := svc.ReplaceSet(context.Background(), "tech-1", models.AvailabilitySet{
		{Date: "2025-05-22", Slots: models.SlotFlags{Afternoon: true}},
	})
	require.Error(t, err)
	assert.True(t, IsStorageFailure(err))

	// Stored data is untouched after the failed replace.
	repo.writeErr = nil
	stored, err := repo.LoadAll(context.Background(), "tech-1")
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, "2025-05-20", stored[0].Date)
}

func TestSlotOpen(t *testing.T) {
	repo := newFakeRepo()
	repo.sets["tech-1"] = models.AvailabilitySet{
		{Date: "2025-05-20", Available: true, Slots: models.SlotFlags{Morning: true}},
	}
	svc := newTestService(repo)
	ctx := context.Background()

	open, err := svc.SlotOpen(ctx, "tech-1", "2025-05-20", models.SlotMorning)
	require.NoError(t, err)
	assert.True(t, open)

	open, err = svc.SlotOpen(ctx, "tech-1", "2025-05-20", models.SlotAfternoon)
	require.NoError(t, err)
	assert.False(t, open)

	// No stored set: closed, not seeded.
	open, err = svc.SlotOpen(ctx, "tech-2", "2025-05-20", models.SlotMorning)
	require.NoError(t, err)
	assert.False(t, open)
	_, hasSet := repo.sets["tech-2"]
	assert.False(t, hasSet)

	// Malformed input still fails even without a stored set.
	_, err = svc.SlotOpen(ctx, "tech-2", "2025-05-20", "night")
	require.Error(t, err)
	assert.True(t, IsInvalidInput(err))
}

func TestOpenDaysInRange(t *testing.T) {
	repo := newFakeRepo()
	repo.sets["tech-1"] = models.AvailabilitySet{
		{Date: "2025-05-20", Available: true, Slots: models.SlotFlags{Morning: true}},
		{Date: "2025-05-22", Available: true, Slots: models.SlotFlags{Afternoon: true}},
		{Date: "2025-06-02", Available: true, Slots: models.SlotFlags{Morning: true, Afternoon: true}},
	}
	svc := newTestService(repo)
	ctx := context.Background()

	n, err := svc.OpenDaysInRange(ctx, "tech-1", "2025-05-19", "2025-05-25")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = svc.OpenDaysInRange(ctx, "tech-nobody", "2025-05-19", "2025-05-25")
	require.NoError(t, err)
	assert.Zero(t, n)

	_, err = svc.OpenDaysInRange(ctx, "tech-1", "2025-05-25", "2025-05-19")
	require.Error(t, err)
	assert.True(t, IsInvalidInput(err))
}

func TestLoad_StorageFailureSurfaces(t *testing.T) {
	repo := newFakeRepo()
	repo.loadErr = errors.New("server selection timeout")
	svc := newTestService(repo)

	_, err := svc.GetSet(context.Background(), "tech-1")
	require.Error(t, err)
	assert.True(t, IsStorageFailure(err))
}
