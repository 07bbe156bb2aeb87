package availability

import (
	"testing"

	"zeefreeze/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findDay(set models.AvailabilitySet, date string) (models.AvailabilityDay, bool) {
	for _, day := range set {
		if day.Date == date {
			return day, true
		}
	}
	return models.AvailabilityDay{}, false
}

func assertInvariants(t *testing.T, set models.AvailabilitySet) {
	t.Helper()
	seen := make(map[string]bool)
	for _, day := range set {
		assert.False(t, seen[day.Date], "duplicate record for date %s", day.Date)
		seen[day.Date] = true
		assert.True(t, day.Slots.Any(), "record for %s has both slots false", day.Date)
		assert.Equal(t, day.Slots.Morning || day.Slots.Afternoon, day.Available,
			"available flag out of sync for %s", day.Date)
	}
}

func TestToggleSlot_Scenario(t *testing.T) {
	// Full walk from the empty set through every slot transition.
	var set models.AvailabilitySet

	set, err := ToggleSlot(set, "2025-05-20", models.SlotMorning)
	require.NoError(t, err)
	require.Len(t, set, 1)
	day, ok := findDay(set, "2025-05-20")
	require.True(t, ok)
	assert.True(t, day.Available)
	assert.Equal(t, models.SlotFlags{Morning: true, Afternoon: false}, day.Slots)
	assertInvariants(t, set)

	set, err = ToggleSlot(set, "2025-05-20", models.SlotAfternoon)
	require.NoError(t, err)
	day, _ = findDay(set, "2025-05-20")
	assert.Equal(t, models.SlotFlags{Morning: true, Afternoon: true}, day.Slots)
	assertInvariants(t, set)

	set, err = ToggleSlot(set, "2025-05-20", models.SlotMorning)
	require.NoError(t, err)
	day, _ = findDay(set, "2025-05-20")
	assert.Equal(t, models.SlotFlags{Morning: false, Afternoon: true}, day.Slots)
	assert.True(t, day.Available)
	assertInvariants(t, set)

	set, err = ToggleSlot(set, "2025-05-20", models.SlotAfternoon)
	require.NoError(t, err)
	assert.Empty(t, set, "day should collapse when the last slot is cleared")
}

func TestToggleSlot_DoubleToggleIsIdentity(t *testing.T) {
	for _, slot := range []string{models.SlotMorning, models.SlotAfternoon} {
		t.Run(slot, func(t *testing.T) {
			var set models.AvailabilitySet
			set, err := ToggleSlot(set, "2025-07-01", slot)
			require.NoError(t, err)
			require.Len(t, set, 1)
			set, err = ToggleSlot(set, "2025-07-01", slot)
			require.NoError(t, err)
			assert.Empty(t, set)
		})
	}
}

func TestToggleSlot_OtherDatesUntouched(t *testing.T) {
	set := models.AvailabilitySet{
		{Date: "2025-05-19", Available: true, Slots: models.SlotFlags{Morning: true}},
		{Date: "2025-05-21", Available: true, Slots: models.SlotFlags{Afternoon: true}},
	}
	out, err := ToggleSlot(set, "2025-05-20", models.SlotMorning)
	require.NoError(t, err)
	require.Len(t, out, 3)

	before, _ := findDay(out, "2025-05-19")
	assert.Equal(t, models.SlotFlags{Morning: true}, before.Slots)
	after, _ := findDay(out, "2025-05-21")
	assert.Equal(t, models.SlotFlags{Afternoon: true}, after.Slots)
	assertInvariants(t, out)
}

func TestToggleSlot_DateOutsideViewIsPermitted(t *testing.T) {
	// The engine has no notion of a displayed month; any well-formed date works.
	var set models.AvailabilitySet
	out, err := ToggleSlot(set, "2031-12-25", models.SlotAfternoon)
	require.NoError(t, err)
	require.Len(t, out, 1)
}

func TestToggleSlot_InvalidInput(t *testing.T) {
	set := models.AvailabilitySet{}

	_, err := ToggleSlot(set, "20-05-2025", models.SlotMorning)
	require.Error(t, err)
	assert.True(t, IsInvalidInput(err))

	_, err = ToggleSlot(set, "2025-05-20", "evening")
	require.Error(t, err)
	assert.True(t, IsInvalidInput(err))

	_, err = ToggleSlot(set, "not-a-date", "also-not-a-slot")
	require.Error(t, err)
	assert.True(t, IsInvalidInput(err))
}

func TestToggleDay_Scenario(t *testing.T) {
	var set models.AvailabilitySet

	set, err := ToggleDay(set, "2025-05-20")
	require.NoError(t, err)
	require.Len(t, set, 1)
	day, _ := findDay(set, "2025-05-20")
	assert.Equal(t, models.SlotFlags{Morning: true, Afternoon: true}, day.Slots)
	assert.True(t, day.Available)

	set, err = ToggleDay(set, "2025-05-20")
	require.NoError(t, err)
	assert.Empty(t, set)
}

func TestToggleDay_AsymmetryWithSingleSlot(t *testing.T) {
	// Intentional asymmetry: a day holding exactly one open slot does not
	// round trip — the first toggle removes it, the second recreates it with
	// both slots open.
	set := models.AvailabilitySet{
		{Date: "2025-05-20", Available: true, Slots: models.SlotFlags{Morning: true}},
	}

	set, err := ToggleDay(set, "2025-05-20")
	require.NoError(t, err)
	assert.Empty(t, set)

	set, err = ToggleDay(set, "2025-05-20")
	require.NoError(t, err)
	day, _ := findDay(set, "2025-05-20")
	assert.Equal(t, models.SlotFlags{Morning: true, Afternoon: true}, day.Slots)
}

func TestToggleDay_RemovesOnlyTargetDate(t *testing.T) {
	set := models.AvailabilitySet{
		{Date: "2025-05-20", Available: true, Slots: models.SlotFlags{Morning: true, Afternoon: true}},
		{Date: "2025-05-22", Available: true, Slots: models.SlotFlags{Morning: true}},
	}
	out, err := ToggleDay(set, "2025-05-20")
	require.NoError(t, err)
	require.Len(t, out, 1)
	_, ok := findDay(out, "2025-05-22")
	assert.True(t, ok)
}

func TestToggleDay_InvalidDate(t *testing.T) {
	_, err := ToggleDay(nil, "2025/05/20")
	require.Error(t, err)
	assert.True(t, IsInvalidInput(err))
}

func TestNormalize(t *testing.T) {
	set := models.AvailabilitySet{
		{Date: "2025-05-20", Slots: models.SlotFlags{Morning: true}},
		{Date: "2025-05-21", Slots: models.SlotFlags{}}, // both false: dropped
		{Date: "2025-05-20", Slots: models.SlotFlags{Afternoon: true}}, // later entry wins
	}
	out := Normalize(set)
	require.Len(t, out, 1)
	assert.Equal(t, models.SlotFlags{Afternoon: true}, out[0].Slots)
	assert.True(t, out[0].Available)
	assertInvariants(t, out)
}
