package availability

import (
	"testing"

	"zeefreeze/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSet() models.AvailabilitySet {
	return models.AvailabilitySet{
		{Date: "2025-06-02", Available: true, Slots: models.SlotFlags{Morning: true, Afternoon: true}},
		{Date: "2025-06-03", Available: true, Slots: models.SlotFlags{Morning: true}},
		{Date: "2025-06-05", Available: true, Slots: models.SlotFlags{Afternoon: true}},
	}
}

func TestIsDateAvailable(t *testing.T) {
	set := sampleSet()

	ok, err := IsDateAvailable(set, "2025-06-02")
	require.NoError(t, err)
	assert.True(t, ok)

	// Well-formed but absent date: false, never an error.
	ok, err = IsDateAvailable(set, "2025-06-04")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = IsDateAvailable(set, "June 2, 2025")
	require.Error(t, err)
	assert.True(t, IsInvalidInput(err))
}

func TestIsSlotAvailable(t *testing.T) {
	set := sampleSet()

	cases := []struct {
		name string
		date string
		slot string
		want bool
	}{
		{"both open morning", "2025-06-02", models.SlotMorning, true},
		{"morning only afternoon closed", "2025-06-03", models.SlotAfternoon, false},
		{"afternoon only", "2025-06-05", models.SlotAfternoon, true},
		{"absent date", "2025-06-09", models.SlotMorning, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := IsSlotAvailable(set, tc.date, tc.slot)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	_, err := IsSlotAvailable(set, "2025-06-02", "night")
	require.Error(t, err)
	assert.True(t, IsInvalidInput(err))
}

func TestCountAvailableDaysInRange(t *testing.T) {
	set := sampleSet()

	n, err := CountAvailableDaysInRange(set, "2025-06-01", "2025-06-30")
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	n, err = CountAvailableDaysInRange(set, "2025-06-03", "2025-06-04")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	// Boundary dates are inclusive.
	n, err = CountAvailableDaysInRange(set, "2025-06-02", "2025-06-05")
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	n, err = CountAvailableDaysInRange(set, "2025-07-01", "2025-07-31")
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestCountAvailableDaysInRange_NeverExceedsCalendarDays(t *testing.T) {
	// Duplicate dates in a raw (un-normalized) set must not inflate the count
	// past the number of calendar days in the range.
	set := models.AvailabilitySet{
		{Date: "2025-06-02", Available: true, Slots: models.SlotFlags{Morning: true}},
		{Date: "2025-06-02", Available: true, Slots: models.SlotFlags{Afternoon: true}},
		{Date: "2025-06-03", Available: true, Slots: models.SlotFlags{Morning: true}},
	}
	n, err := CountAvailableDaysInRange(set, "2025-06-02", "2025-06-03")
	require.NoError(t, err)
	assert.LessOrEqual(t, n, 2)
	assert.Equal(t, 2, n)
}

func TestCountAvailableDaysInRange_InvalidRange(t *testing.T) {
	set := sampleSet()

	_, err := CountAvailableDaysInRange(set, "2025-06-30", "2025-06-01")
	require.Error(t, err)
	assert.True(t, IsInvalidInput(err))

	_, err = CountAvailableDaysInRange(set, "bad", "2025-06-30")
	require.Error(t, err)
	assert.True(t, IsInvalidInput(err))

	_, err = CountAvailableDaysInRange(set, "2025-06-01", "bad")
	require.Error(t, err)
	assert.True(t, IsInvalidInput(err))
}
