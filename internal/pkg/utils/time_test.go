package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTimeToMinutes(t *testing.T) {
	t.Run("Regular Times", func(t *testing.T) {
		assert.Equal(t, 0, TimeToMinutes("00:00"))
		assert.Equal(t, 570, TimeToMinutes("09:30"))
		assert.Equal(t, 1020, TimeToMinutes("17:00"))
		assert.Equal(t, 1439, TimeToMinutes("23:59"))
	})

	t.Run("Malformed Input Counts As Zero", func(t *testing.T) {
		assert.Equal(t, 0, TimeToMinutes(""))
		assert.Equal(t, 0, TimeToMinutes("abc"))
		assert.Equal(t, 540, TimeToMinutes("09:xx"), "bad minutes part becomes zero")
		assert.Equal(t, 30, TimeToMinutes("xx:30"), "bad hours part becomes zero")
	})

	t.Run("Missing Minutes Part", func(t *testing.T) {
		assert.Equal(t, 540, TimeToMinutes("9"))
	})
}

func TestParseTimeSlot(t *testing.T) {
	t.Run("Valid Slot", func(t *testing.T) {
		start, end, err := ParseTimeSlot("09:00-09:30")
		assert.NoError(t, err)
		assert.Equal(t, "09:00", start)
		assert.Equal(t, "09:30", end)
	})

	t.Run("Missing Separator", func(t *testing.T) {
		_, _, err := ParseTimeSlot("09:00")
		assert.Error(t, err)
	})
}

func TestIsSlotDuringLeave(t *testing.T) {
	slotStart := TimeToMinutes("10:00")
	slotEnd := TimeToMinutes("10:30")
	clock := func(s string) *string { return &s }

	t.Run("Full Day Leave Blocks Everything", func(t *testing.T) {
		assert.True(t, IsSlotDuringLeave(slotStart, slotEnd, nil, nil))
	})

	t.Run("Overlapping Window", func(t *testing.T) {
		assert.True(t, IsSlotDuringLeave(slotStart, slotEnd, clock("10:15"), clock("11:00")))
		assert.True(t, IsSlotDuringLeave(slotStart, slotEnd, clock("09:00"), clock("10:15")))
		assert.True(t, IsSlotDuringLeave(slotStart, slotEnd, clock("09:00"), clock("12:00")))
	})

	t.Run("Touching Boundaries Do Not Overlap", func(t *testing.T) {
		assert.False(t, IsSlotDuringLeave(slotStart, slotEnd, clock("10:30"), clock("11:00")))
		assert.False(t, IsSlotDuringLeave(slotStart, slotEnd, clock("09:00"), clock("10:00")))
	})

	t.Run("Disjoint Window", func(t *testing.T) {
		assert.False(t, IsSlotDuringLeave(slotStart, slotEnd, clock("13:00"), clock("14:00")))
	})
}

func TestParseDateYYYYMMDD(t *testing.T) {
	t.Run("Valid Date", func(t *testing.T) {
		parsed, err := ParseDateYYYYMMDD("2026-01-15")
		assert.NoError(t, err)
		assert.Equal(t, 2026, parsed.Year())
		assert.Equal(t, 15, parsed.Day())
	})

	t.Run("Impossible Calendar Date", func(t *testing.T) {
		_, err := ParseDateYYYYMMDD("2026-02-30")
		assert.Error(t, err)
	})

	t.Run("Wrong Format", func(t *testing.T) {
		_, err := ParseDateYYYYMMDD("15-01-2026")
		assert.Error(t, err)
	})
}
