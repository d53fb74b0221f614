package store

import (
    "testing"
    "time"

    "github.com/stretchr/testify/assert"
)

func TestPeriodBefore(t *testing.T) {
    aug := time.Date(2026, time.August, 15, 10, 30, 0, 0, time.UTC)

    cases := []struct {
        offset int
        month  int
        year   int
    }{
        {0, 7, 2026}, // August, zero-based
        {1, 6, 2026},
        {6, 1, 2026}, // February
        {7, 0, 2026}, // January
        {8, 11, 2025},
        {20, 11, 2024},
    }
    for _, c := range cases {
        month, year := PeriodBefore(aug, c.offset)
        assert.Equal(t, c.month, month, "offset %d", c.offset)
        assert.Equal(t, c.year, year, "offset %d", c.offset)
    }
}

func TestPeriodBeforeIgnoresDayOfMonth(t *testing.T) {
    // The 31st must not skip short months when shifting.
    jan31 := time.Date(2026, time.January, 31, 0, 0, 0, 0, time.UTC)
    month, year := PeriodBefore(jan31, 1)
    assert.Equal(t, 11, month)
    assert.Equal(t, 2025, year)
}
