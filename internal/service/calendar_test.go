package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAddMonth(t *testing.T) {
	cases := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{"leap year clamp", date(2024, time.January, 31), date(2024, time.February, 29)},
		{"common year clamp", date(2023, time.January, 31), date(2023, time.February, 28)},
		{"thirty day month", date(2024, time.March, 31), date(2024, time.April, 30)},
		{"plain", date(2024, time.May, 15), date(2024, time.June, 15)},
		{"year rollover", date(2024, time.December, 31), date(2025, time.January, 31)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.True(t, tc.want.Equal(addMonth(tc.in)), "got %s", addMonth(tc.in))
		})
	}
}

func TestAddMonth_KeepsClockAndZone(t *testing.T) {
	loc := time.FixedZone("IST", 5*3600+1800)
	in := time.Date(2024, time.August, 31, 18, 45, 10, 0, loc)

	got := addMonth(in)

	assert.Equal(t, time.Date(2024, time.September, 30, 18, 45, 10, 0, loc), got)
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 10, 0, 0, 0, time.UTC)
}
