package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPeriodStart(t *testing.T) {
	// Wednesday, June 5th 2024
	now := time.Date(2024, time.June, 5, 15, 30, 45, 0, time.UTC)

	tests := []struct {
		name   string
		period string
		now    time.Time
		want   time.Time
	}{
		{
			name:   "month",
			period: PeriodMonth,
			now:    now,
			want:   time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:   "year",
			period: PeriodYear,
			now:    now,
			want:   time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:   "quarter second month of Q3",
			period: PeriodQuarter,
			now:    time.Date(2024, time.August, 15, 10, 0, 0, 0, time.UTC),
			want:   time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:   "quarter first month of Q1",
			period: PeriodQuarter,
			now:    time.Date(2024, time.January, 2, 10, 0, 0, 0, time.UTC),
			want:   time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:   "week on a Wednesday starts the preceding Monday",
			period: PeriodWeek,
			now:    now,
			want:   time.Date(2024, time.June, 3, 0, 0, 0, 0, time.UTC),
		},
		{
			name:   "week on a Monday starts that same day",
			period: PeriodWeek,
			now:    time.Date(2024, time.June, 3, 8, 0, 0, 0, time.UTC),
			want:   time.Date(2024, time.June, 3, 0, 0, 0, 0, time.UTC),
		},
		{
			name:   "week on a Sunday still starts the preceding Monday",
			period: PeriodWeek,
			now:    time.Date(2024, time.June, 9, 23, 59, 0, 0, time.UTC),
			want:   time.Date(2024, time.June, 3, 0, 0, 0, 0, time.UTC),
		},
		{
			name:   "unknown period falls back to month",
			period: "decade",
			now:    now,
			want:   time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:   "empty period falls back to month",
			period: "",
			now:    now,
			want:   time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PeriodStart(tt.period, tt.now))
		})
	}
}

func TestPeriodStartKeepsLocation(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*3600)
	now := time.Date(2024, time.June, 5, 1, 0, 0, 0, loc)

	got := PeriodStart(PeriodWeek, now)
	assert.Equal(t, loc, got.Location())
}
