package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		aIn  time.Time
		aOut time.Time
		bIn  time.Time
		bOut time.Time
		want bool
	}{
		{
			name: "Identical ranges overlap",
			aIn: date(2025, 10, 10), aOut: date(2025, 10, 12),
			bIn: date(2025, 10, 10), bOut: date(2025, 10, 12),
			want: true,
		},
		{
			name: "Partial overlap at the end",
			aIn: date(2025, 10, 10), aOut: date(2025, 10, 12),
			bIn: date(2025, 10, 11), bOut: date(2025, 10, 13),
			want: true,
		},
		{
			name: "One range inside the other",
			aIn: date(2025, 10, 10), aOut: date(2025, 10, 20),
			bIn: date(2025, 10, 12), bOut: date(2025, 10, 14),
			want: true,
		},
		{
			name: "Turnover day: checkout equals next check-in",
			aIn: date(2025, 10, 10), aOut: date(2025, 10, 12),
			bIn: date(2025, 10, 12), bOut: date(2025, 10, 14),
			want: false,
		},
		{
			name: "Turnover day reversed",
			aIn: date(2025, 10, 12), aOut: date(2025, 10, 14),
			bIn: date(2025, 10, 10), bOut: date(2025, 10, 12),
			want: false,
		},
		{
			name: "Fully disjoint ranges",
			aIn: date(2025, 10, 1), aOut: date(2025, 10, 3),
			bIn: date(2025, 10, 10), bOut: date(2025, 10, 12),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Overlaps(tt.aIn, tt.aOut, tt.bIn, tt.bOut)
			assert.Equal(t, tt.want, got)

			// Overlap is symmetric.
			assert.Equal(t, tt.want, Overlaps(tt.bIn, tt.bOut, tt.aIn, tt.aOut))
		})
	}
}

func TestNights(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		want     int
	}{
		{
			name:    "Two nights",
			checkIn: date(2025, 10, 10), checkOut: date(2025, 10, 12),
			want: 2,
		},
		{
			name:    "Single night",
			checkIn: date(2025, 10, 10), checkOut: date(2025, 10, 11),
			want: 1,
		},
		{
			name:    "Same day counts as one night",
			checkIn: date(2025, 10, 10), checkOut: date(2025, 10, 10),
			want: 1,
		},
		{
			name:    "Partial day rounds up",
			checkIn: date(2025, 10, 10),
			checkOut: time.Date(2025, 10, 11, 14, 0, 0, 0, time.UTC),
			want: 2,
		},
		{
			name:    "Month boundary",
			checkIn: date(2025, 10, 30), checkOut: date(2025, 11, 2),
			want: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Nights(tt.checkIn, tt.checkOut))
		})
	}
}

func TestTotalAmount(t *testing.T) {
	tests := []struct {
		name   string
		price  float64
		nights int
		want   float64
	}{
		{name: "Whole dollars", price: 100, nights: 2, want: 200},
		{name: "Cents round cleanly", price: 99.99, nights: 3, want: 299.97},
		{name: "Rounding artifact trimmed", price: 0.1, nights: 3, want: 0.3},
		{name: "Single night", price: 149.5, nights: 1, want: 149.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TotalAmount(tt.price, tt.nights))
		})
	}
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from Status
		to   Status
		want bool
	}{
		{name: "Pending to confirmed", from: StatusPending, to: StatusConfirmed, want: true},
		{name: "Pending to cancelled", from: StatusPending, to: StatusCancelled, want: true},
		{name: "Pending to completed", from: StatusPending, to: StatusCompleted, want: false},
		{name: "Confirmed to cancelled", from: StatusConfirmed, to: StatusCancelled, want: true},
		{name: "Confirmed to completed", from: StatusConfirmed, to: StatusCompleted, want: true},
		{name: "Confirmed to pending", from: StatusConfirmed, to: StatusPending, want: false},
		{name: "Cancelled is terminal", from: StatusCancelled, to: StatusConfirmed, want: false},
		{name: "Completed is terminal", from: StatusCompleted, to: StatusCancelled, want: false},
		{name: "Same status is a no-op", from: StatusConfirmed, to: StatusConfirmed, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanTransition(tt.from, tt.to))
		})
	}
}

func TestNormalizeDate(t *testing.T) {
	in := time.Date(2025, 10, 10, 15, 4, 5, 123, time.FixedZone("X", 3600))
	got := NormalizeDate(in)

	assert.Equal(t, date(2025, 10, 10), got)
	assert.Equal(t, time.UTC, got.Location())
}

func TestActive(t *testing.T) {
	assert.True(t, (&Booking{Status: StatusConfirmed}).Active())
	assert.True(t, (&Booking{Status: StatusPending}).Active())
	assert.True(t, (&Booking{Status: StatusCompleted}).Active())
	assert.False(t, (&Booking{Status: StatusCancelled}).Active())
}
