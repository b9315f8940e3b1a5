package simulation

import (
	"fmt"
	"math"
	"time"
)

// ArrivalMinutes converts an arrival instant to minutes since midnight.
// Seconds are truncated, not rounded: a 09:30:59 arrival is minute 570.
func ArrivalMinutes(t time.Time) float64 {
	return float64(t.Hour()*60 + t.Minute())
}

// FormatClock renders a minutes-since-midnight value as zero-padded
// HH:MM. The value is floor-divided through total seconds so that any
// fractional-minute remainder is truncated, never rounded; 125.5
// renders as "02:05". Values past midnight wrap on the 24h clock.
func FormatClock(minutes float64) string {
	totalSecs := int64(math.Floor(minutes * 60))
	if totalSecs < 0 {
		totalSecs = 0
	}
	hours := (totalSecs / 3600) % 24
	mins := (totalSecs % 3600) / 60
	return fmt.Sprintf("%02d:%02d", hours, mins)
}
