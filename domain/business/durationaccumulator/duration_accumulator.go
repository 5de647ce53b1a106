package durationaccumulator

import "strconv"

const (
	secondsPerHour   = 3600
	secondsPerMinute = 60
)

// DurationAccumulator collects trip durations
// + Counter: amount of trips collected
// + TotalDuration: sum of durations in seconds
type DurationAccumulator struct {
	Counter       int     `json:"counter"`
	TotalDuration float64 `json:"total_duration"`
}

func NewDurationAccumulator() *DurationAccumulator {
	return &DurationAccumulator{}
}

func (da *DurationAccumulator) UpdateAccumulator(duration float64) {
	da.Counter += 1
	da.TotalDuration += duration
}

// TotalHours returns the sum of durations in hours, rounded half to even to 2 decimals
func (da *DurationAccumulator) TotalHours() float64 {
	return Round2(da.TotalDuration / secondsPerHour)
}

// MeanMinutes returns the mean duration in minutes, rounded half to even to 2 decimals.
// It panics if nothing was accumulated.
func (da *DurationAccumulator) MeanMinutes() float64 {
	if da.Counter == 0 {
		panic("[DurationAccumulator] cannot get mean, counter is zero")
	}
	return Round2(da.TotalDuration / float64(da.Counter) / secondsPerMinute)
}

// Round2 rounds value to 2 decimals using round half to even on its exact binary value,
// so 2.675 (stored as 2.67499...) becomes 2.67
func Round2(value float64) float64 {
	rounded, _ := strconv.ParseFloat(strconv.FormatFloat(value, 'f', 2, 64), 64)
	return rounded
}
