package statistics

import (
	"time"

	"bikeshare/domain/business/durationaccumulator"
	"bikeshare/domain/entities/trip"
)

// DurationStats returns the total travel time in hours and the mean travel time in minutes
func DurationStats(view *trip.Dataset) DurationSummary {
	startTime := time.Now()
	if view.IsEmpty() {
		return DurationSummary{NoData: true, Elapsed: time.Since(startTime)}
	}

	accumulator := durationaccumulator.NewDurationAccumulator()
	for i := 0; i < view.Len(); i++ {
		accumulator.UpdateAccumulator(view.Record(i).Duration)
	}

	return DurationSummary{
		Trips:       accumulator.Counter,
		TotalHours:  accumulator.TotalHours(),
		MeanMinutes: accumulator.MeanMinutes(),
		Elapsed:     time.Since(startTime),
	}
}
