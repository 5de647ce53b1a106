package statistics

import (
	"time"

	"bikeshare/domain/business/modecounter"
	"bikeshare/domain/entities/trip"
)

// TimeStats returns the most common month, day of week and start hour of view.
// The first call over a Dataset computes and caches the start hour of its trips.
func TimeStats(view *trip.Dataset) TimeSummary {
	startTime := time.Now()
	if view.IsEmpty() {
		return TimeSummary{NoData: true, Elapsed: time.Since(startTime)}
	}

	months := modecounter.NewCounter[int]()
	days := modecounter.NewCounter[string]()
	hourCounter := modecounter.NewCounter[int]()

	hours := view.Hours()
	for i := 0; i < view.Len(); i++ {
		derived := view.Record(i).Derived
		months.Add(derived.Month)
		days.Add(derived.DayOfWeek)
		hourCounter.Add(hours[i])
	}

	month, monthCount, _ := months.Mode()
	day, dayCount, _ := days.Mode()
	hour, hourCount, _ := hourCounter.Mode()

	return TimeSummary{
		PopularMonth: time.Month(month).String(),
		MonthCount:   monthCount,
		PopularDay:   day,
		DayCount:     dayCount,
		PopularHour:  hour,
		HourCount:    hourCount,
		Elapsed:      time.Since(startTime),
	}
}
