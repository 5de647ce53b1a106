package statistics

import (
	"time"

	"bikeshare/domain/business/modecounter"
	"bikeshare/domain/entities/trip"
)

// UserStats returns the count of each user type and, for the cities that report them,
// the count of each gender and the earliest, latest and most common birth year.
// Trips without a value for an attribute are left out of that attribute's statistics.
func UserStats(view *trip.Dataset) UserSummary {
	startTime := time.Now()
	if view.IsEmpty() {
		return UserSummary{NoData: true, Elapsed: time.Since(startTime)}
	}

	metadata := view.Metadata()
	userTypes := modecounter.NewCounter[string]()
	genders := modecounter.NewCounter[string]()
	birthYears := modecounter.NewCounter[int]()

	for i := 0; i < view.Len(); i++ {
		record := view.Record(i)
		if record.UserType != "" {
			userTypes.Add(record.UserType)
		}
		if metadata.HasGender && record.Gender != "" {
			genders.Add(record.Gender)
		}
		if metadata.HasBirthYear && record.HasBirthYear {
			birthYears.Add(record.BirthYear)
		}
	}

	summary := UserSummary{
		UserTypes: userTypes.Frequencies(),
	}

	if metadata.HasGender {
		summary.Genders = genders.Frequencies()
	}

	if earliest, latest, ok := birthYears.Bounds(); ok {
		popular, _, _ := birthYears.Mode()
		summary.BirthYears = &BirthYearSummary{
			Earliest: earliest,
			Latest:   latest,
			Popular:  popular,
		}
	}

	summary.Elapsed = time.Since(startTime)
	return summary
}
