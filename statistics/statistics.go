// Package statistics computes descriptive statistics over a trip Dataset. Every
// aggregator is read-only and reports NoData instead of failing on an empty Dataset.
package statistics

import (
	"time"

	"bikeshare/domain/business/modecounter"
)

// NoDataMessage text shown for a summary computed over zero trips
const NoDataMessage = "No data available for the selected filters"

// Frequency amount of trips with a given value
type Frequency = modecounter.Frequency[string]

// TimeSummary most frequent times of travel
type TimeSummary struct {
	NoData       bool          `json:"no_data"`
	PopularMonth string        `json:"popular_month,omitempty"`
	MonthCount   int           `json:"month_count,omitempty"`
	PopularDay   string        `json:"popular_day,omitempty"`
	DayCount     int           `json:"day_count,omitempty"`
	PopularHour  int           `json:"popular_hour"`
	HourCount    int           `json:"hour_count,omitempty"`
	Elapsed      time.Duration `json:"elapsed"`
}

// StationSummary most popular stations and route
// + RouteDistanceKm: great-circle length of PopularRoute, only set when HasRouteDistance
type StationSummary struct {
	NoData              bool          `json:"no_data"`
	PopularStartStation string        `json:"popular_start_station,omitempty"`
	StartStationCount   int           `json:"start_station_count,omitempty"`
	PopularEndStation   string        `json:"popular_end_station,omitempty"`
	EndStationCount     int           `json:"end_station_count,omitempty"`
	PopularRoute        string        `json:"popular_route,omitempty"`
	RouteCount          int           `json:"route_count,omitempty"`
	HasRouteDistance    bool          `json:"has_route_distance"`
	RouteDistanceKm     float64       `json:"route_distance_km,omitempty"`
	Elapsed             time.Duration `json:"elapsed"`
}

// DurationSummary total and mean trip duration
type DurationSummary struct {
	NoData      bool          `json:"no_data"`
	Trips       int           `json:"trips"`
	TotalHours  float64       `json:"total_hours"`
	MeanMinutes float64       `json:"mean_minutes"`
	Elapsed     time.Duration `json:"elapsed"`
}

// BirthYearSummary earliest, latest and most common birth year
type BirthYearSummary struct {
	Earliest int `json:"earliest"`
	Latest   int `json:"latest"`
	Popular  int `json:"popular"`
}

// UserSummary user demographics.
// + Genders: nil when the city does not report gender
// + BirthYears: nil when the city does not report birth year or no trip of the view has one
type UserSummary struct {
	NoData     bool              `json:"no_data"`
	UserTypes  []Frequency       `json:"user_types,omitempty"`
	Genders    []Frequency       `json:"genders,omitempty"`
	BirthYears *BirthYearSummary `json:"birth_years,omitempty"`
	Elapsed    time.Duration     `json:"elapsed"`
}
