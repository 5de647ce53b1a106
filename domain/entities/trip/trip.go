package trip

import (
	"time"
)

// Record one ride of a city dataset
// + StartTime: moment the trip begins
// + EndTime: moment the trip ends
// + Duration: length of the trip in seconds
// + StartStation: name of the station in which the trip begins
// + EndStation: name of the station in which the trip ends
// + UserType: user category, e.g. Subscriber or Customer. Empty when the row has no value
// + Gender: empty when the row has no value or the city does not report it
// + BirthYear: only meaningful when HasBirthYear is true
// + Derived: calendar attributes computed from StartTime at load time
type Record struct {
	StartTime    time.Time `json:"start_time"`
	EndTime      time.Time `json:"end_time"`
	Duration     float64   `json:"duration"`
	StartStation string    `json:"start_station"`
	EndStation   string    `json:"end_station"`
	UserType     string    `json:"user_type"`
	Gender       string    `json:"gender,omitempty"`
	BirthYear    int       `json:"birth_year,omitempty"`
	HasBirthYear bool      `json:"-"`
	Derived      Derived   `json:"derived"`
}

// Derived calendar attributes of a Record
// + Month: 1-12
// + DayOfWeek: English weekday name, e.g. Monday
type Derived struct {
	Month     int    `json:"month"`
	DayOfWeek string `json:"day_of_week"`
}

// NewDerived computes the derived attributes of a trip that starts at startTime
func NewDerived(startTime time.Time) Derived {
	return Derived{
		Month:     int(startTime.Month()),
		DayOfWeek: startTime.Weekday().String(),
	}
}

// Route returns start and end station joined as "<start> - <end>"
func (r Record) Route() string {
	return r.StartStation + " - " + r.EndStation
}

// Hour returns the hour (0-23) in which the trip begins
func (r Record) Hour() int {
	return r.StartTime.Hour()
}
