package statistics

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bikeshare/domain/entities"
	"bikeshare/domain/entities/station"
	"bikeshare/domain/entities/trip"
)

type tripRow struct {
	start     string
	duration  float64
	from      string
	to        string
	userType  string
	gender    string
	birthYear int
}

func newView(metadata entities.Metadata, stations station.Index, rows ...tripRow) *trip.Dataset {
	records := make([]trip.Record, 0, len(rows))
	for _, row := range rows {
		startTime, err := time.Parse("2006-01-02 15:04:05", row.start)
		if err != nil {
			panic(err)
		}
		records = append(records, trip.Record{
			StartTime:    startTime,
			EndTime:      startTime.Add(time.Duration(row.duration) * time.Second),
			Duration:     row.duration,
			StartStation: row.from,
			EndStation:   row.to,
			UserType:     row.userType,
			Gender:       row.gender,
			BirthYear:    row.birthYear,
			HasBirthYear: row.birthYear != 0,
			Derived:      trip.NewDerived(startTime),
		})
	}
	return trip.NewDataset(metadata, records, stations)
}

var chicago = entities.NewMetadata("chicago", "chicago.csv", true, true)
var washington = entities.NewMetadata("washington", "washington.csv", false, false)

func emptyView() *trip.Dataset {
	return newView(chicago, nil)
}

func TestTimeStats(t *testing.T) {
	// 2017-03-06 is a Monday, 2017-03-07 a Tuesday, 2017-01-03 a Tuesday
	view := newView(washington, nil,
		tripRow{start: "2017-03-06 08:10:00", from: "A", to: "B"},
		tripRow{start: "2017-03-07 17:00:00", from: "A", to: "B"},
		tripRow{start: "2017-01-03 17:45:00", from: "A", to: "B"},
		tripRow{start: "2017-03-06 08:59:59", from: "A", to: "B"},
	)
	require.False(t, view.HoursCached())

	summary := TimeStats(view)
	assert.False(t, summary.NoData)
	assert.Equal(t, "March", summary.PopularMonth)
	assert.Equal(t, 3, summary.MonthCount)
	// Monday and Tuesday both appear twice
	assert.Equal(t, "Monday", summary.PopularDay)
	assert.Equal(t, 2, summary.DayCount)
	// 8 and 17 both appear twice
	assert.Equal(t, 8, summary.PopularHour)
	assert.Equal(t, 2, summary.HourCount)

	assert.True(t, view.HoursCached())
}

func TestStationStats(t *testing.T) {
	view := newView(washington, nil,
		tripRow{start: "2017-01-01 00:00:00", from: "B", to: "X"},
		tripRow{start: "2017-01-01 00:00:00", from: "A", to: "Y"},
		tripRow{start: "2017-01-01 00:00:00", from: "B", to: "Y"},
		tripRow{start: "2017-01-01 00:00:00", from: "A", to: "Y"},
	)

	summary := StationStats(view)
	assert.False(t, summary.NoData)
	assert.Equal(t, "A", summary.PopularStartStation)
	assert.Equal(t, 2, summary.StartStationCount)
	assert.Equal(t, "Y", summary.PopularEndStation)
	assert.Equal(t, 3, summary.EndStationCount)
	assert.Equal(t, "A - Y", summary.PopularRoute)
	assert.Equal(t, 2, summary.RouteCount)
	assert.False(t, summary.HasRouteDistance)
}

func TestStationStatsTieBreak(t *testing.T) {
	view := newView(washington, nil,
		tripRow{start: "2017-01-01 00:00:00", from: "B", to: "B"},
		tripRow{start: "2017-01-01 00:00:00", from: "A", to: "A"},
	)

	summary := StationStats(view)
	assert.Equal(t, "A", summary.PopularStartStation)
	assert.Equal(t, "A", summary.PopularEndStation)
	assert.Equal(t, "A - A", summary.PopularRoute)
}

func TestStationStatsRouteDistance(t *testing.T) {
	stations := station.NewIndex([]station.StationData{
		{Name: "North - Side", Latitude: 42.0, Longitude: -87.0},
		{Name: "South", Latitude: 41.0, Longitude: -87.0},
	})
	view := newView(washington, stations,
		tripRow{start: "2017-01-01 00:00:00", from: "North - Side", to: "South"},
	)

	summary := StationStats(view)
	assert.Equal(t, "North - Side - South", summary.PopularRoute)
	assert.True(t, summary.HasRouteDistance)
	assert.InDelta(t, 111.0, summary.RouteDistanceKm, 1.0)
}

func TestDurationStats(t *testing.T) {
	view := newView(washington, nil,
		tripRow{start: "2017-01-01 00:00:00", duration: 3600, from: "A", to: "B"},
		tripRow{start: "2017-01-01 00:00:00", duration: 1800, from: "A", to: "B"},
		tripRow{start: "2017-01-01 00:00:00", duration: 900, from: "A", to: "B"},
	)

	summary := DurationStats(view)
	assert.False(t, summary.NoData)
	assert.Equal(t, 3, summary.Trips)
	assert.Equal(t, 1.75, summary.TotalHours)
	assert.Equal(t, 35.0, summary.MeanMinutes)
}

func TestUserStats(t *testing.T) {
	view := newView(chicago, nil,
		tripRow{start: "2017-01-01 00:00:00", from: "A", to: "B", userType: "Customer", gender: "Female", birthYear: 1990},
		tripRow{start: "2017-01-01 00:00:00", from: "A", to: "B", userType: "Subscriber", gender: "Male", birthYear: 1985},
		tripRow{start: "2017-01-01 00:00:00", from: "A", to: "B", userType: "Subscriber", gender: "Male", birthYear: 1990},
		tripRow{start: "2017-01-01 00:00:00", from: "A", to: "B", userType: "Dependent", gender: "", birthYear: 1985},
		tripRow{start: "2017-01-01 00:00:00", from: "A", to: "B", userType: "", gender: "Female", birthYear: 0},
		tripRow{start: "2017-01-01 00:00:00", from: "A", to: "B", userType: "Customer", gender: "", birthYear: 1939},
	)

	summary := UserStats(view)
	assert.False(t, summary.NoData)
	assert.Equal(t, []Frequency{
		{Value: "Customer", Count: 2},
		{Value: "Subscriber", Count: 2},
		{Value: "Dependent", Count: 1},
	}, summary.UserTypes)
	assert.Equal(t, []Frequency{
		{Value: "Female", Count: 2},
		{Value: "Male", Count: 2},
	}, summary.Genders)
	require.NotNil(t, summary.BirthYears)
	assert.Equal(t, BirthYearSummary{Earliest: 1939, Latest: 1990, Popular: 1985}, *summary.BirthYears)
}

func TestUserStatsWithoutDemographics(t *testing.T) {
	view := newView(washington, nil,
		tripRow{start: "2017-01-01 00:00:00", from: "A", to: "B", userType: "Subscriber"},
	)

	summary := UserStats(view)
	assert.Equal(t, []Frequency{{Value: "Subscriber", Count: 1}}, summary.UserTypes)
	assert.Nil(t, summary.Genders)
	assert.Nil(t, summary.BirthYears)
}

func TestEmptyViewReportsNoData(t *testing.T) {
	view := emptyView()

	assert.True(t, TimeStats(view).NoData)
	assert.True(t, StationStats(view).NoData)
	assert.True(t, DurationStats(view).NoData)
	assert.True(t, UserStats(view).NoData)
	assert.False(t, view.HoursCached())
}

func TestRun(t *testing.T) {
	view := newView(chicago, nil,
		tripRow{start: "2017-02-01 12:00:00", duration: 600, from: "A", to: "B", userType: "Subscriber", gender: "Male", birthYear: 1980},
		tripRow{start: "2017-02-02 12:30:00", duration: 1200, from: "A", to: "C", userType: "Subscriber", gender: "Female", birthYear: 1990},
	)

	report, err := Run(context.Background(), view)
	require.NoError(t, err)
	assert.Equal(t, 2, report.Trips)
	assert.False(t, report.NoData())
	assert.Equal(t, "February", report.Time.PopularMonth)
	assert.Equal(t, 12, report.Time.PopularHour)
	assert.Equal(t, "A", report.Station.PopularStartStation)
	assert.Equal(t, "A - B", report.Station.PopularRoute)
	assert.Equal(t, 0.5, report.Duration.TotalHours)
	assert.Equal(t, 15.0, report.Duration.MeanMinutes)
	assert.Equal(t, 1980, report.User.BirthYears.Earliest)

	again, err := Run(context.Background(), view)
	require.NoError(t, err)
	assert.Equal(t, report.Time.PopularHour, again.Time.PopularHour)
	assert.Equal(t, report.Station.PopularRoute, again.Station.PopularRoute)
}

func TestRunEmptyView(t *testing.T) {
	report, err := Run(context.Background(), emptyView())
	require.NoError(t, err)
	assert.True(t, report.NoData())
	assert.True(t, report.Time.NoData)
	assert.True(t, report.Station.NoData)
	assert.True(t, report.Duration.NoData)
	assert.True(t, report.User.NoData)
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, emptyView())
	assert.ErrorIs(t, err, context.Canceled)
}
