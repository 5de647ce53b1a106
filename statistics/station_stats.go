package statistics

import (
	"time"

	"bikeshare/domain/business/modecounter"
	"bikeshare/domain/entities/trip"
)

// StationStats returns the most common start station, end station and route of view.
// When the Dataset carries station coordinates, the length of the route is added.
func StationStats(view *trip.Dataset) StationSummary {
	startTime := time.Now()
	if view.IsEmpty() {
		return StationSummary{NoData: true, Elapsed: time.Since(startTime)}
	}

	startStations := modecounter.NewCounter[string]()
	endStations := modecounter.NewCounter[string]()
	routes := modecounter.NewCounter[string]()
	routeStations := make(map[string][2]string)

	for i := 0; i < view.Len(); i++ {
		record := view.Record(i)
		startStations.Add(record.StartStation)
		endStations.Add(record.EndStation)

		route := record.Route()
		routes.Add(route)
		if _, ok := routeStations[route]; !ok {
			routeStations[route] = [2]string{record.StartStation, record.EndStation}
		}
	}

	startStation, startCount, _ := startStations.Mode()
	endStation, endCount, _ := endStations.Mode()
	route, routeCount, _ := routes.Mode()

	summary := StationSummary{
		PopularStartStation: startStation,
		StartStationCount:   startCount,
		PopularEndStation:   endStation,
		EndStationCount:     endCount,
		PopularRoute:        route,
		RouteCount:          routeCount,
	}

	// station names may contain " - ", so the pair is looked up instead of splitting the route
	pair := routeStations[route]
	if km, ok := view.Stations().Distance(pair[0], pair[1]); ok {
		summary.HasRouteDistance = true
		summary.RouteDistanceKm = km
	}

	summary.Elapsed = time.Since(startTime)
	return summary
}
