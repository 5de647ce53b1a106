package station

import "github.com/umahmood/haversine"

// StationData coordinates of a station
type StationData struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Index stations by name
type Index map[string]StationData

// NewIndex builds an Index from a list of stations. Later entries win on duplicated names
func NewIndex(stations []StationData) Index {
	index := make(Index, len(stations))
	for _, stationData := range stations {
		index[stationData.Name] = stationData
	}
	return index
}

// Distance returns the distance in km between the two stations using haversine formula.
// The bool is false if any of the stations is unknown.
func (idx Index) Distance(startStation string, endStation string) (float64, bool) {
	start, ok := idx[startStation]
	if !ok {
		return 0, false
	}
	end, ok := idx[endStation]
	if !ok {
		return 0, false
	}

	coord1 := haversine.Coord{Lat: start.Latitude, Lon: start.Longitude}
	coord2 := haversine.Coord{Lat: end.Latitude, Lon: end.Longitude}
	_, km := haversine.Distance(coord1, coord2)
	return km, true
}
