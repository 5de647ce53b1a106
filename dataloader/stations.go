package dataloader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"

	"bikeshare/domain/entities/station"
)

// order of the fields in the stations file: name,latitude,longitude
const (
	stationNameIdx = iota
	stationLatitudeIdx
	stationLongitudeIdx
	stationFields
)

// LoadStations reads the coordinates file located at filepath
func LoadStations(filepath string) (station.Index, error) {
	stationsFile, err := os.Open(filepath)
	if err != nil {
		return nil, fmt.Errorf("error opening stations file %s: %w", filepath, err)
	}
	defer stationsFile.Close()

	return ReadStations(stationsFile, filepath)
}

// ReadStations parses a name,latitude,longitude CSV with header
func ReadStations(reader io.Reader, source string) (station.Index, error) {
	csvReader := csv.NewReader(reader)
	csvReader.FieldsPerRecord = stationFields

	if _, err := csvReader.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return station.NewIndex(nil), nil
		}
		return nil, newParseError(source, 1, "", "", err, ErrInvalidStationData)
	}

	var stations []station.StationData
	for {
		row, err := csvReader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line := recordLine(csvReader, err)
		if err != nil {
			return nil, newParseError(source, line, "", "", err, ErrInvalidStationData)
		}

		latitude, err := strconv.ParseFloat(strings.TrimSpace(row[stationLatitudeIdx]), 64)
		if err != nil {
			return nil, newParseError(source, line, "latitude", row[stationLatitudeIdx], err, ErrInvalidStationData)
		}

		longitude, err := strconv.ParseFloat(strings.TrimSpace(row[stationLongitudeIdx]), 64)
		if err != nil {
			return nil, newParseError(source, line, "longitude", row[stationLongitudeIdx], err, ErrInvalidStationData)
		}

		stations = append(stations, station.StationData{
			Name:      row[stationNameIdx],
			Latitude:  latitude,
			Longitude: longitude,
		})
	}

	log.Debugf("[loader: %s][source: %s] %v stations read", loaderStr, source, len(stations))
	return station.NewIndex(stations), nil
}
