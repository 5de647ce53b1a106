package dataloader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"bikeshare/config"
	"bikeshare/domain/entities"
	"bikeshare/domain/entities/station"
	"bikeshare/domain/entities/trip"
)

const (
	timeLayout = "2006-01-02 15:04:05"
	loaderStr  = "dataset-loader"
)

// Loader reads the trips of the cities declared in its config
type Loader struct {
	config config.DatasetConfig
}

func NewLoader(datasetConfig config.DatasetConfig) *Loader {
	return &Loader{
		config: datasetConfig,
	}
}

func (l *Loader) getLogMessage(city string, method string, message string, err error) string {
	if err != nil {
		return fmt.Sprintf("[loader: %s][city: %s][method: %s][status: ERROR] %s: %s", loaderStr, city, method, message, err.Error())
	}
	return fmt.Sprintf("[loader: %s][city: %s][method: %s][status: OK] %s", loaderStr, city, method, message)
}

// Cities returns the registry keys, sorted
func (l *Loader) Cities() []string {
	cities := l.config.CityNames()
	sort.Strings(cities)
	return cities
}

// Load reads every trip of city. The load is all-or-nothing: the first invalid value
// aborts it with a *ParseError and no Dataset is returned.
func (l *Loader) Load(city string) (*trip.Dataset, error) {
	startTime := time.Now()

	filepath, ok := l.config.CityFilepath(city)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCity, city)
	}

	stations, err := l.loadStations()
	if err != nil {
		log.Error(l.getLogMessage(city, "Load", "error loading stations", err))
		return nil, err
	}

	dataFile, err := os.Open(filepath)
	if err != nil {
		log.Error(l.getLogMessage(city, "Load", fmt.Sprintf("error opening %s", filepath), err))
		return nil, fmt.Errorf("error opening %s: %w", filepath, err)
	}

	defer func(dataFile *os.File) {
		err := dataFile.Close()
		if err != nil {
			log.Error(l.getLogMessage(city, "Load", fmt.Sprintf("error closing %s", filepath), err))
		}
	}(dataFile)

	ds, err := ReadTrips(dataFile, city, filepath, stations)
	if err != nil {
		log.Error(l.getLogMessage(city, "Load", "error reading trips", err))
		return nil, err
	}

	log.Info(l.getLogMessage(city, "Load", fmt.Sprintf("%v trips loaded in %s", ds.Len(), time.Since(startTime)), nil))
	return ds, nil
}

func (l *Loader) loadStations() (station.Index, error) {
	stationsFilepath := l.config.StationsFilepath()
	if stationsFilepath == "" {
		return nil, nil
	}
	return LoadStations(stationsFilepath)
}

// ReadTrips parses a CSV with header from reader. source is only used in errors and metadata
func ReadTrips(reader io.Reader, city string, source string, stations station.Index) (*trip.Dataset, error) {
	csvReader := csv.NewReader(reader)
	csvReader.ReuseRecord = true

	header, err := csvReader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, newParseError(source, 1, "", "", errors.New("empty file"), ErrInvalidTripData)
		}
		return nil, newParseError(source, 1, "", "", err, ErrInvalidRow)
	}

	columns, missing := newTripColumns(header)
	if len(missing) > 0 {
		return nil, newParseError(source, 1, strings.Join(missing, ", "), "", ErrMissingColumn, ErrInvalidTripData)
	}

	var records []trip.Record
	for {
		row, err := csvReader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line := recordLine(csvReader, err)
		if err != nil {
			return nil, newParseError(source, line, "", "", err, ErrInvalidRow)
		}

		record, err := getTripRecord(row, columns, source, line)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	metadata := entities.NewMetadata(city, source, columns.hasGender(), columns.hasBirthYear())
	return trip.NewDataset(metadata, records, stations), nil
}

// recordLine returns the file line of the record last read by csvReader. Quoted fields
// may span several lines, so it differs from the amount of records read.
func recordLine(csvReader *csv.Reader, err error) int {
	var csvErr *csv.ParseError
	if errors.As(err, &csvErr) {
		return csvErr.Line
	}
	if err != nil {
		return 0
	}
	line, _ := csvReader.FieldPos(0)
	return line
}

func getTripRecord(row []string, columns tripColumns, source string, line int) (trip.Record, error) {
	startTimeStr := row[columns.StartTime]
	startTime, err := time.Parse(timeLayout, startTimeStr)
	if err != nil {
		log.Debugf("Invalid start time at line %v: %v", line, startTimeStr)
		return trip.Record{}, newParseError(source, line, startTimeColumn, startTimeStr, ErrInvalidDate, ErrInvalidTripData)
	}

	endTimeStr := row[columns.EndTime]
	endTime, err := time.Parse(timeLayout, endTimeStr)
	if err != nil {
		log.Debugf("Invalid end time at line %v: %v", line, endTimeStr)
		return trip.Record{}, newParseError(source, line, endTimeColumn, endTimeStr, ErrInvalidDate, ErrInvalidTripData)
	}

	if endTime.Before(startTime) {
		return trip.Record{}, newParseError(source, line, endTimeColumn, endTimeStr, ErrInvalidTripWindow, ErrInvalidTripData)
	}

	durationStr := strings.TrimSpace(row[columns.Duration])
	duration, err := strconv.ParseFloat(durationStr, 64)
	if err != nil || math.IsNaN(duration) || math.IsInf(duration, 0) {
		log.Debugf("Invalid duration type at line %v: %v", line, durationStr)
		return trip.Record{}, newParseError(source, line, durationColumn, durationStr, ErrInvalidDurationType, ErrInvalidTripData)
	}

	if duration < 0 {
		return trip.Record{}, newParseError(source, line, durationColumn, durationStr, ErrNegativeDuration, ErrInvalidTripData)
	}

	// csv.Reader reuses row, so strings are copied into the record
	record := trip.Record{
		StartTime:    startTime,
		EndTime:      endTime,
		Duration:     duration,
		StartStation: strings.Clone(row[columns.StartStation]),
		EndStation:   strings.Clone(row[columns.EndStation]),
		UserType:     strings.Clone(strings.TrimSpace(row[columns.UserType])),
		Derived:      trip.NewDerived(startTime),
	}

	if columns.hasGender() {
		record.Gender = strings.Clone(strings.TrimSpace(row[columns.Gender]))
	}

	if columns.hasBirthYear() {
		birthYearStr := strings.TrimSpace(row[columns.BirthYear])
		if birthYearStr != "" {
			birthYear, err := parseBirthYear(birthYearStr)
			if err != nil {
				log.Debugf("Invalid birth year at line %v: %v", line, birthYearStr)
				return trip.Record{}, newParseError(source, line, birthYearColumn, birthYearStr, ErrInvalidBirthYear, ErrInvalidTripData)
			}
			record.BirthYear = birthYear
			record.HasBirthYear = true
		}
	}

	return record, nil
}

// parseBirthYear accepts whole numbers written as integers or floats, e.g. 1989 or 1989.0
func parseBirthYear(value string) (int, error) {
	year, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, err
	}
	if year != math.Trunc(year) || math.IsInf(year, 0) {
		return 0, fmt.Errorf("%v is not a whole year", value)
	}
	return int(year), nil
}
