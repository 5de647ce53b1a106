package dataloader

import (
	"strings"
)

const (
	startTimeColumn    = "Start Time"
	endTimeColumn      = "End Time"
	durationColumn     = "Trip Duration"
	startStationColumn = "Start Station"
	endStationColumn   = "End Station"
	userTypeColumn     = "User Type"
	genderColumn       = "Gender"
	birthYearColumn    = "Birth Year"

	missingColumn = -1
)

var requiredColumns = []string{
	startTimeColumn,
	endTimeColumn,
	durationColumn,
	startStationColumn,
	endStationColumn,
	userTypeColumn,
}

// tripColumns contains the index of each field of a trip in the source file
type tripColumns struct {
	StartTime    int
	EndTime      int
	Duration     int
	StartStation int
	EndStation   int
	UserType     int
	Gender       int
	BirthYear    int
}

func (tc tripColumns) hasGender() bool {
	return tc.Gender != missingColumn
}

func (tc tripColumns) hasBirthYear() bool {
	return tc.BirthYear != missingColumn
}

// newTripColumns maps the header of the file to column indexes. Unknown columns are ignored
func newTripColumns(header []string) (tripColumns, []string) {
	indexes := make(map[string]int, len(header))
	for idx, name := range header {
		indexes[strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))] = idx
	}

	var missing []string
	lookup := func(name string, required bool) int {
		idx, ok := indexes[name]
		if !ok {
			if required {
				missing = append(missing, name)
			}
			return missingColumn
		}
		return idx
	}

	columns := tripColumns{
		StartTime:    lookup(startTimeColumn, true),
		EndTime:      lookup(endTimeColumn, true),
		Duration:     lookup(durationColumn, true),
		StartStation: lookup(startStationColumn, true),
		EndStation:   lookup(endStationColumn, true),
		UserType:     lookup(userTypeColumn, true),
		Gender:       lookup(genderColumn, false),
		BirthYear:    lookup(birthYearColumn, false),
	}
	return columns, missing
}
