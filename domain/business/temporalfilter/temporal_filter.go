package temporalfilter

import (
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	"bikeshare/domain/business/selection"
	"bikeshare/domain/entities/trip"
	"bikeshare/utils"
)

// Apply returns a new Dataset with the trips of ds that start in the given month and
// on the given day. "all" disables the corresponding condition. Trips keep their
// relative order and ds is never modified.
func Apply(ds *trip.Dataset, month string, day string) (*trip.Dataset, error) {
	month, day = utils.NormalizeInput(month), utils.NormalizeInput(day)

	monthIdx := 0
	if month != selection.All {
		idx, ok := selection.MonthIndex(month)
		if !ok {
			return nil, fmt.Errorf("%w %q", selection.ErrInvalidMonth, month)
		}
		monthIdx = idx
	}

	filterDay := day != selection.All
	if filterDay {
		if _, err := selection.ValidateDay(day); err != nil {
			return nil, err
		}
	}

	var records []trip.Record
	for i := 0; i < ds.Len(); i++ {
		record := ds.Record(i)
		if monthIdx != 0 && record.Derived.Month != monthIdx {
			continue
		}
		if filterDay && !strings.EqualFold(record.Derived.DayOfWeek, day) {
			continue
		}
		records = append(records, record)
	}

	log.Debugf("[filter: temporal][city: %s][month: %s][day: %s][status: OK] %v of %v trips selected", ds.Metadata().GetCity(), month, day, len(records), ds.Len())
	return trip.NewDataset(ds.Metadata(), records, ds.Stations()), nil
}
