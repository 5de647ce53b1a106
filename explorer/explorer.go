// Package explorer is the entry point of a query: it loads a city, narrows it to the
// selected month and day, and hands the result to the statistics and the raw pager.
package explorer

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"bikeshare/domain/business/rawpager"
	"bikeshare/domain/business/selection"
	"bikeshare/domain/business/temporalfilter"
	"bikeshare/domain/entities/trip"
	"bikeshare/statistics"
)

// DatasetLoader loads the whole dataset of a city
type DatasetLoader interface {
	Load(city string) (*trip.Dataset, error)
	Cities() []string
}

type Explorer struct {
	loader DatasetLoader
}

func New(loader DatasetLoader) *Explorer {
	return &Explorer{
		loader: loader,
	}
}

// Cities returns the cities that can be selected
func (e *Explorer) Cities() []string {
	return e.loader.Cities()
}

// Validate checks raw selectors against the cities of the loader
func (e *Explorer) Validate(city string, month string, day string) (selection.Selection, error) {
	return selection.Validate(city, month, day, e.loader.Cities())
}

// Load returns the trips of city that match month and day. Selectors are expected to
// be validated already; loader errors are returned as they are.
func (e *Explorer) Load(city string, month string, day string) (*trip.Dataset, error) {
	ds, err := e.loader.Load(city)
	if err != nil {
		return nil, err
	}

	view, err := temporalfilter.Apply(ds, month, day)
	if err != nil {
		return nil, fmt.Errorf("error filtering %s trips: %w", city, err)
	}

	log.Debugf("[explorer][city: %s][month: %s][day: %s][status: OK] view with %v trips", city, month, day, view.Len())
	return view, nil
}

// LoadSelection is Load for an already validated Selection
func (e *Explorer) LoadSelection(sel selection.Selection) (*trip.Dataset, error) {
	return e.Load(sel.City, sel.Month, sel.Day)
}

// Report computes every summary of view
func (e *Explorer) Report(ctx context.Context, view *trip.Dataset) (statistics.Report, error) {
	return statistics.Run(ctx, view)
}

func (e *Explorer) TimeStats(view *trip.Dataset) statistics.TimeSummary {
	return statistics.TimeStats(view)
}

func (e *Explorer) StationStats(view *trip.Dataset) statistics.StationSummary {
	return statistics.StationStats(view)
}

func (e *Explorer) DurationStats(view *trip.Dataset) statistics.DurationSummary {
	return statistics.DurationStats(view)
}

func (e *Explorer) UserStats(view *trip.Dataset) statistics.UserSummary {
	return statistics.UserStats(view)
}

// NewPager returns a cursor over the raw trips of view
func (e *Explorer) NewPager(view *trip.Dataset) *rawpager.Pager {
	return rawpager.New(view)
}
