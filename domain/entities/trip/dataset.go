package trip

import (
	"sync"
	"sync/atomic"

	"bikeshare/domain/entities"
	"bikeshare/domain/entities/station"
)

// Dataset ordered, read-only collection of trips of one city. A filtered view of a
// Dataset is a new Dataset, so both share this type.
// The only state written after construction is the hour of each trip, computed once
// on first use.
type Dataset struct {
	metadata entities.Metadata
	records  []Record
	stations station.Index

	hourOnce    sync.Once
	hoursCached atomic.Bool
	hours       []int
}

// NewDataset builds a Dataset that owns records. Callers must not modify records afterwards
func NewDataset(metadata entities.Metadata, records []Record, stations station.Index) *Dataset {
	return &Dataset{
		metadata: metadata,
		records:  records,
		stations: stations,
	}
}

func (d *Dataset) Metadata() entities.Metadata {
	return d.metadata
}

// Stations returns the coordinates index attached at load time. It may be empty
func (d *Dataset) Stations() station.Index {
	return d.stations
}

func (d *Dataset) Len() int {
	return len(d.records)
}

func (d *Dataset) IsEmpty() bool {
	return len(d.records) == 0
}

// Record returns a copy of the i-th trip
func (d *Dataset) Record(i int) Record {
	return d.records[i]
}

// Slice returns a copy of the trips in [from, to). Bounds are clamped to the dataset
func (d *Dataset) Slice(from int, to int) []Record {
	if from < 0 {
		from = 0
	}
	if to > len(d.records) {
		to = len(d.records)
	}
	if from >= to {
		return []Record{}
	}

	page := make([]Record, to-from)
	copy(page, d.records[from:to])
	return page
}

// Records returns a copy of all the trips in source order
func (d *Dataset) Records() []Record {
	return d.Slice(0, len(d.records))
}

// Hours returns the start hour of every trip, aligned with the records. The values are
// computed the first time this method is called and cached afterwards; concurrent
// callers wait for the single computation.
func (d *Dataset) Hours() []int {
	d.hourOnce.Do(func() {
		hours := make([]int, len(d.records))
		for i := range d.records {
			hours[i] = d.records[i].Hour()
		}
		d.hours = hours
		d.hoursCached.Store(true)
	})
	return d.hours
}

// HoursCached returns true if Hours was already computed
func (d *Dataset) HoursCached() bool {
	return d.hoursCached.Load()
}
