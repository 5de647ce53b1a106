package rawpager

import "bikeshare/domain/entities/trip"

// PageSize amount of trips returned by each page
const PageSize = 5

// Pager cursor over a Dataset that returns its trips PageSize at a time.
// A Pager is meant to be used by a single caller.
type Pager struct {
	view   *trip.Dataset
	offset int
}

func New(view *trip.Dataset) *Pager {
	return &Pager{
		view: view,
	}
}

// HasMore returns true if there are trips that were not returned yet
func (p *Pager) HasMore() bool {
	return p.offset < p.view.Len()
}

// NextPage returns up to PageSize trips starting at the cursor and moves the cursor
// past them. It returns an empty page once everything was returned.
func (p *Pager) NextPage() []trip.Record {
	page := p.view.Slice(p.offset, p.offset+PageSize)
	p.offset += len(page)
	return page
}

// Offset returns the amount of trips already returned
func (p *Pager) Offset() int {
	return p.offset
}

// Len returns the size of the underlying view
func (p *Pager) Len() int {
	return p.view.Len()
}
