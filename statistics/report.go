package statistics

import (
	"context"

	"golang.org/x/sync/errgroup"

	"bikeshare/domain/entities/trip"
)

// Report the four summaries of a query
type Report struct {
	Trips    int             `json:"trips"`
	Time     TimeSummary     `json:"time"`
	Station  StationSummary  `json:"station"`
	Duration DurationSummary `json:"duration"`
	User     UserSummary     `json:"user"`
}

// NoData returns true if the report was computed over zero trips
func (r Report) NoData() bool {
	return r.Trips == 0
}

// Run computes the four summaries of view concurrently. The aggregators share nothing
// but the cached start hours of view, which are computed once.
func Run(ctx context.Context, view *trip.Dataset) (Report, error) {
	report := Report{Trips: view.Len()}
	group, ctx := errgroup.WithContext(ctx)

	group.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		report.Time = TimeStats(view)
		return nil
	})

	group.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		report.Station = StationStats(view)
		return nil
	})

	group.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		report.Duration = DurationStats(view)
		return nil
	})

	group.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		report.User = UserStats(view)
		return nil
	})

	if err := group.Wait(); err != nil {
		return Report{}, err
	}
	return report, nil
}
