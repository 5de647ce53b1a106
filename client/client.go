package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	log "github.com/sirupsen/logrus"

	"bikeshare/domain/business/selection"
	"bikeshare/domain/entities"
	"bikeshare/domain/entities/trip"
	"bikeshare/explorer"
	"bikeshare/statistics"
	"bikeshare/utils"
)

const (
	separator  = "----------------------------------------"
	yesAnswer  = "yes"
	timeLayout = "2006-01-02 15:04:05"
)

// Client drives the query cycle from a terminal: it asks for the selectors, prints the
// statistics, pages through the raw trips and offers to start again
type Client struct {
	explorer *explorer.Explorer
	scanner  *bufio.Scanner
	output   io.Writer
}

func NewClient(explorer *explorer.Explorer, input io.Reader, output io.Writer) *Client {
	return &Client{
		explorer: explorer,
		scanner:  bufio.NewScanner(input),
		output:   output,
	}
}

// Run repeats query cycles until the user does not want to restart or the input ends
func (c *Client) Run(ctx context.Context) error {
	c.printf("Hi there! Let's explore some bikeshare data from the US!\n")
	for {
		err := c.runCycle(ctx)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}

		restart, err := c.ask("\nWould you like to restart with different settings (city, time)? Enter yes or no!\n")
		if err != nil || restart != yesAnswer {
			break
		}
	}

	c.printf("\nSee you next time! Bye!\n")
	return nil
}

func (c *Client) runCycle(ctx context.Context) error {
	sel, err := c.getFilters()
	if err != nil {
		return err
	}

	view, err := c.explorer.LoadSelection(sel)
	if err != nil {
		log.Errorf("[client][%s][status: ERROR] error loading data: %s", sel, err.Error())
		c.printf("\nSorry, the data of %s could not be loaded: %s\n", selection.Title(sel.City), err.Error())
		return nil
	}

	report, err := c.explorer.Report(ctx, view)
	if err != nil {
		return err
	}

	c.printTimeStats(sel, report.Time)
	c.printStationStats(report.Station)
	c.printDurationStats(report.Duration)
	c.printUserStats(report.User)

	return c.showRawData(view)
}

// getFilters asks for city, month and day until each of them is valid
func (c *Client) getFilters() (selection.Selection, error) {
	cities := c.explorer.Cities()
	city, err := c.askUntilValid(
		fmt.Sprintf("\nWhich city? Choose one of %s by writing the city name!\n", c.cityList(cities)),
		func(value string) (string, error) { return selection.ValidateCity(value, cities) },
	)
	if err != nil {
		return selection.Selection{}, err
	}

	month, err := c.askUntilValid(
		"\nChoose either the entire period by typing ALL or any month from January to June!\n",
		selection.ValidateMonth,
	)
	if err != nil {
		return selection.Selection{}, err
	}

	day, err := c.askUntilValid(
		"\nWhich day? Choose either all days of the week by typing ALL or any day from Monday to Sunday!\n",
		selection.ValidateDay,
	)
	if err != nil {
		return selection.Selection{}, err
	}

	c.printf("%s\n", separator)
	return selection.Selection{City: city, Month: month, Day: day}, nil
}

func (c *Client) cityList(cities []string) string {
	titles := make([]string, 0, len(cities))
	for _, city := range cities {
		titles = append(titles, selection.Title(city))
	}
	return strings.Join(titles, ", ")
}

func (c *Client) askUntilValid(prompt string, validate func(string) (string, error)) (string, error) {
	for {
		answer, err := c.readLine(prompt)
		if err != nil {
			return "", err
		}

		value, err := validate(answer)
		if err != nil {
			log.Debugf("[client][status: OK] invalid input: %s", err.Error())
			c.printf("\nNope, try again!\n")
			continue
		}

		c.printf("\nGot it! We'll consider %s\n", selection.Title(value))
		return value, nil
	}
}

func (c *Client) ask(prompt string) (string, error) {
	answer, err := c.readLine(prompt)
	if err != nil {
		return "", err
	}
	return utils.NormalizeInput(answer), nil
}

func (c *Client) readLine(prompt string) (string, error) {
	c.printf("%s", prompt)
	if !c.scanner.Scan() {
		if err := c.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return c.scanner.Text(), nil
}

func (c *Client) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(c.output, format, args...)
}

func (c *Client) printElapsed(elapsed time.Duration) {
	c.printf("\nThis took %s seconds.\n%s\n", strconv.FormatFloat(elapsed.Seconds(), 'f', -1, 64), separator)
}

func (c *Client) printTimeStats(sel selection.Selection, summary statistics.TimeSummary) {
	c.printf("\nCalculating The Most Frequent Times of Travel...\n\n")
	if summary.NoData {
		c.printf("%s\n", statistics.NoDataMessage)
		c.printElapsed(summary.Elapsed)
		return
	}

	if sel.Month == selection.All {
		c.printf("The most popular month is %s\n", summary.PopularMonth)
	} else {
		c.printf("The most popular month is %s (the only month selected)\n", summary.PopularMonth)
	}

	if sel.Day == selection.All {
		c.printf("The most popular day of week is %s\n", summary.PopularDay)
	} else {
		c.printf("The most popular day of week is %s (the only day selected)\n", summary.PopularDay)
	}

	c.printf("The most popular start hour is %v\n", summary.PopularHour)
	c.printElapsed(summary.Elapsed)
}

func (c *Client) printStationStats(summary statistics.StationSummary) {
	c.printf("\nCalculating The Most Popular Stations and Trip...\n\n")
	if summary.NoData {
		c.printf("%s\n", statistics.NoDataMessage)
		c.printElapsed(summary.Elapsed)
		return
	}

	c.printf("The most commonly used starting station is %s\n", summary.PopularStartStation)
	c.printf("The most commonly used finish station is %s\n", summary.PopularEndStation)
	c.printf("The most common route is %s\n", summary.PopularRoute)
	if summary.HasRouteDistance {
		c.printf("The most common route is %.2f km long\n", summary.RouteDistanceKm)
	}
	c.printElapsed(summary.Elapsed)
}

func (c *Client) printDurationStats(summary statistics.DurationSummary) {
	c.printf("\nCalculating Trip Duration...\n\n")
	if summary.NoData {
		c.printf("%s\n", statistics.NoDataMessage)
		c.printElapsed(summary.Elapsed)
		return
	}

	c.printf("The total travel time is %v hours\n", summary.TotalHours)
	c.printf("The mean travel time is %v minutes\n", summary.MeanMinutes)
	c.printElapsed(summary.Elapsed)
}

func (c *Client) printUserStats(summary statistics.UserSummary) {
	c.printf("\nCalculating User Stats...\n\n")
	if summary.NoData {
		c.printf("%s\n", statistics.NoDataMessage)
		c.printElapsed(summary.Elapsed)
		return
	}

	c.printf("There are following numbers of each user category:\n")
	c.printFrequencies(summary.UserTypes)

	if summary.Genders != nil {
		c.printf("\nThe gender balance of bikeshare users:\n")
		c.printFrequencies(summary.Genders)
	}

	if summary.BirthYears != nil {
		c.printf("\nThe oldest registered user was born in %v\n", summary.BirthYears.Earliest)
		c.printf("The youngest registered user was born in %v\n", summary.BirthYears.Latest)
		c.printf("The most common birth year is %v\n", summary.BirthYears.Popular)
	}
	c.printElapsed(summary.Elapsed)
}

func (c *Client) printFrequencies(frequencies []statistics.Frequency) {
	writer := tabwriter.NewWriter(c.output, 0, 0, 2, ' ', 0)
	for _, frequency := range frequencies {
		_, _ = fmt.Fprintf(writer, "%s\t%v\n", frequency.Value, frequency.Count)
	}
	_ = writer.Flush()
}

// showRawData pages through view while the user asks for more
func (c *Client) showRawData(view *trip.Dataset) error {
	answer, err := c.ask("\nWould you like to see data entries? Enter yes or no!\n")
	if err != nil || answer != yesAnswer {
		return err
	}

	pager := c.explorer.NewPager(view)
	for pager.HasMore() {
		page := pager.NextPage()
		for _, record := range page {
			c.printRecord(view.Metadata(), record)
		}
		c.printf("\nShowing entries %v to %v of %v\n", pager.Offset()-len(page)+1, pager.Offset(), pager.Len())

		if !pager.HasMore() {
			break
		}

		answer, err = c.ask("\nWould you like to see more data entries? Enter yes or no!\n")
		if err != nil || answer != yesAnswer {
			return err
		}
	}

	c.printf("This is it - no more entries!\n")
	return nil
}

func (c *Client) printRecord(metadata entities.Metadata, record trip.Record) {
	writer := tabwriter.NewWriter(c.output, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintf(writer, "\nStart Time\t%s\n", record.StartTime.Format(timeLayout))
	_, _ = fmt.Fprintf(writer, "End Time\t%s\n", record.EndTime.Format(timeLayout))
	_, _ = fmt.Fprintf(writer, "Trip Duration\t%v\n", record.Duration)
	_, _ = fmt.Fprintf(writer, "Start Station\t%s\n", record.StartStation)
	_, _ = fmt.Fprintf(writer, "End Station\t%s\n", record.EndStation)
	_, _ = fmt.Fprintf(writer, "User Type\t%s\n", record.UserType)
	if metadata.HasGender {
		_, _ = fmt.Fprintf(writer, "Gender\t%s\n", record.Gender)
	}
	if metadata.HasBirthYear {
		birthYear := ""
		if record.HasBirthYear {
			birthYear = strconv.Itoa(record.BirthYear)
		}
		_, _ = fmt.Fprintf(writer, "Birth Year\t%s\n", birthYear)
	}
	_, _ = fmt.Fprintf(writer, "month\t%v\n", record.Derived.Month)
	_, _ = fmt.Fprintf(writer, "day_of_week\t%s\n", record.Derived.DayOfWeek)
	_ = writer.Flush()
}
