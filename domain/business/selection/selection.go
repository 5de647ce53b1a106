package selection

import (
	"errors"
	"fmt"
	"sort"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"bikeshare/utils"
)

// All selects every month or every day
const All = "all"

var (
	// Months that can be selected, in calendar order
	Months = []string{"january", "february", "march", "april", "may", "june"}
	// Days that can be selected, in week order
	Days = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}
)

// Selection validated query selectors. All values are lower case
type Selection struct {
	City  string `json:"city"`
	Month string `json:"month"`
	Day   string `json:"day"`
}

func (s Selection) String() string {
	return fmt.Sprintf("city: %s, month: %s, day: %s", Title(s.City), Title(s.Month), Title(s.Day))
}

// Validate checks the three selectors at once. Every invalid selector is reported in the error
func Validate(city string, month string, day string, cities []string) (Selection, error) {
	validCity, cityErr := ValidateCity(city, cities)
	validMonth, monthErr := ValidateMonth(month)
	validDay, dayErr := ValidateDay(day)

	if err := errors.Join(cityErr, monthErr, dayErr); err != nil {
		return Selection{}, err
	}

	return Selection{City: validCity, Month: validMonth, Day: validDay}, nil
}

// ValidateCity returns the normalized city if it belongs to cities
func ValidateCity(city string, cities []string) (string, error) {
	normalized := utils.NormalizeInput(city)
	if !utils.ContainsString(normalized, cities) {
		sorted := append([]string(nil), cities...)
		sort.Strings(sorted)
		return "", fmt.Errorf("%w %q, expected one of %v", ErrInvalidCity, city, sorted)
	}
	return normalized, nil
}

// ValidateMonth returns the normalized month if it is "all" or one of Months
func ValidateMonth(month string) (string, error) {
	normalized := utils.NormalizeInput(month)
	if normalized != All && !utils.ContainsString(normalized, Months) {
		return "", fmt.Errorf("%w %q, expected all or january to june", ErrInvalidMonth, month)
	}
	return normalized, nil
}

// ValidateDay returns the normalized day if it is "all" or one of Days
func ValidateDay(day string) (string, error) {
	normalized := utils.NormalizeInput(day)
	if normalized != All && !utils.ContainsString(normalized, Days) {
		return "", fmt.Errorf("%w %q, expected all or monday to sunday", ErrInvalidDay, day)
	}
	return normalized, nil
}

// MonthIndex returns the 1-based calendar index of month. The bool is false for
// "all" or an unknown month.
func MonthIndex(month string) (int, bool) {
	idx := utils.IndexOf(utils.NormalizeInput(month), Months)
	if idx < 0 {
		return 0, false
	}
	return idx + 1, true
}

// Title returns value with the first letter of each word in upper case, e.g. new york city -> New York City
func Title(value string) string {
	// a Caser keeps state, so it cannot be shared between goroutines
	return cases.Title(language.English).String(value)
}
