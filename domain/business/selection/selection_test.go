package selection

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cities = []string{"chicago", "new york city", "washington"}

func TestValidate(t *testing.T) {
	sel, err := Validate(" New York City ", "MARCH", "Friday", cities)
	require.NoError(t, err)
	assert.Equal(t, Selection{City: "new york city", Month: "march", Day: "friday"}, sel)
	assert.Equal(t, "city: New York City, month: March, day: Friday", sel.String())
}

func TestValidateAll(t *testing.T) {
	sel, err := Validate("chicago", "All", "ALL", cities)
	require.NoError(t, err)
	assert.Equal(t, All, sel.Month)
	assert.Equal(t, All, sel.Day)
}

func TestValidateReportsEveryInvalidSelector(t *testing.T) {
	_, err := Validate("boston", "july", "saturtday", cities)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidCity))
	assert.True(t, errors.Is(err, ErrInvalidMonth))
	assert.True(t, errors.Is(err, ErrInvalidDay))
}

func TestValidateSingleSelectors(t *testing.T) {
	_, err := ValidateCity("", cities)
	assert.ErrorIs(t, err, ErrInvalidCity)

	month, err := ValidateMonth("june")
	require.NoError(t, err)
	assert.Equal(t, "june", month)
	_, err = ValidateMonth("december")
	assert.ErrorIs(t, err, ErrInvalidMonth)

	day, err := ValidateDay("Saturday")
	require.NoError(t, err)
	assert.Equal(t, "saturday", day)
	_, err = ValidateDay("someday")
	assert.ErrorIs(t, err, ErrInvalidDay)
}

func TestMonthIndex(t *testing.T) {
	idx, ok := MonthIndex("january")
	assert.True(t, ok)
	assert.Equal(t, 1, idx)

	idx, ok = MonthIndex("June")
	assert.True(t, ok)
	assert.Equal(t, 6, idx)

	_, ok = MonthIndex(All)
	assert.False(t, ok)
	_, ok = MonthIndex("july")
	assert.False(t, ok)
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "New York City", Title("new york city"))
	assert.Equal(t, "Wednesday", Title("wednesday"))
}
