package modecounter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModeBreaksTiesWithSmallestValue(t *testing.T) {
	counter := NewCounter[string]()
	for _, station := range []string{"B", "A", "B", "A", "C"} {
		counter.Add(station)
	}

	mode, count, ok := counter.Mode()
	assert.True(t, ok)
	assert.Equal(t, "A", mode)
	assert.Equal(t, 2, count)
	assert.Equal(t, 5, counter.Total())
	assert.Equal(t, 3, counter.Distinct())
}

func TestModeNumeric(t *testing.T) {
	counter := NewCounter[int]()
	for _, hour := range []int{17, 8, 17, 8, 9, 9, 9} {
		counter.Add(hour)
	}

	mode, count, ok := counter.Mode()
	assert.True(t, ok)
	assert.Equal(t, 9, mode)
	assert.Equal(t, 3, count)

	tie := NewCounter[int]()
	tie.Add(12)
	tie.Add(3)
	mode, _, _ = tie.Mode()
	assert.Equal(t, 3, mode)
}

func TestModeZeroValueCompetes(t *testing.T) {
	counter := NewCounter[int]()
	counter.Add(5)
	counter.Add(0)

	mode, count, ok := counter.Mode()
	assert.True(t, ok)
	assert.Equal(t, 0, mode)
	assert.Equal(t, 1, count)
}

func TestEmptyCounter(t *testing.T) {
	counter := NewCounter[string]()

	_, _, ok := counter.Mode()
	assert.False(t, ok)
	_, _, ok = counter.Bounds()
	assert.False(t, ok)
	assert.Empty(t, counter.Frequencies())
}

func TestBounds(t *testing.T) {
	counter := NewCounter[int]()
	for _, year := range []int{1985, 1950, 2001, 1985} {
		counter.Add(year)
	}

	minYear, maxYear, ok := counter.Bounds()
	assert.True(t, ok)
	assert.Equal(t, 1950, minYear)
	assert.Equal(t, 2001, maxYear)
}

func TestFrequenciesOrder(t *testing.T) {
	counter := NewCounter[string]()
	for _, userType := range []string{"Customer", "Subscriber", "Dependent", "Subscriber", "Dependent", "Other"} {
		counter.Add(userType)
	}

	expected := []Frequency[string]{
		{Value: "Subscriber", Count: 2},
		{Value: "Dependent", Count: 2},
		{Value: "Customer", Count: 1},
		{Value: "Other", Count: 1},
	}
	assert.Equal(t, expected, counter.Frequencies())
	assert.Equal(t, 2, counter.Count("Dependent"))
	assert.Equal(t, 0, counter.Count("missing"))
}
