package modecounter

import (
	"cmp"
	"sort"
)

// Frequency amount of occurrences of a value
type Frequency[K cmp.Ordered] struct {
	Value K   `json:"value"`
	Count int `json:"count"`
}

// Counter counts occurrences of values of an ordered type
// + counts: occurrences per value
// + order: values in the order they were first seen
// + total: amount of values added
type Counter[K cmp.Ordered] struct {
	counts map[K]int
	order  []K
	total  int
}

func NewCounter[K cmp.Ordered]() *Counter[K] {
	return &Counter[K]{
		counts: make(map[K]int),
	}
}

// Add counts one occurrence of value
func (c *Counter[K]) Add(value K) {
	if _, ok := c.counts[value]; !ok {
		c.order = append(c.order, value)
	}
	c.counts[value] += 1
	c.total += 1
}

// Total returns the amount of values added
func (c *Counter[K]) Total() int {
	return c.total
}

// Distinct returns the amount of different values added
func (c *Counter[K]) Distinct() int {
	return len(c.order)
}

// Count returns the occurrences of value
func (c *Counter[K]) Count(value K) int {
	return c.counts[value]
}

// Mode returns the most frequent value and its count. Ties are broken by choosing the
// smallest value. The bool is false if nothing was added.
func (c *Counter[K]) Mode() (K, int, bool) {
	var mode K
	bestCount := 0
	for _, value := range c.order {
		count := c.counts[value]
		if count > bestCount || (count == bestCount && value < mode) {
			mode = value
			bestCount = count
		}
	}
	return mode, bestCount, bestCount > 0
}

// Bounds returns the smallest and the biggest value added. The bool is false if nothing was added.
func (c *Counter[K]) Bounds() (K, K, bool) {
	var minValue, maxValue K
	if len(c.order) == 0 {
		return minValue, maxValue, false
	}

	minValue, maxValue = c.order[0], c.order[0]
	for _, value := range c.order[1:] {
		minValue = min(minValue, value)
		maxValue = max(maxValue, value)
	}
	return minValue, maxValue, true
}

// Frequencies returns every value with its count, by descending count. Values with the
// same count keep the order in which they were first seen.
func (c *Counter[K]) Frequencies() []Frequency[K] {
	frequencies := make([]Frequency[K], 0, len(c.order))
	for _, value := range c.order {
		frequencies = append(frequencies, Frequency[K]{Value: value, Count: c.counts[value]})
	}

	sort.SliceStable(frequencies, func(i, j int) bool {
		return frequencies[i].Count > frequencies[j].Count
	})
	return frequencies
}
