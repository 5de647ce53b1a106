package dataloader

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadStations(t *testing.T) {
	content := "name,latitude,longitude\nA,41.0,-87.0\nB, 41.5 , -87.5\n"
	index, err := ReadStations(strings.NewReader(content), "stations.csv")
	require.NoError(t, err)
	require.Len(t, index, 2)
	assert.Equal(t, 41.5, index["B"].Latitude)
	assert.Equal(t, -87.5, index["B"].Longitude)
}

func TestReadStationsEmpty(t *testing.T) {
	index, err := ReadStations(strings.NewReader(""), "stations.csv")
	require.NoError(t, err)
	assert.Empty(t, index)
}

func TestReadStationsInvalid(t *testing.T) {
	_, err := ReadStations(strings.NewReader("name,latitude,longitude\nA,north,-87.0\n"), "stations.csv")
	assert.ErrorIs(t, err, ErrInvalidStationData)

	_, err = ReadStations(strings.NewReader("name,latitude,longitude\nA,41.0\n"), "stations.csv")
	assert.ErrorIs(t, err, ErrInvalidStationData)
}

func TestReadStationsInvalidLineAfterMultilineName(t *testing.T) {
	content := "name,latitude,longitude\n\"Clark St\n& Lake St\",41.0,-87.0\nB,north,-87.5\n"
	_, err := ReadStations(strings.NewReader(content), "stations.csv")
	assert.ErrorIs(t, err, ErrInvalidStationData)

	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, 4, parseErr.Line)
	assert.Equal(t, "latitude", parseErr.Column)
}

func TestLoadStationsMissingFile(t *testing.T) {
	_, err := LoadStations("/does/not/exist.csv")
	assert.Error(t, err)
}
