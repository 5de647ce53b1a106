package queryresponse

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bikeshare/domain/business/selection"
	"bikeshare/domain/entities"
	"bikeshare/statistics"
)

func TestNewQueryResponse(t *testing.T) {
	sel := selection.Selection{City: "chicago", Month: "march", Day: selection.All}
	metadata := entities.NewMetadata("chicago", "chicago.csv", true, true)
	report := statistics.Report{Trips: 3, Duration: statistics.DurationSummary{Trips: 3, TotalHours: 1.75, MeanMinutes: 35}}

	response := NewQueryResponse("q1", "stats-handler", sel, metadata, report)
	assert.False(t, response.IsError())
	assert.Equal(t, "q1", response.GetQueryID())
	assert.Equal(t, metadata, response.GetMetadata())

	body, err := json.Marshal(response)
	require.NoError(t, err)

	var decoded QueryResponse
	require.NoError(t, json.Unmarshal(body, &decoded))
	assert.Equal(t, StatusOK, decoded.Status)
	assert.Equal(t, sel, decoded.Selection)
	require.NotNil(t, decoded.Report)
	assert.Equal(t, 1.75, decoded.Report.Duration.TotalHours)
}

func TestNewErrorResponse(t *testing.T) {
	response := NewErrorResponse("q2", "stats-handler", errors.New("unknown city"))
	assert.True(t, response.IsError())
	assert.Equal(t, "unknown city", response.Error)

	body, err := json.Marshal(response)
	require.NoError(t, err)
	assert.NotContains(t, string(body), `"report"`)
}
