package queryresponse

import (
	"bikeshare/domain/business/selection"
	"bikeshare/domain/entities"
	"bikeshare/statistics"
)

const (
	StatusOK    = "ok"
	StatusError = "error"
)

// QueryRequest asks for the statistics of a city, month and day
type QueryRequest struct {
	QueryID string `json:"query_id"`
	City    string `json:"city"`
	Month   string `json:"month"`
	Day     string `json:"day"`
}

// QueryResponse contains the response of a query. Report is only set when Status is StatusOK
// + Metadata: metadata of the dataset the report was computed from
// + Sender: type of the handler that answered
type QueryResponse struct {
	Metadata  entities.Metadata   `json:"metadata"`
	QueryID   string              `json:"query_id"`
	Sender    string              `json:"sender"`
	Selection selection.Selection `json:"selection"`
	Status    string              `json:"status"`
	Error     string              `json:"error,omitempty"`
	Report    *statistics.Report  `json:"report,omitempty"`
}

func NewQueryResponse(queryID string, sender string, sel selection.Selection, metadata entities.Metadata, report statistics.Report) *QueryResponse {
	return &QueryResponse{
		Metadata:  metadata,
		QueryID:   queryID,
		Sender:    sender,
		Selection: sel,
		Status:    StatusOK,
		Report:    &report,
	}
}

func NewErrorResponse(queryID string, sender string, err error) *QueryResponse {
	return &QueryResponse{
		QueryID: queryID,
		Sender:  sender,
		Status:  StatusError,
		Error:   err.Error(),
	}
}

func (qr *QueryResponse) GetMetadata() entities.Metadata {
	return qr.Metadata
}

func (qr *QueryResponse) GetQueryID() string {
	return qr.QueryID
}

func (qr *QueryResponse) IsError() bool {
	return qr.Status == StatusError
}
