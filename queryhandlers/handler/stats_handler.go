package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
	log "github.com/sirupsen/logrus"

	"bikeshare/communication"
	"bikeshare/domain/business/queryresponse"
	"bikeshare/explorer"
	"bikeshare/queryhandlers/handler/config"
)

const (
	handlerType     = "stats-handler"
	contentTypeJson = "application/json"
)

var ErrUnmarshallingRequest = errors.New("unexpected error unmarshalling query request")

// Broker the subset of communication.RabbitMQ used by the handler
type Broker interface {
	DeclareNonAnonymousQueues(queuesConfig []communication.QueueDeclarationConfig) error
	GetQueueConsumer(queueName string, consumptionConfig communication.ConsumptionConfig) (<-chan amqp.Delivery, error)
	PublishMessageInQueue(ctx context.Context, queueName string, message []byte, contentType string) error
	KillBadBunny() error
}

// StatsHandler answers query requests that arrive through the input queue with the
// statistics of the requested city, month and day
type StatsHandler struct {
	broker   Broker
	explorer *explorer.Explorer
	config   *config.StatsHandlerConfig
}

func NewStatsHandler(broker Broker, explorer *explorer.Explorer, statsHandlerConfig *config.StatsHandlerConfig) *StatsHandler {
	return &StatsHandler{
		broker:   broker,
		explorer: explorer,
		config:   statsHandlerConfig,
	}
}

func (sh *StatsHandler) getLogMessage(method string, message string, err error) string {
	if err != nil {
		return fmt.Sprintf("[handler: %s][handlerID: %s][method: %s][status: ERROR] %s: %s", handlerType, sh.config.ID, method, message, err.Error())
	}
	return fmt.Sprintf("[handler: %s][handlerID: %s][method: %s][status: OK] %s", handlerType, sh.config.ID, method, message)
}

func (sh *StatsHandler) GetType() string {
	return handlerType
}

// DeclareQueues declares non-anonymous queues for Stats Handler
// Queues: input queue, response queue
func (sh *StatsHandler) DeclareQueues() error {
	err := sh.broker.DeclareNonAnonymousQueues([]communication.QueueDeclarationConfig{
		sh.config.InputQueue,
		sh.config.OutputQueue,
	})
	if err != nil {
		return err
	}

	log.Info(sh.getLogMessage("DeclareQueues", "queues declared correctly!", nil))
	return nil
}

// ProcessRequests consumes the input queue until it is closed or ctx is done.
// Each request gets exactly one response; a request that cannot be answered gets an error response.
func (sh *StatsHandler) ProcessRequests(ctx context.Context) error {
	consumer, err := sh.broker.GetQueueConsumer(sh.config.InputQueue.Name, sh.config.ConsumptionConfig)
	if err != nil {
		log.Debug(sh.getLogMessage("ProcessRequests", "error getting consumer", err))
		return err
	}

	for {
		select {
		case <-ctx.Done():
			log.Info(sh.getLogMessage("ProcessRequests", "context done, stop consuming", nil))
			return nil
		case message, ok := <-consumer:
			if !ok {
				log.Info(sh.getLogMessage("ProcessRequests", "input queue closed", nil))
				return nil
			}

			response := sh.HandleRequest(ctx, message.Body)
			err = sh.SendResponse(ctx, response)
			if err != nil {
				return err
			}
		}
	}
}

// HandleRequest runs the whole query cycle for one raw request
func (sh *StatsHandler) HandleRequest(ctx context.Context, body []byte) *queryresponse.QueryResponse {
	var request queryresponse.QueryRequest
	err := json.Unmarshal(body, &request)
	if err != nil {
		log.Error(sh.getLogMessage("HandleRequest", "error unmarshalling request", err))
		return queryresponse.NewErrorResponse("", handlerType, fmt.Errorf("%w: %s", ErrUnmarshallingRequest, err.Error()))
	}

	sel, err := sh.explorer.Validate(request.City, request.Month, request.Day)
	if err != nil {
		log.Debug(sh.getLogMessage("HandleRequest", fmt.Sprintf("invalid request %s", request.QueryID), err))
		return queryresponse.NewErrorResponse(request.QueryID, handlerType, err)
	}

	view, err := sh.explorer.LoadSelection(sel)
	if err != nil {
		log.Error(sh.getLogMessage("HandleRequest", fmt.Sprintf("error loading data for request %s", request.QueryID), err))
		return queryresponse.NewErrorResponse(request.QueryID, handlerType, err)
	}

	report, err := sh.explorer.Report(ctx, view)
	if err != nil {
		log.Error(sh.getLogMessage("HandleRequest", fmt.Sprintf("error computing report for request %s", request.QueryID), err))
		return queryresponse.NewErrorResponse(request.QueryID, handlerType, err)
	}

	log.Debug(sh.getLogMessage("HandleRequest", fmt.Sprintf("request %s answered, %s, %v trips", request.QueryID, sel, report.Trips), nil))
	return queryresponse.NewQueryResponse(request.QueryID, handlerType, sel, view.Metadata(), report)
}

// SendResponse publishes response in the output queue
func (sh *StatsHandler) SendResponse(ctx context.Context, response *queryresponse.QueryResponse) error {
	responseBytes, err := json.Marshal(response)
	if err != nil {
		return fmt.Errorf("error marshalling query response message: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, sh.config.PublishTimeout)
	defer cancel()

	err = sh.broker.PublishMessageInQueue(ctx, sh.config.OutputQueue.Name, responseBytes, contentTypeJson)
	if err != nil {
		log.Error(sh.getLogMessage("SendResponse", fmt.Sprintf("error sending response of query %s", response.GetQueryID()), err))
		return err
	}

	log.Debug(sh.getLogMessage("SendResponse", fmt.Sprintf("response of query %s for city %s sent", response.GetQueryID(), response.GetMetadata().GetCity()), nil))
	return nil
}

func (sh *StatsHandler) Kill() error {
	return sh.broker.KillBadBunny()
}
