package main

import (
	"context"
	"fmt"
	"os"
	"syscall"

	log "github.com/sirupsen/logrus"

	"bikeshare/communication"
	appConfig "bikeshare/config"
	"bikeshare/dataloader"
	"bikeshare/explorer"
	"bikeshare/queryhandlers/handler"
	"bikeshare/queryhandlers/handler/config"
	"bikeshare/utils"
)

const logLevelEnv = "LOG_LEVEL"

// InitLogger Receives the log level to be set in logrus as a string. This method
// parses the string and set the level to the logger. If the level string is not
// valid an error is returned
func InitLogger(logLevel string) error {
	level, err := log.ParseLevel(logLevel)
	if err != nil {
		return err
	}

	customFormatter := &log.TextFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   false,
	}
	log.SetFormatter(customFormatter)
	log.SetLevel(level)
	return nil
}

func main() {
	cfg, err := appConfig.LoadConfig()
	if err != nil {
		log.Fatalf("error loading app config: %s", err)
		return
	}

	if err := InitLogger(utils.GetEnvOrDefault(logLevelEnv, cfg.LogLevel)); err != nil {
		log.Fatalf("%s", err)
		return
	}

	handlerConfig, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("error loading stats handler config: %s", err)
		return
	}

	rabbitMQ, err := communication.NewRabbitMQ(os.Getenv(communication.RabbitUrlEnvVarName))
	if err != nil {
		log.Fatalf("%s", err)
		return
	}

	if handlerConfig.PrefetchCount > 0 {
		if err := rabbitMQ.SetQualityOfService(handlerConfig.PrefetchCount); err != nil {
			log.Fatalf("%s", err)
			return
		}
	}

	loader := dataloader.NewLoader(cfg.Dataset)
	statsHandler := handler.NewStatsHandler(rabbitMQ, explorer.New(loader), handlerConfig)

	defer func(statsHandler *handler.StatsHandler) {
		err := statsHandler.Kill()
		if err != nil {
			log.Error(getLogMessage(statsHandler, "error killing handler", err))
			return
		}

		log.Info(getLogMessage(statsHandler, "Stats handler killed successfully!", nil))
	}(statsHandler)

	signalChannel := utils.GetSignalChannel()

	err = statsHandler.DeclareQueues()
	if err != nil {
		log.Error(getLogMessage(statsHandler, "error declaring queues", err))
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		err := statsHandler.ProcessRequests(ctx)
		if err != nil {
			log.Error(getLogMessage(statsHandler, "error processing requests", err))
		}

		log.Debug(getLogMessage(statsHandler, "Finish main.go", nil))
		signalChannel <- syscall.SIGTERM
	}()

	<-signalChannel
}

func getLogMessage(statsHandler *handler.StatsHandler, message string, err error) string {
	if err != nil {
		return fmt.Sprintf("[caller: main][handlerType: %s][status: ERROR] %s: %s", statsHandler.GetType(), message, err.Error())
	}
	return fmt.Sprintf("[caller: main][handlerType: %s][status: OK] %s", statsHandler.GetType(), message)
}
