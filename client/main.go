package main

import (
	"context"
	"errors"
	"os"

	log "github.com/sirupsen/logrus"

	"bikeshare/config"
	"bikeshare/dataloader"
	"bikeshare/explorer"
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
	log.SetOutput(os.Stderr)
	log.SetLevel(level)
	return nil
}

// LoadClientConfig reads config.yaml, or falls back to the default config when the file does not exist
func LoadClientConfig() (*config.AppConfig, error) {
	appConfig, err := config.LoadConfig()
	if errors.Is(err, os.ErrNotExist) {
		return config.Default(), nil
	}
	return appConfig, err
}

func main() {
	appConfig, err := LoadClientConfig()
	if err != nil {
		log.Fatalf("%s", err)
		return
	}

	if err := InitLogger(utils.GetEnvOrDefault(logLevelEnv, appConfig.LogLevel)); err != nil {
		log.Fatalf("%s", err)
		return
	}

	loader := dataloader.NewLoader(appConfig.Dataset)
	client := NewClient(explorer.New(loader), os.Stdin, os.Stdout)

	err = client.Run(context.Background())
	if err != nil {
		log.Errorf("[client][status: ERROR] %s", err.Error())
		os.Exit(1)
	}
	log.Debug("Finish main.go")
}
