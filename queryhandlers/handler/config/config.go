package config

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"bikeshare/communication"
	"bikeshare/utils"
)

const (
	configFilepathEnv     = "HANDLER_CONFIG_PATH"
	defaultConfigFilepath = "./queryhandlers/handler/config/config.yaml"
	defaultPublishTimeout = 5 * time.Second
)

type StatsHandlerConfig struct {
	InputQueue        communication.QueueDeclarationConfig `yaml:"input_queue"`
	OutputQueue       communication.QueueDeclarationConfig `yaml:"output_response_queue"`
	ConsumptionConfig communication.ConsumptionConfig      `yaml:"consumption_config"`
	PrefetchCount     int                                  `yaml:"prefetch_count"`
	PublishTimeout    time.Duration                        `yaml:"publish_timeout"`
	ID                string
}

func LoadConfig() (*StatsHandlerConfig, error) {
	return LoadConfigFrom(utils.GetEnvOrDefault(configFilepathEnv, defaultConfigFilepath))
}

func LoadConfigFrom(configFilepath string) (*StatsHandlerConfig, error) {
	configFile, err := utils.GetConfigFile(configFilepath)
	if err != nil {
		return nil, err
	}

	var statsHandlerConfig StatsHandlerConfig
	err = yaml.Unmarshal(configFile, &statsHandlerConfig)
	if err != nil {
		return nil, fmt.Errorf("error parsing Stats Handler config file: %w", err)
	}

	if statsHandlerConfig.PublishTimeout <= 0 {
		statsHandlerConfig.PublishTimeout = defaultPublishTimeout
	}
	statsHandlerConfig.ID = utils.GetEnvOrDefault("ID", "1")

	return &statsHandlerConfig, nil
}
