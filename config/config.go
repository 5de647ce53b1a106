package config

import (
	"fmt"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"bikeshare/utils"
)

const (
	defaultConfigFilepath = "./config/config.yaml"
	defaultDataDir        = "./datasets"
	defaultLogLevel       = "info"

	configPathEnv = "CONFIG_PATH"
	dataDirEnv    = "DATA_DIR"
	logLevelEnv   = "LOG_LEVEL"
)

// defaultCities is the city registry used when the config file does not declare one
var defaultCities = map[string]string{
	"chicago":       "chicago.csv",
	"new york city": "new_york_city.csv",
	"washington":    "washington.csv",
}

// DatasetConfig contains everything the loader needs to find a city's data
// + DataDir: directory that contains the city files
// + StationsFile: optional CSV with name,latitude,longitude of each station
// + Cities: city key -> file name, relative to DataDir
type DatasetConfig struct {
	DataDir      string            `yaml:"data_dir"`
	StationsFile string            `yaml:"stations_file"`
	Cities       map[string]string `yaml:"cities"`
}

// AppConfig is the root of config.yaml
type AppConfig struct {
	LogLevel string        `yaml:"log_level"`
	Dataset  DatasetConfig `yaml:",inline"`
}

// LoadConfig reads the config file pointed by CONFIG_PATH (or the default path)
// and applies env overrides.
func LoadConfig() (*AppConfig, error) {
	return LoadConfigFrom(utils.GetEnvOrDefault(configPathEnv, defaultConfigFilepath))
}

// LoadConfigFrom reads the config file located at configFilepath
func LoadConfigFrom(configFilepath string) (*AppConfig, error) {
	configFile, err := utils.GetConfigFile(configFilepath)
	if err != nil {
		return nil, err
	}

	var appConfig AppConfig
	err = yaml.Unmarshal(configFile, &appConfig)
	if err != nil {
		return nil, fmt.Errorf("error parsing app config file: %w", err)
	}

	appConfig.LogLevel = utils.GetEnvOrDefault(logLevelEnv, appConfig.LogLevel)
	appConfig.Dataset.DataDir = utils.GetEnvOrDefault(dataDirEnv, appConfig.Dataset.DataDir)
	appConfig.setDefaults()

	return &appConfig, nil
}

// Default returns the config used when there is no config file at all
func Default() *AppConfig {
	appConfig := &AppConfig{
		LogLevel: utils.GetEnvOrDefault(logLevelEnv, ""),
		Dataset: DatasetConfig{
			DataDir: utils.GetEnvOrDefault(dataDirEnv, ""),
		},
	}
	appConfig.setDefaults()
	return appConfig
}

func (ac *AppConfig) setDefaults() {
	if ac.LogLevel == "" {
		ac.LogLevel = defaultLogLevel
	}
	if ac.Dataset.DataDir == "" {
		ac.Dataset.DataDir = defaultDataDir
	}
	if len(ac.Dataset.Cities) == 0 {
		ac.Dataset.Cities = make(map[string]string, len(defaultCities))
		for city, file := range defaultCities {
			ac.Dataset.Cities[city] = file
		}
	}
}

// CityFilepath returns the path of the file of the given city and true, or false
// if the city is not in the registry
func (dc DatasetConfig) CityFilepath(city string) (string, bool) {
	file, ok := dc.Cities[city]
	if !ok {
		return "", false
	}
	if filepath.IsAbs(file) {
		return file, true
	}
	return filepath.Join(dc.DataDir, file), true
}

// StationsFilepath returns the path of the stations file, or "" if none is configured
func (dc DatasetConfig) StationsFilepath() string {
	if dc.StationsFile == "" || filepath.IsAbs(dc.StationsFile) {
		return dc.StationsFile
	}
	return filepath.Join(dc.DataDir, dc.StationsFile)
}

// CityNames returns the keys of the registry
func (dc DatasetConfig) CityNames() []string {
	names := make([]string, 0, len(dc.Cities))
	for city := range dc.Cities {
		names = append(names, city)
	}
	return names
}
