package common

import (
	"bytes"
	"io"

	"gopkg.in/yaml.v2"
)

// Config defines the structure of the yml file for the scmock config
type Config struct {
	AccountID string       `yaml:"accountId,omitempty"`
	Region    string       `yaml:"region,omitempty"`
	Partition string       `yaml:"partition,omitempty"`
	Server    ServerConfig `yaml:"server,omitempty"`
}

// ServerConfig defines the structure of the server section of the config
type ServerConfig struct {
	Port int `yaml:"port,omitempty"`
}

// Default config values used when no config file overrides them
const (
	DefaultAccountID = "123456789012"
	DefaultRegion    = "us-east-1"
	DefaultPartition = "aws"
	DefaultPort      = 8080
)

// NewConfig creates a config with the default values
func NewConfig() *Config {
	return &Config{
		AccountID: DefaultAccountID,
		Region:    DefaultRegion,
		Partition: DefaultPartition,
		Server: ServerConfig{
			Port: DefaultPort,
		},
	}
}

func loadYamlConfig(config *Config, yamlReader io.Reader) error {
	yamlBuffer := new(bytes.Buffer)
	if _, err := yamlBuffer.ReadFrom(yamlReader); err != nil {
		return err
	}
	return yaml.Unmarshal(yamlBuffer.Bytes(), config)
}
