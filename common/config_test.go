package common

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewConfig(t *testing.T) {
	assert := assert.New(t)

	config := NewConfig()
	assert.Equal(DefaultAccountID, config.AccountID)
	assert.Equal(DefaultRegion, config.Region)
	assert.Equal(DefaultPartition, config.Partition)
	assert.Equal(DefaultPort, config.Server.Port)
}

func TestLoadYamlConfig(t *testing.T) {
	assert := assert.New(t)

	configYaml := `
---
accountId: "111122223333"
region: eu-west-1
server:
  port: 9090
`
	config := NewConfig()
	err := loadYamlConfig(config, strings.NewReader(configYaml))

	assert.Nil(err)
	assert.Equal("111122223333", config.AccountID)
	assert.Equal("eu-west-1", config.Region)
	assert.Equal(DefaultPartition, config.Partition)
	assert.Equal(9090, config.Server.Port)
}

func TestLoadYamlConfig_invalid(t *testing.T) {
	assert := assert.New(t)

	config := NewConfig()
	err := loadYamlConfig(config, strings.NewReader("not: [valid"))

	assert.NotNil(err)
}
