package common

import (
	"io"
	"os"
)

// Context defines the context object passed around
type Context struct {
	Config           Config
	StackProvisioner StackProvisioner
	TemplateFetcher  TemplateFetcher
	TagManager       TagManager
}

// NewContext create a new context object with default config values
func NewContext() *Context {
	ctx := new(Context)
	ctx.Config = *NewConfig()
	return ctx
}

// InitializeConfigFromFile loads config from the given file
func (ctx *Context) InitializeConfigFromFile(configFile string) error {
	configData, err := os.Open(configFile)
	if err != nil {
		return err
	}
	defer func() {
		configData.Close()
	}()
	return ctx.InitializeConfig(configData)
}

// InitializeConfig loads the config object from a reader
func (ctx *Context) InitializeConfig(configReader io.Reader) error {
	return loadYamlConfig(&ctx.Config, configReader)
}
