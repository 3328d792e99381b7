package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewApp(t *testing.T) {
	assert := assert.New(t)
	app := NewApp()

	assert.NotNil(app)
	assert.Equal("scmock", app.Name, "Name should match")
	assert.Equal("0.0.0-local", app.Version, "Version should match")
	assert.Equal("In-memory Service Catalog emulation", app.Usage, "usage should match")
	assert.Equal(true, app.EnableBashCompletion, "bash completion should match")
	assert.Equal(4, len(app.Flags), "Flags len should match")
	assert.Equal("config, c", app.Flags[0].GetName(), "Flags name should match")
	assert.Equal("region, r", app.Flags[1].GetName(), "Flags name should match")
	assert.Equal("silent, s", app.Flags[2].GetName(), "Flags name should match")
	assert.Equal("verbose, V", app.Flags[3].GetName(), "Flags name should match")
	assert.Equal(2, len(app.Commands), "Commands len should match")
	assert.Equal("server", app.Commands[0].Name, "Command[0].name should match")
	assert.Equal("operations", app.Commands[1].Name, "Command[1].name should match")
}
