package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewOperationsCommand(t *testing.T) {
	assert := assert.New(t)

	command := newOperationsCommand()

	assert.NotNil(command)
	assert.Equal(OpsCmd, command.Name, "Name should match")
	assert.Equal(1, len(command.Aliases), "Aliases len should match")
	assert.Equal(OpsAlias, command.Aliases[0], "Aliases should match")
	assert.NotNil(command.Action)
}

func TestOperationAccess(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(MutatingAccess, operationAccess("CreatePortfolio"))
	assert.Equal(MutatingAccess, operationAccess("ProvisionProduct"))
	assert.Equal(MutatingAccess, operationAccess("TerminateProvisionedProduct"))
	assert.Equal(ReadOnlyAccess, operationAccess("DescribeRecord"))
	assert.Equal(ReadOnlyAccess, operationAccess("ListPortfolios"))
	assert.Equal(ReadOnlyAccess, operationAccess("SearchProducts"))
	assert.Equal(ReadOnlyAccess, operationAccess("GetProvisionedProductOutputs"))
}
