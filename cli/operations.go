package cli

import (
	"os"
	"strings"

	"github.com/urfave/cli"

	"scmock/common"
	"scmock/server"
)

func newOperationsCommand() *cli.Command {
	cmd := &cli.Command{
		Name:    OpsCmd,
		Aliases: []string{OpsAlias},
		Usage:   OpsUsage,
		Action: func(c *cli.Context) error {
			table := common.CreateTableSection(os.Stdout, common.OperationsHeader)
			for _, name := range server.Operations() {
				table.Append([]string{common.Bold(name), operationAccess(name)})
			}
			table.Render()
			return nil
		},
	}

	return cmd
}

func operationAccess(name string) string {
	for _, prefix := range []string{"Create", "Update", "Associate", "Provision", "Terminate"} {
		if strings.HasPrefix(name, prefix) {
			return MutatingAccess
		}
	}
	return ReadOnlyAccess
}
