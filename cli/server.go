package cli

import (
	"github.com/urfave/cli"

	"scmock/common"
	"scmock/server"
)

func newServerCommand(ctx *common.Context) *cli.Command {
	cmd := &cli.Command{
		Name:  ServerCmd,
		Usage: ServerUsage,
		Flags: []cli.Flag{
			cli.IntFlag{
				Name:  PortFlag,
				Usage: PortFlagUsage,
			},
		},
		Action: func(c *cli.Context) error {
			if port := c.Int("port"); port != 0 {
				ctx.Config.Server.Port = port
			}
			log.Debugf("Starting server for account %s in %s", ctx.Config.AccountID, ctx.Config.Region)
			return server.New(ctx).ListenAndServe()
		},
	}

	return cmd
}
