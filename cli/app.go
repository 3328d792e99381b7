package cli

import (
	"github.com/urfave/cli"

	"scmock/common"
	"scmock/provider/local"
)

// NewApp creates a new CLI app
func NewApp() *cli.App {
	context := common.NewContext()

	app := cli.NewApp()
	app.Name = "scmock"
	app.Usage = "In-memory Service Catalog emulation"
	app.Version = common.GetVersion()
	app.EnableBashCompletion = true

	app.Commands = []cli.Command{
		*newServerCommand(context),
		*newOperationsCommand(),
	}

	app.Before = func(c *cli.Context) error {
		// setup logging
		if c.Bool("verbose") {
			common.SetupLogging(2)
		} else if c.Bool("silent") {
			common.SetupLogging(0)
		} else {
			common.SetupLogging(1)
		}

		err := context.InitializeConfigFromFile(c.String("config"))
		if err != nil {
			log.Debugf("Unable to load config: %v", err)
		}

		if region := c.String("region"); region != common.Empty {
			context.Config.Region = region
		}

		return local.InitializeContext(context)
	}

	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  ConfigFlag,
			Usage: ConfigFlagUsage,
			Value: DefaultConfigFile,
		},
		cli.StringFlag{
			Name:  RegionFlag,
			Usage: RegionFlagUsage,
		},
		cli.BoolFlag{
			Name:  SilentFlag,
			Usage: SilentFlagUsage,
		},
		cli.BoolFlag{
			Name:  VerboseFlag,
			Usage: VerboseFlagUsage,
		},
	}

	return app
}
