package main

import (
	"os"

	"scmock/cli"
	"scmock/common"
)

var version string

func main() {
	if version != "" {
		common.SetVersion(version)
	}

	app := cli.NewApp()
	app.Run(os.Args)
}
