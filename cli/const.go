package cli

import (
	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("cli")

// Constants used by the CLI
const (
	ServerCmd         = "server"
	ServerUsage       = "start the catalog endpoint"
	PortFlag          = "port, P"
	PortFlagUsage     = "port to listen on, overriding the config"
	OpsCmd            = "operations"
	OpsAlias          = "ops"
	OpsUsage          = "list the supported API operations"
	ConfigFlag        = "config, c"
	ConfigFlagUsage   = "path to config file"
	RegionFlag        = "region, r"
	RegionFlagUsage   = "region to emulate"
	SilentFlag        = "silent, s"
	SilentFlagUsage   = "silence logging"
	VerboseFlag       = "verbose, V"
	VerboseFlagUsage  = "increase level of logging verbosity"
	DefaultConfigFile = "scmock.yml"
	ReadOnlyAccess    = "read-only"
	MutatingAccess    = "mutating"
)
