package common

import (
	"io"
	"os"

	"github.com/op/go-logging"
)

// SetupLogging - verbosity 0=error, 1=info, 2=debug
func SetupLogging(verbosity int) {
	errLeveled := leveledBackend(os.Stderr,
		`%{color}%{shortfunc} ▶ %{level:.5s} %{color:reset} %{message}`,
		logging.ERROR, logging.CRITICAL)
	warnLeveled := leveledBackend(os.Stderr,
		`%{color}%{message}%{color:reset}`,
		logging.WARNING, logging.WARNING)

	backends := []logging.Backend{warnLeveled, errLeveled}
	if verbosity >= 1 {
		infoLeveled := leveledBackend(os.Stdout,
			`%{color}%{message}%{color:reset}`,
			logging.INFO, logging.INFO)
		backends = append([]logging.Backend{infoLeveled}, backends...)
	}
	if verbosity >= 2 {
		debugLeveled := leveledBackend(os.Stdout,
			`%{color}%{time:15:04:05.000} %{module} ▶ %{id:03x}%{color:reset} %{message}`,
			logging.DEBUG, logging.DEBUG)
		backends = append([]logging.Backend{debugLeveled}, backends...)
	}
	logging.SetBackend(backends...)
}

// leveledBackend builds a backend that logs at exactly one level, so each
// level keeps its own format and writer
func leveledBackend(writer io.Writer, format string, level logging.Level, notToExceed logging.Level) logging.Backend {
	backend := logging.NewLogBackend(writer, "", 0)
	formatter := logging.NewBackendFormatter(backend, logging.MustStringFormatter(format))
	leveled := logging.AddModuleLevel(&notToExceedLevelBackend{
		delegate:         formatter,
		notToExceedLevel: notToExceed,
	})
	leveled.SetLevel(level, "")
	return leveled
}

type notToExceedLevelBackend struct {
	delegate         logging.Backend
	notToExceedLevel logging.Level
}

func (b *notToExceedLevelBackend) Log(l logging.Level, i int, r *logging.Record) error {
	if l < b.notToExceedLevel {
		return nil
	}
	return b.delegate.Log(l, i, r)
}
