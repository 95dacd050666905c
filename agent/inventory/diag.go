package inventory

import "github.com/dockwatch/inventory-agent/internal/logger"

// Reporter receives the degradation warnings a sweep produces: a failed
// inspect, a missing sub-object in a payload, a failed listing. Keeping
// the container identifier separate from the message lets tests (and the
// platform) key on the offending container instead of parsing log text.
type Reporter interface {
	Warning(container, message string)
}

type logReporter struct{}

func (logReporter) Warning(container, message string) {
	if container == "" {
		container = "<unknown>"
	}
	logger.Warning().Println(pkgName, "container", container+":", message)
}
