package climate

import (
	"time"

	"gaia.climateintel.org/internal/appconf"
)

type Config struct {
	DataPath        string
	Env             appconf.Environment
	Verbose         bool
	FeedsEnabled    bool
	RefreshInterval time.Duration
}

func (config Config) refreshInterval() time.Duration {
	if config.RefreshInterval <= 0 {
		return 24 * time.Hour
	}
	return config.RefreshInterval
}
