package logging

import (
	"encoding/json"
	"os"

	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"
	"github.com/apex/log/handlers/level"
	"github.com/thejerf/suture/v4"
)

type (
	// ConsoleConfig is the minimum level of the messages printed on stderr.
	ConsoleConfig log.Level
)

var (
	_ factory          = (*ConsoleConfig)(nil)
	_ json.Marshaler   = (*ConsoleConfig)(nil)
	_ json.Unmarshaler = (*ConsoleConfig)(nil)

	consoleHandler = cli.New(os.Stderr)
)

func (c ConsoleConfig) CreateLogging() (log.Handler, log.Level, suture.Service) {
	return level.New(consoleHandler, log.Level(c)), log.Level(c), nil
}

func (c ConsoleConfig) MarshalJSON() ([]byte, error) {
	return log.Level(c).MarshalJSON()
}

func (c *ConsoleConfig) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, (*log.Level)(c))
}
