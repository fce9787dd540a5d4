package logging

import (
	"github.com/apex/log"
	"github.com/apex/log/handlers/multi"
	"github.com/thejerf/suture/v4"
)

type (
	// Config configures the diagnostics of the process itself, not the test event sinks.
	Config struct {
		Console ConsoleConfig `json:"console"`
		File    *FileConfig   `json:"file,omitempty"`
	}

	factory interface {
		CreateLogging() (log.Handler, log.Level, suture.Service)
	}
)

var _ factory = (*Config)(nil)

func NewConfig(baseDir string) *Config {
	return &Config{
		Console: ConsoleConfig(log.WarnLevel),
		File:    NewFileConfig(baseDir),
	}
}

func (c *Config) CreateLogging() (log.Handler, log.Level, suture.Service) {
	handler, minLevel, svc := c.Console.CreateLogging()

	if c.File != nil && !c.File.Disabled {
		fileHandler, fileLevel, fileSvc := c.File.CreateLogging()
		handler = multi.New(handler, fileHandler)
		if fileLevel < minLevel {
			minLevel = fileLevel
		}
		svc = fileSvc
	}

	return handler, minLevel, svc
}

// Install makes the configured handlers the process logger. The returned
// service, if not nil, must be run for file logging to make progress.
func (c *Config) Install() suture.Service {
	handler, level, svc := c.CreateLogging()
	log.SetHandler(handler)
	log.SetLevel(level)
	return svc
}
