package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Adirelle/fuzzlog/pkg/discord"
	"github.com/Adirelle/fuzzlog/pkg/logging"
	"github.com/go-playground/validator/v10"
)

const (
	ConfigFilename = "fuzzlog.json"
)

type (
	Config struct {
		Path    string           `json:"-"`
		Logging *logging.Config  `json:"logging" validate:"required"`
		Text    []TextSinkConfig `json:"text,omitempty" validate:"dive"`
		// Log forwards test events to the process logger.
		Log     bool            `json:"log,omitempty"`
		Discord *discord.Config `json:"discord,omitempty" validate:"omitempty"`
		// Record writes every test event to this file as a replayable script.
		Record string `json:"record,omitempty"`
	}

	TextSinkConfig struct {
		Stdout     bool   `json:"stdout,omitempty"`
		Path       string `json:"path,omitempty" validate:"required_without=Stdout,excluded_with=Stdout"`
		MaxSize    int    `json:"maxSize,omitempty" validate:"gte=0"`
		MaxBackups int    `json:"maxBackups,omitempty" validate:"gte=0"`
		Compress   bool   `json:"compress,omitempty"`
	}
)

func NewConfig(path string) *Config {
	return &Config{
		Path:    path,
		Logging: logging.NewConfig(filepath.Dir(path)),
		Text:    []TextSinkConfig{{Stdout: true}},
	}
}

func ConfigSearchPath(explicit string) []string {
	if explicit != "" {
		return []string{explicit}
	}
	var paths []string
	if workDir, err := os.Getwd(); err == nil {
		paths = append(paths, workDir)
	}
	if executable, err := os.Executable(); err == nil {
		paths = append(paths, filepath.Dir(executable))
	}
	return paths
}

func FindConfigFile(paths []string) string {
	for _, path := range paths {
		stat, err := os.Stat(path)
		if err != nil {
			continue
		}
		if stat.IsDir() {
			path = filepath.Join(path, ConfigFilename)
			_, err = os.Stat(path)
		}
		if err == nil {
			return path
		}
	}
	if len(paths) == 0 {
		return ConfigFilename
	}
	if stat, err := os.Stat(paths[0]); err == nil && stat.IsDir() {
		return filepath.Join(paths[0], ConfigFilename)
	}
	return paths[0]
}

// LoadConfig reads a JSON or .properties configuration. A missing JSON
// configuration is created with the defaults.
func LoadConfig(path string) (c *Config, err error) {
	if strings.EqualFold(filepath.Ext(path), ".properties") {
		c, err = LoadProperties(path)
	} else {
		c = NewConfig(path)
		err = c.Read()
		if os.IsNotExist(err) {
			err = c.Write()
		}
	}
	if err != nil {
		return
	}
	c.SetBaseDir(filepath.Dir(path))
	err = c.Validate()
	return
}

func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration %s: %w", c.Path, err)
	}
	return nil
}

func (c *Config) SetBaseDir(baseDir string) {
	for i := range c.Text {
		if !c.Text[i].Stdout {
			c.Text[i].Path = resolvePath(baseDir, c.Text[i].Path)
		}
	}
	if c.Record != "" {
		c.Record = resolvePath(baseDir, c.Record)
	}
	if c.Logging == nil || c.Logging.File == nil || c.Logging.File.Logger == nil {
		return
	}
	c.Logging.File.Filename = resolvePath(baseDir, c.Logging.File.Filename)
}

func (c *Config) Read() error {
	content, err := os.ReadFile(c.Path)
	if err != nil {
		return err
	}
	// json would merge the listed sinks into the defaults.
	defaults := c.Text
	c.Text = nil
	if err = json.Unmarshal(content, c); err != nil {
		return err
	}
	if c.Text == nil {
		c.Text = defaults
	}
	return nil
}

func (c *Config) Write() error {
	content, err := json.MarshalIndent(&c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(c.Path, content, os.FileMode(0o666))
}

func resolvePath(base, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(base, path)
}
