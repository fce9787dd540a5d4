package main

import (
	"fmt"
	"strings"

	"github.com/Adirelle/fuzzlog/pkg/discord"
	"github.com/Adirelle/fuzzlog/pkg/logging"
	"github.com/Adirelle/fuzzlog/pkg/utils"
	"github.com/apex/log"
	properties "github.com/dmotylev/goproperties"
)

// LoadProperties reads a flat Java-style configuration:
//
//	logging.console = warn
//	logging.file = fuzzlog.log
//	logging.file.level = info
//	text.stdout = true
//	text.file = session.txt
//	text.file.max_size = 10
//	text.file.max_backups = 3
//	text.file.compress = false
//	log = false
//	record = session.jsonl
//	discord.token = ...
//	discord.channels = 123456789012345678, 234567890123456789
//	discord.notify_test_cases = false
//	discord.show_status = false
func LoadProperties(path string) (c *Config, err error) {
	props, err := properties.Load(path)
	if err != nil {
		return nil, fmt.Errorf("could not read properties `%s`: %w", path, err)
	}

	c = &Config{
		Path:    path,
		Logging: &logging.Config{},
		Log:     props.Bool("log", false),
		Record:  props.String("record", ""),
	}

	if c.Logging.Console, err = parseLevel[logging.ConsoleConfig](props.String("logging.console", "warn")); err != nil {
		return
	}
	if filename := props.String("logging.file", ""); filename != "" {
		c.Logging.File = logging.NewFileConfig("")
		c.Logging.File.Filename = filename
		if c.Logging.File.Level, err = parseLevel[log.Level](props.String("logging.file.level", "info")); err != nil {
			return
		}
	}

	if props.Bool("text.stdout", true) {
		c.Text = append(c.Text, TextSinkConfig{Stdout: true})
	}
	if path := props.String("text.file", ""); path != "" {
		c.Text = append(c.Text, TextSinkConfig{
			Path:       path,
			MaxSize:    int(props.Int("text.file.max_size", 0)),
			MaxBackups: int(props.Int("text.file.max_backups", 0)),
			Compress:   props.Bool("text.file.compress", false),
		})
	}

	if token := props.String("discord.token", ""); token != "" {
		c.Discord = &discord.Config{
			Token:           utils.Secret(token),
			NotifyTestCases: props.Bool("discord.notify_test_cases", false),
			ShowStatus:      props.Bool("discord.show_status", false),
		}
		for _, channel := range strings.Split(props.String("discord.channels", ""), ",") {
			if channel = strings.TrimSpace(channel); channel == "" {
				continue
			}
			var id discord.Snowflake
			if id, err = discord.ParseSnowflake(channel); err != nil {
				return nil, fmt.Errorf("discord.channels: %w", err)
			}
			c.Discord.ChannelIDs = append(c.Discord.ChannelIDs, id)
		}
	}

	return
}

func parseLevel[L ~int](name string) (L, error) {
	level, err := log.ParseLevel(strings.TrimSpace(name))
	if err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", name, err)
	}
	return L(level), nil
}
