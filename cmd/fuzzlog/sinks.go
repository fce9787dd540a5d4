package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Adirelle/fuzzlog/pkg/discord"
	"github.com/Adirelle/fuzzlog/pkg/fuzzlog"
	"github.com/Adirelle/fuzzlog/pkg/logsink"
	"github.com/Adirelle/fuzzlog/pkg/script"
	"github.com/Adirelle/fuzzlog/pkg/textsink"
	"github.com/apex/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

type (
	// closers releases sink resources in reverse creation order.
	closers []func() error
)

func (t TextSinkConfig) Writer(stdout io.Writer) io.WriteCloser {
	if t.Stdout {
		return nopCloser{stdout}
	}
	return &lumberjack.Logger{
		Filename:   t.Path,
		MaxSize:    t.MaxSize,
		MaxBackups: t.MaxBackups,
		LocalTime:  true,
		Compress:   t.Compress,
	}
}

// BuildSinks creates the sinks in a fixed order: text sinks, log sink,
// script recorder, then Discord.
func (c *Config) BuildSinks(stdout io.Writer) (sinks []fuzzlog.Sink, cleanup closers, err error) {
	defer func() {
		if err != nil {
			_ = cleanup.Close()
			cleanup = nil
		}
	}()

	for _, text := range c.Text {
		w := text.Writer(stdout)
		cleanup = append(cleanup, w.Close)
		sinks = append(sinks, textsink.New(w))
	}

	if c.Log {
		sinks = append(sinks, logsink.New(log.Log))
	}

	if c.Record != "" {
		var file *os.File
		if file, err = os.Create(c.Record); err != nil {
			return nil, cleanup, fmt.Errorf("could not create script recording: %w", err)
		}
		cleanup = append(cleanup, file.Close)
		sinks = append(sinks, script.NewRecorder(file))
	}

	if c.Discord != nil {
		session, cerr := discord.Connect(*c.Discord)
		if cerr != nil {
			return nil, cleanup, cerr
		}
		cleanup = append(cleanup, func() error {
			discord.Disconnect(session)
			return nil
		})
		sinks = append(sinks, discord.NewSink(*c.Discord, session))
	}

	log.WithField("sinks", len(sinks)).Debug("sinks.ready")
	return
}

func (c closers) Close() error {
	var errs []error
	for i := len(c) - 1; i >= 0; i-- {
		if err := c[i](); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }
