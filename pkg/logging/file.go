package logging

import (
	"context"
	"fmt"
	"io"
	stdlog "log"
	"path/filepath"
	"sync"
	"time"

	"github.com/Adirelle/fuzzlog/pkg/utils"
	"github.com/apex/log"
	"github.com/thejerf/suture/v4"
	"gopkg.in/natefinch/lumberjack.v2"
)

type (
	// FileConfig writes log entries to a rotated file from a background service.
	FileConfig struct {
		Disabled bool      `json:"disabled,omitempty"`
		Level    log.Level `json:"level"`
		*lumberjack.Logger

		once    sync.Once
		entries chan *log.Entry
	}
)

const (
	DefaultFilename = "fuzzlog.log"

	entryBufferSize = 100
	enqueueTimeout  = time.Second
)

var (
	_ factory        = (*FileConfig)(nil)
	_ suture.Service = (*FileConfig)(nil)
)

func NewFileConfig(baseDir string) *FileConfig {
	return &FileConfig{
		Level: log.InfoLevel,
		Logger: &lumberjack.Logger{
			Filename:   filepath.Join(baseDir, DefaultFilename),
			MaxSize:    10, // megabytes
			MaxBackups: 10,
			LocalTime:  true,
			Compress:   true,
		},
	}
}

func (f *FileConfig) queue() chan *log.Entry {
	f.once.Do(func() {
		f.entries = make(chan *log.Entry, entryBufferSize)
	})
	return f.entries
}

func (f *FileConfig) CreateLogging() (log.Handler, log.Level, suture.Service) {
	if f.Disabled {
		return nil, log.FatalLevel, nil
	}
	return f, f.Level, f
}

// HandleLog queues entry for Serve. It fails if the queue stays full for
// too long, which means the file writer is stalled or not running.
func (f *FileConfig) HandleLog(entry *log.Entry) error {
	if entry.Level < f.Level {
		return nil
	}
	return utils.SendWithTimeout[*log.Entry](f.queue(), entry, enqueueTimeout)
}

func (f *FileConfig) Serve(ctx context.Context) (err error) {
	defer func() {
		cerr := f.Logger.Close()
		if err == nil {
			err = cerr
		}
		if err != nil {
			stdlog.Printf("error logging to %s: %s", f.Filename, err)
		}
	}()
	log.WithField("path", f.Filename).Debug("logging.file.started")

	entries := f.queue()
	for {
		var entry *log.Entry
		if entry, err = utils.RecvWithContext[*log.Entry](ctx, entries); err != nil {
			return f.drain(entries)
		}
		if err = f.WriteEntry(f.Logger, entry); err != nil {
			return
		}
	}
}

// drain writes the entries queued before the service was stopped.
func (f *FileConfig) drain(entries <-chan *log.Entry) error {
	for {
		select {
		case entry := <-entries:
			if err := f.WriteEntry(f.Logger, entry); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

func (f *FileConfig) String() string {
	return "logging.file(" + f.Filename + ")"
}

func (f *FileConfig) WriteEntry(writer io.Writer, entry *log.Entry) (err error) {
	_, err = fmt.Fprintf(writer, "%s [%s] %s", entry.Timestamp.Format(time.RFC3339), entry.Level, entry.Message)
	if err != nil {
		return
	}

	fields := entry.Fields
	for _, name := range fields.Names() {
		_, err = fmt.Fprintf(writer, " %s=%v", name, fields.Get(name))
		if err != nil {
			return
		}
	}

	_, err = writer.Write([]byte("\n"))

	return
}
