package textsink

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/Adirelle/fuzzlog/pkg/fuzzlog"
)

type (
	// Sink writes one timestamped, indented block of text per event.
	Sink struct {
		mu          sync.Mutex
		out         io.Writer
		renderBytes BytesRenderer
		now         func() time.Time
		indentLevel int
	}

	// Option customizes a Sink created by New.
	Option func(*Sink)
)

const (
	testCaseFormat = "Test Case: %s"
	testStepFormat = "Test Step: %s"
	errorFormat    = "Error!!!! %s"
	checkFormat    = "Check: %s"
	infoFormat     = "Info: %s"
	passFormat     = "Check OK: %s"
	failFormat     = "Check Failed: %s"
	recvFormat     = "Received: %s"
	sendFormat     = "Transmitting %d bytes: %s"

	// IndentSize is the number of spaces per indentation level.
	IndentSize = 2
)

var _ fuzzlog.Sink = (*Sink)(nil)

// New creates a Sink writing to out, or to the standard output if out is nil.
func New(out io.Writer, options ...Option) *Sink {
	if out == nil {
		out = os.Stdout
	}
	s := &Sink{
		out:         out,
		renderBytes: HexBytes,
		now:         time.Now,
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// WithBytesRenderer replaces HexBytes for LogRecv and LogSend.
func WithBytesRenderer(renderer BytesRenderer) Option {
	return func(s *Sink) {
		s.renderBytes = renderer
	}
}

// WithClock replaces the time source of the timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Sink) {
		s.now = now
	}
}

func (s *Sink) OpenTestCase(id fuzzlog.TestCaseID) error {
	return s.print(0, fmt.Sprintf(testCaseFormat, id))
}

func (s *Sink) OpenTestStep(description string) error {
	return s.print(IndentSize, fmt.Sprintf(testStepFormat, description))
}

func (s *Sink) LogCheck(description string) error {
	return s.print(2*IndentSize, fmt.Sprintf(checkFormat, description))
}

func (s *Sink) LogError(description string) error {
	return s.print(2*IndentSize, fmt.Sprintf(errorFormat, description))
}

func (s *Sink) LogInfo(description string) error {
	return s.print(2*IndentSize, fmt.Sprintf(infoFormat, description))
}

func (s *Sink) LogRecv(data []byte) error {
	return s.print(2*IndentSize, fmt.Sprintf(recvFormat, s.renderBytes(data)))
}

func (s *Sink) LogSend(data []byte) error {
	return s.print(2*IndentSize, fmt.Sprintf(sendFormat, len(data), s.renderBytes(data)))
}

func (s *Sink) LogPass(description string) error {
	return s.print(3*IndentSize, fmt.Sprintf(passFormat, description))
}

func (s *Sink) LogFail(description string) error {
	return s.print(3*IndentSize, fmt.Sprintf(failFormat, description))
}

func (s *Sink) print(indent int, msg string) (err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.indentLevel = indent
	msg = indentAllLines(msg, s.indentLevel)
	timestamp := Timestamp(s.now())
	_, err = io.WriteString(s.out, timestamp+" "+indentAfterFirstLine(msg, len(timestamp)+1)+"\n")
	return
}
